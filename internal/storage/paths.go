// Package storage persists UI preferences. Board state is never stored.
package storage

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "chessboard"

// DataDir returns the application data directory, creating it if needed.
// It follows the XDG base directory rules on every platform xdg supports
// (~/.local/share, ~/Library/Application Support, %LOCALAPPDATA%).
func DataDir() (string, error) {
	dir := filepath.Join(xdg.DataHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// DatabaseDir returns the directory holding the preferences database.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return "", err
	}
	return dbDir, nil
}
