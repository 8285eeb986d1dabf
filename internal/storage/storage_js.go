//go:build js

package storage

// Storage is a placeholder in the browser build; Open always fails and the
// caller falls back to DefaultPreferences.
type Storage struct{}

func Open() (*Storage, error) { return nil, ErrUnavailable }

func OpenDir(string) (*Storage, error) { return nil, ErrUnavailable }

func (s *Storage) Close() error { return nil }

func (s *Storage) IsFirstLaunch() (bool, error) { return true, ErrUnavailable }

func (s *Storage) MarkFirstLaunchComplete() error { return ErrUnavailable }

func (s *Storage) SavePreferences(*Preferences) error { return ErrUnavailable }

func (s *Storage) LoadPreferences() (*Preferences, error) {
	return DefaultPreferences(), ErrUnavailable
}
