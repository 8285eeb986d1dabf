//go:build !js

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := openTemp(t)

	t.Run("defaults when empty", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if diff := cmp.Diff(DefaultPreferences(), prefs); diff != "" {
			t.Errorf("defaults mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		want := &Preferences{Locale: "ru", ShowCoordinates: false, FillHighlights: false}
		if err := s.SavePreferences(want); err != nil {
			t.Fatalf("SavePreferences: %v", err)
		}
		if want.LastUsed.IsZero() {
			t.Error("SavePreferences should stamp LastUsed")
		}

		got, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Preferences{}, "LastUsed")); diff != "" {
			t.Errorf("preferences mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFirstLaunch(t *testing.T) {
	s := openTemp(t)

	first, err := s.IsFirstLaunch()
	if err != nil || !first {
		t.Fatalf("IsFirstLaunch = %v, %v; want true", first, err)
	}
	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}
	if first, _ := s.IsFirstLaunch(); first {
		t.Error("IsFirstLaunch should be false after marking")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SavePreferences(&Preferences{Locale: "ru", FillHighlights: true}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if prefs.Locale != "ru" || prefs.ShowCoordinates || !prefs.FillHighlights {
		t.Errorf("reloaded preferences = %+v", prefs)
	}
}

func TestDatabaseDir(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()

	dir, err := DatabaseDir()
	if err != nil {
		t.Fatalf("DatabaseDir: %v", err)
	}
	if want := filepath.Join(xdg.DataHome, "chessboard", "db"); dir != want {
		t.Errorf("DatabaseDir = %s, want %s", dir, want)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("database directory was not created: %v", err)
	}
}
