package msgcat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmbedded(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if diff := cmp.Diff([]string{"en", "ru"}, c.Locales()); diff != "" {
		t.Errorf("locales mismatch (-want +got):\n%s", diff)
	}
	if got := c.Text("ru", "title"); got != "Шахматная доска" {
		t.Errorf("ru title = %q", got)
	}
	if got := c.Text("ru", "clear_button"); got != "Очистить доску" {
		t.Errorf("ru clear_button = %q", got)
	}
	if got := c.Text("en", "settings.save"); got != "Save" {
		t.Errorf("en settings.save = %q", got)
	}
}

func TestRenderData(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Render("en", "status", map[string]int{"OnBoard": 3, "InTray": 7})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "3 on board, 7 in tray" {
		t.Errorf("status = %q", got)
	}

	if _, err := c.Render("en", "status", map[string]int{"OnBoard": 3}); err == nil {
		t.Error("missing template data should fail")
	}
}

func TestFallbackAndMissing(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Text("de", "title"); got != "Chessboard" {
		t.Errorf("unknown locale should fall back to en, got %q", got)
	}
	if got := c.Text("en", "no.such.key"); got != "no.such.key" {
		t.Errorf("missing key = %q", got)
	}
}

func TestOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	data := []byte("en:\n  title: \"Sandbox\"\nde:\n  title: \"Schachbrett\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Text("en", "title"); got != "Sandbox" {
		t.Errorf("overridden title = %q", got)
	}
	if got := c.Text("en", "clear_button"); got != "Clear board" {
		t.Errorf("non-overridden key = %q", got)
	}
	if got := c.Text("de", "clear_button"); got != "Clear board" {
		t.Errorf("de fallback = %q", got)
	}
}

func TestRejectsNonStringLeaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("en:\n  title: [1, 2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path); err == nil {
		t.Error("list value should be rejected")
	}
}
