package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-creep-defense/internal/defs"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadSettingsKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"cash": 500, "map": "cr"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Cash != 500 || s.Map != "cr" {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if s.Lives != DefaultLives || s.Width != ScreenWidth-MenuWidth {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"zero lives":    `{"lives": 0}`,
		"negative size": `{"width": -1}`,
		"unknown field": `{"lifes": 3}`,
		"not json":      `lives=3`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSettings(path); !errors.Is(err, defs.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}
