package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}
	if s.Screen.Width != defaultWindowW || s.Screen.Height != defaultWindowH {
		t.Errorf("default screen = %dx%d, want %dx%d", s.Screen.Width, s.Screen.Height, defaultWindowW, defaultWindowH)
	}
	if s.Screen.Title != "flowcomb" {
		t.Errorf("default title = %q", s.Screen.Title)
	}
	if !s.View.Particles || s.View.Field || !s.View.Brush {
		t.Errorf("default view toggles = %+v", s.View)
	}
	if s.Telemetry.Path != "" {
		t.Errorf("telemetry enabled by default: %q", s.Telemetry.Path)
	}
}

func TestLoadSettingsOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("screen:\n  width: 800\nview:\n  field: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}
	if s.Screen.Width != 800 {
		t.Errorf("width = %d, want 800", s.Screen.Width)
	}
	if s.Screen.Height != defaultWindowH {
		t.Errorf("height = %d, want default %d", s.Screen.Height, defaultWindowH)
	}
	if !s.View.Field {
		t.Error("field toggle not overlaid")
	}
}

func TestLoadSettingsRejectsBadDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("screen:\n  width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSettings(path); err == nil {
		t.Error("negative width accepted")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := loadSettings(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing settings file accepted")
	}
}
