package galaxy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPresetsMissingFileUsesDefaults(t *testing.T) {
	presets, err := LoadPresets(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err != nil {
		t.Fatalf("LoadPresets returned error: %v", err)
	}
	if len(presets) == 0 {
		t.Fatal("expected built-in presets")
	}
	for _, p := range presets {
		if p.Key == "" || p.Systems <= 0 {
			t.Errorf("invalid built-in preset: %+v", p)
		}
	}
}

func TestLoadPresetsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := []byte(`presets:
  - key: tiny
    name: Test Cluster
    systems: 12
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path, nil)
	if err != nil {
		t.Fatalf("LoadPresets returned error: %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(presets))
	}
	if presets[0].Key != "tiny" || presets[0].Systems != 12 {
		t.Errorf("unexpected preset: %+v", presets[0])
	}
}

func TestLoadPresetsRejectsInvalidSystems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := []byte(`presets:
  - key: broken
    name: Broken
    systems: 0
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPresets(path, nil); err == nil {
		t.Fatal("expected error for non-positive system count")
	}
}

func TestLoadPresetsEmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte("presets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path, nil)
	if err != nil {
		t.Fatalf("LoadPresets returned error: %v", err)
	}
	if len(presets) == 0 {
		t.Fatal("expected fallback to built-in presets")
	}
}
