package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Camera.OrbitSensitivity != 0.3 {
		t.Errorf("expected orbit sensitivity 0.3, got %f", cfg.Camera.OrbitSensitivity)
	}
	if cfg.Camera.DistanceSensitivity != 0.15 {
		t.Errorf("expected distance sensitivity 0.15, got %f", cfg.Camera.DistanceSensitivity)
	}
	if cfg.Camera.PitchAngleMin != -90 || cfg.Camera.PitchAngleMax != 90 {
		t.Errorf("expected pitch range [-90, 90], got [%f, %f]",
			cfg.Camera.PitchAngleMin, cfg.Camera.PitchAngleMax)
	}
	if cfg.QuickRender.LowQualityKey != "l" || cfg.QuickRender.HighQualityKey != "h" {
		t.Error("expected default quick-render keys l/h")
	}
	if cfg.QuickRender.ShadowResolution != 256 {
		t.Errorf("expected shadow resolution 256, got %d", cfg.QuickRender.ShadowResolution)
	}
	if cfg.QuickRender.RestoreMillis != 1000 {
		t.Errorf("expected restore duration 1000ms, got %f", cfg.QuickRender.RestoreMillis)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Camera.OrbitSensitivity != 0.3 {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("camera:\n  orbit_sensitivity: 0.5\nquick_render:\n  low_quality_key: q\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Camera.OrbitSensitivity != 0.5 {
		t.Errorf("expected overridden sensitivity 0.5, got %f", cfg.Camera.OrbitSensitivity)
	}
	if cfg.QuickRender.LowQualityKey != "q" {
		t.Errorf("expected overridden key q, got %s", cfg.QuickRender.LowQualityKey)
	}
	// Untouched values keep their defaults.
	if cfg.Camera.DistanceSensitivity != 0.15 {
		t.Errorf("expected default distance sensitivity, got %f", cfg.Camera.DistanceSensitivity)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("camera: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("invalid YAML should be an error")
	}
}
