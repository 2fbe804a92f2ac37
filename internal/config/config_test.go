package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.DefaultSize != 10 {
		t.Errorf("default size = %d, want 10", cfg.Board.DefaultSize)
	}
	if cfg.Board.DefaultDifficulty != "normal" {
		t.Errorf("default difficulty = %q, want normal", cfg.Board.DefaultDifficulty)
	}
	if len(cfg.Bands) != 4 {
		t.Errorf("expected 4 bands, got %d", len(cfg.Bands))
	}
	if cfg.Loading.DelayTicks <= 0 {
		t.Errorf("loading delay should be positive, got %d", cfg.Loading.DelayTicks)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	custom := `
board:
  sizes: [7]
  default_size: 7
  default_difficulty: blind
bands:
  - label: blind
    min_density: 0.05
    max_density: 0.10
loading:
  delay_ticks: 1
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Board.DefaultSize != 7 {
		t.Errorf("custom size = %d, want 7", cfg.Board.DefaultSize)
	}

	band, err := cfg.BandFor("blind")
	if err != nil {
		t.Fatalf("BandFor(blind) failed: %v", err)
	}
	if band.Min != 0.05 || band.Max != 0.10 {
		t.Errorf("custom band = [%v, %v]", band.Min, band.Max)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/picross.yaml"); err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestBandForOverridesBuiltin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bands = []BandConfig{
		{Label: "easy", MinDensity: 0.9, MaxDensity: 0.95},
	}

	band, err := cfg.BandFor("easy")
	if err != nil {
		t.Fatalf("BandFor(easy) failed: %v", err)
	}
	if band.Min != 0.9 {
		t.Errorf("override not applied: min = %v", band.Min)
	}

	// Labels absent from the config still resolve to built-ins.
	if _, err := cfg.BandFor("expert"); err != nil {
		t.Errorf("built-in fallback failed: %v", err)
	}
}

func TestBandForRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bands = append(cfg.Bands, BandConfig{Label: "broken", MinDensity: 0.8, MaxDensity: 0.2})

	if _, err := cfg.BandFor("broken"); err == nil {
		t.Error("inverted band should be rejected")
	}

	if _, err := cfg.BandFor("no-such-label"); err == nil {
		t.Error("unknown label should be rejected")
	}
}

func TestLabelsOrder(t *testing.T) {
	cfg := DefaultConfig()
	labels := cfg.Labels()

	if len(labels) != 4 {
		t.Fatalf("expected 4 labels, got %v", labels)
	}
	if labels[0] != "easy" || labels[3] != "expert" {
		t.Errorf("unexpected label order: %v", labels)
	}
}

func TestValidSize(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.ValidSize(15) {
		t.Error("15 should be a valid size")
	}
	if cfg.ValidSize(13) {
		t.Error("13 should not be a valid size")
	}
}
