package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pile.ReductionFactor != 0.5 || cfg.Pile.ZoneMultiplier != 1 || cfg.Pile.Convention != "bgl" {
		t.Errorf("pile defaults = %+v", cfg.Pile)
	}
	if cfg.Profile.Step != 0.5 {
		t.Errorf("profile step = %v, want 0.5", cfg.Profile.Step)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gopile.yaml")
	data := `pile:
  reductionFactor: 0.4
  convention: rl
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pile.ReductionFactor != 0.4 || cfg.Pile.Convention != "rl" {
		t.Errorf("pile = %+v", cfg.Pile)
	}
	if cfg.Pile.ZoneMultiplier != 1 {
		t.Errorf("ZoneMultiplier = %v, want default 1", cfg.Pile.ZoneMultiplier)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GOPILE_PILE_ZONEMULTIPLIER", "3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pile.ZoneMultiplier != 3 {
		t.Errorf("ZoneMultiplier = %v, want 3", cfg.Pile.ZoneMultiplier)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

// chdir changes the working directory for the duration of the test,
// matching testing.T.Chdir which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
