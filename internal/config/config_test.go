package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid_size: 10\ninitial_length: 3\ntick_ms: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.GridSize != 10 || cfg.InitialLength != 3 || cfg.TickMS != 50 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	// Omitted keys keep defaults
	if cfg.Scale != 20 {
		t.Errorf("Scale = %d, expected default 20", cfg.Scale)
	}
	if cfg.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, expected 50ms", cfg.Interval())
	}
}

func TestLoadSnakeMissingFile(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadSnakeRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("initial_length: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadSnake() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	base := DefaultSnakeConfig()

	tests := []struct {
		name   string
		mutate func(*Snake)
		valid  bool
	}{
		{"defaults", func(*Snake) {}, true},
		{"small grid", func(c *Snake) { c.GridSize = 10; c.InitialLength = 3 }, true},
		{"single cell snake", func(c *Snake) { c.InitialLength = 1 }, true},
		{"zero length", func(c *Snake) { c.InitialLength = 0 }, false},
		{"grid too small", func(c *Snake) { c.GridSize = 3; c.InitialLength = 1 }, false},
		{"zero tick", func(c *Snake) { c.TickMS = 0 }, false},
		{"zero scale", func(c *Snake) { c.Scale = 0 }, false},
		{"negative attempts", func(c *Snake) { c.MaxFoodAttempts = -1 }, false},
		// head at 5+3=8 is inside, tail at 8-5=3 is inside
		{"long snake fits", func(c *Snake) { c.GridSize = 10; c.InitialLength = 6 }, true},
		// head at 5+3.5=8, tail at 8-6=2
		{"longer snake fits", func(c *Snake) { c.GridSize = 10; c.InitialLength = 7 }, true},
		// head at 5+4=9 lands on the border column
		{"snake hits right border", func(c *Snake) { c.GridSize = 10; c.InitialLength = 8 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if got := cfg.ImageSize(); got != 32*20+31 {
		t.Errorf("ImageSize() = %d, expected %d", got, 32*20+31)
	}
	if got := cfg.FoodAttempts(); got != 32*32*4 {
		t.Errorf("FoodAttempts() = %d, expected %d", got, 32*32*4)
	}
	cfg.MaxFoodAttempts = 7
	if got := cfg.FoodAttempts(); got != 7 {
		t.Errorf("FoodAttempts() = %d, expected 7", got)
	}
}
