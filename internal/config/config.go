// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Snake contains all configuration for a game. It is immutable once a game
// has been created from it.
type Snake struct {
	GridSize        int   `yaml:"grid_size"`         // Cells per side, border included
	Scale           int   `yaml:"scale"`             // Pixels per cell (image output only)
	InitialLength   int   `yaml:"initial_length"`    // Head plus body cells at start
	TickMS          int   `yaml:"tick_ms"`           // Milliseconds between ticks
	MaxFoodAttempts int   `yaml:"max_food_attempts"` // 0 = GridSize² × 4
	Seed            int64 `yaml:"seed"`              // 0 = time based
}

// Interval returns the fixed tick interval.
func (c Snake) Interval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// FoodAttempts returns the rejection-sampling cap for food placement.
func (c Snake) FoodAttempts() int {
	if c.MaxFoodAttempts > 0 {
		return c.MaxFoodAttempts
	}
	return c.GridSize * c.GridSize * 4
}

// ImageSize returns the side of a rendered frame in pixels:
// every cell is Scale pixels wide with a 1 pixel gap between cells.
func (c Snake) ImageSize() int {
	return c.GridSize*c.Scale + c.GridSize - 1
}

// Validate checks that a game can be set up from this config: the initial
// snake must fit strictly inside the border ring and leave room for food.
func (c Snake) Validate() error {
	if c.GridSize < 4 {
		return fmt.Errorf("%w: grid_size must be at least 4, got %d", ErrInvalid, c.GridSize)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initial_length must be at least 1, got %d", ErrInvalid, c.InitialLength)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.TickMS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalid, c.Scale)
	}
	if c.MaxFoodAttempts < 0 {
		return fmt.Errorf("%w: max_food_attempts must not be negative, got %d", ErrInvalid, c.MaxFoodAttempts)
	}

	// Mirrors the start placement: head centered horizontally, body to its left.
	half := float64(c.GridSize) / 2
	headX := int(math.Floor(half + float64(c.InitialLength)/2))
	tailX := headX - (c.InitialLength - 1)
	if headX > c.GridSize-2 || tailX < 1 {
		return fmt.Errorf("%w: initial_length %d does not fit in grid_size %d",
			ErrInvalid, c.InitialLength, c.GridSize)
	}

	interior := (c.GridSize - 2) * (c.GridSize - 2)
	if c.InitialLength >= interior {
		return fmt.Errorf("%w: initial_length %d leaves no room for food", ErrInvalid, c.InitialLength)
	}
	return nil
}
