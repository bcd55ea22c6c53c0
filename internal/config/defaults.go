package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
func DefaultSnakeConfig() Snake {
	return Snake{
		GridSize:      32,
		Scale:         20,
		InitialLength: 5,
		TickMS:        100,
	}
}
