package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: BreakoutPlayfield{
			Width:  480,
			Height: 620,
		},
		Paddle: BreakoutPaddle{
			Width:  58,
			Height: 11,
			Offset: 30,
			Color:  "white",
		},
		Ball: BreakoutBall{
			Diameter:  18,
			SpeedY:    -5.0,
			MinSpeedX: 1.0,
			MaxSpeedX: 5.0,
			Color:     "bright_white",
		},
		Bricks: BreakoutBricks{
			Rows:    10,
			PerRow:  10,
			Width:   43, // playfield width / per_row - sep_h
			Height:  8,
			SepH:    5,
			SepV:    4,
			YOffset: 70,
			Palette: []string{
				"red", "red", "orange", "orange", "yellow",
				"yellow", "green", "green", "cyan", "cyan",
			},
		},
		Gameplay: BreakoutGameplay{
			Tries:      2,
			PhaseTicks: 60, // one second per number at 60 fps
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
