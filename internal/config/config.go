// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are playfield units; speeds are units per tick.
type BreakoutConfig struct {
	Playfield BreakoutPlayfield `yaml:"playfield"`
	Paddle    BreakoutPaddle    `yaml:"paddle"`
	Ball      BreakoutBall      `yaml:"ball"`
	Bricks    BreakoutBricks    `yaml:"bricks"`
	Gameplay  BreakoutGameplay  `yaml:"gameplay"`
}

// BreakoutPlayfield defines the size of the game area.
type BreakoutPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines paddle dimensions.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance of the paddle's bottom edge from the floor
	Color  string  `yaml:"color"`
}

// BreakoutBall defines ball size and serve velocity.
type BreakoutBall struct {
	Diameter  float64 `yaml:"diameter"`
	SpeedY    float64 `yaml:"speed_y"`     // Vertical speed on serve, negative = downward
	MinSpeedX float64 `yaml:"min_speed_x"` // Horizontal speed magnitude range on serve
	MaxSpeedX float64 `yaml:"max_speed_x"`
	Color     string  `yaml:"color"`
}

// BreakoutBricks defines the brick wall layout.
type BreakoutBricks struct {
	Rows    int      `yaml:"rows"`
	PerRow  int      `yaml:"per_row"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	SepH    float64  `yaml:"sep_h"`    // Horizontal gap between bricks
	SepV    float64  `yaml:"sep_v"`    // Vertical gap between rows
	YOffset float64  `yaml:"y_offset"` // Distance of the first row from the top
	Palette []string `yaml:"palette"`  // Row colors, cycled by row index
}

// BreakoutGameplay defines tries and countdown timing.
type BreakoutGameplay struct {
	Tries      int `yaml:"tries"`       // Extra balls after the first one
	PhaseTicks int `yaml:"phase_ticks"` // Ticks per countdown number (3, 2, 1)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a playable game.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield must have positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0,
		"paddle must have positive size, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Width <= c.Playfield.Width,
		"paddle width %v exceeds playfield width %v", c.Paddle.Width, c.Playfield.Width)
	check(c.Paddle.Offset >= 0, "paddle offset must not be negative, got %v", c.Paddle.Offset)
	check(c.Ball.Diameter > 0, "ball diameter must be positive, got %v", c.Ball.Diameter)
	check(c.Ball.SpeedY < 0, "ball speed_y must be negative (downward serve), got %v", c.Ball.SpeedY)
	check(c.Ball.MinSpeedX >= 0 && c.Ball.MinSpeedX <= c.Ball.MaxSpeedX,
		"ball speed_x range [%v, %v] is invalid", c.Ball.MinSpeedX, c.Ball.MaxSpeedX)
	check(c.Bricks.Rows > 0 && c.Bricks.PerRow > 0,
		"brick grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.PerRow)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0,
		"bricks must have positive size, got %vx%v", c.Bricks.Width, c.Bricks.Height)
	check(len(c.Bricks.Palette) > 0, "brick palette must not be empty")
	check(c.Gameplay.Tries >= 0, "tries must not be negative, got %d", c.Gameplay.Tries)
	check(c.Gameplay.PhaseTicks > 0, "phase_ticks must be positive, got %d", c.Gameplay.PhaseTicks)

	for _, name := range append([]string{c.Paddle.Color, c.Ball.Color}, c.Bricks.Palette...) {
		if name == "" {
			continue
		}
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// PaletteColors resolves the brick palette to colors.
// Unknown names resolve to core.ColorDefault; Validate reports them.
func (c BreakoutConfig) PaletteColors() []core.Color {
	colors := make([]core.Color, len(c.Bricks.Palette))
	for i, name := range c.Bricks.Palette {
		colors[i], _ = core.ParseColor(name)
	}
	return colors
}
