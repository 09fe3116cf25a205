// Package config provides YAML-based startup configuration for the game.
// Key bindings are fixed and intentionally absent from the file format.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Config is the on-disk configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Colors ColorConfig  `yaml:"colors"`
}

// WindowConfig defines window size and pacing.
type WindowConfig struct {
	BaseUnit int    `yaml:"base_unit"`
	Title    string `yaml:"title"`
	TickRate int    `yaml:"tick_rate"`
}

// ColorConfig names the entity colors.
type ColorConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Ball  string `yaml:"ball"`
}

// Validation errors.
var (
	ErrBaseUnit = errors.New("base_unit must be positive")
	ErrTickRate = errors.New("tick_rate must be positive")
)

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Window.BaseUnit <= 0 {
		return fmt.Errorf("config: %w, got %d", ErrBaseUnit, c.Window.BaseUnit)
	}
	if c.Window.TickRate <= 0 {
		return fmt.Errorf("config: %w, got %d", ErrTickRate, c.Window.TickRate)
	}
	for _, name := range []string{c.Colors.Left, c.Colors.Right, c.Colors.Ball} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown color %q", name)
		}
	}
	return nil
}

// Runtime validates the configuration and converts it to the values the
// hosts and screens consume.
func (c Config) Runtime() (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}

	left, _ := core.ParseColor(c.Colors.Left)
	right, _ := core.ParseColor(c.Colors.Right)
	ball, _ := core.ParseColor(c.Colors.Ball)

	title := c.Window.Title
	if title == "" {
		title = core.DefaultConfig().Title
	}

	return core.RuntimeConfig{
		BaseUnit:   c.Window.BaseUnit,
		TickRate:   c.Window.TickRate,
		Title:      title,
		LeftColor:  left,
		RightColor: right,
		BallColor:  ball,
	}, nil
}
