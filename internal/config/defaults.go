package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultConfig returns the hard-coded default configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			BaseUnit: 120,
			Title:    "Pong",
			TickRate: 60,
		},
		Colors: ColorConfig{
			Left:  "blue",
			Right: "red",
			Ball:  "white",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
