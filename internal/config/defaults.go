package config

import (
	_ "embed"
)

//go:embed defaults/picross.yaml
var defaultPicrossYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as
// the last fallback when even the embedded YAML fails to parse.
func DefaultConfig() PicrossConfig {
	return PicrossConfig{
		Board: BoardConfig{
			Sizes:             []int{5, 10, 15, 20, 25},
			DefaultSize:       10,
			DefaultDifficulty: "normal",
		},
		Bands: []BandConfig{
			{Label: "easy", MinDensity: 0.60, MaxDensity: 0.80},
			{Label: "normal", MinDensity: 0.45, MaxDensity: 0.65},
			{Label: "hard", MinDensity: 0.30, MaxDensity: 0.50},
			{Label: "expert", MinDensity: 0.15, MaxDensity: 0.35},
		},
		Loading: LoadingConfig{
			DelayTicks: 15,
		},
	}
}
