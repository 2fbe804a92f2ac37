// Package config provides YAML-based configuration loading for the
// picross platform: board sizes, difficulty density bands, and the
// cosmetic loading delay.
package config

// PicrossConfig contains all tunable settings for the game.
type PicrossConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Bands   []BandConfig  `yaml:"bands"`
	Loading LoadingConfig `yaml:"loading"`
}

// BoardConfig defines the selectable board sizes and defaults.
type BoardConfig struct {
	Sizes             []int  `yaml:"sizes"`              // Offered in the setup screen
	DefaultSize       int    `yaml:"default_size"`       // Used when none selected
	DefaultDifficulty string `yaml:"default_difficulty"` // Band label
}

// BandConfig maps a difficulty label to a density interval. Bands
// listed here override the built-in table of the same label.
type BandConfig struct {
	Label      string  `yaml:"label"`
	MinDensity float64 `yaml:"min_density"`
	MaxDensity float64 `yaml:"max_density"`
}

// LoadingConfig controls the artificial generation delay. The delay is
// purely cosmetic — it gives the UI a visible loading state and has no
// effect on the generated puzzle.
type LoadingConfig struct {
	DelayTicks int `yaml:"delay_ticks"`
}
