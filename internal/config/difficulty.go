package config

import (
	"fmt"

	"github.com/dkotenko/picross/internal/puzzle"
)

// BandFor resolves a difficulty label to a density band. Config
// overrides win over the built-in table; malformed overrides are
// rejected rather than silently clamped.
func (c PicrossConfig) BandFor(label string) (puzzle.Band, error) {
	for _, bc := range c.Bands {
		if bc.Label != label {
			continue
		}
		b := puzzle.Band{Label: bc.Label, Min: bc.MinDensity, Max: bc.MaxDensity}
		if !b.Valid() {
			return puzzle.Band{}, fmt.Errorf("config: band %q has invalid density range [%v, %v]",
				bc.Label, bc.MinDensity, bc.MaxDensity)
		}
		return b, nil
	}

	if b, ok := puzzle.BandByLabel(label); ok {
		return b, nil
	}
	return puzzle.Band{}, fmt.Errorf("config: unknown difficulty %q", label)
}

// Labels returns the difficulty labels this config offers, config
// order first, then any built-ins not overridden.
func (c PicrossConfig) Labels() []string {
	seen := make(map[string]bool)
	labels := make([]string, 0, len(c.Bands))
	for _, bc := range c.Bands {
		if !seen[bc.Label] {
			labels = append(labels, bc.Label)
			seen[bc.Label] = true
		}
	}
	for _, l := range puzzle.BandLabels() {
		if !seen[l] {
			labels = append(labels, l)
			seen[l] = true
		}
	}
	return labels
}

// ValidSize reports whether size is one of the configured board sizes.
func (c PicrossConfig) ValidSize(size int) bool {
	for _, s := range c.Board.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
