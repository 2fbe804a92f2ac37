package puzzle

// Band is a closed density interval [Min, Max] from which one concrete
// target density is drawn per generation. Difficulty is probabilistic:
// the band bounds the draw, it does not fix the fill rate.
// Denser patterns are easier to read, so Easy sits high and Expert low.
type Band struct {
	Label string
	Min   float64
	Max   float64
}

// Built-in difficulty bands. The table is a closed enumeration; custom
// bands come in through config overrides, not by extending this list.
var (
	BandEasy   = Band{Label: "easy", Min: 0.60, Max: 0.80}
	BandNormal = Band{Label: "normal", Min: 0.45, Max: 0.65}
	BandHard   = Band{Label: "hard", Min: 0.30, Max: 0.50}
	BandExpert = Band{Label: "expert", Min: 0.15, Max: 0.35}
)

var bands = map[string]Band{
	BandEasy.Label:   BandEasy,
	BandNormal.Label: BandNormal,
	BandHard.Label:   BandHard,
	BandExpert.Label: BandExpert,
}

// BandByLabel looks up a built-in band by its label.
func BandByLabel(label string) (Band, bool) {
	b, ok := bands[label]
	return b, ok
}

// BandLabels returns the built-in labels ordered easiest first.
func BandLabels() []string {
	return []string{BandEasy.Label, BandNormal.Label, BandHard.Label, BandExpert.Label}
}

// Valid reports whether the band is a well-formed density interval.
func (b Band) Valid() bool {
	return b.Min >= 0 && b.Max <= 1 && b.Min <= b.Max
}
