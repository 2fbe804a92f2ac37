package puzzle

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
)

// Seed identifies a puzzle. Together with size and band it fully
// determines the solution grid. Seeds live in the 32-bit range.
type Seed uint32

// SeedFromText derives a seed deterministically from arbitrary text.
// A purely numeric string is parsed directly; anything else goes
// through a rolling hash so the same phrase always maps to the same
// puzzle. Only the empty string has no derivation — callers wanting a
// fresh puzzle should use RandomSeed instead.
func SeedFromText(text string) Seed {
	if n, err := strconv.ParseUint(text, 10, 32); err == nil {
		return Seed(n)
	}

	var h uint32
	for _, ch := range text {
		h = h*31 + uint32(ch)
	}
	return Seed(h)
}

// RandomSeed draws a seed from the system entropy source. This is the
// one non-deterministic path: puzzles made from a random seed are still
// reproducible afterwards by replaying the seed itself.
func RandomSeed() Seed {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Entropy failure is effectively impossible on supported
		// platforms; fall back to a fixed seed rather than panic.
		return Seed(1)
	}
	return Seed(binary.LittleEndian.Uint32(buf[:]))
}
