package puzzle

import "testing"

func TestRNGDeterminism(t *testing.T) {
	r1 := NewRNG(12345)
	r2 := NewRNG(12345)

	for i := 0; i < 1000; i++ {
		v1 := r1.Next()
		v2 := r2.Next()
		if v1 != v2 {
			t.Fatalf("draw %d diverged: %v vs %v", i, v1, v2)
		}
	}
}

func TestRNGSeedsDiverge(t *testing.T) {
	r1 := NewRNG(1)
	r2 := NewRNG(2)

	same := 0
	for i := 0; i < 100; i++ {
		if r1.Next() == r2.Next() {
			same++
		}
	}
	if same > 0 {
		t.Errorf("different seeds produced %d identical draws out of 100", same)
	}
}

func TestRNGNextInUnitInterval(t *testing.T) {
	r := NewRNG(42)
	for i := 0; i < 10000; i++ {
		v := r.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestRNGNextRoughlyUniform(t *testing.T) {
	r := NewRNG(7)
	const draws = 20000
	sum := 0.0
	low := 0
	for i := 0; i < draws; i++ {
		v := r.Next()
		sum += v
		if v < 0.5 {
			low++
		}
	}

	mean := sum / draws
	if mean < 0.45 || mean > 0.55 {
		t.Errorf("mean of %d draws is %v, expected near 0.5", draws, mean)
	}

	frac := float64(low) / draws
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("%v of draws below 0.5, expected near 0.5", frac)
	}
}

func TestRNGRangeInclusive(t *testing.T) {
	r := NewRNG(99)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Range(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("Range(3,7) returned %d", v)
		}
		seen[v] = true
	}

	// Both endpoints should show up over 1000 draws.
	if !seen[3] || !seen[7] {
		t.Errorf("endpoints not reached: saw %v", seen)
	}
}

func TestRNGRangeSingleValue(t *testing.T) {
	r := NewRNG(5)
	for i := 0; i < 10; i++ {
		if v := r.Range(4, 4); v != 4 {
			t.Fatalf("Range(4,4) returned %d", v)
		}
	}
}

func TestRNGBoolProbability(t *testing.T) {
	cases := []struct {
		chance float64
		lo, hi float64
	}{
		{0.0, 0, 0},
		{0.25, 0.20, 0.30},
		{0.5, 0.45, 0.55},
		{0.9, 0.85, 0.95},
		{1.0, 1, 1},
	}

	for _, tc := range cases {
		r := NewRNG(1234)
		const draws = 10000
		hits := 0
		for i := 0; i < draws; i++ {
			if r.Bool(tc.chance) {
				hits++
			}
		}
		frac := float64(hits) / draws
		if frac < tc.lo || frac > tc.hi {
			t.Errorf("Bool(%v): hit rate %v outside [%v, %v]", tc.chance, frac, tc.lo, tc.hi)
		}
	}
}

func TestRNGCounterAdvancesByOne(t *testing.T) {
	// Drawing N times from seed s must land on the same state as
	// starting at seed s+N; the counter advances by exactly one per draw.
	r1 := NewRNG(100)
	for i := 0; i < 5; i++ {
		r1.Next()
	}

	r2 := NewRNG(105)
	if v1, v2 := r1.Next(), r2.Next(); v1 != v2 {
		t.Errorf("counter did not advance by one per draw: %v vs %v", v1, v2)
	}
}
