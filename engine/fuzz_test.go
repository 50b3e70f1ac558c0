package engine

// Randomized property test using stdlib math/rand -- see DESIGN.md's
// gosl/rnd entry for why this is the one deliberate standard-library
// choice in the module instead of a gosl dependency.

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/decogo/zhl16/gas"
	"github.com/decogo/zhl16/press"
)

func TestRandomProfilesKeepPressuresNonNegative(tst *testing.T) {

	chk.PrintTitle("random depth/time/gas profiles keep pN2, pHe >= 0")

	rng := rand.New(rand.NewSource(20260802))

	gases := []gas.Mix{
		gas.Air,
		mustGas(tst, 0.18, 0.45),
		mustGas(tst, 0.32, 0.0),
		mustGas(tst, 0.10, 0.50),
	}

	for trial := 0; trial < 200; trial++ {
		e := NewDefaultEngine()
		depth := 0.0
		nsegs := 1 + rng.Intn(6)
		for s := 0; s < nsegs; s++ {
			next := rng.Float64() * 100.0
			t := 1.0 + rng.Float64()*30.0
			g := gases[rng.Intn(len(gases))]
			e.AddSegment(depth, next, t, g, press.DefaultSurfacePressure)
			depth = next
		}

		pN2, pHe := e.Compartments()
		for i := range pN2 {
			if pN2[i] < 0 {
				tst.Fatalf("trial %d: compartment %d pN2 = %v < 0", trial, i, pN2[i])
			}
			if pHe[i] < 0 {
				tst.Fatalf("trial %d: compartment %d pHe = %v < 0", trial, i, pHe[i])
			}
		}
	}
}

func mustGas(tst *testing.T, fO2, fHe float64) gas.Mix {
	m, err := gas.New(fO2, fHe)
	if err != nil {
		tst.Fatalf("gas.New(%.2f,%.2f): %v", fO2, fHe, err)
	}
	return m
}
