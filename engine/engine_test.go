package engine

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/decogo/zhl16/gas"
	"github.com/decogo/zhl16/press"
)

func TestFreshEngineNDLIs999(tst *testing.T) {

	chk.PrintTitle("fresh engine NDL at surface on air is 999")

	e := NewDefaultEngine()
	ndl := e.NDL(0, gas.Air, 1.0, press.DefaultSurfacePressure)
	chk.Scalar(tst, "ndl", 1e-15, ndl, 999)
}

func TestFreshEngineCeilingIsZero(tst *testing.T) {

	chk.PrintTitle("fresh engine ceiling is 0 for any GFs")

	e := NewDefaultEngine()
	for _, gfs := range [][2]float64{{0.3, 0.85}, {1.0, 1.0}, {0.2, 0.4}} {
		c := e.Ceiling(gfs[0], gfs[1], nil, press.DefaultSurfacePressure)
		chk.Scalar(tst, "ceiling", 1e-15, c, 0)
	}
}

func TestCloneDoesNotAffectOriginal(tst *testing.T) {

	chk.PrintTitle("Engine.Clone isolates tissue state")

	e := NewDefaultEngine()
	c := e.Clone()

	c.AddSegment(0, 40, 20, gas.Air, press.DefaultSurfacePressure)

	pN2Orig, _ := e.Compartments()
	pN2Clone, _ := c.Compartments()
	if pN2Orig[0] == pN2Clone[0] {
		tst.Fatal("mutating the clone should not affect the original")
	}
}

func TestInvariantNonNegativePressures(tst *testing.T) {

	chk.PrintTitle("pN2, pHe stay non-negative under a varied profile")

	e := NewDefaultEngine()
	trimix, err := gas.New(0.18, 0.45)
	if err != nil {
		tst.Fatalf("gas: %v", err)
	}
	e.AddSegment(0, 50, 15, trimix, press.DefaultSurfacePressure)
	e.AddSegment(50, 50, 10, trimix, press.DefaultSurfacePressure)
	e.AddSegment(50, 21, 5, trimix, press.DefaultSurfacePressure)
	e.AddSegment(21, 0, 7, gas.Air, press.DefaultSurfacePressure)

	pN2, pHe := e.Compartments()
	for i := range pN2 {
		if pN2[i] < 0 {
			tst.Errorf("compartment %d pN2 = %v < 0", i, pN2[i])
		}
		if pHe[i] < 0 {
			tst.Errorf("compartment %d pHe = %v < 0", i, pHe[i])
		}
	}
}
