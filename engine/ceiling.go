// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/decogo/zhl16/tissue"
)

// ceilingEps is the safety-predicate slack (spec: 1e-9).
const ceilingEps = 1e-9

// ceilingSearchPrecision is the binary-search convergence tolerance, m.
const ceilingSearchPrecision = 0.01

// clampGF clamps gf into [0.01, 1.0].
func clampGF(gf float64) float64 {
	return utl.Max(0.01, utl.Min(1.0, gf))
}

// Ceiling returns the shallowest depth (m) the diver may currently
// occupy without violating any compartment's gf-limited M-value. gfLow
// and gfHigh are clamped into [0.01,1.0] with gfLow<=gfHigh. When
// fixedFirstStopDepth is non-nil it anchors the GF slope instead of the
// depth being recomputed from the current tissue state.
func (e *Engine) Ceiling(gfLow, gfHigh float64, fixedFirstStopDepth *float64, surfacePressure float64) float64 {
	gfLow, gfHigh = clampAndOrder(gfLow, gfHigh)

	firstStop := e.firstStopDepth(gfLow, surfacePressure)
	if fixedFirstStopDepth != nil {
		firstStop = *fixedFirstStopDepth
	}
	if firstStop <= 0 {
		return 0
	}

	gfAt := func(d float64) float64 { return gfAtDepth(d, firstStop, gfLow, gfHigh) }
	safe := func(d float64) bool { return e.safeAtDepth(d, gfAt(d), surfacePressure) }

	if safe(0) {
		return 0
	}
	hiEdge := firstStop + 0.1
	if !safe(hiEdge) {
		return firstStop
	}

	lo, hi := 0.0, hiEdge
	for hi-lo > ceilingSearchPrecision {
		mid := (lo + hi) / 2
		if safe(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return math.Ceil(hi*10) / 10
}

// ceilingLinearScan is the reference cross-check named in spec.md §4.5: a
// 0.1m-step linear scan upward, over multiples of 0.1m, from the first
// such depth at or deeper than firstStop+0.1 until unsafe, returning the
// shallowest safe depth it reached. It exists solely to be compared
// against Ceiling in tests.
func (e *Engine) ceilingLinearScan(gfLow, gfHigh float64, fixedFirstStopDepth *float64, surfacePressure float64) float64 {
	gfLow, gfHigh = clampAndOrder(gfLow, gfHigh)

	firstStop := e.firstStopDepth(gfLow, surfacePressure)
	if fixedFirstStopDepth != nil {
		firstStop = *fixedFirstStopDepth
	}
	if firstStop <= 0 {
		return 0
	}

	gfAt := func(d float64) float64 { return gfAtDepth(d, firstStop, gfLow, gfHigh) }
	safe := func(d float64) bool { return e.safeAtDepth(d, gfAt(d), surfacePressure) }

	if safe(0) {
		return 0
	}
	hiEdge := firstStop + 0.1
	if !safe(hiEdge) {
		return firstStop
	}
	last := math.Ceil(hiEdge*10) / 10
	for n := int(math.Ceil(hiEdge*10)) - 1; n >= 0; n-- {
		d := float64(n) / 10
		if !safe(d) {
			break
		}
		last = d
	}
	return last
}

// firstStopDepth is the anchor depth: the deepest tolerated-ambient-pressure,
// expressed as depth, across all 16 compartments at gradient factor gfLow.
func (e *Engine) firstStopDepth(gfLow, surfacePressure float64) float64 {
	maxDepth := 0.0
	pN2, pHe := e.state.PN2, e.state.PHe
	for i := 0; i < len(pN2); i++ {
		Ptol := tissue.ToleratedAmbientPressure(i, pN2[i], pHe[i], gfLow)
		d := e.pressureToDepth(Ptol, surfacePressure)
		maxDepth = utl.Max(maxDepth, d)
	}
	return maxDepth
}

// gfAtDepth implements the variable gradient-factor interpolation of
// spec.md §4.5 step 2.
func gfAtDepth(d, firstStop, gfLow, gfHigh float64) float64 {
	if firstStop <= 0 {
		return gfHigh
	}
	if d >= firstStop {
		return gfLow
	}
	return gfHigh - (gfHigh-gfLow)*(d/firstStop)
}

// safeAtDepth is the safety predicate of spec.md §4.5 step 3.
func (e *Engine) safeAtDepth(d, gf, surfacePressure float64) bool {
	Pamb := e.depthToPressure(d, surfacePressure)
	pN2, pHe := e.state.PN2, e.state.PHe
	for i := 0; i < len(pN2); i++ {
		M := tissue.MValue(i, pN2[i], pHe[i], Pamb)
		if pN2[i]+pHe[i] > Pamb+gf*(M-Pamb)+ceilingEps {
			return false
		}
	}
	return true
}

func clampAndOrder(gfLow, gfHigh float64) (float64, float64) {
	gfLow = clampGF(gfLow)
	gfHigh = clampGF(gfHigh)
	if gfLow > gfHigh {
		gfLow, gfHigh = gfHigh, gfLow
	}
	return gfLow, gfHigh
}
