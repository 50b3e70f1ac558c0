// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tissue

import (
	"math"

	"github.com/decogo/zhl16/press"
)

const pWaterVapour = press.WaterVapourPressure

// schreiner solves the Schreiner equation for one inert species over a
// segment of duration t (minutes), where ambient pressure moves linearly
// from P0 to P1 and the breathing gas has inert fraction f.
//
//	Palv0 = (P0 - Pwv)*f
//	R     = ((P1-P0)/t)*f
//	Pt    = Palv0 + R*(t-1/k) - (Palv0-Pinitial-R/k)*exp(-k*t)
//
// t == 0 is a no-op (returns Pinitial unchanged).
func schreiner(k, P0, P1, t, f, Pinitial, Pwv float64) float64 {
	if t <= 0 {
		return Pinitial
	}
	Palv0 := (P0 - Pwv) * f
	R := ((P1 - P0) / t) * f
	return Palv0 + R*(t-1/k) - (Palv0-Pinitial-R/k)*math.Exp(-k*t)
}

// AddSegment applies a linear-depth-change segment, breathing gas with
// inert fractions fN2/fHe, to every compartment of s. P0 and P1 are the
// ambient pressures (bar) at the start and end of the segment, t is its
// duration in minutes. Both species are updated unconditionally: an
// fHe of 0 collapses the He terms to decay toward zero, as required.
func AddSegment(s *State, P0, P1, t, fN2, fHe float64) {
	if t <= 0 {
		return
	}
	for i := 0; i < len(s.PN2); i++ {
		s.PN2[i] = schreiner(kN2(i), P0, P1, t, fN2, s.PN2[i], pWaterVapour)
		s.PHe[i] = schreiner(kHe(i), P0, P1, t, fHe, s.PHe[i], pWaterVapour)
	}
}

// DecayIsoDepth advances every compartment by t minutes at constant
// ambient pressure Pamb, breathing gas with inert fractions fN2/fHe. This
// is the closed-form used by NDL's minute-by-minute stepping; it is the
// R=0 specialisation of the general Schreiner solution.
func DecayIsoDepth(s *State, Pamb, t, fN2, fHe float64) {
	if t <= 0 {
		return
	}
	for i := 0; i < len(s.PN2); i++ {
		PalvN2 := (Pamb - pWaterVapour) * fN2
		s.PN2[i] = PalvN2 + (s.PN2[i]-PalvN2)*math.Exp(-kN2(i)*t)
		PalvHe := (Pamb - pWaterVapour) * fHe
		s.PHe[i] = PalvHe + (s.PHe[i]-PalvHe)*math.Exp(-kHe(i)*t)
	}
}
