// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tissue implements the per-compartment inert-gas state of the
// Buhlmann ZH-L16C model: partial pressures, the Workman M-value / gradient
// factor tolerance algebra, and the Schreiner integration of gas loading
// under varying ambient pressure.
package tissue

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/decogo/zhl16/press"
	"github.com/decogo/zhl16/zhl16"
)

// emptyThreshold is the pN2+pHe below which a compartment is considered
// free of inert gas and M-value math is meaningless (spec: 1e-10).
const emptyThreshold = 1e-10

// State is the vector of 16 compartments' inert-gas partial pressures,
// stored as two parallel gosl la vectors (one per species) the way FE
// domain state is stored as DOF vectors in the teacher codebase.
type State struct {
	PN2 []float64 // bar, length zhl16.NumCompartments
	PHe []float64 // bar, length zhl16.NumCompartments
}

// NewState allocates a zeroed 16-compartment state.
func NewState() *State {
	return &State{
		PN2: make([]float64, zhl16.NumCompartments),
		PHe: make([]float64, zhl16.NumCompartments),
	}
}

// InitSurfaceEquilibrium seeds every compartment as if the diver has been
// at rest, breathing gas, at surfacePressure for long enough to fully
// equilibrate: pN2 = (Psurf - Pwv)*fN2, pHe = (Psurf - Pwv)*fHe.
func (s *State) InitSurfaceEquilibrium(surfacePressure, fN2, fHe float64) {
	alv := surfacePressure - press.WaterVapourPressure
	for i := range s.PN2 {
		s.PN2[i] = alv * fN2
		s.PHe[i] = alv * fHe
	}
}

// Clone returns an independent copy of s, using la.VecCopy the way the
// teacher's FE domain snapshots DOF vectors before a trial iteration.
func (s *State) Clone() *State {
	c := NewState()
	la.VecCopy(c.PN2, 1.0, s.PN2)
	la.VecCopy(c.PHe, 1.0, s.PHe)
	return c
}

// Reset zeroes both vectors in place.
func (s *State) Reset() {
	la.VecFill(s.PN2, 0)
	la.VecFill(s.PHe, 0)
}

// kN2 returns the nitrogen rate constant of compartment i, per minute.
func kN2(i int) float64 { return math.Ln2 / zhl16.N2[i].HalfTime }

// kHe returns the helium rate constant of compartment i, per minute.
func kHe(i int) float64 { return math.Ln2 / zhl16.He[i].HalfTime }

// MValue returns the tolerated inert-gas partial pressure of compartment
// i at ambient pressure Pamb, per the inert-load-weighted Workman form.
// Returns 0 when the compartment carries essentially no inert gas.
func MValue(i int, pN2, pHe, Pamb float64) float64 {
	total := pN2 + pHe
	if total < emptyThreshold {
		return 0
	}
	a := (zhl16.N2[i].A*pN2 + zhl16.He[i].A*pHe) / total
	b := (zhl16.N2[i].B*pN2 + zhl16.He[i].B*pHe) / total
	return Pamb/b + a
}

// ToleratedAmbientPressure returns the shallowest ambient pressure at
// which compartment i's current load stays within the gf-scaled
// supersaturation gradient, i.e. the closed-form inverse of
// pN2+pHe <= Pamb + gf*(M(Pamb)-Pamb).
func ToleratedAmbientPressure(i int, pN2, pHe, gf float64) float64 {
	total := pN2 + pHe
	if total < emptyThreshold {
		return 0
	}
	a := (zhl16.N2[i].A*pN2 + zhl16.He[i].A*pHe) / total
	b := (zhl16.N2[i].B*pN2 + zhl16.He[i].B*pHe) / total
	return (total - a*gf) / (gf/b + 1 - gf)
}
