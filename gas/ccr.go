// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"github.com/decogo/zhl16/decoerr"
)

// dInertTolerance is the minimum excess of diluent-inert-fraction over
// required-inert-fraction for a setpoint to be achievable, per spec.
const dInertTolerance = 1e-4

// EffectiveGas derives the gas a CCR diver actually breathes at ambient
// pressure Pamb (bar) holding setpoint sp (bar of ppO2) on diluent.
//
//  1. the achievable ppO2 is capped at ambient pressure (can't maintain
//     more O2 than the loop can deliver),
//  2. the remaining fraction is inert gas, split between He and N2 in
//     the same ratio as the diluent.
//
// Fails with *decoerr.CannotDiluteError when the diluent does not carry
// enough inert gas to fill the remainder at this (depth, setpoint).
func EffectiveGas(Pamb, sp float64, diluent Mix) (Mix, error) {
	spEff := sp
	if spEff > Pamb {
		spEff = Pamb
	}
	fO2 := spEff / Pamb
	fInert := 1.0 - fO2
	dInert := diluent.FHe + diluent.FN2

	if dInert-fInert <= dInertTolerance {
		return Mix{}, decoerr.NewCannotDilute(
			"gas: cannot dilute to ppO2=%.4f at Pamb=%.4f with diluent fHe=%.4f fN2=%.4f (need inert %.4f, diluent has %.4f)",
			sp, Pamb, diluent.FHe, diluent.FN2, fInert, dInert)
	}

	var fHe float64
	if dInert > 1e-12 {
		fHe = fInert * diluent.FHe / dInert
	}
	fN2 := fInert - fHe

	return Mix{FO2: fO2, FHe: fHe, FN2: fN2, MOD: diluent.MOD}, nil
}
