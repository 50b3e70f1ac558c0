// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gas implements breathing-gas mixtures and the closed-circuit
// rebreather (CCR) effective-gas derivation.
package gas

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/fun"

	"github.com/decogo/zhl16/decoerr"
)

// sumTolerance is how far fO2+fHe+fN2 may stray from 1 and still be valid.
const sumTolerance = 1e-4

// Mix is a breathing-gas mixture. FN2 is always derived so the three
// fractions sum to exactly 1 rather than independently stored, which
// would let rounding drift the three apart over repeated construction.
type Mix struct {
	FO2 float64
	FHe float64
	FN2 float64

	// MOD is the maximum operating depth in metres, 0 if unset.
	MOD float64
}

// Air is the standard 21/0/79 surface breathing gas.
var Air = Mix{FO2: 0.21, FHe: 0.0, FN2: 0.79}

// New validates fO2 and fHe, derives fN2, and returns the mixture. It
// fails with *decoerr.InvalidGasError when a fraction is out of [0,1] or
// the three fractions do not sum to 1 within tolerance.
func New(fO2, fHe float64) (Mix, error) {
	fN2 := 1.0 - fO2 - fHe
	m := Mix{FO2: fO2, FHe: fHe, FN2: fN2}
	if err := m.validate(); err != nil {
		return Mix{}, err
	}
	return m, nil
}

// WithMOD attaches a maximum operating depth to an already-valid mixture.
func (m Mix) WithMOD(mod float64) Mix {
	m.MOD = mod
	return m
}

func (m Mix) validate() error {
	if m.FO2 < 0 || m.FO2 > 1 {
		return decoerr.NewInvalidGas("gas: fO2=%.6f out of range [0,1]", m.FO2)
	}
	if m.FHe < 0 || m.FHe > 1 {
		return decoerr.NewInvalidGas("gas: fHe=%.6f out of range [0,1]", m.FHe)
	}
	if m.FN2 < 0 || m.FN2 > 1 {
		return decoerr.NewInvalidGas("gas: fN2=%.6f out of range [0,1]", m.FN2)
	}
	sum := m.FO2 + m.FHe + m.FN2
	if math.Abs(sum-1.0) > sumTolerance {
		return decoerr.NewInvalidGas("gas: fractions sum to %.6f, want 1 +- %.g", sum, sumTolerance)
	}
	return nil
}

// ApplyParams builds a Mix from a named parameter list, the same
// name/value configuration idiom the teacher's material models use
// (BrooksCorey.Init(prms fun.Prms)). Recognised names: "fo2", "fhe",
// "mod" (case-insensitive). fN2 is always derived, never read from prms.
func ApplyParams(prms fun.Prms) (Mix, error) {
	var fO2, fHe, mod float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "fo2":
			fO2 = p.V
		case "fhe":
			fHe = p.V
		case "mod":
			mod = p.V
		default:
			return Mix{}, decoerr.NewInvalidGas("gas: parameter named %q is not recognised", p.N)
		}
	}
	m, err := New(fO2, fHe)
	if err != nil {
		return Mix{}, err
	}
	return m.WithMOD(mod), nil
}
