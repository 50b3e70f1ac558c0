// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/decogo/zhl16/gas"
	"github.com/decogo/zhl16/tissue"
)

// ndlCapMinutes is the maximum minutes NDL will report (spec: 999).
const ndlCapMinutes = 999

// NDL returns the no-decompression limit, in minutes, at depth on g,
// evaluated from the engine's current tissue state, using a single
// gradient factor gf clamped into [0.01,1.0]. If the ceiling at the
// current state (both GFs = gf) already exceeds 0, NDL is 0: a stop is
// already required.
func (e *Engine) NDL(depth float64, g gas.Mix, gf, surfacePressure float64) float64 {
	gf = clampGF(gf)

	if e.Ceiling(gf, gf, nil, surfacePressure) > 0 {
		return 0
	}

	sim := e.state.Clone()
	Pamb := e.depthToPressure(depth, surfacePressure)

	for t := 1; t <= ndlCapMinutes; t++ {
		tissue.DecayIsoDepth(sim, Pamb, 1.0, g.FN2, g.FHe)
		if ndlBreached(sim, gf, surfacePressure) {
			return float64(t - 1)
		}
	}
	return ndlCapMinutes
}

// ndlBreached reports whether any compartment's tolerated ambient
// pressure at gf now exceeds surface pressure.
func ndlBreached(s *tissue.State, gf, surfacePressure float64) bool {
	for i := range s.PN2 {
		if tissue.ToleratedAmbientPressure(i, s.PN2[i], s.PHe[i], gf) > surfacePressure {
			return true
		}
	}
	return false
}
