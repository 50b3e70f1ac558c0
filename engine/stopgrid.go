// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// snapTolerance is how close a depth must be to a grid point to be
// considered "already on" it (spec: 0.01m).
const snapTolerance = 0.01

// nextStop returns the next candidate stop depth below d on the
// stopIncrement grid, snapping to lastStopDepth policy. This is the sole
// stop-grid implementation shared by the OC and CCR schedulers (spec.md
// §9: where the two disagree, the OC policy is authoritative -- there is
// only one implementation here, so they cannot disagree).
func nextStop(d, stopIncrement, lastStopDepth float64) float64 {
	n := math.Floor(d/stopIncrement) * stopIncrement
	if math.Abs(n-d) < snapTolerance {
		n -= stopIncrement
	}
	if n > 0 && n < lastStopDepth {
		if d > lastStopDepth {
			n = lastStopDepth
		} else {
			n = 0
		}
	}
	return utl.Max(0, n)
}
