// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/decogo/zhl16/config"
	"github.com/decogo/zhl16/gas"
)

// TimeToSurface returns total minutes from currentDepth to the surface,
// stops included, on a clone of e's tissue state -- it never mutates e.
func (e *Engine) TimeToSurface(gfLow, gfHigh, currentDepth float64, bottomGas gas.Mix, decoGases []gas.Mix, cfg config.Deco, surfacePressure float64) (float64, error) {
	sim := e.Clone()
	schedule, err := sim.CalculateDecoStops(gfLow, gfHigh, currentDepth, bottomGas, decoGases, cfg, surfacePressure)
	if err != nil {
		return 0, err
	}
	return totalTime(schedule), nil
}

func totalTime(schedule []DiveSegment) float64 {
	var t float64
	for _, s := range schedule {
		t += s.Time
	}
	return t
}
