// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"

	"github.com/decogo/zhl16/config"
	"github.com/decogo/zhl16/decoerr"
	"github.com/decogo/zhl16/gas"
	"github.com/decogo/zhl16/press"
)

// ccrStepSize is the maximum depth increment used to discretise a
// changing-depth CCR segment (spec: <=0.5m).
const ccrStepSize = 0.5

// ccrConstantDepthTolerance is how close start/end depth must be to be
// treated as one constant-depth segment (spec: 1cm).
const ccrConstantDepthTolerance = 0.01

type ccrStep struct {
	startDepth, endDepth, time float64
	effective                  gas.Mix
}

// ccrSteps discretises a CCR segment into <=ccrStepSize depth increments,
// each using the effective gas at the step's midpoint depth. A segment
// whose start and end depth are within 1cm is returned as one step.
func ccrSteps(startDepth, endDepth, time float64, diluent gas.Mix, setpoint, surfacePressure, waterDensity float64) ([]ccrStep, error) {
	delta := endDepth - startDepth
	if math.Abs(delta) <= ccrConstantDepthTolerance {
		eff, err := effectiveGasAt(startDepth, setpoint, diluent, surfacePressure, waterDensity)
		if err != nil {
			return nil, err
		}
		return []ccrStep{{startDepth: startDepth, endDepth: endDepth, time: time, effective: eff}}, nil
	}

	n := int(math.Ceil(math.Abs(delta) / ccrStepSize))
	steps := make([]ccrStep, n)
	depthStep := delta / float64(n)
	timeStep := time / float64(n)
	for i := 0; i < n; i++ {
		s0 := startDepth + float64(i)*depthStep
		s1 := startDepth + float64(i+1)*depthStep
		mid := (s0 + s1) / 2
		eff, err := effectiveGasAt(mid, setpoint, diluent, surfacePressure, waterDensity)
		if err != nil {
			return nil, err
		}
		steps[i] = ccrStep{startDepth: s0, endDepth: s1, time: timeStep, effective: eff}
	}
	return steps, nil
}

func effectiveGasAt(depth, setpoint float64, diluent gas.Mix, surfacePressure, waterDensity float64) (gas.Mix, error) {
	Pamb := press.DepthToPressure(depth, surfacePressure, waterDensity)
	return gas.EffectiveGas(Pamb, setpoint, diluent)
}

// CalculateCCRDecoStops runs the same scheduler skeleton as
// CalculateDecoStops with no gas-switch step: ppO2 is held constant at
// setpoint throughout, and every stop/ascent segment carries the
// effective gas re-derived at its depth (stops) or midpoint (ascents).
func (e *Engine) CalculateCCRDecoStops(gfLow, gfHigh, currentDepth float64, diluent gas.Mix, setpoint float64, cfg config.Deco, surfacePressure float64) ([]DiveSegment, error) {
	gfLow, gfHigh = clampAndOrder(gfLow, gfHigh)
	firstStop := e.firstStopDepth(gfLow, surfacePressure)

	var schedule []DiveSegment
	depth := currentDepth

	for iter := 0; ; iter++ {
		if depth <= depthAtSurface {
			return schedule, nil
		}
		if iter >= maxSchedulerIterations {
			e.Trace.Warn("CCR deco scheduler hit iteration cap at depth=%.2f", depth)
			return nil, decoerr.NewMaxDurationExceeded("ccr deco: exceeded %d iterations at depth=%.2fm", maxSchedulerIterations, depth)
		}
		if totalTime(schedule) > maxDecoMinutes {
			e.Trace.Warn("CCR deco scheduler passed %.0f minutes at depth=%.2f", maxDecoMinutes, depth)
			return nil, decoerr.NewMaxDurationExceeded("ccr deco: schedule exceeded %.0f minutes at depth=%.2fm", maxDecoMinutes, depth)
		}

		stop := nextStop(depth, cfg.StopIncrement, cfg.LastStopDepth)

		fixedFirst := firstStop
		ceiling := e.Ceiling(gfLow, gfHigh, &fixedFirst, surfacePressure)

		if ceiling <= stop+ceilingEps {
			eff, err := effectiveGasAt((depth+stop)/2, setpoint, diluent, surfacePressure, e.waterDensity)
			if err != nil {
				return nil, err
			}
			t := (depth - stop) / cfg.AscentRate
			e.Trace.Ascend(depth, stop, t, gasLabel(eff))
			if err := e.AddCCRSegment(depth, stop, t, diluent, setpoint, surfacePressure); err != nil {
				return nil, err
			}
			schedule = append(schedule, DiveSegment{StartDepth: depth, EndDepth: stop, Time: t, Gas: eff})
			depth = stop
			continue
		}

		eff, err := effectiveGasAt(depth, setpoint, diluent, surfacePressure, e.waterDensity)
		if err != nil {
			return nil, err
		}
		e.Trace.Stop(depth, 1.0, gasLabel(eff))
		if err := e.AddCCRSegment(depth, depth, 1.0, diluent, setpoint, surfacePressure); err != nil {
			return nil, err
		}
		schedule = append(schedule, DiveSegment{StartDepth: depth, EndDepth: depth, Time: 1.0, Gas: eff})
	}
}
