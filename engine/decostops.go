// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/decogo/zhl16/config"
	"github.com/decogo/zhl16/decoerr"
	"github.com/decogo/zhl16/gas"
	"github.com/decogo/zhl16/tissue"
)

// maxSchedulerIterations defends the deco loop against runaway inputs
// (spec: ~100,000).
const maxSchedulerIterations = 100000

// maxDecoMinutes bounds the simulated ascent: a schedule whose total time
// passes 24 hours is reported as MaxDurationExceeded.
const maxDecoMinutes = 24 * 60.0

// depthAtSurface is the "we have arrived" threshold (spec: 1cm).
const depthAtSurface = 0.01

// gasCandidate pairs a deco gas with its precomputed switch depth.
type gasCandidate struct {
	gas        gas.Mix
	switchDepth float64
	taken       bool
}

// decoSwitchDepth is the deepest multiple of stopIncrement <= MOD.
func decoSwitchDepth(g gas.Mix, stopIncrement float64) float64 {
	return math.Floor(g.MOD/stopIncrement) * stopIncrement
}

func sameGas(a, b gas.Mix) bool {
	const tol = 1e-3
	return math.Abs(a.FO2-b.FO2) < tol && math.Abs(a.FHe-b.FHe) < tol
}

func safeToBreatheAt(g gas.Mix, depth float64) bool {
	if g.MOD <= 0 {
		return true
	}
	return depth <= g.MOD+1e-9
}

// CalculateDecoStops runs the open-circuit, single- or multi-gas deco
// scheduler from currentDepth to the surface, on the engine's current
// tissue state (this mutates the engine -- clone first if the caller
// wants a what-if answer without committing to it).
func (e *Engine) CalculateDecoStops(gfLow, gfHigh, currentDepth float64, bottomGas gas.Mix, decoGases []gas.Mix, cfg config.Deco, surfacePressure float64) ([]DiveSegment, error) {
	gfLow, gfHigh = clampAndOrder(gfLow, gfHigh)
	firstStop := e.firstStopDepth(gfLow, surfacePressure)

	candidates := make([]gasCandidate, len(decoGases))
	for i, g := range decoGases {
		candidates[i] = gasCandidate{gas: g, switchDepth: decoSwitchDepth(g, cfg.StopIncrement)}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].switchDepth > candidates[j].switchDepth })

	var schedule []DiveSegment
	depth := currentDepth
	current := bottomGas

	for iter := 0; ; iter++ {
		if depth <= depthAtSurface {
			return schedule, nil
		}
		if iter >= maxSchedulerIterations {
			e.Trace.Warn("deco scheduler hit iteration cap at depth=%.2f", depth)
			return nil, decoerr.NewMaxDurationExceeded("deco: exceeded %d iterations at depth=%.2fm", maxSchedulerIterations, depth)
		}
		if totalTime(schedule) > maxDecoMinutes {
			e.Trace.Warn("deco scheduler passed %.0f minutes at depth=%.2f", maxDecoMinutes, depth)
			return nil, decoerr.NewMaxDurationExceeded("deco: schedule exceeded %.0f minutes at depth=%.2fm", maxDecoMinutes, depth)
		}

		stop := nextStop(depth, cfg.StopIncrement, cfg.LastStopDepth)

		if switched, segs := e.trySwitchGas(candidates, depth, current, cfg); switched != nil {
			charged := false
			for _, seg := range segs {
				if seg.Time > 0 {
					tissue.AddSegment(e.state, e.depthToPressure(seg.StartDepth, surfacePressure), e.depthToPressure(seg.EndDepth, surfacePressure), seg.Time, seg.Gas.FN2, seg.Gas.FHe)
					charged = true
				}
				schedule = append(schedule, seg)
			}
			current = *switched
			if charged {
				continue
			}
			// disabled mode: no time charged, fall through to the ceiling check this same iteration
		}

		fixedFirst := firstStop
		ceiling := e.Ceiling(gfLow, gfHigh, &fixedFirst, surfacePressure)

		if ceiling <= stop+ceilingEps {
			seg := DiveSegment{StartDepth: depth, EndDepth: stop, Time: (depth - stop) / cfg.AscentRate, Gas: current}
			e.Trace.Ascend(depth, stop, seg.Time, gasLabel(current))
			tissue.AddSegment(e.state, e.depthToPressure(depth, surfacePressure), e.depthToPressure(stop, surfacePressure), seg.Time, current.FN2, current.FHe)
			schedule = append(schedule, seg)
			depth = stop
			continue
		}

		seg := DiveSegment{StartDepth: depth, EndDepth: depth, Time: 1.0, Gas: current}
		e.Trace.Stop(depth, seg.Time, gasLabel(current))
		tissue.AddSegment(e.state, e.depthToPressure(depth, surfacePressure), e.depthToPressure(depth, surfacePressure), seg.Time, current.FN2, current.FHe)
		schedule = append(schedule, seg)
	}
}

// trySwitchGas evaluates the gas-switch check of spec.md §4.7. It returns
// the newly selected gas (nil if none) and the segments the chosen
// gasSwitchMode charges (empty for "disabled").
func (e *Engine) trySwitchGas(candidates []gasCandidate, depth float64, current gas.Mix, cfg config.Deco) (*gas.Mix, []DiveSegment) {
	best := -1
	for i := range candidates {
		c := &candidates[i]
		if c.taken || c.switchDepth < depth || !safeToBreatheAt(c.gas, depth) {
			continue
		}
		if sameGas(c.gas, current) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		bc := candidates[best]
		if c.gas.FO2 > bc.gas.FO2 || (c.gas.FO2 == bc.gas.FO2 && c.gas.FHe > bc.gas.FHe) {
			best = i
		}
	}
	if best < 0 {
		return nil, nil
	}

	chosen := candidates[best].gas
	candidates[best].taken = true
	e.Trace.GasSwitch(depth, gasLabel(current), gasLabel(chosen))

	switch cfg.GasSwitchMode {
	case config.SwitchMinimum:
		return &chosen, []DiveSegment{{StartDepth: depth, EndDepth: depth, Time: cfg.GasSwitchTime, Gas: chosen}}
	case config.SwitchAdditive:
		return &chosen, []DiveSegment{{StartDepth: depth, EndDepth: depth, Time: cfg.GasSwitchTime, Gas: current}}
	default: // SwitchDisabled
		return &chosen, nil
	}
}

func gasLabel(g gas.Mix) string {
	return io.Sf("%.0f/%.0f", g.FO2*100, g.FHe*100)
}
