// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/decogo/zhl16/config"
	"github.com/decogo/zhl16/gas"
	"github.com/decogo/zhl16/tissue"
)

// CCRPlanSegment is one leg of a planned CCR dive profile, as supplied to
// CalculateBailoutPlan.
type CCRPlanSegment struct {
	StartDepth float64
	EndDepth   float64
	Time       float64
	Setpoint   float64
}

// BailoutAnalysis is the worst-case open-circuit ascent if a CCR dive
// were aborted at any point along its planned profile.
type BailoutAnalysis struct {
	WorstCaseDepth         float64
	WorstCaseTTS           float64
	CCRSegmentsToWorstCase []CCRPlanSegment
	BailoutSchedule        []DiveSegment
}

// fromState builds a fresh engine sharing e's pressure parameters but
// starting from an already-computed tissue state, used to evaluate a
// bailout snapshot without replaying the whole CCR dive.
func (e *Engine) fromState(s *tissue.State) *Engine {
	return &Engine{
		state:           s,
		waterDensity:    e.waterDensity,
		SurfacePressure: e.SurfacePressure,
		Trace:           e.Trace,
	}
}

// CalculateBailoutPlan plays ccrDive segment by segment on a simulation
// copy of e, snapshotting tissue state at every segment boundary, then
// finds the boundary with the greatest OC time-to-surface on
// bailoutGases (bailoutGases[0] is the primary/bottom bailout gas, the
// rest are its deco gases) and returns that worst case's full ascent
// schedule, prefixed by a troubleshootingTime-long stop on the primary
// gas when cfg.TroubleshootingTime > 0.
func (e *Engine) CalculateBailoutPlan(ccrDive []CCRPlanSegment, diluent gas.Mix, bailoutGases []gas.Mix, gfLow, gfHigh float64, cfg config.Deco, surfacePressure float64) (BailoutAnalysis, error) {
	sim := e.Clone()

	type snapshot struct {
		depth   float64
		state   *tissue.State
		toHere  []CCRPlanSegment
	}
	var snapshots []snapshot
	var played []CCRPlanSegment

	for _, seg := range ccrDive {
		if err := sim.AddCCRSegment(seg.StartDepth, seg.EndDepth, seg.Time, diluent, seg.Setpoint, surfacePressure); err != nil {
			return BailoutAnalysis{}, err
		}
		played = append(played, seg)
		snapshots = append(snapshots, snapshot{
			depth:  seg.EndDepth,
			state:  sim.state.Clone(),
			toHere: append([]CCRPlanSegment(nil), played...),
		})
	}

	if len(snapshots) == 0 {
		return BailoutAnalysis{}, nil
	}

	primary := bailoutGases[0]
	decoGases := bailoutGases[1:]

	worst := -1
	var worstTTS float64
	for i, snap := range snapshots {
		probe := e.fromState(snap.state)
		tts, err := probe.TimeToSurface(gfLow, gfHigh, snap.depth, primary, decoGases, cfg, surfacePressure)
		if err != nil {
			return BailoutAnalysis{}, err
		}
		if worst < 0 || tts > worstTTS {
			worst = i
			worstTTS = tts
		}
	}

	chosen := snapshots[worst]
	planner := e.fromState(chosen.state.Clone())

	var schedule []DiveSegment
	if cfg.TroubleshootingTime > 0 {
		hold := DiveSegment{StartDepth: chosen.depth, EndDepth: chosen.depth, Time: cfg.TroubleshootingTime, Gas: primary}
		tissue.AddSegment(planner.state,
			planner.depthToPressure(chosen.depth, surfacePressure),
			planner.depthToPressure(chosen.depth, surfacePressure),
			hold.Time, primary.FN2, primary.FHe)
		schedule = append(schedule, hold)
	}

	ascent, err := planner.CalculateDecoStops(gfLow, gfHigh, chosen.depth, primary, decoGases, cfg, surfacePressure)
	if err != nil {
		return BailoutAnalysis{}, err
	}
	schedule = append(schedule, ascent...)

	return BailoutAnalysis{
		WorstCaseDepth:         chosen.depth,
		WorstCaseTTS:           cfg.TroubleshootingTime + totalTime(ascent),
		CCRSegmentsToWorstCase: chosen.toHere,
		BailoutSchedule:        schedule,
	}, nil
}
