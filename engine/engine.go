// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine owns the 16-compartment tissue-state vector and exposes
// the safety-critical queries and schedulers built on top of it: ceiling,
// NDL, open-circuit and CCR deco schedules, time-to-surface and bailout
// planning. It follows the teacher's fem.Domain shape: a single object
// that owns a vector of sub-entities, mutates it through explicit calls,
// and answers read-only queries by operating on throwaway clones.
package engine

import (
	"github.com/decogo/zhl16/gas"
	"github.com/decogo/zhl16/internal/logx"
	"github.com/decogo/zhl16/press"
	"github.com/decogo/zhl16/tissue"
)

// DiveSegment is a linear depth change, at constant rate, over Time
// minutes, breathing Gas. It doubles as the ascent-schedule element type:
// a stop is a DiveSegment with StartDepth == EndDepth.
type DiveSegment struct {
	StartDepth float64
	EndDepth   float64
	Time       float64 // minutes, > 0
	Gas        gas.Mix
}

// Engine owns one dive's tissue state and the parameters that convert
// depth to pressure for it.
type Engine struct {
	state       *tissue.State
	waterDensity float64

	// SurfacePressure records the operating surface pressure (bar) given
	// at construction, distinct from the (possibly altitude-adjusted)
	// pressure used once at InitializeTissues time. The engine's methods
	// do not read it: each takes its own surfacePressure argument for
	// depth<->pressure conversions.
	SurfacePressure float64

	// Trace narrates scheduler decisions when enabled; off by default.
	Trace logx.Trace
}

// NewEngine constructs an engine at rest on air at initialSurfacePressure,
// recording surfacePressure in the SurfacePressure field. Passing initialSurfacePressure
// equal to surfacePressure (the common case) is a sea-level dive; a lower
// initialSurfacePressure models a diver who has equilibrated at altitude
// before diving at a different (e.g. sea-level) reference pressure.
func NewEngine(surfacePressure, waterDensity, initialSurfacePressure float64) *Engine {
	e := &Engine{
		state:           tissue.NewState(),
		waterDensity:    waterDensity,
		SurfacePressure: surfacePressure,
	}
	e.InitializeTissues(initialSurfacePressure, gas.Air)
	return e
}

// NewDefaultEngine constructs an engine using the spec's default surface
// pressure and water density (salt water, sea level).
func NewDefaultEngine() *Engine {
	return NewEngine(press.DefaultSurfacePressure, press.DefaultWaterDensity, press.DefaultSurfacePressure)
}

// InitializeTissues seeds every compartment from a surface-equilibrium
// assumption at the given surface pressure and gas, discarding any prior
// tissue state. Used to pre-saturate a diver at one altitude before
// diving at another reference pressure.
func (e *Engine) InitializeTissues(surfacePressure float64, g gas.Mix) {
	e.state.InitSurfaceEquilibrium(surfacePressure, g.FN2, g.FHe)
}

// AddSegment applies an open-circuit segment: a linear depth change from
// startDepth to endDepth over time minutes, breathing g, at the given
// surface pressure. time <= 0 is a defensive no-op.
func (e *Engine) AddSegment(startDepth, endDepth, time float64, g gas.Mix, surfacePressure float64) {
	if time <= 0 {
		return
	}
	P0 := e.depthToPressure(startDepth, surfacePressure)
	P1 := e.depthToPressure(endDepth, surfacePressure)
	tissue.AddSegment(e.state, P0, P1, time, g.FN2, g.FHe)
}

// AddCCRSegment applies a CCR segment held at constant setpoint on
// diluent. Segments whose start and end depth differ by more than 1cm
// are discretised into <=0.5m steps, each using the effective gas at the
// step's midpoint depth; a constant-depth segment uses one effective gas.
func (e *Engine) AddCCRSegment(startDepth, endDepth, time float64, diluent gas.Mix, setpoint, surfacePressure float64) error {
	if time <= 0 {
		return nil
	}
	steps, err := ccrSteps(startDepth, endDepth, time, diluent, setpoint, surfacePressure, e.waterDensity)
	if err != nil {
		return err
	}
	for _, st := range steps {
		P0 := e.depthToPressure(st.startDepth, surfacePressure)
		P1 := e.depthToPressure(st.endDepth, surfacePressure)
		tissue.AddSegment(e.state, P0, P1, st.time, st.effective.FN2, st.effective.FHe)
	}
	return nil
}

// Clone returns an independent engine sharing no mutable state with e, so
// callers can run "what-if" analyses on clones in parallel without
// perturbing the real dive.
func (e *Engine) Clone() *Engine {
	return &Engine{
		state:           e.state.Clone(),
		waterDensity:    e.waterDensity,
		SurfacePressure: e.SurfacePressure,
		Trace:           e.Trace,
	}
}

// Compartments exposes the current tissue state for inspection. Callers
// must not mutate the returned slices; use Clone to obtain a mutable copy.
func (e *Engine) Compartments() (pN2, pHe []float64) {
	return e.state.PN2, e.state.PHe
}

func (e *Engine) depthToPressure(depth, surfacePressure float64) float64 {
	return press.DepthToPressure(depth, surfacePressure, e.waterDensity)
}

func (e *Engine) pressureToDepth(p, surfacePressure float64) float64 {
	return press.PressureToDepth(p, surfacePressure, e.waterDensity)
}
