// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config defines the deco-scheduler's tunable options, following
// the teacher's material-model configuration idiom: a typed struct with
// documented defaults, plus an alternate ApplyParams(fun.Prms) entry
// point for callers building configuration from named values.
package config

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// GasSwitchMode controls how time is charged when the scheduler swaps to
// a new deco gas.
type GasSwitchMode int

const (
	// SwitchDisabled performs an instant switch with no time charged.
	SwitchDisabled GasSwitchMode = iota
	// SwitchMinimum charges GasSwitchTime minutes on the new gas.
	SwitchMinimum
	// SwitchAdditive charges GasSwitchTime minutes on the old gas, then
	// switches.
	SwitchAdditive
)

// Deco holds the ascent-schedule policy. Zero value is invalid; use
// Default() to obtain a populated config.
type Deco struct {
	AscentRate          float64 // m/min, travel speed between stops
	SurfaceRate         float64 // m/min, informational speed from last stop to surface
	StopIncrement       float64 // m, spacing of candidate stop depths
	LastStopDepth       float64 // m, shallowest stop before surfacing
	GasSwitchTime       float64 // minutes charged at a gas switch
	GasSwitchMode       GasSwitchMode
	TroubleshootingTime float64 // minutes held on bailout gas before ascent
}

// Default returns the spec-mandated default configuration.
func Default() Deco {
	return Deco{
		AscentRate:          9.0,
		SurfaceRate:         3.0,
		StopIncrement:       3.0,
		LastStopDepth:       3.0,
		GasSwitchTime:       1.0,
		GasSwitchMode:       SwitchDisabled,
		TroubleshootingTime: 0.0,
	}
}

// ApplyParams overrides the receiver's fields from a named parameter
// list, the same "Init(prms fun.Prms)" idiom the teacher's material
// models use for configuration. Recognised names (case-insensitive):
// ascentrate, surfacerate, stopincrement, laststopdepth, gasswitchtime,
// troubleshootingtime, gasswitchmode (0=disabled,1=minimum,2=additive).
func (d *Deco) ApplyParams(prms fun.Prms) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ascentrate":
			d.AscentRate = p.V
		case "surfacerate":
			d.SurfaceRate = p.V
		case "stopincrement":
			d.StopIncrement = p.V
		case "laststopdepth":
			d.LastStopDepth = p.V
		case "gasswitchtime":
			d.GasSwitchTime = p.V
		case "troubleshootingtime":
			d.TroubleshootingTime = p.V
		case "gasswitchmode":
			mode := GasSwitchMode(int(p.V))
			if mode < SwitchDisabled || mode > SwitchAdditive {
				return chk.Err("config: gasswitchmode=%v is not a recognised mode", p.V)
			}
			d.GasSwitchMode = mode
		default:
			return chk.Err("config: parameter named %q is not recognised", p.N)
		}
	}
	return nil
}
