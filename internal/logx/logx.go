// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx is an optional trace facility for the deco scheduler,
// following the teacher's io.Pf*-based progress narration
// (fem/domain.go, tests/debugKb.go). It is off by default so a silent
// engine pays no formatting cost.
package logx

import "github.com/cpmech/gosl/io"

// Trace narrates scheduler decisions when enabled.
type Trace struct {
	On bool
}

// Stop logs a stop-and-wait decision.
func (t Trace) Stop(depth, minutes float64, gasLabel string) {
	if !t.On {
		return
	}
	io.Pfyel("stop  %6.2fm  %5.2fmin  gas=%s\n", depth, minutes, gasLabel)
}

// Ascend logs an ascent-segment decision.
func (t Trace) Ascend(from, to, minutes float64, gasLabel string) {
	if !t.On {
		return
	}
	io.Pfgreen("ascend %6.2fm -> %6.2fm  %5.2fmin  gas=%s\n", from, to, minutes, gasLabel)
}

// GasSwitch logs a gas-switch decision.
func (t Trace) GasSwitch(depth float64, fromLabel, toLabel string) {
	if !t.On {
		return
	}
	io.Pforan("switch at %6.2fm  %s -> %s\n", depth, fromLabel, toLabel)
}

// Warn logs an anomalous condition (e.g. approaching the iteration cap).
func (t Trace) Warn(format string, args ...interface{}) {
	if !t.On {
		return
	}
	io.Pfred("warning: "+format+"\n", args...)
}
