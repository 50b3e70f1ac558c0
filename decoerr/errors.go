// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decoerr defines the three failure kinds the engine can raise.
// Each wraps a message built with gosl/chk.Err, the teacher codebase's
// formatted-error idiom, but stays a distinct type so callers can
// errors.As instead of string-matching.
package decoerr

import (
	"github.com/cpmech/gosl/chk"
)

// InvalidGasError reports a gas whose fractions are out of range or do
// not sum to 1 within tolerance.
type InvalidGasError struct {
	msg string
}

func (e *InvalidGasError) Error() string { return e.msg }

// NewInvalidGas builds an InvalidGasError with a formatted message.
func NewInvalidGas(format string, args ...interface{}) *InvalidGasError {
	return &InvalidGasError{msg: chk.Err(format, args...).Error()}
}

// CannotDiluteError reports that no effective CCR gas exists for the
// given ambient pressure, setpoint and diluent.
type CannotDiluteError struct {
	msg string
}

func (e *CannotDiluteError) Error() string { return e.msg }

// NewCannotDilute builds a CannotDiluteError with a formatted message.
func NewCannotDilute(format string, args ...interface{}) *CannotDiluteError {
	return &CannotDiluteError{msg: chk.Err(format, args...).Error()}
}

// MaxDurationExceededError reports that a deco scheduler hit its iteration
// cap or its limit on total simulated ascent time before reaching the
// surface.
type MaxDurationExceededError struct {
	msg string
}

func (e *MaxDurationExceededError) Error() string { return e.msg }

// NewMaxDurationExceeded builds a MaxDurationExceededError with a
// formatted message.
func NewMaxDurationExceeded(format string, args ...interface{}) *MaxDurationExceededError {
	return &MaxDurationExceededError{msg: chk.Err(format, args...).Error()}
}
