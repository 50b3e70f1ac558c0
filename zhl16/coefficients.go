// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zhl16 holds the published ZH-L16C compartment coefficients: one
// (half-time, a, b) triple per inert gas per compartment. The values are
// literature constants, not tunable model parameters, so unlike the rest
// of this module's domain packages there is nothing here to configure --
// only a table to look up.
package zhl16

// NumCompartments is the fixed number of tissue compartments in the model.
const NumCompartments = 16

// Coefficient holds the half-time (minutes) and Workman a/b coefficients
// for one compartment and one inert gas.
type Coefficient struct {
	HalfTime float64 // minutes
	A        float64 // bar
	B        float64 // dimensionless
}

// N2 holds the 16 nitrogen coefficients, ordered fastest (index 0) to
// slowest (index 15). Compartment 0 here is the "4 minute" compartment;
// this is the value used by this engine, not the alternate "5 minute /
// 1b" compartment some ZH-L16C tables substitute for surface-interval work.
var N2 = [NumCompartments]Coefficient{
	{HalfTime: 4.0, A: 1.2599, B: 0.5050},
	{HalfTime: 8.0, A: 1.0000, B: 0.6514},
	{HalfTime: 12.5, A: 0.8618, B: 0.7222},
	{HalfTime: 18.5, A: 0.7562, B: 0.7825},
	{HalfTime: 27.0, A: 0.6667, B: 0.8126},
	{HalfTime: 38.3, A: 0.5933, B: 0.8434},
	{HalfTime: 54.3, A: 0.5282, B: 0.8693},
	{HalfTime: 77.0, A: 0.4701, B: 0.8910},
	{HalfTime: 109.0, A: 0.4187, B: 0.9092},
	{HalfTime: 146.0, A: 0.3798, B: 0.9222},
	{HalfTime: 187.0, A: 0.3497, B: 0.9319},
	{HalfTime: 239.0, A: 0.3223, B: 0.9403},
	{HalfTime: 305.0, A: 0.2971, B: 0.9477},
	{HalfTime: 390.0, A: 0.2737, B: 0.9544},
	{HalfTime: 498.0, A: 0.2523, B: 0.9602},
	{HalfTime: 635.0, A: 0.2327, B: 0.9653},
}

// He holds the 16 helium coefficients, same ordering as N2. Half-times run
// roughly N2/2.65, per the original Buhlmann derivation from a shared
// diffusion model.
var He = [NumCompartments]Coefficient{
	{HalfTime: 1.51, A: 1.6189, B: 0.4770},
	{HalfTime: 3.02, A: 1.3830, B: 0.5747},
	{HalfTime: 4.72, A: 1.1919, B: 0.6527},
	{HalfTime: 6.99, A: 1.0458, B: 0.7223},
	{HalfTime: 10.21, A: 0.9220, B: 0.7582},
	{HalfTime: 14.48, A: 0.8205, B: 0.7957},
	{HalfTime: 20.53, A: 0.7305, B: 0.8279},
	{HalfTime: 29.11, A: 0.6502, B: 0.8553},
	{HalfTime: 41.20, A: 0.5950, B: 0.8757},
	{HalfTime: 55.19, A: 0.5545, B: 0.8903},
	{HalfTime: 70.69, A: 0.5333, B: 0.8997},
	{HalfTime: 90.34, A: 0.5189, B: 0.9073},
	{HalfTime: 115.29, A: 0.5181, B: 0.9122},
	{HalfTime: 147.42, A: 0.5176, B: 0.9171},
	{HalfTime: 188.24, A: 0.5172, B: 0.9217},
	{HalfTime: 240.03, A: 0.5119, B: 0.9267},
}
