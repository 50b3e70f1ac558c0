// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package press implements the hydrostatic conversion between depth
// (metres of seawater) and absolute ambient pressure (bar).
package press

// Physical constants shared by the whole engine.
const (
	// WaterVapourPressure is the partial pressure of water vapour in the
	// alveoli (bar), subtracted from inspired pressure in the Schreiner
	// equation.
	WaterVapourPressure = 0.0627

	// Gravity is standard gravitational acceleration, m/s^2.
	Gravity = 9.80665

	// DefaultWaterDensity is salt water, kg/m^3.
	DefaultWaterDensity = 1030.0

	// DefaultSurfacePressure is one standard atmosphere, bar.
	DefaultSurfacePressure = 1.01325
)

// DepthToPressure converts depth d (metres) to absolute pressure (bar)
// given surface pressure Psurf (bar) and water density rho (kg/m^3).
func DepthToPressure(d, Psurf, rho float64) float64 {
	return Psurf + rho*Gravity*d/100000.0
}

// PressureToDepth inverts DepthToPressure exactly.
func PressureToDepth(p, Psurf, rho float64) float64 {
	return (p - Psurf) * 100000.0 / (rho * Gravity)
}
