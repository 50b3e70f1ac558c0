package tissue

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"

	"github.com/decogo/zhl16/press"
)

// schreinerNumeric cross-checks the closed-form Schreiner solution against
// a direct numerical integration of the same first-order linear ODE
//
//	dP/dτ = k*(Palv(τ) - P),   Palv(τ) = Palv0 + R*τ
//
// using gosl/ode.Solver, the same "Radau5" dual analytic/numeric pattern
// the teacher's ana.ColumnFluidPressure uses (Calc vs CalcNum).
func schreinerNumeric(k, P0, P1, t, f, Pinitial float64) (float64, error) {
	Palv0 := (P0 - press.WaterVapourPressure) * f
	var R float64
	if t > 0 {
		R = ((P1 - P0) / t) * f
	}

	var sol ode.Solver
	sol.Init("Radau5", 1, func(fout []float64, dT, T float64, ξ []float64, args ...interface{}) error {
		Palv := Palv0 + R*T
		fout[0] = k * (Palv - ξ[0])
		return nil
	}, nil, nil, nil, true)

	y := []float64{Pinitial}
	err := sol.Solve(y, 0, t, t, false)
	return y[0], err
}

func TestSchreinerMatchesODENumeric(tst *testing.T) {

	chk.PrintTitle("Schreiner closed form matches numerical ODE integration")

	cases := []struct{ P0, P1, t, f, Pinit float64 }{
		{P0: 4.0435, P1: 4.0435, t: 4.0, f: 0.79, Pinit: 0.7509},
		{P0: 1.01325, P1: 5.05, t: 20.0, f: 0.79, Pinit: 0.7509},
		{P0: 5.05, P1: 0.30, t: 15.0, f: 0.18, Pinit: 3.0},
	}

	k := kN2(6) // an arbitrary mid-range compartment

	for i, c := range cases {
		closedForm := schreiner(k, c.P0, c.P1, c.t, c.f, c.Pinit, press.WaterVapourPressure)
		numeric, err := schreinerNumeric(k, c.P0, c.P1, c.t, c.f, c.Pinit)
		if err != nil {
			tst.Fatalf("case %d: ode solve failed: %v", i, err)
		}
		chk.Scalar(tst, "closed-form vs ODE", 1e-4, closedForm, numeric)
	}
}
