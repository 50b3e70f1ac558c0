package gas

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/decogo/zhl16/press"
)

func TestEffectiveGasAt60m(tst *testing.T) {

	chk.PrintTitle("CCR effective gas at 60m, diluent 10/50, SP 1.3")

	diluent, err := New(0.10, 0.50)
	if err != nil {
		tst.Fatalf("diluent: %v", err)
	}

	Pamb := press.DepthToPressure(60, press.DefaultSurfacePressure, press.DefaultWaterDensity)
	eff, err := EffectiveGas(Pamb, 1.3, diluent)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	if eff.FO2 < 0.17 || eff.FO2 > 0.20 {
		tst.Errorf("fO2 = %.4f, want ~0.184", eff.FO2)
	}

	diluentRatio := diluent.FHe / (diluent.FHe + diluent.FN2)
	effRatio := eff.FHe / (eff.FHe + eff.FN2)
	chk.Scalar(tst, "He ratio preserved", 0.01, effRatio, diluentRatio)
}

func TestEffectiveGasCannotDilute(tst *testing.T) {

	chk.PrintTitle("CCR cannot dilute when diluent too lean")

	diluent, _ := New(0.99, 0.0) // almost pure O2 diluent: fN2=0.01
	Pamb := press.DepthToPressure(3, press.DefaultSurfacePressure, press.DefaultWaterDensity)

	_, err := EffectiveGas(Pamb, 1.3, diluent)
	if err == nil {
		tst.Fatal("expected CannotDiluteError")
	}
}

func TestEffectiveGasSetpointCappedAtAmbient(tst *testing.T) {

	chk.PrintTitle("CCR setpoint capped at ambient near surface")

	diluent := Air
	Pamb := press.DefaultSurfacePressure // ~1.01 bar, less than SP 1.3
	eff, err := EffectiveGas(Pamb, 1.3, diluent)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "fO2 capped", 1e-9, eff.FO2, 1.0)
}
