package gas

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func TestNewValid(tst *testing.T) {

	chk.PrintTitle("valid gas construction")

	m, err := New(0.21, 0.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "fN2", 1e-15, m.FN2, 0.79)
}

func TestNewInvalidSum(tst *testing.T) {

	chk.PrintTitle("gas fractions must sum to 1")

	_, err := New(0.5, 0.6)
	if err == nil {
		tst.Fatal("expected InvalidGasError, got nil")
	}
}

func TestNewOutOfRange(tst *testing.T) {

	chk.PrintTitle("gas fraction out of range")

	_, err := New(1.5, 0.0)
	if err == nil {
		tst.Fatal("expected InvalidGasError, got nil")
	}
}

func TestApplyParams(tst *testing.T) {

	chk.PrintTitle("gas from named parameters")

	m, err := ApplyParams(fun.Prms{
		&fun.Prm{N: "fo2", V: 0.18},
		&fun.Prm{N: "fhe", V: 0.45},
		&fun.Prm{N: "mod", V: 45},
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "fN2", 1e-15, m.FN2, 0.37)
	chk.Scalar(tst, "mod", 1e-15, m.MOD, 45)
}

func TestApplyParamsUnknown(tst *testing.T) {

	chk.PrintTitle("gas unknown parameter name rejected")

	_, err := ApplyParams(fun.Prms{&fun.Prm{N: "bogus", V: 1}})
	if err == nil {
		tst.Fatal("expected error for unknown parameter")
	}
}
