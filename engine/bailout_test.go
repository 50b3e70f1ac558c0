package engine

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/decogo/zhl16/gas"
	"github.com/decogo/zhl16/press"
)

func TestCCRBailoutPlan(tst *testing.T) {

	chk.PrintTitle("full CCR bailout plan, SP1.3 on 10/50 diluent")

	diluent, err := gas.New(0.10, 0.50)
	if err != nil {
		tst.Fatalf("gas: %v", err)
	}
	air := gas.Air

	e := NewDefaultEngine()
	ccrDive := []CCRPlanSegment{
		{StartDepth: 0, EndDepth: 50, Time: 10, Setpoint: 1.3},
		{StartDepth: 50, EndDepth: 50, Time: 20, Setpoint: 1.3},
	}

	cfg := defaultTestConfig()
	cfg.TroubleshootingTime = 1.0

	analysis, err := e.CalculateBailoutPlan(ccrDive, diluent, []gas.Mix{air}, 0.30, 0.85, cfg, press.DefaultSurfacePressure)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	if analysis.WorstCaseDepth <= 0 {
		tst.Errorf("worst-case depth = %v, want > 0", analysis.WorstCaseDepth)
	}
	if len(analysis.BailoutSchedule) == 0 {
		tst.Fatal("expected a non-empty bailout schedule")
	}
	if analysis.BailoutSchedule[0].Time != cfg.TroubleshootingTime {
		tst.Errorf("expected the schedule to open with the %.1f-minute troubleshooting hold, got %.2f", cfg.TroubleshootingTime, analysis.BailoutSchedule[0].Time)
	}
	if analysis.WorstCaseTTS <= 0 {
		tst.Errorf("worst-case TTS = %v, want > 0", analysis.WorstCaseTTS)
	}
}

func TestCCRDecoShorterThanOCOnSameDiluent(tst *testing.T) {

	chk.PrintTitle("CCR at SP1.3 on diluent D has shorter deco than OC on D alone")

	diluent, err := gas.New(0.10, 0.50)
	if err != nil {
		tst.Fatalf("gas: %v", err)
	}

	ccr := NewDefaultEngine()
	if err := ccr.AddCCRSegment(0, 50, 10, diluent, 1.3, press.DefaultSurfacePressure); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if err := ccr.AddCCRSegment(50, 50, 20, diluent, 1.3, press.DefaultSurfacePressure); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	ccrSchedule, err := ccr.CalculateCCRDecoStops(0.30, 0.85, 50, diluent, 1.3, defaultTestConfig(), press.DefaultSurfacePressure)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	ccrTTS := totalTime(ccrSchedule)

	oc := NewDefaultEngine()
	oc.AddSegment(0, 50, 10, diluent, press.DefaultSurfacePressure)
	oc.AddSegment(50, 50, 20, diluent, press.DefaultSurfacePressure)
	ocTTS, err := oc.TimeToSurface(0.30, 0.85, 50, diluent, nil, defaultTestConfig(), press.DefaultSurfacePressure)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	if ccrTTS >= ocTTS {
		tst.Errorf("expected CCR tts (%.2f) < OC tts (%.2f) on the same hypoxic diluent", ccrTTS, ocTTS)
	}
}
