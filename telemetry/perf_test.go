package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseStep)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration")
	}
	if _, ok := stats.PhaseAvg[PhaseStep]; !ok {
		t.Error("expected step phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseDraw]; !ok {
		t.Error("expected draw phase to be tracked")
	}
	if stats.FPS <= 0 {
		t.Error("expected positive FPS after several frames")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseStep)
		pc.EndFrame()
	}

	if pc.Frames() != 5 {
		t.Errorf("expected window of 5 frames, got %d", pc.Frames())
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseParticles)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(500 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	fast := stats.PhasePct[PhaseParticles]
	slow := stats.PhasePct[PhaseDraw]

	if slow <= fast {
		t.Errorf("expected draw (%v%%) > particles (%v%%)", slow, fast)
	}

	row := stats.ToCSV(42)
	if row.Tick != 42 || row.DrawPct != slow {
		t.Errorf("unexpected csv row %+v", row)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
	if stats.FPS != 0 {
		t.Errorf("expected no FPS without frames, got %v", stats.FPS)
	}
}

func TestPerfCollector_FrameRate(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 4; i++ {
		pc.StartFrame()
		pc.EndFrame()
		time.Sleep(16 * time.Millisecond)
	}

	stats := pc.Stats()

	// With ~16ms frames, expect ~60 FPS (allow a wide range for slow CI)
	if stats.FPS < 20 || stats.FPS > 70 {
		t.Errorf("expected FPS between 20-70 with 16ms frames, got %v", stats.FPS)
	}
}
