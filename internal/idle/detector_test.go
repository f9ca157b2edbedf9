package idle

import (
	"testing"
	"time"
)

var base = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestNoCrossingBeforeThreshold(t *testing.T) {
	d := NewDetector(base, DefaultThresholds())

	if got := d.Check(base.Add(29 * time.Minute)); len(got) != 0 {
		t.Errorf("expected no crossings at 29m, got %d", len(got))
	}
}

func TestOneShotFiresOncePerIdlePeriod(t *testing.T) {
	d := NewDetector(base, DefaultThresholds())

	first := d.Check(base.Add(31 * time.Minute))
	if len(first) != 1 || first[0].Threshold.Kind != "stretch" {
		t.Fatalf("expected single stretch crossing, got %v", first)
	}

	// Still idle, checked again 5 minutes later: the one-shot must stay quiet.
	if got := d.Check(base.Add(36 * time.Minute)); len(got) != 0 {
		t.Errorf("expected no repeat of one-shot crossing, got %d", len(got))
	}

	// Activity re-arms it.
	d.RecordActivity(base.Add(40 * time.Minute))
	again := d.Check(base.Add(71 * time.Minute))
	if len(again) != 1 || again[0].Threshold.Kind != "stretch" {
		t.Errorf("expected stretch crossing after re-arm, got %v", again)
	}
}

func TestRepeatableFiresEveryCheck(t *testing.T) {
	d := NewDetector(base, DefaultThresholds())

	// At 2h both thresholds have been met; the one-shot fires alongside.
	first := d.Check(base.Add(121 * time.Minute))
	if len(first) != 2 {
		t.Fatalf("expected both crossings at 121m, got %d", len(first))
	}

	for i := 1; i <= 3; i++ {
		got := d.Check(base.Add(time.Duration(121+5*i) * time.Minute))
		if len(got) != 1 || got[0].Threshold.Kind != "eye" {
			t.Errorf("check %d: expected repeating eye crossing, got %v", i, got)
		}
	}
}

func TestThresholdsEvaluateIndependently(t *testing.T) {
	d := NewDetector(base, DefaultThresholds())

	got := d.Check(base.Add(3 * time.Hour))
	kinds := map[string]bool{}
	for _, c := range got {
		kinds[c.Threshold.Kind] = true
	}
	if !kinds["stretch"] || !kinds["eye"] {
		t.Errorf("expected stretch and eye crossings, got %v", kinds)
	}
}

func TestRecordActivityIgnoresStaleTimestamps(t *testing.T) {
	d := NewDetector(base, DefaultThresholds())

	d.RecordActivity(base.Add(10 * time.Minute))
	d.RecordActivity(base.Add(5 * time.Minute)) // out of order, ignored

	if got := d.LastActivity(); !got.Equal(base.Add(10 * time.Minute)) {
		t.Errorf("expected last activity at +10m, got %v", got)
	}
}

func TestCrossingCarriesElapsed(t *testing.T) {
	d := NewDetector(base, DefaultThresholds())

	got := d.Check(base.Add(45 * time.Minute))
	if len(got) != 1 {
		t.Fatalf("expected one crossing, got %d", len(got))
	}
	if got[0].Elapsed != 45*time.Minute {
		t.Errorf("expected elapsed 45m, got %v", got[0].Elapsed)
	}
}

func TestCheckBeforeLastActivityClampsToZero(t *testing.T) {
	d := NewDetector(base, DefaultThresholds())
	d.RecordActivity(base.Add(time.Hour))

	if got := d.Check(base.Add(30 * time.Minute)); len(got) != 0 {
		t.Errorf("expected no crossings for negative elapsed, got %d", len(got))
	}
}
