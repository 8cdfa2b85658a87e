package main

import (
	"math"
	"testing"
)

// almostEqual reports whether two kcal values agree within 0.1 — the tolerance
// used throughout these tests for float formula results.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.1
}

/* ─── BMR formula tests ──────────────────────────────────────────────── */

// TestComputeBMR_Male verifies the male Mifflin-St Jeor variant with known
// inputs: 10*80 + 6.25*180 - 5*30 + 5 = 1780.0.
func TestComputeBMR_Male(t *testing.T) {
	got := computeBMR(80, 180, 30, sexMale)
	if !almostEqual(got, 1780.0) {
		t.Errorf("computeBMR(80, 180, 30, male) = %f, want 1780.0", got)
	}
}

// TestComputeBMR_Female verifies the female variant: same linear part but
// -161 instead of +5: 10*65 + 6.25*165 - 5*25 - 161 = 1395.25.
func TestComputeBMR_Female(t *testing.T) {
	got := computeBMR(65, 165, 25, sexFemale)
	if !almostEqual(got, 1395.25) {
		t.Errorf("computeBMR(65, 165, 25, female) = %f, want 1395.25", got)
	}
}

// TestComputeBMR_OtherIsMidpoint verifies that the sexOther estimate equals
// the average of the male and female estimates for identical inputs.
func TestComputeBMR_OtherIsMidpoint(t *testing.T) {
	male := computeBMR(70, 170, 35, sexMale)
	female := computeBMR(70, 170, 35, sexFemale)
	other := computeBMR(70, 170, 35, sexOther)

	want := (male + female) / 2
	if !almostEqual(other, want) {
		t.Errorf("computeBMR(70, 170, 35, other) = %f, want midpoint %f", other, want)
	}
}

/* ─── Floor clamp tests ──────────────────────────────────────────────── */

// TestComputeBMR_FloorClamp verifies that inputs driving the raw formula below
// 1000 return exactly the floor. Raw value here: 10*30 + 6.25*120 - 5*80 - 161
// = 489, well under the clamp.
func TestComputeBMR_FloorClamp(t *testing.T) {
	got := computeBMR(30, 120, 80, sexFemale)
	if got != bmrFloor {
		t.Errorf("computeBMR(30, 120, 80, female) = %f, want exactly %f", got, bmrFloor)
	}
}

// TestComputeBMR_FloorClamp_NegativeRaw verifies totality: even inputs that
// push the raw formula negative still yield the floor, not an error or a
// negative rate.
func TestComputeBMR_FloorClamp_NegativeRaw(t *testing.T) {
	got := computeBMR(1, 1, 120, sexFemale)
	if got != bmrFloor {
		t.Errorf("computeBMR(1, 1, 120, female) = %f, want exactly %f", got, bmrFloor)
	}
}

// TestComputeBMR_AboveFloorUnclamped verifies the clamp never touches results
// already above the floor.
func TestComputeBMR_AboveFloorUnclamped(t *testing.T) {
	got := computeBMR(80, 180, 30, sexMale)
	if got <= bmrFloor {
		t.Errorf("computeBMR(80, 180, 30, male) = %f, expected a value above the floor", got)
	}
}

/* ─── Purity tests ───────────────────────────────────────────────────── */

// TestComputeBMR_Idempotent verifies that repeated calls with identical inputs
// yield identical output — computeBMR holds no hidden state. 1000 iterations
// mirrors how the function gets hammered in per-frame UI recomputation.
func TestComputeBMR_Idempotent(t *testing.T) {
	first := computeBMR(75, 175, 30, sexMale)
	for i := 0; i < 1000; i++ {
		if got := computeBMR(75, 175, 30, sexMale); got != first {
			t.Fatalf("call %d returned %f, first call returned %f", i, got, first)
		}
	}
}

/* ─── TDEE tests ─────────────────────────────────────────────────────── */

// TestComputeTDEE_Moderate verifies the contractual moderate multiplier:
// 1800 * 1.55 = 2790.
func TestComputeTDEE_Moderate(t *testing.T) {
	got, ok := computeTDEE(1800, activityModerate)
	if !ok {
		t.Fatal("expected ok=true for moderate activity level")
	}
	if !almostEqual(got, 2790.0) {
		t.Errorf("computeTDEE(1800, moderate) = %f, want 2790.0", got)
	}
}

// TestComputeTDEE_AllLevels verifies every multiplier in the table against the
// level constants, so a table edit that breaks the ordinal ordering is caught.
func TestComputeTDEE_AllLevels(t *testing.T) {
	cases := []struct {
		level activityLevel
		want  float64
	}{
		{activitySedentary, 1200},
		{activityLight, 1375},
		{activityModerate, 1550},
		{activityActive, 1725},
		{activityVeryActive, 1900},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			got, ok := computeTDEE(1000, tc.level)
			if !ok {
				t.Fatalf("expected ok=true for level %q", tc.level)
			}
			if !almostEqual(got, tc.want) {
				t.Errorf("computeTDEE(1000, %s) = %f, want %f", tc.level, got, tc.want)
			}
		})
	}
}

// TestComputeTDEE_UnknownLevel verifies that an unrecognised activity level
// produces ok=false rather than a silent zero multiplier.
func TestComputeTDEE_UnknownLevel(t *testing.T) {
	if _, ok := computeTDEE(1800, activityLevel("couch_olympian")); ok {
		t.Error("expected ok=false for unknown activity level, got ok=true")
	}
}
