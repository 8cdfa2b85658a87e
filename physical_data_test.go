package main

import (
	"testing"
)

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func sexPtr(v biologicalSex) *biologicalSex { return &v }

// makeCompleteData constructs a physicalData with all four measured fields set.
// Individual tests nil out specific fields to exercise optionality handling.
func makeCompleteData() physicalData {
	return physicalData{
		WeightKG: fptr(75),
		HeightCM: fptr(175),
		Age:      iptr(30),
		Sex:      sexPtr(sexMale),
	}
}

/* ─── Completeness tests ─────────────────────────────────────────────── */

// TestHasCompleteData verifies that completeness requires exactly the four
// measured fields — BMR and TDEE are derived and not counted.
func TestHasCompleteData(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(p *physicalData)
		want  bool
	}{
		{"all present", func(p *physicalData) {}, true},
		{"nil weight", func(p *physicalData) { p.WeightKG = nil }, false},
		{"nil height", func(p *physicalData) { p.HeightCM = nil }, false},
		{"nil age", func(p *physicalData) { p.Age = nil }, false},
		{"nil sex", func(p *physicalData) { p.Sex = nil }, false},
		{"missing BMR does not matter", func(p *physicalData) { p.BMR = nil; p.TDEE = nil }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := makeCompleteData()
			tc.mutFn(&p)
			if got := p.hasCompleteData(); got != tc.want {
				t.Errorf("hasCompleteData() = %v, want %v", got, tc.want)
			}
		})
	}
}

/* ─── Formatted accessor tests ───────────────────────────────────────── */

// TestFormattedAccessors_Present verifies the display rendering of each field:
// weight gets one forced decimal, height drops trailing zero decimals but keeps
// genuine fractions, age gets a " years" suffix, sex gets its capitalized label.
func TestFormattedAccessors_Present(t *testing.T) {
	cases := []struct {
		name string
		p    physicalData
		get  func(p physicalData) *string
		want string
	}{
		{"weight one decimal", physicalData{WeightKG: fptr(75)}, physicalData.formattedWeight, "75.0 kg"},
		{"weight keeps half", physicalData{WeightKG: fptr(82.5)}, physicalData.formattedWeight, "82.5 kg"},
		{"height integral", physicalData{HeightCM: fptr(175)}, physicalData.formattedHeight, "175 cm"},
		{"height fractional", physicalData{HeightCM: fptr(175.5)}, physicalData.formattedHeight, "175.5 cm"},
		{"age", physicalData{Age: iptr(30)}, physicalData.formattedAge, "30 years"},
		{"sex male", physicalData{Sex: sexPtr(sexMale)}, physicalData.formattedSex, "Male"},
		{"sex female", physicalData{Sex: sexPtr(sexFemale)}, physicalData.formattedSex, "Female"},
		{"sex other", physicalData{Sex: sexPtr(sexOther)}, physicalData.formattedSex, "Other"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.get(tc.p)
			if got == nil {
				t.Fatal("expected a formatted string, got nil")
			}
			if *got != tc.want {
				t.Errorf("formatted value = %q, want %q", *got, tc.want)
			}
		})
	}
}

// TestFormattedAccessors_Absent verifies that an absent field formats as nil —
// never as an empty string or a placeholder.
func TestFormattedAccessors_Absent(t *testing.T) {
	var p physicalData

	if got := p.formattedWeight(); got != nil {
		t.Errorf("formattedWeight() on absent weight = %q, want nil", *got)
	}
	if got := p.formattedHeight(); got != nil {
		t.Errorf("formattedHeight() on absent height = %q, want nil", *got)
	}
	if got := p.formattedAge(); got != nil {
		t.Errorf("formattedAge() on absent age = %q, want nil", *got)
	}
	if got := p.formattedSex(); got != nil {
		t.Errorf("formattedSex() on absent sex = %q, want nil", *got)
	}
}

/* ─── TDEE delegation tests ──────────────────────────────────────────── */

// TestCalculateTDEE_KnownBMR verifies delegation to the calculator:
// 1800 * 1.55 = 2790 for the moderate level.
func TestCalculateTDEE_KnownBMR(t *testing.T) {
	p := physicalData{BMR: fptr(1800)}
	got := p.calculateTDEE(activityModerate)
	if got == nil {
		t.Fatal("expected a TDEE value, got nil")
	}
	if !almostEqual(*got, 2790.0) {
		t.Errorf("calculateTDEE(moderate) = %f, want 2790.0", *got)
	}
}

// TestCalculateTDEE_AbsentBMR verifies that a missing BMR short-circuits to
// nil even when every measured field is present — the record must not derive
// BMR on the fly.
func TestCalculateTDEE_AbsentBMR(t *testing.T) {
	p := makeCompleteData()
	if got := p.calculateTDEE(activityModerate); got != nil {
		t.Errorf("calculateTDEE with absent BMR = %f, want nil", *got)
	}
}

// TestCalculateTDEE_UnknownLevel verifies that an unrecognised level yields
// nil rather than zero.
func TestCalculateTDEE_UnknownLevel(t *testing.T) {
	p := physicalData{BMR: fptr(1800)}
	if got := p.calculateTDEE(activityLevel("heroic")); got != nil {
		t.Errorf("calculateTDEE with unknown level = %f, want nil", *got)
	}
}

/* ─── Derivation tests ───────────────────────────────────────────────── */

// TestWithDerived_Complete verifies that a complete record gets BMR and TDEE
// filled from the calculator, and that the receiver is left untouched.
func TestWithDerived_Complete(t *testing.T) {
	p := makeCompleteData()
	level := activityModerate
	out := p.withDerived(&level)

	if out.BMR == nil {
		t.Fatal("expected derived BMR, got nil")
	}
	wantBMR := computeBMR(75, 175, 30, sexMale)
	if *out.BMR != wantBMR {
		t.Errorf("derived BMR = %f, want %f", *out.BMR, wantBMR)
	}
	if out.TDEE == nil {
		t.Fatal("expected derived TDEE, got nil")
	}
	if !almostEqual(*out.TDEE, wantBMR*1.55) {
		t.Errorf("derived TDEE = %f, want %f", *out.TDEE, wantBMR*1.55)
	}

	// Immutability: the original record must not have been mutated.
	if p.BMR != nil || p.TDEE != nil {
		t.Error("withDerived mutated its receiver")
	}
}

// TestWithDerived_Incomplete verifies that incomplete measurements leave the
// record unchanged — no partial derivation.
func TestWithDerived_Incomplete(t *testing.T) {
	p := makeCompleteData()
	p.HeightCM = nil
	level := activityModerate
	out := p.withDerived(&level)
	if out.BMR != nil || out.TDEE != nil {
		t.Error("expected no derived values for incomplete measurements")
	}
}

// TestWithDerived_NoLevel verifies that BMR is derived even when no activity
// level is known, while TDEE stays absent.
func TestWithDerived_NoLevel(t *testing.T) {
	p := makeCompleteData()
	out := p.withDerived(nil)
	if out.BMR == nil {
		t.Fatal("expected derived BMR, got nil")
	}
	if out.TDEE != nil {
		t.Errorf("expected absent TDEE without an activity level, got %f", *out.TDEE)
	}
}
