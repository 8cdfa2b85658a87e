package main

import (
	"fmt"
	"strconv"
)

// physicalData is an immutable snapshot of a user's physical measurements and
// the metabolic values derived from them. Every field is optional: nil means
// "never recorded", which stays distinguishable from zero at every layer,
// including the formatted accessors (absent field ⇒ nil string, never "" or a
// placeholder). Recomputation goes through withDerived, which returns a new
// record rather than mutating in place.
type physicalData struct {
	WeightKG *float64
	HeightCM *float64
	Age      *int
	Sex      *biologicalSex
	BMR      *float64
	TDEE     *float64
}

// hasCompleteData reports whether all four measured fields are present.
// BMR and TDEE are derived and not required for completeness.
func (p physicalData) hasCompleteData() bool {
	return p.WeightKG != nil && p.HeightCM != nil && p.Age != nil && p.Sex != nil
}

// formattedWeight renders the weight with one decimal place, e.g. "75.0 kg".
func (p physicalData) formattedWeight() *string {
	if p.WeightKG == nil {
		return nil
	}
	s := fmt.Sprintf("%.1f kg", *p.WeightKG)
	return &s
}

// formattedHeight renders the height without forced decimals: integral values
// come out as "175 cm", fractional ones keep their fraction ("175.5 cm").
// FormatFloat with precision -1 uses the fewest digits that round-trip.
func (p physicalData) formattedHeight() *string {
	if p.HeightCM == nil {
		return nil
	}
	s := strconv.FormatFloat(*p.HeightCM, 'f', -1, 64) + " cm"
	return &s
}

// formattedAge renders the age as e.g. "30 years".
func (p physicalData) formattedAge() *string {
	if p.Age == nil {
		return nil
	}
	s := strconv.Itoa(*p.Age) + " years"
	return &s
}

// formattedSex renders the capitalized display label, e.g. "Male".
func (p physicalData) formattedSex() *string {
	if p.Sex == nil {
		return nil
	}
	label, ok := sexLabels[*p.Sex]
	if !ok {
		return nil
	}
	return &label
}

// calculateTDEE scales the record's stored BMR by the activity multiplier.
// Nil when BMR is absent — the record never derives BMR on the fly, even when
// weight/height/age are all present (withDerived exists for that). Nil also
// for an unrecognised level. Absence short-circuits to absence, never to zero.
func (p physicalData) calculateTDEE(level activityLevel) *float64 {
	if p.BMR == nil {
		return nil
	}
	tdee, ok := computeTDEE(*p.BMR, level)
	if !ok {
		return nil
	}
	return &tdee
}

// withDerived returns a copy of the record with BMR — and, when level is known,
// TDEE — computed from the measured fields. The receiver is left untouched.
// When the measured fields are incomplete the copy is returned unchanged.
func (p physicalData) withDerived(level *activityLevel) physicalData {
	if !p.hasCompleteData() {
		return p
	}
	out := p
	bmr := computeBMR(*p.WeightKG, *p.HeightCM, *p.Age, *p.Sex)
	out.BMR = &bmr
	if level != nil {
		if tdee, ok := computeTDEE(bmr, *level); ok {
			out.TDEE = &tdee
		}
	}
	return out
}
