package main

// biologicalSex selects which Mifflin-St Jeor constant applies.
type biologicalSex string

const (
	sexMale   biologicalSex = "male"
	sexFemale biologicalSex = "female"
	sexOther  biologicalSex = "other" // unspecified or non-binary; uses the midpoint formula
)

// sexLabels maps each biological sex to its display label. This is the single
// source of truth for valid values — also used for input validation in
// patchProfile.
var sexLabels = map[biologicalSex]string{
	sexMale:   "Male",
	sexFemale: "Female",
	sexOther:  "Other",
}

// activityLevel is the ordinal habitual-activity scale used to turn BMR into TDEE.
type activityLevel string

const (
	activitySedentary  activityLevel = "sedentary"
	activityLight      activityLevel = "light"
	activityModerate   activityLevel = "moderate"
	activityActive     activityLevel = "active"
	activityVeryActive activityLevel = "very_active"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used for
// input validation in patchProfile.
var activityMultipliers = map[activityLevel]float64{
	activitySedentary:  1.2,
	activityLight:      1.375,
	activityModerate:   1.55,
	activityActive:     1.725,
	activityVeryActive: 1.9,
}

// bmrFloor is the minimum BMR (kcal/day) computeBMR ever returns. Extreme
// inputs can drive the raw formula below any plausible resting rate (or below
// zero); clamping here keeps every downstream calorie figure sane without
// forcing callers to validate first.
const bmrFloor = 1000.0

// computeBMR estimates basal metabolic rate (kcal/day) via Mifflin-St Jeor.
// weightKG and heightCM are metric; age is whole years. The function is total:
// any combination of inputs yields a defined result, clamped to bmrFloor.
//
// For sexOther the estimate is the midpoint of the male and female variants
// (the two differ only in their additive constant, so the midpoint is the
// shared linear part minus 78). The floor is applied once, to the final value,
// not to each variant before averaging.
func computeBMR(weightKG, heightCM float64, age int, sex biologicalSex) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)

	var bmr float64
	switch sex {
	case sexMale:
		bmr = base + 5
	case sexFemale:
		bmr = base - 161
	default:
		bmr = base - 78
	}

	if bmr < bmrFloor {
		return bmrFloor
	}
	return bmr
}

// computeTDEE scales a known BMR by the activity-level multiplier.
// Returns ok=false for an unrecognised level. No further clamping — the BMR
// floor already bounds the input.
func computeTDEE(bmr float64, level activityLevel) (float64, bool) {
	mult, found := activityMultipliers[level]
	if !found {
		return 0, false
	}
	return bmr * mult, true
}
