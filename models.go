package main

import (
	"time"
)

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// physicalProfile maps to physical_profiles. One row per user holding the body
// measurements that feed the metabolic calculator. All measured fields are
// nullable pointers so pgx can scan NULLs and "never recorded" stays
// distinguishable from zero.
type physicalProfile struct {
	UserID        int        `json:"user_id"        db:"user_id"`
	WeightKG      *float64   `json:"weight_kg"      db:"weight_kg"`
	HeightCM      *float64   `json:"height_cm"      db:"height_cm"`
	Age           *int       `json:"age"            db:"age"`
	Sex           *string    `json:"sex"            db:"sex"`
	ActivityLevel *string    `json:"activity_level" db:"activity_level"`
	CreatedAt     *time.Time `json:"created_at"     db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"     db:"updated_at"`

	// Computed fields — populated server-side from the measured fields; not
	// stored in DB. db:"-" tells RowToStructByName to skip these during scanning.
	CompleteData  bool     `json:"complete_data"            db:"-"`
	ComputedBMR   *float64 `json:"computed_bmr,omitempty"   db:"-"`
	ComputedTDEE  *float64 `json:"computed_tdee,omitempty"  db:"-"`
	DisplayWeight *string  `json:"display_weight,omitempty" db:"-"`
	DisplayHeight *string  `json:"display_height,omitempty" db:"-"`
	DisplayAge    *string  `json:"display_age,omitempty"    db:"-"`
	DisplaySex    *string  `json:"display_sex,omitempty"    db:"-"`
}

// record converts the DB row into the immutable value type the calculator
// operates on. Only measured fields carry over; derived fields start nil.
func (s *physicalProfile) record() physicalData {
	var sex *biologicalSex
	if s.Sex != nil {
		v := biologicalSex(*s.Sex)
		sex = &v
	}
	return physicalData{
		WeightKG: s.WeightKG,
		HeightCM: s.HeightCM,
		Age:      s.Age,
		Sex:      sex,
	}
}

// foodEntry maps to food_log_entries and doubles as the nutrition-sample shape
// passed through the health store. Nullable macro and serving fields use
// pointers so pgx can scan NULLs and JSON keeps them as null, not zero.
type foodEntry struct {
	ID          int        `json:"id" db:"id"`
	UserID      int        `json:"user_id" db:"user_id"`
	LoggedAt    time.Time  `json:"logged_at" db:"logged_at"`
	Name        string     `json:"name" db:"name"`
	MealType    string     `json:"meal_type" db:"meal_type"`
	Calories    int        `json:"calories" db:"calories"`
	ProteinG    *float64   `json:"protein_g" db:"protein_g"`
	CarbsG      *float64   `json:"carbs_g" db:"carbs_g"`
	FatG        *float64   `json:"fat_g" db:"fat_g"`
	ServingSize *float64   `json:"serving_size" db:"serving_size"`
	ServingUnit *string    `json:"serving_unit" db:"serving_unit"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

/* ─── Request / Response shapes ──────────────────────────────────────── */

// createFoodEntryRequest is the request body for POST /api/food-log/entries.
// LoggedAt is RFC 3339; defaults to now when omitted.
type createFoodEntryRequest struct {
	LoggedAt    *time.Time `json:"logged_at"`
	Name        string     `json:"name"`
	MealType    string     `json:"meal_type"`
	Calories    int        `json:"calories"`
	ProteinG    *float64   `json:"protein_g"`
	CarbsG      *float64   `json:"carbs_g"`
	FatG        *float64   `json:"fat_g"`
	ServingSize *float64   `json:"serving_size"`
	ServingUnit *string    `json:"serving_unit"`
}

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers — only non-nil fields get written to the database.
type patchProfileRequest struct {
	WeightKG      *float64 `json:"weight_kg"`
	HeightCM      *float64 `json:"height_cm"`
	Age           *int     `json:"age"`
	Sex           *string  `json:"sex"`
	ActivityLevel *string  `json:"activity_level"`
}

// dailySummary is the response shape for GET /api/food-log/daily.
// Includes the day's entries, macro totals, and the profile with computed
// BMR/TDEE so clients render the whole day from one call. CaloriesLeft is
// TDEE minus logged calories — omitted when TDEE cannot be derived.
type dailySummary struct {
	Date         string          `json:"date"`
	Calories     int             `json:"calories"`
	ProteinG     float64         `json:"protein_g"`
	CarbsG       float64         `json:"carbs_g"`
	FatG         float64         `json:"fat_g"`
	CaloriesLeft *int            `json:"calories_left,omitempty"`
	Entries      []foodEntry     `json:"entries"`
	Profile      physicalProfile `json:"profile"`
}
