package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// populateDerived fills the computed-only fields on s from the measured
// fields, via the immutable physicalData record. No-ops the metabolic fields
// when the measurements are incomplete; the display strings are filled for
// whatever is present.
func populateDerived(s *physicalProfile) {
	rec := s.record()

	var level *activityLevel
	if s.ActivityLevel != nil {
		v := activityLevel(*s.ActivityLevel)
		level = &v
	}
	rec = rec.withDerived(level)

	s.CompleteData = rec.hasCompleteData()
	s.ComputedBMR = rec.BMR
	s.ComputedTDEE = rec.TDEE
	s.DisplayWeight = rec.formattedWeight()
	s.DisplayHeight = rec.formattedHeight()
	s.DisplayAge = rec.formattedAge()
	s.DisplaySex = rec.formattedSex()
}

// getProfile returns the physical profile for the authenticated user.
// Computed fields (bmr, tdee, display strings) are populated from whatever
// measurements are present.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	s, err := queryOne[physicalProfile](h.db, c,
		"SELECT * FROM physical_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	populateDerived(&s)

	c.JSON(http.StatusOK, s)
}

// patchProfile updates only the provided physical profile fields.
// PATCH /api/profile. Uses pointer fields in the request body to distinguish
// "not provided" from zero — only non-nil fields get updated. The response
// carries freshly recomputed BMR/TDEE so clients never render stale values.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate enum fields before saving — an unknown value silently breaks
	// all future BMR/TDEE computation with no visible error.
	if body.Sex != nil {
		if _, ok := sexLabels[biologicalSex(*body.Sex)]; !ok {
			apiError(c, http.StatusBadRequest, "sex must be one of: male, female, other")
			return
		}
	}
	if body.ActivityLevel != nil {
		if _, ok := activityMultipliers[activityLevel(*body.ActivityLevel)]; !ok {
			apiError(c, http.StatusBadRequest, "activity_level must be one of: sedentary, light, moderate, active, very_active")
			return
		}
	}
	// Plausibility bounds. The calculator itself is total (it clamps instead of
	// rejecting), but storing garbage would poison every later recomputation.
	if body.WeightKG != nil && (*body.WeightKG <= 0 || *body.WeightKG > 500) {
		apiError(c, http.StatusBadRequest, "weight_kg must be between 0 and 500")
		return
	}
	if body.HeightCM != nil && (*body.HeightCM <= 0 || *body.HeightCM > 300) {
		apiError(c, http.StatusBadRequest, "height_cm must be between 0 and 300")
		return
	}
	if body.Age != nil && (*body.Age < 0 || *body.Age > 130) {
		apiError(c, http.StatusBadRequest, "age must be between 0 and 130")
		return
	}

	// Build SET clause dynamically — only update fields the client actually sent
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	if body.WeightKG != nil {
		setClauses = append(setClauses, "weight_kg = @weightKG")
		args["weightKG"] = *body.WeightKG
	}
	if body.HeightCM != nil {
		setClauses = append(setClauses, "height_cm = @heightCM")
		args["heightCM"] = *body.HeightCM
	}
	if body.Age != nil {
		setClauses = append(setClauses, "age = @age")
		args["age"] = *body.Age
	}
	if body.Sex != nil {
		setClauses = append(setClauses, "sex = @sex")
		args["sex"] = *body.Sex
	}
	if body.ActivityLevel != nil {
		setClauses = append(setClauses, "activity_level = @activityLevel")
		args["activityLevel"] = *body.ActivityLevel
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	query := "UPDATE physical_profiles SET " +
		strings.Join(setClauses, ", ") +
		", updated_at = now() WHERE user_id = @userID RETURNING *"

	s, err := queryOne[physicalProfile](h.db, c, query, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	populateDerived(&s)

	c.JSON(http.StatusOK, s)
}
