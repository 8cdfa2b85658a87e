package main

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// validMealTypes is the set of allowed values for the meal_type enum.
// Reject unknown values with 400 rather than letting the DB return a cryptic 500.
var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// storeErrorStatus maps a health-store error to the HTTP status and message the
// client should see. Denied and unavailable get distinct statuses so a consent
// problem never looks like an outage.
func storeErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errAuthorizationDenied):
		return http.StatusForbidden, "health data sharing not authorized"
	case errors.Is(err, errStoreUnavailable):
		return http.StatusServiceUnavailable, "health data store unavailable"
	default:
		return http.StatusInternalServerError, "health data store failure"
	}
}

// getDailySummary returns food log entries and computed totals for a given date.
// GET /api/food-log/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailySummary(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	// Validate date format before querying — an invalid value silently returns no rows.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	entries, err := h.store.ReadNutritionEntries(c, userID, date)
	if err != nil {
		status, msg := storeErrorStatus(err)
		apiError(c, status, msg)
		return
	}
	// Ensure entries is an empty array (not null) in JSON
	if entries == nil {
		entries = []foodEntry{}
	}

	profile, err := queryOne[physicalProfile](h.db, c,
		"SELECT * FROM physical_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	var calories int
	var proteinG, carbsG, fatG float64
	for _, e := range entries {
		calories += e.Calories
		if e.ProteinG != nil {
			proteinG += *e.ProteinG
		}
		if e.CarbsG != nil {
			carbsG += *e.CarbsG
		}
		if e.FatG != nil {
			fatG += *e.FatG
		}
	}

	populateDerived(&profile)

	summary := dailySummary{
		Date:     date,
		Calories: calories,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
		Entries:  entries,
		Profile:  profile,
	}
	// calories_left only exists when TDEE does — absence propagates, it never
	// collapses to zero.
	if profile.ComputedTDEE != nil {
		left := int(math.Round(*profile.ComputedTDEE)) - calories
		summary.CaloriesLeft = &left
	}

	c.JSON(http.StatusOK, summary)
}

// createFoodEntry writes a new food log entry through the health store.
// POST /api/food-log/entries. Defaults logged_at to now if omitted.
func (h *Handler) createFoodEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createFoodEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}
	if body.MealType == "" {
		apiError(c, http.StatusBadRequest, "meal_type is required")
		return
	}
	// Validate meal_type against the enum; prevents a cryptic 500 from the DB constraint.
	if !validMealTypes[body.MealType] {
		apiError(c, http.StatusBadRequest, "meal_type must be one of: breakfast, lunch, dinner, snack")
		return
	}
	if body.Calories < 0 {
		apiError(c, http.StatusBadRequest, "calories must not be negative")
		return
	}
	if body.ServingSize != nil && *body.ServingSize <= 0 {
		apiError(c, http.StatusBadRequest, "serving_size must be positive")
		return
	}

	loggedAt := time.Now().UTC()
	if body.LoggedAt != nil {
		loggedAt = *body.LoggedAt
	}

	entry, err := h.store.WriteNutritionEntry(c, foodEntry{
		UserID:      userID,
		LoggedAt:    loggedAt,
		Name:        body.Name,
		MealType:    body.MealType,
		Calories:    body.Calories,
		ProteinG:    body.ProteinG,
		CarbsG:      body.CarbsG,
		FatG:        body.FatG,
		ServingSize: body.ServingSize,
		ServingUnit: body.ServingUnit,
	})
	if err != nil {
		status, msg := storeErrorStatus(err)
		apiError(c, status, msg)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// updateFoodEntry updates an existing food log entry.
// PUT /api/food-log/entries/:id. Uses COALESCE so omitted fields keep their
// current value. Edits bypass the grant check — the sample already exists; the
// grant only gates recording new ones.
func (h *Handler) updateFoodEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	var body struct {
		LoggedAt    *time.Time `json:"logged_at"`
		Name        *string    `json:"name"`
		MealType    *string    `json:"meal_type"`
		Calories    *int       `json:"calories"`
		ProteinG    *float64   `json:"protein_g"`
		CarbsG      *float64   `json:"carbs_g"`
		FatG        *float64   `json:"fat_g"`
		ServingSize *float64   `json:"serving_size"`
		ServingUnit *string    `json:"serving_unit"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.MealType != nil && !validMealTypes[*body.MealType] {
		apiError(c, http.StatusBadRequest, "meal_type must be one of: breakfast, lunch, dinner, snack")
		return
	}
	if body.Calories != nil && *body.Calories < 0 {
		apiError(c, http.StatusBadRequest, "calories must not be negative")
		return
	}

	entry, err := queryOne[foodEntry](h.db, c,
		`UPDATE food_log_entries SET
			logged_at    = COALESCE(@loggedAt, logged_at),
			name         = COALESCE(@name, name),
			meal_type    = COALESCE(@mealType, meal_type),
			calories     = COALESCE(@calories, calories),
			protein_g    = COALESCE(@proteinG, protein_g),
			carbs_g      = COALESCE(@carbsG, carbs_g),
			fat_g        = COALESCE(@fatG, fat_g),
			serving_size = COALESCE(@servingSize, serving_size),
			serving_unit = COALESCE(@servingUnit, serving_unit),
			updated_at   = now()
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"id": id, "userID": userID,
			"loggedAt": body.LoggedAt, "name": body.Name, "mealType": body.MealType,
			"calories": body.Calories, "proteinG": body.ProteinG, "carbsG": body.CarbsG,
			"fatG": body.FatG, "servingSize": body.ServingSize, "servingUnit": body.ServingUnit,
		})
	if err != nil {
		// Distinguish a missing row from a real DB failure so callers get an
		// actionable status code rather than a misleading 404.
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "entry not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update entry")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// deleteFoodEntry removes a food log entry. Returns 204 on success.
// DELETE /api/food-log/entries/:id. Ownership is enforced by requiring both
// id and user_id to match.
func (h *Handler) deleteFoodEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	result, err := h.db.Exec(c,
		"DELETE FROM food_log_entries WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete entry")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// getHealthStoreStatus reports whether the health data store is reachable.
// GET /api/health-store/status.
func (h *Handler) getHealthStoreStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"available": h.store.IsDataAvailable(c)})
}

// authorizeHealthStore grants nutrition-sharing for the authenticated user.
// POST /api/health-store/authorize.
func (h *Handler) authorizeHealthStore(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := h.store.RequestAuthorization(c, userID); err != nil {
		status, msg := storeErrorStatus(err)
		apiError(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{"granted": true})
}
