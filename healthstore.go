package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Error kinds surfaced by the health data store. Handlers map these to HTTP
// statuses with errors.Is; anything unrecognised is treated as a persistence
// failure.
var (
	errAuthorizationDenied = errors.New("health store: authorization denied")
	errStoreUnavailable    = errors.New("health store: unavailable")
	errPersistence         = errors.New("health store: persistence failure")
)

// healthStore is the boundary to wherever nutrition samples actually live.
// The metabolic calculator never touches this; route handlers compose the two
// after obtaining inputs from each side.
type healthStore interface {
	IsDataAvailable(ctx context.Context) bool
	RequestAuthorization(ctx context.Context, userID int) error
	WriteNutritionEntry(ctx context.Context, entry foodEntry) (foodEntry, error)
	ReadNutritionEntries(ctx context.Context, userID int, day string) ([]foodEntry, error)
}

// pgHealthStore backs the health store with PostgreSQL. Authorization is a
// per-user grant row: writes are refused until the user has granted sharing,
// and a revoked grant (granted=false) stays sticky until re-requested.
type pgHealthStore struct {
	db *pgxpool.Pool
}

func newPGHealthStore(db *pgxpool.Pool) *pgHealthStore {
	return &pgHealthStore{db: db}
}

// IsDataAvailable reports whether the backing store is reachable.
func (s *pgHealthStore) IsDataAvailable(ctx context.Context) bool {
	return s.db.Ping(ctx) == nil
}

// RequestAuthorization grants nutrition-sharing for the user, creating the
// grant row if needed. A row with granted=false means the user revoked
// sharing; re-requesting flips it back on (mirrors re-prompting in a consent
// dialog).
func (s *pgHealthStore) RequestAuthorization(ctx context.Context, userID int) error {
	if !s.IsDataAvailable(ctx) {
		return errStoreUnavailable
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO health_store_grants (user_id, granted)
		 VALUES (@userID, true)
		 ON CONFLICT (user_id) DO UPDATE SET granted = true, updated_at = now()`,
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", errPersistence, err)
	}
	return nil
}

// authorized reports whether the user currently has an active grant.
func (s *pgHealthStore) authorized(ctx context.Context, userID int) (bool, error) {
	var granted bool
	err := s.db.QueryRow(ctx,
		"SELECT granted FROM health_store_grants WHERE user_id = $1", userID).Scan(&granted)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", errPersistence, err)
	}
	return granted, nil
}

// WriteNutritionEntry persists a nutrition sample for the entry's user.
// Fails with errAuthorizationDenied when the user never granted (or revoked)
// sharing — callers are expected to surface that distinctly from a storage
// failure.
func (s *pgHealthStore) WriteNutritionEntry(ctx context.Context, entry foodEntry) (foodEntry, error) {
	if !s.IsDataAvailable(ctx) {
		return foodEntry{}, errStoreUnavailable
	}
	ok, err := s.authorized(ctx, entry.UserID)
	if err != nil {
		return foodEntry{}, err
	}
	if !ok {
		return foodEntry{}, errAuthorizationDenied
	}

	saved, err := queryOne[foodEntry](s.db, ctx,
		`INSERT INTO food_log_entries
			(user_id, logged_at, name, meal_type, calories, protein_g, carbs_g, fat_g, serving_size, serving_unit)
		 VALUES (@userID, @loggedAt, @name, @mealType, @calories, @proteinG, @carbsG, @fatG, @servingSize, @servingUnit)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": entry.UserID, "loggedAt": entry.LoggedAt, "name": entry.Name,
			"mealType": entry.MealType, "calories": entry.Calories,
			"proteinG": entry.ProteinG, "carbsG": entry.CarbsG, "fatG": entry.FatG,
			"servingSize": entry.ServingSize, "servingUnit": entry.ServingUnit,
		})
	if err != nil {
		return foodEntry{}, fmt.Errorf("%w: %v", errPersistence, err)
	}
	return saved, nil
}

// ReadNutritionEntries returns the user's entries for one calendar day
// (YYYY-MM-DD), oldest first. Reads don't require a grant — the data is the
// user's own log, and the grant only gates new writes.
func (s *pgHealthStore) ReadNutritionEntries(ctx context.Context, userID int, day string) ([]foodEntry, error) {
	entries, err := queryMany[foodEntry](s.db, ctx,
		`SELECT * FROM food_log_entries
		 WHERE user_id = @userID AND logged_at::date = @day
		 ORDER BY logged_at`,
		pgx.NamedArgs{"userID": userID, "day": day})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errPersistence, err)
	}
	return entries, nil
}
