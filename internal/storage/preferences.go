package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"spendwise/internal/core"
)

// GetPreferences returns the owner's preference row, or nil when none
// exists yet. Lazy creation is the service's job, keeping this a pure read.
func (r *SQLiteRepository) GetPreferences(ctx context.Context, ownerID string) (*core.UserPreferences, error) {
	var p core.UserPreferences
	err := r.db.QueryRowContext(ctx, `
		SELECT owner_id, display_name, default_daily_budget_cents,
		       default_monthly_budget_cents, currency, created_at, updated_at
		FROM user_preferences WHERE owner_id = ?`, ownerID).
		Scan(&p.OwnerID, &p.DisplayName, &p.DefaultDailyBudget.Cents,
			&p.DefaultMonthlyBudget.Cents, &p.Currency, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return &p, nil
}

// SavePreferences writes a full preference row, replacing any existing
// row for the owner.
func (r *SQLiteRepository) SavePreferences(ctx context.Context, prefs core.UserPreferences) (core.UserPreferences, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_preferences (owner_id, display_name, default_daily_budget_cents,
		                              default_monthly_budget_cents, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id)
		DO UPDATE SET display_name = excluded.display_name,
		              default_daily_budget_cents = excluded.default_daily_budget_cents,
		              default_monthly_budget_cents = excluded.default_monthly_budget_cents,
		              currency = excluded.currency,
		              updated_at = excluded.updated_at`,
		prefs.OwnerID, prefs.DisplayName, prefs.DefaultDailyBudget.Cents,
		prefs.DefaultMonthlyBudget.Cents, prefs.Currency, now, now)
	if err != nil {
		return core.UserPreferences{}, fmt.Errorf("save preferences: %w", err)
	}

	saved, err := r.GetPreferences(ctx, prefs.OwnerID)
	if err != nil {
		return core.UserPreferences{}, err
	}
	if saved == nil {
		return core.UserPreferences{}, fmt.Errorf("save preferences: %w", core.ErrNotFound)
	}
	return *saved, nil
}
