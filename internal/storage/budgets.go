package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"spendwise/internal/core"
)

const budgetColumns = "id, owner_id, category, amount_cents, period, created_at, updated_at"

func scanBudget(row interface{ Scan(...any) error }) (core.Budget, error) {
	var b core.Budget
	err := row.Scan(&b.ID, &b.OwnerID, &b.Category, &b.Amount.Cents, &b.Period, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// ListBudgets returns the owner's budgets ordered by category, optionally
// narrowed to one period.
func (r *SQLiteRepository) ListBudgets(ctx context.Context, ownerID string, period core.Period) ([]core.Budget, error) {
	query := "SELECT " + budgetColumns + " FROM budgets WHERE owner_id = ?"
	args := []any{ownerID}
	if period != "" {
		query += " AND period = ?"
		args = append(args, string(period))
	}
	query += " ORDER BY category ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

// GetBudget returns the budget for (category, period), or nil when unset.
// Absence of a budget is not an error: it means unbounded.
func (r *SQLiteRepository) GetBudget(ctx context.Context, ownerID string, category core.Category, period core.Period) (*core.Budget, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE owner_id = ? AND category = ? AND period = ?",
		ownerID, string(category), string(period))
	b, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get budget: %w", err)
	}
	return &b, nil
}

// UpsertBudget inserts a budget or replaces the amount of the existing
// record keyed by (owner, category, period).
func (r *SQLiteRepository) UpsertBudget(ctx context.Context, ownerID string, in core.BudgetInsert) (core.Budget, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budgets (id, owner_id, category, amount_cents, period, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, category, period)
		DO UPDATE SET amount_cents = excluded.amount_cents, updated_at = excluded.updated_at`,
		uuid.NewString(), ownerID, string(in.Category), in.Amount.Cents, string(in.Period), now, now)
	if err != nil {
		return core.Budget{}, fmt.Errorf("upsert budget: %w", err)
	}

	b, err := r.GetBudget(ctx, ownerID, in.Category, in.Period)
	if err != nil {
		return core.Budget{}, err
	}
	if b == nil {
		return core.Budget{}, fmt.Errorf("upsert budget: %w", core.ErrNotFound)
	}
	return *b, nil
}

// DeleteBudget removes the budget for (category, period).
func (r *SQLiteRepository) DeleteBudget(ctx context.Context, ownerID string, category core.Category, period core.Period) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM budgets WHERE owner_id = ? AND category = ? AND period = ?",
		ownerID, string(category), string(period))
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("budget %s/%s: %w", category, period, core.ErrNotFound)
	}
	return nil
}
