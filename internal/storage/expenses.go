package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"spendwise/internal/core"
)

const expenseColumns = "id, owner_id, amount_cents, category, description, date, created_at, updated_at"

func scanExpense(row interface{ Scan(...any) error }) (core.Expense, error) {
	var e core.Expense
	var dateStr string
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Amount.Cents, &e.Category, &e.Description, &dateStr, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return core.Expense{}, err
	}
	date, err := core.ParseDate(dateStr)
	if err != nil {
		return core.Expense{}, fmt.Errorf("stored date %q: %w", dateStr, err)
	}
	e.Date = date
	return e, nil
}

// ListExpenses returns the owner's expenses matching the filter, newest
// first (date descending, then creation time descending within a day).
func (r *SQLiteRepository) ListExpenses(ctx context.Context, ownerID string, filter core.ExpenseFilter) ([]core.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM expenses WHERE owner_id = ?"
	args := []any{ownerID}

	if filter.Start != nil {
		query += " AND date >= ?"
		args = append(args, filter.Start.ISO())
	}
	if filter.End != nil {
		query += " AND date <= ?"
		args = append(args, filter.End.ISO())
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, string(filter.Category))
	}
	query += " ORDER BY date DESC, created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// GetExpense returns one expense by id, core.ErrNotFound when the id does
// not exist or belongs to another owner.
func (r *SQLiteRepository) GetExpense(ctx context.Context, ownerID, id string) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = ? AND owner_id = ?", id, ownerID)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, fmt.Errorf("expense %s: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// InsertExpense stores a new expense and returns the full record.
func (r *SQLiteRepository) InsertExpense(ctx context.Context, ownerID string, in core.ExpenseInsert) (core.Expense, error) {
	now := time.Now().UTC()
	e := core.Expense{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO expenses ("+expenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.OwnerID, e.Amount.Cents, string(e.Category), e.Description, e.Date.ISO(), e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	return e, nil
}

// UpdateExpense applies the non-nil fields of up to an existing expense
// and returns the updated record.
func (r *SQLiteRepository) UpdateExpense(ctx context.Context, ownerID, id string, up core.ExpenseUpdate) (core.Expense, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if up.Amount != nil {
		sets = append(sets, "amount_cents = ?")
		args = append(args, up.Amount.Cents)
	}
	if up.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, string(*up.Category))
	}
	if up.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *up.Description)
	}
	if up.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, up.Date.ISO())
	}
	args = append(args, id, ownerID)

	res, err := r.db.ExecContext(ctx,
		"UPDATE expenses SET "+strings.Join(sets, ", ")+" WHERE id = ? AND owner_id = ?", args...)
	if err != nil {
		return core.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.Expense{}, fmt.Errorf("expense %s: %w", id, core.ErrNotFound)
	}
	return r.GetExpense(ctx, ownerID, id)
}

// DeleteExpense removes one expense. Deleting a missing or foreign id is
// core.ErrNotFound.
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("expense %s: %w", id, core.ErrNotFound)
	}
	return nil
}
