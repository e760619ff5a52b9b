// Package services orchestrates storage reads and the pure aggregation
// logic in core into the operations the HTTP layer exposes.
package services

import (
	"context"
	"fmt"

	"spendwise/internal/amqp"
	"spendwise/internal/core"
	"spendwise/internal/log"
	"spendwise/internal/storage"
)

// ExpenseService handles expense CRUD and the aggregate read paths.
type ExpenseService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
	logger     *log.Logger
}

func NewExpenseService(storage *storage.SQLiteRepository, amqpClient *amqp.Client, logger *log.Logger) *ExpenseService {
	return &ExpenseService{
		storage:    storage,
		amqpClient: amqpClient,
		logger:     logger.WithComponent(log.ComponentExpense),
	}
}

// List returns the owner's expenses matching the filter, newest first.
func (s *ExpenseService) List(ctx context.Context, ownerID string, filter core.ExpenseFilter) ([]core.Expense, error) {
	expenses, err := s.storage.ListExpenses(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Get returns one expense by id.
func (s *ExpenseService) Get(ctx context.Context, ownerID, id string) (core.Expense, error) {
	return s.storage.GetExpense(ctx, ownerID, id)
}

// Create validates and stores a new expense, then publishes a change
// event when a broker is configured.
func (s *ExpenseService) Create(ctx context.Context, ownerID string, in core.ExpenseInsert) (core.Expense, error) {
	if err := in.Validate(); err != nil {
		return core.Expense{}, err
	}

	expense, err := s.storage.InsertExpense(ctx, ownerID, in)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	s.logger.InfoContext(ctx, "Expense created",
		log.FieldExpenseID, expense.ID,
		log.FieldOwnerID, ownerID,
		log.FieldCategory, string(expense.Category),
		log.FieldAmountCents, expense.Amount.Cents)

	s.publishEvent(ctx, amqp.EventExpenseCreated, expense.ID, ownerID)
	return expense, nil
}

// Update applies a partial update to an existing expense.
func (s *ExpenseService) Update(ctx context.Context, ownerID, id string, up core.ExpenseUpdate) (core.Expense, error) {
	if err := up.Validate(); err != nil {
		return core.Expense{}, err
	}

	expense, err := s.storage.UpdateExpense(ctx, ownerID, id, up)
	if err != nil {
		return core.Expense{}, fmt.Errorf("update expense: %w", err)
	}

	s.publishEvent(ctx, amqp.EventExpenseUpdated, id, ownerID)
	return expense, nil
}

// Delete removes an expense.
func (s *ExpenseService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.storage.DeleteExpense(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	s.publishEvent(ctx, amqp.EventExpenseDeleted, id, ownerID)
	return nil
}

// Summary aggregates the owner's spending over rng: total, daily
// average, transaction count and per-category shares.
func (s *ExpenseService) Summary(ctx context.Context, ownerID string, rng core.DateRange) (core.ExpenseSummary, error) {
	expenses, err := s.storage.ListExpenses(ctx, ownerID, core.ExpenseFilter{Start: &rng.Start, End: &rng.End})
	if err != nil {
		return core.ExpenseSummary{}, fmt.Errorf("load expenses: %w", err)
	}
	return core.Summarize(expenses, rng), nil
}

// DailySpending returns the sparse per-day spending series over rng,
// ascending by date.
func (s *ExpenseService) DailySpending(ctx context.Context, ownerID string, rng core.DateRange) ([]core.DailyTotal, error) {
	expenses, err := s.storage.ListExpenses(ctx, ownerID, core.ExpenseFilter{Start: &rng.Start, End: &rng.End})
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return core.DailyTotals(expenses), nil
}

// TodaySpending is the current day's expenses plus their total.
type TodaySpending struct {
	TotalSpent core.Money     `json:"total_spent"`
	Expenses   []core.Expense `json:"expenses"`
}

// Today returns today's expenses (server-local date), newest first, with
// their cent total.
func (s *ExpenseService) Today(ctx context.Context, ownerID string) (TodaySpending, error) {
	today := core.Today()
	expenses, err := s.storage.ListExpenses(ctx, ownerID, core.ExpenseFilter{Start: &today, End: &today})
	if err != nil {
		return TodaySpending{}, fmt.Errorf("load expenses: %w", err)
	}
	return TodaySpending{
		TotalSpent: core.SumAmounts(expenses),
		Expenses:   expenses,
	}, nil
}

// publishEvent sends a change event when AMQP is configured. Failures
// are logged only: the write already succeeded.
func (s *ExpenseService) publishEvent(ctx context.Context, kind, expenseID, ownerID string) {
	if s.amqpClient == nil {
		return
	}
	if err := s.amqpClient.PublishExpenseEvent(ctx, amqp.NewExpenseEvent(kind, expenseID, ownerID)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish expense event",
			"kind", kind,
			log.FieldExpenseID, expenseID,
			log.FieldError, err)
	}
}
