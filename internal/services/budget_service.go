package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"spendwise/internal/core"
	"spendwise/internal/log"
	"spendwise/internal/storage"
)

// BudgetService handles budget CRUD and status evaluation.
type BudgetService struct {
	storage *storage.SQLiteRepository
	logger  *log.Logger
}

func NewBudgetService(storage *storage.SQLiteRepository, logger *log.Logger) *BudgetService {
	return &BudgetService{
		storage: storage,
		logger:  logger.WithComponent(log.ComponentBudget),
	}
}

// List returns the owner's budgets, optionally narrowed to one period.
func (s *BudgetService) List(ctx context.Context, ownerID string, period core.Period) ([]core.Budget, error) {
	if period != "" && !period.Valid() {
		return nil, core.ErrInvalidPeriod
	}
	budgets, err := s.storage.ListBudgets(ctx, ownerID, period)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

// Get returns the budget for (category, period), nil when unset so the
// caller can fall through the preference chain.
func (s *BudgetService) Get(ctx context.Context, ownerID string, category core.Category, period core.Period) (*core.Budget, error) {
	if !category.ValidForBudget() {
		return nil, core.ErrInvalidCategory
	}
	if !period.Valid() {
		return nil, core.ErrInvalidPeriod
	}
	return s.storage.GetBudget(ctx, ownerID, category, period)
}

// Upsert validates and stores a budget, replacing any existing record
// with the same (category, period).
func (s *BudgetService) Upsert(ctx context.Context, ownerID string, in core.BudgetInsert) (core.Budget, error) {
	if err := in.Validate(); err != nil {
		return core.Budget{}, err
	}

	budget, err := s.storage.UpsertBudget(ctx, ownerID, in)
	if err != nil {
		return core.Budget{}, fmt.Errorf("upsert budget: %w", err)
	}

	s.logger.InfoContext(ctx, "Budget saved",
		log.FieldOwnerID, ownerID,
		log.FieldCategory, string(in.Category),
		log.FieldPeriod, string(in.Period),
		log.FieldAmountCents, in.Amount.Cents)
	return budget, nil
}

// Delete removes the budget for (category, period).
func (s *BudgetService) Delete(ctx context.Context, ownerID string, category core.Category, period core.Period) error {
	if !category.ValidForBudget() {
		return core.ErrInvalidCategory
	}
	if !period.Valid() {
		return core.ErrInvalidPeriod
	}
	if err := s.storage.DeleteBudget(ctx, ownerID, category, period); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}

// Status joins the owner's monthly budgets against spending in rng.
//
// Evaluation always uses monthly-period budgets regardless of the range:
// callers supplying a non-monthly window still get spend compared against
// monthly thresholds. The two reads are independent and run concurrently.
func (s *BudgetService) Status(ctx context.Context, ownerID string, rng core.DateRange) (core.BudgetReport, error) {
	var (
		budgets  []core.Budget
		expenses []core.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.storage.ListBudgets(gctx, ownerID, core.PeriodMonthly)
		if err != nil {
			return fmt.Errorf("load budgets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = s.storage.ListExpenses(gctx, ownerID, core.ExpenseFilter{Start: &rng.Start, End: &rng.End})
		if err != nil {
			return fmt.Errorf("load expenses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return core.BudgetReport{}, err
	}

	return core.EvaluateBudgets(budgets, expenses), nil
}
