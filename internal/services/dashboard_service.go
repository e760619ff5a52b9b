package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"spendwise/internal/auth"
	"spendwise/internal/core"
	"spendwise/internal/log"
)

// Dashboard is the joined payload behind the main page: the month's
// summary, the daily series, recent activity and the resolved budget.
type Dashboard struct {
	Range           core.DateRange       `json:"-"`
	StartDate       core.Date            `json:"start_date"`
	EndDate         core.Date            `json:"end_date"`
	Summary         core.ExpenseSummary  `json:"summary"`
	RecentExpenses  []core.Expense       `json:"recent_expenses"`
	DailySpending   []core.DailyTotal    `json:"daily_spending"`
	MonthlyBudget   core.Money           `json:"monthly_budget"`
	BudgetRemaining core.Money           `json:"budget_remaining"`
	DisplayName     string               `json:"display_name"`
	Currency        string               `json:"currency"`
	Preferences     core.UserPreferences `json:"preferences"`
}

const recentExpenseLimit = 10

// DashboardService fans out the independent reads behind the dashboard
// and joins them into one payload.
type DashboardService struct {
	expenses *ExpenseService
	budgets  *BudgetService
	prefs    *PreferencesService
	logger   *log.Logger
}

func NewDashboardService(expenses *ExpenseService, budgets *BudgetService, prefs *PreferencesService, logger *log.Logger) *DashboardService {
	return &DashboardService{
		expenses: expenses,
		budgets:  budgets,
		prefs:    prefs,
		logger:   logger.WithComponent(log.ComponentApp),
	}
}

// Overview assembles the dashboard for user over rng. The five reads are
// independent and run concurrently; the first failure cancels the rest.
func (s *DashboardService) Overview(ctx context.Context, user auth.User, rng core.DateRange) (Dashboard, error) {
	var (
		summary     core.ExpenseSummary
		recent      []core.Expense
		daily       []core.DailyTotal
		totalBudget *core.Budget
		prefs       core.UserPreferences
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.expenses.Summary(gctx, user.ID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.expenses.List(gctx, user.ID, core.ExpenseFilter{
			Start: &rng.Start,
			End:   &rng.End,
			Limit: recentExpenseLimit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		daily, err = s.expenses.DailySpending(gctx, user.ID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		totalBudget, err = s.budgets.Get(gctx, user.ID, core.CategoryTotal, core.PeriodMonthly)
		return err
	})
	g.Go(func() error {
		var err error
		prefs, err = s.prefs.GetOrCreate(gctx, user.ID, user.FullName)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	monthlyBudget := core.EffectiveBudget(totalBudget, &prefs, core.PeriodMonthly)
	return Dashboard{
		Range:           rng,
		StartDate:       rng.Start,
		EndDate:         rng.End,
		Summary:         summary,
		RecentExpenses:  recent,
		DailySpending:   daily,
		MonthlyBudget:   monthlyBudget,
		BudgetRemaining: core.Money{Cents: monthlyBudget.Cents - summary.TotalSpent.Cents},
		DisplayName:     core.ResolveDisplayName(&prefs, user.FullName, user.Email),
		Currency:        core.ResolveCurrency(&prefs),
		Preferences:     prefs,
	}, nil
}
