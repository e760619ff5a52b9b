package core

import "testing"

func budget(category Category, amount int64, period Period) Budget {
	return Budget{Category: category, Amount: Money{Cents: amount}, Period: period}
}

func TestEvaluateBudgetsTotalCategory(t *testing.T) {
	budgets := []Budget{budget(CategoryTotal, 10000, PeriodMonthly)}
	expenses := []Expense{
		expense(9000, CategoryFood, "2024-06-01"),
		expense(6000, CategoryRent, "2024-06-02"),
	}

	got := EvaluateBudgets(budgets, expenses)

	if len(got.Budgets) != 1 {
		t.Fatalf("expected 1 status, got %d", len(got.Budgets))
	}
	st := got.Budgets[0]
	if st.Spent.Cents != 15000 {
		t.Fatalf("spent: expected 15000, got %d", st.Spent.Cents)
	}
	if st.Percentage != 150 {
		t.Fatalf("percentage: expected 150, got %d", st.Percentage)
	}
	if !st.OverBudget {
		t.Fatal("expected over budget")
	}
	if got.TotalBudget.Cents != 10000 {
		t.Fatalf("total budget: expected the total entry's amount, got %d", got.TotalBudget.Cents)
	}
	if got.TotalSpent.Cents != 15000 {
		t.Fatalf("total spent: expected 15000, got %d", got.TotalSpent.Cents)
	}
}

func TestEvaluateBudgetsPerCategory(t *testing.T) {
	budgets := []Budget{
		budget(CategoryFood, 20000, PeriodMonthly),
		budget(CategoryTransport, 5000, PeriodMonthly),
	}
	expenses := []Expense{
		expense(5000, CategoryFood, "2024-06-01"),
		expense(15000, CategoryRent, "2024-06-01"),
	}

	got := EvaluateBudgets(budgets, expenses)

	food := got.Budgets[0]
	if food.Spent.Cents != 5000 || food.Percentage != 25 || food.OverBudget {
		t.Fatalf("food status wrong: %+v", food)
	}
	// No transport expenses: zero spend, not an error.
	transport := got.Budgets[1]
	if transport.Spent.Cents != 0 || transport.Percentage != 0 || transport.OverBudget {
		t.Fatalf("transport status wrong: %+v", transport)
	}
	// No "total" entry: total budget is the sum of per-category amounts.
	if got.TotalBudget.Cents != 25000 {
		t.Fatalf("total budget: expected 25000, got %d", got.TotalBudget.Cents)
	}
}

func TestEvaluateBudgetsExactSpendIsNotOver(t *testing.T) {
	budgets := []Budget{budget(CategoryFood, 5000, PeriodMonthly)}
	expenses := []Expense{expense(5000, CategoryFood, "2024-06-01")}

	got := EvaluateBudgets(budgets, expenses)
	if got.Budgets[0].OverBudget {
		t.Fatal("spent == amount must not be over budget")
	}
	if got.Budgets[0].Percentage != 100 {
		t.Fatalf("expected 100%%, got %d", got.Budgets[0].Percentage)
	}
}

func TestEvaluateBudgetsNoBudgets(t *testing.T) {
	expenses := []Expense{expense(4200, CategoryFood, "2024-06-01")}

	got := EvaluateBudgets(nil, expenses)
	if len(got.Budgets) != 0 {
		t.Fatalf("expected empty status list, got %d", len(got.Budgets))
	}
	if got.TotalBudget.Cents != 0 {
		t.Fatalf("expected zero total budget, got %d", got.TotalBudget.Cents)
	}
	if got.TotalSpent.Cents != 4200 {
		t.Fatalf("total spent is still computed: expected 4200, got %d", got.TotalSpent.Cents)
	}
}

func TestEvaluateBudgetsZeroAmountGuard(t *testing.T) {
	// Amounts are validated positive on the way in, but evaluation still
	// guards the division.
	budgets := []Budget{budget(CategoryFood, 0, PeriodMonthly)}
	expenses := []Expense{expense(100, CategoryFood, "2024-06-01")}

	got := EvaluateBudgets(budgets, expenses)
	if got.Budgets[0].Percentage != 0 {
		t.Fatalf("expected 0%% for zero-amount budget, got %d", got.Budgets[0].Percentage)
	}
	if !got.Budgets[0].OverBudget {
		t.Fatal("any spend against a zero budget is over")
	}
}
