package core

// BudgetStatus is a budget joined with the spending it constrains.
type BudgetStatus struct {
	Budget
	Spent      Money `json:"spent"`
	Percentage int   `json:"percentage"`
	OverBudget bool  `json:"is_over_budget"`
}

// BudgetReport is the full budget-versus-spend picture for one owner
// over one date range.
type BudgetReport struct {
	Budgets     []BudgetStatus `json:"budgets"`
	TotalBudget Money          `json:"total_budget"`
	TotalSpent  Money          `json:"total_spent"`
}

// EvaluateBudgets joins budget thresholds against aggregated spend.
//
// The "total" pseudo-category compares against aggregate spend across all
// categories; any other category compares against that category's sum, 0
// when it has no expenses. OverBudget is strict: spending exactly the
// budgeted amount is not over. TotalBudget is the "total" budget's amount
// when one exists, otherwise the sum of all per-category amounts. With no
// budgets the status list is empty and TotalSpent is still computed.
func EvaluateBudgets(budgets []Budget, expenses []Expense) BudgetReport {
	byCategory := make(map[Category]int64)
	var totalSpent int64
	for _, e := range expenses {
		byCategory[e.Category] += e.Amount.Cents
		totalSpent += e.Amount.Cents
	}

	report := BudgetReport{
		Budgets:    make([]BudgetStatus, 0, len(budgets)),
		TotalSpent: Money{Cents: totalSpent},
	}

	var totalEntry *Budget
	var summed int64
	for i, b := range budgets {
		spent := byCategory[b.Category]
		if b.Category == CategoryTotal {
			spent = totalSpent
			totalEntry = &budgets[i]
		}
		report.Budgets = append(report.Budgets, BudgetStatus{
			Budget:     b,
			Spent:      Money{Cents: spent},
			Percentage: PercentOf(Money{Cents: spent}, b.Amount),
			OverBudget: spent > b.Amount.Cents,
		})
		summed += b.Amount.Cents
	}

	if totalEntry != nil {
		report.TotalBudget = totalEntry.Amount
	} else if len(budgets) > 0 {
		report.TotalBudget = Money{Cents: summed}
	}
	return report
}
