package core

import "sort"

// CategoryShare is one category's slice of a summary: the summed amount
// and its share of total spend as an integer percentage.
type CategoryShare struct {
	Category   Category `json:"category"`
	Amount     Money    `json:"amount"`
	Percentage int      `json:"percentage"`
}

// ExpenseSummary is the aggregate of all expenses in a date range.
type ExpenseSummary struct {
	TotalSpent       Money           `json:"total_spent"`
	DailyAverage     Money           `json:"daily_average"`
	TransactionCount int             `json:"transaction_count"`
	ByCategory       []CategoryShare `json:"by_category"`
}

// Summarize aggregates expenses over rng: exact cent total, per-day
// average (half-up to a cent), and per-category shares sorted by amount
// descending. With no expenses every field is zero and ByCategory is
// empty, so no division by zero can happen.
func Summarize(expenses []Expense, rng DateRange) ExpenseSummary {
	if len(expenses) == 0 {
		return ExpenseSummary{}
	}

	var total int64
	byCategory := make(map[Category]int64)
	for _, e := range expenses {
		total += e.Amount.Cents
		byCategory[e.Category] += e.Amount.Cents
	}

	shares := make([]CategoryShare, 0, len(byCategory))
	for category, cents := range byCategory {
		shares = append(shares, CategoryShare{
			Category:   category,
			Amount:     Money{Cents: cents},
			Percentage: PercentOf(Money{Cents: cents}, Money{Cents: total}),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount.Cents != shares[j].Amount.Cents {
			return shares[i].Amount.Cents > shares[j].Amount.Cents
		}
		return shares[i].Category < shares[j].Category
	})

	days := int64(rng.Days())
	return ExpenseSummary{
		TotalSpent:       Money{Cents: total},
		DailyAverage:     Money{Cents: divRoundHalfUp(total, days)},
		TransactionCount: len(expenses),
		ByCategory:       shares,
	}
}

// DailyTotal is one day's summed spending.
type DailyTotal struct {
	Date   Date  `json:"date"`
	Amount Money `json:"amount"`
}

// DailyTotals buckets expenses by exact date and sums each bucket. The
// series is sparse: days without expenses produce no entry. Entries are
// sorted by date ascending.
func DailyTotals(expenses []Expense) []DailyTotal {
	if len(expenses) == 0 {
		return nil
	}

	byDay := make(map[string]*DailyTotal)
	for _, e := range expenses {
		key := e.Date.ISO()
		if bucket, ok := byDay[key]; ok {
			bucket.Amount.Cents += e.Amount.Cents
			continue
		}
		byDay[key] = &DailyTotal{Date: e.Date, Amount: e.Amount}
	}

	out := make([]DailyTotal, 0, len(byDay))
	for _, bucket := range byDay {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// SumAmounts returns the exact cent total of a list of expenses.
func SumAmounts(expenses []Expense) Money {
	var total int64
	for _, e := range expenses {
		total += e.Amount.Cents
	}
	return Money{Cents: total}
}
