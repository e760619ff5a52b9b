package core

import "strings"

// Fallback defaults used when neither a budget nor a preference record
// supplies a value.
const (
	DefaultDailyBudgetCents   int64 = 15000
	DefaultMonthlyBudgetCents int64 = 350000
	DefaultCurrency                 = "USD"
	DefaultDisplayName              = "User"
)

// DefaultBudgetForPeriod returns the hardcoded fallback threshold for a
// period. Yearly budgets have no fallback and resolve to zero.
func DefaultBudgetForPeriod(period Period) Money {
	switch period {
	case PeriodDaily:
		return Money{Cents: DefaultDailyBudgetCents}
	case PeriodMonthly:
		return Money{Cents: DefaultMonthlyBudgetCents}
	}
	return Money{}
}

// EffectiveBudget resolves the spending threshold for a period using the
// fixed priority chain: explicit "total" budget for the period, then the
// owner's preference default, then the hardcoded fallback. A first link
// that is absent or zero falls through to the next.
func EffectiveBudget(budget *Budget, prefs *UserPreferences, period Period) Money {
	if budget != nil && budget.Amount.Cents > 0 {
		return budget.Amount
	}
	if prefs != nil {
		switch period {
		case PeriodDaily:
			if prefs.DefaultDailyBudget.Cents > 0 {
				return prefs.DefaultDailyBudget
			}
		case PeriodMonthly:
			if prefs.DefaultMonthlyBudget.Cents > 0 {
				return prefs.DefaultMonthlyBudget
			}
		}
	}
	return DefaultBudgetForPeriod(period)
}

// ResolveDisplayName picks a name to show for the owner: the preferences
// display name, the account's full name, the local part of the account
// email, then the literal "User".
func ResolveDisplayName(prefs *UserPreferences, fullName, email string) string {
	if prefs != nil && strings.TrimSpace(prefs.DisplayName) != "" {
		return prefs.DisplayName
	}
	if strings.TrimSpace(fullName) != "" {
		return fullName
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return DefaultDisplayName
}

// ResolveCurrency returns the owner's currency code, defaulting to USD.
func ResolveCurrency(prefs *UserPreferences) string {
	if prefs != nil && strings.TrimSpace(prefs.Currency) != "" {
		return prefs.Currency
	}
	return DefaultCurrency
}
