package core

import (
	"errors"
	"strings"
	"testing"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Fatalf("%q should be a valid expense category", c)
		}
	}
	if CategoryTotal.Valid() {
		t.Fatal(`"total" is not an expense category`)
	}
	if !CategoryTotal.ValidForBudget() {
		t.Fatal(`"total" must be valid on budgets`)
	}
	if Category("crypto").Valid() || Category("crypto").ValidForBudget() {
		t.Fatal("unknown category accepted")
	}
}

func TestCategoryInfoFallback(t *testing.T) {
	if CategoryFood.Info().Label != "Food & Dining" {
		t.Fatalf("unexpected label %q", CategoryFood.Info().Label)
	}
	if Category("bogus").Info() != CategoryOther.Info() {
		t.Fatal("unknown category should fall back to other's metadata")
	}
}

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{PeriodDaily, PeriodMonthly, PeriodYearly} {
		if !p.Valid() {
			t.Fatalf("%q should be valid", p)
		}
	}
	if Period("weekly").Valid() {
		t.Fatal("weekly is not a supported period")
	}
}

func TestExpenseInsertValidate(t *testing.T) {
	good := ExpenseInsert{
		Amount:   Money{Cents: 100},
		Category: CategoryFood,
		Date:     NewDate(2024, 6, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []ExpenseInsert{
		{Amount: Money{Cents: 0}, Category: CategoryFood, Date: NewDate(2024, 6, 1)},
		{Amount: Money{Cents: 100}, Category: "bogus", Date: NewDate(2024, 6, 1)},
		{Amount: Money{Cents: 100}, Category: CategoryTotal, Date: NewDate(2024, 6, 1)}, // total not allowed on expenses
		{Amount: Money{Cents: 100}, Category: CategoryFood},                             // zero date
		{Amount: Money{Cents: 100}, Category: CategoryFood, Date: NewDate(2024, 6, 1), Description: strings.Repeat("x", 201)},
	}
	for i, in := range bads {
		if err := in.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExpenseUpdateValidate(t *testing.T) {
	if err := (ExpenseUpdate{}).Validate(); err != nil {
		t.Fatalf("empty update is fine, got %v", err)
	}

	amount := Money{Cents: 500}
	if err := (ExpenseUpdate{Amount: &amount}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	zero := Money{}
	if err := (ExpenseUpdate{Amount: &zero}).Validate(); err == nil {
		t.Fatal("zero amount must fail")
	}
	bogus := Category("bogus")
	if err := (ExpenseUpdate{Category: &bogus}).Validate(); err == nil {
		t.Fatal("bogus category must fail")
	}
	long := strings.Repeat("x", 201)
	if err := (ExpenseUpdate{Description: &long}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("long description must fail with ErrValidation, got %v", err)
	}
}

func TestBudgetInsertValidate(t *testing.T) {
	good := BudgetInsert{Category: CategoryTotal, Amount: Money{Cents: 100}, Period: PeriodMonthly}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []BudgetInsert{
		{Category: "bogus", Amount: Money{Cents: 100}, Period: PeriodMonthly},
		{Category: CategoryFood, Amount: Money{Cents: 0}, Period: PeriodMonthly},
		{Category: CategoryFood, Amount: Money{Cents: 100}, Period: "weekly"},
	}
	for i, in := range bads {
		if err := in.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestPreferencesUpdateValidate(t *testing.T) {
	eur := "EUR"
	daily := Money{Cents: 10000}
	if err := (PreferencesUpdate{Currency: &eur, DefaultDailyBudget: &daily}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	long := "EURO"
	if err := (PreferencesUpdate{Currency: &long}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("4-letter currency must fail with ErrValidation, got %v", err)
	}
	zero := Money{}
	if err := (PreferencesUpdate{DefaultMonthlyBudget: &zero}).Validate(); err == nil {
		t.Fatal("zero budget must fail")
	}
}
