package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Period is the time span a budget applies to.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidRange    = errors.New("end date before start date")
	ErrValidation      = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
)

const maxDescriptionLen = 200

// Expense is a single spending record owned by one user.
type Expense struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	Amount      Money     `json:"amount"`
	Category    Category  `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseInsert carries the caller-supplied fields of a new expense.
type ExpenseInsert struct {
	Amount      Money    `json:"amount"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	Date        Date     `json:"date"`
}

func (in ExpenseInsert) Validate() error {
	if err := in.Amount.Validate(); err != nil {
		return err
	}
	if !in.Category.Valid() {
		return ErrInvalidCategory
	}
	if err := in.Date.Validate(); err != nil {
		return err
	}
	if len(in.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description too long (max %d characters)", ErrValidation, maxDescriptionLen)
	}
	return nil
}

// ExpenseUpdate carries a partial update: nil fields are left unchanged.
type ExpenseUpdate struct {
	Amount      *Money    `json:"amount,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Date        *Date     `json:"date,omitempty"`
}

func (up ExpenseUpdate) Validate() error {
	if up.Amount != nil {
		if err := up.Amount.Validate(); err != nil {
			return err
		}
	}
	if up.Category != nil && !up.Category.Valid() {
		return ErrInvalidCategory
	}
	if up.Date != nil {
		if err := up.Date.Validate(); err != nil {
			return err
		}
	}
	if up.Description != nil && len(*up.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description too long (max %d characters)", ErrValidation, maxDescriptionLen)
	}
	return nil
}

// ExpenseFilter narrows an expense listing. Zero values mean "no filter";
// date bounds are inclusive.
type ExpenseFilter struct {
	Start    *Date
	End      *Date
	Category Category
	Limit    int
}

// Budget is a spending limit for one category (or "total") over a period.
// The triple (owner, category, period) is unique; upserts replace in place.
type Budget struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Category  Category  `json:"category"`
	Amount    Money     `json:"amount"`
	Period    Period    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetInsert carries the caller-supplied fields of a budget upsert.
type BudgetInsert struct {
	Category Category `json:"category"`
	Amount   Money    `json:"amount"`
	Period   Period   `json:"period"`
}

func (in BudgetInsert) Validate() error {
	if !in.Category.ValidForBudget() {
		return ErrInvalidCategory
	}
	if err := in.Amount.Validate(); err != nil {
		return err
	}
	if !in.Period.Valid() {
		return ErrInvalidPeriod
	}
	return nil
}

// UserPreferences is the per-owner fallback configuration. Exactly one
// record exists per owner; it is created lazily on first read.
type UserPreferences struct {
	OwnerID              string    `json:"-"`
	DisplayName          string    `json:"display_name,omitempty"`
	DefaultDailyBudget   Money     `json:"default_daily_budget"`
	DefaultMonthlyBudget Money     `json:"default_monthly_budget"`
	Currency             string    `json:"currency"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PreferencesUpdate carries a partial preferences upsert.
type PreferencesUpdate struct {
	DisplayName          *string `json:"display_name,omitempty"`
	DefaultDailyBudget   *Money  `json:"default_daily_budget,omitempty"`
	DefaultMonthlyBudget *Money  `json:"default_monthly_budget,omitempty"`
	Currency             *string `json:"currency,omitempty"`
}

func (up PreferencesUpdate) Validate() error {
	if up.DefaultDailyBudget != nil {
		if err := up.DefaultDailyBudget.Validate(); err != nil {
			return err
		}
	}
	if up.DefaultMonthlyBudget != nil {
		if err := up.DefaultMonthlyBudget.Validate(); err != nil {
			return err
		}
	}
	if up.Currency != nil && len(strings.TrimSpace(*up.Currency)) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code", ErrValidation)
	}
	return nil
}
