package http

import (
	"encoding/json"
	"net/http"

	"spendwise/internal/auth"
	"spendwise/internal/core"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	filter, err := parseExpenseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expenses, err := s.expenses.List(r.Context(), user.ID, filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, expenses)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	var in core.ExpenseInsert
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := s.expenses.Create(r.Context(), user.ID, in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, expense)
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "expense id is required")
		return
	}

	expense, err := s.expenses.Get(r.Context(), user.ID, id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, expense)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "expense id is required")
		return
	}

	var up core.ExpenseUpdate
	if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := s.expenses.Update(r.Context(), user.ID, id, up)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, expense)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "expense id is required")
		return
	}

	if err := s.expenses.Delete(r.Context(), user.ID, id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleExpenseSummary(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	rng, err := parseDateRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.expenses.Summary(r.Context(), user.ID, rng)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, summary)
}

func (s *Server) handleDailySpending(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	rng, err := parseDateRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	totals, err := s.expenses.DailySpending(r.Context(), user.ID, rng)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, totals)
}

func (s *Server) handleTodayExpenses(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	today, err := s.expenses.Today(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, today)
}
