package http

import (
	"encoding/json"
	"net/http"

	"spendwise/internal/auth"
	"spendwise/internal/core"
)

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	period := core.Period(r.URL.Query().Get("period"))

	budgets, err := s.budgets.List(r.Context(), user.ID, period)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, budgets)
}

func (s *Server) handleUpsertBudget(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	var in core.BudgetInsert
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	budget, err := s.budgets.Upsert(r.Context(), user.ID, in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, budget)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	category := core.Category(r.URL.Query().Get("category"))
	period := core.Period(r.URL.Query().Get("period"))

	if err := s.budgets.Delete(r.Context(), user.ID, category, period); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	category := core.Category(r.URL.Query().Get("category"))
	period := core.Period(r.URL.Query().Get("period"))
	if !category.ValidForBudget() {
		respondError(w, http.StatusBadRequest, core.ErrInvalidCategory.Error())
		return
	}
	if !period.Valid() {
		respondError(w, http.StatusBadRequest, core.ErrInvalidPeriod.Error())
		return
	}

	budget, err := s.budgets.Get(r.Context(), user.ID, category, period)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	// An unset budget is a null datum, not an error: the caller falls
	// back to preference defaults.
	respondData(w, http.StatusOK, budget)
}

func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	rng, err := parseDateRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.budgets.Status(r.Context(), user.ID, rng)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, report)
}
