package http

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"spendwise/internal/auth"
	"spendwise/internal/core"
)

// handleExportReport streams the expenses in the requested range as CSV,
// one row per expense, newest first.
func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	rng, err := parseDateRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expenses, err := s.expenses.List(r.Context(), user.ID, core.ExpenseFilter{
		Start: &rng.Start,
		End:   &rng.End,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.csv", rng.Start.ISO(), rng.End.ISO())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"date", "category", "description", "amount"})
	for _, e := range expenses {
		if err := cw.Write([]string{e.Date.ISO(), string(e.Category), e.Description, e.Amount.String()}); err != nil {
			return
		}
	}
	cw.Flush()
}
