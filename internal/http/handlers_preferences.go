package http

import (
	"encoding/json"
	"net/http"

	"spendwise/internal/auth"
	"spendwise/internal/core"
)

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	prefs, err := s.prefs.GetOrCreate(r.Context(), user.ID, user.FullName)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, prefs)
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	var up core.PreferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prefs, err := s.prefs.Update(r.Context(), user.ID, user.FullName, up)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, prefs)
}
