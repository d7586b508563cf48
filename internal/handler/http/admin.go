package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.ProfileService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProfileService.DeleteUser(r.Context(), chi.URLParam(r, "key")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getReport builds the demographics report. The optional "year" query
// parameter selects the year of the monthly breakdown.
func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.ReportService.Build(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, report, http.StatusOK)
}
