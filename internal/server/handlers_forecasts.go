package server

import (
	"net/http"
)

// handleJobForecasting lists growth forecasts, optionally filtered by
// category ("all" or empty returns everything)
func (s *Server) handleJobForecasting(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "all"
	}

	s.jsonResponse(w, http.StatusOK, s.catalog.ForecastsByCategory(category))
}
