package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// GetDashboardMetricsHandler godoc
// @Summary Sales dashboard metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} MetricsResponse
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.orders.GetDashboardMetrics(r.Context())
	if err != nil {
		log.Printf("failed to fetch metrics: %v", err)
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, toMetricsResponse(m))
}
