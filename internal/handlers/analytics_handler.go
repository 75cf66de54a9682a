package handlers

import (
	"log/slog"
	"net/http"

	"assignhub/internal/service"
)

// AnalyticsHandler handles analytics requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Summary returns the platform analytics summary
// @Summary Get analytics summary
// @Description Totals, average rating, uploads for the trailing 14 days, rating distribution and top users
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.AnalyticsSummary "Summary"
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.GetSummary()
	if err != nil {
		slog.Error("Failed to compute analytics summary", "error", err)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	JSONResponse(w, http.StatusOK, summary)
}
