package handlers

import (
	"log/slog"
	"net/http"

	"assignhub/internal/service"
)

// LeaderboardHandler handles leaderboard requests
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Get returns the ranked leaderboard
// @Summary Get the leaderboard
// @Description Users ranked by points (3 per rating point received) or by average rating
// @Tags Leaderboard
// @Produce json
// @Param sort query string false "Sort mode" Enums(points, rating) default(points)
// @Success 200 {array} models.LeaderboardEntry "Ranked entries"
// @Failure 400 {object} map[string]string "Invalid sort parameter"
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = service.SortByPoints
	}
	if sortBy != service.SortByPoints && sortBy != service.SortByRating {
		respondWithError(w, http.StatusBadRequest, "Invalid sort parameter")
		return
	}

	entries, err := h.leaderboardService.GetLeaderboard(sortBy)
	if err != nil {
		slog.Error("Failed to compute leaderboard", "error", err)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	JSONResponse(w, http.StatusOK, entries)
}
