package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/champions11cc/stats-api/internal/logic"
	"github.com/champions11cc/stats-api/internal/models"
)

// GetLeaderboard returns ranked players by a stat
// @Summary Leaderboard
// @Tags Leaderboards
// @Produce json
// @Param stat path string false "Stat to rank by (runs, wickets, catches)" default(runs)
// @Param limit query int false "Limit" default(10)
// @Success 200 {object} map[string]interface{} "Leaderboard"
// @Failure 503 {object} map[string]string "No dataset loaded"
// @Router /leaderboard/{stat} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}

	stat := strings.ToLower(chi.URLParam(r, "stat"))
	if stat == "" {
		stat = "runs"
	}

	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	var entries []models.LeaderboardEntry
	switch stat {
	case "runs":
		entries = logic.TopRunScorers(ds, limit)
	case "wickets":
		entries = logic.TopWicketTakers(ds, limit)
	case "catches":
		entries = logic.TopCatchers(ds, limit)
	default:
		entries = logic.TopRunScorers(ds, limit)
		stat = "runs"
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"stat":    stat,
		"entries": entries,
	})
}

// GetCareerLeaderboard ranks players by a career stat
// @Summary Career Leaderboard
// @Tags Leaderboards
// @Produce json
// @Param field path string true "Career stat (runs, wickets, catches, average, strike_rate, economy)"
// @Param limit query int false "Limit" default(10)
// @Success 200 {object} map[string]interface{} "Leaderboard"
// @Failure 400 {object} map[string]string "Unknown field"
// @Router /leaderboard/career/{field} [get]
func (h *Handler) GetCareerLeaderboard(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}

	field := strings.ToLower(chi.URLParam(r, "field"))
	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	entries := logic.TopCareer(ds, field, limit)
	if entries == nil {
		h.errorResponse(w, http.StatusBadRequest,
			"Unknown field, expected one of: "+strings.Join(logic.CareerStatFields(), ", "))
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"field":   field,
		"entries": entries,
	})
}
