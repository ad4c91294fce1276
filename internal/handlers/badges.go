package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/champions11cc/stats-api/internal/logic"
	"github.com/champions11cc/stats-api/internal/models"
)

// GetBadgeCatalog returns all badge definitions
// @Summary Badge Catalog
// @Tags Badges
// @Produce json
// @Success 200 {array} models.BadgeDefinition "Catalog"
// @Router /badges [get]
func (h *Handler) GetBadgeCatalog(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.badges.Catalog())
}

// ScanBadges runs the full badge scan
// @Summary Scan Badges
// @Description Evaluates every badge against the current dataset. Cached per dataset version.
// @Tags Badges
// @Produce json
// @Success 200 {array} models.ScanResult "Scan results in catalog order"
// @Failure 503 {object} map[string]string "No dataset loaded"
// @Router /badges/scan [get]
func (h *Handler) ScanBadges(w http.ResponseWriter, r *http.Request) {
	results, err := h.badges.Scan(r.Context())
	if err != nil {
		if errors.Is(err, logic.ErrNoDataset) {
			h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
			return
		}
		h.logger.Errorw("badge scan failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Scan failed")
		return
	}
	h.jsonResponse(w, http.StatusOK, results)
}

// GetPlayerBadges returns one player's earned badges
// @Summary Player Badges
// @Tags Badges
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {array} models.ScanResult "Badges the player earned"
// @Failure 503 {object} map[string]string "No dataset loaded"
// @Router /players/{playerID}/badges [get]
func (h *Handler) GetPlayerBadges(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	results, err := h.badges.PlayerAwards(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, logic.ErrNoDataset) {
			h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
			return
		}
		h.logger.Errorw("player badge lookup failed", "player", playerID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Lookup failed")
		return
	}
	h.jsonResponse(w, http.StatusOK, results)
}

// PreviewBadge evaluates a candidate badge definition
// @Summary Preview Badge
// @Description Dry-runs a badge definition against the current dataset without adding it to the catalog
// @Tags Badges
// @Accept json
// @Produce json
// @Success 200 {object} models.ScanResult "Who would earn it"
// @Failure 400 {object} map[string]string "Invalid definition"
// @Router /badges/preview [post]
func (h *Handler) PreviewBadge(w http.ResponseWriter, r *http.Request) {
	var def models.BadgeDefinition
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize)).Decode(&def); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := h.validator.Struct(&def); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid badge definition: "+err.Error())
		return
	}

	result, err := h.badges.Preview(r.Context(), def)
	if err != nil {
		if errors.Is(err, logic.ErrNoDataset) {
			h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
			return
		}
		h.logger.Errorw("badge preview failed", "badge", def.ID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Preview failed")
		return
	}
	h.jsonResponse(w, http.StatusOK, result)
}
