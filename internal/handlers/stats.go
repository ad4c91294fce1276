package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/champions11cc/stats-api/internal/logic"
	"github.com/champions11cc/stats-api/internal/models"
)

// ListPlayers returns the registry merged with career totals
// @Summary List Players
// @Tags Stats
// @Produce json
// @Success 200 {array} models.PlayerSummary "Players"
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}

	career := make(map[string]*models.CareerRow, len(ds.Career))
	for i := range ds.Career {
		career[strings.TrimSpace(ds.Career[i].PlayerID)] = &ds.Career[i]
	}

	summaries := make([]models.PlayerSummary, 0, len(ds.Players))
	for i := range ds.Players {
		p := &ds.Players[i]
		s := models.PlayerSummary{PlayerID: p.PlayerID, Name: p.Name, Role: p.Role}
		if c := career[strings.TrimSpace(p.PlayerID)]; c != nil {
			s.Matches = c.Matches
			s.Runs = c.Runs
			s.Average = c.Average
			s.StrikeRate = c.StrikeRate
			s.Wickets = c.Wickets
			s.Economy = c.Economy
			s.Catches = c.Catches
		}
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].PlayerID < summaries[j].PlayerID
	})

	h.jsonResponse(w, http.StatusOK, summaries)
}

// GetPlayer returns one player's summary
// @Summary Get Player
// @Tags Stats
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} models.PlayerSummary "Player"
// @Failure 404 {object} map[string]string "Unknown player"
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}

	playerID := strings.TrimSpace(chi.URLParam(r, "playerID"))
	player := ds.PlayerIndex()[playerID]
	if player == nil {
		h.errorResponse(w, http.StatusNotFound, "Unknown player")
		return
	}

	s := models.PlayerSummary{PlayerID: player.PlayerID, Name: player.Name, Role: player.Role}
	for i := range ds.Career {
		if strings.TrimSpace(ds.Career[i].PlayerID) == playerID {
			c := &ds.Career[i]
			s.Matches = c.Matches
			s.Runs = c.Runs
			s.Average = c.Average
			s.StrikeRate = c.StrikeRate
			s.Wickets = c.Wickets
			s.Economy = c.Economy
			s.Catches = c.Catches
		}
	}

	h.jsonResponse(w, http.StatusOK, s)
}

// ListMatches returns all fixtures, newest first
// @Summary List Matches
// @Tags Stats
// @Produce json
// @Success 200 {array} models.Match "Matches"
// @Router /matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}

	matches := make([]models.Match, len(ds.Matches))
	copy(matches, ds.Matches)
	// Dates are ISO formatted in the export, so string order is date order.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Date != matches[j].Date {
			return matches[i].Date > matches[j].Date
		}
		return matches[i].MatchID < matches[j].MatchID
	})

	h.jsonResponse(w, http.StatusOK, matches)
}

// GetScorecard returns the full card for one match
// @Summary Match Scorecard
// @Tags Stats
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} models.Scorecard "Scorecard with ratings"
// @Failure 404 {object} map[string]string "Unknown match"
// @Router /matches/{matchID} [get]
func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}

	matchID := strings.TrimSpace(chi.URLParam(r, "matchID"))
	match := ds.MatchIndex()[matchID]
	if match == nil {
		h.errorResponse(w, http.StatusNotFound, "Unknown match")
		return
	}

	card := models.Scorecard{
		Match:    *match,
		Batting:  []models.BattingRow{},
		Bowling:  []models.BowlingRow{},
		Fielding: []models.FieldingRow{},
	}
	for i := range ds.Batting {
		if strings.TrimSpace(ds.Batting[i].MatchID) == matchID {
			card.Batting = append(card.Batting, ds.Batting[i])
		}
	}
	for i := range ds.Bowling {
		if strings.TrimSpace(ds.Bowling[i].MatchID) == matchID {
			card.Bowling = append(card.Bowling, ds.Bowling[i])
		}
	}
	for i := range ds.Fielding {
		if strings.TrimSpace(ds.Fielding[i].MatchID) == matchID {
			card.Fielding = append(card.Fielding, ds.Fielding[i])
		}
	}
	card.Ratings = logic.MatchRatings(ds, matchID)

	h.jsonResponse(w, http.StatusOK, card)
}

// GetVenues returns per-venue summaries
// @Summary Venue Breakdown
// @Tags Stats
// @Produce json
// @Success 200 {array} models.VenueSummary "Venues"
// @Router /venues [get]
func (h *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}
	h.jsonResponse(w, http.StatusOK, logic.VenueSummaries(ds))
}

// GetOpponents returns per-opponent summaries
// @Summary Opponent Breakdown
// @Tags Stats
// @Produce json
// @Success 200 {array} models.OpponentSummary "Opponents"
// @Router /opponents [get]
func (h *Handler) GetOpponents(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}
	h.jsonResponse(w, http.StatusOK, logic.OpponentSummaries(ds))
}

// GetTeamStats returns the team's overall record
// @Summary Team Stats
// @Tags Stats
// @Produce json
// @Success 200 {object} models.TeamStats "Team record"
// @Failure 404 {object} map[string]string "No team stats in dataset"
// @Router /team [get]
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ds, _ := h.store.Snapshot()
	if ds == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "No dataset loaded")
		return
	}
	team := ds.Team()
	if team == nil {
		h.errorResponse(w, http.StatusNotFound, "No team stats in dataset")
		return
	}
	h.jsonResponse(w, http.StatusOK, team)
}
