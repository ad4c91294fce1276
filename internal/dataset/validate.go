package dataset

import (
	"fmt"
	"strings"

	"github.com/champions11cc/stats-api/internal/models"
)

// Validate runs referential checks over an uploaded dataset and returns the
// first problem found. An upload that fails here is rejected wholesale; the
// store never publishes a partially consistent dataset.
func Validate(ds *models.Dataset) error {
	if len(ds.Matches) == 0 {
		return fmt.Errorf("dataset has no matches")
	}
	if len(ds.Players) == 0 {
		return fmt.Errorf("dataset has no players")
	}

	players := make(map[string]bool, len(ds.Players))
	for i := range ds.Players {
		id := strings.TrimSpace(ds.Players[i].PlayerID)
		if id == "" {
			return fmt.Errorf("players[%d]: empty PlayerID", i)
		}
		players[id] = true
	}

	matches := make(map[string]bool, len(ds.Matches))
	for i := range ds.Matches {
		id := strings.TrimSpace(ds.Matches[i].MatchID)
		if id == "" {
			return fmt.Errorf("matches[%d]: empty MatchID", i)
		}
		matches[id] = true
	}

	for i := range ds.Batting {
		if err := checkRef("batting", i, ds.Batting[i].MatchID, ds.Batting[i].PlayerID, matches, players); err != nil {
			return err
		}
	}
	for i := range ds.Bowling {
		if err := checkRef("bowling", i, ds.Bowling[i].MatchID, ds.Bowling[i].PlayerID, matches, players); err != nil {
			return err
		}
	}
	for i := range ds.Fielding {
		if err := checkRef("fielding", i, ds.Fielding[i].MatchID, ds.Fielding[i].PlayerID, matches, players); err != nil {
			return err
		}
	}

	covered := make(map[string]bool, len(ds.Career))
	for i := range ds.Career {
		id := strings.TrimSpace(ds.Career[i].PlayerID)
		if id == "" {
			return fmt.Errorf("player_career_stats[%d]: empty PlayerID", i)
		}
		if !players[id] {
			return fmt.Errorf("player_career_stats[%d]: unknown PlayerID %q", i, id)
		}
		covered[id] = true
	}
	for id := range players {
		if !covered[id] {
			return fmt.Errorf("player %q has no career stats row", id)
		}
	}

	return nil
}

func checkRef(sheet string, i int, matchID, playerID string, matches, players map[string]bool) error {
	mid := strings.TrimSpace(matchID)
	pid := strings.TrimSpace(playerID)
	if mid == "" || !matches[mid] {
		return fmt.Errorf("%s[%d]: unknown MatchID %q", sheet, i, matchID)
	}
	if pid == "" || !players[pid] {
		return fmt.Errorf("%s[%d]: unknown PlayerID %q", sheet, i, playerID)
	}
	return nil
}
