package logic

import (
	"math"
	"strconv"
	"strings"

	"github.com/champions11cc/stats-api/internal/models"
)

// StatsTable holds the derived per-(match, player) records with a stable
// iteration order: matches in first-touch order, players in first-touch
// order within each match. Determinism here is what makes repeated scans
// over the same dataset produce identical output.
type StatsTable struct {
	byMatch     map[string]map[string]*models.MatchPlayerStats
	matchOrder  []string
	playerOrder map[string][]string
}

func newStatsTable() *StatsTable {
	return &StatsTable{
		byMatch:     map[string]map[string]*models.MatchPlayerStats{},
		playerOrder: map[string][]string{},
	}
}

// touch returns the defaulted record for (matchID, playerID), creating it on
// first use. Rows with missing keys are rejected with nil.
func (t *StatsTable) touch(matchID, playerID string) *models.MatchPlayerStats {
	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)
	if matchID == "" || playerID == "" {
		return nil
	}
	players, ok := t.byMatch[matchID]
	if !ok {
		players = map[string]*models.MatchPlayerStats{}
		t.byMatch[matchID] = players
		t.matchOrder = append(t.matchOrder, matchID)
	}
	st, ok := players[playerID]
	if !ok {
		st = &models.MatchPlayerStats{}
		players[playerID] = st
		t.playerOrder[matchID] = append(t.playerOrder[matchID], playerID)
	}
	return st
}

// Get returns the record for (matchID, playerID) or nil.
func (t *StatsTable) Get(matchID, playerID string) *models.MatchPlayerStats {
	return t.byMatch[strings.TrimSpace(matchID)][strings.TrimSpace(playerID)]
}

// ForEach visits every record in stable order.
func (t *StatsTable) ForEach(fn func(matchID, playerID string, st *models.MatchPlayerStats)) {
	for _, mid := range t.matchOrder {
		for _, pid := range t.playerOrder[mid] {
			fn(mid, pid, t.byMatch[mid][pid])
		}
	}
}

// Len returns the number of (match, player) records.
func (t *StatsTable) Len() int {
	n := 0
	for _, mid := range t.matchOrder {
		n += len(t.playerOrder[mid])
	}
	return n
}

// Aggregate folds the batting, bowling and fielding sheets into a fresh
// StatsTable. The table is rebuilt fully on every call; nothing is cached or
// mutated in place.
//
// Merge policy, pinned by tests: an explicit Strike Rate or Economy on a row
// overwrites any derived value, last row wins. Strike rate is re-derived from
// running totals when a later row carries no explicit value; economy is only
// derived at the end, for pairs that never saw an explicit value.
func Aggregate(ds *models.Dataset) *StatsTable {
	t := newStatsTable()
	if ds == nil {
		return t
	}

	for i := range ds.Batting {
		row := &ds.Batting[i]
		st := t.touch(row.MatchID, row.PlayerID)
		if st == nil {
			continue
		}
		st.Runs += row.Runs
		st.BallsFaced += row.Balls
		st.Sixes += row.Sixes
		if row.StrikeRate != nil {
			v := *row.StrikeRate
			st.StrikeRate = &v
		} else if st.Runs > 0 && st.BallsFaced > 0 {
			v := round2(float64(st.Runs) / float64(st.BallsFaced) * 100)
			st.StrikeRate = &v
		}
	}

	for i := range ds.Bowling {
		row := &ds.Bowling[i]
		st := t.touch(row.MatchID, row.PlayerID)
		if st == nil {
			continue
		}
		st.Wickets += row.Wickets
		st.BowlingRuns += row.RunsConceded
		if ov := OversToDecimal(row.Overs); ov != nil {
			if st.OversBowled == nil {
				st.OversBowled = new(float64)
			}
			*st.OversBowled += *ov
		}
		if row.Economy != nil {
			v := *row.Economy
			st.Economy = &v
		}
	}

	for i := range ds.Fielding {
		row := &ds.Fielding[i]
		st := t.touch(row.MatchID, row.PlayerID)
		if st == nil {
			continue
		}
		st.Catches += row.Catches
		st.DirectHitRunOuts += row.DirectHitRunOuts
	}

	// Derive economy where no row supplied one and real overs were bowled.
	t.ForEach(func(_, _ string, st *models.MatchPlayerStats) {
		if st.Economy == nil && st.OversBowled != nil && *st.OversBowled > 0 {
			v := round2(float64(st.BowlingRuns) / *st.OversBowled)
			st.Economy = &v
		}
	})

	return t
}

// OversToDecimal converts cricket over notation to decimal overs: 4.3 means
// 4 overs and 3 balls, i.e. 4.5 decimal overs. Zero, empty and non-numeric
// input yield nil, as does a conversion to zero or fewer total balls —
// guarding against phantom economy rates from zero-over spells.
func OversToDecimal(v any) *float64 {
	var raw float64
	switch x := v.(type) {
	case nil:
		return nil
	case *float64:
		if x == nil {
			return nil
		}
		raw = *x
	case float64:
		raw = x
	case int:
		raw = float64(x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		raw = n
	default:
		return nil
	}

	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return nil
	}
	whole := math.Floor(raw)
	ballsDigit := math.Round((raw - whole) * 10)
	totalBalls := int(whole)*6 + int(ballsDigit)
	if totalBalls <= 0 {
		return nil
	}
	dec := float64(totalBalls) / 6.0
	return &dec
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
