package logic

import (
	"sort"
	"strings"

	"github.com/champions11cc/stats-api/internal/models"
)

// Outcome is the normalized classification of a match result string.
type Outcome string

const (
	OutcomeWon      Outcome = "won"
	OutcomeLost     Outcome = "lost"
	OutcomeTied     Outcome = "tie"
	OutcomeNoResult Outcome = "no_result"
	OutcomeUnknown  Outcome = "unknown"
)

// ClassifyResult normalizes free-text result strings ("Won by 5 wkts",
// "Match abandoned - no result") into an Outcome.
func ClassifyResult(result string) Outcome {
	r := strings.ToLower(strings.TrimSpace(result))
	switch {
	case r == "":
		return OutcomeUnknown
	case strings.Contains(r, "won"):
		return OutcomeWon
	case strings.Contains(r, "lost"):
		return OutcomeLost
	case strings.Contains(r, "tie"):
		return OutcomeTied
	case strings.Contains(r, "no "):
		return OutcomeNoResult
	default:
		return OutcomeUnknown
	}
}

// leaderboard folds per-player values and returns the top entries sorted by
// value descending, PlayerID ascending on ties. Name resolution falls back
// to the PlayerID when the registry has no row.
func leaderboard(values map[string]float64, players map[string]*models.Player, limit int) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(values))
	for pid, v := range values {
		name := pid
		if p := players[pid]; p != nil && p.Name != "" {
			name = p.Name
		}
		entries = append(entries, models.LeaderboardEntry{PlayerID: pid, PlayerName: name, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func TopRunScorers(ds *models.Dataset, limit int) []models.LeaderboardEntry {
	values := map[string]float64{}
	for i := range ds.Batting {
		pid := strings.TrimSpace(ds.Batting[i].PlayerID)
		if pid == "" {
			continue
		}
		values[pid] += float64(ds.Batting[i].Runs)
	}
	return leaderboard(values, ds.PlayerIndex(), limit)
}

func TopWicketTakers(ds *models.Dataset, limit int) []models.LeaderboardEntry {
	values := map[string]float64{}
	for i := range ds.Bowling {
		pid := strings.TrimSpace(ds.Bowling[i].PlayerID)
		if pid == "" {
			continue
		}
		values[pid] += float64(ds.Bowling[i].Wickets)
	}
	return leaderboard(values, ds.PlayerIndex(), limit)
}

func TopCatchers(ds *models.Dataset, limit int) []models.LeaderboardEntry {
	values := map[string]float64{}
	for i := range ds.Fielding {
		pid := strings.TrimSpace(ds.Fielding[i].PlayerID)
		if pid == "" {
			continue
		}
		values[pid] += float64(ds.Fielding[i].Catches)
	}
	return leaderboard(values, ds.PlayerIndex(), limit)
}

// careerField extracts one sortable value from a career row. ok is false
// when the row has no data for the field.
type careerField struct {
	extract   func(*models.CareerRow) (float64, bool)
	ascending bool
}

var careerFields = map[string]careerField{
	"runs": {extract: func(r *models.CareerRow) (float64, bool) {
		return float64(r.Runs), true
	}},
	"wickets": {extract: func(r *models.CareerRow) (float64, bool) {
		return float64(r.Wickets), true
	}},
	"catches": {extract: func(r *models.CareerRow) (float64, bool) {
		return float64(r.Catches), true
	}},
	"average": {extract: func(r *models.CareerRow) (float64, bool) {
		if r.Average == nil {
			return 0, false
		}
		return *r.Average, true
	}},
	"strike_rate": {extract: func(r *models.CareerRow) (float64, bool) {
		if r.StrikeRate == nil {
			return 0, false
		}
		return *r.StrikeRate, true
	}},
	"economy": {extract: func(r *models.CareerRow) (float64, bool) {
		if r.Economy == nil {
			return 0, false
		}
		return *r.Economy, true
	}, ascending: true},
}

// CareerStatFields lists the field names TopCareer accepts.
func CareerStatFields() []string {
	names := make([]string, 0, len(careerFields))
	for name := range careerFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TopCareer ranks players by a career stat. Economy sorts ascending since
// lower is better; rows missing the stat are omitted. Unknown fields return
// nil so the handler can reject them.
func TopCareer(ds *models.Dataset, field string, limit int) []models.LeaderboardEntry {
	cf, ok := careerFields[field]
	if !ok {
		return nil
	}
	entries := []models.LeaderboardEntry{}
	for i := range ds.Career {
		row := &ds.Career[i]
		pid := strings.TrimSpace(row.PlayerID)
		if pid == "" {
			continue
		}
		v, ok := cf.extract(row)
		if !ok {
			continue
		}
		name := row.Name
		if name == "" {
			name = pid
		}
		entries = append(entries, models.LeaderboardEntry{PlayerID: pid, PlayerName: name, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			if cf.ascending {
				return entries[i].Value < entries[j].Value
			}
			return entries[i].Value > entries[j].Value
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// VenueSummaries groups matches by venue with win/loss counts and the mean
// of the team totals recorded there. Venues sort alphabetically.
func VenueSummaries(ds *models.Dataset) []models.VenueSummary {
	type acc struct {
		summary  models.VenueSummary
		runs     float64
		runCount int
	}
	byVenue := map[string]*acc{}
	order := []string{}
	for i := range ds.Matches {
		m := &ds.Matches[i]
		venue := strings.TrimSpace(m.Venue)
		if venue == "" {
			venue = "Unknown"
		}
		a := byVenue[venue]
		if a == nil {
			a = &acc{summary: models.VenueSummary{Venue: venue}}
			byVenue[venue] = a
			order = append(order, venue)
		}
		a.summary.Matches++
		switch ClassifyResult(m.Result) {
		case OutcomeWon:
			a.summary.Won++
		case OutcomeLost:
			a.summary.Lost++
		}
		if m.TeamRuns != nil {
			a.runs += *m.TeamRuns
			a.runCount++
		}
	}
	sort.Strings(order)
	out := make([]models.VenueSummary, 0, len(order))
	for _, venue := range order {
		a := byVenue[venue]
		if a.summary.Matches > 0 {
			a.summary.WinRate = round2(float64(a.summary.Won) / float64(a.summary.Matches) * 100)
		}
		if a.runCount > 0 {
			avg := round2(a.runs / float64(a.runCount))
			a.summary.AvgTeamRuns = &avg
		}
		out = append(out, a.summary)
	}
	return out
}

// OpponentSummaries groups matches by opponent with the full outcome
// breakdown. Opponents sort alphabetically.
func OpponentSummaries(ds *models.Dataset) []models.OpponentSummary {
	byOpp := map[string]*models.OpponentSummary{}
	order := []string{}
	for i := range ds.Matches {
		m := &ds.Matches[i]
		opp := strings.TrimSpace(m.Opponent)
		if opp == "" {
			opp = "Unknown"
		}
		s := byOpp[opp]
		if s == nil {
			s = &models.OpponentSummary{Opponent: opp}
			byOpp[opp] = s
			order = append(order, opp)
		}
		s.Matches++
		switch ClassifyResult(m.Result) {
		case OutcomeWon:
			s.Won++
		case OutcomeLost:
			s.Lost++
		case OutcomeTied:
			s.Tied++
		case OutcomeNoResult:
			s.NoResult++
		}
	}
	sort.Strings(order)
	out := make([]models.OpponentSummary, 0, len(order))
	for _, opp := range order {
		s := byOpp[opp]
		if s.Matches > 0 {
			s.WinRate = round2(float64(s.Won) / float64(s.Matches) * 100)
		}
		out = append(out, *s)
	}
	return out
}

// MatchRatings scores every player's all-round contribution in one match.
// The weights favour wickets heavily, with economy and strike rate bonuses
// only once the workload is meaningful (2+ overs, 10+ balls). Sorted by
// rating descending, PlayerID ascending on ties.
func MatchRatings(ds *models.Dataset, matchID string) []models.PlayerRating {
	stats := Aggregate(ds)
	players := ds.PlayerIndex()
	mid := strings.TrimSpace(matchID)

	ratings := []models.PlayerRating{}
	stats.ForEach(func(m, pid string, st *models.MatchPlayerStats) {
		if m != mid {
			return
		}
		rating := float64(st.Runs) +
			20*float64(st.Wickets) +
			8*float64(st.Catches) +
			12*float64(st.DirectHitRunOuts)
		if st.Economy != nil && st.OversBowled != nil && *st.OversBowled >= 2 {
			rating += (6 - *st.Economy) * 4
		}
		if st.StrikeRate != nil && st.BallsFaced >= 10 {
			rating += (*st.StrikeRate - 100) * 0.1
		}
		name := pid
		if p := players[pid]; p != nil && p.Name != "" {
			name = p.Name
		}
		ratings = append(ratings, models.PlayerRating{
			PlayerID:   pid,
			PlayerName: name,
			MatchID:    mid,
			Rating:     round2(rating),
		})
	})
	sort.Slice(ratings, func(i, j int) bool {
		if ratings[i].Rating != ratings[j].Rating {
			return ratings[i].Rating > ratings[j].Rating
		}
		return ratings[i].PlayerID < ratings[j].PlayerID
	})
	return ratings
}
