package models

// MatchPlayerStats is the derived per-(match, player) record folded from the
// innings sheets. Counts default to zero and rate metrics to nil before any
// row is applied; a nil rate means "no data", never zero.
type MatchPlayerStats struct {
	Runs             int      `json:"runs"`
	BallsFaced       int      `json:"balls_faced"`
	StrikeRate       *float64 `json:"strike_rate"`
	Sixes            int      `json:"sixes"`
	Wickets          int      `json:"wickets"`
	OversBowled      *float64 `json:"overs_bowled"`
	BowlingRuns      int      `json:"bowling_runs"`
	Economy          *float64 `json:"economy"`
	Catches          int      `json:"catches"`
	DirectHitRunOuts int      `json:"direct_hit_runouts"`
	PlayerOfMatch    *float64 `json:"player_of_match"`
}

type LeaderboardEntry struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Value      float64 `json:"value"`
}

type VenueSummary struct {
	Venue       string   `json:"venue"`
	Matches     int      `json:"matches"`
	Won         int      `json:"won"`
	Lost        int      `json:"lost"`
	WinRate     float64  `json:"win_rate"`
	AvgTeamRuns *float64 `json:"avg_team_runs"`
}

type OpponentSummary struct {
	Opponent string  `json:"opponent"`
	Matches  int     `json:"matches"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	Tied     int     `json:"tied"`
	NoResult int     `json:"no_result"`
	WinRate  float64 `json:"win_rate"`
}

type PlayerRating struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	MatchID    string  `json:"match_id"`
	Rating     float64 `json:"rating"`
}

type Scorecard struct {
	Match    Match          `json:"match"`
	Batting  []BattingRow   `json:"batting"`
	Bowling  []BowlingRow   `json:"bowling"`
	Fielding []FieldingRow  `json:"fielding"`
	Ratings  []PlayerRating `json:"ratings"`
}

// PlayerSummary merges the registry row with career totals for list views.
type PlayerSummary struct {
	PlayerID   string   `json:"player_id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Matches    int      `json:"matches"`
	Runs       int      `json:"runs"`
	Average    *float64 `json:"average"`
	StrikeRate *float64 `json:"strike_rate"`
	Wickets    int      `json:"wickets"`
	Economy    *float64 `json:"economy"`
	Catches    int      `json:"catches"`
}
