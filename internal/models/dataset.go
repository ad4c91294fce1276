package models

import "strings"

// Match is one fixture from the Matches sheet. Field names mirror the
// data.json keys produced by the workbook export, spaces included.
type Match struct {
	MatchID   string   `json:"MatchID"`
	Opponent  string   `json:"Opponent"`
	Venue     string   `json:"Venue"`
	Date      string   `json:"Date"`
	MatchType string   `json:"MatchType"`
	Overs     *float64 `json:"Overs"`
	Result    string   `json:"Match Result"`

	TeamRuns        *float64 `json:"Team Runs"`
	TeamWicketsLost *float64 `json:"Team Wickets Lost"`
	TeamOversPlayed *float64 `json:"Team Overs Played"`
	OppRuns         *float64 `json:"Opponent Runs"`
	OppWicketsLost  *float64 `json:"Opponent Wickets Lost"`
	OppOversPlayed  *float64 `json:"Opponent Overs Played"`

	PlayerOfMatch string `json:"Player of Match"`
}

type Player struct {
	PlayerID string `json:"PlayerID"`
	Name     string `json:"Player Name"`
	Role     string `json:"Role"`
}

// BattingRow is one player's batting contribution in one match.
type BattingRow struct {
	MatchID       string   `json:"MatchID"`
	PlayerID      string   `json:"PlayerID"`
	Runs          int      `json:"Runs"`
	Balls         int      `json:"Balls"`
	Fours         int      `json:"Fours"`
	Sixes         int      `json:"Sixes"`
	StrikeRate    *float64 `json:"Strike Rate"`
	Out           string   `json:"Out"`
	DismissalType string   `json:"Dismissal Type"`
}

// BowlingRow is one player's bowling spell in one match. Overs stays in
// cricket notation (4.3 = 4 overs 3 balls) until the aggregator converts it.
type BowlingRow struct {
	MatchID      string   `json:"MatchID"`
	PlayerID     string   `json:"PlayerID"`
	Overs        *float64 `json:"Overs"`
	Maidens      int      `json:"Maidens"`
	RunsConceded int      `json:"Bowl Runs"`
	Wickets      int      `json:"Wkts"`
	Economy      *float64 `json:"Economy"`
	DotBalls     int      `json:"Dot Balls"`
	Wides        int      `json:"Wides"`
	NoBalls      int      `json:"No-Balls"`
}

type FieldingRow struct {
	MatchID          string `json:"MatchID"`
	PlayerID         string `json:"PlayerID"`
	Catches          int    `json:"Catches"`
	RunOuts          int    `json:"Run Outs"`
	DirectHitRunOuts int    `json:"Direct Hit Run Outs"`
	Stumpings        int    `json:"Stumpings"`
}

// CareerRow carries pre-aggregated per-player totals. It is sourced
// independently of the innings sheets and is not guaranteed to equal their
// sum, so nothing downstream may assume consistency between the two.
type CareerRow struct {
	PlayerID   string   `json:"PlayerID"`
	Name       string   `json:"Player Name"`
	Matches    int      `json:"Matches"`
	Runs       int      `json:"Runs"`
	Average    *float64 `json:"Avg"`
	StrikeRate *float64 `json:"SR"`
	Wickets    int      `json:"Wkts"`
	Economy    *float64 `json:"Econ"`
	Catches    int      `json:"Catches"`
}

type TeamStats struct {
	Matches    int      `json:"Matches"`
	Won        int      `json:"Won"`
	Lost       int      `json:"Lost"`
	Tied       int      `json:"Tied"`
	NoResult   int      `json:"No Result"`
	NetRunRate *float64 `json:"Net RR"`
}

// Dataset is the full in-memory dataset the API serves from. Once published
// by the dataset store it is treated as immutable.
type Dataset struct {
	Players   []Player      `json:"players"`
	Matches   []Match       `json:"matches"`
	Batting   []BattingRow  `json:"batting"`
	Bowling   []BowlingRow  `json:"bowling"`
	Fielding  []FieldingRow `json:"fielding"`
	Career    []CareerRow   `json:"player_career_stats"`
	TeamStats []TeamStats   `json:"team_stats"`
}

// PlayerIndex returns the player registry keyed by PlayerID.
func (d *Dataset) PlayerIndex() map[string]*Player {
	idx := make(map[string]*Player, len(d.Players))
	for i := range d.Players {
		id := strings.TrimSpace(d.Players[i].PlayerID)
		if id == "" {
			continue
		}
		idx[id] = &d.Players[i]
	}
	return idx
}

// MatchIndex returns matches keyed by string-normalized MatchID.
func (d *Dataset) MatchIndex() map[string]*Match {
	idx := make(map[string]*Match, len(d.Matches))
	for i := range d.Matches {
		id := strings.TrimSpace(d.Matches[i].MatchID)
		if id == "" {
			continue
		}
		idx[id] = &d.Matches[i]
	}
	return idx
}

// Team returns the single team summary row, or nil when absent.
func (d *Dataset) Team() *TeamStats {
	if len(d.TeamStats) == 0 {
		return nil
	}
	return &d.TeamStats[0]
}
