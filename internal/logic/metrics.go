package logic

// Metric names understood by ResolveMetric.
const (
	MetricRuns             = "runs"
	MetricBallsFaced       = "balls_faced"
	MetricStrikeRate       = "strike_rate"
	MetricSixes            = "sixes"
	MetricWickets          = "wickets"
	MetricOversBowled      = "overs_bowled"
	MetricEconomy          = "economy"
	MetricCatches          = "catches"
	MetricDirectHitRunOuts = "direct_hit_runouts"
	MetricPlayerOfMatch    = "player_of_match"
	MetricCareerRuns       = "career_runs"
	MetricCareerWickets    = "career_wickets"
)

// ResolveMetric resolves a metric name against the context, first non-null
// source wins. A nil result means "no data" and makes any condition
// referencing the metric false; unknown names resolve to nil for the same
// reason. Batting metrics prefer the raw innings entry, bowling and fielding
// metrics prefer the aggregated record — the aggregate is authoritative for
// a bowler's match figures.
func ResolveMetric(name string, ctx *EvalContext) *float64 {
	switch name {
	case MetricRuns:
		if ctx.Entry != nil {
			return floatPtr(float64(ctx.Entry.Runs))
		}
		if ctx.MatchStats != nil {
			return floatPtr(float64(ctx.MatchStats.Runs))
		}
		if ctx.Career != nil {
			return floatPtr(float64(ctx.Career.Runs))
		}
		return floatPtr(0)
	case MetricBallsFaced:
		if ctx.Entry != nil {
			return floatPtr(float64(ctx.Entry.Balls))
		}
		if ctx.MatchStats != nil {
			return floatPtr(float64(ctx.MatchStats.BallsFaced))
		}
		return floatPtr(0)
	case MetricStrikeRate:
		if ctx.Entry != nil && ctx.Entry.StrikeRate != nil {
			return floatPtr(*ctx.Entry.StrikeRate)
		}
		if ctx.MatchStats != nil && ctx.MatchStats.StrikeRate != nil {
			return floatPtr(*ctx.MatchStats.StrikeRate)
		}
		return nil
	case MetricSixes:
		if ctx.Entry != nil {
			return floatPtr(float64(ctx.Entry.Sixes))
		}
		if ctx.MatchStats != nil {
			return floatPtr(float64(ctx.MatchStats.Sixes))
		}
		return floatPtr(0)
	case MetricWickets:
		if ctx.MatchStats != nil {
			return floatPtr(float64(ctx.MatchStats.Wickets))
		}
		if ctx.Career != nil {
			return floatPtr(float64(ctx.Career.Wickets))
		}
		return floatPtr(0)
	case MetricOversBowled:
		if ctx.MatchStats != nil && ctx.MatchStats.OversBowled != nil {
			return floatPtr(*ctx.MatchStats.OversBowled)
		}
		return nil
	case MetricEconomy:
		if ctx.MatchStats != nil && ctx.MatchStats.Economy != nil {
			return floatPtr(*ctx.MatchStats.Economy)
		}
		return nil
	case MetricCatches:
		if ctx.MatchStats != nil {
			return floatPtr(float64(ctx.MatchStats.Catches))
		}
		return floatPtr(0)
	case MetricDirectHitRunOuts:
		if ctx.MatchStats != nil {
			return floatPtr(float64(ctx.MatchStats.DirectHitRunOuts))
		}
		return floatPtr(0)
	case MetricPlayerOfMatch:
		if ctx.Match != nil && ctx.Match.PlayerOfMatch != "" &&
			(ctx.Match.PlayerOfMatch == ctx.PlayerID || ctx.Match.PlayerOfMatch == ctx.PlayerName) {
			return floatPtr(1)
		}
		if ctx.MatchStats != nil && ctx.MatchStats.PlayerOfMatch != nil {
			return floatPtr(*ctx.MatchStats.PlayerOfMatch)
		}
		return floatPtr(0)
	case MetricCareerRuns:
		if ctx.Career != nil {
			return floatPtr(float64(ctx.Career.Runs))
		}
		return floatPtr(0)
	case MetricCareerWickets:
		if ctx.Career != nil {
			return floatPtr(float64(ctx.Career.Wickets))
		}
		return floatPtr(0)
	default:
		return nil
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
