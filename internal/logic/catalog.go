package logic

import "github.com/champions11cc/stats-api/internal/models"

// DefaultCatalog returns the club's badge definitions. The catalog is
// handed to the scanner at construction and never mutated afterwards; every
// call returns a fresh slice.
func DefaultCatalog() []models.BadgeDefinition {
	return []models.BadgeDefinition{
		{
			ID:          "half_century_hero",
			Name:        "Half-Century Hero",
			ShortTitle:  "50+",
			Description: "Scored fifty or more runs in a single innings",
			Category:    models.CategoryBatting,
			Scope:       models.ScopeInnings,
			Frequency:   models.OncePerInnings,
			Rules: []models.Rule{
				{Kind: models.RuleCondition, Metric: MetricRuns, Op: ">=", Value: 50},
			},
		},
		{
			ID:          "century_club",
			Name:        "Century Club",
			ShortTitle:  "100+",
			Description: "Scored a hundred in a single innings",
			Category:    models.CategoryBatting,
			Scope:       models.ScopeInnings,
			Frequency:   models.OncePerInnings,
			Rules: []models.Rule{
				{Kind: models.RuleCondition, Metric: MetricRuns, Op: ">=", Value: 100},
			},
		},
		{
			ID:          "rapid_fire",
			Name:        "Rapid Fire",
			ShortTitle:  "SR 150+",
			Description: "Blistering strike rate over a real innings (bar adjusted per format)",
			Category:    models.CategoryBatting,
			Scope:       models.ScopeInnings,
			Frequency:   models.OncePerInnings,
			Rules: []models.Rule{
				{Kind: models.RuleAllOf, Rules: []models.Rule{
					{Kind: models.RuleCondition, Metric: MetricStrikeRate, Op: ">=", Value: 150,
						FormatOverrides: map[string]float64{FormatOD: 120, FormatTest: 90}},
					{Kind: models.RuleCondition, Metric: MetricBallsFaced, Op: ">=", Value: 10},
				}},
			},
		},
		{
			ID:          "six_machine",
			Name:        "Six Machine",
			ShortTitle:  "6x4",
			Description: "Cleared the rope four times in one innings",
			Category:    models.CategoryBatting,
			Scope:       models.ScopeInnings,
			Frequency:   models.OncePerInnings,
			Rules: []models.Rule{
				{Kind: models.RuleCondition, Metric: MetricSixes, Op: ">=", Value: 4,
					FormatOverrides: map[string]float64{FormatT10: 3}},
			},
		},
		{
			ID:          "five_for_royalty",
			Name:        "Five-For Royalty",
			ShortTitle:  "5W",
			Description: "Took five or more wickets in a match",
			Category:    models.CategoryBowling,
			Scope:       models.ScopeMatch,
			Frequency:   models.OncePerMatch,
			Rules: []models.Rule{
				{Kind: models.RuleCondition, Metric: MetricWickets, Op: ">=", Value: 5},
			},
		},
		{
			ID:          "miser_spell",
			Name:        "The Miser",
			ShortTitle:  "Econ",
			Description: "A genuinely tight spell: low economy across a real workload",
			Category:    models.CategoryBowling,
			Scope:       models.ScopeMatch,
			Frequency:   models.OncePerMatch,
			Rules: []models.Rule{
				{Kind: models.RuleAllOf, Rules: []models.Rule{
					{Kind: models.RuleCondition, Metric: MetricEconomy, Op: "<=", Value: 4,
						FormatOverrides: map[string]float64{FormatOD: 3.5, FormatT10: 5, FormatTest: 2.5}},
					{Kind: models.RuleCondition, Metric: MetricOversBowled, Op: ">=", Value: 3,
						FormatOverrides: map[string]float64{FormatT10: 2}},
				}},
			},
		},
		{
			ID:          "safe_hands",
			Name:        "Safe Hands",
			ShortTitle:  "3C",
			Description: "Held three or more catches in a match",
			Category:    models.CategoryFielding,
			Scope:       models.ScopeMatch,
			Frequency:   models.OncePerMatch,
			Rules: []models.Rule{
				{Kind: models.RuleCondition, Metric: MetricCatches, Op: ">=", Value: 3},
			},
		},
		{
			ID:          "direct_hit_specialist",
			Name:        "Direct Hit Specialist",
			ShortTitle:  "DH",
			Description: "Ran a batter out with a direct hit",
			Category:    models.CategoryFielding,
			Scope:       models.ScopeMatch,
			Frequency:   models.MultipleAllowed,
			// Scorers record direct hits inconsistently, so awards go
			// through manual review before publication.
			RequiresReview: true,
			Rules: []models.Rule{
				{Kind: models.RuleCondition, Metric: MetricDirectHitRunOuts, Op: ">=", Value: 1},
			},
		},
		{
			ID:          "all_round_gold",
			Name:        "All-Round Gold",
			ShortTitle:  "AR",
			Description: "Runs with the bat and wickets with the ball in the same match",
			Category:    models.CategoryAllRound,
			Scope:       models.ScopeMatch,
			Frequency:   models.OncePerMatch,
			Rules: []models.Rule{
				{Kind: models.RuleAllOf, Rules: []models.Rule{
					{Kind: models.RuleCondition, Metric: MetricRuns, Op: ">=", Value: 30},
					{Kind: models.RuleCondition, Metric: MetricWickets, Op: ">=", Value: 2},
				}},
			},
		},
		{
			ID:          "match_maestro",
			Name:        "Match Maestro",
			ShortTitle:  "POM",
			Description: "Named player of the match",
			Category:    models.CategoryAllRound,
			Scope:       models.ScopeMatch,
			Frequency:   models.MultipleAllowed,
			Rules: []models.Rule{
				{Kind: models.RuleCondition, Metric: MetricPlayerOfMatch, Op: "==", Value: 1},
			},
		},
		{
			ID:          "1k_run_club",
			Name:        "1000 Run Club",
			ShortTitle:  "1K",
			Description: "Reached one thousand career runs",
			Category:    models.CategoryCareer,
			Scope:       models.ScopeCareer,
			Frequency:   models.OncePerCareer,
			Rules: []models.Rule{
				{Kind: models.RuleMilestone, Metric: MetricCareerRuns, Milestone: 1000},
			},
		},
		{
			ID:          "fifty_wicket_club",
			Name:        "Fifty Wicket Club",
			ShortTitle:  "50W",
			Description: "Reached fifty career wickets",
			Category:    models.CategoryCareer,
			Scope:       models.ScopeCareer,
			Frequency:   models.OncePerCareer,
			Rules: []models.Rule{
				{Kind: models.RuleMilestone, Metric: MetricCareerWickets, Milestone: 50},
			},
		},
	}
}
