package logic

import (
	"strings"

	"github.com/champions11cc/stats-api/internal/models"
)

// EvalContext is assembled per (badge, candidate row) pair and discarded
// after evaluation. Which fields are set depends on the badge scope: Entry
// for innings scans, MatchStats for match scans, Career for career scans.
// Match and MatchFormat are present whenever the candidate ties to a match.
type EvalContext struct {
	Entry       *models.BattingRow
	MatchStats  *models.MatchPlayerStats
	Career      *models.CareerRow
	Match       *models.Match
	MatchFormat string
	PlayerID    string
	PlayerName  string
}

// Evaluate walks a rule tree against a context. It is pure and total over
// the defined node kinds: malformed or unknown nodes evaluate false rather
// than failing the scan.
func Evaluate(rule models.Rule, ctx *EvalContext) bool {
	switch rule.Kind {
	case models.RuleCondition:
		return evalCondition(rule, ctx)
	case models.RuleAllOf:
		for _, sub := range rule.Rules {
			if !Evaluate(sub, ctx) {
				return false
			}
		}
		return true
	case models.RuleAnyOf:
		for _, sub := range rule.Rules {
			if Evaluate(sub, ctx) {
				return true
			}
		}
		return false
	case models.RuleMilestone:
		v := ResolveMetric(rule.Metric, ctx)
		return v != nil && *v >= rule.Milestone
	default:
		return false
	}
}

func evalCondition(rule models.Rule, ctx *EvalContext) bool {
	v := ResolveMetric(rule.Metric, ctx)
	if v == nil {
		return false
	}
	threshold := resolveThreshold(rule, ctx.MatchFormat)
	switch rule.Op {
	case ">=":
		return *v >= threshold
	case ">":
		return *v > threshold
	case "<=":
		return *v <= threshold
	case "<":
		return *v < threshold
	case "==":
		return *v == threshold
	default:
		return false
	}
}

// resolveThreshold prefers a format-specific override, matched
// case-insensitively against the resolved format tag, over the base value.
func resolveThreshold(rule models.Rule, format string) float64 {
	if format != "" {
		for key, override := range rule.FormatOverrides {
			if strings.EqualFold(key, format) {
				return override
			}
		}
	}
	return rule.Value
}

// EvaluateBadge awards iff every top-level rule holds. An empty rule list
// never awards; that guards against placeholder definitions.
func EvaluateBadge(badge models.BadgeDefinition, ctx *EvalContext) bool {
	if len(badge.Rules) == 0 {
		return false
	}
	for _, rule := range badge.Rules {
		if !Evaluate(rule, ctx) {
			return false
		}
	}
	return true
}
