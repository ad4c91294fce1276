package models

type BadgeCategory string

const (
	CategoryBatting  BadgeCategory = "batting"
	CategoryBowling  BadgeCategory = "bowling"
	CategoryFielding BadgeCategory = "fielding"
	CategoryAllRound BadgeCategory = "all_round"
	CategoryCareer   BadgeCategory = "career"
)

// BadgeScope selects which granularity of data the scanner iterates.
type BadgeScope string

const (
	ScopeInnings BadgeScope = "innings"
	ScopeMatch   BadgeScope = "match"
	ScopeCareer  BadgeScope = "career"
)

// AwardFrequency is advisory metadata. The scan's natural iteration already
// awards at most once per scanned row; the policy is not enforced beyond
// that.
type AwardFrequency string

const (
	OncePerInnings  AwardFrequency = "once_per_innings"
	OncePerMatch    AwardFrequency = "once_per_match"
	OncePerCareer   AwardFrequency = "once_per_career"
	MultipleAllowed AwardFrequency = "multiple_allowed"
)

type RuleKind string

const (
	RuleCondition RuleKind = "condition"
	RuleAllOf     RuleKind = "all_of"
	RuleAnyOf     RuleKind = "any_of"
	RuleMilestone RuleKind = "milestone_condition"
)

// Rule is the closed tagged variant the evaluator walks. Which fields are
// meaningful depends on Kind: condition uses Metric/Op/Value/FormatOverrides,
// milestone_condition uses Metric/Milestone, all_of and any_of use Rules.
type Rule struct {
	Kind            RuleKind           `json:"type"`
	Metric          string             `json:"metric,omitempty"`
	Op              string             `json:"operator,omitempty"`
	Value           float64            `json:"value,omitempty"`
	FormatOverrides map[string]float64 `json:"format_overrides,omitempty"`
	Milestone       float64            `json:"milestone,omitempty"`
	Rules           []Rule             `json:"rules,omitempty"`
}

// BadgeDefinition describes one achievement. Top-level Rules are implicitly
// ANDed; a badge with no rules never awards.
type BadgeDefinition struct {
	ID             string         `json:"badge_id" validate:"required"`
	Name           string         `json:"name" validate:"required"`
	ShortTitle     string         `json:"short_title"`
	Description    string         `json:"description"`
	Category       BadgeCategory  `json:"category" validate:"required,oneof=batting bowling fielding all_round career"`
	Scope          BadgeScope     `json:"scope" validate:"required,oneof=innings match career"`
	Frequency      AwardFrequency `json:"award_frequency" validate:"omitempty,oneof=once_per_innings once_per_match once_per_career multiple_allowed"`
	RequiresReview bool           `json:"requires_review"`
	Rules          []Rule         `json:"rules" validate:"required,min=1,dive"`
}

// AwardRecipient is one awarded instance of a badge. MatchID is nil for
// career-scope awards.
type AwardRecipient struct {
	PlayerID       string  `json:"player_id"`
	PlayerName     string  `json:"player_name"`
	MatchID        *string `json:"match_id"`
	Opponent       string  `json:"opponent,omitempty"`
	Date           string  `json:"date,omitempty"`
	Detail         string  `json:"detail"`
	RequiresReview bool    `json:"requires_review"`
}

// ScanResult pairs a badge with everyone who earned it, in discovery order.
type ScanResult struct {
	Badge      BadgeDefinition  `json:"badge"`
	Recipients []AwardRecipient `json:"recipients"`
}
