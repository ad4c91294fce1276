package logic

import (
	"strings"

	"github.com/champions11cc/stats-api/internal/models"
)

// Canonical format tags.
const (
	FormatT10  = "T10"
	FormatT20  = "T20"
	FormatOD   = "OD"
	FormatTest = "TEST"
)

// ResolveFormat classifies a match into a canonical format tag. Source data
// labels match types inconsistently, so textual hints take priority over
// numeric inference from declared overs: TEST before T10 before T20 before
// OD/LIMITED, then overs (<=20 short format, >=40 one-day), then the raw
// uppercased type as-is. An absent match resolves to "".
func ResolveFormat(m *models.Match) string {
	if m == nil {
		return ""
	}
	raw := strings.ToUpper(strings.TrimSpace(m.MatchType))
	switch {
	case strings.Contains(raw, FormatTest):
		return FormatTest
	case strings.Contains(raw, FormatT10):
		return FormatT10
	case strings.Contains(raw, FormatT20):
		return FormatT20
	case strings.Contains(raw, FormatOD), strings.Contains(raw, "LIMITED"):
		return FormatOD
	}
	if m.Overs != nil {
		if *m.Overs <= 20 {
			return FormatT20
		}
		if *m.Overs >= 40 {
			return FormatOD
		}
	}
	return raw
}
