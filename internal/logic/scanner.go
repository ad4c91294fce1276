package logic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/champions11cc/stats-api/internal/models"
)

// Scanner evaluates a fixed badge catalog against a dataset. It holds no
// mutable state: every Scan allocates its own working structures, so a
// single Scanner is safe to use concurrently for different datasets.
type Scanner struct {
	catalog []models.BadgeDefinition
	logger  *zap.SugaredLogger
	workers int
}

func NewScanner(catalog []models.BadgeDefinition, logger *zap.SugaredLogger, workers int) *Scanner {
	if workers <= 0 {
		workers = 4
	}
	owned := make([]models.BadgeDefinition, len(catalog))
	copy(owned, catalog)
	return &Scanner{catalog: owned, logger: logger, workers: workers}
}

// Catalog returns a copy of the badge definitions in catalog order.
func (s *Scanner) Catalog() []models.BadgeDefinition {
	out := make([]models.BadgeDefinition, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// scanEnv is the shared read-only state one scan pass derives from the
// dataset before evaluating any badge.
type scanEnv struct {
	ds      *models.Dataset
	stats   *StatsTable
	players map[string]*models.Player
	matches map[string]*models.Match
	formats map[string]string
}

func buildScanEnv(ds *models.Dataset) *scanEnv {
	env := &scanEnv{
		ds:      ds,
		stats:   Aggregate(ds),
		players: ds.PlayerIndex(),
		matches: ds.MatchIndex(),
	}
	env.formats = make(map[string]string, len(env.matches))
	for id, m := range env.matches {
		env.formats[id] = ResolveFormat(m)
	}
	return env
}

// Scan evaluates every badge against the dataset. Results come back in
// catalog order with recipients in discovery order; badges are evaluated in
// parallel since they are mutually independent, which cannot perturb the
// output order. The result always has one well-formed entry per badge, even
// when a badge is malformed or the context is cancelled mid-scan.
func (s *Scanner) Scan(ctx context.Context, ds *models.Dataset) []models.ScanResult {
	results := make([]models.ScanResult, len(s.catalog))
	for i, badge := range s.catalog {
		results[i] = models.ScanResult{Badge: badge, Recipients: []models.AwardRecipient{}}
	}
	if ds == nil {
		return results
	}

	env := buildScanEnv(ds)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range s.catalog {
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i].Recipients = s.scanBadge(s.catalog[i], env)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warnw("badge scan interrupted", "error", err)
	}
	return results
}

// ScanOne evaluates a single badge definition against the dataset, without
// touching the catalog. Used for previewing candidate definitions.
func (s *Scanner) ScanOne(_ context.Context, ds *models.Dataset, badge models.BadgeDefinition) models.ScanResult {
	result := models.ScanResult{Badge: badge, Recipients: []models.AwardRecipient{}}
	if ds == nil {
		return result
	}
	result.Recipients = s.scanBadge(badge, buildScanEnv(ds))
	return result
}

// scanBadge iterates the granularity the badge's scope selects. Bad rows
// and unresolvable players are skipped, never fatal; an unknown scope or an
// empty rule list yields an empty recipient list.
func (s *Scanner) scanBadge(badge models.BadgeDefinition, env *scanEnv) []models.AwardRecipient {
	recipients := []models.AwardRecipient{}
	if len(badge.Rules) == 0 {
		s.logger.Debugw("badge has no rules, never awards", "badge", badge.ID)
		return recipients
	}

	switch badge.Scope {
	case models.ScopeInnings:
		for i := range env.ds.Batting {
			row := &env.ds.Batting[i]
			mid := strings.TrimSpace(row.MatchID)
			pid := strings.TrimSpace(row.PlayerID)
			if mid == "" || pid == "" {
				continue
			}
			player := env.players[pid]
			if player == nil {
				continue
			}
			ectx := &EvalContext{
				Entry:       row,
				MatchStats:  env.stats.Get(mid, pid),
				Match:       env.matches[mid],
				MatchFormat: env.formats[mid],
				PlayerID:    pid,
				PlayerName:  player.Name,
			}
			if EvaluateBadge(badge, ectx) {
				recipients = append(recipients, newRecipient(badge, ectx, mid, inningsDetail(row)))
			}
		}

	case models.ScopeMatch:
		env.stats.ForEach(func(mid, pid string, st *models.MatchPlayerStats) {
			player := env.players[pid]
			if player == nil {
				return
			}
			ectx := &EvalContext{
				MatchStats:  st,
				Match:       env.matches[mid],
				MatchFormat: env.formats[mid],
				PlayerID:    pid,
				PlayerName:  player.Name,
			}
			if EvaluateBadge(badge, ectx) {
				recipients = append(recipients, newRecipient(badge, ectx, mid, matchDetail(st)))
			}
		})

	case models.ScopeCareer:
		for i := range env.ds.Career {
			row := &env.ds.Career[i]
			pid := strings.TrimSpace(row.PlayerID)
			player := env.players[pid]
			if player == nil {
				continue
			}
			ectx := &EvalContext{Career: row, PlayerID: pid, PlayerName: player.Name}
			if EvaluateBadge(badge, ectx) {
				recipients = append(recipients, newRecipient(badge, ectx, "", careerDetail(row)))
			}
		}

	default:
		s.logger.Warnw("unknown badge scope, badge never awards", "badge", badge.ID, "scope", badge.Scope)
	}

	return recipients
}

func newRecipient(badge models.BadgeDefinition, ectx *EvalContext, matchID, detail string) models.AwardRecipient {
	r := models.AwardRecipient{
		PlayerID:       ectx.PlayerID,
		PlayerName:     ectx.PlayerName,
		Detail:         detail,
		RequiresReview: badge.RequiresReview,
	}
	if matchID != "" {
		id := matchID
		r.MatchID = &id
	}
	if ectx.Match != nil {
		r.Opponent = ectx.Match.Opponent
		r.Date = ectx.Match.Date
	}
	return r
}

// inningsDetail quotes the literal Strike Rate field from the entry; a
// derived rate living only in the aggregate is deliberately not shown here.
func inningsDetail(row *models.BattingRow) string {
	sr := "-"
	if row.StrikeRate != nil {
		sr = trimFloat(*row.StrikeRate)
	}
	return fmt.Sprintf("Runs %d (SR %s)", row.Runs, sr)
}

func matchDetail(st *models.MatchPlayerStats) string {
	parts := []string{}
	if st.Runs > 0 {
		parts = append(parts, fmt.Sprintf("Runs %d", st.Runs))
	}
	if st.Wickets > 0 {
		parts = append(parts, fmt.Sprintf("Wkts %d", st.Wickets))
	}
	if st.Economy != nil {
		parts = append(parts, fmt.Sprintf("Econ %s", trimFloat(*st.Economy)))
	}
	if st.Catches > 0 {
		parts = append(parts, fmt.Sprintf("Catches %d", st.Catches))
	}
	if len(parts) == 0 {
		return "Match contribution"
	}
	return strings.Join(parts, " • ")
}

func careerDetail(row *models.CareerRow) string {
	parts := []string{}
	if row.Runs > 0 {
		parts = append(parts, fmt.Sprintf("Runs %d", row.Runs))
	}
	if row.Wickets > 0 {
		parts = append(parts, fmt.Sprintf("Wkts %d", row.Wickets))
	}
	if len(parts) == 0 {
		return "Career milestone"
	}
	return strings.Join(parts, " • ")
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
