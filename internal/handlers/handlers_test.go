package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/champions11cc/stats-api/internal/dataset"
	"github.com/champions11cc/stats-api/internal/logic"
	"github.com/champions11cc/stats-api/internal/models"
)

const testDatasetJSON = `{
	"players": [
		{"PlayerID":"P1","Player Name":"Asha Rao","Role":"Batter"},
		{"PlayerID":"P2","Player Name":"Dev Kumar","Role":"Bowler"}
	],
	"matches": [
		{"MatchID":"M1","Opponent":"Rivals CC","Venue":"Eden Park","Date":"2026-05-10","MatchType":"T20","Match Result":"Won by 10 runs"},
		{"MatchID":"M2","Opponent":"United CC","Venue":"City Oval","Date":"2026-05-17","MatchType":"OD","Match Result":"Lost by 3 wickets"}
	],
	"batting": [
		{"MatchID":"M1","PlayerID":"P1","Runs":55,"Balls":30},
		{"MatchID":"M2","PlayerID":"P1","Runs":12,"Balls":20}
	],
	"bowling": [
		{"MatchID":"M1","PlayerID":"P2","Overs":4.0,"Bowl Runs":20,"Wkts":5}
	],
	"fielding": [
		{"MatchID":"M1","PlayerID":"P2","Catches":2}
	],
	"player_career_stats": [
		{"PlayerID":"P1","Player Name":"Asha Rao","Matches":20,"Runs":1000},
		{"PlayerID":"P2","Player Name":"Dev Kumar","Matches":18,"Wkts":49}
	],
	"team_stats": [
		{"Matches":20,"Won":12,"Lost":7,"Tied":1}
	]
}`

func testHandler(t *testing.T, loaded bool) (*Handler, *MockRescanQueue) {
	t.Helper()
	store := dataset.NewStore(zap.NewNop().Sugar())
	if loaded {
		if _, err := store.Replace([]byte(testDatasetJSON)); err != nil {
			t.Fatalf("seed dataset: %v", err)
		}
	}
	rescan := &MockRescanQueue{}
	h := New(Config{
		Dataset: store,
		Badges:  &MockBadgeService{},
		Rescan:  rescan,
		Logger:  zap.NewNop(),
	})
	return h, rescan
}

func serve(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.Routes(nil).ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h, _ := testHandler(t, false)
	w := serve(h, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestReady(t *testing.T) {
	h, _ := testHandler(t, false)
	if w := serve(h, "GET", "/ready", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("ready without dataset = %d, want 503", w.Code)
	}

	h, _ = testHandler(t, true)
	if w := serve(h, "GET", "/ready", ""); w.Code != http.StatusOK {
		t.Errorf("ready with dataset = %d, want 200", w.Code)
	}
}

func TestUploadDataset(t *testing.T) {
	h, rescan := testHandler(t, false)

	w := serve(h, "POST", "/api/v1/data", testDatasetJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	version, _ := resp["version"].(string)
	if version == "" {
		t.Error("upload response missing version")
	}
	if len(rescan.Enqueued) != 1 || rescan.Enqueued[0] != version {
		t.Errorf("rescan enqueued = %v, want [%s]", rescan.Enqueued, version)
	}

	if w := serve(h, "GET", "/api/v1/data", ""); w.Code != http.StatusOK {
		t.Errorf("get data after upload = %d, want 200", w.Code)
	}
}

func TestUploadDataset_Invalid(t *testing.T) {
	h, rescan := testHandler(t, false)

	tests := []struct {
		name string
		body string
	}{
		{name: "Broken JSON", body: `{"players": [`},
		{name: "Empty Dataset", body: `{"players":[],"matches":[]}`},
		{name: "Dangling Ref", body: `{
			"players":[{"PlayerID":"P1","Player Name":"A"}],
			"matches":[{"MatchID":"M1"}],
			"batting":[{"MatchID":"M9","PlayerID":"P1"}],
			"player_career_stats":[{"PlayerID":"P1"}]
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := serve(h, "POST", "/api/v1/data", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
	if len(rescan.Enqueued) != 0 {
		t.Errorf("rejected uploads must not trigger rescans, got %v", rescan.Enqueued)
	}
}

func TestGetDataset_Empty(t *testing.T) {
	h, _ := testHandler(t, false)
	if w := serve(h, "GET", "/api/v1/data", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListPlayers(t *testing.T) {
	h, _ := testHandler(t, true)
	w := serve(h, "GET", "/api/v1/players", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var players []models.PlayerSummary
	if err := json.Unmarshal(w.Body.Bytes(), &players); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("got %d players, want 2", len(players))
	}
	if players[0].PlayerID != "P1" || players[0].Runs != 1000 {
		t.Errorf("players[0] = %+v, want P1 with career runs merged", players[0])
	}
}

func TestGetPlayer(t *testing.T) {
	h, _ := testHandler(t, true)

	w := serve(h, "GET", "/api/v1/players/P2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var p models.PlayerSummary
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Dev Kumar" || p.Wickets != 49 {
		t.Errorf("player = %+v", p)
	}

	if w := serve(h, "GET", "/api/v1/players/NOBODY", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown player status = %d, want 404", w.Code)
	}
}

func TestListMatches_NewestFirst(t *testing.T) {
	h, _ := testHandler(t, true)
	w := serve(h, "GET", "/api/v1/matches", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var matches []models.Match
	if err := json.Unmarshal(w.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(matches) != 2 || matches[0].MatchID != "M2" {
		t.Errorf("matches = %+v, want M2 (newer) first", matches)
	}
}

func TestGetScorecard(t *testing.T) {
	h, _ := testHandler(t, true)

	w := serve(h, "GET", "/api/v1/matches/M1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var card models.Scorecard
	if err := json.Unmarshal(w.Body.Bytes(), &card); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if card.Match.MatchID != "M1" || len(card.Batting) != 1 || len(card.Bowling) != 1 {
		t.Errorf("card = %+v", card)
	}
	if len(card.Ratings) == 0 {
		t.Error("scorecard should include player ratings")
	}

	if w := serve(h, "GET", "/api/v1/matches/M9", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown match status = %d, want 404", w.Code)
	}
}

func TestGetLeaderboard(t *testing.T) {
	h, _ := testHandler(t, true)

	w := serve(h, "GET", "/api/v1/leaderboard/wickets?limit=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Stat    string                    `json:"stat"`
		Entries []models.LeaderboardEntry `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Stat != "wickets" || len(resp.Entries) != 1 || resp.Entries[0].PlayerID != "P2" {
		t.Errorf("resp = %+v, want P2 topping wickets", resp)
	}

	// Unknown stat falls back to runs.
	w = serve(h, "GET", "/api/v1/leaderboard/hatricks", "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Stat != "runs" {
		t.Errorf("fallback stat = %q, want runs", resp.Stat)
	}
}

func TestGetCareerLeaderboard_UnknownField(t *testing.T) {
	h, _ := testHandler(t, true)
	if w := serve(h, "GET", "/api/v1/leaderboard/career/hatricks", ""); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBadgeEndpoints(t *testing.T) {
	store := dataset.NewStore(zap.NewNop().Sugar())
	if _, err := store.Replace([]byte(testDatasetJSON)); err != nil {
		t.Fatal(err)
	}

	scanCalled := false
	badges := &MockBadgeService{
		ScanFunc: func(ctx context.Context) ([]models.ScanResult, error) {
			scanCalled = true
			return []models.ScanResult{}, nil
		},
	}
	h := New(Config{
		Dataset: store,
		Badges:  badges,
		Rescan:  &MockRescanQueue{},
		Logger:  zap.NewNop(),
	})

	if w := serve(h, "GET", "/api/v1/badges", ""); w.Code != http.StatusOK {
		t.Errorf("catalog status = %d", w.Code)
	}
	if w := serve(h, "GET", "/api/v1/badges/scan", ""); w.Code != http.StatusOK || !scanCalled {
		t.Errorf("scan status = %d, called = %v", w.Code, scanCalled)
	}
}

func TestScanBadges_NoDataset(t *testing.T) {
	h, _ := testHandler(t, false)
	h.badges = &MockBadgeService{
		ScanFunc: func(ctx context.Context) ([]models.ScanResult, error) {
			return nil, logic.ErrNoDataset
		},
	}
	if w := serve(h, "GET", "/api/v1/badges/scan", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestPreviewBadge(t *testing.T) {
	h, _ := testHandler(t, true)

	valid := `{
		"badge_id":"ten_plus","name":"Ten Plus","category":"batting","scope":"innings",
		"rules":[{"type":"condition","metric":"runs","operator":">=","value":10}]
	}`
	if w := serve(h, "POST", "/api/v1/badges/preview", valid); w.Code != http.StatusOK {
		t.Errorf("valid preview status = %d, body %s", w.Code, w.Body.String())
	}

	tests := []struct {
		name string
		body string
	}{
		{name: "Broken JSON", body: `{"badge_id":`},
		{name: "Missing Rules", body: `{"badge_id":"x","name":"X","category":"batting","scope":"innings"}`},
		{name: "Bad Scope", body: `{"badge_id":"x","name":"X","category":"batting","scope":"season",
			"rules":[{"type":"condition","metric":"runs","operator":">=","value":1}]}`},
		{name: "Bad Category", body: `{"badge_id":"x","name":"X","category":"wicketkeeping","scope":"innings",
			"rules":[{"type":"condition","metric":"runs","operator":">=","value":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := serve(h, "POST", "/api/v1/badges/preview", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestPreviewBadge_ServiceError(t *testing.T) {
	h, _ := testHandler(t, true)
	h.badges = &MockBadgeService{
		PreviewFunc: func(ctx context.Context, def models.BadgeDefinition) (models.ScanResult, error) {
			return models.ScanResult{}, errors.New("boom")
		},
	}
	body := `{
		"badge_id":"x","name":"X","category":"batting","scope":"innings",
		"rules":[{"type":"condition","metric":"runs","operator":">=","value":1}]
	}`
	if w := serve(h, "POST", "/api/v1/badges/preview", body); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestTeamAndBreakdowns(t *testing.T) {
	h, _ := testHandler(t, true)

	w := serve(h, "GET", "/api/v1/team", "")
	if w.Code != http.StatusOK {
		t.Fatalf("team status = %d", w.Code)
	}
	var team models.TeamStats
	if err := json.Unmarshal(w.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if team.Matches != 20 || team.Won != 12 {
		t.Errorf("team = %+v", team)
	}

	if w := serve(h, "GET", "/api/v1/venues", ""); w.Code != http.StatusOK {
		t.Errorf("venues status = %d", w.Code)
	}
	if w := serve(h, "GET", "/api/v1/opponents", ""); w.Code != http.StatusOK {
		t.Errorf("opponents status = %d", w.Code)
	}
}
