package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/infrastructure/repository/memory"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/id"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/usecase"
)

const testJobToken = "job-token-1"

func newSeededRouter(t *testing.T) http.Handler {
	t.Helper()

	contestRepo := memory.NewContestRepository(memory.SeedContests(), memory.SeedEntries())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	statsRepo := memory.NewStatsRepository(nil)
	walletRepo := memory.NewWalletRepository()
	settlementRepo := memory.NewSettlementRepository()
	idGen := id.NewRandomGenerator()

	settlementSvc := usecase.NewSettlementService(
		contestRepo, matchRepo, teamRepo, playerRepo, statsRepo, walletRepo, settlementRepo,
		idGen, nil, usecase.SettlementConfig{},
	)
	reconcileSvc := usecase.NewReconcileService(
		contestRepo, walletRepo, settlementRepo, idGen, nil, usecase.ReconcileConfig{},
	)
	prizeSvc := usecase.NewPrizeService()
	ingestionSvc := usecase.NewIngestionService(statsRepo, matchRepo, nil, nil)
	walletSvc := usecase.NewWalletService(walletRepo)
	teamSvc := usecase.NewTeamService(teamRepo, matchRepo, playerRepo, idGen)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(settlementSvc, reconcileSvc, prizeSvc, ingestionSvc, walletSvc, teamSvc, logger)
	return NewRouter(handler, logger, []string{"*"}, testJobToken)
}

func doJSONRequest(t *testing.T, router http.Handler, method, target, body string, withToken bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken {
		req.Header.Set("X-Internal-Job-Token", testJobToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSettleContest_EndToEnd(t *testing.T) {
	router := newSeededRouter(t)

	// Final scorecard for the completed seed match. Ranks come out of these
	// numbers: team-demo-01 captains ind-bat-01, team-demo-02 does not.
	ingestBody := `{
		"matchId": "ind-vs-aus-2026-03-01",
		"rows": [
			{"playerId": "ind-bat-01", "runs": 88, "ballsFaced": 52, "fours": 9, "sixes": 4},
			{"playerId": "ind-ar-01", "runs": 31, "ballsFaced": 20, "fours": 3, "wickets": 2, "overs": 4, "runsConceded": 27},
			{"playerId": "aus-bat-01", "runs": 12, "ballsFaced": 10, "fours": 1, "dismissed": true},
			{"playerId": "ind-bowl-01", "wickets": 3, "overs": 4, "maidens": 1, "runsConceded": 19}
		]
	}`
	rec := doJSONRequest(t, router, http.MethodPost, "/v1/internal/ingestion/player-stats", ingestBody, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("ingest stats status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doJSONRequest(t, router, http.MethodPost, "/v1/internal/jobs/contests/contest-demo-01/settle", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("settle status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var settleResp struct {
		Data struct {
			ContestID      string `json:"contest_id"`
			AlreadySettled bool   `json:"already_settled"`
			EntryCount     int    `json:"entry_count"`
			PaidCount      int    `json:"paid_count"`
			FailedCount    int    `json:"failed_count"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &settleResp); err != nil {
		t.Fatalf("unmarshal settle response: %v", err)
	}
	if settleResp.Data.ContestID != "contest-demo-01" {
		t.Fatalf("unexpected contest id: %q", settleResp.Data.ContestID)
	}
	if settleResp.Data.AlreadySettled {
		t.Fatalf("first run must not report already settled")
	}
	if settleResp.Data.EntryCount != 2 || settleResp.Data.PaidCount != 2 || settleResp.Data.FailedCount != 0 {
		t.Fatalf("unexpected settlement counts: %+v", settleResp.Data)
	}

	// Second run is a no-op.
	rec = doJSONRequest(t, router, http.MethodPost, "/v1/internal/jobs/contests/contest-demo-01/settle", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat settle status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &settleResp); err != nil {
		t.Fatalf("unmarshal repeat settle response: %v", err)
	}
	if !settleResp.Data.AlreadySettled {
		t.Fatalf("second run must report already settled")
	}

	// Both seed entries win 500000: first prize plus the full remainder for
	// rank 2 in a two-winner contest.
	for _, userID := range []string{"user-demo-01", "user-demo-02"} {
		rec = doJSONRequest(t, router, http.MethodGet, "/v1/users/"+userID+"/wallet", "", false)
		if rec.Code != http.StatusOK {
			t.Fatalf("wallet status for %s = %d, body = %s", userID, rec.Code, rec.Body.String())
		}
		var walletResp struct {
			Data struct {
				UserID string `json:"userId"`
				Amount int64  `json:"amount"`
			} `json:"data"`
		}
		if err := sonic.Unmarshal(rec.Body.Bytes(), &walletResp); err != nil {
			t.Fatalf("unmarshal wallet response: %v", err)
		}
		if walletResp.Data.Amount != 500000 {
			t.Fatalf("wallet amount for %s = %d, want 500000", userID, walletResp.Data.Amount)
		}
	}
}

func TestSettleContest_RequiresJobToken(t *testing.T) {
	router := newSeededRouter(t)

	rec := doJSONRequest(t, router, http.MethodPost, "/v1/internal/jobs/contests/contest-demo-01/settle", "", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", rec.Code)
	}
}

func TestSettleContest_UnknownContest(t *testing.T) {
	router := newSeededRouter(t)

	rec := doJSONRequest(t, router, http.MethodPost, "/v1/internal/jobs/contests/contest-ghost/settle", "", true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown contest, got %d", rec.Code)
	}
}

func TestRunReconcileJob_InvalidWindow(t *testing.T) {
	router := newSeededRouter(t)

	rec := doJSONRequest(t, router, http.MethodPost, "/v1/internal/jobs/reconcile?window_days=abc", "", true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid window_days, got %d", rec.Code)
	}
}
