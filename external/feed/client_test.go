package feed

import (
	"testing"
	"time"
)

func TestMapStatLine(t *testing.T) {
	line := playerStatLine{
		PlayerID:     " ind-bat-01 ",
		Runs:         72,
		BallsFaced:   44,
		Fours:        8,
		Sixes:        3,
		Dismissed:    true,
		Wickets:      1,
		Overs:        2.3,
		RunsConceded: 19,
		Catches:      2,
		UpdatedAt:    "2026-03-01T17:45:00Z",
	}

	row := mapStatLine("ind-vs-aus-2026-03-01", line)
	if row.MatchID != "ind-vs-aus-2026-03-01" {
		t.Fatalf("unexpected match id: %s", row.MatchID)
	}
	if row.PlayerID != "ind-bat-01" {
		t.Fatalf("expected trimmed player id, got %q", row.PlayerID)
	}
	if row.Runs != 72 || row.BallsFaced != 44 || row.Fours != 8 || row.Sixes != 3 {
		t.Fatalf("unexpected batting line: %+v", row)
	}
	if row.Wickets != 1 || row.Overs != 2.3 || row.RunsConceded != 19 {
		t.Fatalf("unexpected bowling line: %+v", row)
	}
	want := time.Date(2026, 3, 1, 17, 45, 0, 0, time.UTC)
	if !row.UpdatedAt.Equal(want) {
		t.Fatalf("expected updated at %v, got %v", want, row.UpdatedAt)
	}
}

func TestMapStatLineIgnoresBadTimestamp(t *testing.T) {
	row := mapStatLine("m1", playerStatLine{PlayerID: "p1", UpdatedAt: "yesterday"})
	if !row.UpdatedAt.IsZero() {
		t.Fatalf("expected zero updated at, got %v", row.UpdatedAt)
	}
}

func TestIsRetryableStatus(t *testing.T) {
	for _, status := range []int{429, 500, 502, 503} {
		if !isRetryableStatus(status) {
			t.Fatalf("expected status %d to be retryable", status)
		}
	}
	for _, status := range []int{200, 400, 401, 404} {
		if isRetryableStatus(status) {
			t.Fatalf("expected status %d to not be retryable", status)
		}
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	got := sanitizeSensitiveText("get https://api.cricketfeed.io/v2/matches?api_key=secret-token failed", "secret-token")
	if got != "get https://api.cricketfeed.io/v2/matches?api_key=REDACTED failed" {
		t.Fatalf("token leaked: %s", got)
	}
}

func TestRedactAPIURL(t *testing.T) {
	got := redactAPIURL("https://api.cricketfeed.io/v2/matches/m1/player-stats?api_key=abc123")
	if got != "https://api.cricketfeed.io/v2/matches/m1/player-stats?api_key=REDACTED" {
		t.Fatalf("unexpected redacted url: %s", got)
	}
}
