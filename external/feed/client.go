package feed

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/resilience"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL      = "https://api.cricketfeed.io/v2"
	defaultTimeout      = 15 * time.Second
	maxResponseBodySize = 6 << 20
)

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errFeedTransient = crerr.New("stats feed transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client pulls per-player match statistics from the live-score provider.
// It implements usecase.StatsProvider.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodySize,
		},
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type playerStatLine struct {
	PlayerID      string  `json:"player_id"`
	Runs          int     `json:"runs"`
	BallsFaced    int     `json:"balls_faced"`
	Fours         int     `json:"fours"`
	Sixes         int     `json:"sixes"`
	Dismissed     bool    `json:"dismissed"`
	Wickets       int     `json:"wickets"`
	BowledLBW     int     `json:"bowled_lbw"`
	Overs         float64 `json:"overs"`
	Maidens       int     `json:"maidens"`
	RunsConceded  int     `json:"runs_conceded"`
	Catches       int     `json:"catches"`
	Stumpings     int     `json:"stumpings"`
	RunOutsDirect int     `json:"run_outs_direct"`
	RunOutsAssist int     `json:"run_outs_assist"`
	UpdatedAt     string  `json:"updated_at"`
}

type matchStatsEnvelope struct {
	Data []playerStatLine `json:"data"`
}

func (c *Client) FetchMatchStats(ctx context.Context, matchID string) ([]stats.PlayerMatchStat, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("match id is required")
	}

	path := "/matches/" + matchID + "/player-stats"
	var envelope matchStatsEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch match stats match_id=%s: %w", matchID, err)
	}

	out := make([]stats.PlayerMatchStat, 0, len(envelope.Data))
	for _, line := range envelope.Data {
		if strings.TrimSpace(line.PlayerID) == "" {
			c.logger.WarnContext(ctx, "skip stat line without player id", "match_id", matchID)
			continue
		}
		out = append(out, mapStatLine(matchID, line))
	}
	return out, nil
}

func mapStatLine(matchID string, line playerStatLine) stats.PlayerMatchStat {
	row := stats.PlayerMatchStat{
		MatchID:       matchID,
		PlayerID:      strings.TrimSpace(line.PlayerID),
		Runs:          line.Runs,
		BallsFaced:    line.BallsFaced,
		Fours:         line.Fours,
		Sixes:         line.Sixes,
		Dismissed:     line.Dismissed,
		Wickets:       line.Wickets,
		BowledLBW:     line.BowledLBW,
		Overs:         line.Overs,
		Maidens:       line.Maidens,
		RunsConceded:  line.RunsConceded,
		Catches:       line.Catches,
		Stumpings:     line.Stumpings,
		RunOutsDirect: line.RunOutsDirect,
		RunOutsAssist: line.RunOutsAssist,
	}
	if parsed, err := time.Parse(time.RFC3339, line.UpdatedAt); err == nil {
		row.UpdatedAt = parsed.UTC()
	}
	return row
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "stats feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: stats feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(path)
	if c.token != "" {
		_, _ = buf.WriteString("?api_key=")
		_, _ = buf.WriteString(c.token)
	}
	fullURL := buf.String()

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errFeedTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, status, err := c.sendOnce(fullURL)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errFeedTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else if status >= 200 && status < 300 {
			return raw, nil
		} else if isRetryableStatus(status) {
			lastErr = fmt.Errorf("%w: feed status=%d", errFeedTransient, status)
		} else {
			return nil, fmt.Errorf("feed status=%d", status)
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "stats feed request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) sendOnce(fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, err
	}

	// The response buffer is recycled on release, hand back an owned copy.
	raw := append([]byte(nil), resp.Body()...)
	return raw, resp.StatusCode(), nil
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func redactAPIURL(fullURL string) string {
	return apiKeyParamRegex.ReplaceAllString(fullURL, "api_key=REDACTED")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
