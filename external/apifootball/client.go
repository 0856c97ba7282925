package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
	"github.com/betmetrics/betmetrics-api/internal/platform/resilience"
	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

const defaultBaseURL = "https://apiv2.apifootball.com"

var apiKeyParamRegex = regexp.MustCompile(`APIkey=[^&\s"']+`)
var errAPIFootballTransient = crerr.New("apifootball transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the API-Football v2 query-by-date endpoint. The API
// key travels as a query parameter, so every logged URL and error body
// is redacted before it leaves this package.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
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

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// EventsByDate fetches every match scheduled on the given UTC day.
// A provider-reported error payload (the v2 API answers a JSON object
// instead of an array, e.g. when no events exist) is surfaced as an
// error so the caller's fail-soft policy can kick in.
func (c *Client) EventsByDate(ctx context.Context, day string) ([]usecase.ExternalFixture, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API-Football key is missing", usecase.ErrNotConfigured)
	}
	day = strings.TrimSpace(day)
	if day == "" {
		return nil, fmt.Errorf("day is required")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "apifootball circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: fixture provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	values.Set("action", "get_events")
	values.Set("from", day)
	values.Set("to", day)
	values.Set("APIkey", c.apiKey)
	fullURL := c.baseURL + "/?" + values.Encode()

	out, err, _ := c.flight.Do("events:"+day, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errAPIFootballTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	return parseEvents(raw)
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errAPIFootballTransient, c.redact(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errAPIFootballTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errAPIFootballTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
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
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "apifootball request failed", "url", c.redact(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) redact(value string) string {
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "APIkey=REDACTED")
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const maxLen = 200
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}

// eventRow mirrors the v2 wire format: every field, ids included, is a
// string.
type eventRow struct {
	MatchID         string `json:"match_id"`
	MatchDate       string `json:"match_date"`
	MatchTime       string `json:"match_time"`
	MatchStatus     string `json:"match_status"`
	MatchRound      string `json:"match_round"`
	LeagueID        string `json:"league_id"`
	LeagueName      string `json:"league_name"`
	CountryName     string `json:"country_name"`
	LeagueLogo      string `json:"league_logo"`
	MatchHometeamID string `json:"match_hometeam_id"`
	MatchHometeam   string `json:"match_hometeam_name"`
	TeamHomeBadge   string `json:"team_home_badge"`
	MatchAwayteamID string `json:"match_awayteam_id"`
	MatchAwayteam   string `json:"match_awayteam_name"`
	TeamAwayBadge   string `json:"team_away_badge"`
}

type providerErrorBody struct {
	Error   any    `json:"error"`
	Message string `json:"message"`
}

func parseEvents(raw []byte) ([]usecase.ExternalFixture, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, fmt.Errorf("empty provider payload")
	}

	if !strings.HasPrefix(trimmed, "[") {
		var body providerErrorBody
		if err := sonic.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("decode provider payload: %w", err)
		}
		return nil, fmt.Errorf("provider error: %s", providerErrorText(body))
	}

	var rows []eventRow
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}

	out := make([]usecase.ExternalFixture, 0, len(rows))
	for _, row := range rows {
		id := parseInt64(row.MatchID)
		if id <= 0 {
			continue
		}

		kickoff, timestamp := parseKickoff(row.MatchDate, row.MatchTime)
		out = append(out, usecase.ExternalFixture{
			ID:           id,
			Date:         kickoff,
			Timestamp:    timestamp,
			Status:       strings.TrimSpace(row.MatchStatus),
			LeagueID:     parseInt64(row.LeagueID),
			LeagueName:   strings.TrimSpace(row.LeagueName),
			Country:      strings.TrimSpace(row.CountryName),
			LeagueLogo:   strings.TrimSpace(row.LeagueLogo),
			Round:        strings.TrimSpace(row.MatchRound),
			HomeTeamID:   parseInt64(row.MatchHometeamID),
			HomeTeamName: strings.TrimSpace(row.MatchHometeam),
			HomeTeamLogo: strings.TrimSpace(row.TeamHomeBadge),
			AwayTeamID:   parseInt64(row.MatchAwayteamID),
			AwayTeamName: strings.TrimSpace(row.MatchAwayteam),
			AwayTeamLogo: strings.TrimSpace(row.TeamAwayBadge),
		})
	}

	return out, nil
}

func providerErrorText(body providerErrorBody) string {
	if msg := strings.TrimSpace(body.Message); msg != "" {
		return msg
	}
	if body.Error != nil {
		return fmt.Sprintf("%v", body.Error)
	}
	return "unexpected payload shape"
}

// parseKickoff joins the provider's split date/time into an ISO instant
// plus epoch seconds. Kickoff times are taken as UTC.
func parseKickoff(date, clock string) (string, int64) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = "00:00"
	}

	iso := date + "T" + clock + ":00"
	parsed, err := time.Parse("2006-01-02T15:04:05", iso)
	if err != nil {
		return iso, 0
	}
	return iso, parsed.UTC().Unix()
}

func parseInt64(value string) int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
