package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/pitchside/internal/domain/match"
	"github.com/riskibarqy/pitchside/internal/domain/standing"
	"github.com/riskibarqy/pitchside/internal/platform/logging"
	"github.com/riskibarqy/pitchside/internal/usecase"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.football-data.org/v4"
	totalTableType = "TOTAL"

	// Free-tier allowance; one token refills every 6s.
	defaultRequestsPerMinute = 10

	maxBodyBytes = 4 << 20
)

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	Token             string
	Competition       string
	Season            string
	Timeout           time.Duration
	RequestsPerMinute int
	Logger            *logging.Logger
}

// Client talks to football-data.org v4 and implements usecase.SeasonDataSource.
// Every call is a single attempt: failures surface immediately and the caller
// decides whether to retry.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	competition string
	season      string
	limiter     *rate.Limiter
	validate    *validator.Validate
	logger      *logging.Logger
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
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		token:       strings.TrimSpace(cfg.Token),
		competition: strings.TrimSpace(cfg.Competition),
		season:      strings.TrimSpace(cfg.Season),
		limiter:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		validate:    validator.New(),
		logger:      logger,
	}
}

// FetchStandings returns the competition's TOTAL league table in the order
// the provider ranks it. The core never re-sorts it.
func (c *Client) FetchStandings(ctx context.Context) ([]standing.Standing, error) {
	path := fmt.Sprintf("/competitions/%s/standings", url.PathEscape(c.competition))
	query := url.Values{}
	if c.season != "" {
		query.Set("season", c.season)
	}

	var envelope standingsEnvelope
	if err := c.doJSON(ctx, path, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch standings competition=%s: %w", c.competition, err)
	}

	table := totalTable(envelope)
	if table == nil {
		return nil, fmt.Errorf("%w: no %s standings table in payload", usecase.ErrFetch, totalTableType)
	}

	out := make([]standing.Standing, 0, len(table))
	for _, row := range table {
		if err := c.validate.StructCtx(ctx, row); err != nil {
			return nil, fmt.Errorf("%w: malformed standings row: %v", usecase.ErrFetch, err)
		}
		out = append(out, row.toDomain())
	}

	c.logger.Info("standings fetched", "competition", c.competition, "rows", len(out))
	return out, nil
}

// FetchMatches returns one team's season fixtures in provider order.
func (c *Client) FetchMatches(ctx context.Context, teamID string) ([]match.Match, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}

	path := fmt.Sprintf("/teams/%s/matches", url.PathEscape(teamID))
	query := url.Values{}
	if c.season != "" {
		query.Set("season", c.season)
	}
	if c.competition != "" {
		query.Set("competitions", c.competition)
	}

	var envelope matchesEnvelope
	if err := c.doJSON(ctx, path, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch matches team_id=%s: %w", teamID, err)
	}

	out := make([]match.Match, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		if err := c.validate.StructCtx(ctx, item); err != nil {
			return nil, fmt.Errorf("%w: malformed match row: %v", usecase.ErrFetch, err)
		}
		out = append(out, item.toDomain())
	}

	c.logger.Info("matches fetched", "team_id", teamID, "matches", len(out))
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrFetch, err)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", usecase.ErrFetch, err)
	}
	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("provider request failed", "path", path, "error", err)
		return fmt.Errorf("%w: send request: %v", usecase.ErrFetch, sanitize(err.Error(), c.token))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", usecase.ErrFetch, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("provider rejected request", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrFetch, resp.StatusCode, abbreviate(raw))
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode provider payload: %v", usecase.ErrFetch, err)
	}

	return nil
}

func totalTable(envelope standingsEnvelope) []tableRow {
	for _, group := range envelope.Standings {
		if strings.EqualFold(group.Type, totalTableType) {
			return group.Table
		}
	}
	// Some cup phases omit the type tag; fall back to the first table.
	if len(envelope.Standings) > 0 {
		return envelope.Standings[0].Table
	}
	return nil
}

func sanitize(value, token string) string {
	value = strings.TrimSpace(value)
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return value
}

func abbreviate(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
