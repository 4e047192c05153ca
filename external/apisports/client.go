package apisports

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fixture-board/internal/domain/fixture"
	"github.com/riskibarqy/fixture-board/internal/platform/logging"
	"github.com/riskibarqy/fixture-board/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	defaultTimeout = 10 * time.Second
	apiKeyHeader   = "x-apisports-key"
	fixturesPath   = "/fixtures"
	maxBodyBytes   = 6 << 20
	maxErrorBody   = 4096
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client talks to the API-Football v3 REST API. Every call is a single
// request: no retries, no caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logging.Logger
	validate   *validator.Validate
}

var _ fixture.Provider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger,
		validate:   newRecordValidator(),
	}
}

// ListByWindow fetches every fixture of one league and season between the
// query's from and to dates.
func (c *Client) ListByWindow(ctx context.Context, query fixture.Query) (fixture.Batch, error) {
	if err := query.Validate(); err != nil {
		return fixture.Batch{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	params := url.Values{}
	params.Set("league", strconv.Itoa(query.LeagueID))
	params.Set("season", strconv.Itoa(query.Season))
	params.Set("from", query.FromDate())
	params.Set("to", query.ToDate())

	raw, err := c.get(ctx, fixturesPath, params)
	if err != nil {
		return fixture.Batch{}, err
	}

	var envelope fixturesEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return fixture.Batch{}, crerr.Wrapf(usecase.ErrProviderPayload, "decode fixtures envelope: %v", err)
	}
	if hasProviderErrors(envelope.Errors) {
		reported, _ := sonic.MarshalString(envelope.Errors)
		c.logger.WarnContext(ctx, "apisports reported errors",
			"league", query.LeagueID,
			"season", query.Season,
			"errors", sanitizeSensitiveText(reported, c.apiKey),
		)
	}

	records := make([]fixture.Record, 0, len(envelope.Response))
	for i, item := range envelope.Response {
		f, projErr := c.projectFixture(item)
		records = append(records, fixture.Record{
			Position: i,
			Fixture:  f,
			Err:      projErr,
		})
	}

	return fixture.Batch{Records: records}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	fullURL := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErr := &usecase.ProviderTransportError{
			Timeout: isTimeout(err),
			Reason:  sanitizeSensitiveText(err.Error(), c.apiKey),
		}
		c.logger.WarnContext(ctx, "apisports request failed",
			"url", fullURL,
			"timeout", transportErr.Timeout,
			"duration_ms", time.Since(started).Milliseconds(),
			"error", transportErr,
		)
		return nil, crerr.WithStack(transportErr)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		prefix, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &usecase.ProviderStatusError{
			StatusCode: resp.StatusCode,
			Body:       abbreviateBody(sanitizeSensitiveText(string(prefix), c.apiKey)),
		}
		c.logger.WarnContext(ctx, "apisports returned non-success status",
			"url", fullURL,
			"status", resp.StatusCode,
			"duration_ms", time.Since(started).Milliseconds(),
		)
		return nil, crerr.WithStack(statusErr)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.WithStack(&usecase.ProviderTransportError{
			Timeout: isTimeout(err),
			Reason:  "read response body: " + sanitizeSensitiveText(err.Error(), c.apiKey),
		})
	}

	c.logger.DebugContext(ctx, "apisports request completed",
		"url", fullURL,
		"bytes", len(raw),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return raw, nil
}

// projectFixture decodes and validates one response entry. Failures are
// returned per record so the rest of the batch still renders.
func (c *Client) projectFixture(raw []byte) (fixture.Fixture, error) {
	var item fixtureItem
	if err := sonic.Unmarshal(raw, &item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: decode: %v", usecase.ErrInvalidRecord, err)
	}
	if err := c.validate.Struct(item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %s", usecase.ErrInvalidRecord, describeValidation(err))
	}

	return fixture.Fixture{
		HomeTeam: strings.TrimSpace(item.Teams.Home.Name),
		AwayTeam: strings.TrimSpace(item.Teams.Away.Name),
		Kickoff:  strings.TrimSpace(item.Fixture.Date),
	}, nil
}

func newRecordValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fe.Namespace()
		if idx := strings.Index(path, "."); idx >= 0 {
			path = path[idx+1:]
		}
		switch fe.Tag() {
		case "required":
			parts = append(parts, path+" is required")
		case "datetime":
			parts = append(parts, path+" must be an RFC 3339 timestamp")
		default:
			parts = append(parts, path+" failed "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}

func hasProviderErrors(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case []any:
		return len(typed) > 0
	case map[string]any:
		return len(typed) > 0
	case string:
		return strings.TrimSpace(typed) != ""
	default:
		return true
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" || key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}

func abbreviateBody(body string) string {
	text := strings.TrimSpace(body)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
