package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/metrics"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const providerName = "espn"

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Metrics        *metrics.Recorder
}

// Client talks to the ESPN fantasy basketball read API. It holds no per-league or
// per-caller state; credentials live on the sessions returned by OpenLeague.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	metrics        *metrics.Recorder
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker(breakerCfg)
	recorder := cfg.Metrics
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		recorder.SetCircuitOpen(providerName, to != resilience.CircuitStateClosed)
		logger.Warn("espn circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		metrics:        recorder,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
}

// OpenLeague fetches teams, rosters and settings of one league season and returns a
// session bound to q's credentials.
func (c *Client) OpenLeague(ctx context.Context, q league.Query) (league.League, error) {
	path, params := c.leagueEndpoint(q)
	for _, view := range leagueViews {
		params.Add("view", view)
	}

	spec := requestSpec{
		operation:   "open_league",
		path:        path,
		query:       params,
		credentials: q.Credentials,
	}

	var env leagueEnvelope
	if q.Year < firstCurrentEndpointSeason {
		var history []leagueEnvelope
		if err := c.doJSON(ctx, spec, &history); err != nil {
			return nil, err
		}
		if len(history) == 0 {
			return nil, crerr.Wrapf(usecase.ErrProvider, "espn league %d season %d: league not found", q.LeagueID, q.Year)
		}
		env = history[0]
	} else if err := c.doJSON(ctx, spec, &env); err != nil {
		return nil, err
	}

	return newSession(c, q, env), nil
}

// leagueEndpoint returns the path and base query of a league season.
func (c *Client) leagueEndpoint(q league.Query) (string, url.Values) {
	params := url.Values{}
	if q.Year < firstCurrentEndpointSeason {
		params.Set("seasonId", strconv.Itoa(q.Year))
		return fmt.Sprintf("/leagueHistory/%d", q.LeagueID), params
	}
	return fmt.Sprintf("/seasons/%d/segments/0/leagues/%d", q.Year, q.LeagueID), params
}

type requestSpec struct {
	operation   string
	path        string
	query       url.Values
	header      http.Header
	credentials league.Credentials
}

func (c *Client) doJSON(ctx context.Context, spec requestSpec, target any) error {
	start := time.Now()
	var transient bool

	call := func() error {
		raw, status, err := c.executeRequest(ctx, spec)
		if err != nil {
			transient = status == 0 || status >= http.StatusInternalServerError
			return err
		}
		if err := sonic.Unmarshal(raw, target); err != nil {
			return crerr.Wrapf(usecase.ErrProvider, "espn %s: decode payload: %s", spec.operation, err.Error())
		}
		return nil
	}

	var err error
	if c.circuitEnabled {
		err = c.breaker.Execute(call, func(error) bool { return transient })
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "operation", spec.operation, "state", c.breaker.State())
			err = fmt.Errorf("%w: league data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	} else {
		err = call()
	}

	c.metrics.RecordProviderCall(providerName, spec.operation, time.Since(start), err)
	return err
}

// executeRequest performs one GET. A zero status means the request never got a
// response.
func (c *Client) executeRequest(ctx context.Context, spec requestSpec) ([]byte, int, error) {
	fullURL := c.baseURL + spec.path
	if encoded := spec.query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, crerr.Wrapf(usecase.ErrProvider, "espn %s: build request: %s", spec.operation, err.Error())
	}
	req.Header.Set("accept", "application/json")
	for key, values := range spec.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	attachCredentials(req, spec.credentials)

	secrets := credentialValues(spec.credentials)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "espn request failed", "operation", spec.operation, "path", spec.path, "error", sanitizeSensitiveText(err.Error(), secrets...))
		return nil, 0, crerr.Wrapf(usecase.ErrProvider, "espn %s: send request: %s", spec.operation, sanitizeSensitiveText(err.Error(), secrets...))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, 0, crerr.Wrapf(usecase.ErrProvider, "espn %s: read response body: %s", spec.operation, err.Error())
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, resp.StatusCode, nil
	}

	c.logger.WarnContext(ctx, "espn returned non-success status",
		"operation", spec.operation,
		"path", spec.path,
		"status", resp.StatusCode,
		"body", sanitizeSensitiveText(abbreviateBody(raw), secrets...),
	)
	return nil, resp.StatusCode, statusError(spec, resp.StatusCode)
}

func statusError(spec requestSpec, status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return crerr.Wrapf(usecase.ErrProvider, "espn %s: status=%d: league is private or credentials were rejected", spec.operation, status)
	case http.StatusNotFound:
		return crerr.Wrapf(usecase.ErrProvider, "espn %s: status=%d: league not found", spec.operation, status)
	default:
		return crerr.Wrapf(usecase.ErrProvider, "espn %s: status=%d", spec.operation, status)
	}
}

func attachCredentials(req *http.Request, creds league.Credentials) {
	if creds.ESPNS2 != nil {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: *creds.ESPNS2})
	}
	if creds.SWID != nil {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: *creds.SWID})
	}
}

func credentialValues(creds league.Credentials) []string {
	out := make([]string, 0, 2)
	if creds.ESPNS2 != nil {
		out = append(out, *creds.ESPNS2)
	}
	if creds.SWID != nil {
		out = append(out, *creds.SWID)
	}
	return out
}

func sanitizeSensitiveText(value string, secrets ...string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	for _, secret := range secrets {
		if secret != "" {
			value = strings.ReplaceAll(value, secret, "REDACTED")
		}
	}
	return value
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
