// Package metro implements the Metro Trains healthboard alerts feed.
package metro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/whereabouts/whereabouts/internal/provider/resilience"
	"github.com/whereabouts/whereabouts/internal/transit"
)

const (
	// ProviderName identifies this transit provider.
	ProviderName = "metro"

	// DefaultBaseURL is the Metro Trains API base URL.
	DefaultBaseURL = "http://www.metrotrains.com.au/api"

	// fallbackLineName is used when the feed omits a line's display name.
	fallbackLineName = "train"
)

// ClientConfig holds configuration for the Metro client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to the Metro API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Metrics records request duration and outcome (optional).
	Metrics RequestRecorder

	// Logger for client operations.
	Logger zerolog.Logger
}

// RequestRecorder records the outcome of one upstream feed request.
type RequestRecorder interface {
	RecordRequest(provider, operation string, duration time.Duration, err error)
}

// Client fetches line disruption status from the Metro healthboard feed.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
	metrics    RequestRecorder
	logger     zerolog.Logger
}

// NewClient creates a new Metro client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// lineEntry is one line's record in the healthboard response. The alerts
// field is either a sentinel string (good service) or a list of alert
// objects ordered most recent first, so it stays raw until parsed.
type lineEntry struct {
	LineName string          `json:"line_name"`
	Alerts   json.RawMessage `json:"alerts"`
}

// LineStatus fetches the current status of one line. The healthboard feed
// returns every line keyed by line id; ErrLineNotFound is returned when the
// requested id is absent from the response.
func (c *Client) LineStatus(ctx context.Context, lineID string) (status *transit.LineStatus, err error) {
	if c.metrics != nil {
		start := time.Now()
		defer func() {
			c.metrics.RecordRequest(ProviderName, "line_status", time.Since(start), err)
		}()
	}

	url := fmt.Sprintf("%s?op=get_healthboard_alerts", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transit.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", transit.ErrProviderUnavailable, resp.StatusCode)
	}

	var feed map[string]lineEntry
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", transit.ErrProviderUnavailable, err)
	}

	entry, ok := feed[lineID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", transit.ErrLineNotFound, lineID)
	}

	severity, err := parseAlerts(entry.Alerts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transit.ErrProviderUnavailable, err)
	}

	lineName := entry.LineName
	if lineName == "" {
		lineName = fallbackLineName
	}

	c.logger.Debug().
		Str("line_id", lineID).
		Str("line_name", lineName).
		Str("severity", string(severity)).
		Msg("fetched line status")

	return &transit.LineStatus{
		LineName: lineName,
		Severity: severity,
	}, nil
}

// parseAlerts normalizes the healthboard alerts field. A string value always
// means good service; otherwise the first alert in the list is the current
// one and its type field carries the severity.
func parseAlerts(raw json.RawMessage) (transit.Severity, error) {
	if len(raw) == 0 {
		return transit.SeverityGood, nil
	}

	var sentinel string
	if err := json.Unmarshal(raw, &sentinel); err == nil {
		return transit.SeverityGood, nil
	}

	var alerts []struct {
		AlertType string `json:"alert_type"`
	}
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return "", fmt.Errorf("unexpected alerts shape: %w", err)
	}
	if len(alerts) == 0 {
		return transit.SeverityGood, nil
	}

	return transit.ParseSeverity(alerts[0].AlertType), nil
}
