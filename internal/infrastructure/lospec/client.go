// Package lospec retrieves palettes from the Lospec palette list.
package lospec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
	userAgent      = "swatchbook"
)

// Fetcher retrieves a palette by its source identifier.
type Fetcher interface {
	Fetch(ctx context.Context, id palette.SourceID) (palette.Palette, error)
}

// Client is the HTTP Fetcher. It issues exactly one GET per call and never
// retries.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  ports.Logger
	Metrics ports.MetricsCollector

	now func() time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTP = hc }
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m ports.MetricsCollector) Option {
	return func(c *Client) { c.Metrics = m }
}

// WithTimeout sets the request timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.HTTP = &http.Client{Timeout: d}
		}
	}
}

// NewClient constructs a client for baseURL, defaulting to Lospec.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    &http.Client{Timeout: defaultTimeout},
		Logger:  logging.NewNoOpLogger(),
		Metrics: ports.NoopMetrics{},
		now:     time.Now,
	}
	if c.BaseURL == "" {
		c.BaseURL = palette.DefaultBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads and decodes the palette document for id.
func (c *Client) Fetch(ctx context.Context, id palette.SourceID) (palette.Palette, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := c.clock()()
	target := id.URL(c.BaseURL)
	log := c.logger().With("component", "fetcher", "slug", id.Slug)

	p, err := c.fetch(ctx, id, target)

	outcome := "success"
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		outcome = string(fetchErr.Kind)
	}
	elapsed := c.clock()().Sub(started)
	c.metrics().ObserveHistogram(ctx, ports.MetricFetchDuration, elapsed.Seconds(), map[string]string{"outcome": outcome})

	if err != nil {
		log.Warn(ctx, "palette fetch failed", "url", target, "outcome", outcome, "error", err, "duration_ms", elapsed.Milliseconds())
		return palette.Palette{}, err
	}
	log.Debug(ctx, "palette fetched", "url", target, "colors", p.Len(), "duration_ms", elapsed.Milliseconds())
	return p, nil
}

func (c *Client) fetch(ctx context.Context, id palette.SourceID, target string) (palette.Palette, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return palette.Palette{}, &FetchError{Kind: KindNetwork, Slug: id.Slug, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return palette.Palette{}, &FetchError{Kind: KindNetwork, Slug: id.Slug, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		kind := KindHTTP
		if resp.StatusCode == http.StatusNotFound {
			kind = KindNotFound
		}
		return palette.Palette{}, &FetchError{
			Kind:       kind,
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Slug:       id.Slug,
		}
	}

	var decoded palette.Palette
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := dec.Decode(&decoded); err != nil {
		return palette.Palette{}, &FetchError{Kind: KindNetwork, Slug: id.Slug, Err: fmt.Errorf("decode palette: %w", err)}
	}
	if err := palette.Validate(decoded); err != nil {
		return palette.Palette{}, &FetchError{Kind: KindNetwork, Slug: id.Slug, Err: err}
	}

	return decoded, nil
}

// statusText mirrors the reason phrase the server sent, falling back to
// the canonical text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		c.HTTP = &http.Client{Timeout: defaultTimeout}
	}
	return c.HTTP
}

func (c *Client) logger() ports.Logger {
	if c.Logger == nil {
		return logging.NewNoOpLogger()
	}
	return c.Logger
}

func (c *Client) metrics() ports.MetricsCollector {
	if c.Metrics == nil {
		return ports.NoopMetrics{}
	}
	return c.Metrics
}

func (c *Client) clock() func() time.Time {
	if c.now == nil {
		return time.Now
	}
	return c.now
}

var _ Fetcher = (*Client)(nil)
