package randomuser

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// PageFetcher defines the interface for fetching directory pages.
// This interface is implemented by *Client and can be used for testing.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (Page, error)
}

// Ensure Client implements PageFetcher at compile time.
var _ PageFetcher = (*Client)(nil)

// Client talks to the randomuser.me HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	seed      string
	results   int
	total     int
	timeout   time.Duration
	logger    *zap.Logger

	inflight singleflight.Group
}

// Options configure a Client. Zero values use the defaults below.
type Options struct {
	Endpoint   string
	Seed       string
	Results    int
	Total      int
	Timeout    time.Duration
	Logger     *zap.Logger
	HTTPClient *http.Client
}

const (
	defaultEndpoint  = "https://randomuser.me/api/"
	defaultSeed      = "abc"
	defaultResults   = 50
	defaultTotal     = 1000
	defaultUserAgent = "roster/0.1"
	requestTimeout   = 10 * time.Second
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.URL, e.StatusCode)
}

// NewClient builds a Client for the given options.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.Endpoint)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:   base,
		http:      httpClient,
		userAgent: defaultUserAgent,
		seed:      strings.TrimSpace(opts.Seed),
		results:   opts.Results,
		total:     opts.Total,
		timeout:   timeout,
		logger:    opts.Logger,
	}
	if c.seed == "" {
		c.seed = defaultSeed
	}
	if c.results <= 0 {
		c.results = defaultResults
	}
	if c.total <= 0 {
		c.total = defaultTotal
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}

// FetchPage retrieves one page of records. Concurrent calls for the same page
// share a single request; there is no retry. The shared request is detached
// from any one caller's context and bounded by the client timeout, so a
// cancelled caller returns early without failing the others.
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if page < 1 {
		return Page{}, fmt.Errorf("page %d out of range", page)
	}

	ch := c.inflight.DoChan(strconv.Itoa(page), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.fetch(fetchCtx, page)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Page{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return Page{}, res.Err
	}
	result := res.Val.(Page)
	if res.Shared {
		c.logger.Debug("coalesced page fetch", zap.Int("page", page))
		// Callers own their slice.
		result.Employees = append(result.Employees[:0:0], result.Employees...)
	}
	return result, nil
}

func (c *Client) fetch(ctx context.Context, page int) (Page, error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("results", strconv.Itoa(c.results))
	values.Set("seed", c.seed)
	reqURL := *c.baseURL
	reqURL.RawQuery = values.Encode()

	start := time.Now()
	var payload pageResponse
	if err := c.getJSON(ctx, &reqURL, &payload); err != nil {
		c.logger.Warn("page fetch failed", zap.Int("page", page), zap.Error(err))
		return Page{}, err
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return Page{}, fmt.Errorf("api error: %s", msg)
	}
	// The API echoes the page it served; a mismatch means the records belong
	// to another page.
	if got := payload.Info.Page; got != 0 && got != page {
		return Page{}, fmt.Errorf("api returned page %d for page %d", got, page)
	}

	employees, err := toEmployees(payload.Results)
	if err != nil {
		c.logger.Warn("page rejected", zap.Int("page", page), zap.Error(err))
		return Page{}, fmt.Errorf("validate response: %w", err)
	}

	c.logger.Debug("page fetched",
		zap.Int("page", page),
		zap.Int("records", len(employees)),
		zap.Duration("elapsed", time.Since(start)))

	return Page{Number: page, Employees: employees, Total: c.total}, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: reqURL.Path, StatusCode: resp.StatusCode}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeBody unwraps the Content-Encoding we asked for. Setting
// Accept-Encoding by hand turns off the transport's transparent gzip.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
		return io.NopCloser(resp.Body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return zr, nil
	default:
		return nil, fmt.Errorf("decode response: unsupported content encoding %q", resp.Header.Get("Content-Encoding"))
	}
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = defaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
