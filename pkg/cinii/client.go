// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cinii is a typed client for the CiNii Research OpenSearch API.
//
// SearchOptions are normalized by BuildQuery into flat wire parameters,
// appended to <base>/<searchType> and sent as a single GET. JSON responses
// decode into types.Result; atom, rss and html bodies are returned as text.
// The client holds only its immutable configuration and is safe for
// concurrent use.
package cinii

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/cinii-research/pkg/types"
)

const (
	// DefaultBaseURL is the OpenSearch endpoint root.
	DefaultBaseURL = "https://cir.nii.ac.jp/opensearch"

	// AppIDEnv is the environment variable read when no app id is configured.
	AppIDEnv = "CINII_APP_ID"

	defaultUserAgent = "cinii-research/0.1"
)

// Client issues OpenSearch requests with a fixed application id.
type Client struct {
	appID     string
	baseURL   string
	userAgent string
	hc        *http.Client
	log       zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithBaseURL overrides the endpoint root, e.g. for an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// New creates a client from cfg. An empty cfg.AppID is resolved from the
// CINII_APP_ID environment variable once, here.
func New(cfg types.CiNiiConfig, opts ...Option) *Client {
	c := &Client{
		appID:     cfg.AppID,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		hc:        &http.Client{Timeout: cfg.Timeout},
		log:       zerolog.Nop(),
	}
	if c.appID == "" {
		c.appID = os.Getenv(AppIDEnv)
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// URL returns the request URL for a search without sending it.
func (c *Client) URL(searchType SearchType, format Format, opts SearchOptions) (string, error) {
	q, err := BuildQuery(format, opts, c.appID)
	if err != nil {
		return "", err
	}
	return c.baseURL + "/" + url.PathEscape(string(searchType)) + "?" + q.Encode(), nil
}

// Get sends one GET for the search and returns the raw response. The status
// code is not inspected; the caller must close the body.
func (c *Client) Get(ctx context.Context, searchType SearchType, format Format, opts SearchOptions) (*http.Response, error) {
	reqURL, err := c.URL(searchType, format, opts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug().
		Str("search_type", string(searchType)).
		Str("format", string(format)).
		Str("url", RedactURL(reqURL)).
		Msg("cinii request")

	resp, err := c.hc.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = RedactURL(ue.URL)
		}
		return nil, fmt.Errorf("CiNii %s request: %w", searchType, err)
	}
	return resp, nil
}

// GetText sends the search and reads the whole body as text. It is meant for
// the atom, rss and html formats, whose bodies are returned uninterpreted.
// The response is returned with its body already consumed and closed.
func (c *Client) GetText(ctx context.Context, searchType SearchType, format Format, opts SearchOptions) (string, *http.Response, error) {
	resp, err := c.Get(ctx, searchType, format, opts)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp, fmt.Errorf("reading CiNii %s response: %w", searchType, err)
	}
	return string(body), resp, nil
}

// Search sends a format=json search and decodes the envelope as-is.
func (c *Client) Search(ctx context.Context, searchType SearchType, opts SearchOptions) (*types.Result, error) {
	resp, err := c.Get(ctx, searchType, FormatJSON, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var res types.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("parsing CiNii %s response (HTTP %d): %w", searchType, resp.StatusCode, err)
	}
	return &res, nil
}

// All searches every resource type.
func (c *Client) All(ctx context.Context, opts SearchOptions) (*types.Result, error) {
	return c.Search(ctx, SearchAll, opts)
}

// Data searches research data.
func (c *Client) Data(ctx context.Context, opts SearchOptions) (*types.Result, error) {
	return c.Search(ctx, SearchData, opts)
}

// Articles searches papers.
func (c *Client) Articles(ctx context.Context, opts SearchOptions) (*types.Result, error) {
	return c.Search(ctx, SearchArticles, opts)
}

// Books searches books.
func (c *Client) Books(ctx context.Context, opts SearchOptions) (*types.Result, error) {
	return c.Search(ctx, SearchBooks, opts)
}

// Dissertations searches doctoral dissertations.
func (c *Client) Dissertations(ctx context.Context, opts SearchOptions) (*types.Result, error) {
	return c.Search(ctx, SearchDissertations, opts)
}

// Projects searches research projects.
func (c *Client) Projects(ctx context.Context, opts SearchOptions) (*types.Result, error) {
	return c.Search(ctx, SearchProjects, opts)
}

// RedactURL replaces the appId query value so URLs can be logged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("appId") {
		q.Set("appId", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
