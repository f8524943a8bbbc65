// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the instrumented HTTP transport used for
// OpenSearch requests.
package httputil

import (
	"net/http"
	"path"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/cinii-research/internal/observability"
	"github.com/pdiddy/cinii-research/pkg/cinii"
)

// Transport wraps a base RoundTripper, logging each exchange and recording
// it in Metrics. It never retries and never inspects the body.
type Transport struct {
	Base    http.RoundTripper
	Log     zerolog.Logger
	Metrics *observability.Metrics
}

// NewClient returns an http.Client whose transport logs to log and records
// into m. A zero timeout leaves requests bounded only by their context.
func NewClient(timeout time.Duration, log zerolog.Logger, m *observability.Metrics) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &Transport{
			Base:    http.DefaultTransport,
			Log:     log,
			Metrics: m,
		},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	searchType := path.Base(req.URL.Path)

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		t.Metrics.RecordRequest(searchType, 0, elapsed)
		t.Log.Warn().Err(err).
			Str("url", cinii.RedactURL(req.URL.String())).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return nil, err
	}

	t.Metrics.RecordRequest(searchType, resp.StatusCode, elapsed)
	ev := t.Log.Debug()
	if resp.StatusCode >= 400 {
		ev = t.Log.Warn()
	}
	ev.Str("search_type", searchType).
		Int("status", resp.StatusCode).
		Str("content_type", resp.Header.Get("Content-Type")).
		Dur("elapsed", elapsed).
		Msg("response received")
	return resp, nil
}
