// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/meshintel/arxiv-harvest/pkg/types"
)

// Transport decorates a base RoundTripper with a default User-Agent
// and an optional client-side rate limit. A nil Limiter disables
// pacing. Pacing is not retry logic: a failed request still fails.
type Transport struct {
	Base      http.RoundTripper
	Limiter   *rate.Limiter
	UserAgent string
}

// RoundTrip waits for the limiter, stamps the User-Agent when the
// request carries none, and delegates to the base transport.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	if t.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.UserAgent)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// NewClient builds the HTTP client shared by the API call and the PDF
// downloads: request timeout, User-Agent, and optional pacing from cfg.
func NewClient(cfg types.HTTPConfig) *http.Client {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &Transport{
			Limiter:   limiter,
			UserAgent: cfg.UserAgent,
		},
	}
}
