// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/davetashner/icudash/internal/filter"
)

const (
	// DataPath is the aggregation endpoint's path below the base URL.
	DataPath = "/api/data"

	maxResponseBytes = 10 * 1024 * 1024 // 10 MiB
)

// Fetcher retrieves one Result for a query.
type Fetcher interface {
	Fetch(ctx context.Context, q filter.Query) (*Result, error)
}

// Compile-time check that Client implements Fetcher.
var _ Fetcher = (*Client)(nil)

// Client fetches dashboard data over HTTP. It issues exactly one request per
// call: no retries, and no timeout beyond the caller's context.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New returns a Client for the aggregation service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var errTrailingData = errors.New("unexpected data after JSON body")

// Fetch issues one GET for q. Failures are returned as *TransportError,
// *ParseError or *AppError. A body that decodes and carries an error field is
// an *AppError even when its data sections are missing.
func (c *Client) Fetch(ctx context.Context, q filter.Query) (*Result, error) {
	url := c.baseURL + DataPath + "?" + q.Encode()
	reqID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	slog.Debug("fetching dashboard data", "request_id", reqID, "query", q.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body := io.LimitReader(resp.Body, maxResponseBytes)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Debug("dashboard data request failed", "request_id", reqID, "status", resp.StatusCode)
		return nil, &TransportError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}

	result, err := decodeResult(body)
	if err != nil {
		return nil, err
	}

	slog.Debug("dashboard data received", "request_id", reqID,
		"patients", len(result.PatientDetails))
	return result, nil
}

// decodeResult reads exactly one JSON object from r. An error field wins
// over a missing section; a body missing any of kpis, charts or
// patient_details is a *ParseError.
func decodeResult(r io.Reader) (*Result, error) {
	var wire struct {
		KPIs           *KPIs         `json:"kpis"`
		Charts         *Charts       `json:"charts"`
		PatientDetails *[]PatientRow `json:"patient_details"`
		Error          string        `json:"error"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Err: errTrailingData}
	}
	if wire.Error != "" {
		return nil, &AppError{Message: wire.Error}
	}

	var missing []string
	if wire.KPIs == nil {
		missing = append(missing, "kpis")
	}
	if wire.Charts == nil {
		missing = append(missing, "charts")
	}
	if wire.PatientDetails == nil {
		missing = append(missing, "patient_details")
	}
	if len(missing) > 0 {
		return nil, &ParseError{Err: fmt.Errorf("missing %s", strings.Join(missing, ", "))}
	}
	return &Result{KPIs: *wire.KPIs, Charts: *wire.Charts, PatientDetails: *wire.PatientDetails}, nil
}

// errorDetail extracts the error field from a failed response body, if the
// body is JSON and carries one.
func errorDetail(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Error
}
