// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	restPath      = "/rest/v1"
	traceIDHeader = "X-Trace-ID"

	preferRepresentation = "return=representation"
	preferMinimal        = "return=minimal"
)

type restTableClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewRESTTableClient constructs a [TableClient] for the datastore at cfg.URL.
// The key is sent both as the "apikey" header and as a bearer token on every
// request.
//
// Returns [ErrInvalidAddress] (wrapped) if cfg.URL is empty or cannot be
// parsed as a URL with a host.
func NewRESTTableClient(cfg config.Remote, logger *logger.Logger) (TableClient, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		SetHeader("apikey", cfg.Key).
		SetAuthToken(cfg.Key)

	return &restTableClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	base := strings.TrimRight(u.String(), "/")
	if !strings.HasSuffix(base, restPath) {
		base += restPath
	}

	return base, nil
}

// Select implements [TableClient]. It issues GET /<table>?<query>.
func (c *restTableClient) Select(ctx context.Context, table string, q Query, out any) error {
	req := c.request(ctx).SetQueryParamsFromValues(q.Values())

	return c.send(ctx, req, http.MethodGet, table, out)
}

// Insert implements [TableClient]. It issues POST /<table> with rows as body.
func (c *restTableClient) Insert(ctx context.Context, table string, rows any, out any) error {
	req := c.request(ctx).
		SetHeader("Prefer", prefer(out)).
		SetBody(rows)

	return c.send(ctx, req, http.MethodPost, table, out)
}

// Update implements [TableClient]. It issues PATCH /<table>?<query>.
func (c *restTableClient) Update(ctx context.Context, table string, q Query, patch any, out any) error {
	req := c.request(ctx).
		SetHeader("Prefer", prefer(out)).
		SetQueryParamsFromValues(q.Values()).
		SetBody(patch)

	return c.send(ctx, req, http.MethodPatch, table, out)
}

// Delete implements [TableClient]. It issues DELETE /<table>?<query>.
func (c *restTableClient) Delete(ctx context.Context, table string, q Query, out any) error {
	req := c.request(ctx).
		SetHeader("Prefer", prefer(out)).
		SetQueryParamsFromValues(q.Values())

	return c.send(ctx, req, http.MethodDelete, table, out)
}

// Ping implements [TableClient].
func (c *restTableClient) Ping(ctx context.Context, table string) error {
	var rows []json.RawMessage
	return c.Select(ctx, table, Query{}.WithLimit(1), &rows)
}

func (c *restTableClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func (c *restTableClient) send(ctx context.Context, req *resty.Request, method, table string, out any) error {
	start := time.Now()

	resp, err := req.Execute(method, "/"+table)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", strings.ToLower(method), table, err)
	}

	event := c.logger.Debug()
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		event = event.Str("trace_id", traceID)
	}
	event.
		Str("method", method).
		Str("table", table).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("datastore request")

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s %s: %w", strings.ToLower(method), table, err)
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", table, err)
	}

	return nil
}

func prefer(out any) string {
	if out == nil {
		return preferMinimal
	}
	return preferRepresentation
}
