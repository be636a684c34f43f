// Package rest implements the data backend as a client of a remote
// JSON:API resource server.
//
// Each facade operation issues one or more blocking HTTP requests with a
// short fixed timeout. A transport failure (refused connection, DNS,
// timeout) surfaces as an error; an HTTP error status is logged and
// degrades to an empty or zero result, which callers observe as "no
// data". There is no retry and no backoff.
package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orderdesk-labs/orderdesk/internal/jsonapi"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// requestTimeout bounds every round trip.
const requestTimeout = 10 * time.Second

// Client implements core.Store against a JSON:API resource server. It
// holds no mutable state beyond the configured base URL.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

var _ core.Store = (*Client)(nil)

// NewClient creates a client for the given base URL (trailing slashes
// are stripped).
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// get issues a GET for path with the given query. An HTTP error status
// yields a nil body and nil error after logging.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req)
}

// post issues a POST with a JSON:API document body.
func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req)
}

// patch issues a PATCH with a JSON:API document body.
func (c *Client) patch(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", jsonapi.ContentType)
	req.Header.Set("Content-Type", jsonapi.ContentType)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("resource server rejected request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode))
		return nil, nil
	}
	return body, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func filterQuery(field string, id int64) url.Values {
	q := url.Values{}
	q.Set("filter["+field+"]", formatID(id))
	return q
}
