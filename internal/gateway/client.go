package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxBodyBytes = 10 << 20

// ForwardRequest is one inbound call to relay upstream.
type ForwardRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Body        []byte
	ContentType string
	CallerID    string
	RequestID   string
}

// ForwardResponse is the upstream answer, relayed verbatim.
type ForwardResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client is the HTTP wrapper for the ShareIt server.
type Client struct {
	baseURL    string
	header     string
	httpClient *http.Client
}

// NewClient creates a new upstream client. A zero timeout means none.
func NewClient(baseURL, header string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		header:     header,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Forward sends req to the server. Any upstream status is a successful
// relay; only transport failures return an error.
func (c *Client) Forward(ctx context.Context, req ForwardRequest) (ForwardResponse, error) {
	url := c.baseURL + req.Path
	if req.RawQuery != "" {
		url += "?" + req.RawQuery
	}

	var body io.Reader = http.NoBody
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return ForwardResponse{}, fmt.Errorf("failed to build upstream request: %w", err)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if req.CallerID != "" {
		httpReq.Header.Set(c.header, req.CallerID)
	}
	if req.RequestID != "" {
		httpReq.Header.Set("X-Request-ID", req.RequestID)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ForwardResponse{}, fmt.Errorf("failed to call upstream %s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return ForwardResponse{}, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return ForwardResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        raw,
	}, nil
}
