// Package sheetdb talks to the spreadsheet-backed row store that holds sign-ups,
// placement questions and the class schedule.
package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// StatusError is returned when the row store answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheetdb responded %d: %s", e.StatusCode, e.Body)
}

// Client implements domain.SheetReader and domain.SheetWriter over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// FetchRows reads an endpoint that returns either a JSON array of rows or an
// object with a "data" array.
func (c *Client) FetchRows(ctx context.Context, endpoint string) ([]map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheetdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeRows(body)
}

// AppendRows posts {"data": rows} and returns the raw upstream body.
func (c *Client) AppendRows(ctx context.Context, endpoint string, rows []map[string]string) ([]byte, error) {
	payload, err := json.Marshal(struct {
		Data []map[string]string `json:"data"`
	}{Data: rows})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sheetdb rows: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build sheetdb request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheetdb request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheetdb response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func decodeRows(body []byte) ([]map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []map[string]interface{}{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	if trimmed[0] == '[' {
		var rows []map[string]interface{}
		if err := decoder.Decode(&rows); err != nil {
			return nil, fmt.Errorf("failed to decode sheetdb rows: %w", err)
		}
		return rows, nil
	}

	var wrapped struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := decoder.Decode(&wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode sheetdb rows: %w", err)
	}
	if wrapped.Data == nil {
		return []map[string]interface{}{}, nil
	}
	return wrapped.Data, nil
}
