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

// Client speaks the SheetDB-style REST dialect: a sheet is exposed at a base
// URL, rows are flat JSON objects, and mutations report how many rows they
// touched.
//
// Wire contract:
//   - GET  {base}           -> [row, ...]
//   - POST {base}           -> {"created": n}   body {"data": [row, ...]}
//   - PATCH {base}/id/{id}  -> {"updated": n}   body {"data": row}
//   - DELETE {base}/id/{id} -> {"deleted": n}
//
// Numeric cells arrive as strings or numbers interchangeably; coercion is the
// repository layer's job, not the client's.

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StatusError is returned when the sheet endpoint answers with a non-2xx
// status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheetdb: unexpected status %d", e.StatusCode)
}

type mutationResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// GetAll fetches every row of the sheet at baseURL and decodes the array into
// out.
func (c *Client) GetAll(ctx context.Context, baseURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Create submits rows to the sheet and returns the created-count reported by
// the store.
func (c *Client) Create(ctx context.Context, baseURL string, rows any) (int, error) {
	body, err := json.Marshal(map[string]any{"data": rows})
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	var res mutationResult
	if err := c.do(req, &res); err != nil {
		return 0, err
	}
	return res.Created, nil
}

// Update submits a full row keyed by id and returns the updated-count.
func (c *Client) Update(ctx context.Context, baseURL, id string, row any) (int, error) {
	body, err := json.Marshal(map[string]any{"data": row})
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, baseURL+"/id/"+id, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	var res mutationResult
	if err := c.do(req, &res); err != nil {
		return 0, err
	}
	return res.Updated, nil
}

// Delete removes the row keyed by id and returns the deleted-count.
func (c *Client) Delete(ctx context.Context, baseURL, id string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, baseURL+"/id/"+id, nil)
	if err != nil {
		return 0, err
	}

	var res mutationResult
	if err := c.do(req, &res); err != nil {
		return 0, err
	}
	return res.Deleted, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
