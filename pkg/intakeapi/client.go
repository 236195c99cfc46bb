// Package intakeapi is an HTTP client for the intake API. It satisfies
// the store contract, so CLI commands can target a running server the
// same way they target a local backend.
package intakeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/store"
)

// Client talks to an intake API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the server at baseURL (e.g.
// "http://localhost:3001").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ store.Store = (*Client)(nil)

func (c *Client) Migrate(_ context.Context) error { return nil }
func (c *Client) Close() error                    { return nil }

func (c *Client) ListClients(ctx context.Context) ([]model.IndexEntry, error) {
	var entries []model.IndexEntry
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.IndexEntry{}
	}
	return entries, nil
}

func (c *Client) CreateClient(ctx context.Context, name string) (string, *model.ClientRecord, error) {
	req := map[string]string{"name": name}
	var resp struct {
		ID string `json:"id"`
		model.ClientRecord
	}
	if err := c.do(ctx, http.MethodPost, "/api/clients", req, &resp); err != nil {
		return "", nil, err
	}
	rec := resp.ClientRecord
	if rec.Answers == nil {
		rec.Answers = map[string]model.Answer{}
	}
	return resp.ID, &rec, nil
}

func (c *Client) GetClient(ctx context.Context, id string) (*model.ClientRecord, error) {
	if err := store.ValidateID(id); err != nil {
		return nil, err
	}
	var rec model.ClientRecord
	if err := c.do(ctx, http.MethodGet, "/api/clients/"+id, nil, &rec); err != nil {
		return nil, err
	}
	if rec.Answers == nil {
		rec.Answers = map[string]model.Answer{}
	}
	return &rec, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, rec *model.ClientRecord) (*model.ClientRecord, error) {
	if err := store.ValidateID(id); err != nil {
		return nil, err
	}
	var updated model.ClientRecord
	if err := c.do(ctx, http.MethodPut, "/api/clients/"+id, rec, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	if err := store.ValidateID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/clients/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return eris.Wrap(err, "intakeapi: marshal request")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return eris.Wrap(err, "intakeapi: build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return eris.Wrapf(err, "intakeapi: %s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return store.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return eris.Wrapf(err, "intakeapi: decode %s %s response", method, path)
	}
	return nil
}

func apiError(resp *http.Response) error {
	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		if resp.StatusCode == http.StatusBadRequest {
			return &store.ValidationError{Msg: apiErr.Error}
		}
		return eris.Errorf("intakeapi: server error (%d): %s", resp.StatusCode, apiErr.Error)
	}
	return eris.Errorf("intakeapi: unexpected status %s", resp.Status)
}

// ProgressFor fetches per-questionnaire completion for a client.
func (c *Client) ProgressFor(ctx context.Context, id string) (map[string]Progress, error) {
	if err := store.ValidateID(id); err != nil {
		return nil, err
	}
	var out map[string]Progress
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/clients/%s/progress", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Progress mirrors the server's per-questionnaire completion payload.
type Progress struct {
	Answered        int     `json:"answered"`
	Total           int     `json:"total"`
	Percent         float64 `json:"percent"`
	FirstUnanswered string  `json:"firstUnanswered,omitempty"`
}
