// Package client is a Go client for the research-group directory API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Group is a directory entry as returned by the server. The wire format is
// snake_case; the mapping to Go names happens here, in the struct tags,
// rather than through any generic key rewriting.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HowToJoin   string    `json:"how_to_join"`
	DocsLink    string    `json:"docs_link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGroup is the payload for registering a group.
type NewGroup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HowToJoin   string `json:"how_to_join"`
	DocsLink    string `json:"docs_link"`
	Password    string `json:"password"`
}

// UpdateGroup is the payload for replacing a group's mutable fields. The
// password is re-verified by the server on every mutation.
type UpdateGroup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HowToJoin   string `json:"how_to_join"`
	DocsLink    string `json:"docs_link"`
	Password    string `json:"password"`
}

// APIError is returned for any non-2xx response. Message carries the
// server-provided text when the body had one, else a generic text derived
// from the status code.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client calls the directory API. The zero value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API rooted at baseURL (e.g.
// "http://localhost:8000"). httpClient may be nil, in which case
// http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// List fetches all groups, newest first.
func (c *Client) List(ctx context.Context) ([]Group, error) {
	var groups []Group
	if err := c.do(ctx, http.MethodGet, "/api/research-groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Get fetches one group by id.
func (c *Client) Get(ctx context.Context, id string) (Group, error) {
	var g Group
	err := c.do(ctx, http.MethodGet, "/api/research-groups/"+url.PathEscape(id), nil, &g)
	return g, err
}

// Create registers a group and returns the server-assigned entry.
func (c *Client) Create(ctx context.Context, ng NewGroup) (Group, error) {
	var g Group
	err := c.do(ctx, http.MethodPost, "/api/research-groups", ng, &g)
	return g, err
}

// Update replaces a group's mutable fields after the server verifies the
// submitted password.
func (c *Client) Update(ctx context.Context, id string, ug UpdateGroup) (Group, error) {
	var g Group
	err := c.do(ctx, http.MethodPut, "/api/research-groups/"+url.PathEscape(id), ug, &g)
	return g, err
}

// Delete removes a group after the server verifies the submitted password.
func (c *Client) Delete(ctx context.Context, id, password string) error {
	body := struct {
		Password string `json:"password"`
	}{Password: password}
	return c.do(ctx, http.MethodDelete, "/api/research-groups/"+url.PathEscape(id), body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "decoding response body")
		}
	}
	return nil
}

// errorMessage pulls the human-readable message out of an error body.
// The server sends either {"error": "..."} or, for validation failures,
// a bare field→message map.
func errorMessage(status int, body []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Error) > 0 {
			var s string
			if err := json.Unmarshal(envelope.Error, &s); err == nil && s != "" {
				return s
			}
			if msg := joinFieldErrors(envelope.Error); msg != "" {
				return msg
			}
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	if msg := joinFieldErrors(body); msg != "" {
		return msg
	}
	return http.StatusText(status)
}

func joinFieldErrors(data []byte) string {
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil || len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for f, m := range fields {
		parts = append(parts, f+": "+m)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
