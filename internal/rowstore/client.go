package rowstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	restPath       = "/rest/v1/"
)

// Query describes a row selection: equality filters, ordering and the column
// (or embedded-resource) projection.
type Query struct {
	Select     string            // defaults to "*"
	Filters    map[string]string // column -> value, sent as eq. filters
	OrderBy    string
	Descending bool
}

// APIError is a non-2xx response from the row store, with the store's own
// message when it provides one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("row store returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("row store returned status %d", e.StatusCode)
}

// Client is a thin REST client for the hosted row store. It authenticates
// with the backend service key; per-user scoping happens through explicit
// filters set by the repository adapters.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Select fetches rows matching q and decodes the JSON array into dest.
func (c *Client) Select(ctx context.Context, table string, q Query, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(table)+"?"+q.encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build select request: %w", err)
	}
	c.setHeaders(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("select %s failed: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode %s rows: %w", table, err)
	}
	return nil
}

// Insert creates one row. The store assigns identity and defaults.
func (c *Client) Insert(ctx context.Context, table string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s row: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build insert request: %w", err)
	}
	c.setHeaders(req, "return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("insert into %s failed: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return readAPIError(resp)
	}
	return nil
}

// Update overwrites columns on the rows matching every filter and returns the
// number of rows matched, so callers can distinguish a missing row. Writes
// run under the service key, so callers must include the owner column in the
// filters.
func (c *Client) Update(ctx context.Context, table string, filters map[string]string, payload any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s row: %w", table, err)
	}

	u := c.tableURL(table) + "?" + encodeFilters(filters)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build update request: %w", err)
	}
	c.setHeaders(req, "return=representation")

	return c.doCounted(req, table)
}

// Delete removes the rows matching every filter and returns the number of
// rows removed.
func (c *Client) Delete(ctx context.Context, table string, filters map[string]string) (int, error) {
	u := c.tableURL(table) + "?" + encodeFilters(filters)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build delete request: %w", err)
	}
	c.setHeaders(req, "return=representation")

	return c.doCounted(req, table)
}

// doCounted executes a write that asked for the affected rows back and counts
// them.
func (c *Client) doCounted(req *http.Request, table string) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("write to %s failed: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return 0, readAPIError(resp)
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to decode %s write response: %w", table, err)
	}
	return len(rows), nil
}

func (c *Client) tableURL(table string) string {
	return c.baseURL + restPath + table
}

func (c *Client) setHeaders(req *http.Request, prefer string) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
}

// encode renders the query string the PostgREST way: column=eq.value filters
// and order=column.desc ordering.
func (q Query) encode() string {
	values := url.Values{}

	sel := q.Select
	if sel == "" {
		sel = "*"
	}
	values.Set("select", sel)

	for column, value := range q.Filters {
		values.Set(column, "eq."+value)
	}

	if q.OrderBy != "" {
		direction := "asc"
		if q.Descending {
			direction = "desc"
		}
		values.Set("order", q.OrderBy+"."+direction)
	}

	return values.Encode()
}

func encodeFilters(filters map[string]string) string {
	values := url.Values{}
	for column, value := range filters {
		values.Set(column, "eq."+value)
	}
	return values.Encode()
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
