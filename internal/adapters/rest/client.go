package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/gridboard/internal/ctxutil"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
	"github.com/example/gridboard/internal/version"
)

// Client implements secondary.Gateway against a remote data service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a gateway client for the service rooted at baseURL.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ secondary.Gateway = (*Client)(nil)

// FetchEmployees returns all employees.
func (c *Client) FetchEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	return out, c.get(ctx, secondary.CollectionEmployees, &out)
}

// FetchWorkOrders returns all work orders with assignments expanded.
func (c *Client) FetchWorkOrders(ctx context.Context) ([]models.WorkOrder, error) {
	var out []models.WorkOrder
	return out, c.get(ctx, secondary.CollectionWorkOrders, &out)
}

// FetchGridSections returns all grid sections with connections expanded.
func (c *Client) FetchGridSections(ctx context.Context) ([]models.GridSection, error) {
	var out []models.GridSection
	return out, c.get(ctx, secondary.CollectionGridSections, &out)
}

// FetchIncidents returns all incidents.
func (c *Client) FetchIncidents(ctx context.Context) ([]models.Incident, error) {
	var out []models.Incident
	return out, c.get(ctx, secondary.CollectionIncidents, &out)
}

// FetchSchedules returns all schedules.
func (c *Client) FetchSchedules(ctx context.Context) ([]models.Schedule, error) {
	var out []models.Schedule
	return out, c.get(ctx, secondary.CollectionSchedules, &out)
}

// Mutate sends one write to the service.
func (c *Client) Mutate(ctx context.Context, m secondary.Mutation) error {
	path := "/" + url.PathEscape(string(m.Collection))
	switch m.Op {
	case secondary.OpInsert:
		return c.send(ctx, http.MethodPost, path, m.Record)
	case secondary.OpUpdate:
		return c.send(ctx, http.MethodPatch, path+"/"+url.PathEscape(m.ID), m.Fields)
	case secondary.OpUpsert:
		return c.send(ctx, http.MethodPut, path+"/"+url.PathEscape(m.ID), m.Record)
	}
	return secondary.NewGatewayError(secondary.ErrValidation, nil, "unsupported mutation: %s on %s", m.Op, m.Collection)
}

func (c *Client) get(ctx context.Context, coll secondary.Collection, out any) error {
	resp, err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(string(coll)), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return secondary.NewGatewayError(secondary.ErrMalformed, err, "malformed %s response: %v", coll, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// do issues a request and returns the response for 2xx statuses; every other
// outcome is converted to a GatewayError.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, secondary.NewGatewayError(secondary.ErrValidation, err, "failed to encode request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+APIPrefix+path, reader)
	if err != nil {
		return nil, secondary.NewGatewayError(secondary.ErrTransport, err, "failed to build request: %v", err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor := ctxutil.ActorFromContext(ctx); actor != "" {
		req.Header.Set(HeaderActor, actor)
	}
	cid := ctxutil.CorrelationFromContext(ctx)
	if cid == "" {
		cid = uuid.NewString()
	}
	req.Header.Set(HeaderCorrelationID, cid)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, secondary.AsGatewayError(err)
		}
		return nil, secondary.NewGatewayError(secondary.ErrTransport, err, "failed to reach data service: %v", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	return nil, errorFromResponse(resp)
}

func errorFromResponse(resp *http.Response) error {
	kind := KindForStatus(resp.StatusCode)

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body ErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return secondary.NewGatewayError(kind, nil, "%s", body.Message)
	}
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return secondary.NewGatewayError(kind, nil, "%s", fmt.Sprintf("data service returned %d: %s", resp.StatusCode, msg))
}

// KindForStatus maps a non-2xx HTTP status to an error kind.
func KindForStatus(status int) secondary.ErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return secondary.ErrAuthorization
	case http.StatusNotFound:
		return secondary.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return secondary.ErrValidation
	}
	return secondary.ErrTransport
}
