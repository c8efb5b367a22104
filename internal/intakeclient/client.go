// Package intakeclient is a typed HTTP client for the public intake
// endpoints. It implements wizard.Backend, so a wizard can run against a
// remote practicekit server with nothing but a link token.
package intakeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/practicekit/practicekit/internal/intakeform"
	"github.com/practicekit/practicekit/internal/wizard"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	tenant  string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTenant sets the X-Tenant-ID header on every request. Public intake
// requests carry no credentials, so the tenant rides in a header.
func WithTenant(tenant string) Option {
	return func(c *Client) { c.tenant = tenant }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchForm implements wizard.Backend.
func (c *Client) FetchForm(ctx context.Context, token string) (*wizard.FormState, error) {
	var state wizard.FormState
	if err := c.do(ctx, http.MethodGet, "/api/intake/form/"+token, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveProgress implements wizard.Backend.
func (c *Client) SaveProgress(ctx context.Context, token string, responses intakeform.Values) error {
	return c.do(ctx, http.MethodPost, "/api/intake/submit/"+token, responses, nil)
}

// SubmitAssessment implements wizard.Backend.
func (c *Client) SubmitAssessment(ctx context.Context, token, assessmentID string, responses map[string]int) error {
	body := map[string]interface{}{
		"assessment_id": assessmentID,
		"responses":     responses,
	}
	return c.do(ctx, http.MethodPost, "/api/intake/submit-assessment/"+token, body, nil)
}

// Complete implements wizard.Backend.
func (c *Client) Complete(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/intake/complete/"+token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tenant != "" {
		req.Header.Set("X-Tenant-ID", c.tenant)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return wizard.ErrInvalidLink
	case resp.StatusCode == http.StatusGone:
		return wizard.ErrLinkExpired
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
