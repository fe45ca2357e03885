// Package ems is the typed HTTP client for the StaffHub EMS backend. All
// payroll computation, persistence and authorization live on the other side
// of this client; it only shapes requests, attaches the session token, and
// maps responses and failures into domain types.
package ems

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/session"
)

var (
	ErrNetwork      = errors.New("ems: network error")
	ErrServer       = errors.New("ems: server error")
	ErrNotFound     = errors.New("ems: resource not found")
	ErrUnauthorized = errors.New("ems: unauthorized")
	ErrValidation   = errors.New("ems: request rejected")
)

// APIError carries the status and message of a non-2xx backend response and
// unwraps to one of the sentinel errors above.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ems API error [%d]: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Store
}

func NewClient(baseURL string, timeout time.Duration, sessions session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		sessions: sessions,
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues one request and decodes the data envelope into out. The bearer
// token is attached when the session store holds one; its absence never
// blocks the request.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token, ok := c.sessions.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var env envelope
	if len(raw) > 0 {
		// A malformed body on an error status must not mask the status.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, env.Message)
	}

	if out != nil {
		if env.Data == nil {
			return &APIError{StatusCode: resp.StatusCode, Message: "response has no data field", Err: ErrServer}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: "failed to decode response: " + err.Error(), Err: ErrServer}
		}
	}
	return nil
}

func statusError(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	var sentinel error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case status == http.StatusNotFound:
		sentinel = ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		sentinel = ErrValidation
	default:
		sentinel = ErrServer
	}
	return &APIError{StatusCode: status, Message: message, Err: sentinel}
}
