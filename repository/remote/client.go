// Package remote is the access layer for the authoritative library
// backend. Every payload crosses one envelope: {"data": ...} on
// success, {"error": {"error": "..."}} on failure. The error shape is
// checked first and wins even when both keys are present.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"librarydesk/util/apperr"
	"librarydesk/util/httpx"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: httpx.Client()}
}

// NewWithHTTPClient exists for tests that point at an httptest server.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: hc}
}

type envelope struct {
	Data  jsoniter.RawMessage `json:"data"`
	Error *struct {
		Error string `json:"error"`
	} `json:"error"`
}

func (c *Client) Get(ctx context.Context, s Session, path string, out any) error {
	return c.do(ctx, s, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, s Session, path string, body, out any) error {
	return c.do(ctx, s, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, s Session, path string, body, out any) error {
	return c.do(ctx, s, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, s Session, path string) error {
	return c.do(ctx, s, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, s Session, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperr.New(apperr.ErrValidation, "unencodable request body")
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return apperr.New(apperr.ErrTransport, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	if method != http.MethodGet {
		// lets the backend dedupe a retried mutation
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperr.New(apperr.ErrTransport, "backend unreachable: "+err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.New(apperr.ErrTransport, "reading backend response: "+err.Error())
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return apperr.New(apperr.ErrTransport, fmt.Sprintf("malformed backend response (%s)", resp.Status))
		}
	}

	// error shape first; never trust data alongside it
	if env.Error != nil && env.Error.Error != "" {
		return apperr.New(codeForStatus(resp.StatusCode), env.Error.Error)
	}
	if resp.StatusCode >= 300 {
		return apperr.New(codeForStatus(resp.StatusCode), fallbackMessage(resp.StatusCode))
	}

	if out != nil {
		if len(env.Data) == 0 {
			return apperr.New(apperr.ErrTransport, "backend response missing data")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperr.New(apperr.ErrTransport, "undecodable backend payload: "+err.Error())
		}
	}
	return nil
}

func codeForStatus(status int) apperr.ErrCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperr.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperr.ErrAuthorization
	case http.StatusNotFound:
		return apperr.ErrNotFound
	case http.StatusConflict:
		return apperr.ErrConflict
	case http.StatusPreconditionFailed:
		return apperr.ErrPrecondition
	default:
		return apperr.ErrTransport
	}
}

func fallbackMessage(status int) string {
	switch codeForStatus(status) {
	case apperr.ErrValidation:
		return "request rejected by the server"
	case apperr.ErrAuthorization:
		return "not allowed"
	case apperr.ErrNotFound:
		return "not found"
	case apperr.ErrConflict:
		return "conflicting change, reload and retry"
	case apperr.ErrPrecondition:
		return "precondition failed"
	default:
		return "backend error"
	}
}
