// Package gateway is the single HTTP client for the reservation backend.
// It attaches the bearer token of the current session to every request and
// classifies every failure into the apperr taxonomy, so domain clients stay
// free of transport concerns.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetspace/roomclient/internal/apperr"
)

// TokenSource supplies the current session token. An empty string means the
// request is sent unauthenticated and the server decides whether to reject.
type TokenSource interface {
	Token() string
}

// Client wraps net/http with base URL, auth header and error classification.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         *zap.Logger
}

// NewClient creates a gateway client for the given backend base URL.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// SetUnauthorizedHook registers the callback invoked whenever the backend
// answers 401. The session manager uses it to tear the session down; only
// the gateway and the auth flow may trigger session mutation.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// Get issues GET path?query and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, false)
}

// Post issues POST path with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, false)
}

// PostCredentials issues POST path for a credential exchange (login,
// register). A 401 here means the submitted credentials were rejected, not
// that the current session expired: the unauthorized hook does not fire and
// the server's message is surfaced to the form.
func (c *Client) PostCredentials(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, true)
}

// Put issues PUT path with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, false)
}

// Delete issues DELETE path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, false)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, credentialExchange bool) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(apperr.KindUnexpected, "failed to encode request", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperr.Wrap(apperr.KindConnectivity,
			"Unable to connect to the server. Please check your connection.", err)
	}
	defer resp.Body.Close()

	c.logger.Info("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if credentialExchange && resp.StatusCode == http.StatusUnauthorized {
			return rejectedCredentials(resp)
		}
		cerr := classify(resp)
		if cerr.Kind == apperr.KindAuthentication && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return cerr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.KindUnexpected, "failed to decode response", err)
	}
	return nil
}

// errorBody is the backend's error envelope. Some endpoints use "message",
// older ones use "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// classify maps a non-2xx response onto the error taxonomy, preferring the
// server-supplied message for statuses outside the well-known set.
func classify(resp *http.Response) *apperr.Error {
	status := resp.StatusCode
	switch {
	case status == http.StatusUnauthorized:
		return apperr.New(apperr.KindAuthentication, status,
			"Session expired. Please login again to continue.")
	case status == http.StatusForbidden:
		return apperr.New(apperr.KindAuthorization, status,
			"You don't have permission to access this resource.")
	case status == http.StatusNotFound:
		return apperr.New(apperr.KindNotFound, status,
			"The requested resource does not exist.")
	case status >= 500:
		return apperr.New(apperr.KindServer, status,
			"Something went wrong on our end. Please try again later.")
	}

	if msg := serverMessage(resp.Body); msg != "" {
		return apperr.New(apperr.KindUnexpected, status, msg)
	}
	return apperr.New(apperr.KindUnexpected, status,
		fmt.Sprintf("An unexpected error occurred (status %d).", status))
}

// rejectedCredentials classifies a 401 on a credential exchange. Unlike the
// general 401 case, the prior session (if any) is still good and the server's
// verdict on the submitted credentials is what the user needs to see.
func rejectedCredentials(resp *http.Response) *apperr.Error {
	msg := serverMessage(resp.Body)
	if msg == "" {
		msg = "Invalid username or password."
	}
	return apperr.New(apperr.KindAuthentication, resp.StatusCode, msg)
}

func serverMessage(body io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(body).Decode(&eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}
