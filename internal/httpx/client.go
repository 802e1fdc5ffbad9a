// Package httpx is the shared HTTP transport for the remote auth and
// shopping services: one pooled client, per-request contexts, bearer and
// user-id headers injected from the current session.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopapp/shopping-client/internal/apperr"
	"github.com/shopapp/shopping-client/internal/logger"
)

// CredentialSource supplies the current session's identity for outbound
// calls. Implemented by the session store.
type CredentialSource interface {
	Current() (userID, token string, ok bool)
}

// Client wraps a reusable http.Client bound to one service base URL.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	logger  logger.ZapLogger
}

// New builds a client for the given base URL. The timeout bounds each whole
// request; per-call contexts may shorten it further.
func New(baseURL string, timeout time.Duration, creds CredentialSource, log logger.ZapLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
		creds:  creds,
		logger: log,
	}
}

// errorBody is the error payload shape both services use. The shopping
// service puts the text under "error", the auth service under "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (b errorBody) reason() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}

// Do performs one JSON round trip. A nil body sends no payload; a nil out
// discards the response body. Non-2xx statuses come back as classified
// apperr values carrying the HTTP status.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(err, apperr.Unknown, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return apperr.Wrap(err, apperr.Unknown, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.New().String())

	if c.creds != nil {
		if userID, token, ok := c.creds.Current(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("userId", userID)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed before reaching service",
			zap.String("method", method), zap.String("url", fullURL), zap.Error(err))
		return apperr.Wrap(err, apperr.NetworkUnavailable, "service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperr.Wrap(err, apperr.Unknown, "decode response body")
		}
		return nil
	}

	return c.classify(resp)
}

// classify maps a non-2xx response to the error taxonomy.
func (c *Client) classify(resp *http.Response) error {
	var eb errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		reason := eb.reason()
		if reason == "" {
			reason = "credential rejected, please log in again"
		}
		return apperr.New(apperr.AuthExpired, reason).WithStatus(resp.StatusCode)
	case http.StatusConflict, http.StatusBadRequest, http.StatusUnprocessableEntity:
		reason := eb.reason()
		if reason == "" {
			reason = "request rejected by service"
		}
		return apperr.New(apperr.ValidationRejected, reason).WithStatus(resp.StatusCode)
	default:
		reason := eb.reason()
		if reason == "" {
			reason = "service returned " + resp.Status
		}
		return apperr.New(apperr.Unknown, reason).WithStatus(resp.StatusCode)
	}
}
