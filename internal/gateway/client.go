// Package gateway is the only part of the admin client that talks to the
// remote API. Each call is a single request/response; there is no caching and
// no retry at this layer.
package gateway

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

	"tokoadmin/internal/logging"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Credentials supplies the bearer token attached to each request.
type Credentials interface {
	Credential() (string, bool)
}

// Config configures a Client.
type Config struct {
	BaseURL string
	// Timeout is zero by default, leaving the transport's own behavior in place.
	Timeout time.Duration
	// Transport overrides http.DefaultTransport.
	Transport http.RoundTripper
}

// Client is a typed wrapper around the remote storefront API.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	creds   Credentials
	log     *logrus.Logger
}

// NewClient creates a Client for cfg.BaseURL authorizing with creds.
func NewClient(cfg Config, creds Credentials, logger *logrus.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme must be http or https", cfg.BaseURL)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		baseURL: base,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		creds: creds,
		log:   logger,
	}, nil
}

func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.Join(segments, "/")
	u.RawPath = c.baseURL.EscapedPath() + "/" + strings.Join(escaped, "/")
	return u.String()
}

// do performs one request. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded response.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	requestID := uuid.New().String()
	entry := c.log.WithFields(logrus.Fields{
		"method":     method,
		"url":        endpoint,
		"request_id": requestID,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			entry.Errorf("Gateway: failed to marshal request body: %v", err)
			return unknownError(fmt.Errorf("failed to encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		entry.Errorf("Gateway: failed to create request: %v", err)
		return unknownError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token, ok := c.creds.Credential(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			entry.Debug("Gateway: no credential available, sending request unauthenticated")
		}
	}

	entry.Debug("Gateway: sending request")
	resp, err := c.client.Do(req)
	if err != nil {
		entry.Warnf("Gateway: request failed without response: %v", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		entry.Warnf("Gateway: failed to read response body: %v", err)
		return unknownError(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gwErr := serverError(resp.StatusCode, respBody)
		entry.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"kind":   gwErr.Kind.String(),
		}).Warnf("Gateway: server rejected request: %s", gwErr.Message)
		return gwErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		entry.WithField("status", resp.StatusCode).Debug("Gateway: request completed")
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		entry.Errorf("Gateway: failed to decode response: %v", err)
		return unknownError(fmt.Errorf("failed to decode response: %w", err))
	}
	entry.WithField("status", resp.StatusCode).Debug("Gateway: request completed")
	return nil
}

// IsAuthFailure reports whether err is the server refusing the credential.
func IsAuthFailure(err error) bool {
	var gwErr *Error
	if !errors.As(err, &gwErr) || gwErr.Kind != KindServer {
		return false
	}
	return gwErr.StatusCode == http.StatusUnauthorized || gwErr.StatusCode == http.StatusForbidden
}
