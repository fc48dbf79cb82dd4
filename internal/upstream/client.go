// Package upstream is the typed client for the remote sportsmate REST
// backend. It owns the only client-side state in the application: the
// bearer token (and optional remembered email) in a TokenStore. Every
// other entity it returns is a read-only snapshot shaped by the backend.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/minjaekim/sportsmate-web/internal/pkg/logger"
	apperrors "github.com/minjaekim/sportsmate-web/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// forbiddenRetryDelay is how long a forbidden-retry request waits before
// its single second attempt. Variable so tests can shorten it.
var forbiddenRetryDelay = 500 * time.Millisecond

// ListPolicy controls how listing calls report failures.
type ListPolicy int

const (
	// FailSoft logs the failure and returns an empty slice. Listing pages
	// degrade to an empty list instead of an error screen.
	FailSoft ListPolicy = iota
	// FailFast returns the error to the caller.
	FailFast
)

// APIError is the single error classification raised by the client. It
// carries the HTTP status (0 for transport failures), a human-readable
// message, and unwraps to one of the pkg/errors sentinels.
type APIError struct {
	Status  int
	Message string
	kind    error
	cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() []error {
	errs := []error{e.kind}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

func classify(status int) error {
	switch status {
	case http.StatusBadRequest:
		return apperrors.ErrBadRequest
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusForbidden:
		return apperrors.ErrForbidden
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	default:
		return apperrors.ErrUpstream
	}
}

// Client performs one network round trip per call: header injection,
// JSON codec, error normalization. It does not retry (outside the explicit
// forbidden-retry option) and does not cache.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
	log     *logger.Logger
}

// New creates a client against baseURL. The TokenStore is injected so
// tests can substitute an in-memory fake.
func New(baseURL string, store TokenStore, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		store:   store,
		log:     log,
	}
}

// Store exposes the injected token store for session management.
func (c *Client) Store() TokenStore {
	return c.store
}

type requestConfig struct {
	headers        http.Header
	retryForbidden bool
}

type requestOption func(*requestConfig)

func withHeader(key, value string) requestOption {
	return func(cfg *requestConfig) {
		if cfg.headers == nil {
			cfg.headers = http.Header{}
		}
		cfg.headers.Set(key, value)
	}
}

// withForbiddenRetry retries once after a short delay when the backend
// answers 403. A token issued moments before a request can be rejected
// until it propagates backend-side; profile calls opt into this, nothing
// else does.
func withForbiddenRetry() requestOption {
	return func(cfg *requestConfig) {
		cfg.retryForbidden = true
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...requestOption) error {
	var cfg requestConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	err := c.roundTrip(ctx, method, path, body, out, cfg.headers)
	if cfg.retryForbidden && errors.Is(err, apperrors.ErrForbidden) {
		select {
		case <-ctx.Done():
			return &APIError{Message: ctx.Err().Error(), kind: apperrors.ErrUnavailable, cause: ctx.Err()}
		case <-time.After(forbiddenRetryDelay):
		}
		err = c.roundTrip(ctx, method, path, body, out, cfg.headers)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any, overrides http.Header) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: "encode request: " + err.Error(), kind: apperrors.ErrBadRequest, cause: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: "build request: " + err.Error(), kind: apperrors.ErrBadRequest, cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key := range overrides {
		req.Header.Set(key, overrides.Get(key))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: err.Error(), kind: apperrors.ErrUnavailable, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFrom(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// Non-JSON success bodies leave out at its zero value; callers must
	// tolerate both shapes.
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/json" {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &APIError{Status: resp.StatusCode, Message: "decode response: " + err.Error(), kind: apperrors.ErrUpstream, cause: err}
	}
	return nil
}

func (c *Client) errorFrom(resp *http.Response) *APIError {
	message := fmt.Sprintf("HTTP error %d", resp.StatusCode)

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil {
		switch {
		case body.Message != "":
			message = body.Message
		case body.Error != "":
			message = body.Error
		}
	}

	return &APIError{Status: resp.StatusCode, Message: message, kind: classify(resp.StatusCode)}
}

// envelope is the typical success wrapper the backend sends. Endpoints
// that answer with string status codes are decoded per-endpoint instead;
// there is no single universal schema.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    *T     `json:"data"`
}

// listFailure applies the per-call policy to a failed listing fetch.
func listFailure[T any](c *Client, policy ListPolicy, what string, err error) ([]T, error) {
	if policy == FailFast {
		return nil, err
	}
	c.log.Error("fetch %s: %v", what, err)
	return []T{}, nil
}
