// Package client is the authenticated SDK for the admin gateway. The access
// token is read from Storage on every call, and a 401 answer clears the
// stored identity and sends the caller back to the login route.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "mutant-admin/internal/domain/errors"

	"github.com/pkg/errors"
)

// LoginRoute is where the navigator is sent after the token was rejected.
const LoginRoute = "/auth/login"

// ErrUnauthorized is returned when the gateway rejected the stored token.
var ErrUnauthorized = domainerrors.ErrUnauthorized

// Navigator moves the user to another dashboard route.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) {
	f(route)
}

type noopNavigator struct{}

func (noopNavigator) Navigate(string) {}

// APIError is a non-2xx answer carrying the gateway's message.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
	}

	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Client calls the gateway on behalf of a dashboard user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    Storage
	navigator  Navigator
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds every request. Requests are unbounded by default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithNavigator(navigator Navigator) Option {
	return func(c *Client) {
		c.navigator = navigator
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the gateway at baseURL.
func New(baseURL string, storage Storage, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		storage:    storage,
		navigator:  noopNavigator{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Storage returns the store the client reads its token from.
func (c *Client) Storage() Storage {
	return c.storage
}

// Navigator returns the configured navigator.
func (c *Client) Navigator() Navigator {
	return c.navigator
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// anonymous requests carry no bearer.
	anonymous bool
	// quiet requests leave the stored identity alone on 401.
	quiet bool
}

// do sends req and decodes a 2xx body into out when out is not nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var reader io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if reader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.anonymous {
		if token, ok := c.storage.Get(KeyAccessToken); ok && token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.method, req.path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s", req.method, req.path)
	}

	if resp.StatusCode == http.StatusUnauthorized && !req.quiet {
		c.expireIdentity()

		return errors.Wrapf(ErrUnauthorized, "%s %s", req.method, req.path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error("Unexpected response format",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Any("error", err),
		)

		return domainerrors.ErrUnexpectedFormat.WithDetails(req.path + ": " + err.Error())
	}

	return nil
}

// expireIdentity drops the stored identity and returns the user to the login route.
func (c *Client) expireIdentity() {
	if err := c.storage.Delete(IdentityKeys...); err != nil {
		c.logger.Warn("Failed to clear stored identity", slog.Any("error", err))
	}
	c.navigator.Navigate(LoginRoute)
}

func decodeAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}

	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Message

		var nested struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		var text string
		switch {
		case len(body.Error) == 0:
		case json.Unmarshal(body.Error, &nested) == nil:
			apiErr.Code = nested.Code
			if apiErr.Message == "" {
				apiErr.Message = nested.Message
			}
		case json.Unmarshal(body.Error, &text) == nil && apiErr.Message == "":
			apiErr.Message = text
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}

// ErrorMessage returns the text a dashboard shows for err.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return "An error occurred"
}
