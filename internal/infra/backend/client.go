// Package backend proxies admin operations to the external MUTANT backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mutant-admin/config"
	deliverycontext "mutant-admin/internal/delivery/context"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Client sends authenticated JSON requests to the backend. The bearer is taken
// from the request context on every call; nothing is cached between calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    service.MetricsRecorder
}

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder
}

// NewClient creates the backend client from configuration.
func NewClient(params ClientParams) *Client {
	return newClient(params.Config.Backend.BaseURL, params.Config.Backend.Timeout, params.Logger, params.Metrics)
}

func newClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics service.MetricsRecorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// A zero timeout leaves requests bounded only by their context.
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// call describes one backend request.
type call struct {
	method string
	path   string
	// route is the path template used as the metrics label.
	route string
	query url.Values
	body  any
}

// do executes the call and returns the raw body of a 2xx answer.
func (c *Client) do(ctx context.Context, req call) ([]byte, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var reader io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if reader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := deliverycontext.GetBackendToken(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.ObserveUpstream(req.method, req.route, 0, time.Since(start))
		logger.Error("Backend request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(err, "backend %s %s", req.method, req.path)
	}
	defer resp.Body.Close()

	c.metrics.ObserveUpstream(req.method, req.route, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		message := extractMessage(raw)
		logger.Warn("Backend returned non-success status",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message),
		)

		return nil, domainerrors.NewBackendError(resp.StatusCode, message, req.path)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read backend %s %s", req.method, req.path)
	}

	return raw, nil
}

// extractMessage finds a human message in {message}, {error: "..."} or {error: {message}}.
func extractMessage(raw []byte) string {
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	if len(body.Error) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(body.Error, &text); err == nil {
		return text
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil {
		return nested.Message
	}

	return ""
}

// segment escapes one path parameter.
func segment(value string) string {
	return url.PathEscape(value)
}
