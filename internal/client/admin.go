package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
)

type listEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
}

type itemEnvelope[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// list fetches one page. A body without a data array is ErrUnexpectedFormat.
func list[T any](ctx context.Context, c *Client, path string, query url.Values) (*entity.Page[T], error) {
	var env listEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: path, query: query}, &env); err != nil {
		return nil, err
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails(path + ": data is not an array")
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails(path + ": " + err.Error())
	}

	return &entity.Page[T]{
		Items:      items,
		Page:       env.Page,
		Limit:      env.Limit,
		Total:      env.Total,
		TotalPages: env.TotalPages,
	}, nil
}

func item[T any](ctx context.Context, c *Client, req request) (*T, error) {
	var env itemEnvelope[T]
	if err := c.do(ctx, req, &env); err != nil {
		return nil, err
	}

	return env.Data, nil
}

// LoginResult is what a successful login hands back to the dashboard.
type LoginResult struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
	ExpiresAt    time.Time    `json:"expiresAt"`
}

// Login posts the credentials. A rejected login is an *APIError, not ErrUnauthorized.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/api/auth/login",
		body:      map[string]string{"email": email, "password": password},
		anonymous: true,
		quiet:     true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails("/api/auth/login: missing token")
	}

	return &out, nil
}

// Logout ends the server session for the stored token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/api/auth/logout", quiet: true}, nil)
}

// SessionInfo is the gateway's view of the current session.
type SessionInfo struct {
	User      *entity.User `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

func (c *Client) Session(ctx context.Context) (*SessionInfo, error) {
	return item[SessionInfo](ctx, c, request{method: http.MethodGet, path: "/api/auth/session"})
}

func (c *Client) ListKYC(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.KYCRecord], error) {
	return list[entity.KYCRecord](ctx, c, "/api/admin/kyc", query.Values())
}

// VerifyKYC moves the record owned by userID to status.
func (c *Client) VerifyKYC(ctx context.Context, userID string, status entity.ModerationStatus, reason, adminID string) (*entity.KYCRecord, error) {
	return item[entity.KYCRecord](ctx, c, request{
		method: http.MethodPatch,
		path:   "/api/admin/kyc/verify/" + url.PathEscape(userID),
		body: map[string]string{
			"status":  string(status),
			"reason":  reason,
			"adminId": adminID,
		},
	})
}

func (c *Client) DeleteKYC(ctx context.Context, userID string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/api/admin/kyc/" + url.PathEscape(userID)}, nil)
}

func (c *Client) ListRefunds(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Refund], error) {
	return list[entity.Refund](ctx, c, "/api/admin/payment/refund", query.Values())
}

func (c *Client) ApproveRefund(ctx context.Context, refundID, reason, adminID string) (*entity.Refund, error) {
	return c.decideRefund(ctx, refundID, "approve", reason, adminID)
}

func (c *Client) RejectRefund(ctx context.Context, refundID, reason, adminID string) (*entity.Refund, error) {
	return c.decideRefund(ctx, refundID, "reject", reason, adminID)
}

func (c *Client) decideRefund(ctx context.Context, refundID, action, reason, adminID string) (*entity.Refund, error) {
	return item[entity.Refund](ctx, c, request{
		method: http.MethodPut,
		path:   "/api/admin/payment/refund/" + url.PathEscape(refundID) + "/" + action,
		body:   map[string]string{"reason": reason, "adminId": adminID},
	})
}

func (c *Client) ListTransactions(ctx context.Context, status string, page, limit int) (*entity.Page[entity.Transaction], error) {
	query := entity.ListQuery{Page: page, Limit: limit}.Values()
	if status != "" {
		query.Set("status", status)
	}

	return list[entity.Transaction](ctx, c, "/api/admin/payment/transactions", query)
}

func (c *Client) ListMissions(ctx context.Context, page, limit int) (*entity.Page[entity.Mission], error) {
	return list[entity.Mission](ctx, c, "/api/admin/missions", entity.ListQuery{Page: page, Limit: limit}.Values())
}

func (c *Client) GetMission(ctx context.Context, id string) (*entity.Mission, error) {
	return item[entity.Mission](ctx, c, request{method: http.MethodGet, path: "/api/admin/missions/" + url.PathEscape(id)})
}

// SetMissionPublished toggles the publication of a mission.
func (c *Client) SetMissionPublished(ctx context.Context, id string, published bool) (*entity.Mission, error) {
	return item[entity.Mission](ctx, c, request{
		method: http.MethodPut,
		path:   "/api/admin/missions/" + url.PathEscape(id) + "/publish",
		body:   map[string]bool{"isPublished": published},
	})
}

func (c *Client) DeleteMission(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/api/admin/missions/" + url.PathEscape(id)}, nil)
}

// ListUsers lists one user collection: instructors, students, affiliates, institutions or users.
func (c *Client) ListUsers(ctx context.Context, collection string, page, limit int) (*entity.Page[entity.User], error) {
	return list[entity.User](ctx, c, "/api/admin/users/"+url.PathEscape(collection), entity.ListQuery{Page: page, Limit: limit}.Values())
}

func (c *Client) GetUser(ctx context.Context, collection, id string) (*entity.User, error) {
	return item[entity.User](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/admin/users/" + url.PathEscape(collection) + "/" + url.PathEscape(id),
	})
}

func (c *Client) DeleteUser(ctx context.Context, collection, id string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/api/admin/users/" + url.PathEscape(collection) + "/" + url.PathEscape(id),
	}, nil)
}

// History lists the decisions the gateway recorded, newest first.
func (c *Client) History(ctx context.Context, resource entity.ResourceKind, resourceID string, limit int) ([]entity.ModerationDecision, error) {
	query := entity.ListQuery{Limit: limit}.Values()
	if resource != "" {
		query.Set("resource", string(resource))
	}
	if resourceID != "" {
		query.Set("id", resourceID)
	}
	page, err := list[entity.ModerationDecision](ctx, c, "/api/admin/moderation/history", query)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}
