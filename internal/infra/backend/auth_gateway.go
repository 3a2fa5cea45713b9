package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

type authGateway struct {
	client *Client
}

// NewAuthGateway is the constructor for the backend authentication gateway.
func NewAuthGateway(client *Client) repository.AuthGateway {
	return &authGateway{client: client}
}

// loginTokens covers the token field names the backend has used.
type loginTokens struct {
	Token        string       `json:"token"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

func (t loginTokens) bearer() string {
	if t.AccessToken != "" {
		return t.AccessToken
	}

	return t.Token
}

func (g *authGateway) Login(ctx context.Context, email, password string) (*repository.BackendLogin, error) {
	raw, err := g.client.do(ctx, call{
		method: http.MethodPost,
		path:   loginPath,
		route:  loginPath,
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	})
	if err != nil {
		return nil, err
	}

	var body struct {
		loginTokens
		Data *loginTokens `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails(loginPath + ": " + err.Error())
	}

	tokens := body.loginTokens
	if body.Data != nil {
		if tokens.bearer() == "" {
			tokens.Token, tokens.AccessToken = body.Data.Token, body.Data.AccessToken
		}
		if tokens.RefreshToken == "" {
			tokens.RefreshToken = body.Data.RefreshToken
		}
		if tokens.User == nil {
			tokens.User = body.Data.User
		}
	}
	if tokens.bearer() == "" {
		return nil, domainerrors.ErrUnexpectedFormat.WithDetails(loginPath + ": no token in response")
	}

	return &repository.BackendLogin{
		Token:        tokens.bearer(),
		RefreshToken: tokens.RefreshToken,
		User:         tokens.User,
	}, nil
}

func (g *authGateway) Logout(ctx context.Context) error {
	_, err := g.client.do(ctx, call{
		method: http.MethodPost,
		path:   logoutPath,
		route:  logoutPath,
	})

	return err
}
