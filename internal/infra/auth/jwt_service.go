// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"mutant-admin/config"
	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenIssuer = "mutant-admin"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Tokens live as long as the sessions they point at.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.Auth.SessionTTL,
		now:    time.Now,
	}, nil
}

// Issue signs an HS256 token whose sid claim names the session.
func (s *jwtService) Issue(session *entity.Session) (string, error) {
	if session == nil || session.ID == "" {
		return "", errors.New("session id is required")
	}

	issuedAt := s.now()
	expiresAt := session.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = issuedAt.Add(s.ttl)
	}

	var role string
	if session.User != nil {
		role = session.User.Role.String()
	}

	claims := service.Claims{
		SessionID: session.ID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   session.AdminID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

// Validate checks the signature, issuer and expiry of a token string.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}
	if claims.SessionID == "" {
		return nil, errors.New("invalid session token: missing sid")
	}

	return claims, nil
}

// TTL returns the configured lifetime of session tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
