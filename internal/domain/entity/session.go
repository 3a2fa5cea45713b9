package entity

import "time"

// Session is the gateway-side login state behind an issued token.
type Session struct {
	ID           string    `json:"id"`
	AdminID      string    `json:"adminId"`
	User         *User     `json:"user"`
	BackendToken string    `json:"backendToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	// Local marks sessions created from a configured operator account.
	Local        bool      `json:"local"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// TTL returns the remaining lifetime at now, never negative.
func (s *Session) TTL(now time.Time) time.Duration {
	if d := s.ExpiresAt.Sub(now); d > 0 {
		return d
	}

	return 0
}
