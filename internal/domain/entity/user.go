package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// User is any platform account as the backend returns it: instructor, student
// (recruit), affiliate, institution or admin.
type User struct {
	ID        string         `json:"_id"`
	FirstName string         `json:"firstName,omitempty"`
	LastName  string         `json:"lastName,omitempty"`
	Username  string         `json:"username,omitempty"`
	Email     string         `json:"email,omitempty"`
	Role      Role           `json:"role,omitempty"`
	Status    string         `json:"status,omitempty"`
	Profile   *Profile       `json:"profile,omitempty"`
	Stats     map[string]any `json:"stats,omitempty"`
	Earnings  map[string]any `json:"earnings,omitempty"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
}

// Profile holds the public-facing part of an account.
type Profile struct {
	Avatar  *Avatar           `json:"avatar,omitempty"`
	Bio     string            `json:"bio,omitempty"`
	Socials map[string]string `json:"socials,omitempty"`
}

type Avatar struct {
	URL string `json:"url,omitempty"`
}

// UnmarshalJSON accepts both "_id" and "id" as the identifier.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.AltID
	}

	return nil
}

// Identity implements Identifiable.
func (u User) Identity() string {
	return u.ID
}

// DisplayName returns the best human-readable name available.
func (u User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	switch {
	case full != "":
		return full
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// IsActive reports whether the account status is active. An empty status counts as active.
func (u User) IsActive() bool {
	return u.Status == "" || strings.EqualFold(u.Status, "active")
}
