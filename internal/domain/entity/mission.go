package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// Publication is the single publication state of a mission.
type Publication string

const (
	PublicationDraft     Publication = "draft"
	PublicationPublished Publication = "published"
)

// Label is the human-readable status shown in listings.
func (p Publication) Label() string {
	if p == PublicationPublished {
		return "Published"
	}

	return "Draft"
}

// IsPublished reports whether the mission is visible to students.
func (p Publication) IsPublished() bool {
	return p == PublicationPublished
}

// ResolvePublication collapses the backend's status string and isPublished
// flag. Either one saying published is enough.
func ResolvePublication(status *string, isPublished *bool) Publication {
	if isPublished != nil && *isPublished {
		return PublicationPublished
	}
	if status != nil && strings.EqualFold(strings.TrimSpace(*status), string(PublicationPublished)) {
		return PublicationPublished
	}

	return PublicationDraft
}

// PublicationFromBool maps the publish toggle payload.
func PublicationFromBool(published bool) Publication {
	if published {
		return PublicationPublished
	}

	return PublicationDraft
}

// Mission is a course offered on the platform.
type Mission struct {
	ID            string           `json:"_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Category      string           `json:"category,omitempty"`
	Price         float64          `json:"price"`
	IsFree        bool             `json:"isFree"`
	Instructor    UserRef          `json:"instructor"`
	Levels        []map[string]any `json:"levels,omitempty"`
	Reviews       []map[string]any `json:"reviews,omitempty"`
	AverageRating float64          `json:"averageRating"`
	Publication   Publication      `json:"-"`
	CreatedAt     *time.Time       `json:"createdAt,omitempty"`
}

// Identity implements Identifiable.
func (m Mission) Identity() string {
	return m.ID
}

// SetPublished updates the publication state in place.
func (m *Mission) SetPublished(published bool) {
	m.Publication = PublicationFromBool(published)
}

func (m *Mission) UnmarshalJSON(data []byte) error {
	type alias Mission
	aux := struct {
		*alias
		AltID       string  `json:"id"`
		Status      *string `json:"status"`
		IsPublished *bool   `json:"isPublished"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = aux.AltID
	}
	m.Publication = ResolvePublication(aux.Status, aux.IsPublished)

	return nil
}

// MarshalJSON emits both wire representations so existing consumers keep working.
func (m Mission) MarshalJSON() ([]byte, error) {
	type alias Mission

	return json.Marshal(struct {
		alias
		Status      Publication `json:"status"`
		IsPublished bool        `json:"isPublished"`
	}{
		alias:       alias(m),
		Status:      m.Publication,
		IsPublished: m.Publication.IsPublished(),
	})
}
