package entity

import (
	"net/url"
	"strconv"
	"strings"
)

// ModerationStatus is the review state of a KYC record or refund request.
//
//	pending -> approved
//	pending -> rejected
//
// approved and rejected are terminal.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// ParseModerationStatus normalizes a status string coming from the wire.
func ParseModerationStatus(s string) (ModerationStatus, bool) {
	switch status := ModerationStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case StatusPending, StatusApproved, StatusRejected:
		return status, true
	default:
		return "", false
	}
}

func (s ModerationStatus) String() string {
	return string(s)
}

// IsPending reports whether the record still awaits a decision.
func (s ModerationStatus) IsPending() bool {
	return s == StatusPending
}

// IsTerminal reports whether no further transition is offered.
func (s ModerationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether moving from s to next follows the one-way shape.
func (s ModerationStatus) CanTransition(next ModerationStatus) bool {
	return s == StatusPending && next.IsTerminal()
}

// StatusFilter selects which records a moderation list shows.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterPending  StatusFilter = StatusFilter(StatusPending)
	FilterApproved StatusFilter = StatusFilter(StatusApproved)
	FilterRejected StatusFilter = StatusFilter(StatusRejected)
)

// ParseStatusFilter maps a query value to a filter. An empty value means all.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(FilterAll) {
		return FilterAll, true
	}
	if status, ok := ParseModerationStatus(s); ok {
		return StatusFilter(status), true
	}

	return "", false
}

// QueryValue returns the status to send upstream. FilterAll is never sent.
func (f StatusFilter) QueryValue() (string, bool) {
	if f == "" || f == FilterAll {
		return "", false
	}

	return string(f), true
}

// Matches reports whether a record with the given status passes the filter.
func (f StatusFilter) Matches(status ModerationStatus) bool {
	if value, ok := f.QueryValue(); ok {
		return value == string(status)
	}

	return true
}

// ListQuery carries the filter and server-driven pagination of a list call.
type ListQuery struct {
	Status StatusFilter
	Page   int
	Limit  int
}

// Values encodes the query for the backend. Zero page/limit are omitted.
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	if status, ok := q.Status.QueryValue(); ok {
		values.Set("status", status)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	return values
}
