package service

import "time"

// MetricsRecorder counts what the gateway does on behalf of admins.
type MetricsRecorder interface {
	// ObserveUpstream records one backend call.
	ObserveUpstream(method, route string, status int, elapsed time.Duration)

	// CountDecision records one accepted moderation decision.
	CountDecision(resource, decision string)

	// CountSessionEvent records logins, logouts and rejected tokens.
	CountSessionEvent(event string)
}
