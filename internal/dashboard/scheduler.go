// Package dashboard holds the state machines behind the admin dashboard
// screens: the moderation boards, the mission board, the single open row
// menu, transient notices and the authentication context.
package dashboard

import (
	"time"

	"mutant-admin/config"
)

// Timer is a scheduled call that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler schedules on the runtime timers.
func SystemScheduler() Scheduler {
	return systemScheduler{}
}

// Timings are the delays of the moderation workflow.
type Timings struct {
	// RefetchDelay separates a successful action from the list reload.
	RefetchDelay   time.Duration
	SuccessDismiss time.Duration
	ErrorDismiss   time.Duration
}

// DefaultTimings matches the browser dashboard.
func DefaultTimings() Timings {
	return Timings{
		RefetchDelay:   1500 * time.Millisecond,
		SuccessDismiss: 1500 * time.Millisecond,
		ErrorDismiss:   5 * time.Second,
	}
}

// TimingsFromConfig reads the moderation section, keeping defaults for unset values.
func TimingsFromConfig(cfg config.ModerationConfig) Timings {
	timings := DefaultTimings()
	if cfg.RefetchDelay > 0 {
		timings.RefetchDelay = cfg.RefetchDelay
	}
	if cfg.SuccessDismiss > 0 {
		timings.SuccessDismiss = cfg.SuccessDismiss
	}
	if cfg.ErrorDismiss > 0 {
		timings.ErrorDismiss = cfg.ErrorDismiss
	}

	return timings
}
