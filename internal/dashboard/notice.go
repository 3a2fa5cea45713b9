package dashboard

import (
	"sync"
	"time"
)

// NoticeKind selects the banner style and its dismiss delay.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient banner.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notices holds at most one banner and dismisses it after its kind's delay.
// A newer banner replaces the current one and restarts the countdown.
type Notices struct {
	mu        sync.Mutex
	current   *Notice
	seq       uint64
	timer     Timer
	scheduler Scheduler
	timings   Timings
}

func NewNotices(scheduler Scheduler, timings Timings) *Notices {
	return &Notices{scheduler: scheduler, timings: timings}
}

func (n *Notices) Success(message string) {
	n.show(Notice{Kind: NoticeSuccess, Message: message}, n.timings.SuccessDismiss)
}

func (n *Notices) Error(message string) {
	n.show(Notice{Kind: NoticeError, Message: message}, n.timings.ErrorDismiss)
}

func (n *Notices) show(notice Notice, after time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = &notice
	n.timer = n.scheduler.AfterFunc(after, func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		if n.seq == seq {
			n.current = nil
			n.timer = nil
		}
	})
}

// Current returns the visible banner.
func (n *Notices) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Notice{}, false
	}

	return *n.current, true
}

// Dismiss hides the banner immediately.
func (n *Notices) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	n.current = nil
	n.timer = nil
}
