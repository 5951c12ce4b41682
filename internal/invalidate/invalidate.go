package invalidate

import (
	"time"
)

// Signal is the wake primitive shared between the media watcher and
// the render loop. Notify never blocks, and a notification delivered
// while nobody is waiting is remembered, so the next Wait returns at
// once instead of sleeping through it.
type Signal struct {
	ch chan struct{}
}

func New() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Notify requests a re-render. Notifications arriving before the next
// Wait coalesce into one.
func (s *Signal) Notify() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until Notify is called or the timeout elapses. It
// reports true when woken by a notification.
func (s *Signal) Wait(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-s.ch:
		return true
	case <-timer.C:
		return false
	}
}
