// Package timer provides frame-driven cancellable callbacks.
//
// The scheduler owns a virtual clock that only moves when Advance is called
// by the host frame loop. Callbacks run synchronously inside Advance, in due
// order, and a cancelled timer never fires again, even when it is cancelled
// by another callback running in the same Advance.
package timer

import "time"

// Scope groups timers so a level load can drop level-bound callbacks while
// keeping run-bound ones (invincibility, revival countdowns).
type Scope int

const (
	ScopeLevel Scope = iota
	ScopeRun
)

// Timer is a handle to a scheduled callback.
type Timer struct {
	id        uint64
	due       time.Duration
	interval  time.Duration // 0 = one-shot
	scope     Scope
	fn        func()
	cancelled bool
	done      bool
}

// Cancel stops the timer. Safe on nil and on timers that already fired.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the timer can still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.cancelled && !t.done
}

// Due returns the clock time of the next firing.
func (t *Timer) Due() time.Duration {
	if t == nil {
		return 0
	}
	return t.due
}

type Scheduler struct {
	now    time.Duration
	nextID uint64
	timers []*Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual clock time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, delay from now.
func (s *Scheduler) After(delay time.Duration, scope Scope, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, scope, fn)
}

// Every schedules fn to run each interval, starting one interval from now.
func (s *Scheduler) Every(interval time.Duration, scope Scope, fn func()) *Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, scope, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, scope Scope, fn func()) *Timer {
	s.nextID++
	t := &Timer{
		id:       s.nextID,
		due:      s.now + delay,
		interval: interval,
		scope:    scope,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires every timer that falls
// due on the way. Callbacks observe Now() equal to their own due time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.done = true
		}
		if next.fn != nil {
			next.fn()
		}
	}

	s.now = target
	s.compact()
}

// nextDue returns the earliest active timer due at or before target.
// Ties resolve in scheduling order.
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if !t.Active() || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.Active() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept
}

// Cancel stops every pending timer in the given scope.
func (s *Scheduler) Cancel(scope Scope) {
	for _, t := range s.timers {
		if t.scope == scope {
			t.Cancel()
		}
	}
	s.compact()
}

// CancelAll stops every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.Cancel()
	}
	s.compact()
}

// Pending returns the number of timers that can still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Active() {
			n++
		}
	}
	return n
}
