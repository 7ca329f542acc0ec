// Package session tracks in-progress clock-in sessions as elapsed wall-clock
// time from a fixed start instant.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
)

// State of the session timer state machine.
type State string

const (
	StateNotClockedIn State = "not_clocked_in"
	StateClockedIn    State = "clocked_in"
)

// TickInterval is the cadence at which running sessions report elapsed time.
const TickInterval = time.Second

// Clock abstracts time.Now for tests.
type Clock func() time.Time

// Timer is the per-employee session state machine:
//
//	NotClockedIn -> ClockedIn  (successful clock-in, or resume from a record)
//	ClockedIn    -> NotClockedIn (successful clock-out)
//
// Elapsed time is always computed as now minus the clock-in instant, never
// accumulated tick by tick, so missed ticks self-correct on the next one.
// Transitions happen only after the upstream submission succeeded; a failed
// submission leaves the machine untouched.
type Timer struct {
	mu        sync.Mutex
	state     State
	clockInAt time.Time
	now       Clock
}

// NewTimer returns a timer in NotClockedIn. A nil clock means time.Now.
func NewTimer(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{state: StateNotClockedIn, now: now}
}

// Resume reconstructs the running state from today's attendance record: a
// first clock-in without a clock-out means the session is still open and the
// stored instant becomes the start. Without this a restart would silently
// lose the running timer.
func (t *Timer) Resume(rec *attendance.DayRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rec != nil && rec.HasOpenSession() {
		t.state = StateClockedIn
		t.clockInAt = *rec.FirstClockIn
		return
	}
	t.state = StateNotClockedIn
	t.clockInAt = time.Time{}
}

// ClockIn transitions to ClockedIn from the given instant.
func (t *Timer) ClockIn(at time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateClockedIn {
		return attendance.ErrAlreadyClockedIn
	}
	t.state = StateClockedIn
	t.clockInAt = at
	return nil
}

// ClockOut transitions back to NotClockedIn.
func (t *Timer) ClockOut() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateClockedIn {
		return attendance.ErrNotClockedIn
	}
	t.state = StateNotClockedIn
	t.clockInAt = time.Time{}
	return nil
}

// State returns the current machine state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Elapsed returns the time since clock-in, or zero when no session is open.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateClockedIn {
		return 0
	}
	return t.now().Sub(t.clockInAt)
}

// Tick describes one observation of a running session.
type Tick struct {
	State          State `json:"state"`
	ElapsedSeconds int64 `json:"elapsed_seconds"`
}

// Snapshot captures the current tick.
func (t *Timer) Snapshot() Tick {
	return Tick{
		State:          t.State(),
		ElapsedSeconds: int64(t.Elapsed() / time.Second),
	}
}

// Run emits a tick every TickInterval until the context is cancelled or the
// session leaves ClockedIn. The final NotClockedIn tick is emitted before
// returning so consumers see the stop.
func (t *Timer) Run(ctx context.Context, emit func(Tick)) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick := t.Snapshot()
			emit(tick)
			if tick.State != StateClockedIn {
				return
			}
		}
	}
}
