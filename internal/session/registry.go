package session

import (
	"context"
	"sync"
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/sse"
)

// TickEvent is the SSE event name for session timer updates.
const TickEvent = "session_tick"

// Registry owns one Timer per employee and publishes their ticks to the SSE
// hub while a session is open. The tick goroutine is cancelled on clock-out,
// so nothing keeps updating state after the session ended.
type Registry struct {
	mu     sync.Mutex
	timers map[string]*Timer
	loops  map[string]*tickLoop
	hub    *sse.Hub
	now    Clock
}

// tickLoop identifies one running tick goroutine. Loops are compared by
// pointer so a finishing goroutine can never unregister a successor that
// reused its employee key.
type tickLoop struct {
	cancel context.CancelFunc
}

// NewRegistry creates an empty registry publishing to hub. A nil clock means
// time.Now.
func NewRegistry(hub *sse.Hub, now Clock) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		timers: make(map[string]*Timer),
		loops:  make(map[string]*tickLoop),
		hub:    hub,
		now:    now,
	}
}

// timer returns the employee's timer, creating it on first use. Caller holds mu.
func (r *Registry) timer(employeeID string) *Timer {
	t, ok := r.timers[employeeID]
	if !ok {
		t = NewTimer(r.now)
		r.timers[employeeID] = t
	}
	return t
}

// Resume reconstructs the employee's timer from today's attendance record
// and starts ticking if a session is open.
func (r *Registry) Resume(employeeID string, rec *attendance.DayRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.timer(employeeID)
	t.Resume(rec)
	if t.State() == StateClockedIn {
		r.startTicking(employeeID, t)
	} else {
		r.stopTicking(employeeID)
	}
}

// ClockIn transitions the employee's timer and starts the tick loop. Called
// only after the upstream submission succeeded.
func (r *Registry) ClockIn(employeeID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.timer(employeeID)
	if err := t.ClockIn(at); err != nil {
		return err
	}
	r.startTicking(employeeID, t)
	return nil
}

// ClockOut stops the employee's session and its tick loop.
func (r *Registry) ClockOut(employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.timer(employeeID)
	if err := t.ClockOut(); err != nil {
		return err
	}
	r.stopTicking(employeeID)
	return nil
}

// Snapshot returns the employee's current tick without mutating anything.
func (r *Registry) Snapshot(employeeID string) Tick {
	r.mu.Lock()
	t, ok := r.timers[employeeID]
	r.mu.Unlock()
	if !ok {
		return Tick{State: StateNotClockedIn}
	}
	return t.Snapshot()
}

// startTicking launches the tick publisher for an open session. Caller holds mu.
func (r *Registry) startTicking(employeeID string, t *Timer) {
	if _, running := r.loops[employeeID]; running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	loop := &tickLoop{cancel: cancel}
	r.loops[employeeID] = loop
	go func() {
		defer func() {
			r.mu.Lock()
			// A clock-out/clock-in pair may have installed a new loop
			// under this key before the old goroutine drained.
			if r.loops[employeeID] == loop {
				delete(r.loops, employeeID)
			}
			r.mu.Unlock()
		}()
		t.Run(ctx, func(tick Tick) {
			r.hub.Publish(employeeID, sse.Event{
				UserID: employeeID,
				Event:  TickEvent,
				Data:   tick,
			})
		})
	}()
}

// stopTicking cancels the tick publisher if one is running. Caller holds mu.
func (r *Registry) stopTicking(employeeID string) {
	if loop, ok := r.loops[employeeID]; ok {
		loop.cancel()
		delete(r.loops, employeeID)
	}
}

// Shutdown cancels every running tick loop.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, loop := range r.loops {
		loop.cancel()
		delete(r.loops, id)
	}
}
