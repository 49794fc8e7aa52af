// Package hover keeps a native list widget's hot-row highlight correct when
// content scrolls underneath a stationary pointer.
//
// The OS only recomputes hover highlighting on real pointer-move events. A
// wheel notch, gesture or keyboard navigation that scrolls rows under a
// motionless cursor therefore leaves the highlight on the wrong row. The
// engine polls whichever registered widget is under the pointer, detects the
// stale highlight, and manufactures an imperceptible self-cancelling cursor
// displacement (the "jiggle handshake") that forces the widget to recompute.
//
// The engine is single-threaded by design: it expects to be driven from one
// host message loop via the Hooks interface (OnTick, OnScroll, OnMove,
// OnKeyNav) and never locks. All native access goes through the injected
// NativeServices, and the clock is injectable, so everything is testable
// against fakes.
package hover

import (
	"fmt"
	"time"
)

// Hooks is the pump-facing surface of the engine. A host message loop
// forwards its timer ticks and input notifications through these methods;
// all of them are cheap and non-blocking.
type Hooks interface {
	OnTick()
	OnScroll(ScrollEvent)
	OnMove(MoveEvent)
	OnKeyNav(Handle)
}

// ScheduleFunc is notified whenever the shared timer should change: running
// reports whether a timer is wanted at all, period is the tick cadence.
// It is called on every registry mutation that changes either value.
type ScheduleFunc func(running bool, period time.Duration)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithNow injects a clock. The default is time.Now.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithScheduleFunc installs the timer-change callback.
func WithScheduleFunc(fn ScheduleFunc) Option {
	return func(e *Engine) { e.schedule = fn }
}

// Engine owns the registry of tracked widgets and the shared scheduler
// state. Not safe for concurrent use; drive it from a single loop.
type Engine struct {
	native   NativeServices
	now      func() time.Time
	schedule ScheduleFunc

	order    []*instance // registration order, the scan tie-break
	byID     map[InstanceID]*instance
	byHandle map[Handle]*instance

	active  *instance
	period  time.Duration
	running bool
	nextID  InstanceID
}

var _ Hooks = (*Engine)(nil)

// New constructs an engine over the given native services.
func New(native NativeServices, opts ...Option) *Engine {
	e := &Engine{
		native:   native,
		now:      time.Now,
		byID:     make(map[InstanceID]*instance),
		byHandle: make(map[Handle]*instance),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register resolves target, validates its native class, and begins hover
// tracking with the given config. Config values below the documented
// minimums are clamped. Registering a handle that is already tracked
// replaces the previous registration.
func (e *Engine) Register(target Target, cfg Config) (InstanceID, error) {
	h := target.Handle
	if h == 0 {
		var err error
		h, err = e.native.FindWindow(target.Query)
		if err != nil {
			return 0, fmt.Errorf("hover: resolve %s: %w", target, err)
		}
	}

	class, err := e.native.WindowClass(h)
	if err != nil {
		return 0, fmt.Errorf("hover: query class of %s: %w", target, err)
	}
	if class != ListViewClass {
		return 0, &ClassMismatchError{Target: target.String(), Want: ListViewClass, Got: class}
	}

	if prev, ok := e.byHandle[h]; ok {
		e.remove(prev)
	}

	cfg.normalize()
	e.nextID++
	inst := &instance{
		id:      e.nextID,
		handle:  h,
		owner:   cfg.Owner,
		cfg:     cfg,
		lastHit: hitUnknown,
	}

	// Pass-through widget configuration. Failures here are not fatal: the
	// widget may simply ignore the style.
	e.native.SetHoverStyle(h, cfg.Underline, cfg.OneClickActivate)
	e.native.SetHoverTime(h, cfg.HoverTimeout)

	e.order = append(e.order, inst)
	e.byID[inst.id] = inst
	e.byHandle[h] = inst
	e.reschedule()
	return inst.id, nil
}

// Unregister stops tracking an instance. Unknown ids are a no-op.
func (e *Engine) Unregister(id InstanceID) {
	inst, ok := e.byID[id]
	if !ok {
		return
	}
	e.remove(inst)
	e.reschedule()
}

// UnregisterGroup stops tracking every instance registered with the given
// owner. Unknown owners are a no-op.
func (e *Engine) UnregisterGroup(owner string) {
	removed := false
	for _, inst := range append([]*instance(nil), e.order...) {
		if inst.owner == owner {
			e.remove(inst)
			removed = true
		}
	}
	if removed {
		e.reschedule()
	}
}

// ForcePoll synchronously runs one poll cycle for an instance, outside the
// timer cadence. Unknown ids are a no-op.
func (e *Engine) ForcePoll(id InstanceID) {
	inst, ok := e.byID[id]
	if !ok {
		return
	}
	rect, err := e.native.WindowRect(inst.handle)
	if err != nil {
		return
	}
	inst.rect = rect
	e.poll(inst)
}

// InstanceStatus is one row of the diagnostic snapshot.
type InstanceStatus struct {
	ID             InstanceID
	Handle         Handle
	Owner          string
	Active         bool
	VisibleEnabled bool
	LastHit        int
}

// Status returns a read-only snapshot of every registration, in
// registration order.
func (e *Engine) Status() []InstanceStatus {
	out := make([]InstanceStatus, 0, len(e.order))
	for _, inst := range e.order {
		lastHit := inst.lastHit
		if lastHit == hitUnknown {
			lastHit = HitNone
		}
		out = append(out, InstanceStatus{
			ID:             inst.id,
			Handle:         inst.handle,
			Owner:          inst.owner,
			Active:         inst == e.active,
			VisibleEnabled: e.native.VisibleEnabled(inst.handle),
			LastHit:        lastHit,
		})
	}
	return out
}

// Running reports whether the shared scheduler wants a timer.
func (e *Engine) Running() bool { return e.running }

// Period returns the current shared tick cadence, zero when stopped.
func (e *Engine) Period() time.Duration { return e.period }

// remove deletes an instance from the registry without rescheduling.
func (e *Engine) remove(inst *instance) {
	for i, other := range e.order {
		if other == inst {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	delete(e.byID, inst.id)
	delete(e.byHandle, inst.handle)
	if e.active == inst {
		e.active = nil
	}
}

// reschedule recomputes the shared timer period as the minimum requested
// poll interval and notifies the schedule hook on any change.
func (e *Engine) reschedule() {
	if len(e.order) == 0 {
		if e.running {
			e.running = false
			e.period = 0
			if e.schedule != nil {
				e.schedule(false, 0)
			}
		}
		return
	}

	period := e.order[0].cfg.PollInterval
	for _, inst := range e.order[1:] {
		if inst.cfg.PollInterval < period {
			period = inst.cfg.PollInterval
		}
	}
	if e.running && period == e.period {
		return
	}
	e.running = true
	e.period = period
	if e.schedule != nil {
		e.schedule(true, period)
	}
}
