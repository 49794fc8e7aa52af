package hover

import "time"

// Row index sentinels for the tracked hit state.
const (
	// HitNone means the pointer is over the widget but not over any row.
	HitNone = -1
	// hitUnknown is the initial state before the first hit test.
	hitUnknown = -2
)

// InstanceID identifies a registration. IDs are never reused within an
// Engine's lifetime.
type InstanceID int64

// instance is the per-widget tracking state. All fields are owned by the
// engine's single logical thread.
type instance struct {
	id     InstanceID
	handle Handle
	owner  string
	cfg    Config

	// rect is the cached widget rectangle. Valid only within the current
	// tick; refreshed immediately before use.
	rect Rect

	lastHit     int
	lastPointer Point

	// deadline suppresses polling entirely while now < deadline. It absorbs
	// the burst of hit-state churn right after a scroll.
	deadline time.Time

	jiggle jiggleState
}

// poll runs one hit-tracking cycle against an instance. The caller must
// have refreshed inst.rect in the same tick.
//
// Native hover highlighting is driven only by real pointer-move events, so
// when content scrolls under a motionless pointer the highlighted row goes
// stale. The poll detects the computed hit index disagreeing with the last
// observed one and arms a jiggle to force the widget to recompute.
func (e *Engine) poll(inst *instance) {
	if !e.native.VisibleEnabled(inst.handle) {
		return
	}
	now := e.now()
	if now.Before(inst.deadline) {
		return
	}
	if inst.jiggle.armed {
		e.jiggleMissedTick(inst)
		return
	}

	ptr, err := e.native.CursorPos()
	if err != nil {
		return
	}
	moved := ptr != inst.lastPointer

	// Suspend tracking during drag/resize.
	if e.native.ButtonDown() {
		inst.lastPointer = ptr
		return
	}

	if !inst.rect.Contains(ptr) {
		if inst.lastHit != HitNone {
			e.native.SetHotRow(inst.handle, HitNone)
			inst.lastHit = HitNone
		}
		inst.lastPointer = ptr
		return
	}

	client, err := e.native.ScreenToClient(inst.handle, ptr)
	if err != nil {
		return
	}
	idx, err := e.native.HitTestRow(inst.handle, client)
	if err != nil {
		return
	}

	if idx != inst.lastHit {
		// A changed index without pointer movement (or right at the grace
		// boundary) means content moved under the cursor: the native hot
		// item is stale and only a synthetic move can refresh it.
		if idx >= 0 && (!moved || !now.After(inst.deadline)) {
			e.armJiggle(inst)
		}
		inst.lastHit = idx
	}
	inst.lastPointer = ptr
}
