package hover

// jiggleFailSafeTicks bounds how many polls an unacknowledged handshake may
// suppress before the armed state is force-cleared. A widget destroyed with
// a handshake in flight never delivers the move notification, and without
// this bound the instance would stay stuck armed forever.
const jiggleFailSafeTicks = 3

// jiggleState is the two-phase handshake state. While armed, the instance's
// poll is fully suppressed and no second handshake may start.
type jiggleState struct {
	armed  bool
	origin Point
	missed int // suppressed polls since arming, for the fail-safe
}

// MoveEvent is a real pointer-move notification as delivered by the host
// message pump, addressed to a specific widget.
type MoveEvent struct {
	Target Handle
	Pos    Point
}

// armJiggle starts a handshake: displace the cursor by the smallest offset
// that stays inside the cached rect, remembering the origin for restore.
// No-op when a handshake is already in flight or when no in-bounds
// displacement exists (degenerate rect).
func (e *Engine) armJiggle(inst *instance) {
	if inst.jiggle.armed {
		return
	}
	cur, err := e.native.CursorPos()
	if err != nil {
		return
	}
	j := inst.cfg.JigglePixels
	candidates := [4]Point{
		{cur.X, cur.Y + j},
		{cur.X, cur.Y - j},
		{cur.X + j, cur.Y},
		{cur.X - j, cur.Y},
	}
	for _, p := range candidates {
		if !inst.rect.Contains(p) {
			continue
		}
		inst.jiggle = jiggleState{armed: true, origin: cur}
		e.native.SetCursorPos(p)
		return
	}
}

// OnMove acknowledges an in-flight handshake: the first move notification
// addressed to an armed instance's widget restores the cursor to the exact
// pre-arm coordinates and disarms. Moves for other widgets, or while not
// armed, are ignored; ordinary pointer motion is tracked by the poll, not
// here.
func (e *Engine) OnMove(ev MoveEvent) {
	inst, ok := e.byHandle[ev.Target]
	if !ok || !inst.jiggle.armed {
		return
	}
	e.native.SetCursorPos(inst.jiggle.origin)
	inst.jiggle = jiggleState{}
}

// jiggleMissedTick records one suppressed poll and force-clears the armed
// state once the fail-safe bound is hit, restoring the cursor best-effort.
func (e *Engine) jiggleMissedTick(inst *instance) {
	inst.jiggle.missed++
	if inst.jiggle.missed < jiggleFailSafeTicks {
		return
	}
	e.native.SetCursorPos(inst.jiggle.origin)
	inst.jiggle = jiggleState{}
}
