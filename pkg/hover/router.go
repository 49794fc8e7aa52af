package hover

import "time"

// ScrollSource classifies how a scroll notification was produced. The
// source decides which grace window applies.
type ScrollSource int

const (
	// SourceWheel is a discrete vertical wheel notch.
	SourceWheel ScrollSource = iota
	// SourceWheelHorizontal is a discrete horizontal wheel notch.
	SourceWheelHorizontal
	// SourcePointerWheel is a pointer-message wheel (touch/precision
	// devices), which arrives in rapid bursts.
	SourcePointerWheel
	// SourceGesture is a pan gesture.
	SourceGesture
	// SourceScrollbarV is a vertical scrollbar command.
	SourceScrollbarV
	// SourceScrollbarH is a horizontal scrollbar command.
	SourceScrollbarH
)

// ScrollCommand is the scrollbar command code for scrollbar sources.
type ScrollCommand int

const (
	CommandNone        ScrollCommand = iota
	CommandLineBack                  // line up / line left
	CommandLineForward               // line down / line right
	CommandPageBack                  // page up / page left
	CommandPageForward               // page down / page right
	CommandHome                      // top / leftmost
	CommandEnd                       // bottom / rightmost
	CommandThumbTrack                // continuous thumb drag
)

// ScrollEvent is a scroll/gesture notification from the host pump. Events
// are delivered process-wide: Target may name an unregistered widget or be
// zero, in which case the router resolves geometrically.
type ScrollEvent struct {
	Target  Handle
	Delta   int  // wheel delta; only the sign is used (positive scrolls up)
	Shift   bool // modifier indicating horizontal intent on a vertical wheel
	Source  ScrollSource
	Command ScrollCommand // scrollbar sources only
}

// Direction is the scroll direction derived from an event.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// direction derives the content movement direction from the event payload.
// Thumb-track drags have no single direction and yield DirectionNone.
func (ev ScrollEvent) direction() Direction {
	switch ev.Source {
	case SourceWheel, SourcePointerWheel, SourceGesture:
		if ev.Shift {
			// Horizontal intent: up maps to left, down to right.
			switch {
			case ev.Delta > 0:
				return DirectionLeft
			case ev.Delta < 0:
				return DirectionRight
			}
			return DirectionNone
		}
		switch {
		case ev.Delta > 0:
			return DirectionUp
		case ev.Delta < 0:
			return DirectionDown
		}
		return DirectionNone
	case SourceWheelHorizontal:
		switch {
		case ev.Delta > 0:
			return DirectionRight
		case ev.Delta < 0:
			return DirectionLeft
		}
		return DirectionNone
	case SourceScrollbarV:
		switch ev.Command {
		case CommandLineBack, CommandPageBack, CommandHome:
			return DirectionUp
		case CommandLineForward, CommandPageForward, CommandEnd:
			return DirectionDown
		}
		return DirectionNone
	case SourceScrollbarH:
		switch ev.Command {
		case CommandLineBack, CommandPageBack, CommandHome:
			return DirectionLeft
		case CommandLineForward, CommandPageForward, CommandEnd:
			return DirectionRight
		}
		return DirectionNone
	}
	return DirectionNone
}

// OnScroll routes a scroll/gesture notification: resolve the affected
// instance, arm its grace window, re-arm native hover tracking, and start a
// jiggle handshake unless the content is already at the relevant extreme.
func (e *Engine) OnScroll(ev ScrollEvent) {
	inst := e.resolveScrollTarget(ev.Target)
	if inst == nil {
		return
	}

	now := e.now()
	dir := ev.direction()

	// Pointer and gesture scrolling arrives in bursts, so it earns a longer
	// window than discrete wheel notches.
	var window time.Duration
	switch ev.Source {
	case SourcePointerWheel, SourceGesture:
		window = inst.cfg.PointerScrollGrace
	case SourceScrollbarV, SourceScrollbarH:
		window = inst.cfg.KeyboardGrace
	default:
		window = inst.cfg.ScrollGrace
	}
	inst.deadline = now.Add(window)

	// Reset the widget's auto-select countdown regardless of direction.
	e.native.RearmHoverTracking(inst.handle)

	if dir == DirectionNone {
		return
	}
	atExtreme, ok := e.atExtreme(inst, dir)
	if !ok || atExtreme {
		// Content cannot move further that way; nothing to recompute.
		return
	}
	e.armJiggle(inst)
}

// OnKeyNav handles directional keyboard navigation while focus is inside a
// registered widget: it resets the grace window and re-arms hover tracking
// but never starts a handshake directly; the next natural poll tick picks
// up any resulting index change.
func (e *Engine) OnKeyNav(h Handle) {
	inst, ok := e.byHandle[h]
	if !ok {
		return
	}
	inst.deadline = e.now().Add(inst.cfg.KeyboardGrace)
	e.native.RearmHoverTracking(inst.handle)
}

// resolveScrollTarget prefers a direct identity match, falling back to a
// geometric scan in registration order. Either way the winning instance's
// rect is refreshed, since the jiggle arm reads it later this cycle.
func (e *Engine) resolveScrollTarget(target Handle) *instance {
	if inst, ok := e.byHandle[target]; ok && e.native.VisibleEnabled(inst.handle) {
		rect, err := e.native.WindowRect(inst.handle)
		if err != nil {
			return nil
		}
		inst.rect = rect
		return inst
	}

	ptr, err := e.native.CursorPos()
	if err != nil {
		return nil
	}
	for _, inst := range e.order {
		if !e.native.VisibleEnabled(inst.handle) {
			continue
		}
		rect, err := e.native.WindowRect(inst.handle)
		if err != nil {
			continue
		}
		inst.rect = rect
		if rect.Contains(ptr) {
			return inst
		}
	}
	return nil
}
