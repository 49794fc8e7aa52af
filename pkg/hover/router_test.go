package hover_test

import (
	"testing"
	"time"

	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover/hovertest"
)

func TestWheelDownArmsWhenNotAtBottom(t *testing.T) {
	f := newFixture()
	// topVisibleIndex=3, rowsPerPage=5, totalRows=20: not at bottom.
	w := f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 180}, 20)
	w.TopRow = 3
	w.RowsPerPage = 5
	f.register(t, leftHandle)
	f.native.Cursor = hover.Point{X: 150, Y: 140}

	f.engine.OnScroll(hover.ScrollEvent{Target: leftHandle, Source: hover.SourceWheel, Delta: -120})

	if got := countCalls(f.native, "SetCursorPos"); got != 1 {
		t.Errorf("wheel down above the bottom should arm a jiggle, got %d cursor moves", got)
	}
	if (f.native.Cursor != hover.Point{X: 150, Y: 141}) {
		t.Errorf("displacement = %v, want vertical (150, 141)", f.native.Cursor)
	}
	if w.RearmCount != 1 {
		t.Errorf("hover tracking re-armed %d times, want 1", w.RearmCount)
	}
}

func TestBoundarySuppression(t *testing.T) {
	cases := []struct {
		name    string
		prep    func(w *hovertest.Widget)
		ev      hover.ScrollEvent
		wantArm bool
	}{
		{
			name:    "wheel up at top",
			prep:    func(w *hovertest.Widget) { w.TopRow = 0 },
			ev:      hover.ScrollEvent{Source: hover.SourceWheel, Delta: 120},
			wantArm: false,
		},
		{
			name:    "wheel up below top",
			prep:    func(w *hovertest.Widget) { w.TopRow = 2 },
			ev:      hover.ScrollEvent{Source: hover.SourceWheel, Delta: 120},
			wantArm: true,
		},
		{
			name:    "wheel down at bottom",
			prep:    func(w *hovertest.Widget) { w.TopRow = 15; w.RowsPerPage = 5 },
			ev:      hover.ScrollEvent{Source: hover.SourceWheel, Delta: -120},
			wantArm: false,
		},
		{
			name:    "wheel down one row above bottom",
			prep:    func(w *hovertest.Widget) { w.TopRow = 14; w.RowsPerPage = 5 },
			ev:      hover.ScrollEvent{Source: hover.SourceWheel, Delta: -120},
			wantArm: true,
		},
		{
			name:    "hwheel left at leftmost",
			prep:    func(w *hovertest.Widget) { w.HMax = 100; w.HPos = 0; w.HPage = 10 },
			ev:      hover.ScrollEvent{Source: hover.SourceWheelHorizontal, Delta: -120},
			wantArm: false,
		},
		{
			name:    "hwheel left mid-range",
			prep:    func(w *hovertest.Widget) { w.HMax = 100; w.HPos = 50; w.HPage = 10 },
			ev:      hover.ScrollEvent{Source: hover.SourceWheelHorizontal, Delta: -120},
			wantArm: true,
		},
		{
			name:    "hwheel right inside page slack",
			prep:    func(w *hovertest.Widget) { w.HMax = 100; w.HPos = 91; w.HPage = 10 },
			ev:      hover.ScrollEvent{Source: hover.SourceWheelHorizontal, Delta: 120},
			wantArm: false,
		},
		{
			name:    "thumb track never arms",
			prep:    func(w *hovertest.Widget) { w.TopRow = 5 },
			ev:      hover.ScrollEvent{Source: hover.SourceScrollbarV, Command: hover.CommandThumbTrack},
			wantArm: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			w := f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 180}, 20)
			w.RowsPerPage = 5
			tc.prep(w)
			f.register(t, leftHandle)
			f.native.Cursor = hover.Point{X: 150, Y: 140}

			ev := tc.ev
			ev.Target = leftHandle
			f.engine.OnScroll(ev)

			gotArm := countCalls(f.native, "SetCursorPos") > 0
			if gotArm != tc.wantArm {
				t.Errorf("arm = %v, want %v (calls: %v)", gotArm, tc.wantArm, f.native.Calls)
			}
			if w.RearmCount != 1 {
				t.Errorf("hover re-arm count = %d, want 1 regardless of boundary", w.RearmCount)
			}
		})
	}
}

func TestScrollResolvesGeometricallyWithoutIdentity(t *testing.T) {
	f := newFixture()
	w := f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 180}, 20)
	w.TopRow = 3
	w.RowsPerPage = 5
	f.register(t, leftHandle)
	f.native.Cursor = hover.Point{X: 150, Y: 140}

	// The notification names a window the registry does not know; the
	// pointer decides.
	f.engine.OnScroll(hover.ScrollEvent{Target: 0xdead, Source: hover.SourceWheel, Delta: -120})
	if w.RearmCount != 1 {
		t.Errorf("geometric fallback should have resolved the instance (rearm=%d)", w.RearmCount)
	}

	// Pointer over nothing: the event is ignored.
	f.native.Cursor = hover.Point{X: 10, Y: 10}
	f.native.ResetCalls()
	f.engine.OnScroll(hover.ScrollEvent{Target: 0xdead, Source: hover.SourceWheel, Delta: -120})
	if len(f.native.Calls) != 0 {
		t.Errorf("unresolvable scroll made native calls: %v", f.native.Calls)
	}
}

func TestGraceWindowSuppressesPolling(t *testing.T) {
	f := newFixture()
	w := f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 260}, 50)
	id := f.register(t, leftHandle)
	f.native.Cursor = hover.Point{X: 150, Y: 140}
	f.settle(t, leftHandle)

	// Wheel notch at the top boundary: no jiggle, but the grace window arms.
	w.TopRow = 0
	f.engine.OnScroll(hover.ScrollEvent{Target: leftHandle, Source: hover.SourceWheel, Delta: 120})

	// Content state changes inside the window; polls must not react.
	w.TopRow = 3
	f.native.ResetCalls()
	f.clock.Advance(100 * time.Millisecond)
	f.engine.ForcePoll(id)
	if len(f.native.Calls) != 0 {
		t.Errorf("poll inside the grace window made calls: %v", f.native.Calls)
	}
	if got := f.engine.Status()[0].LastHit; got != 2 {
		t.Errorf("LastHit = %d, want unchanged 2 inside grace window", got)
	}

	// Past the deadline the stale index is picked up.
	f.clock.Advance(60 * time.Millisecond) // 160ms > 150ms default
	f.engine.ForcePoll(id)
	if got := f.engine.Status()[0].LastHit; got != 5 {
		t.Errorf("LastHit = %d, want 5 after the grace window expires", got)
	}
}

func TestPointerScrollGraceIsLonger(t *testing.T) {
	f := newFixture()
	w := f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 260}, 50)
	id := f.register(t, leftHandle)
	f.native.Cursor = hover.Point{X: 150, Y: 140}
	f.settle(t, leftHandle)

	w.TopRow = 0
	f.engine.OnScroll(hover.ScrollEvent{Target: leftHandle, Source: hover.SourceGesture, Delta: 40})

	w.TopRow = 3
	f.clock.Advance(180 * time.Millisecond) // past wheel grace, inside pointer grace
	f.engine.ForcePoll(id)
	if got := f.engine.Status()[0].LastHit; got != 2 {
		t.Errorf("LastHit = %d, want 2: gesture grace (220ms) still open at 180ms", got)
	}

	f.clock.Advance(50 * time.Millisecond) // 230ms total
	f.engine.ForcePoll(id)
	if got := f.engine.Status()[0].LastHit; got != 5 {
		t.Errorf("LastHit = %d, want 5 after gesture grace expires", got)
	}
}

func TestKeyNavResetsGraceWithoutJiggle(t *testing.T) {
	f := newFixture()
	w := f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 260}, 50)
	cfg := hover.DefaultConfig()
	cfg.KeyboardGrace = 90 * time.Millisecond
	id := f.register2(t, leftHandle, cfg)
	f.native.Cursor = hover.Point{X: 150, Y: 140}
	f.settle(t, leftHandle)

	f.engine.OnKeyNav(leftHandle)
	if w.RearmCount != 1 {
		t.Errorf("keyboard navigation should re-arm hover tracking (rearm=%d)", w.RearmCount)
	}
	if got := countCalls(f.native, "SetCursorPos"); got != 0 {
		t.Errorf("keyboard navigation must never jiggle directly: %v", f.native.Calls)
	}

	// Keyboard scrolls the selection into view; inside the keyboard grace
	// the poll stays quiet, afterwards the natural tick picks it up.
	w.TopRow = 3
	f.clock.Advance(60 * time.Millisecond)
	f.engine.ForcePoll(id)
	if got := f.engine.Status()[0].LastHit; got != 2 {
		t.Errorf("LastHit = %d, want 2 inside keyboard grace", got)
	}

	f.clock.Advance(40 * time.Millisecond) // 100ms > 90ms
	f.engine.ForcePoll(id)
	if got := f.engine.Status()[0].LastHit; got != 5 {
		t.Errorf("LastHit = %d, want 5 after keyboard grace expires", got)
	}

	// Unregistered handles are ignored.
	f.engine.OnKeyNav(0xdead)
}
