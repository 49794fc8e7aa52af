package hover_test

import (
	"testing"

	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
)

func TestJiggleRestoresExactOrigin(t *testing.T) {
	f := newFixture()
	f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 260}, 50)
	f.register(t, leftHandle)

	origin := hover.Point{X: 150, Y: 140}
	f.native.Cursor = origin

	f.engine.OnTick() // arms: cursor displaced one pixel down
	if f.native.Cursor == origin {
		t.Fatal("arm should have displaced the cursor")
	}
	if (f.native.Cursor != hover.Point{X: 150, Y: 141}) {
		t.Errorf("displaced cursor = %v, want (150, 141)", f.native.Cursor)
	}

	f.engine.OnMove(hover.MoveEvent{Target: leftHandle})
	if f.native.Cursor != origin {
		t.Errorf("cursor after acknowledge = %v, want exact origin %v", f.native.Cursor, origin)
	}
}

func TestJiggleDisplacementFallsBackThroughCandidates(t *testing.T) {
	f := newFixture()
	// Pointer on the bottom row of pixels: +1 vertical leaves the rect, so
	// the arm falls back to -1 vertical.
	f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 260}, 50)
	f.register(t, leftHandle)
	f.native.Cursor = hover.Point{X: 150, Y: 259}

	f.engine.OnTick()
	if (f.native.Cursor != hover.Point{X: 150, Y: 258}) {
		t.Errorf("displaced cursor = %v, want (150, 258)", f.native.Cursor)
	}
}

func TestJiggleAbortsOnDegenerateRect(t *testing.T) {
	f := newFixture()
	// One-pixel widget: no displacement can stay inside.
	f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 101, Bottom: 101}, 1)
	f.register(t, leftHandle)
	f.native.Cursor = hover.Point{X: 100, Y: 100}

	f.engine.OnTick()
	if got := countCalls(f.native, "SetCursorPos"); got != 0 {
		t.Errorf("arm against a degenerate rect moved the cursor: %v", f.native.Calls)
	}

	// The aborted arm must not leave the instance suppressed.
	f.native.ResetCalls()
	f.engine.OnTick()
	// Steady state now; still no calls, but crucially no fail-safe counting.
	if len(f.native.Calls) != 0 {
		t.Errorf("unexpected native calls: %v", f.native.Calls)
	}
}

func TestJiggleNeverOverlaps(t *testing.T) {
	f := newFixture()
	w := f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 260}, 50)
	w.TopRow = 3 // room to scroll both ways
	f.register(t, leftHandle)
	f.native.Cursor = hover.Point{X: 150, Y: 140}

	// Two wheel notches back to back: the second must not start a second
	// handshake while the first is unacknowledged.
	f.engine.OnScroll(hover.ScrollEvent{Target: leftHandle, Source: hover.SourceWheel, Delta: -120})
	f.engine.OnScroll(hover.ScrollEvent{Target: leftHandle, Source: hover.SourceWheel, Delta: -120})

	if got := countCalls(f.native, "SetCursorPos"); got != 1 {
		t.Errorf("cursor moved %d times for two overlapping scrolls, want 1", got)
	}
}

func TestJiggleFailSafeRecoversStuckHandshake(t *testing.T) {
	f := newFixture()
	f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 260}, 50)
	f.register(t, leftHandle)

	origin := hover.Point{X: 150, Y: 140}
	f.native.Cursor = origin
	f.engine.OnTick() // arms; acknowledgment never arrives

	// The armed instance suppresses its own polls; after a bounded number
	// of missed ticks the fail-safe restores the cursor and disarms.
	f.native.ResetCalls()
	for i := 0; i < 3; i++ {
		f.engine.OnTick()
	}
	if f.native.Cursor != origin {
		t.Errorf("cursor after fail-safe = %v, want restored origin %v", f.native.Cursor, origin)
	}
	if got := countCalls(f.native, "SetCursorPos"); got != 1 {
		t.Errorf("fail-safe moved the cursor %d times, want 1", got)
	}

	// Polling resumes normally afterwards.
	f.native.ResetCalls()
	f.engine.OnTick()
	if len(f.native.Calls) != 0 {
		t.Errorf("steady-state tick after recovery made calls: %v", f.native.Calls)
	}
}

func TestMoveForUnarmedInstanceIsIgnored(t *testing.T) {
	f := newFixture()
	f.native.AddListView(leftHandle, hover.Rect{Left: 100, Top: 100, Right: 300, Bottom: 260}, 50)
	f.register(t, leftHandle)

	f.native.ResetCalls()
	f.engine.OnMove(hover.MoveEvent{Target: leftHandle})
	f.engine.OnMove(hover.MoveEvent{Target: 0xdead})
	if len(f.native.Calls) != 0 {
		t.Errorf("moves without an armed handshake made calls: %v", f.native.Calls)
	}
}
