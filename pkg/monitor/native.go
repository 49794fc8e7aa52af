package monitor

import (
	"fmt"
	"time"

	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
)

// TermNative adapts the demo's terminal panes to the engine's native
// services. The terminal cannot warp a real pointer, so SetCursorPos moves
// the tracked cursor cell and queues a synthetic move notification; the
// model drains those into the engine, which closes the jiggle handshake
// loop exactly like a real windowing system would.
type TermNative struct {
	panes  map[hover.Handle]*ListPane
	titles map[string]hover.Handle

	cursor     hover.Point
	buttonDown bool

	pending []hover.MoveEvent
	rearms  map[hover.Handle]int
}

var _ hover.NativeServices = (*TermNative)(nil)

// NewTermNative creates an empty adapter.
func NewTermNative() *TermNative {
	return &TermNative{
		panes:  make(map[hover.Handle]*ListPane),
		titles: make(map[string]hover.Handle),
		rearms: make(map[hover.Handle]int),
	}
}

// AddPane registers a pane for lookup by handle and title.
func (n *TermNative) AddPane(p *ListPane) {
	n.panes[p.Handle] = p
	n.titles[p.Title] = p.Handle
}

// Pane returns the pane for a handle, or nil.
func (n *TermNative) Pane(h hover.Handle) *ListPane {
	return n.panes[h]
}

// MoveCursor records a real pointer move from the terminal.
func (n *TermNative) MoveCursor(x, y int) {
	n.cursor = hover.Point{X: x, Y: y}
}

// SetButtonDown records the pointer button state.
func (n *TermNative) SetButtonDown(down bool) {
	n.buttonDown = down
}

// DrainMoves returns and clears the synthetic moves queued by SetCursorPos.
func (n *TermNative) DrainMoves() []hover.MoveEvent {
	moves := n.pending
	n.pending = nil
	return moves
}

// Rearms returns how many times hover tracking was rearmed on a pane.
func (n *TermNative) Rearms(h hover.Handle) int {
	return n.rearms[h]
}

func (n *TermNative) FindWindow(query string) (hover.Handle, error) {
	h, ok := n.titles[query]
	if !ok {
		return 0, fmt.Errorf("no pane titled %q", query)
	}
	return h, nil
}

func (n *TermNative) WindowClass(h hover.Handle) (string, error) {
	if _, ok := n.panes[h]; !ok {
		return "", fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	return hover.ListViewClass, nil
}

func (n *TermNative) WindowRect(h hover.Handle) (hover.Rect, error) {
	p, ok := n.panes[h]
	if !ok {
		return hover.Rect{}, fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	return hover.Rect{Left: p.X, Top: p.Y, Right: p.X + p.W, Bottom: p.Y + p.H}, nil
}

func (n *TermNative) ScreenToClient(h hover.Handle, pt hover.Point) (hover.Point, error) {
	p, ok := n.panes[h]
	if !ok {
		return hover.Point{}, fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	return hover.Point{X: pt.X - p.X, Y: pt.Y - p.Y}, nil
}

func (n *TermNative) HitTestRow(h hover.Handle, client hover.Point) (int, error) {
	p, ok := n.panes[h]
	if !ok {
		return hover.HitNone, fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	return p.RowAt(p.X+client.X, p.Y+client.Y), nil
}

func (n *TermNative) SetHotRow(h hover.Handle, row int) error {
	p, ok := n.panes[h]
	if !ok {
		return fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	p.Hot = row
	return nil
}

func (n *TermNative) SetHoverStyle(h hover.Handle, underline, oneClick bool) error {
	p, ok := n.panes[h]
	if !ok {
		return fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	p.Underline = underline
	p.OneClick = oneClick
	return nil
}

func (n *TermNative) SetHoverTime(h hover.Handle, d time.Duration) error {
	p, ok := n.panes[h]
	if !ok {
		return fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	p.HoverTime = d
	return nil
}

func (n *TermNative) RearmHoverTracking(h hover.Handle) error {
	if _, ok := n.panes[h]; !ok {
		return fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	n.rearms[h]++
	return nil
}

func (n *TermNative) VScroll(h hover.Handle) (hover.VScrollInfo, error) {
	p, ok := n.panes[h]
	if !ok {
		return hover.VScrollInfo{}, fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	return hover.VScrollInfo{Top: p.Top, PerPage: p.PageSize(), Total: len(p.Rows)}, nil
}

func (n *TermNative) HScroll(h hover.Handle) (hover.HScrollInfo, error) {
	if _, ok := n.panes[h]; !ok {
		return hover.HScrollInfo{}, fmt.Errorf("unknown pane %#x", uintptr(h))
	}
	// Panes truncate long rows instead of scrolling horizontally.
	return hover.HScrollInfo{}, nil
}

func (n *TermNative) CursorPos() (hover.Point, error) {
	return n.cursor, nil
}

func (n *TermNative) SetCursorPos(pt hover.Point) error {
	n.cursor = pt
	target := hover.Handle(0)
	for h, p := range n.panes {
		if p.Visible && pt.X >= p.X && pt.X < p.X+p.W && pt.Y >= p.Y && pt.Y < p.Y+p.H {
			target = h
			break
		}
	}
	n.pending = append(n.pending, hover.MoveEvent{Target: target, Pos: pt})
	return nil
}

func (n *TermNative) VisibleEnabled(h hover.Handle) bool {
	p, ok := n.panes[h]
	return ok && p.Visible
}

func (n *TermNative) ButtonDown() bool {
	return n.buttonDown
}
