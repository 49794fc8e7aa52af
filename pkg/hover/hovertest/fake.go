// Package hovertest provides a scripted fake native service and a manual
// clock for exercising the hover engine deterministically.
package hovertest

import (
	"fmt"
	"time"

	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
)

// Widget is the scripted state of one fake native list widget. Tests mutate
// fields directly between engine calls.
type Widget struct {
	Class   string
	Rect    hover.Rect
	Visible bool

	// Row geometry for hit testing: rows are RowHeight pixels tall,
	// stacked from the top of the rect, row TopRow first.
	RowHeight   int
	TopRow      int
	RowsPerPage int
	TotalRows   int

	// Horizontal scroll range.
	HMin, HMax, HPos, HPage int

	HotRow     int
	HoverTime  time.Duration
	Underline  bool
	OneClick   bool
	RearmCount int
	RectErr    error
	HitErr     error
	VScrollErr error
	HScrollErr error
}

// Native is a fake hover.NativeServices over a set of scripted widgets. It
// records every state-changing native call so tests can assert idempotence.
type Native struct {
	Widgets map[hover.Handle]*Widget
	Names   map[string]hover.Handle

	Cursor    hover.Point
	CursorErr error
	Buttons   bool

	// Calls is the ordered log of state-changing calls (SetHotRow,
	// SetCursorPos, RearmHoverTracking), one formatted entry each.
	Calls []string
}

// NewNative returns an empty fake.
func NewNative() *Native {
	return &Native{
		Widgets: make(map[hover.Handle]*Widget),
		Names:   make(map[string]hover.Handle),
	}
}

// AddListView registers a fake widget with the expected native class and
// sensible defaults: visible, 16px rows, no horizontal scrolling.
func (n *Native) AddListView(h hover.Handle, rect hover.Rect, totalRows int) *Widget {
	perPage := rect.Height() / 16
	w := &Widget{
		Class:       hover.ListViewClass,
		Rect:        rect,
		Visible:     true,
		RowHeight:   16,
		RowsPerPage: perPage,
		TotalRows:   totalRows,
		HotRow:      hover.HitNone,
	}
	n.Widgets[h] = w
	return w
}

func (n *Native) widget(h hover.Handle) (*Widget, error) {
	w, ok := n.Widgets[h]
	if !ok {
		return nil, fmt.Errorf("no such window %#x", uintptr(h))
	}
	return w, nil
}

func (n *Native) record(format string, args ...any) {
	n.Calls = append(n.Calls, fmt.Sprintf(format, args...))
}

// ResetCalls clears the call log.
func (n *Native) ResetCalls() {
	n.Calls = nil
}

func (n *Native) FindWindow(query string) (hover.Handle, error) {
	h, ok := n.Names[query]
	if !ok {
		return 0, fmt.Errorf("no window matches %q", query)
	}
	return h, nil
}

func (n *Native) WindowClass(h hover.Handle) (string, error) {
	w, err := n.widget(h)
	if err != nil {
		return "", err
	}
	return w.Class, nil
}

func (n *Native) WindowRect(h hover.Handle) (hover.Rect, error) {
	w, err := n.widget(h)
	if err != nil {
		return hover.Rect{}, err
	}
	if w.RectErr != nil {
		return hover.Rect{}, w.RectErr
	}
	return w.Rect, nil
}

func (n *Native) ScreenToClient(h hover.Handle, p hover.Point) (hover.Point, error) {
	w, err := n.widget(h)
	if err != nil {
		return hover.Point{}, err
	}
	return hover.Point{X: p.X - w.Rect.Left, Y: p.Y - w.Rect.Top}, nil
}

// HitTestRow maps a client point onto the visible rows. Points outside the
// widget area or below the last row miss.
func (n *Native) HitTestRow(h hover.Handle, client hover.Point) (int, error) {
	w, err := n.widget(h)
	if err != nil {
		return hover.HitNone, err
	}
	if w.HitErr != nil {
		return hover.HitNone, w.HitErr
	}
	if client.X < 0 || client.X >= w.Rect.Width() || client.Y < 0 || client.Y >= w.Rect.Height() {
		return hover.HitNone, nil
	}
	row := w.TopRow + client.Y/w.RowHeight
	if row >= w.TotalRows {
		return hover.HitNone, nil
	}
	return row, nil
}

func (n *Native) SetHotRow(h hover.Handle, row int) error {
	w, err := n.widget(h)
	if err != nil {
		return err
	}
	w.HotRow = row
	n.record("SetHotRow(%#x, %d)", uintptr(h), row)
	return nil
}

func (n *Native) SetHoverStyle(h hover.Handle, underline, oneClick bool) error {
	w, err := n.widget(h)
	if err != nil {
		return err
	}
	w.Underline = underline
	w.OneClick = oneClick
	return nil
}

func (n *Native) SetHoverTime(h hover.Handle, d time.Duration) error {
	w, err := n.widget(h)
	if err != nil {
		return err
	}
	w.HoverTime = d
	return nil
}

func (n *Native) RearmHoverTracking(h hover.Handle) error {
	w, err := n.widget(h)
	if err != nil {
		return err
	}
	w.RearmCount++
	n.record("Rearm(%#x)", uintptr(h))
	return nil
}

func (n *Native) VScroll(h hover.Handle) (hover.VScrollInfo, error) {
	w, err := n.widget(h)
	if err != nil {
		return hover.VScrollInfo{}, err
	}
	if w.VScrollErr != nil {
		return hover.VScrollInfo{}, w.VScrollErr
	}
	return hover.VScrollInfo{Top: w.TopRow, PerPage: w.RowsPerPage, Total: w.TotalRows}, nil
}

func (n *Native) HScroll(h hover.Handle) (hover.HScrollInfo, error) {
	w, err := n.widget(h)
	if err != nil {
		return hover.HScrollInfo{}, err
	}
	if w.HScrollErr != nil {
		return hover.HScrollInfo{}, w.HScrollErr
	}
	return hover.HScrollInfo{Min: w.HMin, Max: w.HMax, Pos: w.HPos, Page: w.HPage}, nil
}

func (n *Native) CursorPos() (hover.Point, error) {
	if n.CursorErr != nil {
		return hover.Point{}, n.CursorErr
	}
	return n.Cursor, nil
}

func (n *Native) SetCursorPos(p hover.Point) error {
	n.Cursor = p
	n.record("SetCursorPos%s", p)
	return nil
}

func (n *Native) VisibleEnabled(h hover.Handle) bool {
	w, ok := n.Widgets[h]
	return ok && w.Visible
}

func (n *Native) ButtonDown() bool {
	return n.Buttons
}

var _ hover.NativeServices = (*Native)(nil)

// Clock is a manual clock for WithNow.
type Clock struct {
	Current time.Time
}

// NewClock starts a clock at a fixed, arbitrary instant.
func NewClock() *Clock {
	return &Clock{Current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

// Now is the function to hand to hover.WithNow.
func (c *Clock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}
