package hover

import (
	"fmt"
	"time"
)

// ListViewClass is the native window class the engine accepts. Registration
// against any other class fails with a ClassMismatchError.
const ListViewClass = "SysListView32"

// Handle identifies a native widget. Handles are opaque to the engine and
// stable for the lifetime of a registration.
type Handle uintptr

// Target describes a widget to register. Exactly one of Handle or Query
// should be set: a non-zero Handle is used directly, otherwise Query is
// resolved through NativeServices.FindWindow.
type Target struct {
	Handle Handle
	Query  string
}

func (t Target) String() string {
	if t.Handle != 0 {
		return fmt.Sprintf("handle %#x", uintptr(t.Handle))
	}
	return fmt.Sprintf("query %q", t.Query)
}

// VScrollInfo describes the vertical scroll state of a list widget in rows.
type VScrollInfo struct {
	Top     int // index of the first visible row
	PerPage int // fully visible rows per page
	Total   int // total row count
}

// HScrollInfo describes the native horizontal scroll range of a widget.
type HScrollInfo struct {
	Min  int
	Max  int
	Pos  int
	Page int
}

// NativeServices is the engine's only route to the host windowing system.
// All calls are assumed fast and non-blocking. Runtime failures are treated
// as the widget being transiently unavailable; the engine swallows them and
// retries on the next tick.
type NativeServices interface {
	// FindWindow resolves a window/title query to a handle.
	FindWindow(query string) (Handle, error)
	// WindowClass returns the native window class name of a widget.
	WindowClass(h Handle) (string, error)
	// WindowRect returns the widget rectangle in screen coordinates.
	WindowRect(h Handle) (Rect, error)
	// ScreenToClient converts a screen point to widget-local coordinates.
	ScreenToClient(h Handle, p Point) (Point, error)
	// HitTestRow returns the row index under a client point, or HitNone.
	HitTestRow(h Handle, client Point) (int, error)
	// SetHotRow sets the widget's tracked hot item. HitNone clears it.
	SetHotRow(h Handle, row int) error
	// SetHoverStyle applies the underline and one-click activation flags.
	SetHoverStyle(h Handle, underline, oneClick bool) error
	// SetHoverTime sets the widget's hover auto-select delay.
	SetHoverTime(h Handle, d time.Duration) error
	// RearmHoverTracking restarts the widget's hot-tracking countdown.
	RearmHoverTracking(h Handle) error
	// VScroll reads the vertical scroll state.
	VScroll(h Handle) (VScrollInfo, error)
	// HScroll reads the horizontal scroll range.
	HScroll(h Handle) (HScrollInfo, error)
	// CursorPos returns the global pointer position.
	CursorPos() (Point, error)
	// SetCursorPos programmatically moves the global pointer.
	SetCursorPos(p Point) error
	// VisibleEnabled reports whether the widget is visible and enabled.
	VisibleEnabled(h Handle) bool
	// ButtonDown reports whether any pointer button is currently held.
	ButtonDown() bool
}
