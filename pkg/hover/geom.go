package hover

import "fmt"

// Point is a position in screen coordinates.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is a widget rectangle in screen coordinates. Right and Bottom are
// exclusive, so a rect one pixel wide has Right == Left+1.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Width returns the rect width in pixels.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the rect height in pixels.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}
