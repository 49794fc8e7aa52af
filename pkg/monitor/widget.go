package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/listdata"
	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
)

// ListPane is a scrollable terminal list standing in for a native list
// widget. One terminal cell plays the role of one pixel, one row is one
// cell tall, so the hover engine drives it unmodified.
type ListPane struct {
	Handle hover.Handle
	Title  string

	// Content area in screen cells, border excluded.
	X, Y, W, H int

	Rows []listdata.Row
	Top  int // first visible row
	Hot  int // hot row index, hover.HitNone when none

	Visible  bool
	Focused  bool
	Selected int // last clicked row, hover.HitNone when none

	// Widget configuration applied by the engine at registration.
	Underline bool
	OneClick  bool
	HoverTime time.Duration
}

// NewListPane creates a visible pane with no hot or selected row.
func NewListPane(h hover.Handle, title string, rows []listdata.Row) *ListPane {
	return &ListPane{
		Handle:   h,
		Title:    title,
		Rows:     rows,
		Hot:      hover.HitNone,
		Selected: hover.HitNone,
		Visible:  true,
	}
}

// PageSize returns the number of fully visible rows.
func (p *ListPane) PageSize() int {
	if p.H < 0 {
		return 0
	}
	return p.H
}

// MaxTop returns the largest valid Top value.
func (p *ListPane) MaxTop() int {
	m := len(p.Rows) - p.PageSize()
	if m < 0 {
		return 0
	}
	return m
}

// ScrollBy moves the viewport by delta rows, clamped to the content.
// It reports whether the viewport actually moved.
func (p *ListPane) ScrollBy(delta int) bool {
	top := p.Top + delta
	if top < 0 {
		top = 0
	}
	if top > p.MaxTop() {
		top = p.MaxTop()
	}
	if top == p.Top {
		return false
	}
	p.Top = top
	return true
}

// RowAt returns the row index at a screen cell, or hover.HitNone when the
// cell misses the content or lands past the last row.
func (p *ListPane) RowAt(x, y int) int {
	if x < p.X || x >= p.X+p.W || y < p.Y || y >= p.Y+p.H {
		return hover.HitNone
	}
	row := p.Top + (y - p.Y)
	if row < 0 || row >= len(p.Rows) {
		return hover.HitNone
	}
	return row
}

// Render draws the pane with its border, title and visible rows.
func (p *ListPane) Render() string {
	if !p.Visible {
		return ""
	}

	var b strings.Builder
	title := fmt.Sprintf("%s %d/%d", p.Title, p.Top+1, len(p.Rows))
	b.WriteString(paneTitleStyle.Render(ansi.Truncate(title, p.W, "…")))
	b.WriteString("\n")

	for i := 0; i < p.PageSize(); i++ {
		idx := p.Top + i
		line := ""
		if idx < len(p.Rows) {
			line = p.Rows[idx].Label
			marker := "  "
			if idx == p.Selected {
				marker = "» "
			}
			line = marker + line
		}
		line = ansi.Truncate(line, p.W, "…")
		line += strings.Repeat(" ", p.W-ansi.StringWidth(line))

		switch {
		case idx == p.Hot && p.Underline:
			line = rowHotUnderlineStyle.Render(line)
		case idx == p.Hot:
			line = rowHotStyle.Render(line)
		default:
			line = rowStyle.Render(line)
		}
		b.WriteString(line)
		if i < p.PageSize()-1 {
			b.WriteString("\n")
		}
	}

	style := paneStyle
	if p.Focused {
		style = paneFocusedStyle
	}
	return style.Render(b.String())
}
