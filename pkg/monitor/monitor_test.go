package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/config"
	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/listdata"
	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(config.Default(), t.TempDir(), listdata.Contacts(40), listdata.Tasks(40))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestNewRegistersBothPanes(t *testing.T) {
	m := testModel(t)

	if !m.engine.Running() {
		t.Error("engine should be running with two panes registered")
	}
	if got := m.engine.Period(); got != 30*time.Millisecond {
		t.Errorf("Period = %v, want the default 30ms", got)
	}
	if got := len(m.engine.Status()); got != 2 {
		t.Errorf("registered %d instances, want 2", got)
	}
}

func TestLayoutBuildsHitMap(t *testing.T) {
	m := testModel(t)

	for _, pane := range m.panes {
		if pane.W <= 0 || pane.H <= 0 {
			t.Errorf("pane %s has empty content area %dx%d", pane.Title, pane.W, pane.H)
		}
		hit := m.handler.HitMap.Test(pane.X, pane.Y)
		if hit == nil || hit.Handle != pane.Handle {
			t.Errorf("hit map at pane %s origin = %+v", pane.Title, hit)
		}
	}
}

func TestWheelScrollsPaneUnderPointer(t *testing.T) {
	m := testModel(t)
	pane := m.panes[0]

	// Park the pointer on a row, then wheel down.
	m.Update(tea.MouseMsg{X: pane.X + 2, Y: pane.Y + 1, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: pane.X + 2, Y: pane.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

	if pane.Top != 1 {
		t.Errorf("Top = %d after wheel down, want 1", pane.Top)
	}
	if m.native.Rearms(pane.Handle) != 1 {
		t.Errorf("rearm count = %d, want 1", m.native.Rearms(pane.Handle))
	}

	// The handshake round-trips inside Update: the displacement was queued,
	// pumped back in, and the origin restored.
	cur, _ := m.native.CursorPos()
	if (cur != hover.Point{X: pane.X + 2, Y: pane.Y + 1}) {
		t.Errorf("cursor = %+v after wheel, want the parked origin", cur)
	}
	if len(m.native.DrainMoves()) != 0 {
		t.Error("pending moves left undrained after Update")
	}
}

func TestWheelAtTopDoesNotJiggle(t *testing.T) {
	m := testModel(t)
	pane := m.panes[0]

	m.Update(tea.MouseMsg{X: pane.X + 2, Y: pane.Y + 1, Action: tea.MouseActionMotion})
	m.pump() // settle any arming from the initial motion
	before, _ := m.native.CursorPos()

	// Wheel up at the very top: the viewport cannot move.
	m.Update(tea.MouseMsg{X: pane.X + 2, Y: pane.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})

	if pane.Top != 0 {
		t.Errorf("Top = %d after wheel up at top, want 0", pane.Top)
	}
	cur, _ := m.native.CursorPos()
	if cur != before {
		t.Errorf("cursor moved to %+v on a boundary scroll", cur)
	}
}

func TestKeyboardScrollUsesKeyNav(t *testing.T) {
	m := testModel(t)
	pane := m.focused()

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if pane.Top != 1 {
		t.Errorf("Top = %d after key down, want 1", pane.Top)
	}
	// Keyboard navigation never arms a handshake.
	if got := len(m.native.DrainMoves()); got != 0 {
		t.Errorf("keyboard scroll queued %d cursor moves, want 0", got)
	}
}

func TestTabSwitchesFocus(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focused().Title != "Tasks" {
		t.Errorf("focused pane = %s after tab, want Tasks", m.focused().Title)
	}
	if m.panes[0].Focused {
		t.Error("old pane still marked focused")
	}
}

func TestFilterNarrowsFocusedPane(t *testing.T) {
	m := testModel(t)
	pane := m.focused()
	total := len(pane.Rows)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.filtering {
		t.Fatal("/ did not enter filter mode")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ada")})
	if len(pane.Rows) == 0 || len(pane.Rows) >= total {
		t.Errorf("filter left %d of %d rows", len(pane.Rows), total)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if len(pane.Rows) != total {
		t.Errorf("escape restored %d of %d rows", len(pane.Rows), total)
	}
}

func TestHideTogglesPaneVisibility(t *testing.T) {
	m := testModel(t)
	pane := m.focused()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if pane.Visible {
		t.Error("x did not hide the focused pane")
	}

	// A hidden pane stays registered but is reported unavailable.
	for _, st := range m.engine.Status() {
		if st.Handle == pane.Handle && st.VisibleEnabled {
			t.Error("hidden pane reported visible in status")
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if !pane.Visible {
		t.Error("x did not restore the pane")
	}
}

func TestQuitUnregistersGroup(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no quit command")
	}
	if m.engine.Running() {
		t.Error("engine still running after quit")
	}
	if len(m.engine.Status()) != 0 {
		t.Error("registrations left behind after quit")
	}
}
