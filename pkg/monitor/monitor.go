// Package monitor is a terminal demo that drives the hover engine against
// scrollable list panes. Terminal cells stand in for pixels, so every part
// of the engine runs unmodified: the poll scheduler ticks off the bubbletea
// timer, wheel input feeds the scroll router, and the jiggle handshake
// round-trips through synthetic move notifications.
package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/config"
	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/listdata"
	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/monitor/mouse"
)

const ownerGroup = "monitor"

type tickMsg time.Time

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	PgUp   key.Binding
	PgDown key.Binding
	Tab    key.Binding
	Filter key.Binding
	Help   key.Binding
	Config key.Binding
	Hide   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	PgUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PgDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Config: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "settings")),
	Hide:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hide pane")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the demo's bubbletea model. It owns the engine and pumps it the
// way a native message loop would.
type Model struct {
	engine  *hover.Engine
	native  *TermNative
	handler *mouse.Handler

	panes    []*ListPane
	baseRows map[hover.Handle][]listdata.Row
	ids      map[hover.Handle]hover.InstanceID

	settings    config.Settings
	settingsDir string

	width  int
	height int
	focus  int

	filtering bool
	filter    string

	help string
	form *settingsForm

	err      error
	quitting bool
}

// New builds the demo model with a contacts pane and a tasks pane.
func New(settings config.Settings, settingsDir string, contacts, tasks []listdata.Row) (*Model, error) {
	native := NewTermNative()
	engine := hover.New(native)

	m := &Model{
		engine:      engine,
		native:      native,
		handler:     mouse.NewHandler(),
		baseRows:    make(map[hover.Handle][]listdata.Row),
		ids:         make(map[hover.Handle]hover.InstanceID),
		settings:    settings,
		settingsDir: settingsDir,
	}

	for i, pane := range []*ListPane{
		NewListPane(hover.Handle(1), "Contacts", contacts),
		NewListPane(hover.Handle(2), "Tasks", tasks),
	} {
		pane.Focused = i == 0
		m.panes = append(m.panes, pane)
		m.baseRows[pane.Handle] = pane.Rows
		native.AddPane(pane)

		id, err := engine.Register(hover.Target{Handle: pane.Handle}, settings.HoverConfig(ownerGroup))
		if err != nil {
			return nil, fmt.Errorf("register %s pane: %w", pane.Title, err)
		}
		m.ids[pane.Handle] = id
	}

	return m, nil
}

// Init starts the shared poll timer.
func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	if !m.engine.Running() {
		return nil
	}
	period := m.engine.Period()
	return tea.Tick(period, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// pump drains the synthetic moves queued by cursor restores back into the
// engine. This is the terminal's stand-in for the windowing system turning
// SetCursorPos into a move notification.
func (m *Model) pump() {
	for {
		moves := m.native.DrainMoves()
		if len(moves) == 0 {
			return
		}
		for _, mv := range moves {
			m.engine.OnMove(mv)
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tickMsg:
		m.engine.OnTick()
		m.pump()
		return m, m.tickCmd()

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.form != nil {
		cmd := m.form.update(msg)
		if m.form.done {
			m.applySettings()
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.form != nil || m.help != "" {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.native.SetButtonDown(true)
	}
	if msg.Action == tea.MouseActionRelease {
		m.native.SetButtonDown(false)
	}

	act := m.handler.HandleMouse(msg)
	switch act.Type {
	case mouse.ActionHover:
		m.native.MoveCursor(act.X, act.Y)
		if act.Region != nil {
			m.engine.OnMove(hover.MoveEvent{Target: act.Region.Handle, Pos: hover.Point{X: act.X, Y: act.Y}})
		}
		m.pump()

	case mouse.ActionClick:
		if act.Region != nil {
			pane := m.native.Pane(act.Region.Handle)
			if pane != nil {
				if row := pane.RowAt(act.X, act.Y); row != hover.HitNone {
					pane.Selected = row
				}
				m.focusPane(pane)
			}
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if act.Region == nil {
			break
		}
		pane := m.native.Pane(act.Region.Handle)
		if pane == nil {
			break
		}
		delta := 120
		if act.Type == mouse.ActionScrollDown {
			delta = -120
			pane.ScrollBy(1)
		} else {
			pane.ScrollBy(-1)
		}
		m.engine.OnScroll(hover.ScrollEvent{
			Target: pane.Handle,
			Delta:  delta,
			Source: hover.SourceWheel,
		})
		m.pump()

	case mouse.ActionScrollLeft, mouse.ActionScrollRight:
		// Panes have no horizontal range; the router still gets the event
		// so its boundary suppression is exercised end to end.
		if act.Region == nil {
			break
		}
		delta := 120
		if act.Type == mouse.ActionScrollRight {
			delta = -120
		}
		m.engine.OnScroll(hover.ScrollEvent{
			Target: act.Region.Handle,
			Delta:  delta,
			Source: hover.SourceWheelHorizontal,
		})
		m.pump()
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		cmd := m.form.update(msg)
		if m.form.done {
			m.applySettings()
		}
		return m, cmd
	}

	if m.help != "" {
		m.help = ""
		return m, nil
	}

	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter = ""
			m.applyFilter()
		case "enter":
			m.filtering = false
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.filter += string(msg.Runes)
				m.applyFilter()
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.engine.UnregisterGroup(ownerGroup)
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.keyScroll(-1)
	case key.Matches(msg, keys.Down):
		m.keyScroll(1)
	case key.Matches(msg, keys.PgUp):
		m.keyScroll(-m.focused().PageSize())
	case key.Matches(msg, keys.PgDown):
		m.keyScroll(m.focused().PageSize())

	case key.Matches(msg, keys.Tab):
		m.focusPane(m.panes[(m.focus+1)%len(m.panes)])

	case key.Matches(msg, keys.Filter):
		m.filtering = true
		m.filter = ""

	case key.Matches(msg, keys.Help):
		help, err := renderHelp(m.width)
		if err != nil {
			m.err = err
		} else {
			m.help = help
		}

	case key.Matches(msg, keys.Config):
		m.form = newSettingsForm(m.settings)
		return m, m.form.init()

	case key.Matches(msg, keys.Hide):
		pane := m.focused()
		pane.Visible = !pane.Visible
	}
	return m, nil
}

func (m *Model) focused() *ListPane {
	return m.panes[m.focus]
}

func (m *Model) focusPane(target *ListPane) {
	for i, pane := range m.panes {
		pane.Focused = pane == target
		if pane == target {
			m.focus = i
		}
	}
}

// keyScroll scrolls the focused pane from the keyboard. Keyboard navigation
// gets its own grace treatment in the engine: the deadline moves but no
// handshake is armed.
func (m *Model) keyScroll(rows int) {
	pane := m.focused()
	if pane.ScrollBy(rows) {
		m.engine.OnKeyNav(pane.Handle)
	}
}

func (m *Model) applyFilter() {
	pane := m.focused()
	pane.Rows = listdata.Filter(m.baseRows[pane.Handle], m.filter)
	pane.Top = 0
	pane.Selected = hover.HitNone
	m.engine.ForcePoll(m.ids[pane.Handle])
	m.pump()
}

func (m *Model) applySettings() {
	settings, err := m.form.settings()
	m.form = nil
	if err != nil {
		m.err = err
		return
	}
	m.settings = settings
	if err := config.Save(m.settingsDir, settings); err != nil {
		m.err = err
	}

	// Re-register every pane so the new knobs take effect. Registering the
	// same handle again replaces the old registration.
	for _, pane := range m.panes {
		id, err := m.engine.Register(hover.Target{Handle: pane.Handle}, settings.HoverConfig(ownerGroup))
		if err != nil {
			m.err = err
			continue
		}
		m.ids[pane.Handle] = id
	}
}

// layout assigns screen rectangles to the panes and rebuilds the hit map.
// The content area starts inside the border and below the title line.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	paneWidth := m.width/len(m.panes) - 2
	paneHeight := m.height - 4 // border, title, status bar
	if paneWidth < 8 {
		paneWidth = 8
	}
	if paneHeight < 2 {
		paneHeight = 2
	}

	m.handler.HitMap.Clear()
	x := 0
	for _, pane := range m.panes {
		pane.X = x + 1 // inside left border
		pane.Y = 2     // border plus title line
		pane.W = paneWidth - 2
		pane.H = paneHeight - 1
		m.handler.HitMap.AddRect(pane.Title, pane.X, pane.Y, pane.W, pane.H, pane.Handle)
		x += paneWidth
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.help != "" {
		return m.help
	}
	if m.form != nil {
		return m.form.view()
	}

	rendered := make([]string, 0, len(m.panes))
	for _, pane := range m.panes {
		if pane.Visible {
			rendered = append(rendered, pane.Render())
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return body + "\n" + m.statusBar()
}

func (m *Model) statusBar() string {
	if m.err != nil {
		return statusErrStyle.Render(ansi.Truncate("error: "+m.err.Error(), m.width, "…"))
	}
	if m.filtering {
		return filterStyle.Render("/" + m.filter + "▌")
	}

	parts := make([]string, 0, len(m.panes)+1)
	for _, st := range m.engine.Status() {
		marker := " "
		if st.Active {
			marker = "*"
		}
		hot := "-"
		if st.LastHit != hover.HitNone {
			hot = fmt.Sprintf("%d", st.LastHit)
		}
		pane := m.native.Pane(st.Handle)
		parts = append(parts, fmt.Sprintf("%s%s hot=%s", marker, pane.Title, hot))
	}
	parts = append(parts, "?=help  q=quit")
	return statusStyle.Render(ansi.Truncate(strings.Join(parts, "  |  "), m.width, "…"))
}
