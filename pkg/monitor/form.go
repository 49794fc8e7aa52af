package monitor

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/config"
)

// settingsForm edits the hover knobs in place. Completing the form makes
// the model re-register every pane with the new values; aborting keeps the
// old settings.
type settingsForm struct {
	form *huh.Form
	orig config.Settings
	done bool

	poll         string
	jiggle       string
	grace        string
	pointerGrace string
	hoverTimeout string
	underline    bool
	oneClick     bool
}

func validInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}

func newSettingsForm(s config.Settings) *settingsForm {
	f := &settingsForm{
		orig:         s,
		poll:         strconv.Itoa(s.PollIntervalMs),
		jiggle:       strconv.Itoa(s.JigglePixels),
		grace:        strconv.Itoa(s.ScrollGraceMs),
		pointerGrace: strconv.Itoa(s.PointerScrollGraceMs),
		hoverTimeout: strconv.Itoa(s.HoverTimeoutMs),
		underline:    s.Underline,
		oneClick:     s.OneClickActivation,
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Poll interval (ms)").
				Description("Tick cadence of the hover scheduler").
				Value(&f.poll).
				Validate(validInt),
			huh.NewInput().
				Title("Jiggle size (cells)").
				Description("Cursor displacement used by the handshake").
				Value(&f.jiggle).
				Validate(validInt),
			huh.NewInput().
				Title("Scroll grace (ms)").
				Description("Quiet window after a wheel or scrollbar event").
				Value(&f.grace).
				Validate(validInt),
			huh.NewInput().
				Title("Pointer scroll grace (ms)").
				Description("Quiet window for precision-device scrolling").
				Value(&f.pointerGrace).
				Validate(validInt),
			huh.NewInput().
				Title("Hover timeout (ms)").
				Value(&f.hoverTimeout).
				Validate(validInt),
			huh.NewConfirm().
				Title("Underline hot row").
				Value(&f.underline),
			huh.NewConfirm().
				Title("One-click activation").
				Value(&f.oneClick),
		),
	)
	return f
}

func (f *settingsForm) init() tea.Cmd {
	return f.form.Init()
}

func (f *settingsForm) update(msg tea.Msg) tea.Cmd {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}
	if f.form.State == huh.StateCompleted || f.form.State == huh.StateAborted {
		f.done = true
	}
	return cmd
}

func (f *settingsForm) view() string {
	return f.form.View()
}

// settings returns the edited values, or the originals when aborted.
func (f *settingsForm) settings() (config.Settings, error) {
	if f.form.State == huh.StateAborted {
		return f.orig, nil
	}

	s := f.orig
	var err error
	if s.PollIntervalMs, err = strconv.Atoi(f.poll); err != nil {
		return f.orig, fmt.Errorf("poll interval: %w", err)
	}
	if s.JigglePixels, err = strconv.Atoi(f.jiggle); err != nil {
		return f.orig, fmt.Errorf("jiggle size: %w", err)
	}
	if s.ScrollGraceMs, err = strconv.Atoi(f.grace); err != nil {
		return f.orig, fmt.Errorf("scroll grace: %w", err)
	}
	if s.PointerScrollGraceMs, err = strconv.Atoi(f.pointerGrace); err != nil {
		return f.orig, fmt.Errorf("pointer scroll grace: %w", err)
	}
	if s.HoverTimeoutMs, err = strconv.Atoi(f.hoverTimeout); err != nil {
		return f.orig, fmt.Errorf("hover timeout: %w", err)
	}
	s.Underline = f.underline
	s.OneClickActivation = f.oneClick
	return s, nil
}
