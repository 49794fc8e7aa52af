package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
)

const settingsFile = "settings.json"

// Settings are the user-tunable hover parameters persisted between demo
// runs. Engine runtime state is never persisted, only these knobs.
type Settings struct {
	PollIntervalMs       int    `json:"poll_interval_ms"`
	JigglePixels         int    `json:"jiggle_pixels"`
	ScrollGraceMs        int    `json:"scroll_grace_ms"`
	PointerScrollGraceMs int    `json:"pointer_scroll_grace_ms"`
	KeyboardGraceMs      int    `json:"keyboard_grace_ms,omitempty"`
	HoverTimeoutMs       int    `json:"hover_timeout_ms"`
	Underline            bool   `json:"underline"`
	OneClickActivation   bool   `json:"one_click_activation"`
	DatabasePath         string `json:"database_path,omitempty"`
}

// Default returns settings mirroring the engine defaults.
func Default() Settings {
	return Settings{
		PollIntervalMs:       int(hover.DefaultPollInterval / time.Millisecond),
		JigglePixels:         hover.DefaultJigglePixels,
		ScrollGraceMs:        int(hover.DefaultScrollGrace / time.Millisecond),
		PointerScrollGraceMs: int(hover.DefaultPointerScrollGrace / time.Millisecond),
		HoverTimeoutMs:       int(hover.DefaultHoverTimeout / time.Millisecond),
		Underline:            true,
		OneClickActivation:   true,
	}
}

// Load reads the settings from dir, returning defaults when no file exists.
func Load(dir string) (Settings, error) {
	data, err := os.ReadFile(filepath.Join(dir, settingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, err
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes the settings to dir, creating it if needed.
func Save(dir string, s Settings) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, settingsFile), data, 0644)
}

// HoverConfig converts the settings into an engine config for one owner
// group. Out-of-range values are left for the engine to clamp.
func (s Settings) HoverConfig(owner string) hover.Config {
	return hover.Config{
		Owner:              owner,
		Underline:          s.Underline,
		OneClickActivate:   s.OneClickActivation,
		HoverTimeout:       time.Duration(s.HoverTimeoutMs) * time.Millisecond,
		PollInterval:       time.Duration(s.PollIntervalMs) * time.Millisecond,
		JigglePixels:       s.JigglePixels,
		ScrollGrace:        time.Duration(s.ScrollGraceMs) * time.Millisecond,
		PointerScrollGrace: time.Duration(s.PointerScrollGraceMs) * time.Millisecond,
		KeyboardGrace:      time.Duration(s.KeyboardGraceMs) * time.Millisecond,
	}
}
