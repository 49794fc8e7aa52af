package hover

import "time"

// Default and minimum values for Config fields. Registration clamps
// anything below a minimum up to it.
const (
	DefaultHoverTimeout       = 1000 * time.Millisecond
	DefaultPollInterval       = 30 * time.Millisecond
	DefaultJigglePixels       = 1
	DefaultScrollGrace        = 150 * time.Millisecond
	DefaultPointerScrollGrace = 220 * time.Millisecond

	MinHoverTimeout = 10 * time.Millisecond
	MinPollInterval = 10 * time.Millisecond
	MinScrollGrace  = 50 * time.Millisecond
)

// Config holds the per-instance tuning for hover tracking.
// Underline, OneClickActivate and HoverTimeout are passed through to the
// native widget at registration and not interpreted by the engine.
type Config struct {
	// Owner groups instances for UnregisterGroup. Empty is a valid group.
	Owner string

	Underline        bool
	OneClickActivate bool
	HoverTimeout     time.Duration

	// PollInterval is this instance's requested tick cadence. The shared
	// scheduler runs at the minimum across all registered instances.
	PollInterval time.Duration

	// JigglePixels is the synthetic cursor displacement distance.
	JigglePixels int

	// ScrollGrace is the window after a discrete wheel notch during which
	// polling is suppressed.
	ScrollGrace time.Duration

	// PointerScrollGrace is the (longer) window used for pointer-wheel and
	// gesture scrolling.
	PointerScrollGrace time.Duration

	// KeyboardGrace is the window for scrollbar and keyboard navigation.
	// Zero means "use ScrollGrace".
	KeyboardGrace time.Duration
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Underline:          true,
		OneClickActivate:   true,
		HoverTimeout:       DefaultHoverTimeout,
		PollInterval:       DefaultPollInterval,
		JigglePixels:       DefaultJigglePixels,
		ScrollGrace:        DefaultScrollGrace,
		PointerScrollGrace: DefaultPointerScrollGrace,
	}
}

// normalize fills zero durations with defaults and clamps everything to the
// documented minimums. Boolean fields are taken as-is; start from
// DefaultConfig to get the default-on behavior.
func (c *Config) normalize() {
	if c.HoverTimeout == 0 {
		c.HoverTimeout = DefaultHoverTimeout
	}
	if c.HoverTimeout < MinHoverTimeout {
		c.HoverTimeout = MinHoverTimeout
	}
	if c.PollInterval == 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.PollInterval < MinPollInterval {
		c.PollInterval = MinPollInterval
	}
	if c.JigglePixels < 1 {
		c.JigglePixels = DefaultJigglePixels
	}
	if c.ScrollGrace == 0 {
		c.ScrollGrace = DefaultScrollGrace
	}
	if c.ScrollGrace < MinScrollGrace {
		c.ScrollGrace = MinScrollGrace
	}
	if c.PointerScrollGrace == 0 {
		c.PointerScrollGrace = DefaultPointerScrollGrace
	}
	if c.KeyboardGrace == 0 {
		c.KeyboardGrace = c.ScrollGrace
	}
}
