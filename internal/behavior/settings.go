// Package behavior wires the cosmetic page behaviors: navbar hide on
// scroll, theme toggle, mobile menu, resume modal, scroll reveal, parallax,
// stat counters and the marquee animation restart.
//
// The behaviors run in the browser through the embedded runtime script.
// Wire injects that script plus a settings block into a rendered page
// exactly once.
//
// The Go types here (Navbar, Theme, MobileMenu, Modal, Counter, Reveal,
// ParallaxAt) are the reference definition of each rule, and the element
// IDs, selectors, class names and default settings are declared once in
// this package. The runtime's tests check it against those declarations.
package behavior

import "time"

// Settings holds the tunables of every behavior
type Settings struct {
	// ScrolledOffset is the scroll offset past which the navbar gets the
	// "scrolled" class.
	ScrolledOffset float64 `yaml:"scrolled_offset" json:"scrolledOffset"`

	// HideOffset is the scroll offset past which scrolling down hides the
	// navbar.
	HideOffset float64 `yaml:"hide_offset" json:"hideOffset"`

	// RevealThreshold is the visible fraction that reveals an animated
	// section.
	RevealThreshold float64 `yaml:"reveal_threshold" json:"revealThreshold"`

	// StatThreshold is the visible fraction that starts a stat counter.
	StatThreshold float64 `yaml:"stat_threshold" json:"statThreshold"`

	// CounterSteps is the number of frames a stat counter takes.
	CounterSteps int `yaml:"counter_steps" json:"counterSteps"`

	HeroFactor       float64 `yaml:"hero_factor" json:"heroFactor"`
	FadeDistance     float64 `yaml:"fade_distance" json:"fadeDistance"`
	BackgroundFactor float64 `yaml:"background_factor" json:"backgroundFactor"`

	// MarqueeRestart enables the marquee animation restart hook, run once
	// MarqueeRestartDelay after start-up.
	MarqueeRestart      bool          `yaml:"marquee_restart" json:"marqueeRestart"`
	MarqueeRestartDelay time.Duration `yaml:"marquee_restart_delay" json:"-"`

	// RuntimeSrc is the script URL injected into pages.
	RuntimeSrc string `yaml:"runtime_src" json:"-"`
}

// DefaultRuntimeSrc is where the handlers mount the runtime script
const DefaultRuntimeSrc = "/static/js/interactive.js"

// DefaultSettings returns the stock behavior settings
func DefaultSettings() Settings {
	return Settings{
		ScrolledOffset:      50,
		HideOffset:          100,
		RevealThreshold:     0.15,
		StatThreshold:       0.5,
		CounterSteps:        100,
		HeroFactor:          0.4,
		FadeDistance:        600,
		BackgroundFactor:    0.5,
		MarqueeRestart:      true,
		MarqueeRestartDelay: 100 * time.Millisecond,
		RuntimeSrc:          DefaultRuntimeSrc,
	}
}

// RestartDelay reports when the marquee restart hook runs and whether it
// runs at all.
func (s Settings) RestartDelay() (time.Duration, bool) {
	return s.MarqueeRestartDelay, s.MarqueeRestart
}
