package behavior

import (
	"encoding/json"
	"fmt"
	"html"

	"github.com/PuerkitoBio/goquery"
)

// Page elements the runtime attaches to
const (
	NavbarID           = "navbar"
	ThemeToggleID      = "theme-toggle"
	MobileMenuToggleID = "mobile-menu-toggle"
	MobileMenuCloseID  = "mobile-menu-close"
	MobileMenuID       = "mobile-menu"
	ResumeButtonID     = "resume-cta-btn"
	ModalOverlayID     = "resume-modal-overlay"
	ModalCloseID       = "modal-close-btn"
	BackgroundID       = "animated-background"

	StatNumberSelector  = ".stat-number"
	StatTargetAttr      = "data-target"
	RevealSelector      = ".animated-section, .timeline-container"
	HeroContentSelector = "#hero .container"
	MarqueeSelector     = ".skills-marquee-container"

	SettingsElementID = "behavior-settings"

	// Icon placeholders are materialized by window.lucide.createIcons. The
	// page has to load lucide itself.
	IconSelector       = "[data-lucide]"
	IconScriptSelector = `script[src*="lucide"]`
	wiredAttr         = "data-behavior-wired"
)

// Classes the runtime toggles
const (
	ScrolledClass  = "scrolled"
	HiddenClass    = "hidden"
	DarkClass      = "dark"
	VisibleClass   = "visible"
	ModalOpenClass = "modal-open"
	RevealedClass  = "is-visible"
)

// Report describes what the runtime will find on a wired page
type Report struct {
	StatCounters   int
	InvalidTargets int
	RevealTargets  int
	Navbar         bool
	ThemeToggle    bool
	MobileMenu     bool
	Modal          bool
	Hero           bool
	Background     bool
	Marquee        bool

	Icons      int
	IconLoader bool
}

type runtimeSettings struct {
	Settings
	RestartDelayMs int64 `json:"restartDelayMs"`
}

func newRuntimeSettings(s Settings) runtimeSettings {
	return runtimeSettings{Settings: s, RestartDelayMs: s.MarqueeRestartDelay.Milliseconds()}
}

// Wire injects the settings block and the runtime script into doc. It is
// fire-once: a document that is already wired is left alone and wired is
// false.
func Wire(doc *goquery.Document, settings Settings) (report Report, wired bool, err error) {
	root := doc.Find("html").First()
	if _, done := root.Attr(wiredAttr); done {
		return inspect(doc), false, nil
	}

	payload, err := json.Marshal(newRuntimeSettings(settings))
	if err != nil {
		return Report{}, false, fmt.Errorf("behavior: encode settings: %w", err)
	}

	src := settings.RuntimeSrc
	if src == "" {
		src = DefaultRuntimeSrc
	}

	body := doc.Find("body").First()
	body.AppendHtml(fmt.Sprintf(`<script type="application/json" id="%s">%s</script>`, SettingsElementID, payload))
	body.AppendHtml(fmt.Sprintf(`<script src="%s" defer></script>`, html.EscapeString(src)))
	root.SetAttr(wiredAttr, "")

	return inspect(doc), true, nil
}

func inspect(doc *goquery.Document) Report {
	byID := func(id string) bool {
		return doc.Find("#"+id).Length() > 0
	}

	r := Report{
		RevealTargets: doc.Find(RevealSelector).Length(),
		Navbar:        byID(NavbarID),
		ThemeToggle:   byID(ThemeToggleID),
		MobileMenu:    byID(MobileMenuID) && (byID(MobileMenuToggleID) || byID(MobileMenuCloseID)),
		Modal:         byID(ModalOverlayID),
		Hero:          doc.Find(HeroContentSelector).Length() > 0,
		Background:    byID(BackgroundID),
		Marquee:       doc.Find(MarqueeSelector).Length() > 0,
		Icons:         doc.Find(IconSelector).Length(),
		IconLoader:    doc.Find(IconScriptSelector).Length() > 0,
	}

	doc.Find(StatNumberSelector).Each(func(_ int, s *goquery.Selection) {
		r.StatCounters++
		attr, _ := s.Attr(StatTargetAttr)
		if _, ok := ParseTarget(attr); !ok {
			r.InvalidTargets++
		}
	})
	return r
}
