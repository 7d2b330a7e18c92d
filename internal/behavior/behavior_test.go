package behavior

import (
	"encoding/json"
	"io/fs"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
)

func TestNavbar(t *testing.T) {
	n := NewNavbar(DefaultSettings(), 0)

	steps := []struct {
		y    float64
		want []string
	}{
		{30, nil},
		{60, []string{"scrolled"}},
		{150, []string{"scrolled", "hidden"}},
		{120, []string{"scrolled"}},
		{130, []string{"scrolled", "hidden"}},
		{130, []string{"scrolled"}},
		{40, nil},
	}
	for _, step := range steps {
		n.Scroll(step.y)
		if diff := cmp.Diff(step.want, n.Classes()); diff != "" {
			t.Fatalf("scroll to %v (-want +got):\n%s", step.y, diff)
		}
	}
}

func TestNavbar_DownBelowHideOffsetStaysShown(t *testing.T) {
	n := NewNavbar(DefaultSettings(), 0)
	n.Scroll(90)
	if n.Hidden {
		t.Fatalf("scrolling down to 90 should not hide the navbar")
	}
	if !n.Scrolled {
		t.Fatalf("90 is past the scrolled offset")
	}
}

func TestThemeAndMenu(t *testing.T) {
	var theme Theme
	if !theme.Toggle() || theme.Toggle() {
		t.Fatalf("toggle should alternate starting from light")
	}

	var menu MobileMenu
	menu.Open()
	if !menu.Visible {
		t.Fatalf("menu should open")
	}
	menu.Close()
	if menu.Visible {
		t.Fatalf("menu should close")
	}
}

func TestModal(t *testing.T) {
	var m Modal

	m.Open()
	if diff := cmp.Diff([]string{"visible"}, m.OverlayClasses()); diff != "" {
		t.Fatalf("overlay classes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"modal-open"}, m.BodyClasses()); diff != "" {
		t.Fatalf("body classes (-want +got):\n%s", diff)
	}

	m.ClickOverlay(false)
	if !m.Visible {
		t.Fatalf("clicking a descendant of the overlay must not close the modal")
	}
	m.ClickOverlay(true)
	if m.Visible {
		t.Fatalf("clicking the overlay itself should close the modal")
	}

	m.Open()
	m.KeyDown("Enter")
	if !m.Visible {
		t.Fatalf("only Escape closes the modal")
	}
	m.KeyDown(EscapeKey)
	if m.Visible || m.BodyClasses() != nil {
		t.Fatalf("Escape should close the modal")
	}

	m.KeyDown(EscapeKey)
	if m.Visible {
		t.Fatalf("Escape on a closed modal is a no-op")
	}
}

func TestCounter_ReachesTargetExactly(t *testing.T) {
	target, ok := ParseTarget("250")
	if !ok {
		t.Fatalf("parse target")
	}

	frames := NewCounter(target, DefaultSettings().CounterSteps).Frames()
	if len(frames) != 100 {
		t.Fatalf("expected 100 frames, got %d", len(frames))
	}
	if frames[0] != 3 {
		t.Fatalf("first frame = %v, want ceil(2.5)", frames[0])
	}
	for i := 1; i < len(frames); i++ {
		if frames[i] <= frames[i-1] {
			t.Fatalf("frame %d (%v) does not increase over %v", i, frames[i], frames[i-1])
		}
		if frames[i] > 250 {
			t.Fatalf("frame %d exceeds the target: %v", i, frames[i])
		}
	}
	if last := frames[len(frames)-1]; last != 250 {
		t.Fatalf("last frame = %v", last)
	}
}

func TestCounter_StopsAfterTarget(t *testing.T) {
	c := NewCounter(10, 4)
	var got []float64
	for {
		v, more := c.Next()
		got = append(got, v)
		if !more {
			break
		}
	}
	if diff := cmp.Diff([]float64{3, 5, 8, 10}, got); diff != "" {
		t.Fatalf("frames (-want +got):\n%s", diff)
	}
	if v, more := c.Next(); more || v != 10 {
		t.Fatalf("a finished counter should keep showing the target, got %v %v", v, more)
	}
}

func TestCounter_NonPositiveTarget(t *testing.T) {
	if frames := NewCounter(0, 100).Frames(); len(frames) != 1 || frames[0] != 0 {
		t.Fatalf("zero target frames: %v", frames)
	}
}

func TestParseTarget(t *testing.T) {
	for _, in := range []string{"", "abc", "NaN", "Inf"} {
		if _, ok := ParseTarget(in); ok {
			t.Fatalf("ParseTarget(%q) should fail", in)
		}
	}
	if v, ok := ParseTarget(" 42 "); !ok || v != 42 {
		t.Fatalf("ParseTarget(42) = %v %v", v, ok)
	}
}

func TestReveal_OneShot(t *testing.T) {
	r := NewReveal(DefaultSettings().RevealThreshold)
	r.Observe("about")
	r.Observe("skills")

	if r.Intersect("about", 0.1) {
		t.Fatalf("10%% visible is below the threshold")
	}
	if !r.Intersect("about", 0.15) {
		t.Fatalf("15%% visible should reveal")
	}
	if r.Observing("about") || !r.Visible("about") {
		t.Fatalf("revealed element should stop being observed")
	}
	if r.Intersect("about", 1) {
		t.Fatalf("reveal fires only once")
	}
	if !r.Observing("skills") || r.Visible("skills") {
		t.Fatalf("other elements are unaffected")
	}
	if r.Intersect("unknown", 1) {
		t.Fatalf("unobserved elements never reveal")
	}
}

func TestParallaxAt(t *testing.T) {
	s := DefaultSettings()

	got := s.ParallaxAt(300)
	want := ParallaxFrame{HeroTranslateY: 120, HeroOpacity: 0.5, BackgroundTranslateY: 150}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("frame at 300 (-want +got):\n%s", diff)
	}
	if s.ParallaxAt(600).HeroOpacity != 0 || s.ParallaxAt(900).HeroOpacity != 0 {
		t.Fatalf("opacity should reach and stay at zero from 600px")
	}
	if s.ParallaxAt(0).HeroOpacity != 1 {
		t.Fatalf("opacity starts at 1")
	}
}

func TestRestartDelay(t *testing.T) {
	d, on := DefaultSettings().RestartDelay()
	if !on || d != 100*time.Millisecond {
		t.Fatalf("default restart hook = %v %v", d, on)
	}
}

const fullPage = `<html><head></head><body>
<nav id="navbar"><button id="theme-toggle"></button><button id="mobile-menu-toggle"></button></nav>
<div id="mobile-menu"><button id="mobile-menu-close"></button></div>
<div id="animated-background"></div>
<section id="hero"><div class="container"><span class="stat-number" data-target="250">0</span><span class="stat-number" data-target="lots">0</span></div></section>
<section class="animated-section"></section><div class="timeline-container"></div>
<div class="skills-marquee-container"></div>
<div id="resume-modal-overlay"><button id="modal-close-btn"></button></div>
</body></html>`

func TestWire_FireOnce(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fullPage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	settings := DefaultSettings()
	report, wired, err := Wire(doc, settings)
	if err != nil || !wired {
		t.Fatalf("wire: wired=%v err=%v", wired, err)
	}

	want := Report{
		StatCounters:   2,
		InvalidTargets: 1,
		RevealTargets:  2,
		Navbar:         true,
		ThemeToggle:    true,
		MobileMenu:     true,
		Modal:          true,
		Hero:           true,
		Background:     true,
		Marquee:        true,
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Fatalf("report (-want +got):\n%s", diff)
	}

	scripts := doc.Find(`script[src="` + DefaultRuntimeSrc + `"]`)
	if scripts.Length() != 1 {
		t.Fatalf("expected one runtime script, got %d", scripts.Length())
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(doc.Find("#"+SettingsElementID).Text()), &payload); err != nil {
		t.Fatalf("settings block: %v", err)
	}
	if payload["restartDelayMs"] != float64(100) || payload["revealThreshold"] != 0.15 {
		t.Fatalf("unexpected settings payload: %v", payload)
	}

	if _, again, err := Wire(doc, settings); again || err != nil {
		t.Fatalf("second wire should be a no-op: wired=%v err=%v", again, err)
	}
	if n := doc.Find("script").Length(); n != 2 {
		t.Fatalf("expected exactly two injected scripts after rewiring, got %d", n)
	}
}

func runtimeSource(t *testing.T) string {
	t.Helper()
	data, err := fs.ReadFile(RuntimeFS(), RuntimeFile)
	if err != nil {
		t.Fatalf("read runtime: %v", err)
	}
	return string(data)
}

var objectKey = regexp.MustCompile(`(?m)^(\s*)(\w+):`)

func TestRuntimeDefaultsMatchSettings(t *testing.T) {
	src := runtimeSource(t)
	start := strings.Index(src, "var defaults = {")
	if start < 0 {
		t.Fatalf("runtime has no defaults block")
	}
	literal := src[start+len("var defaults = "):]
	literal = literal[:strings.Index(literal, "}")+1]

	var got map[string]any
	if err := json.Unmarshal([]byte(objectKey.ReplaceAllString(literal, `$1"$2":`)), &got); err != nil {
		t.Fatalf("defaults block is not a plain object literal: %v\n%s", err, literal)
	}

	encoded, err := json.Marshal(newRuntimeSettings(DefaultSettings()))
	if err != nil {
		t.Fatalf("encode settings: %v", err)
	}
	var want map[string]any
	if err := json.Unmarshal(encoded, &want); err != nil {
		t.Fatalf("decode settings: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("runtime defaults drifted from DefaultSettings (-want +got):\n%s", diff)
	}
}

func TestRuntimeUsesDeclaredNames(t *testing.T) {
	src := runtimeSource(t)
	names := []string{
		NavbarID, ThemeToggleID, MobileMenuToggleID, MobileMenuCloseID, MobileMenuID,
		ResumeButtonID, ModalOverlayID, ModalCloseID, BackgroundID, SettingsElementID,
		StatNumberSelector, StatTargetAttr, RevealSelector, HeroContentSelector, MarqueeSelector,
		ScrolledClass, HiddenClass, DarkClass, VisibleClass, ModalOpenClass, RevealedClass,
		EscapeKey,
	}
	for _, name := range names {
		if !strings.Contains(src, "'"+name+"'") {
			t.Errorf("runtime does not use %q", name)
		}
	}
	if !strings.Contains(src, "createIcons") {
		t.Errorf("runtime does not materialize icons")
	}
}

func TestWire_ReportsIcons(t *testing.T) {
	cases := []struct {
		page   string
		icons  int
		loader bool
	}{
		{`<html><body><i data-lucide="github"></i><i data-lucide="mail"></i></body></html>`, 2, false},
		{`<html><head><script src="https://unpkg.com/lucide@latest"></script></head><body><i data-lucide="github"></i></body></html>`, 1, true},
		{`<html><body></body></html>`, 0, false},
	}
	for _, tc := range cases {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(tc.page))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		report, _, err := Wire(doc, DefaultSettings())
		if err != nil {
			t.Fatalf("wire: %v", err)
		}
		if report.Icons != tc.icons || report.IconLoader != tc.loader {
			t.Errorf("icons=%d loader=%v, want %d %v", report.Icons, report.IconLoader, tc.icons, tc.loader)
		}
	}
}

func TestRuntimePath(t *testing.T) {
	cases := []struct {
		src    string
		want   string
		onSite bool
	}{
		{"", DefaultRuntimeSrc, true},
		{"/static/js/interactive.js", "/static/js/interactive.js", true},
		{"/assets/app.js", "/assets/app.js", true},
		{"/js/site.js?v=3", "/js/site.js", true},
		{"https://cdn.example.com/app.js", DefaultRuntimeSrc, false},
		{"//cdn.example.com/app.js", DefaultRuntimeSrc, false},
		{"js/app.js", DefaultRuntimeSrc, false},
	}
	for _, tc := range cases {
		got, onSite := RuntimePath(tc.src)
		if got != tc.want || onSite != tc.onSite {
			t.Errorf("RuntimePath(%q) = %q, %v; want %q, %v", tc.src, got, onSite, tc.want, tc.onSite)
		}
	}

	data, err := Runtime()
	if err != nil || len(data) == 0 {
		t.Fatalf("Runtime() = %d bytes, %v", len(data), err)
	}
}
