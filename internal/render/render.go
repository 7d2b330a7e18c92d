// Package render writes portfolio data into the containers of a parsed
// page.
//
// Every renderer locates its own containers with a fixed selector and
// returns how many it wrote. A page without any matching container is left
// untouched, which lets one pipeline serve differently laid out pages.
package render

import (
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

// Container selectors
const (
	ProjectGridSelector  = "#projects .grid-2, #project-grid .grid-2"
	TimelineSelector     = ".timeline-container"
	SkillsSelector       = ".skills-marquee"
	ExperienceSelector   = ".experience-timeline-container"
	ResumeLinkSelector   = `a[href="#"]`
	ExperienceLimitAttr  = "data-limit"
	EmptyExperiencesText = "No experiences found."
)

const (
	projectCardsTemplate    = "project_cards.tpl"
	timelineItemsTemplate   = "timeline_items.tpl"
	skillChipsTemplate      = "skill_chips.tpl"
	experienceCardsTemplate = "experience_cards.tpl"
	experienceEmptyTemplate = "experience_empty.tpl"
)

//go:embed templates/*.tpl
var templateFiles embed.FS

// Renderer holds the compiled fragment templates and the sanitizer used
// for prose fields.
type Renderer struct {
	templates map[string]*pongo2.Template
	policy    *bluemonday.Policy
}

// New compiles the embedded fragment templates
func New() (*Renderer, error) {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("render: templates: %w", err)
	}

	set := pongo2.NewSet("portfolio", pongo2.NewFSLoader(sub))
	r := &Renderer{
		templates: make(map[string]*pongo2.Template),
		policy:    bluemonday.UGCPolicy(),
	}

	names := []string{
		projectCardsTemplate,
		timelineItemsTemplate,
		skillChipsTemplate,
		experienceCardsTemplate,
		experienceEmptyTemplate,
	}
	for _, name := range names {
		tpl, err := set.FromFile(name)
		if err != nil {
			return nil, fmt.Errorf("render: load template %q: %w", name, err)
		}
		r.templates[name] = tpl
	}
	return r, nil
}

func (r *Renderer) execute(name string, data pongo2.Context) (string, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("render: unknown template %q", name)
	}
	out, err := tpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("render: execute %q: %w", name, err)
	}
	return out, nil
}

// prose sanitizes markup-bearing text so it can be emitted unescaped
func (r *Renderer) prose(s string) string {
	return r.policy.Sanitize(s)
}

// safeURL keeps relative, http, https and mailto references and drops
// everything else.
func safeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return trimmed
	default:
		return ""
	}
}
