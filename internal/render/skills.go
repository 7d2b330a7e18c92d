package render

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/flosch/pongo2/v6"

	"skilledstack.dev/internal/models"
)

// DefaultPalette is the skill chip color rotation
var DefaultPalette = []string{"#9F9CF3", "#A7F3D0", "#FECACA", "#FDE68A", "#BFDBFE"}

// ColorCycle hands out palette colors in order, wrapping around. One
// cycle is shared by every container written in a render pass.
type ColorCycle struct {
	palette []string
	index   int
}

// NewColorCycle creates a cycle over palette, or DefaultPalette when none
// is given.
func NewColorCycle(palette ...string) *ColorCycle {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ColorCycle{palette: append([]string(nil), palette...)}
}

// Next returns the current color and advances the cycle
func (c *ColorCycle) Next() string {
	color := c.palette[c.index%len(c.palette)]
	c.index++
	return color
}

// Index is the number of colors handed out so far
func (c *ColorCycle) Index() int {
	return c.index
}

type skillView struct {
	Name  string
	Level string
	Color string
}

// Skills writes the same chip markup into every skills marquee. Colors are
// drawn from cycle once per skill; a nil cycle starts a fresh one.
func (r *Renderer) Skills(doc *goquery.Document, skills []models.Skill, cycle *ColorCycle) (int, error) {
	containers := doc.Find(SkillsSelector)
	if containers.Length() == 0 {
		return 0, nil
	}
	if cycle == nil {
		cycle = NewColorCycle()
	}

	views := make([]skillView, len(skills))
	for i, s := range skills {
		views[i] = skillView{
			Name:  s.Name.String(),
			Level: s.Level.String(),
			Color: cycle.Next(),
		}
	}

	html, err := r.execute(skillChipsTemplate, pongo2.Context{"skills": views})
	if err != nil {
		return 0, err
	}
	containers.SetHtml(html)
	return containers.Length(), nil
}
