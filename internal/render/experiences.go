package render

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flosch/pongo2/v6"

	"skilledstack.dev/internal/models"
)

type experienceView struct {
	Role    string
	Company string
	Date    string
	Points  []string
	Skills  []string
}

// Experiences renders the experience list into every experience container,
// truncated to that container's data-limit.
func (r *Renderer) Experiences(doc *goquery.Document, experiences []models.Experience) (int, error) {
	containers := doc.Find(ExperienceSelector)
	if containers.Length() == 0 {
		return 0, nil
	}

	var renderErr error
	containers.EachWithBreak(func(_ int, container *goquery.Selection) bool {
		limit, _ := container.Attr(ExperienceLimitAttr)
		items := models.Truncate(experiences, ParseLimit(limit))

		html, err := r.experienceMarkup(items)
		if err != nil {
			renderErr = err
			return false
		}
		container.SetHtml(html)
		return true
	})
	if renderErr != nil {
		return 0, renderErr
	}
	return containers.Length(), nil
}

func (r *Renderer) experienceMarkup(items []models.Experience) (string, error) {
	if len(items) == 0 {
		return r.execute(experienceEmptyTemplate, pongo2.Context{})
	}

	views := make([]experienceView, len(items))
	for i, exp := range items {
		points := make([]string, len(exp.Points))
		for j, p := range exp.Points {
			points[j] = r.prose(p)
		}
		views[i] = experienceView{
			Role:    exp.Role.String(),
			Company: exp.Company.String(),
			Date:    exp.Date.String(),
			Points:  points,
			Skills:  []string(exp.Skills),
		}
	}
	return r.execute(experienceCardsTemplate, pongo2.Context{"experiences": views})
}

// ParseLimit reads the leading base-10 integer of s. Anything without a
// leading integer is 0, meaning unlimited.
func ParseLimit(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
