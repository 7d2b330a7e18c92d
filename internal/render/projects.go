package render

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/flosch/pongo2/v6"

	"skilledstack.dev/internal/models"
)

type projectView struct {
	Title   string
	Summary string
	Cover   string
	Stack   []string
	Link    string
}

// Projects replaces the content of the first project grid with one card
// per project.
func (r *Renderer) Projects(doc *goquery.Document, projects []models.Project) (int, error) {
	container := doc.Find(ProjectGridSelector).First()
	if container.Length() == 0 {
		return 0, nil
	}

	views := make([]projectView, len(projects))
	for i, p := range projects {
		views[i] = projectView{
			Title:   p.Title.String(),
			Summary: r.prose(p.Summary.String()),
			Cover:   safeURL(p.Cover.String()),
			Stack:   []string(p.Stack),
			Link:    safeURL(p.Link.String()),
		}
	}

	html, err := r.execute(projectCardsTemplate, pongo2.Context{"projects": views})
	if err != nil {
		return 0, err
	}
	container.SetHtml(html)
	return 1, nil
}
