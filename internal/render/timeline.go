package render

import (
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/flosch/pongo2/v6"

	"skilledstack.dev/internal/models"
)

// TimelineStagger is the transition delay added per timeline item
const TimelineStagger = 150 * time.Millisecond

type timelineView struct {
	Delay       string
	Date        string
	Title       string
	Description string
}

// TransitionDelay returns the reveal delay of the item at index
func TransitionDelay(index int) time.Duration {
	return time.Duration(index) * TimelineStagger
}

// Timeline appends one item per event to the first timeline container,
// keeping whatever the container already holds.
func (r *Renderer) Timeline(doc *goquery.Document, events []models.TimelineEvent) (int, error) {
	container := doc.Find(TimelineSelector).First()
	if container.Length() == 0 {
		return 0, nil
	}
	if len(events) == 0 {
		return 1, nil
	}

	items := make([]timelineView, len(events))
	for i, ev := range events {
		items[i] = timelineView{
			Delay:       strconv.FormatFloat(TransitionDelay(i).Seconds(), 'f', -1, 64),
			Date:        ev.Date.String(),
			Title:       ev.Title.String(),
			Description: r.prose(ev.Description.String()),
		}
	}

	html, err := r.execute(timelineItemsTemplate, pongo2.Context{"items": items})
	if err != nil {
		return 0, err
	}
	container.AppendHtml(html)
	return 1, nil
}
