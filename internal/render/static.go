package render

import (
	"github.com/PuerkitoBio/goquery"

	"skilledstack.dev/internal/models"
)

// StaticContent points the placeholder resume link at the configured
// resume URL. It reports whether the link was rewritten.
func (r *Renderer) StaticContent(doc *goquery.Document, cfg models.SiteConfig) bool {
	link := doc.Find(ResumeLinkSelector).First()
	if link.Length() == 0 {
		return false
	}

	resume := safeURL(cfg.ResumeURL.String())
	if resume == "" {
		return false
	}
	link.SetAttr("href", resume)
	return true
}
