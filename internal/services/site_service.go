package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"skilledstack.dev/internal/behavior"
	"skilledstack.dev/internal/loader"
	"skilledstack.dev/internal/models"
	"skilledstack.dev/internal/render"
)

// SiteService runs the page pipeline: load the data batch, render every
// slot that loaded, then wire the interactive behaviors.
type SiteService struct {
	loader   *loader.Loader
	renderer *render.Renderer
	settings behavior.Settings
	fallback []models.Experience
	logger   *slog.Logger
}

// SiteOptions configures a SiteService
type SiteOptions struct {
	Behavior behavior.Settings

	// Fallback replaces the built-in fallback experiences when non-nil.
	Fallback []models.Experience

	Logger *slog.Logger
}

// NewSiteService creates a new SiteService
func NewSiteService(l *loader.Loader, opts SiteOptions) (*SiteService, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SiteService{
		loader:   l,
		renderer: renderer,
		settings: opts.Behavior,
		fallback: opts.Fallback,
		logger:   logger,
	}, nil
}

// Load fetches a fresh data bundle
func (s *SiteService) Load(ctx context.Context) loader.Bundle {
	return s.loader.Load(ctx)
}

// ExperiencesFor returns the loaded experiences, or the fallback dataset
// when the experiences slot failed.
func (s *SiteService) ExperiencesFor(b loader.Bundle) []models.Experience {
	if b.Experiences.OK() {
		return b.Experiences.Value
	}

	s.logger.Warn("experiences not found or failed to load; using fallback data for timeline",
		"error", b.Experiences.Err,
	)
	if s.fallback != nil {
		return append([]models.Experience(nil), s.fallback...)
	}
	return models.FallbackExperiences()
}

// Apply renders the bundle into doc and wires the behaviors. Slots that
// failed to load leave their containers untouched.
func (s *SiteService) Apply(doc *goquery.Document, b loader.Bundle) error {
	if b.Projects.OK() {
		if _, err := s.renderer.Projects(doc, b.Projects.Value); err != nil {
			return fmt.Errorf("render projects: %w", err)
		}
	}
	if b.Timeline.OK() {
		if _, err := s.renderer.Timeline(doc, b.Timeline.Value); err != nil {
			return fmt.Errorf("render timeline: %w", err)
		}
	}
	if b.Config.OK() {
		s.renderer.StaticContent(doc, b.Config.Value)
	}
	if b.Skills.OK() {
		if _, err := s.renderer.Skills(doc, b.Skills.Value, render.NewColorCycle()); err != nil {
			return fmt.Errorf("render skills: %w", err)
		}
	}
	if _, err := s.renderer.Experiences(doc, s.ExperiencesFor(b)); err != nil {
		return fmt.Errorf("render experiences: %w", err)
	}

	report, wired, err := behavior.Wire(doc, s.settings)
	if err != nil {
		return err
	}
	if wired {
		s.logger.Debug("behaviors wired",
			"stat_counters", report.StatCounters,
			"reveal_targets", report.RevealTargets,
			"modal", report.Modal,
		)
	}
	if report.Icons > 0 && !report.IconLoader {
		s.logger.Warn("page has icon placeholders but does not load lucide", "icons", report.Icons)
	}
	if report.InvalidTargets > 0 {
		s.logger.Warn("stat counters with a non-numeric data-target", "count", report.InvalidTargets)
	}
	return nil
}

// RenderPage parses a page template, renders a fresh bundle into it and
// returns the resulting HTML.
func (s *SiteService) RenderPage(ctx context.Context, page io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	if err := s.Apply(doc, s.Load(ctx)); err != nil {
		return "", err
	}

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serialize page: %w", err)
	}
	return out, nil
}
