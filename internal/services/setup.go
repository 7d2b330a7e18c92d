package services

import (
	"log/slog"
	"os"

	"skilledstack.dev/internal/config"
	"skilledstack.dev/internal/loader"
	"skilledstack.dev/internal/models"
)

// NewLoader builds the data loader described by cfg: HTTP when DataURL is
// set, otherwise the SiteRoot directory.
func NewLoader(cfg *config.Config, logger *slog.Logger) (*loader.Loader, error) {
	var source loader.Source = loader.FSSource{FS: os.DirFS(cfg.SiteRoot)}
	if cfg.DataURL != "" {
		httpSource, err := loader.NewHTTPSource(nil, cfg.DataURL)
		if err != nil {
			return nil, err
		}
		source = httpSource
	}
	return loader.New(source, loader.WithLogger(logger)), nil
}

// NewSiteServiceFromConfig wires a SiteService from configuration
func NewSiteServiceFromConfig(cfg *config.Config, logger *slog.Logger) (*SiteService, error) {
	l, err := NewLoader(cfg, logger)
	if err != nil {
		return nil, err
	}

	var fallback []models.Experience
	if cfg.FallbackExperiences != "" {
		fallback, err = models.LoadExperiences(cfg.FallbackExperiences)
		if err != nil {
			return nil, err
		}
	}

	return NewSiteService(l, SiteOptions{
		Behavior: cfg.Behavior,
		Fallback: fallback,
		Logger:   logger,
	})
}
