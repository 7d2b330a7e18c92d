package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"

	"skilledstack.dev/internal/config"
	"skilledstack.dev/internal/handlers"
	"skilledstack.dev/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, addr, siteRoot, dataURL, pagesPath string

	flagSet := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $PORTFOLIO_CONFIG)")
	flagSet.StringVar(&addr, "addr", "", "listen address (overrides server_addr)")
	flagSet.StringVar(&siteRoot, "root", "", "site root containing data/ (overrides site_root)")
	flagSet.StringVar(&dataURL, "data-url", "", "fetch data files relative to this URL instead of the site root")
	flagSet.StringVar(&pagesPath, "pages", "", "directory of page templates (overrides pages_path)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.ServerAddr = addr
	}
	if siteRoot != "" {
		cfg.SiteRoot = siteRoot
	}
	if dataURL != "" {
		cfg.DataURL = dataURL
	}
	if pagesPath != "" {
		cfg.PagesPath = pagesPath
	}

	logger := cfg.Logger()

	site, err := services.NewSiteServiceFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize site: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, site, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.ServerAddr, "pages", cfg.PagesPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
