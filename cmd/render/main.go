// Command render exports every page in the pages directory as a static,
// fully rendered HTML file alongside the browser runtime.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"

	"skilledstack.dev/internal/behavior"
	"skilledstack.dev/internal/config"
	"skilledstack.dev/internal/services"
)

func main() {
	var configPath, outputDir string

	flagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $PORTFOLIO_CONFIG)")
	flagSet.StringVarP(&outputDir, "output", "o", "", "output directory (overrides output_path)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if outputDir != "" {
		cfg.OutputPath = outputDir
	}

	logger := cfg.Logger()
	site, err := services.NewSiteServiceFromConfig(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputPath, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	pages, err := filepath.Glob(filepath.Join(cfg.PagesPath, "*.html"))
	if err != nil || len(pages) == 0 {
		fmt.Fprintf(os.Stderr, "No pages found in %s\n", cfg.PagesPath)
		os.Exit(1)
	}

	ctx := context.Background()
	failed := 0
	for _, page := range pages {
		name := filepath.Base(page)
		fmt.Printf("Rendering %s...\n", name)

		out, err := renderFile(ctx, site, page)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			failed++
			continue
		}

		dest := filepath.Join(cfg.OutputPath, name)
		if err := os.WriteFile(dest, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR writing file: %v\n", err)
			failed++
			continue
		}

		fmt.Printf("  Created %s (%d bytes)\n", dest, len(out))
	}

	if err := writeRuntime(cfg.OutputPath, cfg.Behavior.RuntimeSrc); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR writing runtime: %v\n", err)
		failed++
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d file(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func renderFile(ctx context.Context, site *services.SiteService, page string) (string, error) {
	f, err := os.Open(page)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return site.RenderPage(ctx, f)
}

// writeRuntime copies the embedded runtime to the site-relative script path
func writeRuntime(outputDir, src string) error {
	sitePath, ok := behavior.RuntimePath(src)
	if !ok {
		fmt.Printf("  Runtime src %s is off-site, writing %s\n", src, sitePath)
	}
	data, err := behavior.Runtime()
	if err != nil {
		return err
	}
	dest := filepath.Join(outputDir, filepath.FromSlash(strings.TrimPrefix(sitePath, "/")))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	fmt.Printf("  Created %s\n", dest)
	return os.WriteFile(dest, data, 0644)
}
