package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"skilledstack.dev/internal/behavior"
	"skilledstack.dev/internal/config"
	"skilledstack.dev/internal/middleware"
	"skilledstack.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, site *services.SiteService, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	pageHandler := NewPageHandler(site, os.DirFS(cfg.PagesPath), logger)
	apiHandler := NewAPIHandler(site)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", apiHandler.Projects)
		r.Get("/timeline", apiHandler.Timeline)
		r.Get("/skills", apiHandler.Skills)
		r.Get("/experiences", apiHandler.Experiences)
		r.Get("/config", apiHandler.Config)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Raw data files, for clients and HTTP-sourced loaders
	dataServer := http.FileServer(http.Dir(filepath.Join(cfg.SiteRoot, "data")))
	r.Handle("/data/*", http.StripPrefix("/data", dataServer))

	// Browser runtime and static files
	runtimePath, _ := behavior.RuntimePath(cfg.Behavior.RuntimeSrc)
	r.Get(runtimePath, serveRuntime(logger))
	fileServer := http.FileServer(http.Dir(cfg.StaticPath))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Rendered pages
	r.Get("/", pageHandler.Index)
	r.Get("/{page}", pageHandler.Page)

	return r
}

// serveRuntime serves the embedded runtime script under any file name
func serveRuntime(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := behavior.Runtime()
		if err != nil {
			logger.Error("failed to read runtime", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.ServeContent(w, r, behavior.RuntimeFile, time.Time{}, bytes.NewReader(data))
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
