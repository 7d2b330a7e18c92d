package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"skilledstack.dev/internal/services"
)

// IndexPage is the template served at /
const IndexPage = "index.html"

// PageHandler renders page templates through the site pipeline
type PageHandler struct {
	site   *services.SiteService
	pages  fs.FS
	logger *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(site *services.SiteService, pages fs.FS, logger *slog.Logger) *PageHandler {
	return &PageHandler{site: site, pages: pages, logger: logger}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, IndexPage)
}

// Page handles GET /{page}
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	if !isPageName(name) {
		http.NotFound(w, r)
		return
	}
	h.serve(w, r, name)
}

func (h *PageHandler) serve(w http.ResponseWriter, r *http.Request, name string) {
	f, err := h.pages.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to open page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	out, err := h.site.RenderPage(r.Context(), f)
	if err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

// isPageName accepts a bare .html file name
func isPageName(name string) bool {
	return strings.HasSuffix(name, ".html") &&
		name == path.Base(name) &&
		!strings.HasPrefix(name, ".")
}
