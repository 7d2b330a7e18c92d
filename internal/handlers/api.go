package handlers

import (
	"net/http"
	"strconv"

	"skilledstack.dev/internal/models"
	"skilledstack.dev/internal/services"
)

// APIHandler exposes the decoded data slots as JSON
type APIHandler struct {
	site *services.SiteService
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(site *services.SiteService) *APIHandler {
	return &APIHandler{site: site}
}

// Projects handles GET /api/projects
func (h *APIHandler) Projects(w http.ResponseWriter, r *http.Request) {
	b := h.site.Load(r.Context())
	respondSlot(w, b.Projects.Value, b.Projects.Err)
}

// Timeline handles GET /api/timeline
func (h *APIHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	b := h.site.Load(r.Context())
	respondSlot(w, b.Timeline.Value, b.Timeline.Err)
}

// Skills handles GET /api/skills
func (h *APIHandler) Skills(w http.ResponseWriter, r *http.Request) {
	b := h.site.Load(r.Context())
	respondSlot(w, b.Skills.Value, b.Skills.Err)
}

// Config handles GET /api/config
func (h *APIHandler) Config(w http.ResponseWriter, r *http.Request) {
	b := h.site.Load(r.Context())
	respondSlot(w, b.Config.Value, b.Config.Err)
}

// Experiences handles GET /api/experiences?limit=N. A failed slot falls
// back to the fallback dataset, as pages do.
func (h *APIHandler) Experiences(w http.ResponseWriter, r *http.Request) {
	limit := clamp(parseIntParam(r, "limit", 0), 0, 1000)

	b := h.site.Load(r.Context())
	respondJSON(w, http.StatusOK, models.Truncate(h.site.ExperiencesFor(b), limit))
}

// respondSlot writes a slot's value, or 502 when it failed to load
func respondSlot(w http.ResponseWriter, value any, err error) {
	if err != nil {
		respondError(w, http.StatusBadGateway, "data unavailable: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, value)
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
