package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sreddy.dev/internal/models"
	"sreddy.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	responder
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{responder: responder{logger: logger}, projectService: ps}
}

// GroupedResponse is the payload of the "all projects" page
type GroupedResponse struct {
	Stats    services.Stats     `json:"stats"`
	Sections []services.Section `json:"sections"`
}

// ListProjects handles GET /api/projects?level=&impact=&featured=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, h.projectService.Find(q))
}

// ListFeatured handles GET /api/projects/featured
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.projectService.GetFeatured())
}

// ListGrouped handles GET /api/projects/grouped
func (h *ProjectHandler) ListGrouped(w http.ResponseWriter, r *http.Request) {
	g := h.projectService.Group()
	h.respondJSON(w, http.StatusOK, GroupedResponse{
		Stats:    g.Stats(),
		Sections: g.Sections(),
	})
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		h.respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, project)
}

// ListPublishedApps handles GET /api/apps
func (h *ProjectHandler) ListPublishedApps(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.projectService.GetPublishedApps())
}

// parseQuery reads the project filters from the query string
func parseQuery(r *http.Request) (services.Query, error) {
	var q services.Query
	values := r.URL.Query()

	if v := values.Get("level"); v != "" {
		q.Level = models.SkillLevel(v)
		if !q.Level.Valid() {
			return q, fmt.Errorf("invalid level: %s", v)
		}
	}

	if v := values.Get("impact"); v != "" {
		q.Impact = models.ImpactLevel(v)
		if !q.Impact.Valid() {
			return q, fmt.Errorf("invalid impact: %s", v)
		}
	}

	if v := values.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return q, fmt.Errorf("invalid featured: %s", v)
		}
		q.FeaturedOnly = featured
	}

	return q, nil
}
