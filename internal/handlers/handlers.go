package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sreddy.dev/internal/config"
	"sreddy.dev/internal/middleware"
	"sreddy.dev/internal/services"
)

// SetupRoutes builds the services over content and returns the router.
// reg may be nil when metrics are disabled.
func SetupRoutes(cfg *config.Config, content *config.Content, logger *slog.Logger, reg *prometheus.Registry) (http.Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Initialize services
	projectService, err := services.NewProjectService(content.Projects)
	if err != nil {
		return nil, fmt.Errorf("project catalogue: %w", err)
	}
	profileService, err := services.NewProfileService(content.Profile)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	skillService, err := services.NewSkillService(content.Skills)
	if err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}

	var metrics *middleware.Metrics
	metricsOn := cfg.Metrics.Enabled && reg != nil
	if metricsOn {
		metrics, err = middleware.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("register request metrics: %w", err)
		}
		if err := registerCatalogueMetrics(reg, projectService.Stats()); err != nil {
			return nil, fmt.Errorf("register catalogue metrics: %w", err)
		}
	}

	r := chi.NewRouter()
	useMiddleware(r, logger, metrics)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, logger)
	profileHandler := NewProfileHandler(profileService, logger)
	skillHandler := NewSkillHandler(skillService, logger)
	health := responder{logger: logger}

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", profileHandler.GetProfile)
		r.Get("/skills", skillHandler.ListSkills)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/featured", projectHandler.ListFeatured)
		r.Get("/projects/grouped", projectHandler.ListGrouped)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/apps", projectHandler.ListPublishedApps)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			health.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if metricsOn {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	})

	return r, nil
}

// useMiddleware installs the request middleware. Metrics wrap Recovery so
// recovered panics are counted as 500s. m may be nil.
func useMiddleware(r chi.Router, logger *slog.Logger, m *middleware.Metrics) {
	r.Use(middleware.RequestID)
	if m != nil {
		r.Use(m.Handler)
	}
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
}

// responder writes JSON bodies and logs encoding failures
type responder struct {
	logger *slog.Logger
}

// respondJSON writes a JSON response
func (rs responder) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.logger.Error("Error encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func (rs responder) respondError(w http.ResponseWriter, status int, message string) {
	rs.respondJSON(w, status, map[string]string{"error": message})
}
