package handlers

import (
	"github.com/prometheus/client_golang/prometheus"

	"sreddy.dev/internal/services"
)

// registerCatalogueMetrics publishes the catalogue size per skill level.
// The catalogue never changes after startup, so the gauges are set once.
func registerCatalogueMetrics(reg prometheus.Registerer, stats services.Stats) error {
	projects := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "portfolio",
		Subsystem: "catalogue",
		Name:      "projects",
		Help:      "Projects in the catalogue by skill level.",
	}, []string{"level"})
	if err := reg.Register(projects); err != nil {
		return err
	}

	projects.WithLabelValues("expert").Set(float64(stats.Expert))
	projects.WithLabelValues("intermediate").Set(float64(stats.Intermediate))
	projects.WithLabelValues("beginner").Set(float64(stats.Beginner))
	projects.WithLabelValues("unlabeled").Set(float64(stats.Unlabeled))
	return nil
}
