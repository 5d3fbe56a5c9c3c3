package services

import (
	"errors"
	"fmt"

	"sreddy.dev/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested id
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations.
// The catalogue is fixed at construction; every method returns fresh copies.
type ProjectService struct {
	projects []models.Project
	index    map[string]int // id -> position in projects
}

// NewProjectService validates the catalogue and creates a new ProjectService
func NewProjectService(list *models.ProjectList) (*ProjectService, error) {
	if list == nil {
		list = &models.ProjectList{}
	}
	if err := list.Validate(); err != nil {
		return nil, err
	}

	s := &ProjectService{
		projects: make([]models.Project, len(list.Projects)),
		index:    make(map[string]int, len(list.Projects)),
	}
	for i, p := range list.Projects {
		s.projects[i] = p.Clone()
		s.index[p.ID] = i
	}
	return s, nil
}

// GetAll returns all projects in catalogue order
func (s *ProjectService) GetAll() []models.Project {
	return s.filter(func(models.Project) bool { return true })
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (models.Project, error) {
	i, ok := s.index[id]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return s.projects[i].Clone(), nil
}

// GetFeatured returns the projects flagged for the homepage
func (s *ProjectService) GetFeatured() []models.Project {
	return s.filter(func(p models.Project) bool { return p.Featured })
}

// GetByLevel returns projects classified at level.
// Unclassified projects never match.
func (s *ProjectService) GetByLevel(level models.SkillLevel) []models.Project {
	return s.filter(func(p models.Project) bool {
		return p.SkillLevel != nil && p.SkillLevel.Level == level
	})
}

// GetByImpact returns projects rated at impact.
// Unclassified projects never match.
func (s *ProjectService) GetByImpact(impact models.ImpactLevel) []models.Project {
	return s.filter(func(p models.Project) bool {
		return p.SkillLevel != nil && p.SkillLevel.Impact == impact
	})
}

// GetPublishedApps flattens published apps across projects,
// in project order then app order
func (s *ProjectService) GetPublishedApps() []models.PublishedApp {
	apps := make([]models.PublishedApp, 0)
	for _, p := range s.projects {
		apps = append(apps, p.PublishedApps...)
	}
	return apps
}

// Query selects projects matching every non-zero field
type Query struct {
	Level        models.SkillLevel
	Impact       models.ImpactLevel
	FeaturedOnly bool
}

// Find returns projects matching q in catalogue order
func (s *ProjectService) Find(q Query) []models.Project {
	return s.filter(func(p models.Project) bool {
		if q.FeaturedOnly && !p.Featured {
			return false
		}
		if q.Level != "" && (p.SkillLevel == nil || p.SkillLevel.Level != q.Level) {
			return false
		}
		if q.Impact != "" && (p.SkillLevel == nil || p.SkillLevel.Impact != q.Impact) {
			return false
		}
		return true
	})
}

// Len returns the catalogue size
func (s *ProjectService) Len() int {
	return len(s.projects)
}

// filter returns clones of matching projects; never nil
func (s *ProjectService) filter(keep func(models.Project) bool) []models.Project {
	out := make([]models.Project, 0)
	for _, p := range s.projects {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
