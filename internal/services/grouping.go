package services

import "sreddy.dev/internal/models"

// Grouping partitions the catalogue by skill level.
// Every project lands in exactly one bucket.
type Grouping struct {
	Expert       []models.Project
	Intermediate []models.Project
	Beginner     []models.Project
	Unlabeled    []models.Project // no skill level recorded
}

// Section is one heading of the "all projects" page
type Section struct {
	Key         string           `json:"key"`
	Title       string           `json:"title"`
	Caption     string           `json:"caption,omitempty"`
	Description string           `json:"description,omitempty"`
	Projects    []models.Project `json:"projects"`
}

// Stats are the counters shown above the grouped list
type Stats struct {
	Total        int `json:"total"`
	Expert       int `json:"expert"`
	Intermediate int `json:"intermediate"`
	Beginner     int `json:"beginner"`
	Unlabeled    int `json:"unlabeled"`
}

// Group classifies every project in one pass
func (s *ProjectService) Group() Grouping {
	g := Grouping{
		Expert:       make([]models.Project, 0),
		Intermediate: make([]models.Project, 0),
		Beginner:     make([]models.Project, 0),
		Unlabeled:    make([]models.Project, 0),
	}

	for _, p := range s.projects {
		c := p.Clone()
		if p.SkillLevel == nil {
			g.Unlabeled = append(g.Unlabeled, c)
			continue
		}
		switch p.SkillLevel.Level {
		case models.LevelExpert:
			g.Expert = append(g.Expert, c)
		case models.LevelIntermediate:
			g.Intermediate = append(g.Intermediate, c)
		case models.LevelBeginner:
			g.Beginner = append(g.Beginner, c)
		default:
			// unreachable for a validated catalogue
			g.Unlabeled = append(g.Unlabeled, c)
		}
	}

	return g
}

// Stats counts projects per bucket
func (s *ProjectService) Stats() Stats {
	return s.Group().Stats()
}

// Stats counts projects per bucket
func (g Grouping) Stats() Stats {
	return Stats{
		Total:        len(g.Expert) + len(g.Intermediate) + len(g.Beginner) + len(g.Unlabeled),
		Expert:       len(g.Expert),
		Intermediate: len(g.Intermediate),
		Beginner:     len(g.Beginner),
		Unlabeled:    len(g.Unlabeled),
	}
}

// Sections returns the non-empty buckets in display order:
// expert, intermediate, beginner, then unlabeled.
func (g Grouping) Sections() []Section {
	all := []Section{
		{
			Key:         string(models.LevelExpert),
			Title:       "Expert Level",
			Caption:     "High Impact",
			Description: "Advanced implementations requiring deep technical knowledge and system-level understanding.",
			Projects:    g.Expert,
		},
		{
			Key:         string(models.LevelIntermediate),
			Title:       "Intermediate Level",
			Caption:     "Medium-High Impact",
			Description: "Production-ready projects with moderate complexity and practical applications.",
			Projects:    g.Intermediate,
		},
		{
			Key:         string(models.LevelBeginner),
			Title:       "Beginner Level",
			Caption:     "Learning & Exploration",
			Description: "Learning projects and simple implementations that demonstrate foundational understanding.",
			Projects:    g.Beginner,
		},
		{
			Key:      "unlabeled",
			Title:    "Other Projects",
			Projects: g.Unlabeled,
		},
	}

	sections := make([]Section, 0, len(all))
	for _, sec := range all {
		if len(sec.Projects) > 0 {
			sections = append(sections, sec)
		}
	}
	return sections
}
