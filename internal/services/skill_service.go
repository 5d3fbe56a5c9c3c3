package services

import (
	"sreddy.dev/internal/models"
)

// SkillService serves the grouped skill catalogue
type SkillService struct {
	categories []models.SkillCategory
}

// NewSkillService validates the skill list and creates a new SkillService
func NewSkillService(list *models.SkillList) (*SkillService, error) {
	if list == nil {
		list = &models.SkillList{}
	}
	if err := list.Validate(); err != nil {
		return nil, err
	}

	s := &SkillService{categories: make([]models.SkillCategory, len(list.Categories))}
	for i, c := range list.Categories {
		s.categories[i] = c.Clone()
	}
	return s, nil
}

// GetAll returns every category in declaration order
func (s *SkillService) GetAll() []models.SkillCategory {
	out := make([]models.SkillCategory, len(s.categories))
	for i, c := range s.categories {
		out[i] = c.Clone()
	}
	return out
}

// GetHighlighted returns the categories flagged for emphasis
func (s *SkillService) GetHighlighted() []models.SkillCategory {
	out := make([]models.SkillCategory, 0)
	for _, c := range s.categories {
		if c.Highlight {
			out = append(out, c.Clone())
		}
	}
	return out
}
