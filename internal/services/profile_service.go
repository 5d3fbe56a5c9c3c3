package services

import (
	"sreddy.dev/internal/models"
)

// ProfileService serves the personal profile
type ProfileService struct {
	profile models.Profile
}

// NewProfileService validates the profile and creates a new ProfileService
func NewProfileService(p *models.Profile) (*ProfileService, error) {
	if p == nil {
		p = &models.Profile{}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &ProfileService{profile: p.Clone()}, nil
}

// Get returns a copy of the profile
func (s *ProfileService) Get() models.Profile {
	return s.profile.Clone()
}
