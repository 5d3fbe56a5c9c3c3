package models

import "maps"

// ContactInfo holds the ways to reach the portfolio owner
type ContactInfo struct {
	Email    string `json:"email" yaml:"email" toml:"email"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty" toml:"phone,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
}

// SocialLink is a profile on a social platform
type SocialLink struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	URL  string `json:"url" yaml:"url" toml:"url"`
	Icon string `json:"icon" yaml:"icon" toml:"icon"`
}

// Resume points at a downloadable CV
type Resume struct {
	URL      string `json:"url" yaml:"url" toml:"url"`
	FileName string `json:"file_name" yaml:"file_name" toml:"file_name"`
}

// Profile is the personal record shown in the hero, about and contact sections
type Profile struct {
	FullName    string                `json:"full_name" yaml:"full_name" toml:"full_name"`
	DisplayName string                `json:"display_name" yaml:"display_name" toml:"display_name"`
	Title       string                `json:"title" yaml:"title" toml:"title"`
	Subtitle    string                `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
	Bio         string                `json:"bio" yaml:"bio" toml:"bio"`
	Tagline     string                `json:"tagline,omitempty" yaml:"tagline,omitempty" toml:"tagline,omitempty"`
	Contact     ContactInfo           `json:"contact" yaml:"contact" toml:"contact"`
	Social      map[string]SocialLink `json:"social" yaml:"social" toml:"social"` // keyed by platform, e.g. "github"
	Resume      Resume                `json:"resume" yaml:"resume" toml:"resume"`
	FocusAreas  []string              `json:"focus_areas,omitempty" yaml:"focus_areas,omitempty" toml:"focus_areas,omitempty"`
}

// Clone returns a deep copy of the profile
func (p Profile) Clone() Profile {
	c := p
	if p.Social != nil {
		c.Social = maps.Clone(p.Social)
	}
	c.FocusAreas = cloneSlice(p.FocusAreas)
	return c
}
