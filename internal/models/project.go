package models

// LinkType categorizes a project link
type LinkType string

const (
	LinkGitHub  LinkType = "github"
	LinkDemo    LinkType = "demo"
	LinkDocs    LinkType = "docs"
	LinkVideo   LinkType = "video"
	LinkArticle LinkType = "article"
)

// Valid reports whether t is one of the known link types
func (t LinkType) Valid() bool {
	switch t {
	case LinkGitHub, LinkDemo, LinkDocs, LinkVideo, LinkArticle:
		return true
	}
	return false
}

// SkillLevel is the technical depth of a project
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelExpert       SkillLevel = "expert"
)

// Valid reports whether l is one of the known skill levels
func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelExpert:
		return true
	}
	return false
}

// ImpactLevel is the real-world significance of a project
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Valid reports whether i is one of the known impact levels
func (i ImpactLevel) Valid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}

// Status is the lifecycle state of a project
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusArchived   Status = "archived"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusArchived:
		return true
	}
	return false
}

// ProjectLink points at code, docs or a demo for a project
type ProjectLink struct {
	Type  LinkType `json:"type" yaml:"type" toml:"type"`
	Label string   `json:"label" yaml:"label" toml:"label"`
	URL   string   `json:"url" yaml:"url" toml:"url"`
}

// PublishedApp is a deployed, externally reachable artifact
type PublishedApp struct {
	Platform    string `json:"platform" yaml:"platform" toml:"platform"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	URL         string `json:"url" yaml:"url" toml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// SkillLevelInfo pairs a skill level with an impact rating
type SkillLevelInfo struct {
	Level  SkillLevel  `json:"level" yaml:"level" toml:"level"`
	Impact ImpactLevel `json:"impact" yaml:"impact" toml:"impact"`
}

// Project represents a portfolio project
type Project struct {
	ID            string          `json:"id" yaml:"id" toml:"id"`
	Title         string          `json:"title" yaml:"title" toml:"title"`
	Subtitle      string          `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
	Description   string          `json:"description" yaml:"description" toml:"description"`
	Tech          []string        `json:"tech" yaml:"tech" toml:"tech"`
	Icon          string          `json:"icon" yaml:"icon" toml:"icon"` // symbolic key, resolved by the client
	Featured      bool            `json:"featured" yaml:"featured" toml:"featured"`
	Highlights    []string        `json:"highlights" yaml:"highlights" toml:"highlights"`
	Links         []ProjectLink   `json:"links" yaml:"links" toml:"links"`
	PublishedApps []PublishedApp  `json:"published_apps,omitempty" yaml:"published_apps,omitempty" toml:"published_apps,omitempty"`
	SkillLevel    *SkillLevelInfo `json:"skill_level,omitempty" yaml:"skill_level,omitempty" toml:"skill_level,omitempty"`
	Status        Status          `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	StartDate     string          `json:"start_date,omitempty" yaml:"start_date,omitempty" toml:"start_date,omitempty"`
	EndDate       string          `json:"end_date,omitempty" yaml:"end_date,omitempty" toml:"end_date,omitempty"`
}

// Clone returns a deep copy of the project
func (p Project) Clone() Project {
	c := p
	c.Tech = cloneSlice(p.Tech)
	c.Highlights = cloneSlice(p.Highlights)
	c.Links = cloneSlice(p.Links)
	c.PublishedApps = cloneSlice(p.PublishedApps)
	if p.SkillLevel != nil {
		sl := *p.SkillLevel
		c.SkillLevel = &sl
	}
	return c
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects" toml:"projects"`
}

// cloneSlice copies s, keeping nil as nil
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
