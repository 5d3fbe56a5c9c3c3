package models

// SkillCategory groups related skills under one heading
type SkillCategory struct {
	Title     string   `json:"title" yaml:"title" toml:"title"`
	Icon      string   `json:"icon" yaml:"icon" toml:"icon"`
	Color     string   `json:"color" yaml:"color" toml:"color"` // theme color tag, e.g. "warning"
	Skills    []string `json:"skills" yaml:"skills" toml:"skills"`
	Highlight bool     `json:"highlight,omitempty" yaml:"highlight,omitempty" toml:"highlight,omitempty"`
}

// Clone returns a deep copy of the category
func (c SkillCategory) Clone() SkillCategory {
	out := c
	out.Skills = cloneSlice(c.Skills)
	return out
}

// SkillList wraps the ordered skill categories
type SkillList struct {
	Categories []SkillCategory `json:"categories" yaml:"categories" toml:"categories"`
}
