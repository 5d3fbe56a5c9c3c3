package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sreddy.dev/data"
	"sreddy.dev/internal/models"
)

const tomlProjects = `
[[projects]]
id = "toml-project"
title = "From TOML"
tech = ["Go", "chi"]
featured = true
status = "archived"

[projects.skill_level]
level = "beginner"
impact = "low"

[[projects.links]]
type = "github"
label = "Code"
url = "https://example.com/toml"

[[projects]]
id = "second"
title = "Second"
`

const jsonProfile = `{
  "full_name": "Jane Doe",
  "display_name": "Jane",
  "contact": {"email": "jane@example.com"},
  "social": {"github": {"name": "GitHub", "url": "https://github.com/jane", "icon": "github"}}
}`

const ymlSkills = `
categories:
  - title: Backend
    icon: server
    color: primary
    skills: [Go, SQL]
`

func mixedFS() fstest.MapFS {
	return fstest.MapFS{
		"projects.toml": {Data: []byte(tomlProjects)},
		"profile.json":  {Data: []byte(jsonProfile)},
		"skills.yml":    {Data: []byte(ymlSkills)},
	}
}

func TestLoadContent_Embedded(t *testing.T) {
	content, err := LoadContent(data.FS)
	require.NoError(t, err)

	require.Len(t, content.Projects.Projects, 3)
	assert.Equal(t, "cuda-transformer", content.Projects.Projects[0].ID)
	assert.Equal(t, "Shaurya Reddy", content.Profile.DisplayName)
	assert.Contains(t, content.Profile.Social, "github")
	require.Len(t, content.Skills.Categories, 8)
	assert.True(t, content.Skills.Categories[0].Highlight)
}

func TestLoadContent_MixedFormats(t *testing.T) {
	content, err := LoadContent(mixedFS())
	require.NoError(t, err)

	require.Len(t, content.Projects.Projects, 2)
	p := content.Projects.Projects[0]
	assert.Equal(t, "toml-project", p.ID)
	assert.Equal(t, []string{"Go", "chi"}, p.Tech)
	assert.True(t, p.Featured)
	assert.Equal(t, models.StatusArchived, p.Status)
	require.NotNil(t, p.SkillLevel)
	assert.Equal(t, models.SkillLevelInfo{Level: models.LevelBeginner, Impact: models.ImpactLow}, *p.SkillLevel)
	require.Len(t, p.Links, 1)
	assert.Equal(t, models.LinkGitHub, p.Links[0].Type)
	assert.Nil(t, content.Projects.Projects[1].SkillLevel)

	assert.Equal(t, "Jane Doe", content.Profile.FullName)
	assert.Equal(t, "https://github.com/jane", content.Profile.Social["github"].URL)

	require.Len(t, content.Skills.Categories, 1)
	assert.Equal(t, []string{"Go", "SQL"}, content.Skills.Categories[0].Skills)
}

func TestLoadContent_PrefersYAML(t *testing.T) {
	fsys := mixedFS()
	fsys["projects.yaml"] = &fstest.MapFile{Data: []byte("projects:\n  - id: from-yaml\n    title: YAML\n")}

	projects, err := LoadProjects(fsys)
	require.NoError(t, err)
	require.Len(t, projects.Projects, 1)
	assert.Equal(t, "from-yaml", projects.Projects[0].ID)
}

func TestLoadContent_MissingFile(t *testing.T) {
	fsys := mixedFS()
	delete(fsys, "skills.yml")

	_, err := LoadContent(fsys)
	require.ErrorIs(t, err, ErrNoDataFile)
	assert.Contains(t, err.Error(), "skills.{yaml,yml,toml,json}")
}

func TestLoadContent_ParseError(t *testing.T) {
	fsys := mixedFS()
	fsys["profile.json"] = &fstest.MapFile{Data: []byte("{not json")}

	_, err := LoadContent(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse profile.json")
}

func TestLoadContent_DuplicateIDsAreFatal(t *testing.T) {
	fsys := mixedFS()
	fsys["projects.yaml"] = &fstest.MapFile{Data: []byte(`
projects:
  - id: same
    title: One
  - id: same
    title: Two
`)}

	_, err := LoadContent(fsys)
	require.ErrorIs(t, err, models.ErrIntegrity)
	assert.Contains(t, err.Error(), "projects.yaml")
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestLoadContent_BadEnumerantIsFatal(t *testing.T) {
	fsys := mixedFS()
	fsys["projects.yaml"] = &fstest.MapFile{Data: []byte(`
projects:
  - id: x
    title: X
    skill_level:
      level: wizard
      impact: high
`)}

	_, err := LoadProjects(fsys)
	require.ErrorIs(t, err, models.ErrIntegrity)
	assert.Contains(t, err.Error(), `unknown skill level "wizard"`)
}

func TestLoadContent_EmptyCatalogue(t *testing.T) {
	fsys := mixedFS()
	fsys["projects.yaml"] = &fstest.MapFile{Data: []byte("projects: []\n")}

	projects, err := LoadProjects(fsys)
	require.NoError(t, err)
	assert.Empty(t, projects.Projects)
}

func TestLoadContent_UnknownKeysAreFatal(t *testing.T) {
	tests := []struct {
		file string
		data string
	}{
		{"projects.yaml", "projects:\n  - id: x\n    title: X\n    skill_levle:\n      level: expert\n      impact: high\n"},
		{"projects.toml", "[[projects]]\nid = \"x\"\ntitle = \"X\"\n\n[projects.skill_levle]\nlevel = \"expert\"\nimpact = \"high\"\n"},
		{"projects.json", `{"projects": [{"id": "x", "title": "X", "skill_levle": {"level": "expert", "impact": "high"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			fsys := fstest.MapFS{tt.file: {Data: []byte(tt.data)}}

			_, err := LoadProjects(fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse "+tt.file)
		})
	}
}

func TestLoadContent_EmptyYAMLFile(t *testing.T) {
	fsys := fstest.MapFS{"projects.yaml": {Data: []byte("")}}

	projects, err := LoadProjects(fsys)
	require.NoError(t, err)
	assert.Empty(t, projects.Projects)
}
