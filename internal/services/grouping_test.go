package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sreddy.dev/internal/models"
	"sreddy.dev/internal/services"
)

func sectionKeys(sections []services.Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Key
	}
	return out
}

func TestGroup_Buckets(t *testing.T) {
	g := mixedService(t).Group()

	assert.Equal(t, []string{"a", "e"}, ids(g.Expert))
	assert.Equal(t, []string{"d"}, ids(g.Intermediate))
	assert.Equal(t, []string{"b"}, ids(g.Beginner))
	assert.Equal(t, []string{"c", "f"}, ids(g.Unlabeled))
}

func TestGroup_SectionsFixedOrder(t *testing.T) {
	sections := mixedService(t).Group().Sections()
	assert.Equal(t, []string{"expert", "intermediate", "beginner", "unlabeled"}, sectionKeys(sections))
	assert.Equal(t, "Expert Level", sections[0].Title)
	assert.Equal(t, "High Impact", sections[0].Caption)
	assert.Equal(t, "Other Projects", sections[3].Title)
	assert.Empty(t, sections[3].Caption)
}

func TestGroup_SectionsOmitEmpty(t *testing.T) {
	svc := seedService(t)
	g := svc.Group()

	// seed data has no beginner or unlabeled projects
	assert.Empty(t, g.Beginner)
	assert.Empty(t, g.Unlabeled)
	assert.Equal(t, []string{"expert", "intermediate"}, sectionKeys(g.Sections()))
}

func TestGroup_UnlabeledNeverDropped(t *testing.T) {
	list := &models.ProjectList{Projects: []models.Project{
		{ID: "only", Title: "Unclassified"},
	}}
	svc, err := services.NewProjectService(list)
	require.NoError(t, err)

	sections := svc.Group().Sections()
	require.Len(t, sections, 1)
	assert.Equal(t, "unlabeled", sections[0].Key)
	assert.Equal(t, []string{"only"}, ids(sections[0].Projects))
}

func TestStats(t *testing.T) {
	assert.Equal(t, services.Stats{Total: 6, Expert: 2, Intermediate: 1, Beginner: 1, Unlabeled: 2}, mixedService(t).Stats())
	assert.Equal(t, services.Stats{Total: 3, Expert: 1, Intermediate: 2}, seedService(t).Stats())
}
