package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"sreddy.dev/internal/models"
)

// Dataset base names, without extension
const (
	ProjectsFile = "projects"
	ProfileFile  = "profile"
	SkillsFile   = "skills"
)

// extensions lists supported data formats in lookup order
var extensions = []string{".yaml", ".yml", ".toml", ".json"}

// ErrNoDataFile is returned when no file exists for a dataset
var ErrNoDataFile = errors.New("data file not found")

// LoadContent reads and validates the projects, profile and skills datasets.
// The first problem found is returned; nothing is partially loaded.
func LoadContent(fsys fs.FS) (*Content, error) {
	projects, err := LoadProjects(fsys)
	if err != nil {
		return nil, err
	}
	profile, err := LoadProfile(fsys)
	if err != nil {
		return nil, err
	}
	skills, err := LoadSkills(fsys)
	if err != nil {
		return nil, err
	}

	return &Content{
		Projects: projects,
		Profile:  profile,
		Skills:   skills,
	}, nil
}

// LoadProjects reads and validates the project catalogue
func LoadProjects(fsys fs.FS) (*models.ProjectList, error) {
	var projects models.ProjectList
	name, err := decodeDataset(fsys, ProjectsFile, &projects)
	if err != nil {
		return nil, err
	}
	if err := projects.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &projects, nil
}

// LoadProfile reads and validates the personal profile
func LoadProfile(fsys fs.FS) (*models.Profile, error) {
	var profile models.Profile
	name, err := decodeDataset(fsys, ProfileFile, &profile)
	if err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &profile, nil
}

// LoadSkills reads and validates the skill catalogue
func LoadSkills(fsys fs.FS) (*models.SkillList, error) {
	var skills models.SkillList
	name, err := decodeDataset(fsys, SkillsFile, &skills)
	if err != nil {
		return nil, err
	}
	if err := skills.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &skills, nil
}

// decodeDataset finds the file for base and decodes it into v.
// It returns the file name that was used.
func decodeDataset(fsys fs.FS, base string, v any) (string, error) {
	name, err := findDataFile(fsys, base)
	if err != nil {
		return "", err
	}

	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return name, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := decode(name, raw, v); err != nil {
		return name, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return name, nil
}

// findDataFile returns the first existing file named base plus a known extension
func findDataFile(fsys fs.FS, base string) (string, error) {
	for _, ext := range extensions {
		name := base + ext
		if _, err := fs.Stat(fsys, name); err == nil {
			return name, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("%w: %s.{yaml,yml,toml,json}", ErrNoDataFile, base)
}

// decode rejects keys that match no field so a misspelled key fails the load
func decode(name string, raw []byte, v any) error {
	switch path.Ext(name) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".toml":
		return toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(v)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	return fmt.Errorf("unsupported data format %q", path.Ext(name))
}
