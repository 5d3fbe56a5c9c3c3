package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// idPattern keeps ids usable as URL segments and file names
var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ErrIntegrity marks hand-maintained data that cannot be served as-is
var ErrIntegrity = errors.New("data integrity violation")

// problems collects validation findings and renders them as one error
type problems []string

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p problems) err(what string) error {
	if len(p) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrIntegrity, what, strings.Join(p, "; "))
}

// Validate checks the catalogue for duplicate ids and malformed enumerants.
// All findings are reported together.
func (l *ProjectList) Validate() error {
	var probs problems
	seen := make(map[string]int, len(l.Projects))

	for i, p := range l.Projects {
		ref := fmt.Sprintf("project[%d]", i)
		if p.ID == "" {
			probs.addf("%s: empty id", ref)
		} else {
			ref = fmt.Sprintf("project %q", p.ID)
			if !idPattern.MatchString(p.ID) {
				probs.addf("%s: id must be lowercase letters, digits and dashes", ref)
			}
			if first, dup := seen[p.ID]; dup {
				probs.addf("%s: duplicate id (first at index %d, again at %d)", ref, first, i)
			} else {
				seen[p.ID] = i
			}
		}

		if strings.TrimSpace(p.Title) == "" {
			probs.addf("%s: empty title", ref)
		}

		for j, link := range p.Links {
			if !link.Type.Valid() {
				probs.addf("%s: link %d: unknown type %q", ref, j, link.Type)
			}
			if link.URL == "" {
				probs.addf("%s: link %d: empty url", ref, j)
			}
		}

		for j, app := range p.PublishedApps {
			if app.URL == "" {
				probs.addf("%s: published app %d: empty url", ref, j)
			}
		}

		if sl := p.SkillLevel; sl != nil {
			if !sl.Level.Valid() {
				probs.addf("%s: unknown skill level %q", ref, sl.Level)
			}
			if !sl.Impact.Valid() {
				probs.addf("%s: unknown impact %q", ref, sl.Impact)
			}
		}

		if p.Status != "" && !p.Status.Valid() {
			probs.addf("%s: unknown status %q", ref, p.Status)
		}
	}

	return probs.err("projects")
}

// Validate checks that the profile carries the fields every view needs
func (p *Profile) Validate() error {
	var probs problems
	if strings.TrimSpace(p.FullName) == "" {
		probs.addf("empty full name")
	}
	if strings.TrimSpace(p.Contact.Email) == "" {
		probs.addf("empty contact email")
	}
	for key, link := range p.Social {
		if link.URL == "" {
			probs.addf("social %q: empty url", key)
		}
	}
	return probs.err("profile")
}

// Validate rejects untitled and duplicate categories
func (l *SkillList) Validate() error {
	var probs problems
	seen := make(map[string]bool, len(l.Categories))
	for i, c := range l.Categories {
		if strings.TrimSpace(c.Title) == "" {
			probs.addf("category[%d]: empty title", i)
			continue
		}
		if seen[c.Title] {
			probs.addf("category %q: duplicate title", c.Title)
		}
		seen[c.Title] = true
	}
	return probs.err("skills")
}
