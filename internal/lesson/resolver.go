// Package lesson resolves which section and sub-section a page should
// show and builds the lesson-page view-models around that choice.
package lesson

import (
	"errors"

	"github.com/edukit/coursed/internal/catalog"
)

var (
	// ErrNoSections means the catalog has no sections to fall back to.
	ErrNoSections = errors.New("lesson: no sections available")
	// ErrNoSubsections means the resolved section has no sub-sections.
	ErrNoSubsections = errors.New("lesson: no sub-sections available")
)

// Selection carries the caller's requested identifiers. Either or both
// may be empty or point at ids that no longer exist.
type Selection struct {
	SectionID string
	SubID     string
}

// Resolved is a concrete, renderable (section, sub-section) pair plus the
// canonical ids the caller should advertise for bookmarking.
type Resolved struct {
	Section    catalog.Section
	Subsection catalog.Subsection
	Canonical  Selection
}

// Resolve picks the section and sub-section for a Selection: the exact id
// match when present, otherwise the first in catalog order. The fallback
// is deterministic so a page with partial or absent identifiers still
// renders something meaningful.
func Resolve(c *catalog.Catalog, sel Selection) (Resolved, error) {
	if len(c.Sections) == 0 {
		return Resolved{}, ErrNoSections
	}

	section := c.Sections[0]
	for _, s := range c.Sections {
		if s.ID == sel.SectionID {
			section = s
			break
		}
	}

	if len(section.Subsections) == 0 {
		return Resolved{}, ErrNoSubsections
	}

	sub := section.Subsections[0]
	for _, ss := range section.Subsections {
		if ss.ID == sel.SubID {
			sub = ss
			break
		}
	}

	return Resolved{
		Section:    section,
		Subsection: sub,
		Canonical:  Selection{SectionID: section.ID, SubID: sub.ID},
	}, nil
}
