package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter narrows the catalog to sections matching the free-text query.
//
// A section is kept when its own title or summary matches, or when at
// least one sub-section's title or description matches. Match propagation
// is asymmetric on purpose: a section-level match reveals all of its
// sub-sections, while a child-only match narrows the section to exactly
// the matching sub-sections. An empty (or all-whitespace) query returns
// the catalog's sections unmodified. Original ordering is preserved.
func Filter(c *Catalog, query string) []Section {
	q := NormalizeQuery(query)
	if q == "" {
		return c.Sections
	}

	var visible []Section
	for _, s := range c.Sections {
		sectionMatch := containsFold(s.Title, q) || containsFold(s.Summary, q)

		var matching []Subsection
		for _, sub := range s.Subsections {
			if containsFold(sub.Title, q) || containsFold(sub.Description, q) {
				matching = append(matching, sub)
			}
		}

		if !sectionMatch && len(matching) == 0 {
			continue
		}

		out := s
		if !sectionMatch {
			out.Subsections = matching
		}
		visible = append(visible, out)
	}
	return visible
}

// NormalizeQuery trims and case-folds a free-text query. The folded form
// is what Filter matches against and what status lines echo back.
func NormalizeQuery(query string) string {
	return fold(strings.TrimSpace(query))
}

// fold case-folds for caseless comparison. A cases.Caser carries state,
// so each call builds its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsFold reports whether s contains the already-folded query.
func containsFold(s, foldedQuery string) bool {
	return strings.Contains(fold(s), foldedQuery)
}
