package lesson

import "github.com/edukit/coursed/internal/catalog"

// NavSection is one side-navigation entry with its sub-section links.
type NavSection struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

// NavItem is a single sub-section link. Active is set on at most one item
// across the whole structure.
type NavItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// BuildNav builds the side navigation for the whole catalog, flagging the
// item matching the resolved (sectionID, subID) pair. Pure function of
// its inputs.
func BuildNav(c *catalog.Catalog, sectionID, subID string) []NavSection {
	nav := make([]NavSection, 0, len(c.Sections))
	for _, s := range c.Sections {
		items := make([]NavItem, 0, len(s.Subsections))
		for _, ss := range s.Subsections {
			items = append(items, NavItem{
				ID:     ss.ID,
				Title:  ss.Title,
				Active: s.ID == sectionID && ss.ID == subID,
			})
		}
		nav = append(nav, NavSection{ID: s.ID, Title: s.Title, Items: items})
	}
	return nav
}
