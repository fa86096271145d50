package lesson

// defaultBanner is shown when a section carries no banner of its own.
const defaultBanner = "assets/banners/default.svg"

// View is the lesson-page view-model, everything the page needs short of
// the quiz block (which the quiz package builds).
type View struct {
	SectionID    string   `json:"sectionId"`
	SubID        string   `json:"subId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	SectionTitle string   `json:"sectionTitle,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Banner       string   `json:"banner"`
	EmbedURL     string   `json:"embedUrl"`
	Paragraphs   []string `json:"paragraphs"`
}

// BuildView assembles the lesson view-model from a resolved pair.
func BuildView(r Resolved) View {
	title := r.Subsection.Title
	if title == "" {
		title = "Untitled sub-section"
	}

	banner := r.Section.Banner
	if banner == "" {
		banner = defaultBanner
	}

	paragraphs := []string(r.Subsection.Text)
	if paragraphs == nil {
		paragraphs = []string{}
	}

	return View{
		SectionID:    r.Canonical.SectionID,
		SubID:        r.Canonical.SubID,
		Title:        title,
		Description:  r.Subsection.Description,
		SectionTitle: r.Section.Title,
		Duration:     r.Subsection.Duration,
		Banner:       banner,
		EmbedURL:     EmbedURL(r.Subsection.VideoURL),
		Paragraphs:   paragraphs,
	}
}
