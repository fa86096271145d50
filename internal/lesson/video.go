package lesson

import (
	"net/url"
	"strings"
)

const embedBase = "https://www.youtube.com/embed/"

// EmbedURL normalizes a raw video link into a canonical embeddable URL.
// Accepted shapes: an already-embeddable player URL (passed through), a
// youtu.be short link with the id as path segment, and a standard watch
// link with the id in the v query parameter. Input that is not an
// absolute URL is treated as a best-effort raw id. Returns "" when no id
// can be derived. Pure; no side effects.
func EmbedURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if strings.Contains(u, "youtube.com/embed/") {
		return u
	}

	var id string
	parsed, err := url.Parse(u)
	switch {
	case err != nil || parsed.Host == "":
		id = u
	case strings.Contains(parsed.Host, "youtu.be"):
		id = strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	default:
		id = parsed.Query().Get("v")
	}

	if id == "" {
		return ""
	}
	return embedBase + url.PathEscape(id)
}
