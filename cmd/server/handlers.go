package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/edukit/coursed/internal/catalog"
	"github.com/edukit/coursed/internal/lesson"
	"github.com/edukit/coursed/internal/platform/cache"
	"github.com/edukit/coursed/internal/quiz"
)

const submitTimeout = 10 * time.Second

// app carries the shared dependencies of all handlers. The catalog is
// read-only; the only mutable state is the quiz answer store.
type app struct {
	loader        *catalog.Loader
	store         quiz.AnswerStore
	sink          quiz.SubmissionSink
	cache         *cache.Cache
	validate      *validator.Validate
	submitEnabled bool
}

type sectionView struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Summary         string           `json:"summary,omitempty"`
	Banner          string           `json:"banner,omitempty"`
	SubsectionCount int              `json:"subsectionCount"`
	Subsections     []subsectionView `json:"subsections"`
}

type subsectionView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

type sectionsResponse struct {
	Query    string        `json:"query"`
	Status   string        `json:"status"`
	Sections []sectionView `json:"sections"`
}

type lessonResponse struct {
	Canonical string              `json:"canonical"`
	Lesson    lesson.View         `json:"lesson"`
	Nav       []lesson.NavSection `json:"nav"`
	Quiz      quiz.View           `json:"quiz"`
}

type answerRequest struct {
	Field  string `json:"field" validate:"required"`
	Option int    `json:"option" validate:"gte=0"`
}

type evaluateResponse struct {
	quiz.Result
	Submitted bool `json:"submitted"`
}

// handleSections serves the course-index page: the section list, narrowed
// by the optional free-text query.
func (a *app) handleSections(w http.ResponseWriter, r *http.Request) {
	c, ok := a.loader.Catalog()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Could not load sections.")
		return
	}

	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, buildSectionsResponse(c, query))
}

func buildSectionsResponse(c *catalog.Catalog, query string) sectionsResponse {
	q := catalog.NormalizeQuery(query)
	visible := catalog.Filter(c, q)

	resp := sectionsResponse{
		Query:    q,
		Sections: make([]sectionView, 0, len(visible)),
	}
	for _, s := range visible {
		subs := make([]subsectionView, 0, len(s.Subsections))
		for _, ss := range s.Subsections {
			subs = append(subs, subsectionView{
				ID:          ss.ID,
				Title:       ss.Title,
				Description: ss.Description,
				Duration:    ss.Duration,
			})
		}
		resp.Sections = append(resp.Sections, sectionView{
			ID:              s.ID,
			Title:           s.Title,
			Summary:         s.Summary,
			Banner:          s.Banner,
			SubsectionCount: len(s.Subsections),
			Subsections:     subs,
		})
	}

	// "no matches" reads differently from "no sections at all".
	switch {
	case len(visible) == 0 && q != "":
		resp.Status = fmt.Sprintf("No results for “%s”.", q)
	case len(visible) == 0:
		resp.Status = "No sections found."
	case q != "":
		resp.Status = fmt.Sprintf("Showing %d section(s) matching “%s”.", len(visible), q)
	default:
		resp.Status = fmt.Sprintf("Loaded %d sections.", len(c.Sections))
	}
	return resp
}

// handleLesson serves the lesson page: resolved lesson view-model, side
// navigation and a fresh quiz instance. Absent or stale identifiers fall
// back deterministically; the canonical pair is echoed so the caller can
// rewrite its address without growing history.
func (a *app) handleLesson(w http.ResponseWriter, r *http.Request) {
	c, ok := a.loader.Catalog()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Could not load lesson.")
		return
	}

	sel := lesson.Selection{
		SectionID: r.URL.Query().Get("section"),
		SubID:     r.URL.Query().Get("sub"),
	}

	resolved, err := lesson.Resolve(c, sel)
	switch {
	case errors.Is(err, lesson.ErrNoSections):
		writeError(w, http.StatusNotFound, "Section not found")
		return
	case errors.Is(err, lesson.ErrNoSubsections):
		writeError(w, http.StatusNotFound, "Could not find a matching sub-section in this section.")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Could not load lesson.")
		return
	}

	instanceID, err := a.store.Create(r.Context(), quiz.AnswerState{
		SectionID: resolved.Canonical.SectionID,
		SubID:     resolved.Canonical.SubID,
	})
	if err != nil {
		slog.Error("failed to create quiz instance", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not load lesson.")
		return
	}

	canonical := url.Values{}
	canonical.Set("section", resolved.Canonical.SectionID)
	canonical.Set("sub", resolved.Canonical.SubID)

	writeJSON(w, http.StatusOK, lessonResponse{
		Canonical: canonical.Encode(),
		Lesson:    lesson.BuildView(resolved),
		Nav:       lesson.BuildNav(c, resolved.Canonical.SectionID, resolved.Canonical.SubID),
		Quiz:      quiz.Build(resolved.Subsection, instanceID),
	})
}

// handleAnswer records one option selection on a quiz instance.
func (a *app) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "field is required and option must not be negative")
		return
	}

	if err := a.store.Select(r.Context(), id, req.Field, req.Option); err != nil {
		writeError(w, http.StatusNotFound, "quiz instance not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleEvaluate scores the current selections of a quiz instance and
// forwards the field values to the external submission sink. The sink is
// fire-and-forget: scoring never waits on it and its response is
// discarded.
func (a *app) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	state, err := a.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "quiz instance not found")
		return
	}

	c, ok := a.loader.Catalog()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Could not load lesson.")
		return
	}

	sub, ok := findSubsection(c, state.SectionID, state.SubID)
	if !ok {
		writeError(w, http.StatusNotFound, "Could not find a matching sub-section in this section.")
		return
	}

	result := quiz.Evaluate(sub.Questions, state.Selections)

	submitted := a.submitEnabled && a.sink != nil && sub.QuizFormID != ""
	if submitted {
		fields := quiz.FieldValues(sub.Questions, state.Selections)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
			defer cancel()
			if err := a.sink.Submit(ctx, sub.QuizFormID, fields); err != nil {
				slog.Warn("quiz submission failed", "form_id", sub.QuizFormID, "error", err)
			}
		}()
	}

	writeJSON(w, http.StatusOK, evaluateResponse{Result: result, Submitted: submitted})
}

// handleReset clears all selections of a quiz instance, returning it to
// its neutral state without rebuilding the questions.
func (a *app) handleReset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := a.store.Reset(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "quiz instance not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func findSubsection(c *catalog.Catalog, sectionID, subID string) (catalog.Subsection, bool) {
	for _, s := range c.Sections {
		if s.ID != sectionID {
			continue
		}
		for _, ss := range s.Subsections {
			if ss.ID == subID {
				return ss, true
			}
		}
	}
	return catalog.Subsection{}, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
