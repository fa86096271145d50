// Package catalog holds the course content model: an ordered set of
// sections, each with its sub-sections and quiz questions. A Catalog is
// immutable once loaded; every downstream consumer treats it as read-only.
package catalog

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Catalog is the top-level collection of all course sections.
type Catalog struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section groups related sub-sections under one topic.
type Section struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Summary     string       `json:"summary,omitempty" yaml:"summary"`
	Banner      string       `json:"banner,omitempty" yaml:"banner"`
	Subsections []Subsection `json:"subsections" yaml:"subsections"`
}

// Subsection is a single lesson: video, text and an optional quiz.
// Subsection ids are unique within their section; two sections may reuse
// the same id because resolution is always scoped by section.
type Subsection struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Duration    string     `json:"duration,omitempty" yaml:"duration"`
	VideoURL    string     `json:"videoUrl,omitempty" yaml:"videoUrl"`
	Text        Paragraphs `json:"text,omitempty" yaml:"text"`
	QuizFormID  string     `json:"quizFormId,omitempty" yaml:"quizFormId"`
	Questions   []Question `json:"questions,omitempty" yaml:"questions"`
}

// Question is a single multiple-choice quiz question.
type Question struct {
	Question     string   `json:"question" yaml:"question"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex *int     `json:"correctIndex,omitempty" yaml:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty" yaml:"explanation"`
	FieldName    string   `json:"fieldName,omitempty" yaml:"fieldName"`
}

// IsCorrect reports whether choosing option idx answers the question
// correctly. A question with a missing or out-of-range CorrectIndex can
// never be correct.
func (q Question) IsCorrect(idx int) bool {
	if q.CorrectIndex == nil {
		return false
	}
	ci := *q.CorrectIndex
	if ci < 0 || ci >= len(q.Options) {
		return false
	}
	return idx == ci
}

// CorrectOption returns the display text of the correct option, or false
// when CorrectIndex is missing or invalid.
func (q Question) CorrectOption() (string, bool) {
	if q.CorrectIndex == nil {
		return "", false
	}
	ci := *q.CorrectIndex
	if ci < 0 || ci >= len(q.Options) {
		return "", false
	}
	return q.Options[ci], true
}

// Paragraphs is lesson body text. Content documents may supply it either
// as a single string or as a list of paragraphs; in memory it is always a
// list. An empty scalar decodes to no paragraphs at all.
type Paragraphs []string

func (p *Paragraphs) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "" {
			*p = Paragraphs{s}
		}
		return nil
	}
	var seq []string
	if err := json.Unmarshal(data, &seq); err != nil {
		return err
	}
	*p = Paragraphs(seq)
	return nil
}

func (p *Paragraphs) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s != "" {
			*p = Paragraphs{s}
		}
		return nil
	}
	var seq []string
	if err := value.Decode(&seq); err != nil {
		return err
	}
	*p = Paragraphs(seq)
	return nil
}
