// Package quiz builds quiz view-models, scores submitted choices and
// forwards field values to the external form sink. Scoring is a pure
// function of (questions, selections); the sink is invoked by the caller,
// never by Evaluate itself.
package quiz

import (
	"fmt"

	"github.com/edukit/coursed/internal/catalog"
)

// Outcome is the per-question evaluation state. Unanswered is a neutral
// prompt, not a wrong answer.
type Outcome string

const (
	OutcomeUnanswered Outcome = "unanswered"
	OutcomeCorrect    Outcome = "correct"
	OutcomeIncorrect  Outcome = "incorrect"
)

// Feedback strings shown next to each question.
const (
	promptUnanswered = "Pick an answer to see feedback."
	promptCorrect    = "Correct."
	fallbackAnswer   = "the correct option"
)

// OptionView is one selectable choice.
type OptionView struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// QuestionView is one rendered question with its mutually exclusive
// option controls.
type QuestionView struct {
	Index     int          `json:"index"`
	Prompt    string       `json:"prompt"`
	FieldName string       `json:"fieldName"`
	Options   []OptionView `json:"options"`
}

// View is one rendered quiz instance.
type View struct {
	InstanceID string         `json:"instanceId"`
	FormID     string         `json:"formId,omitempty"`
	Questions  []QuestionView `json:"questions"`
}

// Feedback is the per-question evaluation result.
type Feedback struct {
	Index     int     `json:"index"`
	FieldName string  `json:"fieldName"`
	Outcome   Outcome `json:"outcome"`
	Message   string  `json:"message"`
}

// Result is the aggregate evaluation of one quiz instance.
type Result struct {
	Feedback []Feedback `json:"feedback"`
	Correct  int        `json:"correct"`
	Total    int        `json:"total"`
	Score    string     `json:"score"`
}

// FieldName returns the stable form identifier for the question at idx:
// the question's own fieldName when present, else a positional one. The
// same identifier keys local scoring and the external submission.
func FieldName(q catalog.Question, idx int) string {
	if q.FieldName != "" {
		return q.FieldName
	}
	return fmt.Sprintf("q%d", idx)
}

// Build creates the quiz view-model for a sub-section. A question with no
// options renders no controls and can never be answered.
func Build(sub catalog.Subsection, instanceID string) View {
	questions := make([]QuestionView, 0, len(sub.Questions))
	for i, q := range sub.Questions {
		options := make([]OptionView, 0, len(q.Options))
		for oi, opt := range q.Options {
			options = append(options, OptionView{
				ID:    fmt.Sprintf("q%d_o%d", i, oi),
				Value: opt,
			})
		}
		questions = append(questions, QuestionView{
			Index:     i,
			Prompt:    fmt.Sprintf("%d. %s", i+1, q.Question),
			FieldName: FieldName(q, i),
			Options:   options,
		})
	}
	return View{
		InstanceID: instanceID,
		FormID:     sub.QuizFormID,
		Questions:  questions,
	}
}

// Evaluate scores the current selections against the answer key.
// Selections maps field identifier to chosen option index. An unselected
// or out-of-range choice leaves the question in its neutral state; it
// still counts in the denominator but never as incorrect. Answers are
// compared by option index, so two options with identical display text
// stay distinguishable.
func Evaluate(questions []catalog.Question, selections map[string]int) Result {
	result := Result{
		Feedback: make([]Feedback, 0, len(questions)),
		Total:    len(questions),
	}

	for i, q := range questions {
		field := FieldName(q, i)
		fb := Feedback{Index: i, FieldName: field}

		chosen, ok := selections[field]
		switch {
		case !ok || chosen < 0 || chosen >= len(q.Options):
			fb.Outcome = OutcomeUnanswered
			fb.Message = promptUnanswered
		case q.IsCorrect(chosen):
			result.Correct++
			fb.Outcome = OutcomeCorrect
			fb.Message = promptCorrect
			if q.Explanation != "" {
				fb.Message = promptCorrect + " " + q.Explanation
			}
		default:
			fb.Outcome = OutcomeIncorrect
			answer, found := q.CorrectOption()
			if !found {
				answer = fallbackAnswer
			}
			fb.Message = fmt.Sprintf("Not quite. Correct answer: %s.", answer)
			if q.Explanation != "" {
				fb.Message += " " + q.Explanation
			}
		}

		result.Feedback = append(result.Feedback, fb)
	}

	result.Score = fmt.Sprintf("Score: %d/%d", result.Correct, result.Total)
	return result
}

// FieldValues maps each answered question's field identifier to the
// chosen option's display text, the shape the external form sink accepts.
// Unanswered questions are omitted.
func FieldValues(questions []catalog.Question, selections map[string]int) map[string]string {
	fields := make(map[string]string)
	for i, q := range questions {
		field := FieldName(q, i)
		chosen, ok := selections[field]
		if !ok || chosen < 0 || chosen >= len(q.Options) {
			continue
		}
		fields[field] = q.Options[chosen]
	}
	return fields
}
