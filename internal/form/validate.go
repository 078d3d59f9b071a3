package form

import (
	"fmt"
	"strings"

	"confmatch/internal/model"
)

// ValidationError reports the first incomplete required question of a
// section. The handler surfaces the question's prompt to the user.
type ValidationError struct {
	Question model.Question
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please complete: %q", e.Question.Question)
}

// Validate checks the section's completion rules against the answer
// store, in question order, stopping at the first failure. Only
// required questions are checked.
func Validate(sec model.Section, a Answers) error {
	for _, q := range sec.Items {
		if !q.Required {
			continue
		}
		switch model.NormalizeType(string(q.Type)) {
		case model.QuestionTypeResearch:
			// Passes when at least one of the three question texts is
			// filled; readiness/priority are never required on their own.
			slots := a.Research[q.Key]
			if !slots[0].Filled() && !slots[1].Filled() && !slots[2].Filled() {
				return &ValidationError{Question: q}
			}
		case model.QuestionTypeMultiSelect:
			if len(a.Sets[q.Key]) == 0 {
				return &ValidationError{Question: q}
			}
		case model.QuestionTypeSingleSelect:
			v := a.Scalars[q.Key]
			if v == "" {
				return &ValidationError{Question: q}
			}
			if v == model.OtherSentinel && strings.TrimSpace(a.Scalars[q.Key+model.OtherSuffix]) == "" {
				return &ValidationError{Question: q}
			}
		case model.QuestionTypeShortText:
			if strings.TrimSpace(a.Scalars[q.Key]) == "" {
				return &ValidationError{Question: q}
			}
		default:
			// Unrecognized types (and the topic grid) never gate.
		}
	}
	return nil
}
