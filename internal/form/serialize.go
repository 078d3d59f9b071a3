package form

import (
	"strings"

	"confmatch/internal/model"
)

// Serialize re-flattens the answer store into the submission payload,
// the inverse of Load. Structured slots with blank text are dropped and
// the remaining records compact into a shorter ordered sequence; all
// other answers pass through under their own keys.
func Serialize(schema model.Schema, a Answers) map[string]any {
	out := make(map[string]any)

	for _, sec := range schema {
		for _, q := range sec.Items {
			switch model.NormalizeType(string(q.Type)) {
			case model.QuestionTypeShortText:
				if v, ok := a.Scalars[q.Key]; ok {
					out[q.Key] = v
				}
			case model.QuestionTypeSingleSelect:
				if v, ok := a.Scalars[q.Key]; ok {
					out[q.Key] = v
				}
				if q.AllowOther {
					if v, ok := a.Scalars[q.Key+model.OtherSuffix]; ok {
						out[q.Key+model.OtherSuffix] = v
					}
				}
			case model.QuestionTypeMultiSelect:
				if set, ok := a.Sets[q.Key]; ok {
					vals := make([]string, len(set))
					copy(vals, set)
					out[q.Key] = vals
				}
			case model.QuestionTypeCollabTopics:
				topics := make([]model.CollabTopic, 0, 3)
				for _, t := range a.Topics[q.Key] {
					if !t.Filled() {
						continue
					}
					t.Topic = strings.TrimSpace(t.Topic)
					topics = append(topics, t)
				}
				out[q.Key] = topics
			case model.QuestionTypeResearch:
				questions := make([]model.ResearchSlot, 0, 3)
				for _, r := range a.Research[q.Key] {
					if !r.Filled() {
						continue
					}
					questions = append(questions, r)
				}
				out[q.Key] = questions
			}
		}
	}
	return out
}
