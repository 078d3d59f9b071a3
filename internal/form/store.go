package form

import (
	"fmt"
	"strings"

	"confmatch/internal/model"
)

// Answers is the typed answer store. Each question key lives in exactly
// one of the four maps, decided by its question type; the "_other"
// companion of a single-select lives in Scalars under key + "_other".
type Answers struct {
	Scalars  map[string]string                `json:"scalars"`
	Sets     map[string][]string              `json:"sets"`
	Topics   map[string][3]model.CollabTopic  `json:"topics"`
	Research map[string][3]model.ResearchSlot `json:"research"`
}

// State is the whole per-user questionnaire session: the answer store,
// the custom option registry and the current section index.
type State struct {
	SectionIndex  int                 `json:"sectionIndex"`
	Answers       Answers             `json:"answers"`
	CustomOptions map[string][]string `json:"customOptions"`
}

// NewState returns an empty state positioned at the first section.
func NewState() *State {
	return &State{
		Answers: Answers{
			Scalars:  make(map[string]string),
			Sets:     make(map[string][]string),
			Topics:   make(map[string][3]model.CollabTopic),
			Research: make(map[string][3]model.ResearchSlot),
		},
		CustomOptions: make(map[string][]string),
	}
}

// Apply is the single mutation entry point for the answer store.
// Multi-select updates toggle the value in the stored set; structured
// slot updates address one field of one slot; everything else replaces
// the scalar at the key.
func (s *State) Apply(u model.AnswerUpdate) error {
	switch model.NormalizeType(u.Type) {
	case model.QuestionTypeMultiSelect:
		s.Answers.Sets[u.Key] = toggle(s.Answers.Sets[u.Key], u.Value)

	case model.QuestionTypeCollabTopics:
		if u.Slot < 1 || u.Slot > 3 {
			return fmt.Errorf("topic slot out of range: %d", u.Slot)
		}
		slots := s.Answers.Topics[u.Key]
		t := &slots[u.Slot-1]
		switch u.Field {
		case "topic":
			t.Topic = u.Value
		case "expertise":
			t.Expertise = u.Rating
		case "interest":
			t.Interest = u.Rating
		case "need_have_both":
			t.NeedHaveBoth = u.Value
		default:
			return fmt.Errorf("unknown collaboration topic field %q", u.Field)
		}
		s.Answers.Topics[u.Key] = slots

	case model.QuestionTypeResearch:
		if u.Slot < 1 || u.Slot > 3 {
			return fmt.Errorf("research slot out of range: %d", u.Slot)
		}
		slots := s.Answers.Research[u.Key]
		r := &slots[u.Slot-1]
		switch u.Field {
		case "question":
			r.Question = u.Value
		case "readiness":
			r.Readiness = u.Rating
		case "priority":
			r.Priority = u.Rating
		default:
			return fmt.Errorf("unknown research question field %q", u.Field)
		}
		s.Answers.Research[u.Key] = slots

	default:
		s.Answers.Scalars[u.Key] = u.Value
	}
	return nil
}

// AddCustomOption registers a user-authored choice for the question and
// reflects it into the answer store: multi-select answers gain the new
// option, single-select answers switch to it. Blank input is a no-op,
// and repeating the same text changes nothing.
func (s *State) AddCustomOption(schema model.Schema, key, raw string) {
	val := strings.TrimSpace(raw)
	if val == "" {
		return
	}
	if !contains(s.CustomOptions[key], val) {
		s.CustomOptions[key] = append(s.CustomOptions[key], val)
	}

	q := schema.FindQuestion(key)
	if q == nil {
		return
	}
	switch q.Type {
	case model.QuestionTypeMultiSelect:
		if !contains(s.Answers.Sets[key], val) {
			s.Answers.Sets[key] = append(s.Answers.Sets[key], val)
		}
	case model.QuestionTypeSingleSelect:
		s.Answers.Scalars[key] = val
	}
}

// MergedOptions returns the question's choices for rendering and
// validation: schema-declared options first, then session customs,
// deduplicated in order.
func (s *State) MergedOptions(q model.Question) []string {
	merged := make([]string, 0, len(q.Options)+len(s.CustomOptions[q.Key]))
	merged = append(merged, q.Options...)
	for _, c := range s.CustomOptions[q.Key] {
		if !contains(merged, c) {
			merged = append(merged, c)
		}
	}
	return merged
}

// toggle removes v if present, otherwise appends it. First-insertion
// order is preserved and duplicates never exist.
func toggle(set []string, v string) []string {
	for i, cur := range set {
		if cur == v {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, v)
}

func contains(list []string, v string) bool {
	for _, cur := range list {
		if cur == v {
			return true
		}
	}
	return false
}
