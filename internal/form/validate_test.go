package form

import (
	"errors"
	"testing"

	"confmatch/internal/model"
)

func failingKey(t *testing.T, err error) string {
	t.Helper()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return vErr.Question.Key
}

func TestValidateMultiSelectRequiresNonEmptySet(t *testing.T) {
	sec := model.Section{Items: []model.Question{
		{Key: "topics", Type: model.QuestionTypeMultiSelect, Question: "Topics?", Required: true},
	}}
	st := NewState()

	err := Validate(sec, st.Answers)
	if key := failingKey(t, err); key != "topics" {
		t.Fatalf("expected topics to fail, got %q", key)
	}

	st.Answers.Sets["topics"] = []string{"ML"}
	if err := Validate(sec, st.Answers); err != nil {
		t.Fatalf("expected pass after adding an element, got %v", err)
	}
}

func TestValidateSingleSelectOtherCompanion(t *testing.T) {
	sec := model.Section{Items: []model.Question{
		{Key: "role", Type: model.QuestionTypeSingleSelect, Question: "Role?", Required: true, AllowOther: true},
	}}

	tests := []struct {
		name    string
		value   string
		other   string
		wantErr bool
	}{
		{name: "missing value", wantErr: true},
		{name: "plain value", value: "Faculty"},
		{name: "other without companion", value: "Other", wantErr: true},
		{name: "other with blank companion", value: "Other", other: "   ", wantErr: true},
		{name: "other with companion", value: "Other", other: "Archivist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			if tt.value != "" {
				st.Answers.Scalars["role"] = tt.value
			}
			if tt.other != "" {
				st.Answers.Scalars["role_other"] = tt.other
			}

			err := Validate(sec, st.Answers)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation failure")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected pass, got %v", err)
			}
		})
	}
}

func TestValidateShortTextVariantsTrim(t *testing.T) {
	for _, typ := range []string{"short-text", "short text", "shorttext"} {
		sec := model.Section{Items: []model.Question{
			{Key: "name", Type: model.QuestionType(typ), Question: "Name?", Required: true},
		}}
		st := NewState()
		st.Answers.Scalars["name"] = "   "
		if err := Validate(sec, st.Answers); err == nil {
			t.Fatalf("type %q: blank value must fail", typ)
		}

		st.Answers.Scalars["name"] = " Ada "
		if err := Validate(sec, st.Answers); err != nil {
			t.Fatalf("type %q: expected pass, got %v", typ, err)
		}
	}
}

func TestValidateResearchNeedsOneFilledSlot(t *testing.T) {
	sec := model.Section{Items: []model.Question{
		{Key: "rq", Type: model.QuestionTypeResearch, Question: "Research questions", Required: true},
	}}

	st := NewState()
	if err := Validate(sec, st.Answers); err == nil {
		t.Fatal("expected failure with no slots filled")
	}

	// A single filled slot anywhere passes; ratings are never required.
	st.Answers.Research["rq"] = [3]model.ResearchSlot{
		{}, {Question: "How does X scale?"}, {},
	}
	if err := Validate(sec, st.Answers); err != nil {
		t.Fatalf("expected pass with one slot filled, got %v", err)
	}

	st.Answers.Research["rq"] = [3]model.ResearchSlot{{Question: "   "}, {}, {}}
	if err := Validate(sec, st.Answers); err == nil {
		t.Fatal("whitespace-only slot must not count as filled")
	}
}

func TestValidateSkipsNonRequiredAndUnknownTypes(t *testing.T) {
	sec := model.Section{Items: []model.Question{
		{Key: "optional", Type: model.QuestionTypeShortText, Question: "Optional?"},
		{Key: "mystery", Type: model.QuestionType("matrix-grid"), Question: "Mystery?", Required: true},
		{Key: "collab", Type: model.QuestionTypeCollabTopics, Question: "Topics grid", Required: true},
	}}
	st := NewState()
	if err := Validate(sec, st.Answers); err != nil {
		t.Fatalf("non-required and unrecognized questions must never gate, got %v", err)
	}
}

func TestValidateShortCircuitsOnFirstFailure(t *testing.T) {
	sec := model.Section{Items: []model.Question{
		{Key: "first", Type: model.QuestionTypeShortText, Question: "First?", Required: true},
		{Key: "second", Type: model.QuestionTypeMultiSelect, Question: "Second?", Required: true},
	}}
	st := NewState()

	if key := failingKey(t, Validate(sec, st.Answers)); key != "first" {
		t.Fatalf("expected first failing question, got %q", key)
	}

	st.Answers.Scalars["first"] = "done"
	if key := failingKey(t, Validate(sec, st.Answers)); key != "second" {
		t.Fatalf("expected second failing question, got %q", key)
	}
}
