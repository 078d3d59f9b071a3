package form

import (
	"reflect"
	"testing"

	"confmatch/internal/model"
)

func TestSerializeCompactsResearchGaps(t *testing.T) {
	st := NewState()
	st.Answers.Research["rq"] = [3]model.ResearchSlot{
		{}, // q1 empty
		{Question: "How does X scale?"},
		{}, // q3 empty
	}

	out := Serialize(testSchema(), st.Answers)

	questions, ok := out["rq"].([]model.ResearchSlot)
	if !ok {
		t.Fatalf("expected research sequence, got %T", out["rq"])
	}
	if len(questions) != 1 {
		t.Fatalf("expected gaps to compact to length 1, got %d", len(questions))
	}
	if questions[0].Question != "How does X scale?" {
		t.Fatalf("unexpected question: %+v", questions[0])
	}
	if questions[0].Readiness != nil || questions[0].Priority != nil {
		t.Fatal("unanswered ratings must stay absent, not zero")
	}
}

func TestSerializeTrimsAndFiltersTopics(t *testing.T) {
	three := 3
	st := NewState()
	st.Answers.Topics["collab"] = [3]model.CollabTopic{
		{Topic: "  Edge AI  ", Expertise: &three},
		{Topic: "   "}, // blank topic is dropped
		{Topic: "Swarms", NeedHaveBoth: "Both"},
	}

	out := Serialize(testSchema(), st.Answers)

	topics, ok := out["collab"].([]model.CollabTopic)
	if !ok {
		t.Fatalf("expected topic sequence, got %T", out["collab"])
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	if topics[0].Topic != "Edge AI" {
		t.Fatalf("expected trimmed topic, got %q", topics[0].Topic)
	}
	if topics[1].Topic != "Swarms" || topics[1].NeedHaveBoth != "Both" {
		t.Fatalf("unexpected second topic: %+v", topics[1])
	}
	if topics[1].Expertise != nil || topics[1].Interest != nil {
		t.Fatal("unset ratings must stay absent")
	}
}

func TestSerializePassesScalarsAndSetsThrough(t *testing.T) {
	st := NewState()
	st.Answers.Scalars["name"] = "Ada"
	st.Answers.Scalars["role"] = "Other"
	st.Answers.Scalars["role_other"] = "Analyst"
	st.Answers.Sets["topics"] = []string{"ML", "Quantum"}

	out := Serialize(testSchema(), st.Answers)

	if out["name"] != "Ada" || out["role"] != "Other" || out["role_other"] != "Analyst" {
		t.Fatalf("scalars must pass through unchanged: %v", out)
	}
	if got := out["topics"].([]string); !reflect.DeepEqual(got, []string{"ML", "Quantum"}) {
		t.Fatalf("sets must pass through unchanged, got %v", got)
	}
}

func TestSerializeOmitsUnansweredKeys(t *testing.T) {
	st := NewState()
	out := Serialize(testSchema(), st.Answers)

	if _, ok := out["name"]; ok {
		t.Fatal("unanswered scalars must not appear")
	}
	// Structured keys always emit their (possibly empty) sequence.
	if _, ok := out["rq"]; !ok {
		t.Fatal("research key must always be present")
	}
	if _, ok := out["collab"]; !ok {
		t.Fatal("topic key must always be present")
	}
}

func TestPrefillSerializeRoundTrip(t *testing.T) {
	rec := map[string]any{
		"name": "Ada",
		"collab": []any{
			map[string]any{"topic": "A", "expertise": float64(3), "interest": float64(4), "need_have_both": "Need"},
		},
		"rq": []any{
			map[string]any{"question": "How does X scale?", "readiness": float64(2)},
		},
	}

	// Load then immediately serialize without edits.
	st := Load(testSchema(), rec)
	out := Serialize(testSchema(), st.Answers)

	three, four, two := 3, 4, 2
	wantTopics := []model.CollabTopic{{Topic: "A", Expertise: &three, Interest: &four, NeedHaveBoth: "Need"}}
	gotTopics := out["collab"].([]model.CollabTopic)
	if !reflect.DeepEqual(gotTopics, wantTopics) {
		t.Fatalf("topic round trip mismatch:\n got %+v\nwant %+v", gotTopics, wantTopics)
	}

	wantQuestions := []model.ResearchSlot{{Question: "How does X scale?", Readiness: &two}}
	gotQuestions := out["rq"].([]model.ResearchSlot)
	if !reflect.DeepEqual(gotQuestions, wantQuestions) {
		t.Fatalf("research round trip mismatch:\n got %+v\nwant %+v", gotQuestions, wantQuestions)
	}

	if out["name"] != "Ada" {
		t.Fatalf("scalar round trip mismatch: %v", out["name"])
	}
}
