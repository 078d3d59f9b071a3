package form

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"confmatch/internal/model"
)

// Load reconstructs a typed state from a previously persisted flat
// record. A nil record means no prior submission and yields an empty
// state; the caller handles lookup errors. Only keys declared in the
// schema (plus their "_other" companions) are picked up, and the two
// structured question types are un-flattened back into their three
// editable slots, preserving order.
func Load(schema model.Schema, rec map[string]any) *State {
	st := NewState()
	if rec == nil {
		return st
	}

	for _, sec := range schema {
		for _, q := range sec.Items {
			switch model.NormalizeType(string(q.Type)) {
			case model.QuestionTypeShortText:
				if v, ok := asString(rec[q.Key]); ok {
					st.Answers.Scalars[q.Key] = v
				}
			case model.QuestionTypeSingleSelect:
				if v, ok := asString(rec[q.Key]); ok {
					st.Answers.Scalars[q.Key] = v
				}
				if q.AllowOther {
					if v, ok := asString(rec[q.Key+model.OtherSuffix]); ok {
						st.Answers.Scalars[q.Key+model.OtherSuffix] = v
					}
				}
			case model.QuestionTypeMultiSelect:
				if vals := asStringSlice(rec[q.Key]); len(vals) > 0 {
					st.Answers.Sets[q.Key] = vals
				}
			case model.QuestionTypeCollabTopics:
				var slots [3]model.CollabTopic
				for i, m := range asRecords(rec[q.Key]) {
					if i >= 3 {
						break
					}
					topic, _ := asString(m["topic"])
					need, _ := asString(m["need_have_both"])
					slots[i] = model.CollabTopic{
						Topic:        topic,
						Expertise:    asRating(m["expertise"]),
						Interest:     asRating(m["interest"]),
						NeedHaveBoth: need,
					}
				}
				st.Answers.Topics[q.Key] = slots
			case model.QuestionTypeResearch:
				var slots [3]model.ResearchSlot
				for i, m := range asRecords(rec[q.Key]) {
					if i >= 3 {
						break
					}
					text, _ := asString(m["question"])
					slots[i] = model.ResearchSlot{
						Question:  text,
						Readiness: asRating(m["readiness"]),
						Priority:  asRating(m["priority"]),
					}
				}
				st.Answers.Research[q.Key] = slots
			}
		}
	}
	return st
}

// asString accepts the string shapes a decoded record can carry.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asStringSlice accepts native, generic and bson array shapes.
func asStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		out := make([]string, len(vals))
		copy(out, vals)
		return out
	case []any:
		return stringsOf(vals)
	case primitive.A:
		return stringsOf(vals)
	}
	return nil
}

func stringsOf(vals []any) []string {
	var out []string
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// asRecords accepts native, generic and bson shapes of an
// array-of-records field.
func asRecords(v any) []map[string]any {
	var items []any
	switch vals := v.(type) {
	case []any:
		items = vals
	case primitive.A:
		items = vals
	case []map[string]any:
		return vals
	default:
		return nil
	}
	var out []map[string]any
	for _, item := range items {
		switch m := item.(type) {
		case map[string]any:
			out = append(out, m)
		case primitive.M:
			out = append(out, m)
		}
	}
	return out
}

// asRating coerces the numeric shapes bson and json decoding produce
// into a Likert rating pointer; anything else stays unset.
func asRating(v any) *int {
	var n int
	switch num := v.(type) {
	case int:
		n = num
	case int32:
		n = int(num)
	case int64:
		n = int(num)
	case float64:
		n = int(num)
	case *int:
		return num
	default:
		return nil
	}
	return &n
}
