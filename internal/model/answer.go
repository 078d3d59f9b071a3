package model

import "strings"

// CollabTopic is one of the three collaboration topic slots. Likert
// ratings are pointers so an unanswered rating stays absent on the wire
// instead of collapsing to zero.
type CollabTopic struct {
	Topic        string `json:"topic" bson:"topic"`
	Expertise    *int   `json:"expertise,omitempty" bson:"expertise,omitempty"`
	Interest     *int   `json:"interest,omitempty" bson:"interest,omitempty"`
	NeedHaveBoth string `json:"need_have_both,omitempty" bson:"need_have_both,omitempty"` // Need, Have or Both
}

// Filled reports whether the slot holds a usable topic.
func (t CollabTopic) Filled() bool {
	return strings.TrimSpace(t.Topic) != ""
}

// ResearchSlot is one of the three research question slots of a
// special-research-questions item.
type ResearchSlot struct {
	Question  string `json:"question" bson:"question"`
	Readiness *int   `json:"readiness,omitempty" bson:"readiness,omitempty"`
	Priority  *int   `json:"priority,omitempty" bson:"priority,omitempty"`
}

// Filled reports whether the slot holds a usable question text.
func (r ResearchSlot) Filled() bool {
	return strings.TrimSpace(r.Question) != ""
}

// AnswerUpdate is the single mutation request funnelled through the
// merge/update entry point. Scalar and toggle updates carry Value;
// structured slot updates address a 1-based Slot and a Field, with
// Rating for the Likert fields.
type AnswerUpdate struct {
	Key    string `json:"key"`
	Type   string `json:"type"`
	Value  string `json:"value,omitempty"`
	Slot   int    `json:"slot,omitempty"`   // 1..3, structured types only
	Field  string `json:"field,omitempty"`  // structured types only
	Rating *int   `json:"rating,omitempty"` // Likert fields
}
