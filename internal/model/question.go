package model

// QuestionType defines the rendering/validation/storage strategy for a question
type QuestionType string

const (
	QuestionTypeShortText    QuestionType = "short-text"
	QuestionTypeSingleSelect QuestionType = "single-select"
	QuestionTypeMultiSelect  QuestionType = "multi-select"
	QuestionTypeCollabTopics QuestionType = "top-3-collab-topics"
	QuestionTypeResearch     QuestionType = "special-research-questions"
)

// NormalizeType maps the legacy short-text spelling variants onto the
// canonical type. Any other value is returned unchanged.
func NormalizeType(t string) QuestionType {
	switch t {
	case "short-text", "short text", "shorttext":
		return QuestionTypeShortText
	}
	return QuestionType(t)
}

// OtherSentinel is the single-select value that requires a free-text
// companion stored under key + OtherSuffix.
const (
	OtherSentinel = "Other"
	OtherSuffix   = "_other"
)

// Question is a schema-defined question, immutable at runtime
type Question struct {
	Key               string       `json:"key"`
	Type              QuestionType `json:"type"`
	Question          string       `json:"question"`
	Placeholder       string       `json:"placeholder,omitempty"`
	Required          bool         `json:"required"`
	Options           []string     `json:"options,omitempty"`           // choice types only
	AllowOther        bool         `json:"allowOther,omitempty"`        // single-select "Other" escape hatch
	AllowCustomOption bool         `json:"allowCustomOption,omitempty"` // user-added choices
}

// Section is a named, ordered group of questions presented as one page
type Section struct {
	Name  string     `json:"section"`
	Items []Question `json:"items"`
}

// Schema is the ordered sequence of sections; order drives linear
// navigation and is fixed for the process lifetime.
type Schema []Section

// FindQuestion returns the question with the given key, or nil.
func (s Schema) FindQuestion(key string) *Question {
	for i := range s {
		for j := range s[i].Items {
			if s[i].Items[j].Key == key {
				return &s[i].Items[j]
			}
		}
	}
	return nil
}
