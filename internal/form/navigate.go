package form

import "confmatch/internal/model"

// Next advances to the following section if the current one validates.
// At the last section a successful validation leaves the index alone.
func (s *State) Next(schema model.Schema) error {
	if err := Validate(schema[s.SectionIndex], s.Answers); err != nil {
		return err
	}
	if s.SectionIndex < len(schema)-1 {
		s.SectionIndex++
	}
	return nil
}

// Back moves to the previous section without validation. No-op at the
// first section.
func (s *State) Back() {
	if s.SectionIndex > 0 {
		s.SectionIndex--
	}
}

// AtLastSection reports whether submit is available.
func (s *State) AtLastSection(schema model.Schema) bool {
	return s.SectionIndex == len(schema)-1
}
