package timetable

// StyleOverrides lets callers pin colors for specific events or whole
// subjects. Event-level overrides win over subject-level ones.
type StyleOverrides struct {
	Events   map[string]Style `json:"events,omitempty"`
	Subjects map[string]Style `json:"subjects,omitempty"`
}

// Resolve returns the override applying to an event, or nil.
func (o *StyleOverrides) Resolve(eventID, materiaKey string) *Style {
	if o == nil {
		return nil
	}
	if st, ok := o.Events[eventID]; ok {
		return &st
	}
	if st, ok := o.Subjects[materiaKey]; ok {
		return &st
	}
	return nil
}
