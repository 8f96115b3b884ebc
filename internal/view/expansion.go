package view

// ExpansionState is the set of entity ids whose children are visible. It is
// process-local UI state, independent of the data lifecycle: it survives a
// full data refresh because membership is keyed by id, not row position.
type ExpansionState struct {
	ids map[string]struct{}
}

// NewExpansionState creates an empty expansion state
func NewExpansionState() *ExpansionState {
	return &ExpansionState{ids: make(map[string]struct{})}
}

// Has reports whether an entity is expanded
func (e *ExpansionState) Has(id string) bool {
	if e == nil {
		return false
	}
	_, ok := e.ids[id]
	return ok
}

// Expand marks an entity as expanded
func (e *ExpansionState) Expand(id string) {
	e.ids[id] = struct{}{}
}

// Collapse marks an entity as collapsed
func (e *ExpansionState) Collapse(id string) {
	delete(e.ids, id)
}

// Toggle flips the expansion of an entity and reports the new state
func (e *ExpansionState) Toggle(id string) bool {
	if e.Has(id) {
		e.Collapse(id)
		return false
	}
	e.Expand(id)
	return true
}

// Len returns the number of expanded entities
func (e *ExpansionState) Len() int {
	return len(e.ids)
}
