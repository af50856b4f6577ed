package task

// Filter holds optional equality constraints for searching tasks. A nil field
// contributes no constraint; the effective predicate is the conjunction of
// one equality test per non-nil field, so a zero-value Filter matches every
// task. Storage adapters translate the same triple into query conditions.
type Filter struct {
	EventID    *int64
	AssigneeID *int64
	AuthorID   *int64
}

// IsEmpty reports whether the filter carries no constraints.
func (f Filter) IsEmpty() bool {
	return f.EventID == nil && f.AssigneeID == nil && f.AuthorID == nil
}

// Matches evaluates the filter predicate against a task. Order of the
// individual tests is irrelevant since all are pure equality.
func (f Filter) Matches(t *Task) bool {
	if f.EventID != nil && t.EventID != *f.EventID {
		return false
	}
	if f.AssigneeID != nil && (t.AssigneeID == nil || *t.AssigneeID != *f.AssigneeID) {
		return false
	}
	if f.AuthorID != nil && t.AuthorID != *f.AuthorID {
		return false
	}
	return true
}
