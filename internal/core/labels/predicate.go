package labels

// IssuePredicate decides whether a label applies to an issue.
// It must not fail and must give the same answer for the same issue.
type IssuePredicate func(issue Issue) bool

// PredicateHandler contributes a single label when its predicate holds.
type PredicateHandler struct {
	label     Label
	predicate IssuePredicate
}

// NewPredicateHandler creates a handler applying label when predicate holds.
func NewPredicateHandler(label Label, predicate IssuePredicate) *PredicateHandler {
	return &PredicateHandler{label: label, predicate: predicate}
}

// AllLabels returns the handler's label.
func (h *PredicateHandler) AllLabels() []Label {
	return []Label{h.label}
}

// LabelsFor returns the label name when the predicate holds, otherwise an empty set.
func (h *PredicateHandler) LabelsFor(issue Issue) Set {
	if h.predicate(issue) {
		return NewSet(h.label.Name)
	}
	return make(Set)
}
