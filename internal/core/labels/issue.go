package labels

// Issue is the read-only view of a source issue used to pick labels.
// Nullable fields (resolution, fix version, assignee) are empty when unset.
type Issue interface {
	IssueType() string
	Resolution() string
	Status() string
	FixVersion() string
	Labels() []string
	Components() []string
	Votes() int
	Assignee() string
}

// HasLabel reports whether the issue carries the given free-form label.
func HasLabel(issue Issue, label string) bool {
	for _, l := range issue.Labels() {
		if l == label {
			return true
		}
	}
	return false
}

// Handler contributes labels for an issue.
type Handler interface {
	// AllLabels returns every label the handler could ever produce.
	AllLabels() []Label

	// LabelsFor returns the names of the labels that apply to the issue.
	LabelsFor(issue Issue) Set
}
