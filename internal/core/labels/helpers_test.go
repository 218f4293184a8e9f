package labels

// testIssue is a minimal Issue used by the tests in this package.
type testIssue struct {
	issueType  string
	resolution string
	status     string
	fixVersion string
	labels     []string
	components []string
	votes      int
	assignee   string
}

func (i testIssue) IssueType() string    { return i.issueType }
func (i testIssue) Resolution() string   { return i.resolution }
func (i testIssue) Status() string       { return i.status }
func (i testIssue) FixVersion() string   { return i.fixVersion }
func (i testIssue) Labels() []string     { return i.labels }
func (i testIssue) Components() []string { return i.components }
func (i testIssue) Votes() int           { return i.votes }
func (i testIssue) Assignee() string     { return i.assignee }

func names(labels []Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.Name
	}
	return out
}
