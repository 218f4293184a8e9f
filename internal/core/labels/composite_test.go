package labels

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestResolver mirrors the shape of a real migration configuration.
func newTestResolver() *CompositeHandler {
	m := NewFieldMapper()
	m.AddMapping(CategoryIssueType, "Bug", "bug")
	m.AddMapping(CategoryIssueType, "Task", "task")
	m.AddMapping(CategoryIssueType, "Improvement", "enhancement")
	m.AddMapping(CategoryResolution, "Won't Fix", "declined")
	m.AddMapping(CategoryResolution, "Duplicate", "duplicate")
	m.AddMapping(CategoryResolution, "Invalid", "invalid")
	m.AddMappingWith(CategoryLabel, "Regression", "regression", Type)

	c := NewCompositeHandler()
	c.AddHandler(m)
	c.AddPredicate(Has.Apply("votes-jira"), func(issue Issue) bool {
		return issue.Votes() >= 10
	})
	c.AddPredicate(Status.Apply("waiting-for-triage"), func(issue Issue) bool {
		return issue.Resolution() == "" && HasLabel(issue, "triage.pending")
	})

	c.AddSupersede("type: bug", "type: regression")
	c.AddSupersede("type: enhancement", "type: task")

	c.AddRemoval("status: waiting-for-triage", HasPrefix("type: "))
	c.AddRemoval("status: invalid", HasPrefix("type: "))
	c.AddRemoval("status: declined", OneOf("type: bug"))
	c.AddRemoval("status: declined", OneOf("type: regression"))
	return c
}

func TestCompositeHandler_Scenarios(t *testing.T) {
	c := newTestResolver()

	tests := []struct {
		name  string
		issue testIssue
		want  []string
	}{
		{"bug only", testIssue{issueType: "Bug"}, []string{"type: bug"}},
		{
			"regression supersedes bug",
			testIssue{issueType: "Bug", labels: []string{"Regression"}},
			[]string{"type: regression"},
		},
		{
			"declined removes bug",
			testIssue{issueType: "Bug", resolution: "Won't Fix"},
			[]string{"status: declined"},
		},
		{
			"declined removes regression too",
			testIssue{issueType: "Task", resolution: "Won't Fix", labels: []string{"Regression"}},
			[]string{"status: declined", "type: task"},
		},
		{"ten votes", testIssue{votes: 10}, []string{"has: votes-jira"}},
		{"nine votes", testIssue{votes: 9}, []string{}},
		{
			"waiting for triage strips every type",
			testIssue{issueType: "Bug", labels: []string{"triage.pending", "Regression"}, votes: 12},
			[]string{"has: votes-jira", "status: waiting-for-triage"},
		},
		{
			"invalid strips type",
			testIssue{issueType: "Improvement", resolution: "Invalid"},
			[]string{"status: invalid"},
		},
		{"duplicate keeps type", testIssue{issueType: "Task", resolution: "Duplicate"}, []string{"status: duplicate", "type: task"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.LabelsFor(tt.issue).Sorted())
		})
	}
}

func TestCompositeHandler_Idempotent(t *testing.T) {
	c := newTestResolver()
	issue := testIssue{issueType: "Bug", resolution: "Won't Fix", labels: []string{"Regression"}, votes: 30}

	first := c.LabelsFor(issue).Sorted()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.LabelsFor(issue).Sorted())
	}
}

func TestCompositeHandler_SupersedeNeverKeepsBoth(t *testing.T) {
	c := NewCompositeHandler()
	c.AddPredicate(Type.Apply("bug"), func(Issue) bool { return true })
	c.AddPredicate(Type.Apply("regression"), func(Issue) bool { return true })
	c.AddSupersede("type: bug", "type: regression")

	got := c.LabelsFor(testIssue{})
	assert.False(t, got.Has("type: bug"))
	assert.True(t, got.Has("type: regression"))
}

func TestCompositeHandler_SupersedeOrder(t *testing.T) {
	// "type: task" is removed by the first rule, so the second rule no
	// longer sees both of its labels and keeps "type: enhancement".
	c := NewCompositeHandler()
	for _, n := range []string{"task", "enhancement", "documentation"} {
		c.AddPredicate(Type.Apply(n), func(Issue) bool { return true })
	}
	c.AddSupersede("type: task", "type: documentation")
	c.AddSupersede("type: enhancement", "type: task")

	assert.Equal(t, []string{"type: documentation", "type: enhancement"}, c.LabelsFor(testIssue{}).Sorted())
}

func TestCompositeHandler_MultipleRemovalsPerTrigger(t *testing.T) {
	c := NewCompositeHandler()
	for _, n := range []string{"status: duplicate", "type: bug", "type: regression", "type: task"} {
		name := n
		c.AddPredicate(Label{Name: name}, func(Issue) bool { return true })
	}
	c.AddRemoval("status: duplicate", OneOf("type: bug"))
	c.AddRemoval("status: duplicate", OneOf("type: regression"))

	assert.Equal(t, []string{"status: duplicate", "type: task"}, c.LabelsFor(testIssue{}).Sorted())
}

func TestCompositeHandler_RemovalLeavesNoMatch(t *testing.T) {
	all := []string{"status: waiting-for-triage", "type: bug", "type: task", "in: core"}
	c := NewCompositeHandler()
	for _, n := range all {
		name := n
		c.AddPredicate(Label{Name: name}, func(Issue) bool { return true })
	}
	pred := HasPrefix("type: ")
	c.AddRemoval("status: waiting-for-triage", pred)

	got := c.LabelsFor(testIssue{})
	for name := range got {
		assert.False(t, pred(name), "label %q should have been removed", name)
	}
	assert.True(t, got.Has("status: waiting-for-triage"))
	assert.True(t, got.Has("in: core"))
}

func TestCompositeHandler_TriggerRemovesItself(t *testing.T) {
	c := NewCompositeHandler()
	c.AddPredicate(Status.Apply("duplicate"), func(Issue) bool { return true })
	c.AddPredicate(Status.Apply("declined"), func(Issue) bool { return true })
	c.AddRemoval("status: duplicate", HasPrefix("status: "))

	assert.Empty(t, c.LabelsFor(testIssue{}))
}

func TestCompositeHandler_RemovalWithoutTrigger(t *testing.T) {
	c := NewCompositeHandler()
	c.AddPredicate(Type.Apply("bug"), func(Issue) bool { return true })
	c.AddRemoval("status: declined", HasPrefix("type: "))

	assert.Equal(t, []string{"type: bug"}, c.LabelsFor(testIssue{}).Sorted())
}

func TestCompositeHandler_Nested(t *testing.T) {
	inner := NewCompositeHandler()
	inner.AddPredicate(Type.Apply("bug"), func(Issue) bool { return true })
	inner.AddPredicate(Type.Apply("regression"), func(Issue) bool { return true })
	inner.AddSupersede("type: bug", "type: regression")

	outer := NewCompositeHandler()
	outer.AddHandler(inner)
	outer.AddPredicate(Status.Apply("declined"), func(Issue) bool { return true })
	outer.AddRemoval("status: declined", OneOf("type: regression"))

	assert.Equal(t, []string{"status: declined"}, outer.LabelsFor(testIssue{}).Sorted())
	assert.Equal(t, []string{"status: declined", "type: bug", "type: regression"}, names(outer.AllLabels()))
}

func TestCompositeHandler_AllLabels(t *testing.T) {
	m := NewFieldMapper()
	m.AddMapping(CategoryIssueType, "Bug", "bug")
	m.AddMapping(CategoryIssueType, "Defect", "bug")
	m.AddMapping(CategoryResolution, "Won't Fix", "declined")
	m.AddMapping(CategoryResolution, "Won't Do", "declined")

	c := NewCompositeHandler()
	c.AddHandler(m)
	c.AddPredicate(Has.Apply("votes-jira"), func(Issue) bool { return false })
	c.AddPredicate(Status.Apply("declined"), func(Issue) bool { return false })

	assert.Equal(t, []Label{
		{Name: "has: votes-jira", Color: "dfdfdf"},
		{Name: "status: declined", Color: "fef2c0"},
		{Name: "type: bug", Color: "e3d9fc"},
	}, c.AllLabels())
}

func TestCompositeHandler_ConcurrentResolution(t *testing.T) {
	c := newTestResolver()
	issues := []testIssue{
		{issueType: "Bug"},
		{issueType: "Bug", labels: []string{"Regression"}},
		{issueType: "Bug", resolution: "Won't Fix"},
		{votes: 10},
	}
	want := make([][]string, len(issues))
	for i, issue := range issues {
		want[i] = c.LabelsFor(issue).Sorted()
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, issue := range issues {
				got := c.LabelsFor(issue).Sorted()
				if strings.Join(got, ",") != strings.Join(want[i], ",") {
					t.Errorf("issue %d: got %v, want %v", i, got, want[i])
				}
			}
		}()
	}
	wg.Wait()
}

func TestAnyOf(t *testing.T) {
	p := AnyOf(OneOf("a"), HasPrefix("type: "))
	assert.True(t, p("a"))
	assert.True(t, p("type: bug"))
	assert.False(t, p("b"))
}
