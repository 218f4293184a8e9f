package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestMapper() *FieldMapper {
	m := NewFieldMapper()
	m.AddMapping(CategoryIssueType, "Bug", "bug")
	m.AddMapping(CategoryIssueType, "Improvement", "enhancement")
	m.AddMapping(CategoryIssueType, "New Feature", "enhancement")
	m.AddMapping(CategoryResolution, "Won't Fix", "declined")
	m.AddMapping(CategoryStatus, "Waiting for Feedback", "waiting-for-feedback")
	m.AddMapping(CategoryVersion, "Waiting for Triage", "waiting-for-triage")
	m.AddMappingWith(CategoryLabel, "Regression", "regression", Type)
	m.AddMapping(CategoryComponent, "Core", "core")
	m.AddMapping(CategoryComponent, "Cache", "cache")
	m.AddMappingWith(CategoryComponent, "Documentation", "documentation", Type)
	return m
}

func TestFieldMapper_LabelsFor(t *testing.T) {
	m := newTestMapper()

	tests := []struct {
		name  string
		issue testIssue
		want  []string
	}{
		{"issue type", testIssue{issueType: "Bug"}, []string{"type: bug"}},
		{"resolution", testIssue{resolution: "Won't Fix"}, []string{"status: declined"}},
		{"status", testIssue{status: "Waiting for Feedback"}, []string{"status: waiting-for-feedback"}},
		{"fix version", testIssue{fixVersion: "Waiting for Triage"}, []string{"status: waiting-for-triage"}},
		{"free-form label", testIssue{labels: []string{"Regression", "other"}}, []string{"type: regression"}},
		{
			"several components",
			testIssue{components: []string{"Core", "Cache", "Documentation", "Unknown"}},
			[]string{"in: cache", "in: core", "type: documentation"},
		},
		{"case sensitive", testIssue{issueType: "bug"}, []string{}},
		{"no signals", testIssue{}, []string{}},
		{
			"combined",
			testIssue{issueType: "Bug", resolution: "Won't Fix", components: []string{"Core"}},
			[]string{"in: core", "status: declined", "type: bug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.LabelsFor(tt.issue).Sorted())
		})
	}
}

func TestFieldMapper_LastMappingWins(t *testing.T) {
	m := NewFieldMapper()
	m.AddMapping(CategoryIssueType, "Task", "task")
	m.AddMapping(CategoryIssueType, "Task", "chore")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"type: chore"}, m.LabelsFor(testIssue{issueType: "Task"}).Sorted())
	assert.Equal(t, []string{"type: chore"}, names(m.AllLabels()))
}

func TestFieldMapper_AllLabelsDeduplicated(t *testing.T) {
	m := newTestMapper()

	assert.Equal(t, 10, m.Len())
	assert.Equal(t, []string{
		"in: cache",
		"in: core",
		"status: declined",
		"status: waiting-for-feedback",
		"status: waiting-for-triage",
		"type: bug",
		"type: documentation",
		"type: enhancement",
		"type: regression",
	}, names(m.AllLabels()))
}

func TestFieldMapper_DefaultFactories(t *testing.T) {
	tests := []struct {
		category Category
		want     Factory
	}{
		{CategoryIssueType, Type},
		{CategoryResolution, Status},
		{CategoryStatus, Status},
		{CategoryVersion, Status},
		{CategoryLabel, Type},
		{CategoryComponent, In},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.DefaultFactory())
		})
	}
}
