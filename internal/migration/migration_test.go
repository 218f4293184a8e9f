package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/similigh/jira-migrator/internal/core/rules"
	"github.com/similigh/jira-migrator/internal/integrations/jira"
)

func newIssue(key, issueType, version, assignee string, jiraLabels ...string) *jira.Issue {
	issue := &jira.Issue{Key: key}
	issue.Fields.Summary = key + " summary"
	issue.Fields.IssueType = &jira.Named{Name: issueType}
	if version != "" {
		issue.Fields.FixVersions = []jira.Named{{Name: version}}
	}
	if assignee != "" {
		issue.Fields.Assignee = &jira.User{Key: assignee}
	}
	issue.Fields.Labels = jiraLabels
	return issue
}

func newConverter(t *testing.T) *Converter {
	t.Helper()
	table, err := rules.Preset("spr")
	require.NoError(t, err)
	handler, err := rules.Build(table)
	require.NoError(t, err)
	return NewConverter(handler, NewMilestoneFilter(DefaultSkipVersions), CompositeProcessor{DefaultAssigneeDropper()})
}

func TestConverter_Convert(t *testing.T) {
	c := newConverter(t)

	tests := []struct {
		name      string
		issue     *jira.Issue
		labels    []string
		assignee  string
		milestone string
	}{
		{
			"scheduled bug keeps assignee and milestone",
			newIssue("SPR-1", "Bug", "5.3 GA", "jhoeller"),
			[]string{"type: bug"}, "jhoeller", "5.3 GA",
		},
		{
			"backlog version drops assignee",
			newIssue("SPR-2", "Task", "General Backlog", "jhoeller"),
			[]string{"type: task"}, "", "General Backlog",
		},
		{
			"triage version is not a milestone and drops assignee",
			newIssue("SPR-3", "Bug", "Waiting for Triage", "rstoyanchev"),
			[]string{"status: waiting-for-triage"}, "", "",
		},
		{
			"pending triage label drops assignee",
			newIssue("SPR-4", "Improvement", "", "sbrannen", "triage.pending"),
			[]string{"status: waiting-for-triage"}, "", "",
		},
		{
			"contributions welcome drops assignee",
			newIssue("SPR-5", "Improvement", "Contributions Welcome", "sdeleuze"),
			[]string{"status: ideal-for-contribution", "type: enhancement"}, "", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := c.Convert(tt.issue)
			assert.Equal(t, tt.issue.Key, imp.Key)
			assert.Equal(t, tt.issue.Key+" summary", imp.Title)
			assert.Equal(t, tt.labels, imp.Labels)
			assert.Equal(t, tt.assignee, imp.Assignee)
			assert.Equal(t, tt.milestone, imp.Milestone)
		})
	}
}

func TestMilestoneFilter(t *testing.T) {
	f := NewMilestoneFilter(DefaultSkipVersions)
	assert.True(t, f.Allow("6.0 M1"))
	assert.False(t, f.Allow("Pending Closure"))
	assert.False(t, f.Allow(""))
}

func TestConverter_Defaults(t *testing.T) {
	table, err := rules.Preset("none")
	require.NoError(t, err)
	handler, err := rules.Build(table)
	require.NoError(t, err)

	c := NewConverter(handler, nil, nil)
	imp := c.Convert(newIssue("X-1", "Bug", "Waiting for Triage", "someone"))
	assert.Empty(t, imp.Labels)
	assert.Equal(t, "Waiting for Triage", imp.Milestone)
	assert.Equal(t, "someone", imp.Assignee)
}
