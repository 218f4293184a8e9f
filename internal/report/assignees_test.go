package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/similigh/jira-migrator/internal/integrations/jira"
)

func TestAssignees(t *testing.T) {
	jh := &jira.User{Key: "jhoeller", DisplayName: "Juergen Hoeller"}
	sb := &jira.User{Key: "sbrannen", DisplayName: "Sam Brannen"}

	issues := []jira.Issue{
		{Key: "SPR-1", Fields: jira.Fields{Assignee: jh, Comment: &jira.Comments{Comments: []jira.Comment{{Author: sb}, {Author: jh}, {Author: sb}}}}},
		{Key: "SPR-2", Fields: jira.Fields{Assignee: jh}},
		{Key: "SPR-3", Fields: jira.Fields{Assignee: sb, Comment: &jira.Comments{Comments: []jira.Comment{{Author: nil}}}}},
		{Key: "SPR-4"},
	}

	r := Assignees(issues)
	require.Len(t, r.Assignees, 2)
	assert.Equal(t, "jhoeller (Juergen Hoeller) [2]", r.Assignees[0].String())
	assert.Equal(t, "sbrannen (Sam Brannen) [1]", r.Assignees[1].String())

	assert.Equal(t, []UserCount{
		{User: "sbrannen (Sam Brannen)", Count: 2},
		{User: "jhoeller (Juergen Hoeller)", Count: 1},
	}, r.Commenters)
}

func TestAssignees_Empty(t *testing.T) {
	r := Assignees(nil)
	assert.Empty(t, r.Assignees)
	assert.Empty(t, r.Commenters)
}
