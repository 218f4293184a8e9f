// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package jira reads Jira issues exported from the REST search API.
package jira

import "github.com/similigh/jira-migrator/internal/core/labels"

// Ensure Issue implements labels.Issue.
var _ labels.Issue = (*Issue)(nil)

// Named is a Jira field value identified by name (issue type, status, ...).
type Named struct {
	Name string `json:"name"`
}

// User is a Jira user reference.
type User struct {
	Key         string `json:"key"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName"`
}

// Comment is a Jira issue comment.
type Comment struct {
	Author *User  `json:"author"`
	Body   string `json:"body,omitempty"`
}

// Comments is the comment container of an issue.
type Comments struct {
	Comments []Comment `json:"comments"`
}

// Votes is the vote summary of an issue.
type Votes struct {
	Votes int `json:"votes"`
}

// Fields holds the Jira fields read during migration.
type Fields struct {
	Summary     string    `json:"summary"`
	IssueType   *Named    `json:"issuetype"`
	Resolution  *Named    `json:"resolution"`
	Status      *Named    `json:"status"`
	FixVersions []Named   `json:"fixVersions"`
	Labels      []string  `json:"labels"`
	Components  []Named   `json:"components"`
	Votes       *Votes    `json:"votes"`
	Assignee    *User     `json:"assignee"`
	Comment     *Comments `json:"comment"`
}

// Issue is a Jira issue as returned by the REST API.
type Issue struct {
	Key    string `json:"key"`
	Fields Fields `json:"fields"`
}

func name(n *Named) string {
	if n == nil {
		return ""
	}
	return n.Name
}

// IssueType returns the issue type name.
func (i *Issue) IssueType() string { return name(i.Fields.IssueType) }

// Resolution returns the resolution name, or "" for unresolved issues.
func (i *Issue) Resolution() string { return name(i.Fields.Resolution) }

// Status returns the workflow status name.
func (i *Issue) Status() string { return name(i.Fields.Status) }

// FixVersion returns the first fix version, or "" if there is none.
// Issues in the migrated projects carry at most one fix version.
func (i *Issue) FixVersion() string {
	if len(i.Fields.FixVersions) == 0 {
		return ""
	}
	return i.Fields.FixVersions[0].Name
}

// Labels returns the free-form labels.
func (i *Issue) Labels() []string { return i.Fields.Labels }

// Components returns the component names.
func (i *Issue) Components() []string {
	out := make([]string, len(i.Fields.Components))
	for idx, c := range i.Fields.Components {
		out[idx] = c.Name
	}
	return out
}

// Votes returns the vote count.
func (i *Issue) Votes() int {
	if i.Fields.Votes == nil {
		return 0
	}
	return i.Fields.Votes.Votes
}

// Assignee returns the assignee key, or "" for unassigned issues.
func (i *Issue) Assignee() string {
	if i.Fields.Assignee == nil {
		return ""
	}
	return i.Fields.Assignee.Key
}

// CommentList returns the issue comments.
func (i *Issue) CommentList() []Comment {
	if i.Fields.Comment == nil {
		return nil
	}
	return i.Fields.Comment.Comments
}
