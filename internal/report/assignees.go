// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package report builds pre-migration reports from Jira exports, such as the
// list of users to map to GitHub accounts.
package report

import (
	"fmt"
	"sort"

	"github.com/similigh/jira-migrator/internal/integrations/jira"
)

// UserCount is the number of issues or comments attributed to a user.
type UserCount struct {
	User  string `json:"user"`
	Count int    `json:"count"`
}

// String formats the count as "key (Display Name) [N]".
func (u UserCount) String() string {
	return fmt.Sprintf("%s [%d]", u.User, u.Count)
}

// AssigneesReport lists assignees and commenters of a set of issues.
type AssigneesReport struct {
	Assignees  []UserCount `json:"assignees"`
	Commenters []UserCount `json:"commenters"`
}

// Assignees counts assignees and comment authors across issues. Both lists
// are sorted by descending count, then by user.
func Assignees(issues []jira.Issue) *AssigneesReport {
	assignees := make(map[string]int)
	commenters := make(map[string]int)
	for i := range issues {
		issue := &issues[i]
		if u := issue.Fields.Assignee; u != nil {
			assignees[userKey(u)]++
		}
		for _, c := range issue.CommentList() {
			if c.Author != nil {
				commenters[userKey(c.Author)]++
			}
		}
	}
	return &AssigneesReport{
		Assignees:  sortedCounts(assignees),
		Commenters: sortedCounts(commenters),
	}
}

func userKey(u *jira.User) string {
	return fmt.Sprintf("%s (%s)", u.Key, u.DisplayName)
}

func sortedCounts(counts map[string]int) []UserCount {
	out := make([]UserCount, 0, len(counts))
	for user, n := range counts {
		out = append(out, UserCount{User: user, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].User < out[j].User
	})
	return out
}
