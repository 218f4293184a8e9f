package rules

import "github.com/similigh/jira-migrator/internal/core/labels"

// VotesThreshold is the vote count at which an issue gets "has: votes-jira".
const VotesThreshold = 10

// Builtins are the named issue predicates available to predicate rules.
var Builtins = map[string]labels.IssuePredicate{
	// Untriaged issues without a fix version.
	"waiting-for-triage": func(issue labels.Issue) bool {
		return isUnscheduled(issue) && labels.HasLabel(issue, "triage.pending")
	},
	"ideal-for-contribution": func(issue labels.Issue) bool {
		return isUnscheduled(issue) && labels.HasLabel(issue, "triage.3.pr-welcome")
	},
	"blocked": func(issue labels.Issue) bool {
		return issue.Resolution() == "" && labels.HasLabel(issue, "triage.5.blocked")
	},
	"not-likely": func(issue labels.Issue) bool {
		return issue.Resolution() == "" && labels.HasLabel(issue, "triage.4.not-likely")
	},
	"votes": func(issue labels.Issue) bool {
		return issue.Votes() >= VotesThreshold
	},
}

func isUnscheduled(issue labels.Issue) bool {
	return issue.Resolution() == "" && issue.FixVersion() == ""
}
