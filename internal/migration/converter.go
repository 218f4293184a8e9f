package migration

import (
	"github.com/similigh/jira-migrator/internal/core/labels"
	"github.com/similigh/jira-migrator/internal/integrations/jira"
)

// Converter turns Jira issues into import records.
type Converter struct {
	labels     labels.Handler
	milestones *MilestoneFilter
	processor  IssueProcessor
}

// NewConverter creates a converter. A nil filter allows every version and a
// nil processor leaves records untouched.
func NewConverter(handler labels.Handler, milestones *MilestoneFilter, processor IssueProcessor) *Converter {
	if milestones == nil {
		milestones = NewMilestoneFilter(nil)
	}
	if processor == nil {
		processor = CompositeProcessor(nil)
	}
	return &Converter{labels: handler, milestones: milestones, processor: processor}
}

// Convert builds the import record of a Jira issue.
func (c *Converter) Convert(issue *jira.Issue) *ImportIssue {
	imp := &ImportIssue{
		Key:      issue.Key,
		Title:    issue.Fields.Summary,
		Labels:   c.labels.LabelsFor(issue).Sorted(),
		Assignee: issue.Assignee(),
	}
	if v := issue.FixVersion(); c.milestones.Allow(v) {
		imp.Milestone = v
	}
	c.processor.BeforeImport(issue, imp)
	return imp
}
