// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package migration converts Jira issues into GitHub import records.
package migration

import (
	"strings"

	"github.com/similigh/jira-migrator/internal/core/labels"
)

// ImportIssue is the GitHub issue handed to the importer.
type ImportIssue struct {
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	Labels    []string `json:"labels"`
	Assignee  string   `json:"assignee,omitempty"`
	Milestone string   `json:"milestone,omitempty"`
}

// HasLabel reports whether the import record carries the label.
func (i *ImportIssue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// IssueProcessor adjusts an import record before it is imported.
type IssueProcessor interface {
	BeforeImport(issue labels.Issue, imp *ImportIssue)
}

// CompositeProcessor runs processors in order.
type CompositeProcessor []IssueProcessor

// BeforeImport runs every processor.
func (c CompositeProcessor) BeforeImport(issue labels.Issue, imp *ImportIssue) {
	for _, p := range c {
		p.BeforeImport(issue, imp)
	}
}

// AssigneeDropper clears the assignee of issues nobody is actively working
// on: those scheduled into a backlog version, or carrying one of Labels.
type AssigneeDropper struct {
	VersionContains string
	Labels          []string
}

// DefaultAssigneeDropper drops assignees of backlog issues and of issues
// that wait for triage or are open for contributions.
func DefaultAssigneeDropper() *AssigneeDropper {
	return &AssigneeDropper{
		VersionContains: "Backlog",
		Labels: []string{
			labels.Status.Apply("waiting-for-triage").Name,
			labels.Status.Apply("ideal-for-contribution").Name,
		},
	}
}

// BeforeImport clears the assignee when the issue matches.
func (d *AssigneeDropper) BeforeImport(issue labels.Issue, imp *ImportIssue) {
	if d.VersionContains != "" {
		if v := issue.FixVersion(); v != "" && strings.Contains(v, d.VersionContains) {
			imp.Assignee = ""
			return
		}
	}
	for _, l := range d.Labels {
		if imp.HasLabel(l) {
			imp.Assignee = ""
			return
		}
	}
}

// MilestoneFilter decides which fix versions become GitHub milestones.
// Versions used as triage buckets in Jira are skipped.
type MilestoneFilter struct {
	skip map[string]bool
}

// DefaultSkipVersions are the Jira versions that are not real releases.
var DefaultSkipVersions = []string{"Contributions Welcome", "Pending Closure", "Waiting for Triage"}

// NewMilestoneFilter creates a filter skipping the given versions.
func NewMilestoneFilter(skip []string) *MilestoneFilter {
	f := &MilestoneFilter{skip: make(map[string]bool, len(skip))}
	for _, v := range skip {
		f.skip[v] = true
	}
	return f
}

// Allow reports whether the version should become a milestone.
func (f *MilestoneFilter) Allow(version string) bool {
	return version != "" && !f.skip[version]
}
