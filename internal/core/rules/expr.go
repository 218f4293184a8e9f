// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package rules

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/similigh/jira-migrator/internal/core/labels"
)

// IssueEnv is the environment of issue expressions such as
// `Resolution == "" && HasLabel("triage.pending")`.
type IssueEnv struct {
	IssueType  string
	Resolution string
	Status     string
	FixVersion string
	Labels     []string
	Components []string
	Votes      int
	Assignee   string
}

// HasLabel reports whether the issue carries the free-form label.
func (e IssueEnv) HasLabel(name string) bool {
	for _, l := range e.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// HasComponent reports whether the issue belongs to the component.
func (e IssueEnv) HasComponent(name string) bool {
	for _, c := range e.Components {
		if c == name {
			return true
		}
	}
	return false
}

func newIssueEnv(issue labels.Issue) IssueEnv {
	return IssueEnv{
		IssueType:  issue.IssueType(),
		Resolution: issue.Resolution(),
		Status:     issue.Status(),
		FixVersion: issue.FixVersion(),
		Labels:     issue.Labels(),
		Components: issue.Components(),
		Votes:      issue.Votes(),
		Assignee:   issue.Assignee(),
	}
}

// LabelEnv is the environment of label match expressions such as
// `Label startsWith "type: "`.
type LabelEnv struct {
	Label string
}

// CompileIssuePredicate compiles a boolean issue expression.
// Evaluation errors at run time count as false.
func CompileIssuePredicate(source string) (labels.IssuePredicate, error) {
	program, err := expr.Compile(source, expr.Env(IssueEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile issue expression %q: %w", source, err)
	}
	return func(issue labels.Issue) bool {
		return runBool(program, newIssueEnv(issue))
	}, nil
}

// CompileLabelMatch compiles a boolean label name expression.
func CompileLabelMatch(source string) (labels.NamePredicate, error) {
	program, err := expr.Compile(source, expr.Env(LabelEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile label expression %q: %w", source, err)
	}
	return func(name string) bool {
		return runBool(program, LabelEnv{Label: name})
	}, nil
}

func runBool(program *vm.Program, env any) bool {
	out, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}
