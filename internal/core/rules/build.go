// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package rules

import (
	"fmt"
	"log/slog"

	"github.com/similigh/jira-migrator/internal/core/labels"
)

// Build validates the table and assembles the label resolution engine:
// one field mapper, one predicate handler per predicate rule, and the
// supersede and removal rules in table order.
func Build(t Table) (*labels.CompositeHandler, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	mapper := labels.NewFieldMapper()
	for _, m := range t.Mappings {
		category, _ := labels.ParseCategory(m.Category)
		factory := category.DefaultFactory()
		if m.Factory != "" {
			factory, _ = labels.FactoryByName(m.Factory)
		}
		mapper.AddMappingWith(category, m.Value, m.Label, factory)
	}

	handler := labels.NewCompositeHandler()
	handler.AddHandler(mapper)

	for i, p := range t.Predicates {
		predicate, err := issuePredicate(p)
		if err != nil {
			return nil, fmt.Errorf("predicate %d (%s): %w", i, p.Label, err)
		}
		factory, _ := labels.FactoryByName(p.Factory)
		handler.AddPredicate(factory.Apply(p.Label), predicate)
	}

	for _, s := range t.Supersedes {
		handler.AddSupersede(s.General, s.Specific)
	}

	for i, r := range t.Removals {
		match, err := removalMatch(r)
		if err != nil {
			return nil, fmt.Errorf("removal %d (%s): %w", i, r.Trigger, err)
		}
		handler.AddRemoval(r.Trigger, match)
	}

	slog.Debug("built label rules",
		"mappings", mapper.Len(),
		"predicates", len(t.Predicates),
		"supersedes", len(t.Supersedes),
		"removals", len(t.Removals),
	)
	return handler, nil
}

func issuePredicate(p PredicateRule) (labels.IssuePredicate, error) {
	if p.Builtin != "" {
		return Builtins[p.Builtin], nil
	}
	return CompileIssuePredicate(p.When)
}

func removalMatch(r Removal) (labels.NamePredicate, error) {
	var preds []labels.NamePredicate
	if r.Prefix != "" {
		preds = append(preds, labels.HasPrefix(r.Prefix))
	}
	if len(r.Names) > 0 {
		preds = append(preds, labels.OneOf(r.Names...))
	}
	if r.Match != "" {
		match, err := CompileLabelMatch(r.Match)
		if err != nil {
			return nil, err
		}
		preds = append(preds, match)
	}
	if len(preds) == 1 {
		return preds[0], nil
	}
	return labels.AnyOf(preds...), nil
}
