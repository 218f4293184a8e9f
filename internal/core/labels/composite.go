// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package labels

import "strings"

// NamePredicate selects label names.
type NamePredicate func(name string) bool

// HasPrefix selects label names starting with prefix.
func HasPrefix(prefix string) NamePredicate {
	return func(name string) bool {
		return strings.HasPrefix(name, prefix)
	}
}

// OneOf selects the given label names.
func OneOf(names ...string) NamePredicate {
	set := NewSet(names...)
	return func(name string) bool {
		return set.Has(name)
	}
}

// AnyOf selects label names matched by at least one of the predicates.
func AnyOf(predicates ...NamePredicate) NamePredicate {
	return func(name string) bool {
		for _, p := range predicates {
			if p(name) {
				return true
			}
		}
		return false
	}
}

type supersede struct {
	general  string
	specific string
}

type removal struct {
	trigger    string
	predicates []NamePredicate
}

func (r *removal) matches(name string) bool {
	for _, p := range r.predicates {
		if p(name) {
			return true
		}
	}
	return false
}

// CompositeHandler combines the labels of several handlers and then resolves
// conflicts between them with supersede and removal rules.
//
// Handlers and rules must be registered before the first call to LabelsFor.
// After that the handler is read-only and LabelsFor may be called concurrently.
type CompositeHandler struct {
	handlers    []Handler
	supersedes  []supersede
	removals    []*removal
	removeIndex map[string]*removal
}

// NewCompositeHandler creates an empty composite handler.
func NewCompositeHandler() *CompositeHandler {
	return &CompositeHandler{removeIndex: make(map[string]*removal)}
}

// AddHandler appends a label source.
func (c *CompositeHandler) AddHandler(h Handler) {
	c.handlers = append(c.handlers, h)
}

// AddPredicate appends a handler that applies label when predicate holds.
func (c *CompositeHandler) AddPredicate(label Label, predicate IssuePredicate) {
	c.AddHandler(NewPredicateHandler(label, predicate))
}

// AddSupersede registers that specific, when present, replaces general.
func (c *CompositeHandler) AddSupersede(general, specific string) {
	c.supersedes = append(c.supersedes, supersede{general: general, specific: specific})
}

// AddRemoval registers that when trigger is present, all labels matching
// predicate are removed. Registering the same trigger again adds the
// predicate to the existing rule: labels matching any of them are removed.
func (c *CompositeHandler) AddRemoval(trigger string, predicate NamePredicate) {
	r, ok := c.removeIndex[trigger]
	if !ok {
		r = &removal{trigger: trigger}
		c.removeIndex[trigger] = r
		c.removals = append(c.removals, r)
	}
	r.predicates = append(r.predicates, predicate)
}

// AllLabels returns every label any handler could produce, deduplicated by name.
func (c *CompositeHandler) AllLabels() []Label {
	seen := make(map[string]Label)
	for _, h := range c.handlers {
		for _, l := range h.AllLabels() {
			if _, ok := seen[l.Name]; !ok {
				seen[l.Name] = l
			}
		}
	}
	return sortedLabels(seen)
}

// LabelsFor returns the resolved label names for the issue.
func (c *CompositeHandler) LabelsFor(issue Issue) Set {
	result := make(Set)
	for _, h := range c.handlers {
		result.AddAll(h.LabelsFor(issue))
	}

	for _, s := range c.supersedes {
		if result.Has(s.general) && result.Has(s.specific) {
			result.Remove(s.general)
		}
	}

	for _, r := range c.removals {
		if !result.Has(r.trigger) {
			continue
		}
		var toDelete []string
		for name := range result {
			if r.matches(name) {
				toDelete = append(toDelete, name)
			}
		}
		for _, name := range toDelete {
			result.Remove(name)
		}
	}

	return result
}
