// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package rules holds the declarative label rule tables and builds the label
// resolution engine from them.
package rules

import (
	"errors"
	"fmt"

	"github.com/similigh/jira-migrator/internal/core/labels"
)

var (
	// ErrDuplicateMapping reports two mappings for the same field value.
	ErrDuplicateMapping = errors.New("duplicate field mapping")

	// ErrUnknownCategory reports a mapping on an unknown field category.
	ErrUnknownCategory = errors.New("unknown field category")

	// ErrUnknownFactory reports a rule naming an unknown label factory.
	ErrUnknownFactory = errors.New("unknown label factory")

	// ErrInvalidRule reports an incomplete or contradictory rule.
	ErrInvalidRule = errors.New("invalid rule")
)

// Mapping maps one raw field value to a label.
type Mapping struct {
	Category string `yaml:"category" toml:"category" json:"category"`
	Value    string `yaml:"value" toml:"value" json:"value"`
	Label    string `yaml:"label" toml:"label" json:"label"`

	// Factory is one of type, status, in or has. Empty uses the category default.
	Factory string `yaml:"factory,omitempty" toml:"factory,omitempty" json:"factory,omitempty"`
}

// PredicateRule applies a label when an issue condition holds.
// Exactly one of Builtin and When must be set.
type PredicateRule struct {
	Label   string `yaml:"label" toml:"label" json:"label"`
	Factory string `yaml:"factory" toml:"factory" json:"factory"`

	// Builtin names a predicate from the built-in library (see Builtins).
	Builtin string `yaml:"builtin,omitempty" toml:"builtin,omitempty" json:"builtin,omitempty"`

	// When is an expression over the issue fields, e.g. `Votes >= 10`.
	When string `yaml:"when,omitempty" toml:"when,omitempty" json:"when,omitempty"`
}

// Supersede drops General when Specific is also present.
type Supersede struct {
	General  string `yaml:"general" toml:"general" json:"general"`
	Specific string `yaml:"specific" toml:"specific" json:"specific"`
}

// Removal drops labels when Trigger is present. A label is dropped when it
// starts with Prefix, is listed in Names, or satisfies the Match expression.
type Removal struct {
	Trigger string   `yaml:"trigger" toml:"trigger" json:"trigger"`
	Prefix  string   `yaml:"prefix,omitempty" toml:"prefix,omitempty" json:"prefix,omitempty"`
	Names   []string `yaml:"names,omitempty" toml:"names,omitempty" json:"names,omitempty"`
	Match   string   `yaml:"match,omitempty" toml:"match,omitempty" json:"match,omitempty"`
}

// Table is a complete label rule configuration.
type Table struct {
	Mappings   []Mapping       `yaml:"mappings,omitempty" toml:"mappings,omitempty" json:"mappings,omitempty"`
	Predicates []PredicateRule `yaml:"predicates,omitempty" toml:"predicates,omitempty" json:"predicates,omitempty"`
	Supersedes []Supersede     `yaml:"supersedes,omitempty" toml:"supersedes,omitempty" json:"supersedes,omitempty"`
	Removals   []Removal       `yaml:"removals,omitempty" toml:"removals,omitempty" json:"removals,omitempty"`
}

type mappingKey struct {
	category labels.Category
	value    string
}

// Validate checks the table for rules that would be ignored or silently
// replaced when the engine is built.
func (t *Table) Validate() error {
	seen := make(map[mappingKey]int, len(t.Mappings))
	for i, m := range t.Mappings {
		category, err := labels.ParseCategory(m.Category)
		if err != nil {
			return fmt.Errorf("mapping %d: %w: %q", i, ErrUnknownCategory, m.Category)
		}
		if m.Value == "" || m.Label == "" {
			return fmt.Errorf("mapping %d: %w: value and label are required", i, ErrInvalidRule)
		}
		if m.Factory != "" {
			if _, err := labels.FactoryByName(m.Factory); err != nil {
				return fmt.Errorf("mapping %d: %w: %q", i, ErrUnknownFactory, m.Factory)
			}
		}
		key := mappingKey{category: category, value: m.Value}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("mapping %d: %w: %s %q already mapped by mapping %d",
				i, ErrDuplicateMapping, category, m.Value, prev)
		}
		seen[key] = i
	}

	for i, p := range t.Predicates {
		if p.Label == "" {
			return fmt.Errorf("predicate %d: %w: label is required", i, ErrInvalidRule)
		}
		if _, err := labels.FactoryByName(p.Factory); err != nil {
			return fmt.Errorf("predicate %d: %w: %q", i, ErrUnknownFactory, p.Factory)
		}
		if (p.Builtin == "") == (p.When == "") {
			return fmt.Errorf("predicate %d (%s): %w: exactly one of builtin and when is required",
				i, p.Label, ErrInvalidRule)
		}
		if p.Builtin != "" {
			if _, ok := Builtins[p.Builtin]; !ok {
				return fmt.Errorf("predicate %d (%s): %w: unknown builtin %q", i, p.Label, ErrInvalidRule, p.Builtin)
			}
		}
	}

	pairs := make(map[Supersede]bool, len(t.Supersedes))
	for i, s := range t.Supersedes {
		if s.General == "" || s.Specific == "" {
			return fmt.Errorf("supersede %d: %w: general and specific are required", i, ErrInvalidRule)
		}
		if s.General == s.Specific {
			return fmt.Errorf("supersede %d: %w: %q cannot supersede itself", i, ErrInvalidRule, s.General)
		}
		if pairs[s] {
			return fmt.Errorf("supersede %d: %w: duplicate pair (%s, %s)", i, ErrInvalidRule, s.General, s.Specific)
		}
		pairs[s] = true
	}

	for i, r := range t.Removals {
		if r.Trigger == "" {
			return fmt.Errorf("removal %d: %w: trigger is required", i, ErrInvalidRule)
		}
		if r.Prefix == "" && len(r.Names) == 0 && r.Match == "" {
			return fmt.Errorf("removal %d (%s): %w: one of prefix, names or match is required",
				i, r.Trigger, ErrInvalidRule)
		}
	}

	return nil
}

// Merge returns base extended with overlay. Overlay mappings replace base
// mappings for the same field value; all other rules are appended.
func Merge(base, overlay Table) Table {
	overridden := make(map[mappingKey]bool, len(overlay.Mappings))
	for _, m := range overlay.Mappings {
		overridden[keyOf(m)] = true
	}

	var result Table
	for _, m := range base.Mappings {
		if !overridden[keyOf(m)] {
			result.Mappings = append(result.Mappings, m)
		}
	}
	result.Mappings = append(result.Mappings, overlay.Mappings...)
	result.Predicates = append(append(result.Predicates, base.Predicates...), overlay.Predicates...)
	result.Supersedes = appendSupersedes(append([]Supersede(nil), base.Supersedes...), overlay.Supersedes)
	result.Removals = append(append(result.Removals, base.Removals...), overlay.Removals...)
	return result
}

func appendSupersedes(dst, src []Supersede) []Supersede {
	for _, s := range src {
		dup := false
		for _, d := range dst {
			if d == s {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, s)
		}
	}
	return dst
}

func keyOf(m Mapping) mappingKey {
	category, err := labels.ParseCategory(m.Category)
	if err != nil {
		category = labels.Category(m.Category)
	}
	return mappingKey{category: category, value: m.Value}
}
