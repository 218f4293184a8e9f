// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package labels

import (
	"fmt"
	"sort"
	"strings"
)

// Category identifies which issue field a mapping reads.
type Category string

const (
	CategoryIssueType  Category = "issue_type"
	CategoryResolution Category = "resolution"
	CategoryStatus     Category = "status"
	CategoryVersion    Category = "version"
	CategoryLabel      Category = "label"
	CategoryComponent  Category = "component"
)

// Categories lists every category in evaluation order.
var Categories = []Category{
	CategoryIssueType,
	CategoryResolution,
	CategoryStatus,
	CategoryVersion,
	CategoryLabel,
	CategoryComponent,
}

// ParseCategory parses a category name. Dashes and case are ignored, so
// "Issue-Type" and "issue_type" are equivalent.
func ParseCategory(s string) (Category, error) {
	norm := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, c := range Categories {
		if c == norm {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown field category %q", s)
}

// DefaultFactory returns the factory used when a mapping does not name one.
func (c Category) DefaultFactory() Factory {
	switch c {
	case CategoryResolution, CategoryStatus, CategoryVersion:
		return Status
	case CategoryComponent:
		return In
	default:
		return Type
	}
}

// values extracts the raw values of the category from the issue.
func (c Category) values(issue Issue) []string {
	switch c {
	case CategoryIssueType:
		return single(issue.IssueType())
	case CategoryResolution:
		return single(issue.Resolution())
	case CategoryStatus:
		return single(issue.Status())
	case CategoryVersion:
		return single(issue.FixVersion())
	case CategoryLabel:
		return issue.Labels()
	case CategoryComponent:
		return issue.Components()
	}
	return nil
}

func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// FieldMapper maps field values of an issue to labels.
type FieldMapper struct {
	mappings map[Category]map[string]Label
}

// NewFieldMapper creates an empty field mapper.
func NewFieldMapper() *FieldMapper {
	return &FieldMapper{mappings: make(map[Category]map[string]Label)}
}

// AddMapping maps a field value to a label created with the category's default factory.
func (m *FieldMapper) AddMapping(category Category, value, labelName string) {
	m.AddMappingWith(category, value, labelName, category.DefaultFactory())
}

// AddMappingWith maps a field value to a label created with the given factory.
// A later mapping for the same category and value replaces the earlier one.
func (m *FieldMapper) AddMappingWith(category Category, value, labelName string, factory Factory) {
	byValue, ok := m.mappings[category]
	if !ok {
		byValue = make(map[string]Label)
		m.mappings[category] = byValue
	}
	byValue[value] = factory.Apply(labelName)
}

// Len returns the number of registered mappings.
func (m *FieldMapper) Len() int {
	n := 0
	for _, byValue := range m.mappings {
		n += len(byValue)
	}
	return n
}

// AllLabels returns every label a mapping can produce, deduplicated by name
// and sorted by name.
func (m *FieldMapper) AllLabels() []Label {
	seen := make(map[string]Label)
	for _, c := range Categories {
		byValue := m.mappings[c]
		values := make([]string, 0, len(byValue))
		for v := range byValue {
			values = append(values, v)
		}
		sort.Strings(values)
		for _, v := range values {
			l := byValue[v]
			if _, ok := seen[l.Name]; !ok {
				seen[l.Name] = l
			}
		}
	}
	return sortedLabels(seen)
}

// LabelsFor returns the names of labels whose mapping matches a field value of the issue.
func (m *FieldMapper) LabelsFor(issue Issue) Set {
	result := make(Set)
	for category, byValue := range m.mappings {
		for _, v := range category.values(issue) {
			if l, ok := byValue[v]; ok {
				result.Add(l.Name)
			}
		}
	}
	return result
}

func sortedLabels(byName map[string]Label) []Label {
	out := make([]Label, 0, len(byName))
	for _, l := range byName {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
