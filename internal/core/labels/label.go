// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package labels provides the label resolution engine that turns a Jira issue
// snapshot into the set of GitHub labels to apply.
package labels

import (
	"fmt"
	"strings"
)

// Label is a named, colored GitHub label.
type Label struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// String returns the label name.
func (l Label) String() string {
	return l.Name
}

// Create builds a label from a category prefix, a raw name and a color.
func Create(prefix, name, color string) Label {
	return Label{Name: prefix + name, Color: color}
}

// Factory creates labels of one category (e.g. "type: ...").
type Factory struct {
	Prefix string
	Color  string
}

// Apply creates a label with the factory's prefix and color.
func (f Factory) Apply(name string) Label {
	return Create(f.Prefix, name, f.Color)
}

// Name returns the factory name used in configuration files ("type" for "type: ").
func (f Factory) Name() string {
	return strings.TrimSuffix(f.Prefix, ": ")
}

// Label factories.
var (
	Type   = Factory{Prefix: "type: ", Color: "e3d9fc"}
	Status = Factory{Prefix: "status: ", Color: "fef2c0"}
	In     = Factory{Prefix: "in: ", Color: "e8f9de"}
	Has    = Factory{Prefix: "has: ", Color: "dfdfdf"}
)

var factories = map[string]Factory{
	"type":   Type,
	"status": Status,
	"in":     In,
	"has":    Has,
}

// FactoryByName looks up a factory by its configuration name.
func FactoryByName(name string) (Factory, error) {
	f, ok := factories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Factory{}, fmt.Errorf("unknown label factory %q (expected type, status, in or has)", name)
	}
	return f, nil
}
