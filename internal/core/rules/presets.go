// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package rules

import (
	"fmt"
	"sort"
)

// DefaultPreset is the preset used when the configuration names none.
const DefaultPreset = "spr"

// base holds the issue type, resolution, status, version and label rules
// shared by every project, plus the triage predicates and conflict rules.
var base = Table{
	Mappings: []Mapping{
		{Category: "issue_type", Value: "Bug", Label: "bug"},
		{Category: "issue_type", Value: "New Feature", Label: "enhancement"},
		{Category: "issue_type", Value: "Improvement", Label: "enhancement"},
		{Category: "issue_type", Value: "Refactoring", Label: "task"},
		{Category: "issue_type", Value: "Pruning", Label: "task"},
		{Category: "issue_type", Value: "Task", Label: "task"},
		{Category: "issue_type", Value: "Sub-task", Label: "task"},

		// "Complete", "Fixed" and "Done" are implied by a closed issue with a fix version.
		{Category: "resolution", Value: "Deferred", Label: "declined"},
		{Category: "resolution", Value: "Won't Do", Label: "declined"},
		{Category: "resolution", Value: "Won't Fix", Label: "declined"},
		{Category: "resolution", Value: "Works as Designed", Label: "declined"},
		{Category: "resolution", Value: "Duplicate", Label: "duplicate"},
		{Category: "resolution", Value: "Invalid", Label: "invalid"},

		{Category: "status", Value: "Waiting for Feedback", Label: "waiting-for-feedback"},

		{Category: "version", Value: "Waiting for Triage", Label: "waiting-for-triage", Factory: "status"},
		{Category: "version", Value: "Contributions Welcome", Label: "ideal-for-contribution", Factory: "status"},

		{Category: "label", Value: "Regression", Label: "regression", Factory: "type"},
	},
	Predicates: []PredicateRule{
		{Label: "waiting-for-triage", Factory: "status", Builtin: "waiting-for-triage"},
		{Label: "ideal-for-contribution", Factory: "status", Builtin: "ideal-for-contribution"},
		{Label: "blocked", Factory: "status", Builtin: "blocked"},
		{Label: "declined", Factory: "status", Builtin: "not-likely"},
		{Label: "votes-jira", Factory: "has", Builtin: "votes"},
	},
	Supersedes: []Supersede{
		{General: "type: bug", Specific: "type: regression"},
		{General: "type: task", Specific: "type: documentation"},
		{General: "status: waiting-for-triage", Specific: "status: waiting-for-feedback"},
		{General: "type: task", Specific: "type: dependency-upgrade"},
		{General: "type: enhancement", Specific: "type: dependency-upgrade"},
		{General: "type: enhancement", Specific: "type: task"},
	},
	Removals: []Removal{
		// Jira users pick the type when opening a ticket, GitHub triage does not.
		{Trigger: "status: waiting-for-triage", Prefix: "type: "},
		// An invalid issue has no meaningful type.
		{Trigger: "status: invalid", Prefix: "type: "},
		{Trigger: "status: declined", Names: []string{"type: bug"}},
		{Trigger: "status: declined", Names: []string{"type: regression"}},
		{Trigger: "status: duplicate", Names: []string{"type: bug"}},
		{Trigger: "status: duplicate", Names: []string{"type: regression"}},
	},
}

// components holds the component mappings of each project.
var components = map[string][]Mapping{
	"cassandra": {
		{Category: "component", Value: "API", Label: "core"},
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "Cassandra Administration", Label: "core"},
		{Category: "component", Value: "Configuration", Label: "core"},
		{Category: "component", Value: "SessionFactory", Label: "core"},
		{Category: "component", Value: "Template API", Label: "core"},
		{Category: "component", Value: "Kotlin", Label: "kotlin"},
		{Category: "component", Value: "Mapping", Label: "mapping"},
		{Category: "component", Value: "Repository", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"commons": {
		{Category: "component", Value: "API", Label: "core"},
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "Integration", Label: "web"},
		{Category: "component", Value: "Dependencies", Label: "dependency-upgrade", Factory: "type"},
		{Category: "component", Value: "Mapping / Conversion", Label: "mapping"},
		{Category: "component", Value: "Query", Label: "repository"},
		{Category: "component", Value: "Repositories", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"couchbase": {
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "Dependencies", Label: "dependency-upgrade", Factory: "type"},
		{Category: "component", Value: "Mapping metadata", Label: "mapping"},
		{Category: "component", Value: "Repositories", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"elasticsearch": {
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "Dependencies", Label: "dependency-upgrade", Factory: "type"},
		{Category: "component", Value: "Mapping", Label: "mapping"},
		{Category: "component", Value: "Repositories", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"jdbc": {
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "ORCL", Label: "core"},
		{Category: "component", Value: "Dependencies", Label: "dependency-upgrade", Factory: "type"},
		{Category: "component", Value: "Converter", Label: "mapping"},
		{Category: "component", Value: "Mapping", Label: "mapping"},
		{Category: "component", Value: "Relational", Label: "relational"},
		{Category: "component", Value: "R2DBC", Label: "relational"},
		{Category: "component", Value: "Repository", Label: "repository"},
		{Category: "component", Value: "Statement Builder", Label: "statement-builder"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"jpa": {
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "Namespace", Label: "core"},
		{Category: "component", Value: "Specification", Label: "core"},
		{Category: "component", Value: "Query Parser", Label: "query-parser"},
		{Category: "component", Value: "Querydsl", Label: "querydsl"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"keyvalue": {
		{Category: "component", Value: "Configuration", Label: "core"},
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "Map", Label: "map"},
		{Category: "component", Value: "Repositories", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"ldap": {
		{Category: "component", Value: "Repository", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"mongodb": {
		{Category: "component", Value: "Aggregation framework", Label: "aggregation-framework"},
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "GridFS", Label: "gridfs"},
		{Category: "component", Value: "Kotlin", Label: "kotlin"},
		{Category: "component", Value: "Mapping / Conversion", Label: "mapping"},
		{Category: "component", Value: "Repository", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"neo4j": {
		{Category: "component", Value: "CORE", Label: "core"},
		{Category: "component", Value: "EXAMPLES", Label: "core"},
		{Category: "component", Value: "DOC", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"redis": {
		{Category: "component", Value: "Cache", Label: "cache"},
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "Jedis Driver", Label: "jedis"},
		{Category: "component", Value: "Lettuce Driver", Label: "lettuce"},
		{Category: "component", Value: "Kotlin", Label: "kotlin"},
		{Category: "component", Value: "Repository Support", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"rest": {
		{Category: "component", Value: "API Documentation", Label: "api-documentation"},
		{Category: "component", Value: "Content negotiation", Label: "content-negotiation"},
		{Category: "component", Value: "Repositories", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
	"solr": {
		{Category: "component", Value: "Core", Label: "core"},
		{Category: "component", Value: "Namespace", Label: "core"},
		{Category: "component", Value: "Repository", Label: "repository"},
		{Category: "component", Value: "Documentation", Label: "documentation", Factory: "type"},
		{Category: "component", Value: "Infrastructure", Label: "task", Factory: "type"},
	},
}

// presetComponents maps preset names to component tables. The SPR
// migration reuses the Redis component table.
var presetComponents = map[string]string{
	"spr": "redis",
}

// PresetNames returns the names of all built-in presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(components)+len(presetComponents))
	for name := range components {
		names = append(names, name)
	}
	for name := range presetComponents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the rules of a built-in preset: the shared base rules plus
// the project's component mappings. The name "none" returns an empty table.
func Preset(name string) (Table, error) {
	if name == "none" {
		return Table{}, nil
	}
	key := name
	if alias, ok := presetComponents[name]; ok {
		key = alias
	}
	comps, ok := components[key]
	if !ok {
		return Table{}, fmt.Errorf("unknown preset %q", name)
	}
	return Merge(base, Table{Mappings: append([]Mapping(nil), comps...)}), nil
}
