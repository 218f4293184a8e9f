package jira

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// searchResult is the envelope of the Jira search API.
type searchResult struct {
	Issues []Issue `json:"issues"`
}

// LoadIssues reads issues from a JSON file holding either an array of
// issues or a search API response ({"issues": [...]}).
func LoadIssues(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read issues file: %w", err)
	}
	return ParseIssues(data)
}

// ParseIssues decodes issues from JSON data.
func ParseIssues(data []byte) ([]Issue, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("no issues found: empty input")
	}

	var issues []Issue
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &issues); err != nil {
			return nil, fmt.Errorf("failed to parse issues: %w", err)
		}
	} else {
		var result searchResult
		if err := json.Unmarshal(trimmed, &result); err != nil {
			return nil, fmt.Errorf("failed to parse search result: %w", err)
		}
		issues = result.Issues
	}

	for idx, issue := range issues {
		if issue.Key == "" {
			return nil, fmt.Errorf("issue at index %d is missing its key", idx)
		}
	}
	return issues, nil
}
