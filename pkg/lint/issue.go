// Package lint implements the markdown and TOON document validators. Each
// check is a stateless single pass over lines producing a flat list of
// issues; checks do not interact and carry no state between files.
package lint

import (
	"fmt"
	"sort"
)

// Severity classifies an issue. Only error-severity issues affect the
// process exit code.
type Severity string

const (
	// SeverityError marks issues that fail validation
	SeverityError Severity = "error"
	// SeverityWarning marks advisory issues
	SeverityWarning Severity = "warning"
)

// Issue is a single finding at a position in the scanned document.
// Column is 1-based and 0 when the issue applies to the whole line.
type Issue struct {
	Line     int      `json:"line"`
	Column   int      `json:"column,omitempty"`
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	if i.Column > 0 {
		return fmt.Sprintf("%d:%d %s %s: %s", i.Line, i.Column, i.Severity, i.Code, i.Message)
	}
	return fmt.Sprintf("%d %s %s: %s", i.Line, i.Severity, i.Code, i.Message)
}

// Result holds the issues found in a single input.
type Result struct {
	File   string  `json:"file"`
	Issues []Issue `json:"issues"`
}

// HasErrors reports whether any issue is error severity.
func (r Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// AnyErrors reports whether any result carries an error-severity issue.
func AnyErrors(results []Result) bool {
	for _, r := range results {
		if r.HasErrors() {
			return true
		}
	}
	return false
}

func sortIssues(issues []Issue) []Issue {
	sort.SliceStable(issues, func(a, b int) bool {
		if issues[a].Line != issues[b].Line {
			return issues[a].Line < issues[b].Line
		}
		return issues[a].Column < issues[b].Column
	})
	return issues
}
