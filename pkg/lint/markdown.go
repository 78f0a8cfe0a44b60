package lint

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceRe     = regexp.MustCompile("^(```+|~~~+)")
	headingRe   = regexp.MustCompile(`^(#+)(.*)$`)
	tableSepRe  = regexp.MustCompile(`^\s*\|?[\s:|-]+\|?\s*$`)
	tableCellRe = regexp.MustCompile(`\|`)
)

// CheckMarkdown scans markdown lines for unclosed code fences, malformed
// headings, and ragged tables. Issues are independent; a broken table does
// not suppress heading checks.
func CheckMarkdown(lines []string) []Issue {
	var issues []Issue

	issues = append(issues, checkFences(lines)...)
	issues = append(issues, checkHeadings(lines)...)
	issues = append(issues, checkTables(lines)...)

	return sortIssues(issues)
}

func checkFences(lines []string) []Issue {
	var issues []Issue
	openLine := 0
	openMarker := ""

	for i, line := range lines {
		m := fenceRe.FindString(strings.TrimLeft(line, " "))
		if m == "" {
			continue
		}
		marker := m[:1]

		if openMarker == "" {
			openMarker = marker
			openLine = i + 1
		} else if marker == openMarker {
			openMarker = ""
		}
		// A fence of the other marker type inside an open block is content.
	}

	if openMarker != "" {
		issues = append(issues, Issue{
			Line:     openLine,
			Severity: SeverityError,
			Code:     "fence-unclosed",
			Message:  "code fence is never closed",
		})
	}
	return issues
}

func checkHeadings(lines []string) []Issue {
	var issues []Issue
	inFence := fenceTracker(lines)

	for i, line := range lines {
		if inFence(i) || !strings.HasPrefix(line, "#") {
			continue
		}
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		hashes, rest := m[1], m[2]

		if len(hashes) > 6 {
			issues = append(issues, Issue{
				Line:     i + 1,
				Column:   1,
				Severity: SeverityError,
				Code:     "heading-depth",
				Message:  fmt.Sprintf("heading level %d exceeds maximum of 6", len(hashes)),
			})
			continue
		}
		if rest != "" && !strings.HasPrefix(rest, " ") {
			issues = append(issues, Issue{
				Line:     i + 1,
				Column:   len(hashes) + 1,
				Severity: SeverityError,
				Code:     "heading-space",
				Message:  "heading is missing a space after '#'",
			})
		}
		if strings.TrimSpace(rest) == "" {
			issues = append(issues, Issue{
				Line:     i + 1,
				Column:   1,
				Severity: SeverityWarning,
				Code:     "heading-empty",
				Message:  "heading has no text",
			})
		}
	}
	return issues
}

func checkTables(lines []string) []Issue {
	var issues []Issue
	inFence := fenceTracker(lines)

	for i := 0; i < len(lines); i++ {
		if inFence(i) || !isTableRow(lines[i]) {
			continue
		}
		// A table block needs a separator row directly under the header.
		if i+1 >= len(lines) || !isTableRow(lines[i+1]) || !tableSepRe.MatchString(lines[i+1]) {
			continue
		}

		want := countCells(lines[i])
		if sep := countCells(lines[i+1]); sep != want {
			issues = append(issues, Issue{
				Line:     i + 2,
				Severity: SeverityError,
				Code:     "table-ragged",
				Message:  fmt.Sprintf("separator has %d columns, header has %d", sep, want),
			})
		}

		j := i + 2
		for ; j < len(lines) && isTableRow(lines[j]) && !inFence(j); j++ {
			if got := countCells(lines[j]); got != want {
				issues = append(issues, Issue{
					Line:     j + 1,
					Severity: SeverityError,
					Code:     "table-ragged",
					Message:  fmt.Sprintf("row has %d columns, header has %d", got, want),
				})
			}
		}
		i = j - 1
	}
	return issues
}

// fenceTracker returns a lookup reporting whether a line index sits inside
// a fenced code block, so heading and table checks skip code samples.
func fenceTracker(lines []string) func(int) bool {
	inside := make([]bool, len(lines))
	openMarker := ""

	for i, line := range lines {
		m := fenceRe.FindString(strings.TrimLeft(line, " "))
		switch {
		case m != "" && openMarker == "":
			openMarker = m[:1]
			inside[i] = true
		case m != "" && m[:1] == openMarker:
			openMarker = ""
			inside[i] = true
		default:
			inside[i] = openMarker != ""
		}
	}
	return func(i int) bool { return inside[i] }
}

func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.Contains(trimmed, "|") && trimmed != ""
}

// countCells counts the columns of a table row, ignoring leading and
// trailing pipes.
func countCells(line string) int {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	return len(tableCellRe.Split(trimmed, -1))
}
