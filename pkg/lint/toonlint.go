package lint

import (
	"fmt"
	"regexp"
	"strings"
)

// Header shapes of the TOON grammar. Keys are either bare (no ':' '[' or
// leading quote) or double-quoted.
var (
	toonKey       = `(?:"(?:[^"\\]|\\.)*"|[^\s\[:"][^\[:]*)`
	toonTabularRe = regexp.MustCompile(`^(` + toonKey + `)?\[(\d+)\]\{([^}]*)\}:\s*$`)
	toonArrayRe   = regexp.MustCompile(`^(` + toonKey + `)?\[(\d+)\]:\s*(.*)$`)
	toonListRe    = regexp.MustCompile(`^- |^-$`)
)

// CheckTOON scans TOON lines for bad indentation, unbalanced quotes, and
// declared-vs-actual count mismatches in array headers. It validates shape
// only; use the toon package to actually decode the document.
func CheckTOON(lines []string) []Issue {
	var issues []Issue

	issues = append(issues, checkTOONIndent(lines)...)
	issues = append(issues, checkTOONQuotes(lines)...)
	issues = append(issues, checkTOONArrays(lines)...)

	return sortIssues(issues)
}

func checkTOONIndent(lines []string) []Issue {
	var issues []Issue
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		trimmed := strings.TrimLeft(l, " ")
		if strings.HasPrefix(trimmed, "\t") {
			issues = append(issues, Issue{
				Line:     i + 1,
				Column:   len(l) - len(trimmed) + 1,
				Severity: SeverityError,
				Code:     "indent-tab",
				Message:  "tab used for indentation, expected spaces",
			})
			continue
		}
		if indent := len(l) - len(trimmed); indent%2 != 0 {
			issues = append(issues, Issue{
				Line:     i + 1,
				Column:   indent + 1,
				Severity: SeverityError,
				Code:     "indent-odd",
				Message:  fmt.Sprintf("indentation of %d spaces is not a multiple of two", indent),
			})
		}
	}
	return issues
}

func checkTOONQuotes(lines []string) []Issue {
	var issues []Issue
	for i, l := range lines {
		quotes := 0
		for j := 0; j < len(l); j++ {
			switch l[j] {
			case '\\':
				j++
			case '"':
				quotes++
			}
		}
		if quotes%2 != 0 {
			issues = append(issues, Issue{
				Line:     i + 1,
				Severity: SeverityError,
				Code:     "quote-unbalanced",
				Message:  "unbalanced double quote",
			})
		}
	}
	return issues
}

func checkTOONArrays(lines []string) []Issue {
	var issues []Issue

	for i, l := range lines {
		indent := lineIndent(l)
		text := strings.TrimLeft(l, " ")

		if m := toonTabularRe.FindStringSubmatch(text); m != nil {
			declared := atoiSafe(m[2])
			fields := len(splitCells(m[3]))

			var rows []int
			for _, c := range collectChildren(lines, i, indent) {
				if lineIndent(lines[c]) == indent+2 {
					rows = append(rows, c)
				}
			}

			if len(rows) != declared {
				issues = append(issues, Issue{
					Line:     i + 1,
					Severity: SeverityError,
					Code:     "array-count",
					Message:  fmt.Sprintf("array declares %d rows but has %d", declared, len(rows)),
				})
			}
			for _, r := range rows {
				if got := len(splitCells(strings.TrimLeft(lines[r], " "))); got != fields {
					issues = append(issues, Issue{
						Line:     r + 1,
						Severity: SeverityError,
						Code:     "row-width",
						Message:  fmt.Sprintf("row has %d cells but %d fields declared", got, fields),
					})
				}
			}
			continue
		}

		if m := toonArrayRe.FindStringSubmatch(text); m != nil {
			declared := atoiSafe(m[2])
			rest := strings.TrimSpace(m[3])

			if rest != "" {
				if got := len(splitCells(rest)); got != declared {
					issues = append(issues, Issue{
						Line:     i + 1,
						Severity: SeverityError,
						Code:     "array-count",
						Message:  fmt.Sprintf("array declares %d values but has %d", declared, got),
					})
				}
				continue
			}

			items := 0
			for _, c := range collectChildren(lines, i, indent) {
				childText := strings.TrimLeft(lines[c], " ")
				if lineIndent(lines[c]) == indent+2 && toonListRe.MatchString(childText) {
					items++
				}
			}
			if declared > 0 && items != declared {
				issues = append(issues, Issue{
					Line:     i + 1,
					Severity: SeverityError,
					Code:     "array-count",
					Message:  fmt.Sprintf("array declares %d items but has %d", declared, items),
				})
			}
		}
	}
	return issues
}

// collectChildren returns the indexes of the lines more indented than the
// header at index i, stopping at the first line back at or above its level.
func collectChildren(lines []string, i, indent int) []int {
	var children []int
	for j := i + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "" {
			continue
		}
		if lineIndent(lines[j]) <= indent {
			break
		}
		children = append(children, j)
	}
	return children
}

func lineIndent(l string) int {
	return len(l) - len(strings.TrimLeft(l, " "))
}

// splitCells splits a comma-separated list, honoring double quotes.
func splitCells(s string) []string {
	var cells []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(s):
			cur.WriteByte(c)
			i++
			cur.WriteByte(s[i])
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ',' && !inQuote:
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	cells = append(cells, cur.String())
	return cells
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
