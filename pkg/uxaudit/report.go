package uxaudit

import (
	"io"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Finding is a single observation from a UX audit.
type Finding struct {
	Severity       string `yaml:"severity" json:"severity"`
	Heuristic      string `yaml:"heuristic" json:"heuristic"`
	Location       string `yaml:"location" json:"location"`
	Description    string `yaml:"description" json:"description"`
	Recommendation string `yaml:"recommendation" json:"recommendation"`
}

// Audit is the parsed findings file a report is rendered from.
type Audit struct {
	Title    string    `yaml:"title" json:"title"`
	Project  string    `yaml:"project" json:"project"`
	Auditor  string    `yaml:"auditor" json:"auditor"`
	Date     string    `yaml:"date" json:"date"`
	Findings []Finding `yaml:"findings" json:"findings"`
}

var severityRank = map[string]int{
	"critical": 0,
	"major":    1,
	"minor":    2,
	"info":     3,
}

// LoadFindings parses a YAML findings file and validates severities.
func LoadFindings(r io.Reader) (*Audit, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading findings")
	}

	var audit Audit
	if err := yaml.Unmarshal(content, &audit); err != nil {
		return nil, errors.Wrap(err, "parsing findings YAML")
	}

	if audit.Title == "" {
		audit.Title = "UX Audit"
	}
	if audit.Date == "" {
		audit.Date = time.Now().Format("2006-01-02")
	}
	if len(audit.Findings) == 0 {
		return nil, errors.New("findings file contains no findings")
	}

	for i := range audit.Findings {
		f := &audit.Findings[i]
		f.Severity = strings.ToLower(f.Severity)
		if _, ok := severityRank[f.Severity]; !ok {
			return nil, errors.Errorf("finding %d: unknown severity %q (want critical, major, minor, or info)", i+1, f.Severity)
		}
		if f.Description == "" {
			return nil, errors.Errorf("finding %d: description is required", i+1)
		}
	}

	return &audit, nil
}

// SeverityCounts tallies findings by severity.
func (a *Audit) SeverityCounts() map[string]int {
	counts := make(map[string]int)
	for _, f := range a.Findings {
		counts[f.Severity]++
	}
	return counts
}

// SortedFindings returns findings ordered critical-first, stable within a
// severity.
func (a *Audit) SortedFindings() []Finding {
	sorted := make([]Finding, len(a.Findings))
	copy(sorted, a.Findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return severityRank[sorted[i].Severity] < severityRank[sorted[j].Severity]
	})
	return sorted
}

const reportTemplate = `# {{ .Title }}

{{ if .Project }}**Project:** {{ .Project }}{{ end }}
{{ if .Auditor }}**Auditor:** {{ .Auditor }}{{ end }}
**Date:** {{ .Date }}

## Summary

| Severity | Count |
|----------|-------|
{{- $counts := .SeverityCounts }}
{{- range $sev := severities }}
{{- if index $counts $sev }}
| {{ title $sev }} | {{ index $counts $sev }} |
{{- end }}
{{- end }}

## Findings
{{ range $i, $f := .SortedFindings }}
### {{ inc $i }}. [{{ upper $f.Severity }}] {{ or $f.Heuristic "General" }}

{{ if $f.Location }}**Location:** {{ $f.Location }}{{ end }}

{{ $f.Description }}
{{ if $f.Recommendation }}
**Recommendation:** {{ $f.Recommendation }}
{{ end }}
{{- end }}
`

// RenderReport renders the audit as a markdown report.
func RenderReport(a *Audit) (string, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"inc":   func(i int) int { return i + 1 },
		"upper": strings.ToUpper,
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"severities": func() []string {
			return []string{"critical", "major", "minor", "info"}
		},
	}).Parse(reportTemplate)
	if err != nil {
		return "", errors.Wrap(err, "parsing report template")
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, a); err != nil {
		return "", errors.Wrap(err, "rendering report")
	}
	return sb.String(), nil
}
