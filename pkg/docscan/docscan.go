// Package docscan maps a project's documentation to topics. It checks the
// well-known files and directories where projects keep each kind of doc
// (overview, architecture, ADRs, API references and so on) and reports which
// recommended topics are missing.
package docscan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// topicPatterns lists, per topic, the specific files and the directories
// conventionally holding that topic's documentation. Paths use forward
// slashes relative to the project root.
var topicPatterns = map[string]struct {
	paths []string
	dirs  []string
}{
	"overview": {
		paths: []string{"README.md", "readme.md", "README.rst", "docs/README.md", "docs/readme.md"},
	},
	"architecture": {
		paths: []string{"ARCHITECTURE.md", "architecture.md", "docs/architecture.md", "docs/ARCHITECTURE.md"},
		dirs:  []string{"docs/architecture", "docs/design", "architecture"},
	},
	"adr": {
		dirs: []string{"docs/adr", "docs/decisions", "architecture/decisions", "adr"},
	},
	"features": {
		dirs: []string{"docs/features", "docs/specs", "docs/specifications", "specs"},
	},
	"api": {
		paths: []string{"openapi.yaml", "openapi.json", "swagger.yaml", "swagger.json"},
		dirs:  []string{"docs/api", "api-docs", "docs/endpoints"},
	},
	"setup": {
		paths: []string{"INSTALL.md", "SETUP.md", "docs/setup.md", "docs/installation.md"},
		dirs:  []string{"docs/guides", "docs/getting-started"},
	},
	"database": {
		paths: []string{"prisma/schema.prisma", "schema.sql"},
		dirs:  []string{"docs/database", "docs/schema", "docs/models"},
	},
	"types": {
		paths: []string{"docs/types.md", "docs/models.md"},
		dirs:  []string{"docs/types", "docs/models", "src/types", "src/models"},
	},
	"style": {
		paths: []string{
			"docs/style-guide.md", "docs/conventions.md", "STYLE.md",
			".eslintrc", ".eslintrc.js", ".eslintrc.json",
			".prettierrc", ".prettierrc.js", ".prettierrc.json",
			"pyproject.toml", ".flake8", "setup.cfg",
		},
		dirs: []string{"docs/style"},
	},
	"config": {
		paths: []string{".env.example", "docs/environment.md", "docs/config.md"},
		dirs:  []string{"docs/config", "docs/environment"},
	},
	"testing": {
		paths: []string{"tests/README.md", "docs/testing.md"},
		dirs:  []string{"docs/testing", "docs/tests"},
	},
	"deployment": {
		paths: []string{"docs/deployment.md", "DEPLOY.md"},
		dirs:  []string{"docs/deployment", "docs/infrastructure", "docs/ops", "deploy"},
	},
	"contributing": {
		paths: []string{"CONTRIBUTING.md", "contributing.md", ".github/CONTRIBUTING.md"},
	},
	"changelog": {
		paths: []string{"CHANGELOG.md", "changelog.md", "HISTORY.md", "NEWS.md"},
	},
}

// docRoots in preference order.
var docRoots = []string{"docs", "doc", "documentation", ".github/docs"}

// recommendedTopics should exist in any maintained project.
var recommendedTopics = []string{"overview", "architecture", "contributing"}

// Report is the result of scanning one project. Paths are forward-slash
// relative to the scanned directory; directories carry a trailing slash.
type Report struct {
	DocRoot            string              `json:"doc_root,omitempty"`
	HasDocs            bool                `json:"has_docs"`
	Topics             map[string][]string `json:"topics"`
	AllDocs            []string            `json:"all_docs"`
	MissingRecommended []string            `json:"missing_recommended"`
}

// Scan inspects the project directory and maps its documentation to topics.
func Scan(dir string) (*Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", dir)
	}

	report := &Report{
		Topics:             map[string][]string{},
		AllDocs:            []string{},
		MissingRecommended: []string{},
	}

	for _, root := range docRoots {
		if isDir(filepath.Join(dir, filepath.FromSlash(root))) {
			report.DocRoot = root
			report.HasDocs = true
			break
		}
	}

	for topic, pattern := range topicPatterns {
		var found []string
		for _, p := range pattern.paths {
			if pathExists(filepath.Join(dir, filepath.FromSlash(p))) {
				found = append(found, p)
			}
		}
		for _, d := range pattern.dirs {
			if !isDir(filepath.Join(dir, filepath.FromSlash(d))) {
				continue
			}
			found = append(found, d+"/")
			for _, f := range docFiles(filepath.Join(dir, filepath.FromSlash(d)), 2) {
				found = append(found, d+"/"+f)
			}
		}
		if len(found) > 0 {
			report.Topics[topic] = found
			report.HasDocs = true
		}
	}

	if report.DocRoot != "" {
		for _, f := range docFiles(filepath.Join(dir, filepath.FromSlash(report.DocRoot)), 3) {
			report.AllDocs = append(report.AllDocs, report.DocRoot+"/"+f)
		}
	}

	// Standalone markdown at the project root counts too.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		report.AllDocs = append(report.AllDocs, entry.Name())
	}
	sort.Strings(report.AllDocs)

	for _, topic := range recommendedTopics {
		if _, ok := report.Topics[topic]; !ok {
			report.MissingRecommended = append(report.MissingRecommended, topic)
		}
	}

	return report, nil
}

// docFiles globs documentation files under dir, skipping hidden path
// components and anything nested deeper than maxDepth directory levels.
// Results are sorted forward-slash paths relative to dir.
func docFiles(dir string, maxDepth int) []string {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.{md,rst,txt}")
	if err != nil {
		return nil
	}

	var out []string
	for _, m := range matches {
		if strings.Count(m, "/") > maxDepth || hiddenPath(m) {
			continue
		}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func hiddenPath(p string) bool {
	for _, part := range strings.Split(p, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
