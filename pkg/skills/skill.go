// Package skills enumerates the capabilities this toolbox exposes to an AI
// assistant. Every subcommand is a builtin skill; additional skills are
// packaged as directories containing a SKILL.md file with YAML frontmatter
// (name, description) and a markdown instruction body.
package skills

// Skill describes one capability: a builtin subcommand or a discovered
// SKILL.md package.
type Skill struct {
	Name        string // unique name
	Description string // one-line summary for assistant decision-making
	Command     string // invocation hint, e.g. "skillkit validate md"
	Directory   string // skill directory; empty for builtins
	Content     string // SKILL.md body without frontmatter; empty for builtins
}

// Builtin reports whether the skill is compiled into the binary.
func (s Skill) Builtin() bool {
	return s.Directory == ""
}

// Metadata mirrors the YAML frontmatter of a SKILL.md file.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Builtins lists the skills shipped with the binary, one per subcommand.
func Builtins() []Skill {
	return []Skill{
		{
			Name:        "markdown-validator",
			Description: "Check markdown documents for unclosed fences, malformed headings, and ragged tables",
			Command:     "skillkit validate md",
		},
		{
			Name:        "toon-validator",
			Description: "Check TOON documents for indentation, quoting, and declared-count mismatches",
			Command:     "skillkit validate toon",
		},
		{
			Name:        "toon-converter",
			Description: "Convert JSON to the token-efficient TOON format and back",
			Command:     "skillkit toon",
		},
		{
			Name:        "project-scaffolder",
			Description: "Generate FastAPI or Next.js project skeletons",
			Command:     "skillkit scaffold",
		},
		{
			Name:        "docs-scaffolder",
			Description: "Generate README, architecture, API, contributing, and changelog templates",
			Command:     "skillkit docs init",
		},
		{
			Name:        "prompt-compressor",
			Description: "Rewrite prompt text to spend fewer tokens and report the savings",
			Command:     "skillkit compress prompt",
		},
		{
			Name:        "uxaudit-reporter",
			Description: "Render a markdown UX-audit report from a YAML findings file",
			Command:     "skillkit uxaudit report",
		},
		{
			Name:        "contrast-checker",
			Description: "Compute WCAG contrast ratios and AA/AAA verdicts for color pairs",
			Command:     "skillkit uxaudit contrast",
		},
		{
			Name:        "pep8-checker",
			Description: "Run pycodestyle or flake8 over Python sources, propagating its exit code",
			Command:     "skillkit pep8",
		},
		{
			Name:        "migration-helper",
			Description: "Run alembic from the directory holding alembic.ini, propagating its exit code",
			Command:     "skillkit migrate",
		},
	}
}
