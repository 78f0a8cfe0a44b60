// Package compress rewrites prompt text to spend fewer tokens while keeping
// its meaning, using purely lexical transformations. Token counts are
// estimated with the common four-characters-per-token heuristic; no
// tokenizer is consulted.
package compress

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Level selects how aggressively text is rewritten.
type Level int

const (
	// LevelLight trims trailing whitespace, collapses space runs, and
	// squeezes blank-line runs
	LevelLight Level = iota
	// LevelMedium additionally drops filler words and markdown emphasis
	LevelMedium
	// LevelAggressive additionally drops common stopwords
	LevelAggressive
)

// ParseLevel converts a level name from flags or config.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "light":
		return LevelLight, nil
	case "medium":
		return LevelMedium, nil
	case "aggressive":
		return LevelAggressive, nil
	default:
		return LevelLight, errors.Errorf("unknown compression level %q (want light, medium, or aggressive)", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelMedium:
		return "medium"
	case LevelAggressive:
		return "aggressive"
	default:
		return "light"
	}
}

var (
	spaceRunRe = regexp.MustCompile(`[ \t]{2,}`)
	emphasisRe = regexp.MustCompile(`(\*\*|__|\*|_)([^*_]+)(\*\*|__|\*|_)`)

	// Politeness and hedging that carry no instruction content.
	fillerWords = []string{
		"please", "kindly", "very", "really", "actually", "basically",
		"simply", "just", "quite", "rather", "somewhat",
	}

	// Function words dropped only at the aggressive level; output remains
	// readable to a model but not necessarily to a human.
	stopWords = []string{
		"a", "an", "the", "that", "this", "these", "those",
		"is", "are", "was", "were", "be", "been", "being",
		"of", "for", "to", "in", "on", "at", "by", "with",
	}
)

// Stats reports the effect of a compression pass.
type Stats struct {
	OriginalChars    int     `json:"originalChars"`
	CompressedChars  int     `json:"compressedChars"`
	OriginalTokens   int     `json:"originalTokens"`
	CompressedTokens int     `json:"compressedTokens"`
	SavedPercent     float64 `json:"savedPercent"`
}

// EstimateTokens approximates the token count of text at four characters
// per token, rounding up.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}

// Compress rewrites text at the given level and reports savings.
func Compress(text string, level Level) (string, Stats) {
	original := text

	out := collapseWhitespace(text)
	if level >= LevelMedium {
		out = stripEmphasis(out)
		out = dropWords(out, fillerWords)
	}
	if level >= LevelAggressive {
		out = dropWords(out, stopWords)
	}
	out = collapseWhitespace(out)

	stats := Stats{
		OriginalChars:    len(original),
		CompressedChars:  len(out),
		OriginalTokens:   EstimateTokens(original),
		CompressedTokens: EstimateTokens(out),
	}
	if stats.OriginalTokens > 0 {
		stats.SavedPercent = 100 * float64(stats.OriginalTokens-stats.CompressedTokens) / float64(stats.OriginalTokens)
	}
	return out, stats
}

func collapseWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	blanks := 0

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		body := spaceRunRe.ReplaceAllString(strings.TrimLeft(line, " \t"), " ")
		line = indent + body

		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

func stripEmphasis(text string) string {
	return emphasisRe.ReplaceAllString(text, "$2")
}

func dropWords(text string, words []string) string {
	drop := make(map[string]bool, len(words))
	for _, w := range words {
		drop[w] = true
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		kept := make([]string, 0, len(fields))
		for _, f := range fields {
			if drop[strings.ToLower(strings.Trim(f, ".,;:!?"))] {
				continue
			}
			kept = append(kept, f)
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		lines[i] = indent + strings.Join(kept, " ")
	}
	return strings.Join(lines, "\n")
}
