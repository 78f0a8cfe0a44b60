package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"light", LevelLight},
		{"MEDIUM", LevelMedium},
		{"aggressive", LevelAggressive},
	}
	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, level)
	}

	_, err := ParseLevel("extreme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown compression level")
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
}

func TestCompressLight(t *testing.T) {
	input := "Hello   world  \n\n\n\nNext   paragraph\t\t here   \n"
	out, stats := Compress(input, LevelLight)

	assert.Equal(t, "Hello world\n\nNext paragraph here", out)
	assert.Equal(t, len(input), stats.OriginalChars)
	assert.Less(t, stats.CompressedChars, stats.OriginalChars)
	assert.Positive(t, stats.SavedPercent)
}

func TestCompressLightKeepsIndentation(t *testing.T) {
	input := "steps:\n    do the    thing"
	out, _ := Compress(input, LevelLight)
	assert.Equal(t, "steps:\n    do the thing", out)
}

func TestCompressMedium(t *testing.T) {
	input := "Please review this **very important** document, kindly."
	out, _ := Compress(input, LevelMedium)

	lower := strings.ToLower(out)
	assert.NotContains(t, lower, "please")
	assert.NotContains(t, lower, "kindly")
	assert.NotContains(t, lower, "very")
	assert.NotContains(t, out, "**")
	assert.Contains(t, out, "important")
	assert.Contains(t, out, "document")
}

func TestCompressAggressive(t *testing.T) {
	input := "The summary of the report is in the appendix."
	out, _ := Compress(input, LevelAggressive)

	words := strings.Fields(strings.ToLower(out))
	assert.NotContains(t, words, "the")
	assert.NotContains(t, words, "of")
	assert.Contains(t, out, "summary")
	assert.Contains(t, out, "report")
	assert.Contains(t, out, "appendix")
}

func TestCompressStatsConsistency(t *testing.T) {
	out, stats := Compress("some    spaced    text", LevelLight)
	assert.Equal(t, len(out), stats.CompressedChars)
	assert.Equal(t, EstimateTokens(out), stats.CompressedTokens)
}
