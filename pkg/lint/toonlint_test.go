package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTOONCleanDocument(t *testing.T) {
	doc := []string{
		"name: skillkit",
		"tags[3]: go,cli,toon",
		"users[2]{id,name}:",
		"  1,alice",
		"  2,bob",
		"nested:",
		"  flag: true",
		"mixed[2]:",
		"  - 1",
		"  - two",
	}
	assert.Empty(t, CheckTOON(doc))
}

func TestCheckTOONIndentation(t *testing.T) {
	t.Run("odd indent", func(t *testing.T) {
		issues := CheckTOON([]string{"a:", "   b: 1"})
		require.Len(t, issues, 1)
		assert.Equal(t, "indent-odd", issues[0].Code)
		assert.Equal(t, 2, issues[0].Line)
	})

	t.Run("tab indent", func(t *testing.T) {
		issues := CheckTOON([]string{"a:", "\tb: 1"})
		require.Len(t, issues, 1)
		assert.Equal(t, "indent-tab", issues[0].Code)
	})
}

func TestCheckTOONQuotes(t *testing.T) {
	issues := CheckTOON([]string{`msg: "unterminated`})
	require.Len(t, issues, 1)
	assert.Equal(t, "quote-unbalanced", issues[0].Code)

	t.Run("escaped quotes balance", func(t *testing.T) {
		assert.Empty(t, CheckTOON([]string{`msg: "say \"hi\""`}))
	})
}

func TestCheckTOONArrayCounts(t *testing.T) {
	t.Run("inline count mismatch", func(t *testing.T) {
		issues := CheckTOON([]string{"nums[3]: 1,2"})
		require.Len(t, issues, 1)
		assert.Equal(t, "array-count", issues[0].Code)
		assert.Contains(t, issues[0].Message, "declares 3 values but has 2")
	})

	t.Run("tabular row count mismatch", func(t *testing.T) {
		issues := CheckTOON([]string{
			"users[3]{id,name}:",
			"  1,alice",
			"  2,bob",
		})
		require.Len(t, issues, 1)
		assert.Equal(t, "array-count", issues[0].Code)
		assert.Equal(t, 1, issues[0].Line)
	})

	t.Run("row width mismatch", func(t *testing.T) {
		issues := CheckTOON([]string{
			"users[2]{id,name}:",
			"  1,alice",
			"  2",
		})
		require.Len(t, issues, 1)
		assert.Equal(t, "row-width", issues[0].Code)
		assert.Equal(t, 3, issues[0].Line)
	})

	t.Run("quoted commas do not split cells", func(t *testing.T) {
		assert.Empty(t, CheckTOON([]string{
			"rows[1]{msg,n}:",
			`  "a,b",1`,
		}))
	})

	t.Run("list item count mismatch", func(t *testing.T) {
		issues := CheckTOON([]string{
			"items[3]:",
			"  - 1",
			"  - 2",
		})
		require.Len(t, issues, 1)
		assert.Equal(t, "array-count", issues[0].Code)
		assert.Contains(t, issues[0].Message, "declares 3 items but has 2")
	})
}

func TestCheckTOONChecksAreIndependent(t *testing.T) {
	issues := CheckTOON([]string{
		"nums[2]: 1",
		`   bad: "open`,
	})
	assert.ElementsMatch(t, []string{"array-count", "indent-odd", "quote-unbalanced"}, codesOf(issues))
}
