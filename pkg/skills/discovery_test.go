package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, dir, name, description, body string) {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	content := "---\nname: " + name + "\ndescription: " + description + "\n---\n\n" + body
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644))
}

func TestBuiltins(t *testing.T) {
	builtins := Builtins()
	require.NotEmpty(t, builtins)

	seen := make(map[string]bool)
	for _, s := range builtins {
		assert.True(t, s.Builtin(), s.Name)
		assert.NotEmpty(t, s.Description, s.Name)
		assert.NotEmpty(t, s.Command, s.Name)
		assert.False(t, seen[s.Name], "duplicate builtin %s", s.Name)
		seen[s.Name] = true
	}
	assert.True(t, seen["toon-converter"])
	assert.True(t, seen["markdown-validator"])
}

func TestListMergesDiscoveredSkills(t *testing.T) {
	tmpDir := t.TempDir()
	writeSkill(t, tmpDir, "release-notes", "release-notes", "Draft release notes", "# Release Notes\n\nInstructions here.\n")
	writeSkill(t, tmpDir, "standup", "standup", "Summarize standup updates", "# Standup\n")

	discovery, err := NewDiscovery(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	all, err := discovery.List()
	require.NoError(t, err)
	assert.Len(t, all, len(Builtins())+2)

	skill, err := discovery.Get("release-notes")
	require.NoError(t, err)
	assert.False(t, skill.Builtin())
	assert.Equal(t, filepath.Join(tmpDir, "release-notes"), skill.Directory)
	assert.Contains(t, skill.Content, "# Release Notes")
	assert.NotContains(t, skill.Content, "---")
}

func TestListIgnoresInvalidSkillDirs(t *testing.T) {
	tmpDir := t.TempDir()

	// Missing frontmatter
	bad := filepath.Join(tmpDir, "no-meta")
	require.NoError(t, os.MkdirAll(bad, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bad, "SKILL.md"), []byte("# Just markdown\n"), 0o644))

	// No SKILL.md at all
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "empty-dir"), 0o755))

	discovery, err := NewDiscovery(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	all, err := discovery.List()
	require.NoError(t, err)
	assert.Len(t, all, len(Builtins()))
}

func TestBuiltinsWinNameCollisions(t *testing.T) {
	tmpDir := t.TempDir()
	writeSkill(t, tmpDir, "imposter", "toon-converter", "Not the real one", "body\n")

	discovery, err := NewDiscovery(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	skill, err := discovery.Get("toon-converter")
	require.NoError(t, err)
	assert.True(t, skill.Builtin())
}

func TestGetUnknownSkill(t *testing.T) {
	discovery, err := NewDiscovery(WithSkillDirs(t.TempDir()))
	require.NoError(t, err)

	_, err = discovery.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFirstDirectoryWinsPrecedence(t *testing.T) {
	local := t.TempDir()
	global := t.TempDir()
	writeSkill(t, local, "notes", "notes", "local notes skill", "local body\n")
	writeSkill(t, global, "notes", "notes", "global notes skill", "global body\n")

	discovery, err := NewDiscovery(WithSkillDirs(local, global))
	require.NoError(t, err)

	skill, err := discovery.Get("notes")
	require.NoError(t, err)
	assert.Equal(t, "local notes skill", skill.Description)
}
