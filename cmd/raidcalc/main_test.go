package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleStrategy = "../../strategies/example.yaml"

func writeConfig(t *testing.T, objective string) string {
	t.Helper()
	root, err := filepath.Abs("../..")
	require.NoError(t, err)
	cfg := fmt.Sprintf(`
logging:
  level: error
  format: json
content:
  species_dir: %s
  moves_dir: %s
battle:
  default_roll: avg
optimizer:
  max_marked_turns: 4
  objective_script: %q
`, filepath.Join(root, "content", "species"), filepath.Join(root, "content", "moves"), objective)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func TestRun_Battle(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeConfig(t, ""), "-strategy", exampleStrategy}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "== Turn 0 ==")
	assert.Contains(t, out, "== Turn 1 ==")
	assert.Contains(t, out, "== Final state ==")
	assert.NotContains(t, out, "\x1b[")
}

func TestRun_Optimize(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeConfig(t, ""), "-strategy", exampleStrategy, "-optimize"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Optimizer: ")
}

func TestRun_OptimizeWithObjectiveScript(t *testing.T) {
	script, err := filepath.Abs("../../scripts/objective.lua")
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeConfig(t, script), "-strategy", exampleStrategy, "-optimize"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Optimizer: ")
}

func TestRun_Color(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeConfig(t, ""), "-strategy", exampleStrategy, "-color"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "\x1b[")
}

func TestRun_MissingStrategyFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeConfig(t, "")}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "usage:")
}

func TestRun_BadConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", "/nonexistent/config.yaml", "-strategy", exampleStrategy}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "loading config")
}

func TestRun_BadStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combatants: []\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeConfig(t, ""), "-strategy", path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "loading strategy")
	assert.Empty(t, stdout.String())
}

func TestRun_MissingObjectiveScript(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeConfig(t, "/nonexistent/objective.lua"), "-strategy", exampleStrategy, "-optimize"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "loading objective script")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
}
