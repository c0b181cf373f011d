package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootWithoutSubcommand(t *testing.T) {
	_, err := executeCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pystack version")
	assert.Contains(t, out, "commit:")
}

func TestRenderCmdProducesValidYAML(t *testing.T) {
	out, err := executeCommand(t, "render", "pre-commit")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "repos")
}

func TestRenderCmdRejectsUnknownArtifact(t *testing.T) {
	_, err := executeCommand(t, "render", "no-such-artifact")
	require.Error(t, err)
}

func TestStatusCmdOnEmptyProject(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, "status", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, ".pre-commit-config.yaml")
	assert.Contains(t, out, "SECURITY.md")
	assert.Contains(t, out, "missing")
}

func TestDocsCmdListsTopics(t *testing.T) {
	out, err := executeCommand(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "stack")
	assert.Contains(t, out, "backups")
}

func TestDocsCmdRendersTopic(t *testing.T) {
	out, err := executeCommand(t, "docs", "backups")
	require.NoError(t, err)
	assert.Contains(t, out, ".bak")
}
