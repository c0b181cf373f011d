package bootstrap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pystack-sh/pystack/pkg/bootstrap"
	pserrors "github.com/pystack-sh/pystack/pkg/errors"
	"github.com/pystack-sh/pystack/pkg/platform"
	"github.com/pystack-sh/pystack/pkg/testutil"
	"github.com/pystack-sh/pystack/pkg/types"
)

type fakeRunner struct {
	commands  []string
	available map[string]bool
	failOn    string
}

func (f *fakeRunner) Run(dir, name string, args ...string) error {
	cmdline := name + " " + strings.Join(args, " ")
	f.commands = append(f.commands, cmdline)
	if f.failOn != "" && strings.Contains(cmdline, f.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	if f.available[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func poetryRunner() *fakeRunner {
	return &fakeRunner{available: map[string]bool{"poetry": true}}
}

func baseOptions(runner *fakeRunner, mfs *testutil.MemoryFS, mode types.RunMode) bootstrap.Options {
	return bootstrap.Options{
		ProjectDir: "/project",
		Mode:       mode,
		Platform:   platform.Linux,
		FS:         mfs,
		Runner:     runner,
	}
}

func TestUpFullPipeline(t *testing.T) {
	runner := poetryRunner()
	mfs := testutil.NewMemoryFS()

	result, err := bootstrap.Up(baseOptions(runner, mfs, types.RunMode{}))
	require.NoError(t, err)

	assert.True(t, result.ProjectInitialized)
	assert.False(t, result.Failed())
	assert.True(t, result.HooksInstalled)
	assert.Len(t, result.Artifacts, 3)
	assert.Equal(t, []string{"tool.ruff", "tool.mypy", "tool.pytest.ini_options"}, result.SectionsAdded)

	// Command ordering: init, add prod, add dev, hook install.
	require.Len(t, runner.commands, 4)
	assert.Equal(t, "poetry init -n", runner.commands[0])
	assert.True(t, strings.HasPrefix(runner.commands[1], "poetry add pydantic>=2.0"))
	assert.Contains(t, runner.commands[1], "uvloop")
	assert.True(t, strings.HasPrefix(runner.commands[2], "poetry add --group dev"))
	assert.Equal(t, "poetry run pre-commit install", runner.commands[3])

	// Generated files exist.
	for _, path := range []string{
		"/project/.pre-commit-config.yaml",
		"/project/.github/dependabot.yml",
		"/project/SECURITY.md",
		"/project/pyproject.toml",
	} {
		_, err := mfs.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestUpWindowsSkipsUvloop(t *testing.T) {
	runner := poetryRunner()
	opts := baseOptions(runner, testutil.NewMemoryFS(), types.RunMode{})
	opts.Platform = platform.Windows

	_, err := bootstrap.Up(opts)
	require.NoError(t, err)

	assert.NotContains(t, runner.commands[1], "uvloop")
}

func TestUpMissingPoetryAborts(t *testing.T) {
	runner := &fakeRunner{available: map[string]bool{}}
	mfs := testutil.NewMemoryFS()

	_, err := bootstrap.Up(baseOptions(runner, mfs, types.RunMode{}))
	require.Error(t, err)
	assert.Equal(t, pserrors.ErrToolMissing, pserrors.GetCode(err))
	assert.Empty(t, runner.commands)
	assert.Equal(t, 0, mfs.WriteCount())
}

func TestUpDryRunMutatesNothing(t *testing.T) {
	runner := poetryRunner()
	mfs := testutil.NewMemoryFS()

	result, err := bootstrap.Up(baseOptions(runner, mfs, types.RunMode{DryRun: true}))
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.False(t, result.HooksInstalled)
	assert.Empty(t, runner.commands, "dry run must not spawn poetry")
	assert.Equal(t, 0, mfs.WriteCount())

	for _, res := range result.Artifacts {
		assert.True(t, res.Simulated)
	}
}

func TestUpContinuesPastArtifactFailure(t *testing.T) {
	runner := poetryRunner()
	mfs := testutil.NewMemoryFS()
	mfs.InjectError("/project/.pre-commit-config.yaml", errors.New("permission denied"))

	result, err := bootstrap.Up(baseOptions(runner, mfs, types.RunMode{}))
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "pre-commit", result.Failures[0].Artifact)
	assert.True(t, result.Failed())

	// The other artifacts still materialized.
	assert.Len(t, result.Artifacts, 2)
	_, statErr := mfs.Stat("/project/SECURITY.md")
	assert.NoError(t, statErr)

	// Hooks are not installed when part of the run failed.
	assert.False(t, result.HooksInstalled)
	for _, cmd := range runner.commands {
		assert.NotContains(t, cmd, "pre-commit install")
	}
}

func TestUpSecondRunSkipsEverything(t *testing.T) {
	runner := poetryRunner()
	mfs := testutil.NewMemoryFS()
	opts := baseOptions(runner, mfs, types.RunMode{})

	_, err := bootstrap.Up(opts)
	require.NoError(t, err)

	second, err := bootstrap.Up(opts)
	require.NoError(t, err)

	assert.False(t, second.ProjectInitialized, "pyproject.toml already exists")
	assert.Empty(t, second.SectionsAdded)
	for _, res := range second.Artifacts {
		assert.Equal(t, types.OutcomeSkipped, res.Outcome)
	}
}

func TestStatus(t *testing.T) {
	runner := poetryRunner()
	mfs := testutil.NewMemoryFS()
	opts := baseOptions(runner, mfs, types.RunMode{})

	// Before any run everything is missing.
	entries, err := bootstrap.Status(opts)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, bootstrap.StateMissing, e.State)
	}

	_, err = bootstrap.Up(opts)
	require.NoError(t, err)

	entries, err = bootstrap.Status(opts)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, bootstrap.StateUnchanged, e.State)
	}

	// A local edit shows up as drift.
	require.NoError(t, mfs.WriteFile("/project/SECURITY.md", []byte("edited"), 0644))

	entries, err = bootstrap.Status(opts)
	require.NoError(t, err)
	states := map[string]bootstrap.ArtifactState{}
	for _, e := range entries {
		states[e.Artifact] = e.State
	}
	assert.Equal(t, bootstrap.StateDrifted, states["security-policy"])
	assert.Equal(t, bootstrap.StateUnchanged, states["pre-commit"])
}
