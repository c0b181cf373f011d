package toolchain_test

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pserrors "github.com/pystack-sh/pystack/pkg/errors"
	"github.com/pystack-sh/pystack/pkg/testutil"
	"github.com/pystack-sh/pystack/pkg/toolchain"
	"github.com/pystack-sh/pystack/pkg/types"
)

// fakeRunner records commands instead of executing them.
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
	return "", exec.ErrNotFound
}

func newPoetry(runner *fakeRunner, mfs *testutil.MemoryFS, dryRun bool) *toolchain.Poetry {
	return toolchain.New(toolchain.Options{
		Runner: runner,
		FS:     mfs,
		Dir:    "/project",
		DryRun: dryRun,
	})
}

func TestEnsureInstalled(t *testing.T) {
	tests := []struct {
		name        string
		available   map[string]bool
		wantErr     bool
		wantMessage string
	}{
		{
			name:      "poetry present",
			available: map[string]bool{"poetry": true},
		},
		{
			name:        "missing with pipx",
			available:   map[string]bool{"pipx": true},
			wantErr:     true,
			wantMessage: "pipx install poetry",
		},
		{
			name:        "missing without pipx",
			available:   map[string]bool{},
			wantErr:     true,
			wantMessage: "python-poetry.org",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{available: tt.available}
			p := newPoetry(runner, testutil.NewMemoryFS(), false)

			err := p.EnsureInstalled()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, pserrors.ErrToolMissing, pserrors.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestInitProjectSkipsExistingManifest(t *testing.T) {
	runner := &fakeRunner{}
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.WriteFile("/project/pyproject.toml", []byte("[tool.poetry]"), 0644))

	p := newPoetry(runner, mfs, false)
	created, err := p.InitProject()
	require.NoError(t, err)

	assert.False(t, created)
	assert.Empty(t, runner.commands)
}

func TestInitProjectRunsPoetryInit(t *testing.T) {
	runner := &fakeRunner{}
	p := newPoetry(runner, testutil.NewMemoryFS(), false)

	created, err := p.InitProject()
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, []string{"poetry init -n"}, runner.commands)
}

func TestAddDependenciesOrdering(t *testing.T) {
	runner := &fakeRunner{}
	p := newPoetry(runner, testutil.NewMemoryFS(), false)

	err := p.AddDependencies(
		[]string{"pydantic>=2.0", "orjson", "uvloop"},
		[]string{"ruff", "mypy"},
	)
	require.NoError(t, err)

	require.Len(t, runner.commands, 2)
	assert.Equal(t, "poetry add pydantic>=2.0 orjson uvloop", runner.commands[0])
	assert.Equal(t, "poetry add --group dev ruff mypy", runner.commands[1])
}

func TestAddDependenciesStopsAfterProdFailure(t *testing.T) {
	runner := &fakeRunner{failOn: "add pydantic"}
	p := newPoetry(runner, testutil.NewMemoryFS(), false)

	err := p.AddDependencies([]string{"pydantic>=2.0"}, []string{"ruff"})
	require.Error(t, err)
	assert.Equal(t, pserrors.ErrCommandFailed, pserrors.GetCode(err))

	// The dev group command must not run after the production add failed.
	assert.Len(t, runner.commands, 1)
}

func TestInstallHooks(t *testing.T) {
	runner := &fakeRunner{}
	p := newPoetry(runner, testutil.NewMemoryFS(), false)

	require.NoError(t, p.InstallHooks())
	assert.Equal(t, []string{"poetry run pre-commit install"}, runner.commands)
}

func TestDryRunSpawnsNothing(t *testing.T) {
	runner := &fakeRunner{}
	p := newPoetry(runner, testutil.NewMemoryFS(), true)

	created, err := p.InitProject()
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, p.AddDependencies([]string{"orjson"}, []string{"ruff"}))
	require.NoError(t, p.InstallHooks())

	assert.Empty(t, runner.commands)
}

var _ types.FS = (*testutil.MemoryFS)(nil)
