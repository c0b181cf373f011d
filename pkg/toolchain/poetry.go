// Package toolchain wraps the Poetry interactions of the bootstrap:
// checking the installation, initializing the project, adding
// dependencies and installing pre-commit hooks. All process execution
// goes through a CommandRunner so dry runs spawn nothing.
package toolchain

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pystack-sh/pystack/pkg/errors"
	"github.com/pystack-sh/pystack/pkg/logging"
	"github.com/pystack-sh/pystack/pkg/types"
)

// PyprojectFile is the Poetry project manifest name.
const PyprojectFile = "pyproject.toml"

// Poetry drives the poetry binary for one project directory.
type Poetry struct {
	runner CommandRunner
	fs     types.FS
	dir    string
	dryRun bool
	logger zerolog.Logger
}

// Options configures a Poetry wrapper.
type Options struct {
	// Runner executes commands; required.
	Runner CommandRunner

	// FS is used for existence checks; required.
	FS types.FS

	// Dir is the project directory poetry commands run in.
	Dir string

	// DryRun short-circuits every command before it spawns.
	DryRun bool
}

// New creates a Poetry wrapper for the given project directory.
func New(opts Options) *Poetry {
	return &Poetry{
		runner: opts.Runner,
		fs:     opts.FS,
		dir:    opts.Dir,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("toolchain"),
	}
}

// EnsureInstalled verifies that poetry is on PATH. The error message
// suggests pipx when pipx is available, otherwise points at the
// install documentation.
func (p *Poetry) EnsureInstalled() error {
	if _, err := p.runner.LookPath("poetry"); err == nil {
		p.logger.Debug().Msg("Poetry found on PATH")
		return nil
	}

	suggestion := "see https://python-poetry.org/docs/#installation"
	if _, err := p.runner.LookPath("pipx"); err == nil {
		suggestion = "try `pipx install poetry`"
	}

	return errors.Newf(errors.ErrToolMissing, "poetry not found, %s", suggestion)
}

// InitProject runs `poetry init -n` unless a pyproject.toml already
// exists in the project directory.
func (p *Poetry) InitProject() (created bool, err error) {
	manifest := filepath.Join(p.dir, PyprojectFile)
	if _, err := p.fs.Stat(manifest); err == nil {
		p.logger.Debug().Str("path", manifest).Msg("Poetry project already initialized")
		return false, nil
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", manifest)
	}

	if err := p.run("init", "-n"); err != nil {
		return false, err
	}
	return true, nil
}

// AddDependencies adds the production dependencies, then the dev
// group. Ordering matters: a failed production install must not leave
// a dev group behind.
func (p *Poetry) AddDependencies(prod, dev []string) error {
	if len(prod) > 0 {
		if err := p.run(append([]string{"add"}, prod...)...); err != nil {
			return err
		}
	}

	if len(dev) > 0 {
		args := append([]string{"add", "--group", "dev"}, dev...)
		if err := p.run(args...); err != nil {
			return err
		}
	}
	return nil
}

// InstallHooks runs `poetry run pre-commit install` so the generated
// hook configuration takes effect.
func (p *Poetry) InstallHooks() error {
	return p.run("run", "pre-commit", "install")
}

func (p *Poetry) run(args ...string) error {
	if p.dryRun {
		p.logger.Info().Strs("args", args).Msg("Dry run, poetry command not executed")
		return nil
	}

	if err := p.runner.Run(p.dir, "poetry", args...); err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed,
			"poetry %s failed", args[0]).WithDetail("args", args)
	}
	return nil
}
