// Package bootstrap orchestrates the full environment setup pipeline:
// toolchain checks, project initialization, dependency installation,
// artifact materialization and hook installation. It collects
// per-artifact outcomes so the CLI layer can report and pick an exit
// status; it does not print anything itself.
package bootstrap

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pystack-sh/pystack/pkg/artifacts"
	"github.com/pystack-sh/pystack/pkg/errors"
	"github.com/pystack-sh/pystack/pkg/filesystem"
	"github.com/pystack-sh/pystack/pkg/logging"
	"github.com/pystack-sh/pystack/pkg/materialize"
	"github.com/pystack-sh/pystack/pkg/platform"
	"github.com/pystack-sh/pystack/pkg/pyproject"
	"github.com/pystack-sh/pystack/pkg/toolchain"
	"github.com/pystack-sh/pystack/pkg/types"
)

// Options configures a bootstrap run.
type Options struct {
	// ProjectDir is the directory being bootstrapped.
	ProjectDir string

	// Mode carries the dry-run and force flags.
	Mode types.RunMode

	// Platform defaults to the detected host platform.
	Platform platform.Platform

	// FS defaults to the OS filesystem.
	FS types.FS

	// Runner defaults to the exec-backed runner.
	Runner toolchain.CommandRunner
}

func (o *Options) setDefaults() {
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Runner == nil {
		o.Runner = toolchain.NewExecRunner()
	}
	if o.Platform == "" {
		o.Platform = platform.Detect()
	}
}

// ArtifactFailure pairs an artifact name with the error that stopped
// its materialization.
type ArtifactFailure struct {
	Artifact string
	Err      error
}

// UpResult summarizes a bootstrap run.
type UpResult struct {
	// ProjectInitialized is true when `poetry init` ran.
	ProjectInitialized bool

	// SectionsAdded lists pyproject tables appended by the merge.
	SectionsAdded []string

	// Artifacts holds one result per successfully decided artifact.
	Artifacts []types.Result

	// Failures holds per-artifact errors; the run continues past them.
	Failures []ArtifactFailure

	// HooksInstalled is true when pre-commit hooks were installed.
	HooksInstalled bool

	// DryRun mirrors the run mode for display.
	DryRun bool
}

// Failed reports whether anything in the run went wrong.
func (r *UpResult) Failed() bool {
	return len(r.Failures) > 0
}

// Up runs the full bootstrap pipeline. Toolchain failures abort the
// run (nothing sensible can happen without poetry); artifact failures
// are collected and the remaining artifacts still materialize.
func Up(opts Options) (*UpResult, error) {
	opts.setDefaults()
	logger := logging.GetLogger("bootstrap")
	result := &UpResult{DryRun: opts.Mode.DryRun}

	poetry := toolchain.New(toolchain.Options{
		Runner: opts.Runner,
		FS:     opts.FS,
		Dir:    opts.ProjectDir,
		DryRun: opts.Mode.DryRun,
	})

	if err := poetry.EnsureInstalled(); err != nil {
		return nil, err
	}

	created, err := poetry.InitProject()
	if err != nil {
		return nil, err
	}
	result.ProjectInitialized = created

	prod := platform.ProductionDeps(opts.Platform)
	if err := poetry.AddDependencies(prod, platform.DevDeps); err != nil {
		return nil, err
	}

	merger := pyproject.NewMerger(opts.FS)
	manifest := manifestPath(opts.ProjectDir)
	merge, err := merger.Merge(manifest, opts.Mode)
	if err != nil {
		result.Failures = append(result.Failures, ArtifactFailure{
			Artifact: toolchain.PyprojectFile,
			Err:      err,
		})
		logger.Error().Err(err).Msg("pyproject merge failed, continuing")
	} else {
		result.SectionsAdded = merge.Added
	}

	materializeAll(opts, result, logger)

	// Hooks only make sense once the hook config exists.
	if !result.Failed() {
		if err := poetry.InstallHooks(); err != nil {
			return result, err
		}
		result.HooksInstalled = !opts.Mode.DryRun
	}

	return result, nil
}

func materializeAll(opts Options, result *UpResult, logger zerolog.Logger) {
	specs, err := artifacts.Catalog(opts.ProjectDir)
	if err != nil {
		result.Failures = append(result.Failures, ArtifactFailure{
			Artifact: "catalog",
			Err:      err,
		})
		return
	}

	m := materialize.New(opts.FS)
	for _, spec := range specs {
		res, err := m.Materialize(spec, opts.Mode)
		if err != nil {
			// Partial-failure tolerant: record and move on.
			result.Failures = append(result.Failures, ArtifactFailure{
				Artifact: spec.Name,
				Err:      err,
			})
			logger.Error().Err(err).Str("artifact", spec.Name).Msg("Artifact failed")
			continue
		}
		result.Artifacts = append(result.Artifacts, res)
	}
}

// ArtifactState classifies what status found for one artifact.
type ArtifactState string

const (
	StateMissing   ArtifactState = "missing"
	StateUnchanged ArtifactState = "unchanged"
	StateDrifted   ArtifactState = "drifted"
)

// StatusEntry is one artifact's drift report.
type StatusEntry struct {
	Artifact string
	Path     string
	State    ArtifactState
}

// Status evaluates every catalog artifact read-only and reports
// whether it is missing, unchanged or drifted from the desired
// content. It shares the materializer's decision logic and never
// writes.
func Status(opts Options) ([]StatusEntry, error) {
	opts.setDefaults()

	specs, err := artifacts.Catalog(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	m := materialize.New(opts.FS)
	entries := make([]StatusEntry, 0, len(specs))
	for _, spec := range specs {
		res, err := m.Plan(spec, opts.Mode)
		if err != nil {
			return entries, errors.Wrapf(err, errors.GetCode(err),
				"status check failed for %s", spec.Name)
		}

		entry := StatusEntry{Artifact: spec.Name, Path: spec.Path}
		switch res.Outcome {
		case types.OutcomeCreated:
			entry.State = StateMissing
		case types.OutcomeSkipped:
			entry.State = StateUnchanged
		default:
			entry.State = StateDrifted
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func manifestPath(projectDir string) string {
	return filepath.Join(projectDir, toolchain.PyprojectFile)
}
