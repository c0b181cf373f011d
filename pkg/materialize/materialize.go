package materialize

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pystack-sh/pystack/pkg/errors"
	"github.com/pystack-sh/pystack/pkg/filesystem"
	"github.com/pystack-sh/pystack/pkg/logging"
	"github.com/pystack-sh/pystack/pkg/types"
)

// BackupSuffix is appended to the target path when the previous content
// is preserved before an overwrite.
const BackupSuffix = ".bak"

// SkipReasonUnchanged is the Reason carried by skipped results.
const SkipReasonUnchanged = "unchanged"

// Materializer decides and executes the write action for artifacts.
// Each artifact is handled independently; there is no cross-artifact
// state.
type Materializer struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a materializer. A nil fs defaults to the OS filesystem.
func New(fsys types.FS) *Materializer {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Materializer{
		fs:     fsys,
		logger: logging.GetLogger("materialize"),
	}
}

// Plan computes the action Materialize would take for the artifact
// without mutating anything. status and dry runs share this path.
func (m *Materializer) Plan(spec types.ArtifactSpec, mode types.RunMode) (types.Result, error) {
	result := types.Result{
		Artifact: spec.Name,
		Path:     spec.Path,
	}

	info, err := m.fs.Stat(spec.Path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			result.Outcome = types.OutcomeCreated
			return result, nil
		}
		return result, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot stat %s", spec.Path).WithDetail("path", spec.Path)
	}

	if info.IsDir() {
		return result, errors.Newf(errors.ErrFileAccess,
			"target %s is a directory", spec.Path).WithDetail("path", spec.Path)
	}

	existing, err := m.fs.ReadFile(spec.Path)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrFileRead,
			"cannot read %s", spec.Path).WithDetail("path", spec.Path)
	}

	if bytes.Equal(existing, spec.Content) {
		result.Outcome = types.OutcomeSkipped
		result.Reason = SkipReasonUnchanged
		return result, nil
	}

	if mode.Force {
		result.Outcome = types.OutcomeForced
		return result, nil
	}

	result.Outcome = types.OutcomeBackedUp
	result.BackupPath = spec.Path + BackupSuffix
	return result, nil
}

// Materialize reconciles one artifact against the filesystem and
// reports what happened. In dry-run mode the decision is computed
// read-only and returned with Simulated set; nothing is written.
//
// A pre-existing file is never destroyed without a .bak copy unless
// force is set.
func (m *Materializer) Materialize(spec types.ArtifactSpec, mode types.RunMode) (types.Result, error) {
	result, err := m.Plan(spec, mode)
	if err != nil {
		m.logger.Error().Err(err).Str("artifact", spec.Name).Msg("Plan failed")
		return result, err
	}

	if mode.DryRun {
		result.Simulated = true
		m.logger.Info().
			Str("artifact", spec.Name).
			Str("outcome", string(result.Outcome)).
			Msg("Dry run, no changes made")
		return result, nil
	}

	switch result.Outcome {
	case types.OutcomeSkipped:
		m.logger.Debug().Str("artifact", spec.Name).Msg("Content unchanged, skipping")
		return result, nil

	case types.OutcomeCreated:
		if dir := filepath.Dir(spec.Path); dir != "." {
			if err := m.fs.MkdirAll(dir, 0755); err != nil {
				return result, errors.Wrapf(err, errors.ErrDirCreate,
					"cannot create directory %s", dir).WithDetail("path", spec.Path)
			}
		}

	case types.OutcomeBackedUp:
		// Single backup generation: the rename replaces any prior .bak.
		if err := m.fs.Rename(spec.Path, result.BackupPath); err != nil {
			return result, errors.Wrapf(err, errors.ErrBackup,
				"cannot back up %s", spec.Path).WithDetail("backup", result.BackupPath)
		}
		m.logger.Warn().
			Str("artifact", spec.Name).
			Str("backup", result.BackupPath).
			Msg("Existing file backed up")

	case types.OutcomeForced:
		m.logger.Warn().Str("artifact", spec.Name).Msg("Overwriting without backup")
	}

	if err := m.write(spec); err != nil {
		return result, err
	}

	m.logger.Info().
		Str("artifact", spec.Name).
		Str("path", spec.Path).
		Str("outcome", string(result.Outcome)).
		Msg("Artifact materialized")
	return result, nil
}

func (m *Materializer) write(spec types.ArtifactSpec) error {
	perm := spec.Perm
	if perm == 0 {
		perm = 0644
	}
	if err := m.fs.WriteFile(spec.Path, spec.Content, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"cannot write %s", spec.Path).WithDetail("path", spec.Path)
	}
	return nil
}
