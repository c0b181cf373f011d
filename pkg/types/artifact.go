package types

import "io/fs"

// ArtifactSpec describes one configuration file pystack ensures exists
// with specific content. The catalog in pkg/artifacts assembles these;
// the materializer consumes them.
type ArtifactSpec struct {
	// Name is a short identifier used in logs and reports
	// (e.g. "pre-commit", "dependabot", "security-policy").
	Name string

	// Path is the target path, relative to the project root.
	Path string

	// Content is the desired file content.
	Content []byte

	// Perm is the file mode used when the file is created.
	Perm fs.FileMode
}

// RunMode holds the per-invocation flags that affect write behavior.
// It is immutable after process start and passed explicitly into every
// materializer call.
type RunMode struct {
	// DryRun simulates the run without touching the filesystem or
	// spawning any process.
	DryRun bool

	// Force overwrites existing artifacts without creating backups.
	Force bool
}

// Outcome classifies what the materializer did (or would do) for a
// single artifact.
type Outcome string

const (
	// OutcomeCreated means the target did not exist and was written.
	OutcomeCreated Outcome = "created"

	// OutcomeSkipped means the target already had the desired content.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeBackedUp means the target differed and was overwritten
	// after its previous content was preserved in a .bak file.
	OutcomeBackedUp Outcome = "backed-up"

	// OutcomeForced means the target differed and was overwritten
	// without a backup because --force was set.
	OutcomeForced Outcome = "forced-overwrite"
)

// Result records the decision and effect of materializing one artifact.
type Result struct {
	// Artifact is the ArtifactSpec.Name this result belongs to.
	Artifact string

	// Path is the resolved target path.
	Path string

	// Outcome is the action taken, or the action that would have been
	// taken when Simulated is set.
	Outcome Outcome

	// Reason explains a skip (currently always "unchanged").
	Reason string

	// BackupPath is set when Outcome is OutcomeBackedUp.
	BackupPath string

	// Simulated is true when the run was a dry run and no filesystem
	// mutation happened.
	Simulated bool
}

// Changed reports whether this result represents (or would represent)
// a filesystem mutation.
func (r Result) Changed() bool {
	return r.Outcome != OutcomeSkipped
}
