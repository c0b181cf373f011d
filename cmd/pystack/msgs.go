package main

// Short messages (one-liners)
const (
	MsgRootShort   = "Bootstrap a high-performance Python environment"
	MsgUpShort     = "Set up the project: Poetry, dependencies, configs and hooks"
	MsgStatusShort = "Show drift between generated files and their desired content"
	MsgRenderShort = "Print a generated file's content to stdout"
	MsgDocsShort   = "Show documentation topics"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without touching the filesystem or running poetry"
	MsgFlagForce   = "Overwrite existing config files without creating backups"
	MsgFlagDir     = "Project directory to bootstrap (defaults to the current directory)"
)

// Long messages
const (
	MsgRootLong = `pystack bootstraps a Python project focused on performance, security
and integrity: it initializes Poetry, installs an opinionated
dependency set, generates linter, type-checker, pre-commit and
Dependabot configuration, and installs the git hooks.

Existing files are never destroyed: differing content is backed up to
<name>.bak before being overwritten unless --force is given.`

	MsgUpLong = `Up runs the full bootstrap pipeline in order:

  1. verify Poetry is installed
  2. poetry init (skipped when pyproject.toml exists)
  3. poetry add production and dev dependencies
  4. append missing tool sections to pyproject.toml
  5. generate .pre-commit-config.yaml, .github/dependabot.yml
     and SECURITY.md
  6. poetry run pre-commit install

Every step is idempotent: re-running on an already bootstrapped
project changes nothing.`

	MsgUpExample = `  pystack up                  # bootstrap the current directory
  pystack up --dry-run        # show what would happen
  pystack up --force          # overwrite configs without backups
  pystack up --dir ~/src/api  # bootstrap another project`

	MsgRenderLong = `Render prints the desired content of one generated file to stdout
without touching the project, useful for inspecting what up would
write or for piping into another file.`
)

// Status and summary output
const (
	MsgDryRunNotice    = "\nDRY RUN MODE - No changes were made"
	MsgUpHeader        = "Bootstrapping Python environment"
	MsgSummaryOK       = "\nEnvironment configured successfully!"
	MsgSummaryHints    = "Run `poetry shell` to activate the virtual environment.\nRemember to commit poetry.lock for reproducible builds."
	MsgSummaryFailures = "\n%d file(s) failed:\n"
)
