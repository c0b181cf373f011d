package toolchain

import (
	"os"
	"os/exec"

	"github.com/pystack-sh/pystack/pkg/logging"
)

// CommandRunner abstracts process execution so dry runs and tests
// never spawn anything.
type CommandRunner interface {
	// Run executes a command in dir, streaming its output to the
	// user's terminal.
	Run(dir, name string, args ...string) error

	// LookPath reports the location of an executable in PATH.
	LookPath(file string) (string, error)
}

// ExecRunner executes commands on the local host via os/exec.
type ExecRunner struct{}

// NewExecRunner creates the production command runner.
func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

func (ExecRunner) Run(dir, name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
