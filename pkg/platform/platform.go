// Package platform detects the host operating system and adjusts the
// Python dependency set accordingly. It is pure selection logic; the
// materializer and toolchain know nothing about platforms.
package platform

import "runtime"

// Platform identifies the host operating system family.
type Platform string

const (
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
	Windows Platform = "windows"
	Other   Platform = "other"
)

// Production dependencies added to every project. uvloop is excluded
// on Windows because it has no Windows support.
var (
	baseProductionDeps = []string{"pydantic>=2.0", "orjson"}
	unixOnlyDeps       = []string{"uvloop"}
)

// DevDeps are the development-group dependencies, identical on every
// platform.
var DevDeps = []string{
	"ruff", "mypy", "bandit", "safety", "pre-commit",
	"pytest", "pytest-cov", "py-spy", "semgrep",
}

// Detect returns the platform the process is running on.
func Detect() Platform {
	switch runtime.GOOS {
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	case "windows":
		return Windows
	default:
		return Other
	}
}

// ProductionDeps returns the production dependency list adjusted for
// the given platform.
func ProductionDeps(p Platform) []string {
	deps := make([]string, 0, len(baseProductionDeps)+len(unixOnlyDeps))
	deps = append(deps, baseProductionDeps...)
	if p != Windows {
		deps = append(deps, unixOnlyDeps...)
	}
	return deps
}
