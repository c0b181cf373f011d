package artifacts

import (
	"gopkg.in/yaml.v3"

	"github.com/pystack-sh/pystack/pkg/errors"
	"github.com/pystack-sh/pystack/pkg/platform"
)

// DependabotConfig models a .github/dependabot.yml document.
type DependabotConfig struct {
	Version int                `yaml:"version"`
	Updates []DependabotUpdate `yaml:"updates"`
}

// DependabotUpdate is one package-ecosystem entry.
type DependabotUpdate struct {
	PackageEcosystem string                     `yaml:"package-ecosystem"`
	Directory        string                     `yaml:"directory"`
	Schedule         DependabotSchedule         `yaml:"schedule"`
	Groups           map[string]DependabotGroup `yaml:"groups,omitempty"`
}

// DependabotSchedule controls the update cadence.
type DependabotSchedule struct {
	Interval string `yaml:"interval"`
}

// DependabotGroup batches related dependency updates into one PR.
type DependabotGroup struct {
	Patterns []string `yaml:"patterns"`
}

// defaultDependabotConfig watches pip and github-actions daily, with
// the development tooling grouped so its updates arrive as one PR.
// The group patterns mirror the dev dependency set, with pytest*
// covering both pytest and pytest-cov.
func defaultDependabotConfig() DependabotConfig {
	devPatterns := make([]string, 0, len(platform.DevDeps))
	for _, dep := range platform.DevDeps {
		switch dep {
		case "pytest", "pytest-cov":
			continue
		}
		devPatterns = append(devPatterns, dep)
	}
	devPatterns = append(devPatterns, "pytest*")

	return DependabotConfig{
		Version: 2,
		Updates: []DependabotUpdate{
			{
				PackageEcosystem: "pip",
				Directory:        "/",
				Schedule:         DependabotSchedule{Interval: "daily"},
				Groups: map[string]DependabotGroup{
					"dev-dependencies": {Patterns: devPatterns},
				},
			},
			{
				PackageEcosystem: "github-actions",
				Directory:        "/",
				Schedule:         DependabotSchedule{Interval: "daily"},
			},
		},
	}
}

// RenderDependabotConfig serializes the default Dependabot policy.
func RenderDependabotConfig() ([]byte, error) {
	data, err := yaml.Marshal(defaultDependabotConfig())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render dependabot config")
	}
	return data, nil
}
