package artifacts

import (
	"gopkg.in/yaml.v3"

	"github.com/pystack-sh/pystack/pkg/errors"
)

// PreCommitConfig models a .pre-commit-config.yaml document.
type PreCommitConfig struct {
	Repos []PreCommitRepo `yaml:"repos"`
}

// PreCommitRepo is one hook repository entry.
type PreCommitRepo struct {
	Repo  string          `yaml:"repo"`
	Rev   string          `yaml:"rev"`
	Hooks []PreCommitHook `yaml:"hooks"`
}

// PreCommitHook is a single hook within a repository.
type PreCommitHook struct {
	ID   string   `yaml:"id"`
	Args []string `yaml:"args,omitempty"`
}

// defaultPreCommitConfig is the hook set pystack installs: hygiene
// hooks plus the linter, type checker and security scanners that the
// dev dependency group provides.
func defaultPreCommitConfig() PreCommitConfig {
	return PreCommitConfig{
		Repos: []PreCommitRepo{
			{
				Repo: "https://github.com/pre-commit/pre-commit-hooks",
				Rev:  "v4.6.0",
				Hooks: []PreCommitHook{
					{ID: "trailing-whitespace"},
					{ID: "end-of-file-fixer"},
					{ID: "check-yaml"},
					{ID: "check-added-large-files"},
				},
			},
			{
				Repo: "https://github.com/astral-sh/ruff-pre-commit",
				Rev:  "v0.4.4",
				Hooks: []PreCommitHook{
					{ID: "ruff", Args: []string{"--fix", "--exit-non-zero-on-fix"}},
					{ID: "ruff-format"},
				},
			},
			{
				Repo:  "https://github.com/pre-commit/mirrors-mypy",
				Rev:   "v1.10.0",
				Hooks: []PreCommitHook{{ID: "mypy"}},
			},
			{
				Repo:  "https://github.com/PyCQA/bandit",
				Rev:   "1.7.9",
				Hooks: []PreCommitHook{{ID: "bandit", Args: []string{"-r", "."}}},
			},
			{
				Repo:  "https://github.com/pycqa/safety",
				Rev:   "3.2.3",
				Hooks: []PreCommitHook{{ID: "safety", Args: []string{"--full-report"}}},
			},
			{
				Repo:  "https://github.com/semgrep/pre-commit",
				Rev:   "v1.69.1",
				Hooks: []PreCommitHook{{ID: "semgrep", Args: []string{"--config=auto"}}},
			},
		},
	}
}

// RenderPreCommitConfig serializes the default hook configuration.
func RenderPreCommitConfig() ([]byte, error) {
	data, err := yaml.Marshal(defaultPreCommitConfig())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render pre-commit config")
	}
	return data, nil
}
