package artifacts

import (
	_ "embed"
	"path/filepath"

	"github.com/pystack-sh/pystack/pkg/errors"
	"github.com/pystack-sh/pystack/pkg/types"
)

// Artifact names, stable identifiers used in logs, reports and the
// render command.
const (
	NamePreCommit  = "pre-commit"
	NameDependabot = "dependabot"
	NameSecurity   = "security-policy"
)

// Target paths relative to the project root.
const (
	PreCommitPath  = ".pre-commit-config.yaml"
	DependabotPath = ".github/dependabot.yml"
	SecurityPath   = "SECURITY.md"
)

//go:embed embedded/security.md
var securityPolicy []byte

// Names lists the catalog artifact names in materialization order.
func Names() []string {
	return []string{NamePreCommit, NameDependabot, NameSecurity}
}

// Render returns the desired content for a single named artifact.
func Render(name string) ([]byte, error) {
	switch name {
	case NamePreCommit:
		return RenderPreCommitConfig()
	case NameDependabot:
		return RenderDependabotConfig()
	case NameSecurity:
		return securityPolicy, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown artifact %q", name)
	}
}

// Catalog assembles the full artifact list with paths resolved against
// the project root.
func Catalog(projectDir string) ([]types.ArtifactSpec, error) {
	specs := make([]types.ArtifactSpec, 0, len(Names()))
	paths := map[string]string{
		NamePreCommit:  PreCommitPath,
		NameDependabot: DependabotPath,
		NameSecurity:   SecurityPath,
	}

	for _, name := range Names() {
		content, err := Render(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, types.ArtifactSpec{
			Name:    name,
			Path:    filepath.Join(projectDir, paths[name]),
			Content: content,
			Perm:    0644,
		})
	}
	return specs, nil
}
