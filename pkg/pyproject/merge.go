// Package pyproject appends tool configuration sections to a project's
// pyproject.toml. Sections already present are left untouched, so the
// operation is idempotent and never clobbers user edits.
package pyproject

import (
	_ "embed"
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/pystack-sh/pystack/pkg/errors"
	"github.com/pystack-sh/pystack/pkg/logging"
	"github.com/pystack-sh/pystack/pkg/types"
)

//go:embed embedded/ruff.toml
var ruffFragment []byte

//go:embed embedded/mypy.toml
var mypyFragment []byte

//go:embed embedded/pytest.toml
var pytestFragment []byte

// Section is one appendable pyproject.toml fragment, addressed by the
// dotted table path whose presence makes the fragment redundant.
type Section struct {
	// Table is the dotted table path, e.g. "tool.ruff".
	Table string

	// Fragment is the raw TOML text appended when the table is absent.
	// Raw text rather than a marshaled struct so comments survive.
	Fragment []byte
}

// Sections returns the fragments pystack manages, in append order.
func Sections() []Section {
	return []Section{
		{Table: "tool.ruff", Fragment: ruffFragment},
		{Table: "tool.mypy", Fragment: mypyFragment},
		{Table: "tool.pytest.ini_options", Fragment: pytestFragment},
	}
}

// MergeResult reports which sections a merge appended.
type MergeResult struct {
	// Path is the pyproject.toml path that was (or would be) updated.
	Path string

	// Added lists the table paths whose fragments were appended.
	Added []string

	// Simulated is true for dry runs.
	Simulated bool
}

// Merger appends missing tool sections to pyproject.toml.
type Merger struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewMerger creates a merger bound to the given filesystem.
func NewMerger(fsys types.FS) *Merger {
	return &Merger{
		fs:     fsys,
		logger: logging.GetLogger("pyproject"),
	}
}

// Merge ensures every managed section exists in the pyproject.toml at
// path. A missing file is treated as empty (poetry init has not run
// yet) and created. The rewrite is a whole-file atomic write.
func (m *Merger) Merge(path string, mode types.RunMode) (MergeResult, error) {
	result := MergeResult{Path: path, Simulated: mode.DryRun}

	content, err := m.fs.ReadFile(path)
	if err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return result, errors.Wrapf(err, errors.ErrFileRead,
				"cannot read %s", path)
		}
		content = nil
	}

	present, err := presentTables(content)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrPyprojectParse,
			"cannot parse %s", path)
	}

	var appended []byte
	for _, section := range Sections() {
		if present[section.Table] {
			continue
		}
		appended = append(appended, section.Fragment...)
		result.Added = append(result.Added, section.Table)
	}

	if len(appended) == 0 {
		m.logger.Debug().Str("path", path).Msg("All tool sections already present")
		return result, nil
	}

	if mode.DryRun {
		m.logger.Info().
			Str("path", path).
			Strs("sections", result.Added).
			Msg("Dry run, would append tool sections")
		return result, nil
	}

	updated := append(content, appended...)
	if err := m.fs.WriteFile(path, updated, 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite,
			"cannot write %s", path)
	}

	m.logger.Info().
		Str("path", path).
		Strs("sections", result.Added).
		Msg("Appended tool sections")
	return result, nil
}

// presentTables parses the TOML document and reports every managed
// table path that already exists. Parsing, not substring matching, so
// commented-out sections do not count as present.
func presentTables(content []byte) (map[string]bool, error) {
	present := make(map[string]bool)
	if len(content) == 0 {
		return present, nil
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	for _, section := range Sections() {
		if hasTable(doc, strings.Split(section.Table, ".")) {
			present[section.Table] = true
		}
	}
	return present, nil
}

func hasTable(doc map[string]interface{}, path []string) bool {
	node := doc
	for i, key := range path {
		value, ok := node[key]
		if !ok {
			return false
		}
		if i == len(path)-1 {
			return true
		}
		node, ok = value.(map[string]interface{})
		if !ok {
			return false
		}
	}
	return false
}
