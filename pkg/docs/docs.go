// Package docs holds the embedded documentation topics for the docs
// command and renders them as styled markdown in the terminal.
package docs

import (
	"embed"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pystack-sh/pystack/pkg/errors"
)

//go:embed topics/*.md
var topicFS embed.FS

// Topics lists the available topic names, sorted.
func Topics() []string {
	entries, err := topicFS.ReadDir("topics")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Content returns the raw markdown for a topic.
func Content(topic string) (string, error) {
	data, err := topicFS.ReadFile("topics/" + topic + ".md")
	if err != nil {
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown topic %q, available: %s", topic, strings.Join(Topics(), ", "))
	}
	return string(data), nil
}

// Render returns a topic rendered for the terminal. When styled is
// false (piped output), the raw markdown is returned unchanged.
func Render(topic string, styled bool) (string, error) {
	content, err := Content(topic)
	if err != nil {
		return "", err
	}

	if !styled {
		return content, nil
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		// Fall back to plain text rather than failing the command.
		return content, nil
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content, nil
	}
	return rendered, nil
}
