package changelog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatterDelimiter opens and closes the front-matter block.
const FrontMatterDelimiter = "---"

// RenderOptions controls how an entry is rendered to a file.
type RenderOptions struct {
	// Escape renders values as YAML double-quoted scalars, so quote
	// characters and backslashes in a value keep the block valid. When false
	// values are wrapped in double quotes verbatim.
	Escape bool
}

// Render writes the front-matter block, a blank line, the body and a
// trailing newline for e. Field order is fixed: title, createdAt, slug, hidden.
func Render(e Entry, w io.Writer, opts RenderOptions) error {
	fields := []struct {
		key   string
		value string
	}{
		{"title", e.Version},
		{"createdAt", e.CreatedAt},
		{"slug", e.Slug},
	}

	if _, err := fmt.Fprintln(w, FrontMatterDelimiter); err != nil {
		return err
	}
	for _, f := range fields {
		value, err := quote(f.value, opts.Escape)
		if err != nil {
			return fmt.Errorf("quoting %s: %w", f.key, err)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.key, value); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "hidden: false\n%s\n\n%s\n", FrontMatterDelimiter, e.Body); err != nil {
		return err
	}

	return nil
}

// RenderString is a convenience function that renders to a string.
func RenderString(e Entry, opts RenderOptions) (string, error) {
	var b strings.Builder
	if err := Render(e, &b, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

func quote(value string, escape bool) (string, error) {
	if !escape {
		return `"` + value + `"`, nil
	}

	node := yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: value}
	out, err := yaml.Marshal(&node)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
