// Package testutil provides test utilities and helpers for changelog-split tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// SampleChangelog has a preamble, an undated heading, two dated releases and
// one release whose date cannot be parsed.
const SampleChangelog = `# Changelog

## Unreleased

- Work in progress

## 6.6.1 (Dec 20, 2024)

- Fixed a bug

## 6.6.0 (Nov 2, 2024)

- Streaming support

## 6.5.0 (not-a-date)

- Mystery release
`

// Project is an isolated working directory holding a changelog.
type Project struct {
	t   *testing.T
	Dir string
}

// NewProject creates a temp directory containing CHANGELOG.md with the given
// content. The test's working directory is not changed.
func NewProject(t *testing.T, changelog string) *Project {
	t.Helper()

	p := &Project{t: t, Dir: t.TempDir()}
	p.WriteFile("CHANGELOG.md", changelog)
	return p
}

// Path joins name onto the project directory.
func (p *Project) Path(name string) string {
	return filepath.Join(p.Dir, name)
}

// WriteFile writes content to name inside the project, creating parents.
func (p *Project) WriteFile(name, content string) {
	p.t.Helper()

	path := p.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		p.t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		p.t.Fatalf("writing %s: %v", name, err)
	}
}

// OutputFiles returns the file names in dir (relative to the project), sorted.
// A missing directory yields no names.
func (p *Project) OutputFiles(dir string) []string {
	p.t.Helper()

	entries, err := os.ReadDir(p.Path(dir))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		p.t.Fatalf("reading %s: %v", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the content of name inside the project.
func (p *Project) ReadFile(name string) string {
	p.t.Helper()

	data, err := os.ReadFile(p.Path(name))
	if err != nil {
		p.t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}
