package changelog

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultExtension is appended to the slug to form the output file name.
const DefaultExtension = ".md"

// Emitter writes rendered entries into an output directory.
type Emitter struct {
	fs        afero.Fs
	dir       string
	extension string
	render    RenderOptions
}

// NewEmitter returns an Emitter writing to dir on fs. An empty extension
// means DefaultExtension.
func NewEmitter(fs afero.Fs, dir, extension string, render RenderOptions) *Emitter {
	if extension == "" {
		extension = DefaultExtension
	}
	return &Emitter{fs: fs, dir: dir, extension: extension, render: render}
}

// Prepare creates the output directory and any missing parents.
// It is safe to call when the directory already exists.
func (e *Emitter) Prepare() error {
	if err := e.fs.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", e.dir, err)
	}
	return nil
}

// Path returns the file an entry with the given slug is written to.
func (e *Emitter) Path(slug string) string {
	return filepath.Join(e.dir, slug+e.extension)
}

// Emit renders entry and writes it to Path(entry.Slug), replacing any
// existing file. It returns the written path.
func (e *Emitter) Emit(entry Entry) (string, error) {
	var buf bytes.Buffer
	if err := Render(entry, &buf, e.render); err != nil {
		return "", fmt.Errorf("rendering %s: %w", entry.Slug, err)
	}

	path := e.Path(entry.Slug)
	if err := afero.WriteFile(e.fs, path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
