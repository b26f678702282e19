package changelog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// CollisionPolicy decides what happens when two entries share a slug.
type CollisionPolicy string

const (
	// CollisionOverwrite lets the later entry replace the earlier file silently.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionWarn logs the duplicate and still overwrites.
	CollisionWarn CollisionPolicy = "warn"
	// CollisionError aborts the run before the duplicate is written.
	CollisionError CollisionPolicy = "error"
)

// CollisionPolicies lists the accepted policy names.
func CollisionPolicies() []string {
	return []string{string(CollisionOverwrite), string(CollisionWarn), string(CollisionError)}
}

var (
	// ErrInputUnreadable wraps failures to read the source document.
	ErrInputUnreadable = errors.New("cannot read changelog")
	// ErrOutputDir wraps failures to create the output directory.
	ErrOutputDir = errors.New("cannot prepare output directory")
	// ErrWrite wraps failures to write a single entry file.
	ErrWrite = errors.New("cannot write entry")
	// ErrSlugCollision is returned under CollisionError when a slug repeats.
	ErrSlugCollision = errors.New("duplicate slug")
)

// Logger receives progress and diagnostic messages. *log.Logger from
// charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

// Options configures a split run.
type Options struct {
	InputPath string
	OutputDir string
	// Extension of the generated files; empty means DefaultExtension.
	Extension string
	Collision CollisionPolicy
	Render    RenderOptions
	// DryRun parses and reports without touching the output directory.
	DryRun bool
	Dates  DateResolver
	// Fs is the filesystem for both input and output; nil means the OS.
	Fs     afero.Fs
	Logger Logger
}

// Report summarises a run.
type Report struct {
	// Written lists output paths in the order they were written
	// (or would have been, for a dry run). A repeated slug appears twice.
	Written []string
	// Skipped lists chunks whose heading could not be parsed.
	Skipped []*HeadingError
	// Collisions lists slugs that were produced more than once.
	Collisions []string
}

// Run reads the changelog at opts.InputPath, splits it into entries and
// writes one file per entry into opts.OutputDir.
//
// Unparsable headings are logged and skipped. Reading the input, creating
// the output directory and writing a file are fatal. The returned report is
// non-nil even when an error is returned.
func Run(ctx context.Context, opts Options) (*Report, error) {
	report := &Report{}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	data, err := afero.ReadFile(fs, opts.InputPath)
	if err != nil {
		return report, fmt.Errorf("%w %s: %w", ErrInputUnreadable, opts.InputPath, err)
	}

	emitter := NewEmitter(fs, opts.OutputDir, opts.Extension, opts.Render)
	if !opts.DryRun {
		if err := emitter.Prepare(); err != nil {
			return report, fmt.Errorf("%w: %w", ErrOutputDir, err)
		}
	}

	parser := &Parser{Dates: opts.Dates}
	seen := make(map[string]int)

	for chunk := range Chunks(string(data)) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		entry, err := parser.Parse(chunk)
		if err != nil {
			var headingErr *HeadingError
			if !errors.As(err, &headingErr) {
				return report, err
			}
			logger.Warn("Skipping entry, could not parse heading",
				"heading", headingErr.Heading, "line", headingErr.LineNumber)
			report.Skipped = append(report.Skipped, headingErr)
			continue
		}

		if entry.DateFallback {
			logger.Debug("Unrecognised date, using current time",
				"heading", entry.Heading, "date", entry.RawDate)
		}

		if firstLine, dup := seen[entry.Slug]; dup {
			report.Collisions = append(report.Collisions, entry.Slug)
			switch opts.Collision {
			case CollisionError:
				return report, fmt.Errorf("%w %q: line %d repeats line %d",
					ErrSlugCollision, entry.Slug, chunk.LineNumber, firstLine)
			case CollisionWarn:
				logger.Warn("Duplicate slug, overwriting earlier entry",
					"slug", entry.Slug, "line", chunk.LineNumber, "first", firstLine)
			}
		} else {
			seen[entry.Slug] = chunk.LineNumber
		}

		if opts.DryRun {
			path := emitter.Path(entry.Slug)
			logger.Info("Would create file", "file", path)
			report.Written = append(report.Written, path)
			continue
		}

		path, err := emitter.Emit(entry)
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		logger.Info("Created file", "file", path)
		report.Written = append(report.Written, path)
	}

	logger.Info(fmt.Sprintf("Done splitting %s into separate files.", filepath.Base(opts.InputPath)),
		"written", len(report.Written), "skipped", len(report.Skipped))

	return report, nil
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
