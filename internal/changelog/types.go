package changelog

import (
	"fmt"
	"strings"
	"time"
)

// Chunk is one heading-delimited region of a changelog document.
// Heading is the marker line as it appears in the source; Lines holds
// every following line up to the next heading or the end of the document.
type Chunk struct {
	Heading string
	Lines   []string
	// LineNumber is the 1-based position of Heading in the document.
	LineNumber int
}

// Body returns the chunk content without its heading, trimmed of
// surrounding whitespace. Blank lines inside the body are preserved.
func (c Chunk) Body() string {
	return strings.TrimSpace(strings.Join(c.Lines, "\n"))
}

// Entry is the parsed form of a single release chunk.
type Entry struct {
	// Heading is the heading text with the marker removed, e.g. "6.6.1 (Dec 20, 2024)".
	Heading string
	// Version is the text before the first opening parenthesis, trimmed.
	// It is opaque; no semantic versioning rules are applied.
	Version string
	// RawDate is the text inside the first pair of parentheses.
	RawDate string
	// Date is the resolved creation time: midnight of RawDate, or the
	// wall-clock time of the run when RawDate could not be parsed.
	Date time.Time
	// DateFallback reports whether Date came from the clock.
	DateFallback bool
	// CreatedAt is Date rendered with CreatedAtLayout.
	CreatedAt string
	Slug      string
	Body      string
}

// HeadingError reports a chunk whose heading could not be parsed into an
// entry. It is recoverable: the chunk is skipped and the run continues.
type HeadingError struct {
	Heading    string
	LineNumber int
	Reason     string
}

func (e *HeadingError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("line %d: could not parse heading %q: %s", e.LineNumber, e.Heading, e.Reason)
	}
	return fmt.Sprintf("could not parse heading %q: %s", e.Heading, e.Reason)
}
