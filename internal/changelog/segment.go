package changelog

import (
	"iter"
	"strings"
	"unicode"
)

// HeadingMarker is the line prefix that starts a new release entry.
const HeadingMarker = "##"

// Chunks yields the heading-delimited chunks of doc in document order.
// Text before the first heading is discarded. A line starts a chunk when it
// begins with HeadingMarker followed by whitespace, so "### Fixed" and
// "##Foo" stay inside the current chunk.
func Chunks(doc string) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		lines := strings.Split(doc, "\n")

		var current *Chunk
		for i, line := range lines {
			terminated := i < len(lines)-1
			if isHeading(line, terminated) {
				if current != nil && !yield(*current) {
					return
				}
				current = &Chunk{Heading: line, LineNumber: i + 1}
				continue
			}
			if current != nil {
				current.Lines = append(current.Lines, line)
			}
		}

		if current != nil {
			yield(*current)
		}
	}
}

// Segment collects Chunks(doc) into a slice.
func Segment(doc string) []Chunk {
	var chunks []Chunk
	for c := range Chunks(doc) {
		chunks = append(chunks, c)
	}
	return chunks
}

// isHeading reports whether line opens a new chunk. A bare "##" counts only
// when a newline follows it, since the newline is the whitespace after the marker.
func isHeading(line string, terminated bool) bool {
	rest, ok := strings.CutPrefix(line, HeadingMarker)
	if !ok {
		return false
	}
	if rest == "" {
		return terminated
	}
	r := []rune(rest)[0]
	return unicode.IsSpace(r)
}
