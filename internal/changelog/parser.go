package changelog

import (
	"regexp"
	"strings"
)

var (
	// markerRegexp strips the heading marker and the whitespace after it.
	markerRegexp = regexp.MustCompile(`^` + regexp.QuoteMeta(HeadingMarker) + `\s*`)

	// headingRegexp captures the version text and the first parenthesised
	// group, e.g. "6.6.1 (Dec 20, 2024)" -> "6.6.1 ", "Dec 20, 2024".
	headingRegexp = regexp.MustCompile(`^([^()]+)\s*\(([^)]+)\)`)
)

// Parser turns chunks into entries.
type Parser struct {
	Dates DateResolver
}

// HeadingText returns the heading line with surrounding whitespace and the
// heading marker removed.
func HeadingText(line string) string {
	return markerRegexp.ReplaceAllString(strings.TrimSpace(line), "")
}

// ParseHeading splits heading text into its version and raw date parts.
// ok is false when the text has no "version (date)" shape.
func ParseHeading(text string) (version, rawDate string, ok bool) {
	m := headingRegexp.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// Parse builds an Entry from c. A heading without a parenthesised group, or
// one that slugs to nothing, yields a *HeadingError.
func (p *Parser) Parse(c Chunk) (Entry, error) {
	text := HeadingText(c.Heading)

	version, rawDate, ok := ParseHeading(text)
	if !ok {
		return Entry{}, &HeadingError{
			Heading:    strings.TrimSpace(c.Heading),
			LineNumber: c.LineNumber,
			Reason:     `expected "version (date)"`,
		}
	}

	slug := Slugify(text)
	if slug == "" {
		return Entry{}, &HeadingError{
			Heading:    strings.TrimSpace(c.Heading),
			LineNumber: c.LineNumber,
			Reason:     "heading has no characters usable in a slug",
		}
	}

	date, fallback := p.Dates.Resolve(rawDate)

	return Entry{
		Heading:      text,
		Version:      version,
		RawDate:      rawDate,
		Date:         date,
		DateFallback: fallback,
		CreatedAt:    FormatCreatedAt(date),
		Slug:         slug,
		Body:         c.Body(),
	}, nil
}
