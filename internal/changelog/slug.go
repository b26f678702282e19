package changelog

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// multiHyphenRegexp matches consecutive hyphens.
var multiHyphenRegexp = regexp.MustCompile(`-+`)

// Slugify converts heading text into a lowercase, ASCII, filesystem-safe slug.
// Non-ASCII letters are transliterated and every run of non-alphanumeric
// characters becomes a single hyphen.
//
// Examples:
//   - "6.6.1 (Dec 20, 2024)" -> "6-6-1-dec-20-2024"
//   - "2.0.0_rc1 (Jan 5, 2025)" -> "2-0-0-rc1-jan-5-2025"
//   - "Über Release (Mär 1, 2024)" -> "uber-release-mar-1-2024"
func Slugify(text string) string {
	s := slug.Make(text)

	// slug keeps underscores; fold them into the separator
	s = strings.ReplaceAll(s, "_", "-")
	s = multiHyphenRegexp.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
