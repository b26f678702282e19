package changelog

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// CreatedAtLayout is the fixed format of the createdAt front-matter field,
// e.g. "Fri Dec 20 2024 00:00:00 GMT+0000 (UTC)".
const CreatedAtLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// septRegexp matches the "Sept" abbreviation, which dateparse does not know.
var septRegexp = regexp.MustCompile(`(?i)\bsept\b`)

// DateResolver turns the parenthesised heading text into a creation time.
type DateResolver struct {
	// Location is used for parsed dates and for the fallback clock.
	// Nil means time.Local.
	Location *time.Location
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// ParseDate interprets raw as a calendar date and returns midnight of that
// date in the resolver's location.
func (r DateResolver) ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if !strings.ContainsFunc(raw, unicode.IsDigit) {
		return time.Time{}, fmt.Errorf("date %q has no digits", raw)
	}

	loc := r.location()
	t, err := dateparse.ParseIn(septRegexp.ReplaceAllString(raw, "Sep"), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", raw, err)
	}
	// dateparse fills a missing year with 0 for fragments like "1:" or "3/".
	if t.Year() == 0 {
		return time.Time{}, fmt.Errorf("date %q has no year", raw)
	}

	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// Resolve returns the parsed date, or the current time when raw is not a
// recognisable date. The boolean reports whether the fallback was used.
func (r DateResolver) Resolve(raw string) (time.Time, bool) {
	t, err := r.ParseDate(raw)
	if err != nil {
		return r.now(), true
	}
	return t, false
}

// FormatCreatedAt renders t with CreatedAtLayout.
func FormatCreatedAt(t time.Time) string {
	return t.Format(CreatedAtLayout)
}

func (r DateResolver) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

func (r DateResolver) now() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return now().In(r.location())
}
