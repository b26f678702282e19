package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// style colours the parts of a formatted error.
type style struct {
	label    func(a ...interface{}) string
	category func(a ...interface{}) string
	message  func(a ...interface{}) string
	heading  func(a ...interface{}) string
	usage    func(a ...interface{}) string
	bullet   func(a ...interface{}) string
}

var plainStyle = style{
	label:    fmt.Sprint,
	category: fmt.Sprint,
	message:  fmt.Sprint,
	heading:  fmt.Sprint,
	usage:    fmt.Sprint,
	bullet:   fmt.Sprint,
}

var colorStyle = style{
	label:    color.New(color.FgRed, color.Bold).SprintFunc(),
	category: color.New(color.FgYellow).SprintFunc(),
	message:  color.New(color.FgRed).SprintFunc(),
	heading:  color.New(color.FgGreen, color.Bold).SprintFunc(),
	usage:    color.New(color.FgCyan).SprintFunc(),
	bullet:   color.New(color.FgGreen).SprintFunc(),
}

// FormatError formats a CLIError, with colours unless color.NoColor is set.
func FormatError(err *CLIError) string {
	if color.NoColor {
		return FormatErrorPlain(err)
	}
	return formatError(err, colorStyle)
}

// FormatErrorPlain formats a CLIError without colours.
func FormatErrorPlain(err *CLIError) string {
	return formatError(err, plainStyle)
}

// formatError renders:
//
//	Error [<category>]: <message>
//
//	Usage: <usage>
//
//	To fix this:
//	  • <step>
func formatError(err *CLIError, s style) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]: %s\n", s.label("Error"), s.category(err.Category.String()), s.message(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", s.heading("Usage: "), s.usage(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", s.heading("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", s.bullet("•"), step)
		}
	}

	return sb.String()
}

// FprintError writes err to w. Colours are used only when w is a terminal.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	if isTerminal(w) {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
