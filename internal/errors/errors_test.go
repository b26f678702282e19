package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory_String(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {category: Argument, want: "Argument Error"},
		"configuration": {category: Configuration, want: "Configuration Error"},
		"prerequisite":  {category: Prerequisite, want: "Prerequisite Error"},
		"runtime":       {category: Runtime, want: "Runtime Error"},
		"unknown":       {category: ErrorCategory(99), want: "Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("open CHANGELOG.md: %w", fs.ErrNotExist)

	wrapped := Wrap(cause, Prerequisite, "check the path")
	require.NotNil(t, wrapped)
	assert.Equal(t, cause.Error(), wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, fs.ErrNotExist))

	withMsg := WrapWithMessage(cause, Runtime, "splitting failed")
	assert.Equal(t, "splitting failed: open CHANGELOG.md: file does not exist", withMsg.Error())
	assert.True(t, stderrors.Is(withMsg, fs.ErrNotExist))

	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "ignored"))
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	cliErr := New(Runtime, "boom")
	wrapped := fmt.Errorf("running: %w", cliErr)

	assert.Same(t, cliErr, AsCLIError(wrapped))
	assert.True(t, IsCLIError(wrapped))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
	assert.False(t, IsCLIError(nil))
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := InputUnreadable(fmt.Errorf("cannot read changelog CHANGELOG.md: %w", fs.ErrNotExist))
	got := FormatErrorPlain(err)

	want := "Error [Prerequisite Error]: cannot read changelog CHANGELOG.md: file does not exist\n" +
		"\n" +
		"To fix this:\n" +
		"  • Check that the file exists and is readable\n" +
		"  • Pass a different file with --input or set input_path in .changelog-split.yml\n"
	assert.Equal(t, want, got)
}

func TestFormatErrorPlain_Usage(t *testing.T) {
	t.Parallel()

	err := &CLIError{Category: Argument, Message: "unexpected argument", Usage: "changelog-split [flags]"}
	assert.Equal(t, "Error [Argument Error]: unexpected argument\n\nUsage: changelog-split [flags]\n", FormatErrorPlain(err))
	assert.Empty(t, FormatErrorPlain(nil))
	assert.Empty(t, FormatError(nil))
}

func TestFprintError_NonTerminalIsPlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := OutputDirUnavailable(fs.ErrPermission)
	FprintError(&buf, err)

	assert.Equal(t, FormatErrorPlain(err), buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")

	buf.Reset()
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestMessages_Categories(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("cause")
	tests := map[string]struct {
		err  *CLIError
		want ErrorCategory
	}{
		"input unreadable":   {err: InputUnreadable(cause), want: Prerequisite},
		"output unavailable": {err: OutputDirUnavailable(cause), want: Runtime},
		"write failed":       {err: WriteFailed(cause), want: Runtime},
		"slug collision":     {err: SlugCollision(cause), want: Runtime},
		"invalid config":     {err: InvalidConfig(cause), want: Configuration},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Category)
			assert.NotEmpty(t, tt.err.Remediation)
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}
