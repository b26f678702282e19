// Package cli implements the changelog-split command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	clierrors "github.com/ariel-frischer/changelog-split/internal/errors"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Running the root command without a
// subcommand performs the split.
func NewRootCmd() *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "changelog-split",
		Short: "Split a changelog into one file per release",
		Long: `Split a changelog into one markdown file per release entry.

Every "## <version> (<date>)" heading in the changelog starts a new entry.
Each entry is written to <output>/<slug>.md with the front-matter a
documentation site needs:

  ---
  title: "<version>"
  createdAt: "<date at midnight>"
  slug: "<slug>"
  hidden: false
  ---

Headings without a parenthesised date (e.g. "## Unreleased") are skipped.
Dates that cannot be parsed fall back to the current time.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (CHANGELOG_SPLIT_*)
  3. Project config (.changelog-split.yml, .changelog-split.json or --config)
  4. Built-in defaults`,
		Example: `  # Split CHANGELOG.md into temp-changelogs/
  changelog-split

  # Choose the files explicitly
  changelog-split --input docs/CHANGELOG.md --output site/changelog

  # See what would be written
  changelog-split --dry-run

  # Fail instead of overwriting when two headings share a slug
  changelog-split --on-collision=error`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, flags)
		},
	}

	flags.register(cmd.Flags())
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &clierrors.CLIError{
			Category: clierrors.Argument,
			Message:  err.Error(),
			Usage:    c.UseLine(),
			Cause:    err,
		}
	})

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// noArgs rejects positional arguments with an argument error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return clierrors.NewArgumentError(
		fmt.Sprintf("unexpected argument %q", args[0]),
		"Use --input to choose the changelog file",
	)
}

// Execute runs the CLI and prints any error to stderr. Ctrl-C cancels the
// run after the file being written.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return ExecuteContext(ctx, NewRootCmd(), os.Args[1:])
}

// ExecuteContext runs cmd with args and reports errors on cmd's error stream.
func ExecuteContext(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.FprintError(cmd.ErrOrStderr(), cliErr)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
