package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/changelog-split/internal/changelog"
	"github.com/ariel-frischer/changelog-split/internal/config"
	clierrors "github.com/ariel-frischer/changelog-split/internal/errors"
	"github.com/ariel-frischer/changelog-split/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// splitFlags holds the root command flags. Each flag maps to a config key
// and only overrides it when set on the command line.
type splitFlags struct {
	configPath        string
	inputPath         string
	outputDir         string
	extension         string
	timezone          string
	onCollision       string
	escapeFrontMatter bool
	logLevel          string
	logJSON           bool
	dryRun            bool
}

// flagConfigKeys maps flag names to the config keys they override.
var flagConfigKeys = map[string]string{
	"input":               "input_path",
	"output":              "output_dir",
	"extension":           "extension",
	"timezone":            "timezone",
	"on-collision":        "on_collision",
	"escape-front-matter": "escape_front_matter",
	"log-level":           "log_level",
}

func (f *splitFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file (default: .changelog-split.yml in the current directory)")
	fs.StringVarP(&f.inputPath, "input", "i", config.DefaultInputPath, "Changelog to split, relative to the current directory")
	fs.StringVarP(&f.outputDir, "output", "o", config.DefaultOutputDir, "Directory for the generated files, relative to the current directory")
	fs.StringVar(&f.extension, "extension", changelog.DefaultExtension, "Extension of the generated files")
	fs.StringVar(&f.timezone, "timezone", "Local", "Timezone for createdAt (IANA name or Local)")
	fs.StringVar(&f.onCollision, "on-collision", string(changelog.CollisionOverwrite), "Duplicate slug handling: "+strings.Join(changelog.CollisionPolicies(), ", "))
	fs.BoolVar(&f.escapeFrontMatter, "escape-front-matter", false, "Escape quotes in front-matter values")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&f.logJSON, "log-json", false, "Log as JSON lines")
	fs.BoolVar(&f.dryRun, "dry-run", false, "Parse and report without writing files")
}

// overrides returns config values for the flags set on the command line.
func (f *splitFlags) overrides(fs *pflag.FlagSet) map[string]interface{} {
	values := map[string]interface{}{
		"input_path":          f.inputPath,
		"output_dir":          f.outputDir,
		"extension":           f.extension,
		"timezone":            f.timezone,
		"on_collision":        f.onCollision,
		"escape_front_matter": f.escapeFrontMatter,
		"log_level":           f.logLevel,
	}

	overrides := make(map[string]interface{})
	for flagName, key := range flagConfigKeys {
		if fs.Changed(flagName) {
			overrides[key] = values[key]
		}
	}
	return overrides
}

func (f *splitFlags) loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ConfigPath: f.configPath,
		Overrides:  f.overrides(cmd.Flags()),
	})
	if err != nil {
		return nil, clierrors.InvalidConfig(err)
	}
	return cfg, nil
}

// runSplit splits the configured changelog and prints a summary.
func runSplit(cmd *cobra.Command, f *splitFlags) error {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return clierrors.InvalidConfig(err)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Output: cmd.ErrOrStderr(),
		JSON:   f.logJSON,
	})

	report, err := changelog.Run(cmd.Context(), changelog.Options{
		InputPath: cfg.InputPath,
		OutputDir: cfg.OutputDir,
		Extension: cfg.Extension,
		Collision: changelog.CollisionPolicy(cfg.OnCollision),
		Render:    changelog.RenderOptions{Escape: cfg.EscapeFrontMatter},
		DryRun:    f.dryRun,
		Dates:     changelog.DateResolver{Location: loc},
		Logger:    logger,
	})
	if err != nil {
		return mapRunError(err)
	}

	printSummary(cmd.OutOrStdout(), report, f.dryRun)
	return nil
}

// mapRunError converts a fatal run error into a categorised CLI error.
func mapRunError(err error) error {
	switch {
	case errors.Is(err, changelog.ErrInputUnreadable):
		return clierrors.InputUnreadable(err)
	case errors.Is(err, changelog.ErrOutputDir):
		return clierrors.OutputDirUnavailable(err)
	case errors.Is(err, changelog.ErrSlugCollision):
		return clierrors.SlugCollision(err)
	case errors.Is(err, changelog.ErrWrite):
		return clierrors.WriteFailed(err)
	default:
		return err
	}
}

func printSummary(w io.Writer, report *changelog.Report, dryRun bool) {
	verb := "Wrote"
	if dryRun {
		verb = "Would write"
	}
	fmt.Fprintf(w, "%s %d %s", verb, len(report.Written), plural(len(report.Written), "file", "files"))
	if n := len(report.Skipped); n > 0 {
		fmt.Fprintf(w, ", skipped %d %s", n, plural(n, "heading", "headings"))
	}
	if n := len(report.Collisions); n > 0 {
		fmt.Fprintf(w, ", %d duplicate %s", n, plural(n, "slug", "slugs"))
	}
	fmt.Fprintln(w)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
