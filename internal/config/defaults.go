package config

// Default locations, relative to the project root.
const (
	DefaultInputPath = "CHANGELOG.md"
	DefaultOutputDir = "temp-changelogs"
)

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# changelog-split configuration
# Environment variables override this file: CHANGELOG_SPLIT_<KEY>, e.g. CHANGELOG_SPLIT_OUTPUT_DIR

input_path: CHANGELOG.md              # Changelog to split
output_dir: temp-changelogs           # One <slug><extension> file per release is written here
extension: .md                        # Output file extension

# Dates
timezone: Local                       # IANA zone for createdAt (e.g. UTC, Europe/Berlin) or Local

# Safety
on_collision: overwrite               # Duplicate slugs: overwrite | warn | error
escape_front_matter: false            # Escape quotes in front-matter values

# Output
log_level: info                       # debug | info | warn | error
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"input_path": DefaultInputPath,
		"output_dir": DefaultOutputDir,
		"extension":  ".md",
		"timezone":   "Local",
		// on_collision: last write wins unless the user opts into detection.
		"on_collision":        "overwrite",
		"escape_front_matter": false,
		"log_level":           "info",
	}
}
