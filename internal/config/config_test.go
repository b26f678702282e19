package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir moves the test into a fresh directory so no project config is found.
func inEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, &Configuration{
		InputPath:         "CHANGELOG.md",
		OutputDir:         "temp-changelogs",
		Extension:         ".md",
		Timezone:          "Local",
		OnCollision:       "overwrite",
		EscapeFrontMatter: false,
		LogLevel:          "info",
	}, cfg)
}

func TestLoad_ConfigFiles(t *testing.T) {
	tests := map[string]struct {
		name    string
		content string
	}{
		"yaml": {
			name: "custom.yml",
			content: `input_path: docs/CHANGES.md
output_dir: site/changelog
on_collision: warn
escape_front_matter: true
timezone: UTC
`,
		},
		"json": {
			name: "custom.json",
			content: `{
  "input_path": "docs/CHANGES.md",
  "output_dir": "site/changelog",
  "on_collision": "warn",
  "escape_front_matter": true,
  "timezone": "UTC"
}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := inEmptyDir(t)
			path := filepath.Join(dir, tt.name)
			writeFile(t, path, tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, "docs/CHANGES.md", cfg.InputPath)
			assert.Equal(t, "site/changelog", cfg.OutputDir)
			assert.Equal(t, "warn", cfg.OnCollision)
			assert.True(t, cfg.EscapeFrontMatter)
			assert.Equal(t, "UTC", cfg.Timezone)
			assert.Equal(t, ".md", cfg.Extension, "unset keys keep defaults")
		})
	}
}

func TestLoad_DiscoversProjectConfig(t *testing.T) {
	dir := inEmptyDir(t)
	writeFile(t, filepath.Join(dir, ".changelog-split.yml"), "output_dir: from-project\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-project", cfg.OutputDir)
}

func TestLoad_YAMLPreferredOverJSON(t *testing.T) {
	dir := inEmptyDir(t)
	writeFile(t, filepath.Join(dir, ".changelog-split.yml"), "output_dir: from-yaml\n")
	writeFile(t, filepath.Join(dir, ".changelog-split.json"), `{"output_dir": "from-json"}`)

	assert.Equal(t, ".changelog-split.yml", FindProjectConfig())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.OutputDir)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := inEmptyDir(t)
	writeFile(t, filepath.Join(dir, ".changelog-split.yml"), "output_dir: from-project\nlog_level: warn\n")
	t.Setenv("CHANGELOG_SPLIT_OUTPUT_DIR", "from-env")
	t.Setenv("CHANGELOG_SPLIT_ESCAPE_FRONT_MATTER", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir)
	assert.True(t, cfg.EscapeFrontMatter)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadWithOptions_OverridesWin(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("CHANGELOG_SPLIT_INPUT_PATH", "from-env.md")

	cfg, err := LoadWithOptions(LoadOptions{
		Overrides: map[string]interface{}{
			"input_path": "from-flag.md",
			"log_level":  "debug",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "from-flag.md", cfg.InputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]struct {
		content   string
		wantField string
		wantMsg   string
	}{
		"unknown collision policy": {
			content:   "on_collision: rename\n",
			wantField: "on_collision",
			wantMsg:   "must be one of: overwrite, warn, error",
		},
		"unknown log level": {
			content:   "log_level: verbose\n",
			wantField: "log_level",
			wantMsg:   "must be one of: debug, info, warn, error",
		},
		"extension without dot": {
			content:   "extension: md\n",
			wantField: "extension",
			wantMsg:   `must start with "."`,
		},
		"empty output dir": {
			content:   "output_dir: \"\"\n",
			wantField: "output_dir",
			wantMsg:   "is required",
		},
		"unknown timezone": {
			content:   "timezone: Mars/Olympus_Mons\n",
			wantField: "timezone",
			wantMsg:   `unknown timezone "Mars/Olympus_Mons"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := inEmptyDir(t)
			path := filepath.Join(dir, "config.yml")
			writeFile(t, path, tt.content)

			_, err := Load(path)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantMsg, ve.Message)
			assert.Equal(t, path, ve.FilePath)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := inEmptyDir(t)
	path := filepath.Join(dir, "config.yml")
	writeFile(t, path, "output_dir: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	dir := inEmptyDir(t)

	_, err := Load(filepath.Join(dir, "nope.yml"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "config file not found")
}

func TestConfiguration_Location(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		timezone string
		want     *time.Location
	}{
		"local":           {timezone: "Local", want: time.Local},
		"local lowercase": {timezone: "local", want: time.Local},
		"utc":             {timezone: "UTC", want: time.UTC},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			loc, err := (&Configuration{Timezone: tt.timezone}).Location()
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc)
		})
	}

	_, err := (&Configuration{Timezone: "Not/AZone"}).Location()
	assert.Error(t, err)
}

func TestCheckYAMLSyntax(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		data    string
		wantErr bool
	}{
		"empty":        {data: "", wantErr: false},
		"whitespace":   {data: "  \n\t\n", wantErr: false},
		"valid":        {data: "output_dir: out\n", wantErr: false},
		"unterminated": {data: "output_dir: \"out\n", wantErr: true},
		"unclosed":     {data: "output_dir: [a, b\n", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := CheckYAMLSyntax([]byte(tt.data), "test.yml")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "test.yml")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "output_dir", envTransform("CHANGELOG_SPLIT_OUTPUT_DIR"))
	assert.Equal(t, "escape_front_matter", envTransform("CHANGELOG_SPLIT_ESCAPE_FRONT_MATTER"))
}

func TestGetDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	t.Parallel()

	err := CheckYAMLSyntax([]byte(GetDefaultConfigTemplate()), "template")
	require.NoError(t, err)

	for key := range GetDefaults() {
		assert.Contains(t, GetDefaultConfigTemplate(), key+":", "template documents %s", key)
	}
}
