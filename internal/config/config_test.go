package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Search.ObjectReferences)
	assert.Empty(t, cfg.Search.Include)
	assert.Empty(t, cfg.Presets)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	writeFile(t, path, `search:
  include:
    - "Assets/Characters/**/*.anim"
  exclude:
    - "**/Legacy/**"
  object_references: true
output:
  show_asset: true
presets:
  - "*Color*"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Assets/Characters/**/*.anim"}, cfg.Search.Include)
	assert.Equal(t, []string{"**/Legacy/**"}, cfg.Search.Exclude)
	assert.True(t, cfg.Search.ObjectReferences)
	assert.True(t, cfg.Output.ShowAsset)
	assert.Equal(t, []string{"*Color*"}, cfg.Presets)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	writeFile(t, path, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	unknown := filepath.Join(dir, "unknown.yaml")
	writeFile(t, unknown, "serch:\n  include: []\n")

	_, err = Load(unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "log: [unclosed\n")

	_, err = Load(invalid)
	require.Error(t, err)
}

func TestLoad_InvalidGlob(t *testing.T) {
	dir := t.TempDir()

	badExclude := filepath.Join(dir, "exclude.yaml")
	writeFile(t, badExclude, "search:\n  exclude:\n    - \"Assets/[Legacy/**\"\n")

	_, err := Load(badExclude)
	require.ErrorIs(t, err, ErrInvalidGlob)
	assert.Contains(t, err.Error(), "search.exclude")
	assert.Contains(t, err.Error(), `"Assets/[Legacy/**"`)

	badInclude := filepath.Join(dir, "include.yaml")
	writeFile(t, badInclude, "search:\n  include:\n    - \"Assets/[ab\"\n")

	_, err = Load(badInclude)
	require.ErrorIs(t, err, ErrInvalidGlob)
	assert.Contains(t, err.Error(), "search.include")
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	cfg.Search.Include = []string{"./Assets/**/*.anim", " "}
	cfg.Search.Exclude = []string{"Assets/Legacy/**"}

	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()

	cfg.ApplyEnv(lookupFrom(map[string]string{
		EnvLogLevel: " debug ",
		EnvFormat:   "json",
	}))

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)

	cfg.ApplyEnv(lookupFrom(map[string]string{EnvFormat: "  "}))
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadProject_FileThenEnv(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFile), "log:\n  level: warn\noutput:\n  format: yaml\n")

	t.Setenv(EnvFormat, "json")

	cfg, err := LoadProject(root, "")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadProject_DotEnv(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, EnvFile), EnvLogLevel+"=trace\n")

	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	cfg, err := LoadProject(root, "")
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestLoadProject_ExplicitPath(t *testing.T) {
	root := t.TempDir()
	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, explicit, "presets: [\"m_IsActive\"]\n")

	cfg, err := LoadProject(root, explicit)
	require.NoError(t, err)
	assert.Equal(t, []string{"m_IsActive"}, cfg.Presets)

	_, err = LoadProject(root, filepath.Join(root, "nope.yaml"))
	require.Error(t, err)
}

func TestLoadProject_NoFiles(t *testing.T) {
	cfg, err := LoadProject(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, Default().Search, cfg.Search)
}

func TestProjectDir(t *testing.T) {
	env := lookupFrom(map[string]string{EnvProject: "/env/project"})

	assert.Equal(t, "/flag", ProjectDir("/flag", env))
	assert.Equal(t, "/env/project", ProjectDir("", env))
	assert.Equal(t, ".", ProjectDir("", lookupFrom(nil)))
}
