package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults tests that defaults are applied when no config
// sources are present.
func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist-so-skip-search.yaml"), nil)
	require.Error(t, err, "explicit missing config file should error")

	ResetConfig()
	// Run from a temp dir so a stray numo.yaml in CWD can't interfere
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	cfg, err = LoadConfig("", nil)
	require.NoError(t, err)

	assert.False(t, cfg.NoHistory)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, DefaultServePort, cfg.Serve.Port)
	assert.NotEmpty(t, cfg.HistoryPath)
}

// TestLoadConfig_File tests loading values from a yaml config file.
func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "numo.yaml")
	cfgContent := `history_path: /tmp/custom-history.db
http_timeout: 30
output: json
serve:
  port: 9000
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0600))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom-history.db", cfg.HistoryPath)
	assert.Equal(t, 30, cfg.HTTPTimeout)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 9000, cfg.Serve.Port)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "numo.yaml")
	cfgContent := `output: json
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0600))

	require.NoError(t, os.Setenv("NUMO_OUTPUT", "table"))
	defer func() { _ = os.Unsetenv("NUMO_OUTPUT") }()

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.OutputFormat, "env var should override config file")
}

// TestLoadConfig_EnvServePort tests the nested serve.port env var mapping.
func TestLoadConfig_EnvServePort(t *testing.T) {
	ResetConfig()

	require.NoError(t, os.Setenv("NUMO_SERVE_PORT", "7777"))
	defer func() { _ = os.Unsetenv("NUMO_SERVE_PORT") }()

	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Serve.Port)
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "numo.yaml")
	cfgContent := `output: json
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0600))

	require.NoError(t, os.Setenv("NUMO_OUTPUT", "table"))
	defer func() { _ = os.Unsetenv("NUMO_OUTPUT") }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")
	require.NoError(t, flags.Set("output", "csv"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.OutputFormat, "flag value should override config file and env var")
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "numo.yaml")
	cfgContent := `output: json
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0600))

	require.NoError(t, os.Setenv("NUMO_OUTPUT", "table"))
	defer func() { _ = os.Unsetenv("NUMO_OUTPUT") }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")
	// Note: not calling flags.Set(), so Changed is false

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.OutputFormat, "env var should be used when flag is not set")
}

// TestLoadConfig_PortFlagMapping tests that --port maps to serve.port.
func TestLoadConfig_PortFlagMapping(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", DefaultServePort, "listen port")
	require.NoError(t, flags.Set("port", "8123"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Serve.Port)
}

// TestLoadConfig_KebabCaseFlags tests the kebab-case to snake_case key transform.
func TestLoadConfig_KebabCaseFlags(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("no-history", false, "disable history")
	flags.String("history-path", "", "history database path")
	require.NoError(t, flags.Set("no-history", "true"))
	require.NoError(t, flags.Set("history-path", "/tmp/flags.db"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.True(t, cfg.NoHistory)
	assert.Equal(t, "/tmp/flags.db", cfg.HistoryPath)
}

// TestGetCurrentConfig tests that the loaded config is stored for later access.
func TestGetCurrentConfig(t *testing.T) {
	ResetConfig()
	assert.Nil(t, GetCurrentConfig())

	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Same(t, cfg, GetCurrentConfig())
}

// TestFindConfigFile tests config file discovery in the working directory.
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	t.Run("explicit path wins", func(t *testing.T) {
		assert.Equal(t, "/some/explicit.yaml", findConfigFile("/some/explicit.yaml"))
	})

	t.Run("prefers numo.yaml over numo.yml", func(t *testing.T) {
		require.NoError(t, os.WriteFile("numo.yaml", []byte("output: plain\n"), 0600))
		require.NoError(t, os.WriteFile("numo.yml", []byte("output: json\n"), 0600))
		defer func() {
			_ = os.Remove("numo.yaml")
			_ = os.Remove("numo.yml")
		}()
		assert.Equal(t, "numo.yaml", findConfigFile(""))
	})
}
