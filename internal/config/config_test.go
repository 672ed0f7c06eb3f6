package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/curvecheck/internal/fs"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path gives defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, OutputText, cfg.Output)
		assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
		assert.Equal(t, fs.DefaultExtensions, cfg.Extensions)
		assert.False(t, cfg.Strict)
		assert.Empty(t, cfg.Path)
	})

	t.Run("default content is valid", func(t *testing.T) {
		t.Parallel()
		p := writeConfig(t, DefaultConfigContent)
		cfg, err := Load(p)
		require.NoError(t, err)
		assert.Equal(t, p, cfg.Path)
		assert.Equal(t, []string{".json", ".yaml", ".yml"}, cfg.Extensions)
	})

	t.Run("settings are read", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(writeConfig(t, `
strict: true
output: json
continueOnError: true
workers: 3
extensions: [.YAML]
`))
		require.NoError(t, err)
		assert.True(t, cfg.Strict)
		assert.True(t, cfg.ContinueOnError)
		assert.Equal(t, OutputJSON, cfg.Output)
		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, []string{".yaml"}, cfg.Extensions)
	})

	t.Run("empty file gives defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, OutputText, cfg.Output)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		var target *MissingConfigError
		require.ErrorAs(t, err, &target)
	})

	configTests := []struct {
		name    string
		content string
		target  any
		errStr  string
	}{
		{
			name:    "invalid yaml",
			content: "invalid: yaml: :",
			target:  new(*InvalidYAMLError),
			errStr:  "is not a valid curvecheck configuration",
		},
		{
			name:    "unknown property",
			content: "stirct: true\n",
			target:  new(*InvalidYAMLError),
			errStr:  "stirct",
		},
		{
			name:    "wrong type",
			content: "workers: many\n",
			target:  new(*InvalidYAMLError),
		},
		{
			name:    "invalid output",
			content: "output: xml\n",
			target:  new(*InvalidOutputFormatError),
			errStr:  "property output has invalid value 'xml'",
		},
		{
			name:    "zero workers",
			content: "workers: 0\n",
			target:  new(*InvalidWorkersError),
			errStr:  "workers must be at least 1, got 0",
		},
		{
			name:    "extension without dot",
			content: "extensions: [json]\n",
			target:  new(*InvalidExtensionError),
		},
		{
			name:    "extension with path",
			content: "extensions: [.a/b]\n",
			target:  new(*InvalidExtensionError),
		},
		{
			name:    "no extensions",
			content: "extensions: []\n",
			target:  new(*MissingPropertyError),
			errStr:  "missing required property: extensions",
		},
	}

	for _, tt := range configTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.target)
			if tt.errStr != "" {
				assert.Contains(t, err.Error(), tt.errStr)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()

	t.Run("explicit path wins", func(t *testing.T) {
		t.Parallel()
		explicit := writeConfig(t, "")
		fromEnv := writeConfig(t, "")
		got, err := Locate(explicit, fs.MapEnvProvider{EnvConfigPath: fromEnv}, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, explicit, got)
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Parallel()
		fromEnv := writeConfig(t, "")
		got, err := Locate("", fs.MapEnvProvider{EnvConfigPath: fromEnv}, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, fromEnv, got)
	})

	t.Run("working directory", func(t *testing.T) {
		t.Parallel()
		local := writeConfig(t, "")
		got, err := Locate("", fs.MapEnvProvider{}, filepath.Dir(local))
		require.NoError(t, err)
		assert.Equal(t, local, got)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()
		got, err := Locate("", fs.MapEnvProvider{}, t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		t.Parallel()
		_, err := Locate(filepath.Join(t.TempDir(), "nope.yml"), fs.MapEnvProvider{}, t.TempDir())
		var target *MissingConfigError
		require.ErrorAs(t, err, &target)

		_, err = Locate("", fs.MapEnvProvider{EnvConfigPath: "/does/not/exist.yml"}, t.TempDir())
		require.ErrorAs(t, err, &target)
	})
}
