package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/curvecheck/internal/fs"
)

func TestRootCmd(t *testing.T) {
	t.Parallel()

	setup := func() (*slog.LevelVar, *cobra.Command) {
		mgr := &MockManager{}
		lazy := &LazyManager{inner: mgr}
		logLevel := &slog.LevelVar{}
		var stdout, stderr bytes.Buffer
		rootCmd := NewRootCmd(lazy, logLevel, &stdout, &stderr, fs.MapEnvProvider{})
		return logLevel, rootCmd
	}

	t.Run("execute help", func(t *testing.T) {
		t.Parallel()
		_, rootCmd := setup()
		rootCmd.SetArgs([]string{"--help"})
		require.NoError(t, rootCmd.Execute())
	})

	t.Run("test version flag", func(t *testing.T) {
		t.Parallel()
		_, rootCmd := setup()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"--version"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), Version)
	})

	t.Run("test debug flag", func(t *testing.T) {
		t.Parallel()
		logLevel, rootCmd := setup()
		rootCmd.SetArgs([]string{"--debug"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, slog.LevelDebug, logLevel.Level())
	})

	t.Run("test root command execution", func(t *testing.T) {
		t.Parallel()
		_, rootCmd := setup()
		rootCmd.SetArgs([]string{})
		require.NoError(t, rootCmd.Execute())
	})

	t.Run("test completion subcommand skips initialisation", func(t *testing.T) {
		t.Parallel()
		lazy := &LazyManager{} // Empty lazy manager, no inner manager
		var stdout, stderr bytes.Buffer
		rootCmd := NewRootCmd(lazy, &slog.LevelVar{}, &stdout, &stderr, fs.MapEnvProvider{})

		rootCmd.SetArgs([]string{"completion", "zsh"})
		require.NoError(t, rootCmd.Execute())
		assert.False(t, lazy.HasInner(), "Manager should not have been initialised")
	})

	t.Run("test classes skips initialisation", func(t *testing.T) {
		t.Parallel()
		lazy := &LazyManager{}
		var stdout, stderr bytes.Buffer
		rootCmd := NewRootCmd(lazy, &slog.LevelVar{}, &stdout, &stderr, fs.MapEnvProvider{})
		rootCmd.SetOut(&stdout)

		rootCmd.SetArgs([]string{"classes"})
		require.NoError(t, rootCmd.Execute())
		assert.False(t, lazy.HasInner())
		assert.Contains(t, stdout.String(), "rate-helper")
	})

	t.Run("test alternate flag spellings", func(t *testing.T) {
		t.Parallel()
		variants := []string{"--nocolor", "--noColor", "--noColour", "-c"}
		for _, variant := range variants {
			t.Run(variant, func(t *testing.T) {
				t.Parallel()
				_, rootCmd := setup()
				rootCmd.SetArgs([]string{"help", variant})
				require.NoError(t, rootCmd.Execute(), "Flag %s should be recognised", variant)
			})
		}
	})

	t.Run("subcommands are registered", func(t *testing.T) {
		t.Parallel()
		_, rootCmd := setup()
		for _, name := range []string{"validate", "render-schema", "classes"} {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		}
	})
}

func TestIsCompletionCommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "root"}
	completion := &cobra.Command{Use: "completion"}
	bash := &cobra.Command{Use: "bash"}
	root.AddCommand(completion)
	completion.AddCommand(bash)

	assert.True(t, isCompletionCommand(bash))
	assert.True(t, isCompletionCommand(completion))
	assert.False(t, isCompletionCommand(root))
}
