package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyballingall/curvecheck/internal/config"
	"github.com/andyballingall/curvecheck/internal/fs"
	"github.com/andyballingall/curvecheck/internal/validator"
)

// Version is the current version of curvecheck, set at build time.
var Version = "dev"

const ClassesCmdName = "classes"

// Banner with colour codes.
var Banner = "\033[32m" + `
 +-------------------------------+
 |   c u r v e c h e c k         |
 |   yield-curve config checks   |
 +-------------------------------+
` + "\033[0m"

var LongDescription = `
curvecheck validates yield-curve configuration documents (rate helpers, curves,
rate indexes and curve requests) before they reach a curve builder.
Documents may be JSON or YAML. Each failure is reported with its full chain of
causes, from the document-level error down to the offending key or value.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stdout, stderr io.Writer, env fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	var configPath pathValue

	rootCmd := &cobra.Command{
		Use:           "curvecheck",
		Short:         "Validate yield-curve configuration documents",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          Banner + "\n" + LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}

			// Skip initialization for help, completion and classes commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == ClassesCmdName {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				return nil
			}

			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			logger, _, err := setupLogger(stderr, ll, env, wd)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			// 2. Load configuration
			path, err := config.Locate(string(configPath), env, wd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("configuration failed: %w", err)
			}
			if cfg.Path != "" {
				logger.Debug("loaded configuration", "path", cfg.Path)
			}

			// 3. Hydrate the Lazy Wrapper
			realMgr := NewCLIManager(logger, cfg, fs.NewPathResolver(), validator.NewSanthoshCompiler())
			realMgr.SetReporterWriter(stdout)
			lazy.SetInner(realMgr)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Var(&configPath, "config", "path to configuration file (overrides "+
		config.EnvConfigPath+" and ./"+config.ConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewValidateCmd(lazy))
	rootCmd.AddCommand(NewRenderSchemaCmd(lazy))
	rootCmd.AddCommand(NewClassesCmd())

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
