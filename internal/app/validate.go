package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andyballingall/curvecheck/internal/config"
	"github.com/andyballingall/curvecheck/internal/curve"
	"github.com/andyballingall/curvecheck/internal/repo"
)

func NewValidateCmd(mgr Manager) *cobra.Command {
	var verbose bool
	var continueOnError bool
	var strict bool
	var watch bool
	var since string

	cmd := &cobra.Command{
		Use:   "validate [path...]",
		Short: "Validate one or more configuration documents",
		Example: `
VALIDATING FILES
  curvecheck validate helpers/ois.json
  curvecheck validate curve.yaml index.yaml

VALIDATING DIRECTORIES (recursively, using the configured extensions)
  curvecheck validate ./config
  curvecheck validate -C -o json ./config

FORCING A DOCUMENT CLASS
  curvecheck validate -k rate-helper helpers/

ONLY DOCUMENTS CHANGED SINCE A GIT REVISION
  curvecheck validate --since origin/main ./config`,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show passing documents and error kinds")
	outputVal := formatValue(config.OutputText)
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")
	classVal := classValue(ClassAuto)
	cmd.Flags().VarP(&classVal, "class", "k",
		fmt.Sprintf("Document class (%s, %s)", ClassAuto, strings.Join(classNames(), ", ")))
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject keys that a document's schema does not declare")
	cmd.Flags().BoolVarP(&continueOnError, "continue-on-error", "C", false,
		"Continue validating even if a document fails (default is to stop on first failure)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch for changes and revalidate")
	cmd.Flags().StringVar(&since, "since", "", "Only validate documents changed since this git revision")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return &NoPathsError{}
		}

		cfg := mgr.Config()
		noColour, _ := cmd.Flags().GetBool("nocolour")

		opts := ValidateOptions{
			Paths:           args,
			Class:           classVal.Class(),
			Strict:          cfg.Strict,
			Format:          cfg.Output,
			Verbose:         verbose,
			UseColour:       !noColour,
			ContinueOnError: cfg.ContinueOnError,
			Since:           repo.Revision(since),
		}
		// Flags override the configuration file
		if cmd.Flags().Changed("strict") {
			opts.Strict = strict
		}
		if cmd.Flags().Changed("output") {
			opts.Format = config.OutputFormat(outputVal)
		}
		if cmd.Flags().Changed("continue-on-error") {
			opts.ContinueOnError = continueOnError
		}

		if watch {
			return mgr.WatchValidation(cmd.Context(), opts, nil)
		}
		return mgr.Validate(cmd.Context(), opts)
	}

	return cmd
}

func classNames() []string {
	names := make([]string, len(curve.Classes))
	for i, c := range curve.Classes {
		names[i] = string(c)
	}
	return names
}
