package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andyballingall/curvecheck/internal/curve"
)

func NewRenderSchemaCmd(mgr Manager) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "render-schema <class>",
		Short: "Output the JSON Schema (draft 2020-12) for a document class",
		Long: fmt.Sprintf(`Output the JSON Schema (draft 2020-12) equivalent of the validation rules
for a document class. The schema is compiled before it is printed.

JSON Schema treats any number with a zero fraction as an integer, so a real
written as 1.0 is rejected by the schema and an integer written as 2.0 is
accepted, while validate decides both the other way.

Classes: %s`, strings.Join(classNames(), ", ")),
		Args: cobra.ExactArgs(1),
		Example: `
  curvecheck render-schema rate-helper
  curvecheck render-schema --strict request > request.schema.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := curve.ParseClass(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("strict") {
				strict = mgr.Config().Strict
			}

			rendered, err := mgr.RenderSchema(cmd.Context(), class, strict)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Forbid keys that a document's schema does not declare")

	return cmd
}
