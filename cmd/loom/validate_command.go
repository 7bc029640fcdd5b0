package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"loom/internal/traits"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Validate every trait in a representation manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			ctx.loggerValue().Debug("validating representation",
				"name", rep.Name(), "traits", rep.Len())

			err = rep.Validate()
			if err == nil {
				if jsonOut {
					return writeJSON(cmd, map[string]any{
						"representation": rep.Name(),
						"valid":          true,
					})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Representation %q is valid (%d traits)\n",
					rep.Name(), rep.Len())
				return nil
			}

			var validation *traits.TraitValidationError
			if !errors.As(err, &validation) {
				return err
			}
			if jsonOut {
				if err := writeJSON(cmd, map[string]any{
					"representation": rep.Name(),
					"valid":          false,
					"problems":       validation.Problems,
				}); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Representation %q is invalid:\n", rep.Name())
				for _, problem := range validation.Problems {
					fmt.Fprintf(out, "  - %s\n", problem)
				}
			}
			return fmt.Errorf("%d trait validation failures", len(validation.Problems))
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the validation result as JSON")
	return cmd
}
