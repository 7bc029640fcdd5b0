package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert <manifest>",
		Short: "Normalize a manifest through a serialization round trip",
		Long: "Reads a manifest, reconstructs its representation through the " +
			"registry, and writes it back with stable key order. Version-agnostic " +
			"trait identifiers are pinned to the registered version.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = args[0]
			}
			if err := saveManifest(target, rep); err != nil {
				return err
			}
			ctx.loggerValue().Debug("manifest normalized",
				"source", args[0], "target", target)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d traits)\n", target, rep.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this path instead of overwriting the input")
	return cmd
}
