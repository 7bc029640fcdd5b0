package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <manifest>",
		Short: "Show the traits carried by a representation manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			dict, err := rep.TraitsAsDict()
			if err != nil {
				return err
			}

			cfg := ctx.configValue()
			if jsonOut || (cfg != nil && cfg.Output.Format == "json") {
				return writeJSON(cmd, manifest{Name: rep.Name(), ID: rep.ID(), Traits: dict})
			}

			titler := cases.Title(language.Und)
			rows := make([][]string, 0, rep.Len())
			for _, id := range rep.TraitIDs() {
				fields := dict[id.String()]
				encoded := ""
				if len(fields) > 0 {
					raw, err := json.Marshal(fields)
					if err != nil {
						return err
					}
					encoded = string(raw)
				}
				rows = append(rows, []string{
					titler.String(id.Category),
					id.Name,
					fmt.Sprintf("v%d", id.Version),
					encoded,
				})
			}

			out := cmd.OutOrStdout()
			colorSetting := ""
			if cfg != nil {
				colorSetting = cfg.Output.Color
			}
			fmt.Fprintf(out, "Representation: %s (id %s)\n", rep.Name(), rep.ID())
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "Trait", "Version", "Fields"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				shouldColorize(out, colorSetting),
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the manifest as JSON")
	return cmd
}
