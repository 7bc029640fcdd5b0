package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"loom/internal/traits"
)

func newTraitsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "traits",
		Short: "List the trait types the registry knows",
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled := enabledCategories(ctx)

			type traitInfo struct {
				ID          string `json:"id"`
				Category    string `json:"category"`
				Name        string `json:"name"`
				Version     int    `json:"version"`
				Persistent  bool   `json:"persistent"`
				Description string `json:"description"`
			}

			var infos []traitInfo
			for _, id := range traits.Default().IDs() {
				if enabled != nil && !enabled[id.Category] {
					continue
				}
				trait, err := traits.Default().Resolve(id)
				if err != nil {
					return err
				}
				infos = append(infos, traitInfo{
					ID:          id.String(),
					Category:    id.Category,
					Name:        id.Name,
					Version:     id.Version,
					Persistent:  trait.Persistent(),
					Description: trait.Description(),
				})
			}

			if jsonOut {
				return writeJSON(cmd, infos)
			}

			titler := cases.Title(language.Und)
			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{
					titler.String(info.Category),
					info.Name,
					fmt.Sprintf("v%d", info.Version),
					yesNo(info.Persistent),
					info.Description,
				})
			}
			out := cmd.OutOrStdout()
			colorSetting := ""
			if cfg := ctx.configValue(); cfg != nil {
				colorSetting = cfg.Output.Color
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "Trait", "Version", "Persistent", "Description"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
				shouldColorize(out, colorSetting),
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the trait list as JSON")
	return cmd
}

// enabledCategories returns the categories the config exposes, or nil
// when the config enables everything.
func enabledCategories(ctx *commandContext) map[string]bool {
	cfg := ctx.configValue()
	if cfg == nil || len(cfg.Registry.Namespaces) == 0 {
		return nil
	}
	enabled := make(map[string]bool, len(cfg.Registry.Namespaces))
	for _, namespace := range cfg.Registry.Namespaces {
		enabled[namespace] = true
	}
	return enabled
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
