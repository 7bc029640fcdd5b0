package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loom/internal/fileutil"
	"loom/internal/traits"
)

func newFillCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill <manifest>",
		Short: "Fill file sizes and checksums from disk",
		Long: "Probes every file referenced by FileLocation and FileLocations " +
			"traits and records its size and SHA256 checksum in the manifest.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			logger := ctx.loggerValue()

			filled := 0
			if location, err := traits.Get[traits.FileLocation](rep); err == nil {
				probed, err := probeLocation(location)
				if err != nil {
					return err
				}
				rep.Add(probed)
				filled++
				logger.Debug("probed file", "path", probed.FilePath, "size", probed.FileSize)
			}
			if locations, err := traits.Get[traits.FileLocations](rep); err == nil {
				for i, location := range locations.FilePaths {
					probed, err := probeLocation(location)
					if err != nil {
						return err
					}
					locations.FilePaths[i] = probed
					filled++
					logger.Debug("probed file", "path", probed.FilePath, "size", probed.FileSize)
				}
				rep.Add(locations)
			}

			if filled == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Manifest references no files; nothing to fill")
				return nil
			}
			if err := saveManifest(args[0], rep); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Filled %d file location(s) in %s\n", filled, args[0])
			return nil
		},
	}
	return cmd
}

func probeLocation(location traits.FileLocation) (traits.FileLocation, error) {
	size, hash, err := fileutil.ProbeFile(location.FilePath)
	if err != nil {
		return location, fmt.Errorf("probe %s: %w", location.FilePath, err)
	}
	location.FileSize = size
	location.FileHash = hash
	return location, nil
}
