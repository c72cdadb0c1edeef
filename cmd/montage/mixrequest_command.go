package main

import (
	"github.com/spf13/cobra"

	"montage/internal/manifest"
	"montage/internal/mixdown"
)

func newMixRequestCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "mixrequest <manifest>",
		Short: "Derive a mix request from an asset manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			request := mixdown.Derive(m, m.ProjectID(), cfg.Paths.AudioDir)
			if outputPath != "" {
				return mixdown.Write(request, outputPath)
			}
			return writeJSON(cmd, request)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the request to a file instead of stdout")
	return cmd
}
