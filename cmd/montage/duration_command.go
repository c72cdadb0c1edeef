package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"montage/internal/manifest"
	"montage/internal/timeline"
)

func newDurationCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "duration <manifest>",
		Short:       "Report the resolved total duration of a manifest",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			total := timeline.TotalDuration(m)
			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"project_id":     m.ProjectID(),
					"total_duration": total,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", timeline.FormatSeconds(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the duration as JSON")
	return cmd
}
