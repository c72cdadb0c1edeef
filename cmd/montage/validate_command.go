package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"montage/internal/timeline"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "validate <document>",
		Short:       "Validate a written project document",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			result := timeline.Validate(args[0])

			if jsonOutput {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Valid: %s\n", yesNo(result.Valid))
				for _, msg := range result.Errors {
					fmt.Fprintf(out, "Error: %s\n", msg)
				}
				for _, msg := range result.Warnings {
					fmt.Fprintf(out, "Warning: %s\n", msg)
				}
			}

			if !result.Valid {
				return fmt.Errorf("%s failed validation with %d error(s)", args[0], len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the validation result as JSON")
	return cmd
}
