package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"montage/internal/assembler"
	"montage/internal/catalog"
	"montage/internal/manifest"
	"montage/internal/timeline"
)

func newAssembleCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var mixOutputPath string
	var noCatalog bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "assemble <manifest>",
		Short: "Build a project document and mix request from an asset manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			var store *catalog.Store
			if !noCatalog {
				store, err = catalog.Open(cfg)
				if err != nil {
					return fmt.Errorf("open catalog: %w", err)
				}
				defer store.Close()
			}

			asm := assembler.New(cfg, logger, store)
			result, err := asm.Assemble(cmd.Context(), m, assembler.Options{
				OutputPath:    outputPath,
				MixOutputPath: mixOutputPath,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeAssembleResultJSON(cmd, result)
			}
			printAssembleResult(cmd, result)

			if result.Validated && !result.Validation.Valid {
				return fmt.Errorf("document failed validation with %d error(s)", len(result.Validation.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Project document destination (default: timeline directory)")
	cmd.Flags().StringVar(&mixOutputPath, "mix-output", "", "Mix request destination (default: audio directory)")
	cmd.Flags().BoolVar(&noCatalog, "no-catalog", false, "Skip recording the run in the catalog")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run summary as JSON")
	return cmd
}

func writeAssembleResultJSON(cmd *cobra.Command, result *assembler.RunResult) error {
	payload := map[string]any{
		"project_id":       result.ProjectID,
		"project_path":     result.ProjectPath,
		"mix_request_path": result.MixRequestPath,
		"total_duration":   result.TotalDuration,
		"warnings":         result.Warnings,
	}
	if result.Validated {
		payload["validation"] = result.Validation
	}
	return writeJSON(cmd, payload)
}

func printAssembleResult(cmd *cobra.Command, result *assembler.RunResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project:     %s\n", result.ProjectID)
	fmt.Fprintf(out, "Document:    %s\n", result.ProjectPath)
	fmt.Fprintf(out, "Mix request: %s\n", result.MixRequestPath)
	fmt.Fprintf(out, "Duration:    %s\n", timeline.FormatSeconds(result.TotalDuration))
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
	if result.Validated {
		fmt.Fprintf(out, "Valid:       %s\n", yesNo(result.Validation.Valid))
		for _, msg := range result.Validation.Errors {
			fmt.Fprintf(out, "Error: %s\n", msg)
		}
		for _, msg := range result.Validation.Warnings {
			fmt.Fprintf(out, "Warning: %s\n", msg)
		}
	}
}
