package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"montage/internal/catalog"
	"montage/internal/timeline"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jobID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded assembly runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			var runs []catalog.Run
			if jobID != "" {
				runs, err = store.ListRunsByJob(cmd.Context(), jobID)
			} else {
				runs, err = store.ListRuns(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeRunsJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			headers := []string{"ID", "Job", "Title", "Duration", "Valid", "Errors", "Warnings", "Created"}
			aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					strconv.FormatInt(run.ID, 10),
					run.JobID,
					run.DisplayTitle(),
					timeline.FormatSeconds(run.TotalDuration),
					yesNo(run.Valid),
					strconv.Itoa(run.ErrorCount),
					strconv.Itoa(run.WarningCount),
					run.CreatedAt.Local().Format(time.DateTime),
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns, isTerminal(out)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 for all)")
	cmd.Flags().StringVar(&jobID, "job", "", "Only list runs for one job identifier")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the runs as JSON")
	return cmd
}

func writeRunsJSON(cmd *cobra.Command, runs []catalog.Run) error {
	type jsonRun struct {
		ID             int64   `json:"id"`
		JobID          string  `json:"job_id"`
		Title          string  `json:"title"`
		ProjectPath    string  `json:"project_path"`
		MixRequestPath string  `json:"mix_request_path"`
		TotalDuration  float64 `json:"total_duration"`
		Valid          bool    `json:"valid"`
		ErrorCount     int     `json:"error_count"`
		WarningCount   int     `json:"warning_count"`
		CreatedAt      string  `json:"created_at"`
	}
	items := make([]jsonRun, 0, len(runs))
	for _, run := range runs {
		items = append(items, jsonRun{
			ID:             run.ID,
			JobID:          run.JobID,
			Title:          run.DisplayTitle(),
			ProjectPath:    run.ProjectPath,
			MixRequestPath: run.MixRequestPath,
			TotalDuration:  run.TotalDuration,
			Valid:          run.Valid,
			ErrorCount:     run.ErrorCount,
			WarningCount:   run.WarningCount,
			CreatedAt:      run.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return writeJSON(cmd, map[string]any{"runs": items})
}
