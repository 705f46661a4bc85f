package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocoiler/internal/jobfile"
	"github.com/alexiusacademia/gocoiler/internal/report"
	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchFile string
	batchXLSX string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run many calculations from a job file",
	Long: `Run every job of a YAML or JSON job file and print one summary table.
A failing job is reported in the table and does not stop the batch.

Job file fields: name, mode (coil-length|end-position), pattern,
pipe_diameter, inner_diameter, outer_diameter, bundle_width, pipe_length.

Examples:
  gocoiler batch -f drums.yaml
  gocoiler batch -f drums.json --xlsx drums.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Job file (.yaml, .yml or .json) [required]")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "Write the summary to an Excel workbook")

	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, err := jobfile.Load(batchFile)
	if err != nil {
		return err
	}

	rows := make([]report.BatchRow, 0, len(file.Jobs))
	failed := 0
	for _, job := range file.Jobs {
		row := report.BatchRow{Name: job.Name}
		req, err := job.Request(cfg.Pattern)
		if err == nil {
			row.Request = req
			row.Result, err = winding.Solve(req, cfg.Options())
		} else {
			row.RawMode, row.RawPattern = job.Mode, job.Pattern
		}
		if err != nil {
			row.Err = err
			failed++
			winding.Logger().Debug("job failed", zap.String("job", job.Name), zap.Error(err))
		}
		rows = append(rows, row)
	}

	w := cmd.OutOrStdout()
	title := file.Name
	if title == "" {
		title = batchFile
	}
	printHeader(w, "BATCH - "+title)

	tw := newTable(w)
	fmt.Fprintln(tw, "  Job\tMode\tPattern\tResult")
	for _, row := range rows {
		mode, pattern := row.Labels()
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", row.Name, mode, pattern, summarize(row))
	}
	tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %d jobs, %d failed\n", len(rows), failed)
	fmt.Fprintln(w)

	if batchXLSX != "" {
		if err := report.WriteBatchXLSX(title, rows, batchXLSX); err != nil {
			return err
		}
		fmt.Fprintf(w, "Excel summary written to: %s\n", batchXLSX)
	}
	return nil
}

func summarize(row report.BatchRow) string {
	switch {
	case row.Err != nil:
		return describeError(row.Err)
	case row.Result.CoilLength != nil:
		c := row.Result.CoilLength
		return fmt.Sprintf("%s m, OD %s mm, %d layers",
			formatValue(c.CoilLength, 3), formatValue(c.RealizedOuterDiameter, 0), c.Layers)
	case row.Result.EndPosition != nil:
		e := row.Result.EndPosition
		return fmt.Sprintf("OD %s mm, height %s mm, %d layers, %s/%d on last",
			formatValue(e.OuterDiameter, 0), formatValue(e.BundleHeight, 0), e.NumberOfLayers,
			formatValue(e.PipesOnLastLayer, 2), e.LastLayerCapacity)
	}
	return ""
}
