package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tpdash-cli/internal/charts"
	"github.com/KaramelBytes/tpdash-cli/internal/dashboard"
	"github.com/KaramelBytes/tpdash-cli/internal/utils"
)

var (
	chartColumn     string
	chartTopN       int
	chartOutputPath string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a value-count bar chart of the filtered selection as PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadData()
		if err != nil {
			return err
		}
		criteria, err := buildCriteria(cmd, res.Table)
		if err != nil {
			return err
		}
		criteria.VisibleColumns = nil
		filtered := dashboard.Apply(res.Table, criteria)

		col := chartColumn
		if col == "" {
			cols := cfg.ChartColumns
			if len(cols) == 0 {
				cols = dashboard.DefaultChartColumns
			}
			col = cols[0]
		}
		topN := chartTopN
		if topN <= 0 {
			topN = cfg.ChartTopN
		}

		vc := dashboard.CountValues(filtered, col, topN)
		b, err := charts.RenderBarPNG(vc, col)
		if err != nil {
			if err == charts.ErrNoData {
				return fmt.Errorf("no data to chart for column %s", col)
			}
			return err
		}

		out := chartOutputPath
		if out == "" {
			out = col + ".png"
		}
		if err := utils.SafeWriteFile(out, b); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		fmt.Printf("✓ Wrote chart for %s (%d values) to %s\n", col, len(vc.Counts), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	addSelectionFlags(chartCmd)
	chartCmd.Flags().StringVar(&chartColumn, "column", "", "column to chart (default: first configured chart column)")
	chartCmd.Flags().IntVar(&chartTopN, "top", 0, "keep only the N most frequent values (default from config)")
	chartCmd.Flags().StringVarP(&chartOutputPath, "output", "o", "", "output PNG path (default <column>.png)")
}
