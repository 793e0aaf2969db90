package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tpdash-cli/internal/dashboard"
	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
	"github.com/KaramelBytes/tpdash-cli/internal/utils"
)

var summaryOutputPath string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print dataset KPIs, column profiles and value distributions",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadData()
		if err != nil {
			return err
		}
		criteria := dashboard.Defaults(res.Table)
		filtered := dashboard.Apply(res.Table, criteria)
		metrics := dashboard.ComputeMetrics(res.Table, filtered, cfg.IndicatorColumns)
		charts := dashboard.ChartData(filtered, cfg.ChartColumns, cfg.ChartTopN)

		md := dashboard.RenderSummary(res, dataset.Profile(res.Table), metrics, charts)
		if summaryOutputPath != "" {
			if err := utils.SafeWriteFile(summaryOutputPath, []byte(md)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote summary to %s\n", summaryOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&summaryOutputPath, "output", "o", "", "optional path to write the summary (Markdown)")
}
