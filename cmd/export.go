package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tpdash-cli/internal/dashboard"
	"github.com/KaramelBytes/tpdash-cli/internal/utils"
)

var exportOutputPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered selection as a BOM-prefixed CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadData()
		if err != nil {
			return err
		}
		criteria, err := buildCriteria(cmd, res.Table)
		if err != nil {
			return err
		}
		view := dashboard.Apply(res.Table, criteria)
		b, err := dashboard.EncodeCSV(view)
		if err != nil {
			return err
		}

		out := exportOutputPath
		if out == "" {
			out = cfg.ExportFilename
		}
		if out == "" {
			out = dashboard.DefaultExportFilename
		}
		if out == "-" {
			_, err := os.Stdout.Write(b)
			return err
		}
		if err := utils.SafeWriteFile(out, b); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("✓ Exported %d rows to %s\n", len(view.Rows), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addSelectionFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output path ('-' for stdout; default from config)")
}
