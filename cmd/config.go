package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/tpdash-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set tpdash configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("data_candidates: %s\n", strings.Join(cfg.DataCandidates, ", "))
		fmt.Printf("jsonl_path: %s\n", cfg.JSONLPath)
		fmt.Printf("listen_addr: %s\n", cfg.ListenAddr)
		fmt.Printf("chart_columns: %s\n", strings.Join(cfg.ChartColumns, ", "))
		fmt.Printf("chart_top_n: %d\n", cfg.ChartTopN)
		fmt.Printf("indicator_columns: %s\n", strings.Join(cfg.IndicatorColumns, ", "))
		fmt.Printf("export_filename: %s\n", cfg.ExportFilename)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_candidates":
			cfg.DataCandidates = splitList(val)
		case "jsonl_path":
			cfg.JSONLPath = val
		case "listen_addr":
			cfg.ListenAddr = val
		case "chart_columns":
			cfg.ChartColumns = splitList(val)
		case "chart_top_n":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for chart_top_n: %v", val)
			}
			cfg.ChartTopN = i
		case "indicator_columns":
			cfg.IndicatorColumns = splitList(val)
		case "export_filename":
			cfg.ExportFilename = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func splitList(val string) []string {
	var out []string
	for _, p := range strings.Split(val, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
