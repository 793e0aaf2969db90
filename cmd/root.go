package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/tpdash-cli/internal/config"
	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile   string
	flagData  []string
	flagJSONL string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tpdash",
	Short: "tpdash: filter, analyze and export worldwide TP compliance data",
	Long:  `tpdash loads a per-country transfer-pricing compliance dataset (CSV with JSONL fallback), derives summary metrics and value distributions, and serves an interactive dashboard with CSV export.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tpdash/config.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&flagData, "data", nil, "CSV candidate paths in priority order (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagJSONL, "jsonl", "", "JSONL fallback path (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{
			DataCandidates: dataset.DefaultCandidates,
			JSONLPath:      dataset.DefaultJSONLPath,
		}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data") {
		cfg.DataCandidates = flagData
	}
	if f.Changed("jsonl") {
		cfg.JSONLPath = flagJSONL
	}
}

// loadData locates and loads the dataset through the session cache,
// echoing load notices to stderr. The empty table with no fallback left
// is the one terminal condition; it surfaces as an error here.
func loadData() (*dataset.Result, error) {
	loader := &dataset.Loader{Candidates: cfg.DataCandidates, JSONLPath: cfg.JSONLPath}
	res := loader.LoadCached()
	for _, n := range res.Notices {
		marker := "✓"
		if n.Level == dataset.LevelWarn {
			marker = "⚠"
		}
		fmt.Fprintf(os.Stderr, "%s %s\n", marker, n.Message)
	}
	if res.Table.Empty() {
		return nil, errors.New("no data found: place 'extracted_tp_data_v2_2.csv' (or an earlier fallback file) or the state file 'extracted_data.jsonl'")
	}
	return res, nil
}
