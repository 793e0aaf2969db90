package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
	"github.com/KaramelBytes/tpdash-cli/internal/utils"
)

// Global configuration structure.
type Global struct {
	// DataCandidates are the CSV paths tried in priority order.
	DataCandidates []string `mapstructure:"data_candidates" yaml:"data_candidates"`
	// JSONLPath is the fallback newline-delimited-JSON state file.
	JSONLPath string `mapstructure:"jsonl_path" yaml:"jsonl_path"`

	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`

	ChartColumns     []string `mapstructure:"chart_columns" yaml:"chart_columns"`
	ChartTopN        int      `mapstructure:"chart_top_n" yaml:"chart_top_n"`
	IndicatorColumns []string `mapstructure:"indicator_columns" yaml:"indicator_columns"`

	ExportFilename string `mapstructure:"export_filename" yaml:"export_filename"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.tpdash/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tpdash")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TPDASH")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_candidates", dataset.DefaultCandidates)
	v.SetDefault("jsonl_path", dataset.DefaultJSONLPath)
	v.SetDefault("listen_addr", "127.0.0.1:8475")
	v.SetDefault("chart_columns", []string{"TPFilingRequirement", "MF_deadline"})
	v.SetDefault("chart_top_n", 10)
	v.SetDefault("indicator_columns", []string{"APAAvailable", "OECDorBEPS"})
	v.SetDefault("export_filename", "tp_selection.csv")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tpdash")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
