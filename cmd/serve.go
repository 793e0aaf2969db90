package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tpdash-cli/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadData()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.ListenAddr = serveAddr
		}
		srv, err := server.New(cfg, res)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Dashboard on http://%s (%d rows)\n", cfg.ListenAddr, len(res.Table.Rows))
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8475", "listen address (overrides config)")
}
