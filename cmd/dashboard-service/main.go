package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// @title Sentiment Dashboard API
// @version 1.0
// @description Live mention feeds, sentiment charts and a trading copilot over the sentiment backend.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{
		Use:   "dashboard-service",
		Short: "Stock sentiment dashboard service",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	tailCmd.Flags().StringVar(&tailKind, "kind", "news", "Feed kind: news or reddit")
	tailCmd.Flags().StringVar(&tailTicker, "ticker", "", "Ticker to follow")
	tailCmd.Flags().IntVar(&tailLimit, "limit", 0, "Initial news batch size")
	_ = tailCmd.MarkFlagRequired("ticker")

	rootCmd.AddCommand(serveCmd, tailCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
