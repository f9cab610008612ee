package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "keptctl",
		Short: "Operator tooling for Kept House jobs",
		Long: `keptctl inspects and repairs estate-sale jobs directly against the
configured stores. It shares configuration with the API (config.yaml, .env
and environment variables).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")

	rootCmd.AddCommand(commissionCmd())
	rootCmd.AddCommand(saleStatusCmd())
	rootCmd.AddCommand(financeCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
