package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dealership",
	Short: "CSE Motors dealership web application",
	Long:  `Server-rendered dealership site: inventory browsing, accounts, and vehicle reviews.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
