package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqlsanitize",
		Short:        "sqlsanitize",
		SilenceUsage: true,
		Long:         `CLI tool for sanitizing SQL statements into trace-safe text and low-cardinality summaries.`,
	}

	configPath string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sqlsanitize.yaml", "path to config file")
	return rootCmd.Execute()
}
