package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "offerview",
	Short: "Dynamic module composition engine for service offering screens",
	Long: `Offerview maps service categories (venue booking, catering, security, ...)
to ordered sets of screen modules and renders them into view trees.

Quick start:
  offerview serve        # Start the JSON API server
  offerview modules      # List the module catalog
  offerview validate     # Validate configuration

Management:
  offerview definitions  # Inspect service definitions`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "offerview.yaml", "config file path")
}
