package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/offerview/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("configuration invalid: %w", err)
		}

		fmt.Println("Configuration valid")
		fmt.Printf("  Server:      %s:%d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Printf("  Store:       %s\n", cfg.Database.Driver)
		fmt.Printf("  Definitions: %d seeded\n", len(cfg.Definitions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
