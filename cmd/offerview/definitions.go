package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/offerview/adapters/sqlite"
	"github.com/artpar/offerview/config"
)

var definitionsCmd = &cobra.Command{
	Use:   "definitions",
	Short: "Inspect persisted service definition overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWithFallback(cfgFile)
		if err != nil {
			return err
		}
		if cfg.Database.Driver != "sqlite" {
			fmt.Fprintln(cmd.OutOrStdout(), "no durable store configured; overrides live in memory only")
			return nil
		}

		db, err := sqlite.Open(cfg.Database.DSN)
		if err != nil {
			return err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return err
		}
		store := sqlite.NewKVStore(db)
		defer store.Close()

		pairs, err := store.List(context.Background(), "svcdef:")
		if err != nil {
			return err
		}
		if len(pairs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no overrides persisted")
			return nil
		}

		for key, raw := range pairs {
			var pretty json.RawMessage = raw
			out, err := json.MarshalIndent(pretty, "", "  ")
			if err != nil {
				out = raw
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", key, out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(definitionsCmd)
}
