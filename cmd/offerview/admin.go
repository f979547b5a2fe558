package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/offerview/adapters/hasher"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin utilities",
}

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token <token>",
	Short: "Generate the bcrypt hash for an admin bearer token",
	Long: `Generate the bcrypt hash to put under admin.token_hash in the config.
The plaintext token itself is never stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := hasher.NewBcrypt(0)
		hash, err := h.Hash(args[0])
		if err != nil {
			return fmt.Errorf("hash token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(hash))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(hashTokenCmd)
}
