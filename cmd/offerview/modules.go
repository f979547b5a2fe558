package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artpar/offerview/core/catalog"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the module catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tICON\tDISPLAY\tFORM")
		for _, d := range catalog.BuiltIn() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%v\n",
				d.ID, d.Name, d.Icon, d.SupportsDisplay, d.SupportsForm)
		}
		return w.Flush()
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Show the default module set for a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range catalog.ModulesForCategory(args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
	modulesCmd.AddCommand(categoryCmd)
}
