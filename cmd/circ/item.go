// Item command group for the circ CLI.
package main

import "github.com/spf13/cobra"

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage catalog items",
}

func init() {
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemGetCmd)
	itemCmd.AddCommand(itemRemoveCmd)
}
