// Item remove command deletes a catalog entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a catalog item",
	Long:  "Remove an item from the catalog. Items with an open loan cannot be removed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := sys.RemoveItem(args[0]); err != nil {
			return err
		}
		fmt.Println("Removed item:", args[0])
		return nil
	},
}
