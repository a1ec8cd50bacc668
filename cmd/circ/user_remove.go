// User remove command deletes a registered user.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a registered user",
	Long:  "Remove a user from the registry. Users with open loans cannot be removed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := sys.RemoveUser(args[0]); err != nil {
			return err
		}
		fmt.Println("Removed user:", args[0])
		return nil
	},
}
