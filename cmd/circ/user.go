// User command group for the circ CLI.
package main

import "github.com/spf13/cobra"

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage registered users",
}

func init() {
	userCmd.AddCommand(userRegisterCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userRemoveCmd)
}
