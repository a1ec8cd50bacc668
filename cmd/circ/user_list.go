// User list command queries the user registry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
	"github.com/carrelworks/circ/pkg/library"
)

var listRole string

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	Long: `List registered users, optionally filtered by role.

Example:
  circ user list
  circ user list --role member`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		var users []*library.User
		if listRole != "" {
			users = sys.UsersByRole(listRole)
		} else {
			users = sys.Users()
		}

		if flagJSON {
			if users == nil {
				users = []*library.User{}
			}
			return cli.JSON(os.Stdout, users)
		}
		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}
		for _, u := range users {
			fmt.Println(cli.UserLine(u))
		}
		return nil
	},
}

func init() {
	userListCmd.Flags().StringVar(&listRole, "role", "", "filter by role (member, staff)")
}
