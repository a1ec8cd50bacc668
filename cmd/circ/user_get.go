// User get command shows one registered user.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
)

var userGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a registered user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		u, err := sys.GetUser(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return cli.JSON(os.Stdout, u)
		}
		fmt.Println(cli.UserLine(u))
		return nil
	},
}
