// Item get command shows one catalog entry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
)

var itemGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		it, err := sys.GetItem(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return cli.JSON(os.Stdout, it)
		}
		fmt.Println(cli.ItemLine(it))
		return nil
	},
}
