// Search command finds catalog items by title.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
	"github.com/carrelworks/circ/pkg/library"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search the catalog by title",
	Long: `Search catalog items whose title contains the query, case-insensitively.

Example:
  circ search dune`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		items := sys.SearchItems(args[0])

		if flagJSON {
			if items == nil {
				items = []*library.Item{}
			}
			return cli.JSON(os.Stdout, items)
		}
		if len(items) == 0 {
			fmt.Println("No items found")
			return nil
		}
		for _, it := range items {
			fmt.Println(cli.ItemLine(it))
		}
		return nil
	},
}
