// Item list command queries the catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
	"github.com/carrelworks/circ/pkg/library"
)

var (
	listKind      string
	listAvailable bool
)

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	Long: `List catalog items, optionally filtered by kind or availability.

Example:
  circ item list
  circ item list --kind book
  circ item list --available`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		var items []*library.Item
		switch {
		case listKind != "":
			items = sys.ItemsByKind(listKind)
		case listAvailable:
			items = sys.AvailableItems()
		default:
			items = sys.Items()
		}

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

func init() {
	itemListCmd.Flags().StringVar(&listKind, "kind", "", "filter by kind (book, magazine, dvd)")
	itemListCmd.Flags().BoolVar(&listAvailable, "available", false, "only items available for checkout")
}
