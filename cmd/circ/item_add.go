// Item add commands create catalog entries, one subcommand per kind.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
	"github.com/carrelworks/circ/pkg/library"
)

var (
	itemID string

	bookAuthor string
	bookISBN   string
	bookPages  int

	magazineIssue     string
	magazinePublisher string

	dvdDuration int
	dvdGenre    string
	dvdDirector string
	dvdRating   string
)

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the catalog",
}

var itemAddBookCmd = &cobra.Command{
	Use:   "book TITLE",
	Short: "Add a book",
	Long: `Add a book to the catalog.

Example:
  circ item add book "Dune" --id item-1 --author "Frank Herbert" --isbn 9780441172719 --pages 412`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := operationTime()
		if err != nil {
			return err
		}
		book, err := library.NewBook(itemID, args[0], bookAuthor, bookISBN, bookPages, now)
		if err != nil {
			return err
		}
		return addItem(book)
	},
}

var itemAddMagazineCmd = &cobra.Command{
	Use:   "magazine TITLE",
	Short: "Add a magazine",
	Long: `Add a magazine to the catalog.

Example:
  circ item add magazine "National Geographic" --id item-2 --issue 2024-03 --publisher "NatGeo Society"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := operationTime()
		if err != nil {
			return err
		}
		magazine, err := library.NewMagazine(itemID, args[0], magazineIssue, magazinePublisher, now)
		if err != nil {
			return err
		}
		return addItem(magazine)
	},
}

var itemAddDVDCmd = &cobra.Command{
	Use:   "dvd TITLE",
	Short: "Add a DVD",
	Long: `Add a DVD to the catalog. Duration is in minutes; rating is one of
G, PG, PG-13, R, NC-17, NR.

Example:
  circ item add dvd "Blade Runner" --id item-3 --duration 117 --genre Sci-Fi --director "Ridley Scott" --rating R`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := operationTime()
		if err != nil {
			return err
		}
		dvd, err := library.NewDVD(itemID, args[0], dvdDuration, dvdGenre, dvdDirector, dvdRating, now)
		if err != nil {
			return err
		}
		return addItem(dvd)
	},
}

func init() {
	itemAddCmd.PersistentFlags().StringVar(&itemID, "id", "", "item identifier (required)")

	itemAddBookCmd.Flags().StringVar(&bookAuthor, "author", "", "author name")
	itemAddBookCmd.Flags().StringVar(&bookISBN, "isbn", "", "ISBN")
	itemAddBookCmd.Flags().IntVar(&bookPages, "pages", 0, "page count")

	itemAddMagazineCmd.Flags().StringVar(&magazineIssue, "issue", "", "issue number")
	itemAddMagazineCmd.Flags().StringVar(&magazinePublisher, "publisher", "", "publisher name")

	itemAddDVDCmd.Flags().IntVar(&dvdDuration, "duration", 0, "runtime in minutes (required)")
	itemAddDVDCmd.Flags().StringVar(&dvdGenre, "genre", "", "genre")
	itemAddDVDCmd.Flags().StringVar(&dvdDirector, "director", "", "director name")
	itemAddDVDCmd.Flags().StringVar(&dvdRating, "rating", "", "age rating")
	_ = itemAddDVDCmd.MarkFlagRequired("duration")

	itemAddCmd.AddCommand(itemAddBookCmd)
	itemAddCmd.AddCommand(itemAddMagazineCmd)
	itemAddCmd.AddCommand(itemAddDVDCmd)
}

// addItem registers the item and renders the result.
func addItem(it *library.Item) error {
	sys, store, err := openSystem()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := sys.AddItem(it); err != nil {
		return err
	}

	if flagJSON {
		return cli.JSON(os.Stdout, it)
	}
	fmt.Println("Added:", cli.ItemLine(it))
	return nil
}
