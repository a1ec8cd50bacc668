// Checkout command lends an item to a user.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout USER ITEM",
	Short: "Check out an item to a user",
	Long: `Check out an item. The due date is the operation date plus the item's
loan period (21 days for books, 7 for magazines, 14 for DVDs).

Example:
  circ checkout user-1 item-1
  circ checkout user-1 item-1 --date 2024-03-01`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := operationTime()
		if err != nil {
			return err
		}

		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		loan, err := sys.CheckOut(args[0], args[1], now)
		if err != nil {
			return err
		}

		if flagJSON {
			return cli.JSON(os.Stdout, loan)
		}
		fmt.Printf("Checked out %s to %s\n", loan.ItemID, loan.UserID)
		fmt.Println("  loan:", loan.LoanID)
		fmt.Println("  due: ", cli.Date(loan.DueAt))
		return nil
	},
}
