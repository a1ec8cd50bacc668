// Renew command extends a loan's due date.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
)

var renewCmd = &cobra.Command{
	Use:   "renew LOAN",
	Short: "Renew a loan",
	Long: `Renew a loan, extending the due date by the item's loan period. A loan
may be renewed at most twice, and overdue loans cannot be renewed.

Example:
  circ renew 0190c2f4-7b3a-7000-8000-000000000001`,
	Args: cobra.ExactArgs(1),
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

		loan, err := sys.Renew(args[0], now)
		if err != nil {
			return err
		}

		if flagJSON {
			return cli.JSON(os.Stdout, loan)
		}
		fmt.Println("Renewed loan:", loan.LoanID)
		fmt.Println("  new due: ", cli.Date(loan.DueAt))
		fmt.Printf("  renewals: %d/%d\n", loan.RenewalCount, loan.MaxRenewals)
		return nil
	},
}
