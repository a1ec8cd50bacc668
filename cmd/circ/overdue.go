// Overdue command lists every overdue loan.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
	"github.com/carrelworks/circ/pkg/library"
)

var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List overdue loans",
	Long:  "List every open loan past its due date at the operation date, earliest due first.",
	Args:  cobra.NoArgs,
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

		loans := sys.OverdueLoans(now)

		if flagJSON {
			if loans == nil {
				loans = []*library.Loan{}
			}
			return cli.JSON(os.Stdout, loans)
		}
		if len(loans) == 0 {
			fmt.Println("No overdue loans")
			return nil
		}
		rate := sys.Config().DailyFineRate
		for _, l := range loans {
			fmt.Printf("%s  fine so far: %s\n", cli.LoanLine(l, now), cli.Money(l.Fine(now, rate)))
		}
		return nil
	},
}
