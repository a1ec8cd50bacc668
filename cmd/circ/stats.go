// Stats command reports simple aggregates over the registries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
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

		st := sys.Stats(now)

		if flagJSON {
			return cli.JSON(os.Stdout, st)
		}
		fmt.Println(st.LibraryName)
		fmt.Printf("  items:  %d total, %d available (%d books, %d magazines, %d DVDs)\n",
			st.TotalItems, st.AvailableItems, st.Books, st.Magazines, st.DVDs)
		fmt.Printf("  users:  %d total (%d members, %d staff)\n",
			st.TotalUsers, st.Members, st.Staff)
		fmt.Printf("  loans:  %d total, %d open, %d overdue\n",
			st.TotalLoans, st.ActiveLoans, st.OverdueLoans)
		fmt.Println("  accruing fines:", cli.Money(st.AccruingFines))
		return nil
	},
}
