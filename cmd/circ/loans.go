// Loans command lists a user's loans.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
	"github.com/carrelworks/circ/pkg/library"
)

var loansAll bool

var loansCmd = &cobra.Command{
	Use:   "loans USER",
	Short: "List a user's loans",
	Long: `List a user's open loans, newest first. With --all, returned loans
are included.

Example:
  circ loans user-1
  circ loans user-1 --all`,
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

		// Surface unknown users as an error rather than an empty list.
		if _, err := sys.GetUser(args[0]); err != nil {
			return err
		}

		var loans []*library.Loan
		if loansAll {
			loans = sys.LoansForUser(args[0])
		} else {
			loans = sys.ActiveLoansForUser(args[0])
		}

		if flagJSON {
			if loans == nil {
				loans = []*library.Loan{}
			}
			return cli.JSON(os.Stdout, loans)
		}
		if len(loans) == 0 {
			fmt.Println("No loans found")
			return nil
		}
		for _, l := range loans {
			fmt.Println(cli.LoanLine(l, now))
		}
		return nil
	},
}

func init() {
	loansCmd.Flags().BoolVar(&loansAll, "all", false, "include returned loans")
}
