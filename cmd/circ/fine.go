// Fine commands manage member fines.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
)

var fineCmd = &cobra.Command{
	Use:   "fine",
	Short: "Manage member fines",
}

var finePayCmd = &cobra.Command{
	Use:   "pay USER AMOUNT",
	Short: "Pay down a member's fines",
	Long: `Pay down a member's fines balance. The amount must be positive and no
larger than the balance owed.

Example:
  circ fine pay user-1 2.50`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}

		sys, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := sys.PayFine(args[0], amount); err != nil {
			return err
		}

		user, err := sys.GetUser(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return cli.JSON(os.Stdout, map[string]any{
				"user_id": user.UserID,
				"paid":    amount,
				"owed":    user.FinesOwed,
			})
		}
		fmt.Printf("Paid %s; %s now owes %s\n", cli.Money(amount), user.UserID, cli.Money(user.FinesOwed))
		return nil
	},
}

func init() {
	fineCmd.AddCommand(finePayCmd)
}
