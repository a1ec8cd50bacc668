// Checkin command returns a loaned item.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin LOAN",
	Short: "Check in a loaned item",
	Long: `Check in an item by loan identifier. Overdue returns add the accrued
fine to the member's balance.

Example:
  circ checkin 0190c2f4-7b3a-7000-8000-000000000001`,
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

		fine, err := sys.CheckIn(args[0], now)
		if err != nil {
			return err
		}

		if flagJSON {
			return cli.JSON(os.Stdout, map[string]any{"loan_id": args[0], "fine": fine})
		}
		fmt.Println("Checked in loan:", args[0])
		if fine > 0 {
			fmt.Println("  fine added:", cli.Money(fine))
		}
		return nil
	},
}
