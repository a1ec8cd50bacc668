// User register commands create users, one subcommand per role.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/cli"
	"github.com/carrelworks/circ/pkg/library"
)

var (
	userID    string
	userEmail string

	memberPhone   string
	staffPosition string
)

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a user",
}

var userRegisterMemberCmd = &cobra.Command{
	Use:   "member NAME",
	Short: "Register a member",
	Long: `Register a library member. Membership is valid for one year from the
registration date.

Example:
  circ user register member "Alice Reader" --id user-1 --email alice@example.com --phone 555-0100`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := operationTime()
		if err != nil {
			return err
		}
		member, err := library.NewMember(userID, args[0], userEmail, memberPhone, now)
		if err != nil {
			return err
		}
		return registerUser(member)
	},
}

var userRegisterStaffCmd = &cobra.Command{
	Use:   "staff NAME",
	Short: "Register a staff user",
	Long: `Register a staff user. Position is librarian or manager; each carries
its default permission set.

Example:
  circ user register staff "Bob Keeper" --id user-2 --email bob@example.com --position librarian`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := operationTime()
		if err != nil {
			return err
		}
		staff, err := library.NewStaff(userID, args[0], userEmail, staffPosition, now)
		if err != nil {
			return err
		}
		return registerUser(staff)
	},
}

func init() {
	userRegisterCmd.PersistentFlags().StringVar(&userID, "id", "", "user identifier (required)")
	userRegisterCmd.PersistentFlags().StringVar(&userEmail, "email", "", "email address (required)")

	userRegisterMemberCmd.Flags().StringVar(&memberPhone, "phone", "", "phone number")
	userRegisterStaffCmd.Flags().StringVar(&staffPosition, "position", "", "staff position: librarian or manager (required)")
	_ = userRegisterStaffCmd.MarkFlagRequired("position")

	userRegisterCmd.AddCommand(userRegisterMemberCmd)
	userRegisterCmd.AddCommand(userRegisterStaffCmd)
}

// registerUser adds the user and renders the result.
func registerUser(u *library.User) error {
	sys, store, err := openSystem()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := sys.RegisterUser(u); err != nil {
		return err
	}

	if flagJSON {
		return cli.JSON(os.Stdout, u)
	}
	fmt.Println("Registered:", cli.UserLine(u))
	return nil
}
