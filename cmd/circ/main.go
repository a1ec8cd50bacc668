// Package main provides the circ CLI, a command-line front end for the
// library circulation engine.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/carrelworks/circ/pkg/library"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "circ:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: business-rule and lookup
// failures are user errors, everything else is a system error.
func exitCode(err error) int {
	for _, sentinel := range []error{
		library.ErrNotFound,
		library.ErrDuplicateID,
		library.ErrItemUnavailable,
		library.ErrBorrowingLimit,
		library.ErrFinesOutstanding,
		library.ErrRenewalLimit,
		library.ErrAlreadyReturned,
		library.ErrOverdueRenewal,
		library.ErrHasActiveLoans,
		library.ErrUserSuspended,
		library.ErrMembershipExpired,
		library.ErrInvalidAmount,
		library.ErrInvalidID,
		library.ErrInvalidTitle,
		library.ErrInvalidName,
		library.ErrInvalidEmail,
		library.ErrInvalidKind,
		library.ErrInvalidRole,
		library.ErrInvalidPosition,
		library.ErrInvalidRating,
		library.ErrInvalidDuration,
		library.ErrInvalidPages,
	} {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}
