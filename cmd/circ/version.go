// Version command for the circ CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/pkg/library"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the circ version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("circ", library.Version)
	},
}
