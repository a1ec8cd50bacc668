// Init command for the circ CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize circ configuration and storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already created the config directory and a
		// default config.yaml; opening the store creates the database.
		_, store, err := openSystem()
		if err != nil {
			return err
		}
		defer store.Close()

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		fmt.Println("Library initialized successfully")
		fmt.Println("  config:  ", configDir)
		fmt.Println("  database:", store.Path())
		return nil
	},
}
