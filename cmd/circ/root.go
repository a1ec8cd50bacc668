// Root command for the circ CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/carrelworks/circ/internal/paths"
	"github.com/carrelworks/circ/pkg/library"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagDate      string
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// libConfig holds the circulation parameters loaded from config.yaml.
var libConfig library.Config

var rootCmd = &cobra.Command{
	Use:          "circ",
	Short:        "Circ manages a library's catalog, users, and loans",
	Version:      library.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		libConfig = library.Config{
			LibraryName:   cfg.GetString(cfgKeyLibraryName),
			DailyFineRate: cfg.GetFloat64(cfgKeyDailyFineRate),
			FineThreshold: cfg.GetFloat64(cfgKeyFineThreshold),
		}
		return libConfig.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.circ-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "operation date as YYYY-MM-DD (default: today)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(renewCmd)
	rootCmd.AddCommand(loansCmd)
	rootCmd.AddCommand(overdueCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(fineCmd)
	rootCmd.AddCommand(statsCmd)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > CIRC_DATA_DIR env > $(CWD)/.circ-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > CIRC_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
