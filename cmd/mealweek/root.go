// Root command for the mealweek CLI.
package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tasteops/mealweek/internal/logging"
	"github.com/tasteops/mealweek/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cfg holds the values loaded from config.yaml. Set by PersistentPreRunE
// so all subcommands can use it.
var cfg cliConfig

var rootCmd = &cobra.Command{
	Use:   "mealweek",
	Short: "mealweek manages weekly meal orders for a small delivery kitchen",
	Long: `mealweek tracks customers, a weekly menu, delivery weeks, and the
orders placed against each week, with sales reports over the history.
Data lives in a single SQLite file inside the data directory.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if cfg, err = loadConfig(configDir); err != nil {
			return err
		}
		if err := logging.Init(cfg.DevLogging); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.mealweek)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.mealweek-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(reportCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > MEALWEEK_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.DataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > MEALWEEK_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
