package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/config"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eduvision",
	Short: "Turn study notes into slides and a quiz",
	Long:  "EduVision turns pasted study material into a short narrated slide deck followed by a quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/eduvision/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides EDUVISION_DB env var)")

	rootCmd.Flags().String("file", "", "Preload study material from a .txt or .md file")
	rootCmd.Flags().Bool("watch", false, "Reload --file into the upload screen whenever it changes")

	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the file named by --config, or the default one.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the file logger described by cfg. The terminal belongs
// to the TUI, so nothing is ever logged to stderr.
func newLogger(cfg *config.Config) *logger.Logger {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return logger.Nop()
	}
	return log
}

// historyEnabled reports whether quiz history is on, either in the config
// or because --db names a database.
func historyEnabled(cmd *cobra.Command, cfg *config.Config) bool {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return true
	}
	return cfg != nil && cfg.History.Enabled
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then history.db_path from config (which EDUVISION_DB overrides), then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.History.DBPath != "" {
		return cfg.History.DBPath, store.EnsureDir(cfg.History.DBPath)
	}
	return store.DefaultDBPath()
}
