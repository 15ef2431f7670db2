package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/app"
	"github.com/abhisek/eduvision/internal/narration/speech"
	"github.com/abhisek/eduvision/internal/source"
	"github.com/abhisek/eduvision/internal/store"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Sync()

	opts := app.Options{
		Logger:          log,
		ProcessingDelay: cfg.UI.ProcessingDelay,
		Splash:          cfg.UI.Splash,
	}

	file, _ := cmd.Flags().GetString("file")
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && file == "" {
		return fmt.Errorf("--watch requires --file")
	}
	if file != "" {
		text, err := source.Load(file)
		if err != nil {
			return err
		}
		opts.Material = text
		if watch {
			opts.WatchPath = file
		}
	}

	speaker, err := speech.New(cfg.Narration.Backend, cfg.Narration.Program, cfg.Narration.Voice, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Narration unavailable:", err)
	} else {
		opts.Speaker = speaker
	}

	if historyEnabled(cmd, cfg) {
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		opts.EventRepo = st.EventRepo()
		log.Info("history enabled", "db", dbPath)
	}

	return app.Run(opts)
}
