package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/quiz"
	"github.com/abhisek/eduvision/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz results",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of results to show")
	historyCmd.Flags().String("session", "", "Only show results for this session ID")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")
	sessionID, _ := cmd.Flags().GetString("session")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !historyEnabled(cmd, cfg) {
		fmt.Fprintln(out, "History is disabled. Set history.enabled in the config or pass --db.")
		return nil
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.EventRepo()
	sessions, err := repo.CountSessions(ctx)
	if err != nil {
		return err
	}
	results, err := repo.QueryQuizResults(ctx, store.QueryOpts{Limit: limit, SessionID: sessionID})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Sessions started: %d\n", sessions)
	if len(results) == 0 {
		fmt.Fprintln(out, "No quiz results yet.")
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-17s  %-30s  %5s  %-7s  %s\n", "WHEN", "TOPIC", "SCORE", "CORRECT", "")
	for _, r := range results {
		topic := r.Topic
		if n := []rune(topic); len(n) > 30 {
			topic = string(n[:29]) + "…"
		}
		fmt.Fprintf(out, "%-17s  %-30s  %4d%%  %d/%-5d  %s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04"), topic, r.Score, r.Correct, r.Total,
			quiz.ParseTier(r.Tier).Message())
	}
	return nil
}
