package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/source"
)

var deckCmd = &cobra.Command{
	Use:   "deck FILE",
	Short: "Print the slides and quiz built from a study file (no TUI, no database)",
	Long: `Segment a .txt or .md file into slides and print them with the quiz.

Useful for checking how a piece of material will be split before studying it.`,
	Args: cobra.ExactArgs(1),
	RunE: runDeck,
}

func init() {
	deckCmd.Flags().Bool("json", false, "Print the session as JSON")
}

func runDeck(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	text, err := source.Load(args[0])
	if err != nil {
		return err
	}
	sess, err := deck.NewSession(text)
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sess)
	}
	printSession(out, sess)
	return nil
}

func printSession(w io.Writer, sess *deck.StudySession) {
	fmt.Fprintf(w, "Topic: %s\n", sess.Topic)
	fmt.Fprintf(w, "Slides: %d\n", len(sess.Slides))

	for _, s := range sess.Slides {
		fmt.Fprintf(w, "\n── %s ──\n", s.Title)
		for _, line := range s.Content {
			fmt.Fprintf(w, "  • %s\n", strings.TrimSpace(line))
		}
		fmt.Fprintf(w, "  [image] %s\n", s.ImagePrompt)
	}

	fmt.Fprintf(w, "\nQuiz: %d questions\n", len(sess.Quiz))
	for i, q := range sess.Quiz {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			mark := " "
			if j == q.CorrectAnswer {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s %d) %s\n", mark, j+1, opt)
		}
	}
}
