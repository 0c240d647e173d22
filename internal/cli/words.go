package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Daily word commands",
	}

	cmd.AddCommand(newWordsTodayCmd())
	cmd.AddCommand(newWordsScheduleCmd())

	return cmd
}

func newWordsTodayCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Get today's word for a game kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DailyWord

			path := "/api/v1/words/today?kind=" + url.QueryEscape(kind)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "wordguess", "Game kind: wordguess, hangman")

	return cmd
}

func newWordsScheduleCmd() *cobra.Command {
	var kind, word, hint, category, date string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a word for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if word == "" || date == "" {
				return fmt.Errorf("--word and --date are required")
			}

			req := map[string]string{
				"kind":     kind,
				"word":     word,
				"hint":     hint,
				"category": category,
				"date":     date,
			}
			var result DailyWord

			if err := client.Put("/api/v1/words", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "wordguess", "Game kind: wordguess, hangman")
	cmd.Flags().StringVar(&word, "word", "", "Word to schedule (required)")
	cmd.Flags().StringVar(&hint, "hint", "", "Hint shown to the player")
	cmd.Flags().StringVar(&category, "category", "", "Word category")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("word")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
