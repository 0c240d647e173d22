package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result",
		Short: "Game result commands",
	}

	cmd.AddCommand(newResultGetCmd())
	cmd.AddCommand(newResultTodayCmd())

	return cmd
}

func newResultGetCmd() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a result by game ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID == "" {
				return fmt.Errorf("--game is required")
			}

			var result GameResult
			path := "/api/v1/results/" + url.PathEscape(gameID)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID (required)")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func newResultTodayCmd() *cobra.Command {
	var user, kind string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Get today's result for a user and game kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			var result GameResult
			path := "/api/v1/users/" + url.PathEscape(user) + "/results/today?kind=" + url.QueryEscape(kind)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID (required)")
	cmd.Flags().StringVar(&kind, "kind", "numbergrid", "Game kind: numbergrid, wordguess, hangman, trivia")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
