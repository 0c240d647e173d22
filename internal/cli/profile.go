package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "User profile commands",
	}

	cmd.AddCommand(newProfileGetCmd())
	cmd.AddCommand(newProfileTicketsCmd())

	return cmd
}

func newProfileGetCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			var result Profile
			path := "/api/v1/users/" + url.PathEscape(user) + "/profile"
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newProfileTicketsCmd() *cobra.Command {
	var user string
	var count int

	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Grant replay tickets to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			req := map[string]int{"count": count}
			var result Profile
			path := "/api/v1/users/" + url.PathEscape(user) + "/tickets"
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID (required)")
	cmd.Flags().IntVar(&count, "count", 1, "Number of tickets to grant")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
