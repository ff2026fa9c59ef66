package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var upvoteCmd = &cobra.Command{
	Use:   "upvote [service-id]",
	Short: "Upvote a community-submitted service",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpvote,
}

func init() {
	rootCmd.AddCommand(upvoteCmd)
}

func runUpvote(cmd *cobra.Command, args []string) error {
	if submissionService == nil {
		return errors.New("submission service not configured")
	}

	if err := submissionService.Upvote(context.Background(), args[0]); err != nil {
		return fmt.Errorf("upvote failed: %w", err)
	}

	cmd.Printf("Upvoted %s\n", args[0])
	return nil
}
