package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"commentsview/internal/domain/entities"
	"commentsview/internal/infrastructure/database"
)

func newAddCmd() *cobra.Command {
	var threadID, author string

	cmd := &cobra.Command{
		Use:   "add <message>",
		Short: "Add a comment to a thread",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				return fmt.Errorf("comment message is required")
			}

			pool, err := database.NewPool(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			c := &entities.Comment{
				Message: message,
				Author:  entities.CommentAuthor{Username: author},
			}
			if err := database.NewCommentRepository(pool).Create(cmd.Context(), threadID, c); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&threadID, "thread", "", "thread ID")
	cmd.Flags().StringVar(&author, "author", "", "author username")
	_ = cmd.MarkFlagRequired("thread")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}
