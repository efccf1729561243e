package main

import (
	"fmt"
	"strconv"

	"retrolog/internal/client"
	"retrolog/internal/validation"

	"github.com/spf13/cobra"
)

var commentMessage string

var commentCmd = &cobra.Command{
	Use:   "comment <postID>",
	Short: "Add a comment to a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		if err := validation.ValidateComment(commentMessage); err != nil {
			return err
		}

		state := store.Current()
		comment := api.AddComment(cmd.Context(), postID, client.AddCommentInput{
			Content:  commentMessage,
			UserID:   state.User.ID.Int64(),
			UserName: state.User.Name,
		}, state.User.Token)
		if comment == nil {
			return fmt.Errorf("adding comment failed")
		}

		fmt.Printf("Comment added to post #%d\n", postID)
		return nil
	},
}

func init() {
	commentCmd.Flags().StringVar(&commentMessage, "message", "", "comment text")
}
