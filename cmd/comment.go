package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artti-capital/linea/internal/output"
)

var (
	commentBody   string
	commentParent string
	commentEmoji  string
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage issue comments and reactions",
}

var commentAddCmd = &cobra.Command{
	Use:   "add <issue>",
	Short: "Comment on an issue",
	Long:  "Add a comment. With --reply-to, attaches as a reply to a top-level comment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commentAddRun(args[0])
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <issue> <comment-id>",
	Short: "Edit a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commentEditRun(args[0], args[1])
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <issue> <comment-id>",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commentDeleteRun(args[0], args[1])
	},
}

var commentReactCmd = &cobra.Command{
	Use:   "react <issue> <comment-id>",
	Short: "Toggle an emoji reaction on a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commentReactRun(args[0], args[1])
	},
}

func init() {
	commentAddCmd.Flags().StringVarP(&commentBody, "body", "m", "", "Comment body (required)")
	commentAddCmd.Flags().StringVar(&commentParent, "reply-to", "", "Parent comment id")
	_ = commentAddCmd.MarkFlagRequired("body")

	commentEditCmd.Flags().StringVarP(&commentBody, "body", "m", "", "New body (required)")
	_ = commentEditCmd.MarkFlagRequired("body")

	commentReactCmd.Flags().StringVar(&commentEmoji, "emoji", "👍", "Emoji to toggle")

	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	commentCmd.AddCommand(commentReactCmd)
	rootCmd.AddCommand(commentCmd)
}

func commentAddRun(issueRef string) error {
	s := getSession()

	c, ok := s.AddComment(issueRef, commentBody, commentParent)
	if !ok {
		return fmt.Errorf("issue not found: %s", issueRef)
	}
	if commentParent != "" {
		ui.Success("Replied with comment %s", output.Dim(c.ID))
	} else {
		ui.Success("Added comment %s", output.Dim(c.ID))
	}
	return nil
}

func commentEditRun(issueRef, commentID string) error {
	s := getSession()

	if !s.UpdateComment(issueRef, commentID, commentBody) {
		return fmt.Errorf("comment not found: %s on %s", commentID, issueRef)
	}
	ui.Success("Edited comment %s", commentID)
	return nil
}

func commentDeleteRun(issueRef, commentID string) error {
	s := getSession()

	if !s.DeleteComment(issueRef, commentID) {
		return fmt.Errorf("comment not found: %s on %s", commentID, issueRef)
	}
	ui.Success("Deleted comment %s", commentID)
	return nil
}

func commentReactRun(issueRef, commentID string) error {
	s := getSession()

	if !s.ToggleReaction(issueRef, commentID, commentEmoji) {
		return fmt.Errorf("comment not found: %s on %s", commentID, issueRef)
	}
	ui.Success("Toggled %s on comment %s", commentEmoji, commentID)
	return nil
}
