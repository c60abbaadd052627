package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/output"
)

var (
	linkPRNumber int
	linkPRTitle  string
	linkPRStatus string
	linkURL      string
	linkBranch   string
	linkRepo     string
	linkFileName string
	linkChannel  string
	linkMessages int
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Attach external integrations to an issue",
}

var linkGithubCmd = &cobra.Command{
	Use:   "github <issue>",
	Short: "Link a GitHub pull request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return linkGithubRun(args[0])
	},
}

var linkFigmaCmd = &cobra.Command{
	Use:   "figma <issue>",
	Short: "Link a Figma design file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return linkFigmaRun(args[0])
	},
}

var linkSlackCmd = &cobra.Command{
	Use:   "slack <issue>",
	Short: "Link a Slack thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return linkSlackRun(args[0])
	},
}

func init() {
	linkGithubCmd.Flags().IntVar(&linkPRNumber, "pr", 0, "Pull request number (required)")
	linkGithubCmd.Flags().StringVar(&linkPRTitle, "title", "", "Pull request title")
	linkGithubCmd.Flags().StringVar(&linkPRStatus, "state", "open", "PR state: open, closed, merged, draft")
	linkGithubCmd.Flags().StringVar(&linkURL, "url", "", "Pull request URL")
	linkGithubCmd.Flags().StringVar(&linkBranch, "branch", "", "Branch name")
	linkGithubCmd.Flags().StringVar(&linkRepo, "repo", "", "Repository name")
	_ = linkGithubCmd.MarkFlagRequired("pr")

	linkFigmaCmd.Flags().StringVar(&linkFileName, "file", "", "Design file name (required)")
	linkFigmaCmd.Flags().StringVar(&linkURL, "url", "", "Design file URL")
	_ = linkFigmaCmd.MarkFlagRequired("file")

	linkSlackCmd.Flags().StringVar(&linkChannel, "channel", "", "Channel name (required)")
	linkSlackCmd.Flags().StringVar(&linkURL, "url", "", "Thread URL")
	linkSlackCmd.Flags().IntVar(&linkMessages, "messages", 0, "Message count")
	_ = linkSlackCmd.MarkFlagRequired("channel")

	linkCmd.AddCommand(linkGithubCmd)
	linkCmd.AddCommand(linkFigmaCmd)
	linkCmd.AddCommand(linkSlackCmd)
	rootCmd.AddCommand(linkCmd)
}

func parsePRStatus(v string) (models.PRStatus, error) {
	switch models.PRStatus(v) {
	case models.PROpen, models.PRClosed, models.PRMerged, models.PRDraft:
		return models.PRStatus(v), nil
	default:
		return "", fmt.Errorf("unknown PR state %q (open, closed, merged, draft)", v)
	}
}

func linkGithubRun(issueRef string) error {
	s := getSession()

	status, err := parsePRStatus(linkPRStatus)
	if err != nil {
		return err
	}

	ok := s.LinkGitHubPR(issueRef, models.GitHubPR{
		PRNumber:   linkPRNumber,
		PRTitle:    linkPRTitle,
		PRStatus:   status,
		PRURL:      linkURL,
		BranchName: linkBranch,
		RepoName:   linkRepo,
	})
	if !ok {
		return fmt.Errorf("issue not found: %s", issueRef)
	}
	ui.Success("Linked PR #%d to %s", linkPRNumber, output.KeyColor(issueRef))
	return nil
}

func linkFigmaRun(issueRef string) error {
	s := getSession()

	ok := s.LinkFigmaFile(issueRef, models.FigmaFile{
		FileName:    linkFileName,
		FileURL:     linkURL,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	})
	if !ok {
		return fmt.Errorf("issue not found: %s", issueRef)
	}
	ui.Success("Linked Figma file %q to %s", linkFileName, output.KeyColor(issueRef))
	return nil
}

func linkSlackRun(issueRef string) error {
	s := getSession()

	ok := s.ShareToSlack(issueRef, models.SlackThread{
		ChannelName:  linkChannel,
		ThreadURL:    linkURL,
		MessageCount: linkMessages,
	})
	if !ok {
		return fmt.Errorf("issue not found: %s", issueRef)
	}
	ui.Success("Shared %s to #%s", output.KeyColor(issueRef), linkChannel)
	return nil
}
