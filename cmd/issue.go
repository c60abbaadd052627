package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/artti-capital/linea/internal/filter"
	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/output"
	"github.com/artti-capital/linea/internal/state"
)

var (
	issueTitle    string
	issueDesc     string
	issueStatus   string
	issuePriority string
	issueAssignee string
	issueProject  string
	issueCycle    string
	issueQuery    string
	issueAll      bool
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Manage issues",
	Long:  "Create, list, and update issues for your team.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueListRun()
	},
}

var issueAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new issue",
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueAddRun()
	},
}

var issueListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List visible issues",
	Long: `List issues through the active filters.

--query accepts the search syntax: free text plus key:value tokens like
is:done, status:progress, priority:high, assigned:me. Without an explicit
status filter the list hides Done and Backlog issues; use --all to show
every status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueListRun()
	},
}

var issueShowCmd = &cobra.Command{
	Use:   "show <issue>",
	Short: "Show issue details, comments, and history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueShowRun(args[0])
	},
}

var issueUpdateCmd = &cobra.Command{
	Use:   "update <issue>",
	Short: "Update an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueUpdateRun(args[0])
	},
}

var issueDeleteCmd = &cobra.Command{
	Use:   "delete <issue>...",
	Short: "Delete issues",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueDeleteRun(args)
	},
}

var issueAssignCmd = &cobra.Command{
	Use:   "assign <issue> [member]",
	Short: "Assign an issue to a team member (or unassign)",
	Long:  "Assign an issue by member name or id. Without a member, unassigns.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		member := ""
		if len(args) > 1 {
			member = args[1]
		}
		return issueAssignRun(args[0], member)
	},
}

func init() {
	issueAddCmd.Flags().StringVar(&issueTitle, "title", "", "Issue title (required)")
	issueAddCmd.Flags().StringVar(&issueDesc, "desc", "", "Issue description")
	issueAddCmd.Flags().StringVar(&issueStatus, "status", "", "Initial status (default Todo)")
	issueAddCmd.Flags().StringVar(&issuePriority, "priority", "", "Priority: urgent, high, medium, low")
	issueAddCmd.Flags().StringVar(&issueProject, "project", "", "Project id or name")
	issueAddCmd.Flags().StringVar(&issueCycle, "cycle", "", "Cycle id or name")
	_ = issueAddCmd.MarkFlagRequired("title")

	issueListCmd.Flags().StringVarP(&issueQuery, "query", "q", "", "Search query (free text + key:value tokens)")
	issueListCmd.Flags().StringVar(&issueStatus, "status", "", "Filter by status")
	issueListCmd.Flags().StringVar(&issuePriority, "priority", "", "Filter by priority")
	issueListCmd.Flags().StringVar(&issueAssignee, "assignee", "", "Filter by assignee id")
	issueListCmd.Flags().BoolVar(&issueAll, "all", false, "Show all statuses (board semantics)")

	issueUpdateCmd.Flags().StringVar(&issueTitle, "title", "", "New title")
	issueUpdateCmd.Flags().StringVar(&issueDesc, "desc", "", "New description")
	issueUpdateCmd.Flags().StringVar(&issueStatus, "status", "", "New status")
	issueUpdateCmd.Flags().StringVar(&issuePriority, "priority", "", "New priority")

	issueCmd.AddCommand(issueAddCmd)
	issueCmd.AddCommand(issueListCmd)
	issueCmd.AddCommand(issueShowCmd)
	issueCmd.AddCommand(issueUpdateCmd)
	issueCmd.AddCommand(issueDeleteCmd)
	issueCmd.AddCommand(issueAssignCmd)
	rootCmd.AddCommand(issueCmd)
}

// parseStatusFlag maps a flag value to a Status, accepting both enum display
// strings and query-style shorthand.
func parseStatusFlag(v string) (models.Status, error) {
	switch strings.ToLower(v) {
	case "backlog":
		return models.StatusBacklog, nil
	case "todo":
		return models.StatusTodo, nil
	case "progress", "in progress", "in-progress":
		return models.StatusInProgress, nil
	case "done":
		return models.StatusDone, nil
	case "canceled":
		return models.StatusCanceled, nil
	default:
		return "", fmt.Errorf("unknown status %q (backlog, todo, progress, done, canceled)", v)
	}
}

func parsePriorityFlag(v string) (models.Priority, error) {
	switch strings.ToLower(v) {
	case "urgent":
		return models.PriorityUrgent, nil
	case "high":
		return models.PriorityHigh, nil
	case "medium":
		return models.PriorityMedium, nil
	case "low":
		return models.PriorityLow, nil
	case "none", "no priority":
		return models.PriorityNone, nil
	default:
		return "", fmt.Errorf("unknown priority %q (urgent, high, medium, low, none)", v)
	}
}

func issueAddRun() error {
	s := getSession()

	input := state.IssueInput{
		Title:       issueTitle,
		Description: issueDesc,
	}

	if issueStatus != "" {
		st, err := parseStatusFlag(issueStatus)
		if err != nil {
			return err
		}
		input.Status = st
	}
	if issuePriority != "" {
		pr, err := parsePriorityFlag(issuePriority)
		if err != nil {
			return err
		}
		input.Priority = pr
	}
	if issueProject != "" {
		p, ok := s.Project(issueProject)
		if !ok {
			return fmt.Errorf("project not found: %s", issueProject)
		}
		input.ProjectID = p.ID
	}
	if issueCycle != "" {
		c, ok := s.Cycle(issueCycle)
		if !ok {
			return fmt.Errorf("cycle not found: %s", issueCycle)
		}
		input.CycleID = c.ID
	}

	i := s.CreateIssue(input)
	ui.Success("Created issue %s: %s", output.KeyColor(i.Key), i.Title)
	return nil
}

func issueListRun() error {
	s := getSession()

	if issueQuery != "" {
		s.ApplyQuery(issueQuery)
	}
	if issueStatus != "" {
		st, err := parseStatusFlag(issueStatus)
		if err != nil {
			return err
		}
		statuses := []models.Status{st}
		s.SetFilters(state.FilterUpdate{Status: &statuses})
	}
	if issuePriority != "" {
		pr, err := parsePriorityFlag(issuePriority)
		if err != nil {
			return err
		}
		priorities := []models.Priority{pr}
		s.SetFilters(state.FilterUpdate{Priority: &priorities})
	}
	if issueAssignee != "" {
		assignees := []string{issueAssignee}
		s.SetFilters(state.FilterUpdate{Assignees: &assignees})
	}

	view := filter.ViewIssues
	if issueAll {
		view = filter.ViewBoard
	}
	issues := s.Visible(view)

	if len(issues) == 0 {
		ui.Info("No issues match. Try --all or --seed for demo data.")
		return nil
	}

	table := ui.Table([]string{"Key", "Title", "Status", "Priority", "Assignee"})
	for _, i := range issues {
		assignee := ""
		if i.Assignee != nil {
			assignee = i.Assignee.Name
		}
		table.Append([]string{
			output.KeyColor(i.Key),
			i.Title,
			output.StatusColor(i.Status),
			output.PriorityColor(i.Priority),
			assignee,
		})
	}
	table.Render()
	return nil
}

func issueShowRun(ref string) error {
	s := getSession()

	i, ok := s.Issue(ref)
	if !ok {
		return fmt.Errorf("issue not found: %s", ref)
	}

	fmt.Fprintf(ui.Out, "%s  %s\n", output.KeyColor(i.Key), i.Title)
	fmt.Fprintf(ui.Out, "  Status:     %s\n", output.StatusColor(i.Status))
	fmt.Fprintf(ui.Out, "  Priority:   %s\n", output.PriorityColor(i.Priority))
	if i.Assignee != nil {
		fmt.Fprintf(ui.Out, "  Assignee:   %s\n", i.Assignee.Name)
	}
	if i.Description != "" {
		fmt.Fprintf(ui.Out, "  Desc:       %s\n", i.Description)
	}
	if p, ok := s.Project(i.ProjectID); ok {
		fmt.Fprintf(ui.Out, "  Project:    %s\n", p.Name)
	}
	if c, ok := s.Cycle(i.CycleID); ok {
		fmt.Fprintf(ui.Out, "  Cycle:      %s\n", c.Name)
	}
	if len(i.Labels) > 0 {
		names := make([]string, len(i.Labels))
		for n, l := range i.Labels {
			names[n] = l.Name
		}
		fmt.Fprintf(ui.Out, "  Labels:     %s\n", strings.Join(names, ", "))
	}
	if i.Integrations.GitHub != nil {
		gh := i.Integrations.GitHub
		fmt.Fprintf(ui.Out, "  GitHub:     PR #%d (%s) %s\n", gh.PRNumber, gh.PRStatus, gh.PRURL)
	}
	if i.Integrations.Figma != nil {
		fmt.Fprintf(ui.Out, "  Figma:      %s %s\n", i.Integrations.Figma.FileName, i.Integrations.Figma.FileURL)
	}
	if i.Integrations.Slack != nil {
		sl := i.Integrations.Slack
		fmt.Fprintf(ui.Out, "  Slack:      #%s (%d messages)\n", sl.ChannelName, sl.MessageCount)
	}
	fmt.Fprintf(ui.Out, "  Created:    %s\n", i.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(ui.Out, "  Updated:    %s\n", i.UpdatedAt.Format(time.RFC3339))

	if len(i.Comments) > 0 {
		fmt.Fprintln(ui.Out)
		fmt.Fprintf(ui.Out, "  Comments (%d):\n", len(i.Comments))
		for _, c := range i.Comments {
			indent := "  "
			if c.ParentID != "" {
				indent = "      ↳ "
			}
			fmt.Fprintf(ui.Out, "  %s%s %s: %s\n", indent, output.Dim(c.ID), c.User.Name, c.Body)
			for _, r := range c.Reactions {
				fmt.Fprintf(ui.Out, "    %s%s %d\n", indent, r.Emoji, len(r.UserIDs))
			}
		}
	}

	fmt.Fprintln(ui.Out)
	fmt.Fprintf(ui.Out, "  History:\n")
	for _, a := range i.Activities {
		fmt.Fprintf(ui.Out, "    %s %s\n", output.Dim(a.CreatedAt.Format("2006-01-02 15:04")), describeActivity(a))
	}
	return nil
}

// describeActivity renders one audit entry as a sentence.
func describeActivity(a models.Activity) string {
	switch a.Type {
	case models.ActivityCreate:
		return fmt.Sprintf("%s created the issue", a.User.Name)
	case models.ActivityStatus:
		return fmt.Sprintf("%s changed status %s → %s", a.User.Name, a.OldValue, a.NewValue)
	case models.ActivityPriority:
		return fmt.Sprintf("%s changed priority %s → %s", a.User.Name, a.OldValue, a.NewValue)
	case models.ActivityAssignee:
		return fmt.Sprintf("%s reassigned %s → %s", a.User.Name, a.OldValue, a.NewValue)
	case models.ActivityComment:
		return fmt.Sprintf("%s commented", a.User.Name)
	case models.ActivityIntegration:
		return fmt.Sprintf("%s: %s", a.User.Name, a.NewValue)
	default:
		return fmt.Sprintf("%s: %s", a.User.Name, a.Type)
	}
}

func issueUpdateRun(ref string) error {
	s := getSession()

	var upd state.IssueUpdate
	if issueTitle != "" {
		upd.Title = &issueTitle
	}
	if issueDesc != "" {
		upd.Description = &issueDesc
	}
	if issueStatus != "" {
		st, err := parseStatusFlag(issueStatus)
		if err != nil {
			return err
		}
		upd.Status = &st
	}
	if issuePriority != "" {
		pr, err := parsePriorityFlag(issuePriority)
		if err != nil {
			return err
		}
		upd.Priority = &pr
	}

	if !s.UpdateIssue(ref, upd) {
		return fmt.Errorf("issue not found: %s", ref)
	}
	ui.Success("Updated %s", ref)
	return nil
}

func issueDeleteRun(refs []string) error {
	s := getSession()

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if i, ok := s.Issue(ref); ok {
			ids = append(ids, i.ID)
		}
	}

	removed := s.DeleteIssues(ids)
	if removed == 0 {
		ui.Info("Nothing deleted.")
		return nil
	}
	ui.Success("Deleted %d issue(s)", removed)
	return nil
}

func issueAssignRun(ref, member string) error {
	s := getSession()

	upd := state.IssueUpdate{SetAssignee: true}
	if member != "" {
		found := false
		for _, m := range s.CurrentTeam().Members {
			if m.ID == member || strings.EqualFold(m.Name, member) {
				u := m
				upd.Assignee = &u
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no team member matching %q", member)
		}
	}

	if !s.UpdateIssue(ref, upd) {
		return fmt.Errorf("issue not found: %s", ref)
	}
	if upd.Assignee != nil {
		ui.Success("Assigned %s to %s", ref, upd.Assignee.Name)
	} else {
		ui.Success("Unassigned %s", ref)
	}
	return nil
}
