package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/output"
)

var viewQuery string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Manage saved views",
	Long:  "Save the current filters under a name and re-apply them later.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewListRun()
	},
}

var viewSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current filters as a named view",
	Long: `Freeze the current filter state under a name.

With --query, the query is applied first, so
'linea view save "Urgent mine" -q "priority:urgent assigned:me"' captures
that search in one step.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewSaveRun(args[0])
	},
}

var viewListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved views",
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewListRun()
	},
}

var viewApplyCmd = &cobra.Command{
	Use:   "apply <view>",
	Short: "Apply a saved view and list the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewApplyRun(args[0])
	},
}

var viewDeleteCmd = &cobra.Command{
	Use:   "delete <view>",
	Short: "Delete a saved view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewDeleteRun(args[0])
	},
}

func init() {
	viewSaveCmd.Flags().StringVarP(&viewQuery, "query", "q", "", "Apply this search query before saving")

	viewCmd.AddCommand(viewSaveCmd)
	viewCmd.AddCommand(viewListCmd)
	viewCmd.AddCommand(viewApplyCmd)
	viewCmd.AddCommand(viewDeleteCmd)
	rootCmd.AddCommand(viewCmd)
}

func viewSaveRun(name string) error {
	s := getSession()

	if viewQuery != "" {
		s.ApplyQuery(viewQuery)
	}
	v := s.SaveCurrentView(name)
	ui.Success("Saved view %q (%s)", v.Name, output.Dim(v.ID))
	return nil
}

func viewListRun() error {
	s := getSession()

	views := s.SavedViews()
	if len(views) == 0 {
		ui.Info("No saved views. Use 'linea view save <name>' to create one.")
		return nil
	}

	table := ui.Table([]string{"ID", "Name", "Criteria"})
	for _, v := range views {
		table.Append([]string{output.Dim(v.ID), v.Name, describeFilters(v.Filters)})
	}
	table.Render()
	return nil
}

func viewApplyRun(ref string) error {
	s := getSession()

	if !s.ApplySavedView(ref) {
		return fmt.Errorf("saved view not found: %s", ref)
	}
	ui.Info("Applied view %q", ref)
	return issueListRun()
}

func viewDeleteRun(ref string) error {
	s := getSession()

	if !s.DeleteSavedView(ref) {
		return fmt.Errorf("saved view not found: %s", ref)
	}
	ui.Success("Deleted view %q", ref)
	return nil
}

// describeFilters summarizes a filter state for table display.
func describeFilters(f models.FilterState) string {
	var parts []string
	for _, s := range f.Status {
		parts = append(parts, "status="+string(s))
	}
	for _, p := range f.Priority {
		parts = append(parts, "priority="+string(p))
	}
	for _, a := range f.Assignees {
		parts = append(parts, "assignee="+a)
	}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", f.Search))
	}
	if len(parts) == 0 {
		return "(everything)"
	}
	return strings.Join(parts, " ")
}
