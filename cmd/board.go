package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artti-capital/linea/internal/filter"
	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/output"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the kanban board",
	Long: `Show issues bucketed into status columns.

The board never applies the implicit active-work filter: every status is
shown, including Done and Backlog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return boardRun()
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

var boardColumns = []models.Status{
	models.StatusBacklog,
	models.StatusTodo,
	models.StatusInProgress,
	models.StatusDone,
	models.StatusCanceled,
}

func boardRun() error {
	s := getSession()
	s.SetView(models.ViewBoard)

	issues := s.Visible(filter.ViewBoard)
	if len(issues) == 0 {
		ui.Info("Board is empty. Run with --seed for demo data.")
		return nil
	}

	buckets := make(map[models.Status][]models.Issue, len(boardColumns))
	for _, i := range issues {
		buckets[i.Status] = append(buckets[i.Status], i)
	}

	for _, col := range boardColumns {
		colIssues := buckets[col]
		fmt.Fprintf(ui.Out, "%s (%d)\n", output.StatusColor(col), len(colIssues))
		if len(colIssues) == 0 {
			fmt.Fprintf(ui.Out, "  %s\n", output.Dim("-"))
			continue
		}
		for _, i := range colIssues {
			assignee := ""
			if i.Assignee != nil {
				assignee = "  @" + i.Assignee.Name
			}
			fmt.Fprintf(ui.Out, "  %s %s [%s]%s\n",
				output.KeyColor(i.Key), i.Title, output.PriorityColor(i.Priority), assignee)
		}
	}
	return nil
}
