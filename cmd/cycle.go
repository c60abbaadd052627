package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/output"
)

var cycleWeeks int

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Manage cycles (sprints)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cycleListRun()
	},
}

var cycleAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a cycle starting now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cycleAddRun(args[0])
	},
}

var cycleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List cycles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cycleListRun()
	},
}

var cycleMoveCmd = &cobra.Command{
	Use:   "move <issue> [cycle]",
	Short: "Move an issue into a cycle (or out, with no cycle)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cycle := ""
		if len(args) > 1 {
			cycle = args[1]
		}
		return cycleMoveRun(args[0], cycle)
	},
}

func init() {
	cycleAddCmd.Flags().IntVar(&cycleWeeks, "weeks", 2, "Cycle length in weeks")

	cycleCmd.AddCommand(cycleAddCmd)
	cycleCmd.AddCommand(cycleListCmd)
	cycleCmd.AddCommand(cycleMoveCmd)
	rootCmd.AddCommand(cycleCmd)
}

func cycleAddRun(name string) error {
	s := getSession()

	now := time.Now().UTC()
	c := s.AddCycle(models.Cycle{
		Name:      name,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 7*cycleWeeks),
	})
	ui.Success("Created cycle %d: %s", c.Number, c.Name)
	return nil
}

func cycleListRun() error {
	s := getSession()

	cycles := s.Cycles()
	if len(cycles) == 0 {
		ui.Info("No cycles. Use 'linea cycle add <name>' to create one.")
		return nil
	}

	counts := make(map[string]int)
	for _, i := range s.Issues() {
		if i.CycleID != "" {
			counts[i.CycleID]++
		}
	}

	table := ui.Table([]string{"#", "Name", "Start", "End", "Issues"})
	for _, c := range cycles {
		table.Append([]string{
			fmt.Sprintf("%d", c.Number),
			c.Name,
			c.StartDate.Format("2006-01-02"),
			c.EndDate.Format("2006-01-02"),
			fmt.Sprintf("%d", counts[c.ID]),
		})
	}
	table.Render()
	return nil
}

func cycleMoveRun(issueRef, cycleRef string) error {
	s := getSession()

	cycleID := ""
	if cycleRef != "" {
		c, ok := s.Cycle(cycleRef)
		if !ok {
			return fmt.Errorf("cycle not found: %s", cycleRef)
		}
		cycleID = c.ID
	}

	if !s.MoveIssueToCycle(issueRef, cycleID) {
		return fmt.Errorf("issue not found: %s", issueRef)
	}
	if cycleID == "" {
		ui.Success("Moved %s out of its cycle", output.KeyColor(issueRef))
	} else {
		ui.Success("Moved %s into %s", output.KeyColor(issueRef), cycleRef)
	}
	return nil
}
