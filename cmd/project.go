package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/output"
)

var (
	projectDesc   string
	projectStatus string
	projectIcon   string
	projectTarget string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectListRun()
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectAddRun(args[0])
	},
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectListRun()
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <project>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectUpdateRun(args[0])
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&projectDesc, "desc", "", "Project description")
	projectAddCmd.Flags().StringVar(&projectStatus, "status", "planned", "Status: planned, started, paused, completed, canceled")
	projectAddCmd.Flags().StringVar(&projectIcon, "icon", "", "Display icon")
	projectAddCmd.Flags().StringVar(&projectTarget, "target", "", "Target date (YYYY-MM-DD)")

	projectUpdateCmd.Flags().StringVar(&projectDesc, "desc", "", "New description")
	projectUpdateCmd.Flags().StringVar(&projectStatus, "status", "", "New status")
	projectUpdateCmd.Flags().StringVar(&projectTarget, "target", "", "New target date")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	rootCmd.AddCommand(projectCmd)
}

func parseProjectStatus(v string) (models.ProjectStatus, error) {
	switch models.ProjectStatus(v) {
	case models.ProjectPlanned, models.ProjectStarted, models.ProjectPaused,
		models.ProjectCompleted, models.ProjectCanceled:
		return models.ProjectStatus(v), nil
	default:
		return "", fmt.Errorf("unknown project status %q", v)
	}
}

func projectAddRun(name string) error {
	s := getSession()

	status, err := parseProjectStatus(projectStatus)
	if err != nil {
		return err
	}
	lead := s.CurrentUser()
	p := s.AddProject(models.Project{
		Name:        name,
		Description: projectDesc,
		Status:      status,
		TargetDate:  projectTarget,
		Icon:        projectIcon,
		Lead:        &lead,
		Members:     []models.User{lead},
	})
	ui.Success("Created project %s (%s)", p.Name, output.Dim(p.ID))
	return nil
}

func projectListRun() error {
	s := getSession()

	projects := s.Projects()
	if len(projects) == 0 {
		ui.Info("No projects. Use 'linea project add <name>' to create one.")
		return nil
	}

	// Count issues per project for display.
	counts := make(map[string]int)
	for _, i := range s.Issues() {
		if i.ProjectID != "" {
			counts[i.ProjectID]++
		}
	}

	table := ui.Table([]string{"Name", "Status", "Target", "Issues", "Milestones"})
	for _, p := range projects {
		done := 0
		for _, m := range p.Milestones {
			if m.Status == models.MilestoneCompleted {
				done++
			}
		}
		table.Append([]string{
			p.Icon + " " + p.Name,
			string(p.Status),
			p.TargetDate,
			fmt.Sprintf("%d", counts[p.ID]),
			fmt.Sprintf("%d/%d", done, len(p.Milestones)),
		})
	}
	table.Render()
	return nil
}

func projectUpdateRun(ref string) error {
	s := getSession()

	p, ok := s.Project(ref)
	if !ok {
		return fmt.Errorf("project not found: %s", ref)
	}

	var status models.ProjectStatus
	if projectStatus != "" {
		parsed, err := parseProjectStatus(projectStatus)
		if err != nil {
			return err
		}
		status = parsed
	}

	s.UpdateProject(p.ID, func(p *models.Project) {
		if projectDesc != "" {
			p.Description = projectDesc
		}
		if status != "" {
			p.Status = status
		}
		if projectTarget != "" {
			p.TargetDate = projectTarget
		}
	})
	ui.Success("Updated project %s", p.Name)
	return nil
}
