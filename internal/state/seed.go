package state

import (
	"time"

	"github.com/artti-capital/linea/internal/models"
)

// Seed fills an empty store with a small demo workload so listings, the
// board, and the query filters have data to chew on. Issues are
// session-local, so the seed runs through the normal mutations and produces
// a consistent audit trail.
func Seed(s *Store) {
	if len(s.issues) > 0 {
		return
	}

	members := s.currentTeam.Members
	assignee := func(n int) *models.User {
		if n < len(members) {
			u := members[n]
			return &u
		}
		return nil
	}

	var project models.Project
	if len(s.projects) == 0 {
		project = s.AddProject(models.Project{
			Name:        "Platform Infrastructure",
			Description: "Scaling core services and the database layer.",
			Status:      models.ProjectStarted,
			StartDate:   "2024-01-15",
			TargetDate:  "2024-06-30",
			Icon:        "🚀",
			Milestones: []models.Milestone{
				{ID: "m-1", Name: "Database Migration", TargetDate: "2024-03-01", Status: models.MilestoneCompleted},
				{ID: "m-2", Name: "Autoscaling", TargetDate: "2024-05-15", Status: models.MilestonePending},
			},
		})
	} else {
		project = s.projects[0]
	}

	var cycle models.Cycle
	if len(s.cycles) == 0 {
		now := time.Now().UTC()
		cycle = s.AddCycle(models.Cycle{
			Name:      "Sprint 1: Foundation",
			Number:    1,
			StartDate: now.AddDate(0, 0, -7),
			EndDate:   now.AddDate(0, 0, 7),
		})
	} else {
		cycle = s.cycles[0]
	}

	setup := models.Label{ID: "l-1", Name: "Setup", Color: "#FF5500"}
	bug := models.Label{ID: "l-2", Name: "Bug", Color: "#EB5757"}
	design := models.Label{ID: "l-3", Name: "Design", Color: "#BB87FC"}

	first := s.CreateIssue(IssueInput{
		Title:       "Initialize repository scaffolding",
		Description: "Set up the base structure of the tracker.",
		Status:      models.StatusDone,
		Priority:    models.PriorityHigh,
		Labels:      []models.Label{setup},
		ProjectID:   project.ID,
		CycleID:     cycle.ID,
	})
	s.LinkGitHubPR(first.ID, models.GitHubPR{
		PRNumber:   42,
		PRTitle:    "feat: add base framework setup",
		PRStatus:   models.PRMerged,
		PRURL:      "https://github.com/artti-capital/linea/pull/42",
		BranchName: "main",
		RepoName:   "linea",
	})

	s.CreateIssue(IssueInput{
		Title:     "Fix login crash on empty password",
		Status:    models.StatusInProgress,
		Priority:  models.PriorityUrgent,
		Assignee:  assignee(1),
		Labels:    []models.Label{bug},
		ProjectID: project.ID,
		CycleID:   cycle.ID,
	})
	s.CreateIssue(IssueInput{
		Title:    "Polish dashboard spacing",
		Status:   models.StatusTodo,
		Priority: models.PriorityLow,
		Assignee: assignee(2),
		Labels:   []models.Label{design},
	})
	s.CreateIssue(IssueInput{
		Title:     "Evaluate websocket sync strategy",
		Status:    models.StatusBacklog,
		Priority:  models.PriorityMedium,
		ProjectID: project.ID,
	})
	s.CreateIssue(IssueInput{
		Title:    "Keyboard shortcuts for board navigation",
		Status:   models.StatusTodo,
		Priority: models.PriorityHigh,
		Assignee: assignee(0),
		CycleID:  cycle.ID,
	})
}
