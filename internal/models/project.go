package models

// ProjectStatus is the lifecycle phase of a project.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectStarted   ProjectStatus = "started"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCanceled  ProjectStatus = "canceled"
)

// MilestoneStatus marks a milestone as pending or completed.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneCompleted MilestoneStatus = "completed"
)

// Milestone is a dated checkpoint within a project.
type Milestone struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	TargetDate string          `json:"targetDate"`
	Status     MilestoneStatus `json:"status"`
}

// Project groups issues toward a goal. Issues reference projects by id only;
// a project never holds its issues, so removing a project cannot cascade.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	StartDate   string        `json:"startDate,omitempty"`
	TargetDate  string        `json:"targetDate,omitempty"`
	Lead        *User         `json:"lead,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Members     []User        `json:"members,omitempty"`
	Milestones  []Milestone   `json:"milestones,omitempty"`
}
