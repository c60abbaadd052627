package models

import "time"

// Status represents the workflow state of an issue.
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
	StatusCanceled   Status = "Canceled"
)

// Priority represents the urgency of an issue.
type Priority string

const (
	PriorityUrgent Priority = "Urgent"
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
	PriorityNone   Priority = "No priority"
)

// priorityRanks gives the fixed total order Urgent > High > Medium > Low > None.
var priorityRanks = map[Priority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
	PriorityNone:   4,
}

// Rank returns the sort rank of a priority; lower ranks sort first in
// descending order. Unknown priorities rank below "No priority".
func (p Priority) Rank() int {
	if r, ok := priorityRanks[p]; ok {
		return r
	}
	return len(priorityRanks)
}

// Label is a colored tag attached to an issue.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Issue represents a trackable unit of work.
//
// ProjectID and CycleID are weak lookup references: the issue holds the id,
// never the reverse, and filtering code must tolerate dangling values.
type Issue struct {
	ID           string
	Key          string // human-readable, e.g. "ART-12"
	Title        string
	Description  string
	Status       Status
	Priority     Priority
	Assignee     *User
	Creator      User
	Team         Team
	ProjectID    string
	CycleID      string
	Labels       []Label
	Comments     []Comment
	Activities   []Activity
	Integrations Integrations
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasLabel reports whether the issue carries the label with the given id.
func (i *Issue) HasLabel(labelID string) bool {
	for _, l := range i.Labels {
		if l.ID == labelID {
			return true
		}
	}
	return false
}
