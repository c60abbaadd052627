package models

import "time"

// ActivityType classifies an audit-log entry.
type ActivityType string

const (
	ActivityCreate      ActivityType = "create"
	ActivityStatus      ActivityType = "status"
	ActivityPriority    ActivityType = "priority"
	ActivityAssignee    ActivityType = "assignee"
	ActivityLabel       ActivityType = "label"
	ActivityComment     ActivityType = "comment"
	ActivityIntegration ActivityType = "integration"
)

// Activity is an immutable audit record describing one field change or event
// on an issue. Old and new values are stored as display strings; entries are
// appended by the state store and never edited or removed afterwards.
type Activity struct {
	ID        string
	IssueID   string
	User      User
	Type      ActivityType
	OldValue  string
	NewValue  string
	CreatedAt time.Time
}
