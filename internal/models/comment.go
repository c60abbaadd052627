package models

import "time"

// Reaction records which users reacted to a comment with one emoji.
type Reaction struct {
	Emoji   string
	UserIDs []string
}

// Comment is a markdown note on an issue. ParentID enables single-level
// threading: a reply references a top-level comment, and replies are never
// themselves parents.
type Comment struct {
	ID        string
	IssueID   string
	User      User
	Body      string
	Reactions []Reaction
	ParentID  string // empty for top-level comments
	CreatedAt time.Time
	UpdatedAt time.Time
}
