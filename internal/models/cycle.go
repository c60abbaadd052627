package models

import "time"

// Cycle is a fixed time window of work (a sprint). Issues reference cycles by
// id; the relation is weak in the same way as projects.
type Cycle struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Number      int        `json:"number"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
