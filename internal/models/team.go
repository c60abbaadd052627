package models

// UserRole controls what a team member may do. Roles are carried for display
// only; the core performs no authorization.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
	RoleViewer UserRole = "viewer"
)

// User identifies a person for attribution of activities, comments, and
// reactions.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Avatar string   `json:"avatar,omitempty"`
	Role   UserRole `json:"role,omitempty"`
}

// Team owns issues and contributes the identifier used in issue keys
// (e.g. "ART" in "ART-12").
type Team struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Members    []User `json:"members,omitempty"`
}
