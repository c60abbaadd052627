package models

// SortKey names the field the visible issue list is ordered by.
type SortKey string

const (
	SortByPriority  SortKey = "priority"
	SortByStatus    SortKey = "status"
	SortByUpdatedAt SortKey = "updatedAt"
	SortByCreatedAt SortKey = "createdAt"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterState is the full set of criteria the visible issue list is derived
// from. Search holds only free text: recognized key:value tokens are always
// extracted into the structured fields before Search is set.
type FilterState struct {
	Status    []Status   `json:"status"`
	Priority  []Priority `json:"priority"`
	Assignees []string   `json:"assignees"`
	Search    string     `json:"search"`
	SortKey   SortKey    `json:"sortKey"`
	SortOrder SortOrder  `json:"sortOrder"`
}

// DefaultFilters returns the filter state the application starts with and
// resets to.
func DefaultFilters() FilterState {
	return FilterState{
		Status:    []Status{},
		Priority:  []Priority{},
		Assignees: []string{},
		SortKey:   SortByPriority,
		SortOrder: SortDesc,
	}
}

// Clone returns a deep copy so saved snapshots cannot alias live filter
// state.
func (f FilterState) Clone() FilterState {
	c := f
	c.Status = append([]Status(nil), f.Status...)
	c.Priority = append([]Priority(nil), f.Priority...)
	c.Assignees = append([]string(nil), f.Assignees...)
	return c
}

// SavedView is a named, frozen snapshot of filter criteria.
type SavedView struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Filters FilterState `json:"filters"`
	Icon    string      `json:"icon,omitempty"`
}

// Theme selects the UI color scheme. Persisted but not interpreted by the
// core.
type Theme string

const (
	ThemeLight        Theme = "light"
	ThemeDark         Theme = "dark"
	ThemeHighContrast Theme = "high-contrast"
)

// ViewType names the screen the application is showing.
type ViewType string

const (
	ViewDashboard   ViewType = "dashboard"
	ViewIssues      ViewType = "issues"
	ViewBoard       ViewType = "board"
	ViewProjects    ViewType = "projects"
	ViewCycles      ViewType = "cycles"
	ViewIssueDetail ViewType = "issue-detail"
	ViewSettings    ViewType = "settings"
)
