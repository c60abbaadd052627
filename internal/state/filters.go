package state

import (
	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/query"
)

// FilterUpdate describes a partial change to the filter state. Nil fields
// are left untouched.
type FilterUpdate struct {
	Status    *[]models.Status
	Priority  *[]models.Priority
	Assignees *[]string
	Search    *string
	SortKey   *models.SortKey
	SortOrder *models.SortOrder
}

// SetFilters merges a partial update into the active filter state and
// re-clamps keyboard navigation against the new visible list.
func (s *Store) SetFilters(upd FilterUpdate) {
	if upd.Status != nil {
		s.filters.Status = append([]models.Status(nil), *upd.Status...)
	}
	if upd.Priority != nil {
		s.filters.Priority = append([]models.Priority(nil), *upd.Priority...)
	}
	if upd.Assignees != nil {
		s.filters.Assignees = append([]string(nil), *upd.Assignees...)
	}
	if upd.Search != nil {
		s.filters.Search = *upd.Search
	}
	if upd.SortKey != nil {
		s.filters.SortKey = *upd.SortKey
	}
	if upd.SortOrder != nil {
		s.filters.SortOrder = *upd.SortOrder
	}
	s.clampActiveIndex()
}

// ResetFilters restores the default filter state.
func (s *Store) ResetFilters() {
	s.filters = models.DefaultFilters()
	s.clampActiveIndex()
}

// ApplyQuery parses a free-text search string and replaces the structured
// and search criteria with the parsed fragment, keeping the sort untouched.
func (s *Store) ApplyQuery(q string) {
	frag := query.Parse(q, s.currentUser.ID)
	s.filters.Status = frag.Status
	s.filters.Priority = frag.Priority
	s.filters.Assignees = frag.Assignees
	s.filters.Search = frag.Search
	s.clampActiveIndex()
}

// SavedViews returns copies of all saved views.
func (s *Store) SavedViews() []models.SavedView {
	out := make([]models.SavedView, len(s.savedViews))
	for n, v := range s.savedViews {
		out[n] = v
		out[n].Filters = v.Filters.Clone()
	}
	return out
}

// SaveCurrentView freezes the active filter state under a name. The
// snapshot is a deep copy: later filter changes cannot reach it.
func (s *Store) SaveCurrentView(name string) models.SavedView {
	v := models.SavedView{
		ID:      s.newID(),
		Name:    name,
		Filters: s.filters.Clone(),
	}
	s.savedViews = append(s.savedViews, v)
	s.persist()
	return v
}

// ApplySavedView replaces the filter state wholesale with a saved snapshot
// and switches to the issues list. Unknown ids are ignored.
func (s *Store) ApplySavedView(ref string) bool {
	for _, v := range s.savedViews {
		if v.ID == ref || v.Name == ref {
			s.filters = v.Filters.Clone()
			s.view = models.ViewIssues
			s.clampActiveIndex()
			return true
		}
	}
	return false
}

// DeleteSavedView removes a saved view by id or name.
func (s *Store) DeleteSavedView(ref string) bool {
	for n, v := range s.savedViews {
		if v.ID == ref || v.Name == ref {
			s.savedViews = append(s.savedViews[:n], s.savedViews[n+1:]...)
			s.persist()
			return true
		}
	}
	return false
}
