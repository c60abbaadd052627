package state

// Keyboard navigation and bulk selection. The active index points into the
// currently visible (filtered) sequence and is re-clamped whenever that
// sequence can change length; the bulk-selection set is plain issue ids,
// independent of filtering.

// ActiveIndex returns the keyboard cursor position in the visible list.
func (s *Store) ActiveIndex() int { return s.activeIndex }

// SetActiveIndex moves the keyboard cursor, clamped into the visible range.
func (s *Store) SetActiveIndex(i int) {
	s.activeIndex = i
	s.clampActiveIndex()
}

// clampActiveIndex forces the cursor into [0, len(visible)-1]. An
// out-of-range index is a defect, not a valid state.
func (s *Store) clampActiveIndex() {
	n := len(s.visible())
	switch {
	case n == 0:
		s.activeIndex = 0
	case s.activeIndex < 0:
		s.activeIndex = 0
	case s.activeIndex >= n:
		s.activeIndex = n - 1
	}
}

// SelectedIssueID returns the open issue's id, or empty.
func (s *Store) SelectedIssueID() string { return s.selectedIssueID }

// SetSelectedIssue opens (or closes, with empty id) an issue.
func (s *Store) SetSelectedIssue(id string) { s.selectedIssueID = id }

// BulkSelectedIDs returns the bulk-selected issue ids.
func (s *Store) BulkSelectedIDs() []string {
	out := make([]string, 0, len(s.bulkSelected))
	for id := range s.bulkSelected {
		out = append(out, id)
	}
	return out
}

// IsBulkSelected reports membership in the bulk selection.
func (s *Store) IsBulkSelected(id string) bool {
	_, ok := s.bulkSelected[id]
	return ok
}

// ToggleBulkSelect flips one issue's membership in the bulk selection.
func (s *Store) ToggleBulkSelect(id string) {
	if _, ok := s.bulkSelected[id]; ok {
		delete(s.bulkSelected, id)
		return
	}
	s.bulkSelected[id] = struct{}{}
}

// ClearBulkSelect empties the bulk selection.
func (s *Store) ClearBulkSelect() {
	s.bulkSelected = make(map[string]struct{})
}

// Modal and panel toggles. The CLI surface does not render these, but the
// container owns them so every consumer sees one truth.

func (s *Store) ToggleCreateModal()    { s.showCreateModal = !s.showCreateModal }
func (s *Store) ToggleCommandPalette() { s.showCommandPalette = !s.showCommandPalette }
func (s *Store) ToggleFilterSidebar()  { s.showFilterSidebar = !s.showFilterSidebar }
func (s *Store) ToggleHelpModal()      { s.showHelpModal = !s.showHelpModal }
func (s *Store) ToggleBoardMode()      { s.boardCompact = !s.boardCompact }

func (s *Store) CreateModalOpen() bool    { return s.showCreateModal }
func (s *Store) CommandPaletteOpen() bool { return s.showCommandPalette }
func (s *Store) FilterSidebarOpen() bool  { return s.showFilterSidebar }
func (s *Store) HelpModalOpen() bool      { return s.showHelpModal }
func (s *Store) BoardCompact() bool       { return s.boardCompact }

// SelectedCycleID returns the cycle open in the cycles screen.
func (s *Store) SelectedCycleID() string { return s.selectedCycleID }

// SetSelectedCycle opens a cycle detail.
func (s *Store) SetSelectedCycle(id string) { s.selectedCycleID = id }

// SelectedProjectID returns the project open in the projects screen.
func (s *Store) SelectedProjectID() string { return s.selectedProjectID }

// SetSelectedProject opens a project detail.
func (s *Store) SetSelectedProject(id string) { s.selectedProjectID = id }
