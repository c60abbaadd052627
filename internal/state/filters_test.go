package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artti-capital/linea/internal/filter"
	"github.com/artti-capital/linea/internal/models"
)

func TestSetFilters_MergesPartialUpdate(t *testing.T) {
	s := newTestStore(t)

	st := []models.Status{models.StatusDone}
	s.SetFilters(FilterUpdate{Status: &st})

	f := s.Filters()
	assert.Equal(t, st, f.Status)
	assert.Equal(t, models.SortByPriority, f.SortKey, "untouched fields keep defaults")

	search := "crash"
	s.SetFilters(FilterUpdate{Search: &search})
	f = s.Filters()
	assert.Equal(t, st, f.Status, "earlier criteria survive later partial updates")
	assert.Equal(t, "crash", f.Search)
}

func TestResetFilters(t *testing.T) {
	s := newTestStore(t)
	search := "x"
	s.SetFilters(FilterUpdate{Search: &search})

	s.ResetFilters()
	assert.Equal(t, models.DefaultFilters(), s.Filters())
}

func TestApplyQuery_ReplacesCriteriaKeepsSort(t *testing.T) {
	s := newTestStore(t)
	order := models.SortAsc
	s.SetFilters(FilterUpdate{SortOrder: &order})

	s.ApplyQuery("is:done priority:high assigned:me crash")

	f := s.Filters()
	assert.Equal(t, []models.Status{models.StatusDone}, f.Status)
	assert.Equal(t, []models.Priority{models.PriorityHigh}, f.Priority)
	assert.Equal(t, []string{testUser.ID}, f.Assignees)
	assert.Equal(t, "crash", f.Search)
	assert.Equal(t, models.SortAsc, f.SortOrder, "sort untouched by query")
}

func TestVisible_UsesStoreFilters(t *testing.T) {
	s := newTestStore(t)
	s.CreateIssue(IssueInput{Title: "done work", Status: models.StatusDone})
	s.CreateIssue(IssueInput{Title: "todo work", Status: models.StatusTodo})

	vis := s.Visible(filter.ViewIssues)
	require.Len(t, vis, 1)
	assert.Equal(t, "todo work", vis[0].Title)

	vis = s.Visible(filter.ViewBoard)
	assert.Len(t, vis, 2)
}

// --- Saved views ---

func TestSaveCurrentView_FreezesSnapshot(t *testing.T) {
	s := newTestStore(t)
	st := []models.Status{models.StatusDone}
	s.SetFilters(FilterUpdate{Status: &st})

	v := s.SaveCurrentView("Done work")
	assert.NotEmpty(t, v.ID)

	// Changing global filters afterwards must not reach the snapshot.
	other := []models.Status{models.StatusBacklog}
	s.SetFilters(FilterUpdate{Status: &other})

	views := s.SavedViews()
	require.Len(t, views, 1)
	assert.Equal(t, []models.Status{models.StatusDone}, views[0].Filters.Status)
}

func TestApplySavedView_ReplacesFiltersAndSwitchesView(t *testing.T) {
	s := newTestStore(t)
	st := []models.Status{models.StatusDone}
	s.SetFilters(FilterUpdate{Status: &st})
	v := s.SaveCurrentView("Done work")

	s.ResetFilters()
	s.SetView(models.ViewBoard)

	require.True(t, s.ApplySavedView(v.ID))
	assert.Equal(t, []models.Status{models.StatusDone}, s.Filters().Status)
	assert.Equal(t, models.ViewIssues, s.View())
}

func TestApplySavedView_ByNameAndUnknown(t *testing.T) {
	s := newTestStore(t)
	s.SaveCurrentView("mine")

	assert.True(t, s.ApplySavedView("mine"))
	assert.False(t, s.ApplySavedView("nope"))
}

func TestDeleteSavedView(t *testing.T) {
	s := newTestStore(t)
	v := s.SaveCurrentView("mine")

	require.True(t, s.DeleteSavedView(v.ID))
	assert.Empty(t, s.SavedViews())
	assert.False(t, s.DeleteSavedView(v.ID))
}

// --- Selection clamping ---

func TestActiveIndex_ClampsToVisibleRange(t *testing.T) {
	s := newTestStore(t)
	s.SetView(models.ViewIssues)
	for n := 0; n < 3; n++ {
		s.CreateIssue(IssueInput{Title: "t", Status: models.StatusTodo})
	}

	s.SetActiveIndex(2)
	assert.Equal(t, 2, s.ActiveIndex())

	s.SetActiveIndex(99)
	assert.Equal(t, 2, s.ActiveIndex())

	s.SetActiveIndex(-5)
	assert.Equal(t, 0, s.ActiveIndex())
}

func TestActiveIndex_ReclampedWhenFilterShrinksList(t *testing.T) {
	s := newTestStore(t)
	s.SetView(models.ViewIssues)
	target := s.CreateIssue(IssueInput{Title: "urgent", Status: models.StatusTodo, Priority: models.PriorityUrgent})
	for n := 0; n < 4; n++ {
		s.CreateIssue(IssueInput{Title: "filler", Status: models.StatusTodo, Priority: models.PriorityLow})
	}

	s.SetActiveIndex(4)
	require.Equal(t, 4, s.ActiveIndex())

	pr := []models.Priority{models.PriorityUrgent}
	s.SetFilters(FilterUpdate{Priority: &pr})
	assert.Equal(t, 0, s.ActiveIndex(), "index re-clamped after list shrank")

	vis := s.Visible(filter.ViewIssues)
	require.Len(t, vis, 1)
	assert.Equal(t, target.ID, vis[0].ID)
}

func TestActiveIndex_ReclampedAfterDeletion(t *testing.T) {
	s := newTestStore(t)
	s.SetView(models.ViewIssues)
	a := s.CreateIssue(IssueInput{Title: "a", Status: models.StatusTodo})
	b := s.CreateIssue(IssueInput{Title: "b", Status: models.StatusTodo})

	s.SetActiveIndex(1)
	s.DeleteIssues([]string{a.ID, b.ID})
	assert.Equal(t, 0, s.ActiveIndex())
}

// --- Snapshot restore ---

func TestRestore_AppliesPersistedSubset(t *testing.T) {
	s := newTestStore(t)

	alt := models.User{ID: "u-9", Name: "Restored"}
	s.Restore(Snapshot{
		User:       &alt,
		SavedViews: []models.SavedView{{ID: "v-1", Name: "mine", Filters: models.DefaultFilters()}},
		Projects:   []models.Project{{ID: "p-1", Name: "Proj", Status: models.ProjectStarted}},
		Cycles:     []models.Cycle{{ID: "c-1", Name: "Sprint", Number: 1}},
		Theme:      models.ThemeLight,
	})

	assert.Equal(t, "u-9", s.CurrentUser().ID)
	assert.Len(t, s.SavedViews(), 1)
	assert.Len(t, s.Projects(), 1)
	assert.Len(t, s.Cycles(), 1)
	assert.Equal(t, models.ThemeLight, s.Theme())
}

func TestRestore_EmptySnapshotKeepsDefaults(t *testing.T) {
	s := newTestStore(t)

	s.Restore(Snapshot{})

	assert.Equal(t, testUser.ID, s.CurrentUser().ID)
	assert.Equal(t, models.ThemeDark, s.Theme())
	assert.Empty(t, s.SavedViews())
}

// --- Persister wiring ---

type capturePersister struct {
	saves []Snapshot
}

func (c *capturePersister) Save(s Snapshot) error {
	c.saves = append(c.saves, s)
	return nil
}

func TestPersist_TriggeredByDurableMutations(t *testing.T) {
	p := &capturePersister{}
	s := New(Config{User: testUser, Team: testTeam, Persister: p})

	s.SaveCurrentView("mine")
	s.SetTheme(models.ThemeLight)
	s.AddProject(models.Project{Name: "Proj"})
	s.AddCycle(models.Cycle{Name: "Sprint"})

	require.Len(t, p.saves, 4)
	last := p.saves[len(p.saves)-1]
	assert.Equal(t, models.ThemeLight, last.Theme)
	assert.Len(t, last.SavedViews, 1)
	assert.Len(t, last.Projects, 1)
	assert.Len(t, last.Cycles, 1)
}

func TestPersist_NotTriggeredBySessionMutations(t *testing.T) {
	p := &capturePersister{}
	s := New(Config{User: testUser, Team: testTeam, Persister: p})

	i := s.CreateIssue(IssueInput{Title: "x"})
	s.AddComment(i.ID, "body", "")
	s.ApplyQuery("is:todo")

	assert.Empty(t, p.saves, "issues and filters are session-local")
}
