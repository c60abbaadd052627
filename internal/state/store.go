// Package state owns the canonical application state: the issue, project,
// and cycle collections, the filter and selection state, and saved views.
// All writes go through named mutation methods so tracked field changes
// always produce their audit activity; reads hand out copies, never live
// references into the container.
//
// The store is single-writer by design: every mutation runs to completion in
// direct response to one user action, so no locking is needed.
package state

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/artti-capital/linea/internal/filter"
	"github.com/artti-capital/linea/internal/models"
)

// Snapshot is the subset of state that survives restarts: identity, saved
// views, reference data, and theme. Issues are deliberately session-local.
type Snapshot struct {
	User       *models.User       `json:"user,omitempty"`
	SavedViews []models.SavedView `json:"savedViews"`
	Projects   []models.Project   `json:"projects"`
	Cycles     []models.Cycle     `json:"cycles"`
	Theme      models.Theme       `json:"theme"`
}

// Persister saves the durable subset of state. Saves are best effort: a
// persistence failure must never break the in-memory session.
type Persister interface {
	Save(Snapshot) error
}

// Config carries the identities and collaborators the store needs.
type Config struct {
	User      models.User
	Team      models.Team
	Persister Persister // optional
}

// Store is the single source of truth consumed by the filter engine and the
// rendering layer.
type Store struct {
	currentUser models.User
	currentTeam models.Team

	issues   []*models.Issue // newest first
	projects []models.Project
	cycles   []models.Cycle

	filters    models.FilterState
	savedViews []models.SavedView

	view              models.ViewType
	theme             models.Theme
	selectedCycleID   string
	selectedProjectID string

	activeIndex     int
	selectedIssueID string
	bulkSelected    map[string]struct{}

	showCreateModal    bool
	showCommandPalette bool
	showFilterSidebar  bool
	showHelpModal      bool
	boardCompact       bool

	keyCounter int
	entropy    *ulid.MonotonicEntropy
	persister  Persister
}

// New creates an empty store for the given identities.
func New(cfg Config) *Store {
	return &Store{
		currentUser:  cfg.User,
		currentTeam:  cfg.Team,
		filters:      models.DefaultFilters(),
		view:         models.ViewDashboard,
		theme:        models.ThemeDark,
		bulkSelected: make(map[string]struct{}),
		entropy:      ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		persister:    cfg.Persister,
	}
}

// Restore applies a persisted snapshot. Nil slices and empty fields fall
// back to the defaults New set up, so a partial or absent snapshot is fine.
func (s *Store) Restore(snap Snapshot) {
	if snap.User != nil {
		s.currentUser = *snap.User
	}
	if snap.SavedViews != nil {
		s.savedViews = append([]models.SavedView(nil), snap.SavedViews...)
	}
	if snap.Projects != nil {
		s.projects = append([]models.Project(nil), snap.Projects...)
	}
	if snap.Cycles != nil {
		s.cycles = append([]models.Cycle(nil), snap.Cycles...)
	}
	if snap.Theme != "" {
		s.theme = snap.Theme
	}
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// persist saves the durable subset if a persister is configured. Errors are
// swallowed: persistence is advisory.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	user := s.currentUser
	_ = s.persister.Save(Snapshot{
		User:       &user,
		SavedViews: append([]models.SavedView(nil), s.savedViews...),
		Projects:   append([]models.Project(nil), s.projects...),
		Cycles:     append([]models.Cycle(nil), s.cycles...),
		Theme:      s.theme,
	})
}

// CurrentUser returns the acting user identity.
func (s *Store) CurrentUser() models.User { return s.currentUser }

// CurrentTeam returns the team issues are keyed under.
func (s *Store) CurrentTeam() models.Team { return s.currentTeam }

// Filters returns a copy of the active filter state.
func (s *Store) Filters() models.FilterState { return s.filters.Clone() }

// Theme returns the active color scheme.
func (s *Store) Theme() models.Theme { return s.theme }

// View returns the screen currently shown.
func (s *Store) View() models.ViewType { return s.view }

// SetView switches the active screen and re-clamps keyboard navigation,
// since the visible sequence depends on the view context.
func (s *Store) SetView(v models.ViewType) {
	s.view = v
	s.clampActiveIndex()
}

// SetTheme switches the color scheme.
func (s *Store) SetTheme(t models.Theme) {
	s.theme = t
	s.persist()
}

// Issue returns a copy of one issue by id or key.
func (s *Store) Issue(ref string) (models.Issue, bool) {
	i := s.findIssue(ref)
	if i == nil {
		return models.Issue{}, false
	}
	return copyIssue(i), true
}

// Issues returns copies of all issues in store order (newest first).
func (s *Store) Issues() []models.Issue {
	out := make([]models.Issue, len(s.issues))
	for n, i := range s.issues {
		out[n] = copyIssue(i)
	}
	return out
}

// Visible derives the filtered, ordered issue list for the given view
// context and returns copies.
func (s *Store) Visible(view filter.ViewContext) []models.Issue {
	vis := filter.Visible(s.issues, s.filters, view)
	out := make([]models.Issue, len(vis))
	for n, i := range vis {
		out[n] = copyIssue(i)
	}
	return out
}

// viewContext maps the active screen to a filter view context. Every screen
// except the board gets the issues-list semantics.
func (s *Store) viewContext() filter.ViewContext {
	if s.view == models.ViewBoard {
		return filter.ViewBoard
	}
	return filter.ViewIssues
}

// visible is the internal, copy-free form of Visible for the active screen.
func (s *Store) visible() []*models.Issue {
	return filter.Visible(s.issues, s.filters, s.viewContext())
}

func (s *Store) findIssue(ref string) *models.Issue {
	for _, i := range s.issues {
		if i.ID == ref || i.Key == ref {
			return i
		}
	}
	return nil
}

// copyIssue clones an issue deeply enough that callers cannot reach store
// internals through nested slices or pointers.
func copyIssue(i *models.Issue) models.Issue {
	c := *i
	c.Labels = append([]models.Label(nil), i.Labels...)
	c.Activities = append([]models.Activity(nil), i.Activities...)
	c.Comments = make([]models.Comment, len(i.Comments))
	for n, cm := range i.Comments {
		c.Comments[n] = copyComment(cm)
	}
	if i.Assignee != nil {
		a := *i.Assignee
		c.Assignee = &a
	}
	c.Integrations = copyIntegrations(i.Integrations)
	return c
}

func copyComment(cm models.Comment) models.Comment {
	c := cm
	c.Reactions = make([]models.Reaction, len(cm.Reactions))
	for n, r := range cm.Reactions {
		c.Reactions[n] = models.Reaction{
			Emoji:   r.Emoji,
			UserIDs: append([]string(nil), r.UserIDs...),
		}
	}
	return c
}

func copyIntegrations(in models.Integrations) models.Integrations {
	var out models.Integrations
	if in.GitHub != nil {
		gh := *in.GitHub
		out.GitHub = &gh
	}
	if in.Figma != nil {
		fg := *in.Figma
		out.Figma = &fg
	}
	if in.Slack != nil {
		sl := *in.Slack
		out.Slack = &sl
	}
	return out
}
