package state

import (
	"fmt"
	"time"

	"github.com/artti-capital/linea/internal/models"
)

// IssueInput is the caller-supplied part of a new issue.
type IssueInput struct {
	Title       string
	Description string
	Status      models.Status // defaults to Todo
	Priority    models.Priority
	Assignee    *models.User
	Labels      []models.Label
	ProjectID   string
	CycleID     string
}

// CreateIssue adds a new issue keyed under the current team, seeds its audit
// log with a create activity, and returns a copy. New issues go to the front
// of the collection so listings show recent work first.
func (s *Store) CreateIssue(input IssueInput) models.Issue {
	now := time.Now().UTC()

	status := input.Status
	if status == "" {
		status = models.StatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityNone
	}

	s.keyCounter++
	i := &models.Issue{
		ID:          s.newID(),
		Key:         fmt.Sprintf("%s-%d", s.currentTeam.Identifier, s.keyCounter),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		Creator:     s.currentUser,
		Team:        s.currentTeam,
		ProjectID:   input.ProjectID,
		CycleID:     input.CycleID,
		Labels:      dedupeLabels(input.Labels),
		Comments:    []models.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Assignee != nil {
		a := *input.Assignee
		i.Assignee = &a
	}
	s.appendActivity(i, models.ActivityCreate, "", "", now)

	s.issues = append([]*models.Issue{i}, s.issues...)
	s.clampActiveIndex()
	return copyIssue(i)
}

// IssueUpdate describes a partial update. Nil pointer fields are left
// untouched. Assignee changes are tri-state: SetAssignee with a nil Assignee
// unassigns.
type IssueUpdate struct {
	Title       *string
	Description *string
	Status      *models.Status
	Priority    *models.Priority
	SetAssignee bool
	Assignee    *models.User
	Labels      *[]models.Label
	ProjectID   *string
	CycleID     *string
}

// UpdateIssue applies a partial update. Each tracked field (status,
// priority, assignee) that actually changes appends one activity with the
// old and new display values; all activities from one call share a
// timestamp. No-op changes append nothing. Untracked fields update
// silently. Unknown ids are ignored.
func (s *Store) UpdateIssue(ref string, upd IssueUpdate) bool {
	i := s.findIssue(ref)
	if i == nil {
		return false
	}
	now := time.Now().UTC()

	if upd.Status != nil && *upd.Status != i.Status {
		s.appendActivity(i, models.ActivityStatus, formatStatus(i.Status), formatStatus(*upd.Status), now)
		i.Status = *upd.Status
	}
	if upd.Priority != nil && *upd.Priority != i.Priority {
		s.appendActivity(i, models.ActivityPriority, formatPriority(i.Priority), formatPriority(*upd.Priority), now)
		i.Priority = *upd.Priority
	}
	if upd.SetAssignee && !sameUser(upd.Assignee, i.Assignee) {
		s.appendActivity(i, models.ActivityAssignee, formatAssignee(i.Assignee), formatAssignee(upd.Assignee), now)
		if upd.Assignee == nil {
			i.Assignee = nil
		} else {
			a := *upd.Assignee
			i.Assignee = &a
		}
	}

	if upd.Title != nil {
		i.Title = *upd.Title
	}
	if upd.Description != nil {
		i.Description = *upd.Description
	}
	if upd.Labels != nil {
		i.Labels = dedupeLabels(*upd.Labels)
	}
	if upd.ProjectID != nil {
		i.ProjectID = *upd.ProjectID
	}
	if upd.CycleID != nil {
		i.CycleID = *upd.CycleID
	}

	i.UpdatedAt = now
	return true
}

// DeleteIssues removes the named issues and clears them from the bulk
// selection in the same step, so a selected-but-deleted id can never be
// observed.
func (s *Store) DeleteIssues(ids []string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := s.issues[:0]
	removed := 0
	for _, i := range s.issues {
		if _, gone := drop[i.ID]; gone {
			removed++
			delete(s.bulkSelected, i.ID)
			if s.selectedIssueID == i.ID {
				s.selectedIssueID = ""
			}
			continue
		}
		kept = append(kept, i)
	}
	s.issues = kept
	s.clampActiveIndex()
	return removed
}

// LinkGitHubPR attaches a pull request to an issue, leaving other
// integration kinds untouched, and records an integration activity.
func (s *Store) LinkGitHubPR(ref string, pr models.GitHubPR) bool {
	return s.linkIntegration(ref, formatGitHubLink(pr), func(i *models.Issue) {
		i.Integrations.GitHub = &pr
	})
}

// LinkFigmaFile attaches a design file to an issue.
func (s *Store) LinkFigmaFile(ref string, f models.FigmaFile) bool {
	return s.linkIntegration(ref, formatFigmaLink(f), func(i *models.Issue) {
		i.Integrations.Figma = &f
	})
}

// ShareToSlack attaches a discussion thread to an issue.
func (s *Store) ShareToSlack(ref string, sl models.SlackThread) bool {
	return s.linkIntegration(ref, formatSlackShare(sl), func(i *models.Issue) {
		i.Integrations.Slack = &sl
	})
}

func (s *Store) linkIntegration(ref, summary string, apply func(*models.Issue)) bool {
	i := s.findIssue(ref)
	if i == nil {
		return false
	}
	now := time.Now().UTC()
	apply(i)
	s.appendActivity(i, models.ActivityIntegration, "", summary, now)
	i.UpdatedAt = now
	return true
}

// MoveIssueToCycle assigns the issue to a cycle. An unknown or empty cycle
// id clears the assignment.
func (s *Store) MoveIssueToCycle(issueRef, cycleID string) bool {
	i := s.findIssue(issueRef)
	if i == nil {
		return false
	}
	if s.findCycle(cycleID) == nil {
		cycleID = ""
	}
	i.CycleID = cycleID
	i.UpdatedAt = time.Now().UTC()
	return true
}

func sameUser(a, b *models.User) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

// dedupeLabels drops repeated label ids, keeping first occurrence order.
func dedupeLabels(labels []models.Label) []models.Label {
	seen := make(map[string]struct{}, len(labels))
	out := make([]models.Label, 0, len(labels))
	for _, l := range labels {
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	return out
}
