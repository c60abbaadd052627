package state

import (
	"time"

	"github.com/artti-capital/linea/internal/models"
)

// AddComment appends a comment to an issue and records a comment activity.
// parentID makes the comment a reply; threading is single level, so replying
// to a reply attaches to that reply's top-level parent instead. Unknown
// issue ids are ignored.
func (s *Store) AddComment(issueRef, body, parentID string) (models.Comment, bool) {
	i := s.findIssue(issueRef)
	if i == nil {
		return models.Comment{}, false
	}
	now := time.Now().UTC()

	if parentID != "" {
		parent := findComment(i, parentID)
		if parent == nil {
			parentID = ""
		} else if parent.ParentID != "" {
			parentID = parent.ParentID
		}
	}

	c := models.Comment{
		ID:        s.newID(),
		IssueID:   i.ID,
		User:      s.currentUser,
		Body:      body,
		Reactions: []models.Reaction{},
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	i.Comments = append(i.Comments, c)
	s.appendActivity(i, models.ActivityComment, "", "", now)
	i.UpdatedAt = now
	return copyComment(c), true
}

// UpdateComment replaces a comment's body. Unknown issue or comment ids are
// ignored.
func (s *Store) UpdateComment(issueRef, commentID, body string) bool {
	i := s.findIssue(issueRef)
	if i == nil {
		return false
	}
	c := findComment(i, commentID)
	if c == nil {
		return false
	}
	c.Body = body
	c.UpdatedAt = time.Now().UTC()
	i.UpdatedAt = c.UpdatedAt
	return true
}

// DeleteComment removes a comment. Unknown ids are ignored.
func (s *Store) DeleteComment(issueRef, commentID string) bool {
	i := s.findIssue(issueRef)
	if i == nil {
		return false
	}
	for n, c := range i.Comments {
		if c.ID == commentID {
			i.Comments = append(i.Comments[:n], i.Comments[n+1:]...)
			i.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// ToggleReaction adds the current user to a comment's emoji reaction, or
// removes them if already present. A reaction whose user list empties is
// dropped entirely, so toggling twice restores the exact prior state.
func (s *Store) ToggleReaction(issueRef, commentID, emoji string) bool {
	i := s.findIssue(issueRef)
	if i == nil {
		return false
	}
	c := findComment(i, commentID)
	if c == nil {
		return false
	}
	userID := s.currentUser.ID

	for n := range c.Reactions {
		r := &c.Reactions[n]
		if r.Emoji != emoji {
			continue
		}
		for m, uid := range r.UserIDs {
			if uid == userID {
				r.UserIDs = append(r.UserIDs[:m], r.UserIDs[m+1:]...)
				if len(r.UserIDs) == 0 {
					c.Reactions = append(c.Reactions[:n], c.Reactions[n+1:]...)
				}
				return true
			}
		}
		r.UserIDs = append(r.UserIDs, userID)
		return true
	}

	c.Reactions = append(c.Reactions, models.Reaction{Emoji: emoji, UserIDs: []string{userID}})
	return true
}

func findComment(i *models.Issue, commentID string) *models.Comment {
	for n := range i.Comments {
		if i.Comments[n].ID == commentID {
			return &i.Comments[n]
		}
	}
	return nil
}
