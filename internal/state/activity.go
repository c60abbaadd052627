package state

import (
	"fmt"
	"time"

	"github.com/artti-capital/linea/internal/models"
)

// Activity old/new values are display strings. These formatters keep that
// stringification in one place per field kind instead of scattering ad hoc
// concatenation through the mutations.

func formatStatus(v models.Status) string { return string(v) }

func formatPriority(v models.Priority) string { return string(v) }

func formatAssignee(u *models.User) string {
	if u == nil {
		return "Unassigned"
	}
	return u.Name
}

func formatGitHubLink(pr models.GitHubPR) string {
	return fmt.Sprintf("Linked GitHub PR #%d", pr.PRNumber)
}

func formatFigmaLink(f models.FigmaFile) string {
	return fmt.Sprintf("Linked Figma design: %s", f.FileName)
}

func formatSlackShare(sl models.SlackThread) string {
	return fmt.Sprintf("Shared to Slack #%s", sl.ChannelName)
}

// appendActivity records one audit entry on an issue. Activities are
// append-only: nothing in this package edits or removes them afterwards.
func (s *Store) appendActivity(i *models.Issue, typ models.ActivityType, oldValue, newValue string, at time.Time) {
	i.Activities = append(i.Activities, models.Activity{
		ID:        s.newID(),
		IssueID:   i.ID,
		User:      s.currentUser,
		Type:      typ,
		OldValue:  oldValue,
		NewValue:  newValue,
		CreatedAt: at,
	})
}
