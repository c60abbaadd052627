package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/artti-capital/linea/internal/models"
)

var (
	testUser = models.User{ID: "u-1", Name: "Senior Dev", Email: "dev@example.com", Role: models.RoleAdmin}
	testJane = models.User{ID: "u-2", Name: "Frontend Jane", Email: "jane@example.com", Role: models.RoleMember}
	testTeam = models.Team{
		ID: "t-1", Name: "Engineering", Identifier: "ART",
		Members: []models.User{testUser, testJane},
	}
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(Config{User: testUser, Team: testTeam})
}

func activityTypes(i models.Issue) []models.ActivityType {
	out := make([]models.ActivityType, len(i.Activities))
	for n, a := range i.Activities {
		out[n] = a.Type
	}
	return out
}

// --- Creation ---

func TestCreateIssue_Defaults(t *testing.T) {
	s := newTestStore(t)

	i := s.CreateIssue(IssueInput{Title: "First"})

	assert.NotEmpty(t, i.ID)
	assert.Equal(t, "ART-1", i.Key)
	assert.Equal(t, models.StatusTodo, i.Status)
	assert.Equal(t, models.PriorityNone, i.Priority)
	assert.Equal(t, testUser.ID, i.Creator.ID)
	assert.False(t, i.CreatedAt.IsZero())
	assert.Equal(t, i.CreatedAt, i.UpdatedAt)

	require.Len(t, i.Activities, 1)
	assert.Equal(t, models.ActivityCreate, i.Activities[0].Type)
	assert.Equal(t, i.ID, i.Activities[0].IssueID)
}

func TestCreateIssue_KeysAreSequential(t *testing.T) {
	s := newTestStore(t)

	a := s.CreateIssue(IssueInput{Title: "a"})
	b := s.CreateIssue(IssueInput{Title: "b"})
	c := s.CreateIssue(IssueInput{Title: "c"})

	assert.Equal(t, "ART-1", a.Key)
	assert.Equal(t, "ART-2", b.Key)
	assert.Equal(t, "ART-3", c.Key)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)
}

func TestCreateIssue_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	s.CreateIssue(IssueInput{Title: "old"})
	s.CreateIssue(IssueInput{Title: "new"})

	issues := s.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, "new", issues[0].Title)
	assert.Equal(t, "old", issues[1].Title)
}

func TestCreateIssue_DedupesLabels(t *testing.T) {
	s := newTestStore(t)
	l := models.Label{ID: "l-1", Name: "Bug", Color: "#f00"}

	i := s.CreateIssue(IssueInput{Title: "x", Labels: []models.Label{l, l}})

	assert.Len(t, i.Labels, 1)
}

// --- Updates and activity logging ---

func TestUpdateIssue_NoOpChangeAppendsNoActivity(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x", Status: models.StatusTodo})

	st := models.StatusTodo
	require.True(t, s.UpdateIssue(i.ID, IssueUpdate{Status: &st}))

	got, ok := s.Issue(i.ID)
	require.True(t, ok)
	assert.Equal(t, []models.ActivityType{models.ActivityCreate}, activityTypes(got))
}

func TestUpdateIssue_StatusChangeAppendsOneActivity(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x", Status: models.StatusTodo})

	st := models.StatusDone
	require.True(t, s.UpdateIssue(i.ID, IssueUpdate{Status: &st}))

	got, _ := s.Issue(i.ID)
	require.Len(t, got.Activities, 2)
	a := got.Activities[1]
	assert.Equal(t, models.ActivityStatus, a.Type)
	assert.Equal(t, "Todo", a.OldValue)
	assert.Equal(t, "Done", a.NewValue)
	assert.Equal(t, testUser.ID, a.User.ID)
}

func TestUpdateIssue_MultipleChangesShareTimestamp(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x", Status: models.StatusTodo, Priority: models.PriorityLow})

	st := models.StatusInProgress
	pr := models.PriorityUrgent
	require.True(t, s.UpdateIssue(i.ID, IssueUpdate{
		Status:      &st,
		Priority:    &pr,
		SetAssignee: true,
		Assignee:    &testJane,
	}))

	got, _ := s.Issue(i.ID)
	require.Len(t, got.Activities, 4) // create + status + priority + assignee
	assert.Equal(t, got.Activities[1].CreatedAt, got.Activities[2].CreatedAt)
	assert.Equal(t, got.Activities[2].CreatedAt, got.Activities[3].CreatedAt)
	assert.Equal(t, got.Activities[3].CreatedAt, got.UpdatedAt)
}

func TestUpdateIssue_AssigneeActivityUsesDisplayNames(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})

	require.True(t, s.UpdateIssue(i.ID, IssueUpdate{SetAssignee: true, Assignee: &testJane}))
	got, _ := s.Issue(i.ID)
	require.Len(t, got.Activities, 2)
	assert.Equal(t, "Unassigned", got.Activities[1].OldValue)
	assert.Equal(t, "Frontend Jane", got.Activities[1].NewValue)

	require.True(t, s.UpdateIssue(i.ID, IssueUpdate{SetAssignee: true, Assignee: nil}))
	got, _ = s.Issue(i.ID)
	require.Len(t, got.Activities, 3)
	assert.Equal(t, "Frontend Jane", got.Activities[2].OldValue)
	assert.Equal(t, "Unassigned", got.Activities[2].NewValue)
	assert.Nil(t, got.Assignee)
}

func TestUpdateIssue_SameAssigneeIsNoOp(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x", Assignee: &testJane})

	require.True(t, s.UpdateIssue(i.ID, IssueUpdate{SetAssignee: true, Assignee: &testJane}))
	got, _ := s.Issue(i.ID)
	assert.Len(t, got.Activities, 1)
}

func TestUpdateIssue_UntrackedFieldsAreSilent(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "old title"})

	title := "new title"
	desc := "a description"
	require.True(t, s.UpdateIssue(i.ID, IssueUpdate{Title: &title, Description: &desc}))

	got, _ := s.Issue(i.ID)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "a description", got.Description)
	assert.Len(t, got.Activities, 1, "no activity for untracked fields")
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestUpdateIssue_UnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	st := models.StatusDone
	assert.False(t, s.UpdateIssue("nope", IssueUpdate{Status: &st}))
}

func TestUpdateIssue_ByKey(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})

	st := models.StatusDone
	assert.True(t, s.UpdateIssue(i.Key, IssueUpdate{Status: &st}))
}

// --- Deletion and bulk selection ---

func TestDeleteIssues_ClearsBulkSelection(t *testing.T) {
	s := newTestStore(t)
	a := s.CreateIssue(IssueInput{Title: "a"})
	b := s.CreateIssue(IssueInput{Title: "b"})

	s.ToggleBulkSelect(a.ID)
	s.ToggleBulkSelect(b.ID)
	require.Len(t, s.BulkSelectedIDs(), 2)

	removed := s.DeleteIssues([]string{a.ID})
	assert.Equal(t, 1, removed)
	assert.Len(t, s.Issues(), 1)
	assert.Equal(t, []string{b.ID}, s.BulkSelectedIDs())
	assert.False(t, s.IsBulkSelected(a.ID))
}

func TestDeleteIssues_UnknownIDsIgnored(t *testing.T) {
	s := newTestStore(t)
	s.CreateIssue(IssueInput{Title: "a"})

	assert.Equal(t, 0, s.DeleteIssues([]string{"nope"}))
	assert.Len(t, s.Issues(), 1)
}

func TestToggleBulkSelect(t *testing.T) {
	s := newTestStore(t)

	s.ToggleBulkSelect("i-1")
	assert.True(t, s.IsBulkSelected("i-1"))
	s.ToggleBulkSelect("i-1")
	assert.False(t, s.IsBulkSelected("i-1"))

	s.ToggleBulkSelect("i-1")
	s.ToggleBulkSelect("i-2")
	s.ClearBulkSelect()
	assert.Empty(t, s.BulkSelectedIDs())
}

// --- Comments ---

func TestAddComment_AppendsCommentActivity(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})

	c, ok := s.AddComment(i.ID, "first!", "")
	require.True(t, ok)
	assert.Equal(t, i.ID, c.IssueID)
	assert.Empty(t, c.Reactions)

	got, _ := s.Issue(i.ID)
	assert.Equal(t, []models.ActivityType{models.ActivityCreate, models.ActivityComment}, activityTypes(got))
}

func TestCommentThread_EndToEnd(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})

	top, ok := s.AddComment(i.ID, "top-level", "")
	require.True(t, ok)
	reply, ok := s.AddComment(i.ID, "a reply", top.ID)
	require.True(t, ok)
	assert.Equal(t, top.ID, reply.ParentID)

	got, _ := s.Issue(i.ID)
	assert.Len(t, got.Comments, 2)
	// One comment activity per AddComment call, nothing extra for the reply.
	assert.Equal(t,
		[]models.ActivityType{models.ActivityCreate, models.ActivityComment, models.ActivityComment},
		activityTypes(got))
}

func TestAddComment_ReplyToReplyFlattens(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})

	top, _ := s.AddComment(i.ID, "top", "")
	reply, _ := s.AddComment(i.ID, "reply", top.ID)
	deep, _ := s.AddComment(i.ID, "deeper", reply.ID)

	assert.Equal(t, top.ID, deep.ParentID, "replies are never themselves parents")
}

func TestUpdateComment_UnknownIDsSilentNoOp(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})
	c, _ := s.AddComment(i.ID, "body", "")

	assert.False(t, s.UpdateComment("nope", c.ID, "new"))
	assert.False(t, s.UpdateComment(i.ID, "nope", "new"))
	assert.False(t, s.DeleteComment(i.ID, "nope"))

	assert.True(t, s.UpdateComment(i.ID, c.ID, "edited"))
	got, _ := s.Issue(i.ID)
	assert.Equal(t, "edited", got.Comments[0].Body)
}

func TestDeleteComment(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})
	c, _ := s.AddComment(i.ID, "body", "")

	assert.True(t, s.DeleteComment(i.ID, c.ID))
	got, _ := s.Issue(i.ID)
	assert.Empty(t, got.Comments)
}

// --- Reactions ---

func TestToggleReaction_AddThenRemove(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})
	c, _ := s.AddComment(i.ID, "body", "")

	require.True(t, s.ToggleReaction(i.ID, c.ID, "👍"))
	got, _ := s.Issue(i.ID)
	require.Len(t, got.Comments[0].Reactions, 1)
	assert.Equal(t, []string{testUser.ID}, got.Comments[0].Reactions[0].UserIDs)

	require.True(t, s.ToggleReaction(i.ID, c.ID, "👍"))
	got, _ = s.Issue(i.ID)
	assert.Empty(t, got.Comments[0].Reactions, "empty reaction entries are dropped")
}

func TestToggleReaction_DistinctEmojisCoexist(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})
	c, _ := s.AddComment(i.ID, "body", "")

	s.ToggleReaction(i.ID, c.ID, "👍")
	s.ToggleReaction(i.ID, c.ID, "🎉")
	s.ToggleReaction(i.ID, c.ID, "👍")

	got, _ := s.Issue(i.ID)
	require.Len(t, got.Comments[0].Reactions, 1)
	assert.Equal(t, "🎉", got.Comments[0].Reactions[0].Emoji)
}

// Double-toggling any emoji sequence returns reactions to the prior state.
func TestToggleReaction_DoubleToggleIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New(Config{User: testUser, Team: testTeam})
		i := s.CreateIssue(IssueInput{Title: "x"})
		c, _ := s.AddComment(i.ID, "body", "")

		emojis := []string{"👍", "🎉", "🔥", "🚀"}
		warmup := rapid.SliceOfN(rapid.SampledFrom(emojis), 0, 6).Draw(t, "warmup")
		for _, e := range warmup {
			s.ToggleReaction(i.ID, c.ID, e)
		}

		before, _ := s.Issue(i.ID)
		e := rapid.SampledFrom(emojis).Draw(t, "emoji")
		s.ToggleReaction(i.ID, c.ID, e)
		s.ToggleReaction(i.ID, c.ID, e)
		after, _ := s.Issue(i.ID)

		require.Equal(t, before.Comments[0].Reactions, after.Comments[0].Reactions)
	})
}

// --- Integrations ---

func TestLinkGitHubPR_MergesAndLogs(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})
	require.True(t, s.LinkFigmaFile(i.ID, models.FigmaFile{FileName: "Mock.fig"}))

	ok := s.LinkGitHubPR(i.ID, models.GitHubPR{PRNumber: 42, PRStatus: models.PRMerged})
	require.True(t, ok)

	got, _ := s.Issue(i.ID)
	require.NotNil(t, got.Integrations.GitHub)
	assert.Equal(t, 42, got.Integrations.GitHub.PRNumber)
	assert.NotNil(t, got.Integrations.Figma, "other integration kinds untouched")

	last := got.Activities[len(got.Activities)-1]
	assert.Equal(t, models.ActivityIntegration, last.Type)
	assert.Equal(t, "Linked GitHub PR #42", last.NewValue)
}

func TestShareToSlack_ActivitySummary(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x"})

	require.True(t, s.ShareToSlack(i.ID, models.SlackThread{ChannelName: "eng", MessageCount: 3}))
	got, _ := s.Issue(i.ID)
	last := got.Activities[len(got.Activities)-1]
	assert.Equal(t, "Shared to Slack #eng", last.NewValue)
}

func TestLinkIntegration_UnknownIssueNoOp(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.LinkGitHubPR("nope", models.GitHubPR{PRNumber: 1}))
}

// --- Encapsulation ---

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore(t)
	i := s.CreateIssue(IssueInput{Title: "x", Labels: []models.Label{{ID: "l-1", Name: "Bug"}}})
	s.AddComment(i.ID, "body", "")

	got, _ := s.Issue(i.ID)
	got.Title = "tampered"
	got.Labels[0].Name = "tampered"
	got.Activities[0].Type = models.ActivityLabel
	got.Comments[0].Body = "tampered"

	fresh, _ := s.Issue(i.ID)
	assert.Equal(t, "x", fresh.Title)
	assert.Equal(t, "Bug", fresh.Labels[0].Name)
	assert.Equal(t, models.ActivityCreate, fresh.Activities[0].Type)
	assert.Equal(t, "body", fresh.Comments[0].Body)
}

// --- Cycles ---

func TestMoveIssueToCycle(t *testing.T) {
	s := newTestStore(t)
	c := s.AddCycle(models.Cycle{Name: "Sprint 1"})
	i := s.CreateIssue(IssueInput{Title: "x"})

	require.True(t, s.MoveIssueToCycle(i.ID, c.ID))
	got, _ := s.Issue(i.ID)
	assert.Equal(t, c.ID, got.CycleID)

	// Unknown cycle clears the assignment.
	require.True(t, s.MoveIssueToCycle(i.ID, "nope"))
	got, _ = s.Issue(i.ID)
	assert.Empty(t, got.CycleID)
}

func TestAddCycle_AutoNumbers(t *testing.T) {
	s := newTestStore(t)

	a := s.AddCycle(models.Cycle{Name: "one"})
	b := s.AddCycle(models.Cycle{Name: "two"})

	assert.Equal(t, 1, a.Number)
	assert.Equal(t, 2, b.Number)
}
