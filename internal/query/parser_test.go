package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artti-capital/linea/internal/models"
)

const testUserID = "u-1"

func TestParse_StructuredAndFreeText(t *testing.T) {
	frag := Parse("is:done priority:high assigned:me foo bar", testUserID)

	assert.Equal(t, []models.Status{models.StatusDone}, frag.Status)
	assert.Equal(t, []models.Priority{models.PriorityHigh}, frag.Priority)
	assert.Equal(t, []string{testUserID}, frag.Assignees)
	assert.Equal(t, "foo bar", frag.Search)
}

func TestParse_EmptyQuery(t *testing.T) {
	frag := Parse("", testUserID)

	assert.Empty(t, frag.Status)
	assert.Empty(t, frag.Priority)
	assert.Empty(t, frag.Assignees)
	assert.Empty(t, frag.Search)
}

func TestParse_FreeTextOnly(t *testing.T) {
	frag := Parse("random text", testUserID)

	assert.Empty(t, frag.Status)
	assert.Empty(t, frag.Priority)
	assert.Empty(t, frag.Assignees)
	assert.Equal(t, "random text", frag.Search)
}

func TestParse_SameKeyAccumulates(t *testing.T) {
	frag := Parse("is:done is:todo", testUserID)

	assert.Equal(t, []models.Status{models.StatusDone, models.StatusTodo}, frag.Status)
}

func TestParse_StatusAliases(t *testing.T) {
	tests := []struct {
		query string
		want  models.Status
	}{
		{"is:done", models.StatusDone},
		{"status:done", models.StatusDone},
		{"is:todo", models.StatusTodo},
		{"is:backlog", models.StatusBacklog},
		{"is:progress", models.StatusInProgress},
		{"IS:DONE", models.StatusDone},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			frag := Parse(tt.query, testUserID)
			assert.Equal(t, []models.Status{tt.want}, frag.Status)
		})
	}
}

func TestParse_UnrecognizedValuesDropped(t *testing.T) {
	frag := Parse("is:bogus priority:none assigned:alice", testUserID)

	assert.Empty(t, frag.Status)
	assert.Empty(t, frag.Priority)
	assert.Empty(t, frag.Assignees)
	assert.Empty(t, frag.Search, "dropped structured tokens do not leak into search")
}

func TestParse_UnknownKeyPassesThrough(t *testing.T) {
	frag := Parse("foo:bar fix crash", testUserID)

	assert.Empty(t, frag.Status)
	assert.Equal(t, "foo:bar fix crash", frag.Search)
}

func TestParse_MultipleColons(t *testing.T) {
	// Only the first two segments form the key and value.
	frag := Parse("is:done:extra", testUserID)
	assert.Equal(t, []models.Status{models.StatusDone}, frag.Status)

	frag = Parse("link:https://example.com", testUserID)
	assert.Equal(t, "link:https://example.com", frag.Search)
}

func TestParse_WhitespaceNormalized(t *testing.T) {
	frag := Parse("   fix   \t crash  is:todo ", testUserID)

	assert.Equal(t, "fix crash", frag.Search)
	assert.Equal(t, []models.Status{models.StatusTodo}, frag.Status)
}

func TestParse_MixedCasePriorities(t *testing.T) {
	frag := Parse("priority:Urgent priority:LOW", testUserID)

	assert.Equal(t, []models.Priority{models.PriorityUrgent, models.PriorityLow}, frag.Priority)
}
