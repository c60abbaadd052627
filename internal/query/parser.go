// Package query turns a free-text search string like
// "is:done priority:high assigned:me crash" into structured filter criteria.
package query

import (
	"strings"

	"github.com/artti-capital/linea/internal/models"
)

// Fragment is the parsed form of a search string: the structured criteria
// extracted from key:value tokens plus the remaining free text.
type Fragment struct {
	Status    []models.Status
	Priority  []models.Priority
	Assignees []string
	Search    string
}

// Parse splits the query on whitespace and classifies each token. A token of
// the form key:value with a recognized key becomes a structured criterion;
// everything else, including key:value tokens with unknown keys, passes
// through verbatim into Search. Tokens of the same key accumulate rather than
// overwrite. Parse never fails: malformed input degrades to free text.
//
// currentUserID resolves the "assigned:me" shorthand; other assigned values
// are dropped.
func Parse(query, currentUserID string) Fragment {
	frag := Fragment{
		Status:    []models.Status{},
		Priority:  []models.Priority{},
		Assignees: []string{},
	}

	var searchParts []string
	for _, part := range strings.Fields(query) {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			searchParts = append(searchParts, part)
			continue
		}
		// Mirror of the structured-token grammar: only the text up to the
		// first colon is the key, the next segment is the value.
		if i := strings.IndexByte(value, ':'); i >= 0 {
			value = value[:i]
		}

		switch strings.ToLower(key) {
		case "is", "status":
			if s, ok := parseStatus(value); ok {
				frag.Status = append(frag.Status, s)
			}
		case "priority":
			if p, ok := parsePriority(value); ok {
				frag.Priority = append(frag.Priority, p)
			}
		case "assigned":
			if strings.EqualFold(value, "me") {
				frag.Assignees = append(frag.Assignees, currentUserID)
			}
		default:
			// Unknown keys are not dropped: the whole token stays searchable.
			searchParts = append(searchParts, part)
		}
	}

	frag.Search = strings.TrimSpace(strings.Join(searchParts, " "))
	return frag
}

func parseStatus(value string) (models.Status, bool) {
	switch strings.ToLower(value) {
	case "done":
		return models.StatusDone, true
	case "todo":
		return models.StatusTodo, true
	case "backlog":
		return models.StatusBacklog, true
	case "progress":
		return models.StatusInProgress, true
	default:
		return "", false
	}
}

func parsePriority(value string) (models.Priority, bool) {
	switch strings.ToLower(value) {
	case "urgent":
		return models.PriorityUrgent, true
	case "high":
		return models.PriorityHigh, true
	case "medium":
		return models.PriorityMedium, true
	case "low":
		return models.PriorityLow, true
	default:
		return "", false
	}
}
