// Package filter derives the ordered, visible subset of issues from the full
// collection and the current filter state. All functions are pure: inputs are
// never mutated and identical inputs always yield identical output.
package filter

import (
	"sort"
	"strings"

	"github.com/artti-capital/linea/internal/models"
)

// ViewContext tells the engine which screen the result is for. The issues
// list applies an implicit "active work" default when no status filter is
// set; the board never does, since its columns bucket every status.
type ViewContext int

const (
	ViewIssues ViewContext = iota
	ViewBoard
)

// Visible applies the filter pipeline to issues and returns the ordered
// result. Stages run in a fixed order, each narrowing the previous stage's
// output: status, priority, free-text search, then a stable priority sort.
func Visible(issues []*models.Issue, f models.FilterState, view ViewContext) []*models.Issue {
	out := byStatus(issues, f.Status, view)
	out = byPriority(out, f.Priority)
	out = byAssignees(out, f.Assignees)
	out = bySearch(out, f.Search)
	return sortByPriority(out, f.SortOrder)
}

func byStatus(issues []*models.Issue, statuses []models.Status, view ViewContext) []*models.Issue {
	if len(statuses) == 0 {
		if view == ViewBoard {
			return append([]*models.Issue(nil), issues...)
		}
		// Issues-list default: hide finished and unplanned work.
		out := make([]*models.Issue, 0, len(issues))
		for _, i := range issues {
			if i.Status != models.StatusDone && i.Status != models.StatusBacklog {
				out = append(out, i)
			}
		}
		return out
	}

	want := make(map[models.Status]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	out := make([]*models.Issue, 0, len(issues))
	for _, i := range issues {
		if want[i.Status] {
			out = append(out, i)
		}
	}
	return out
}

func byPriority(issues []*models.Issue, priorities []models.Priority) []*models.Issue {
	if len(priorities) == 0 {
		return issues
	}
	want := make(map[models.Priority]bool, len(priorities))
	for _, p := range priorities {
		want[p] = true
	}
	out := make([]*models.Issue, 0, len(issues))
	for _, i := range issues {
		if want[i.Priority] {
			out = append(out, i)
		}
	}
	return out
}

func byAssignees(issues []*models.Issue, assignees []string) []*models.Issue {
	if len(assignees) == 0 {
		return issues
	}
	want := make(map[string]bool, len(assignees))
	for _, id := range assignees {
		want[id] = true
	}
	out := make([]*models.Issue, 0, len(issues))
	for _, i := range issues {
		if i.Assignee != nil && want[i.Assignee.ID] {
			out = append(out, i)
		}
	}
	return out
}

func bySearch(issues []*models.Issue, search string) []*models.Issue {
	if search == "" {
		return issues
	}
	needle := strings.ToLower(search)
	out := make([]*models.Issue, 0, len(issues))
	for _, i := range issues {
		if strings.Contains(strings.ToLower(i.Title), needle) ||
			strings.Contains(strings.ToLower(i.Key), needle) {
			out = append(out, i)
		}
	}
	return out
}

// sortByPriority orders by the fixed rank Urgent > High > Medium > Low >
// No priority. Descending keeps that order; ascending reverses it. The sort
// is stable: equal priorities preserve their prior relative order.
func sortByPriority(issues []*models.Issue, order models.SortOrder) []*models.Issue {
	out := append([]*models.Issue(nil), issues...)
	sort.SliceStable(out, func(a, b int) bool {
		ra, rb := out[a].Priority.Rank(), out[b].Priority.Rank()
		if order == models.SortAsc {
			return ra > rb
		}
		return ra < rb
	})
	return out
}
