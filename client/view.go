package client

import (
	"sort"
	"strings"

	"vazifa-api/domain"
)

// StatusFilter selects tasks by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// Query describes a derived view: a case-insensitive title search combined
// with a status filter. The zero value selects everything.
type Query struct {
	Search string
	Status StatusFilter
}

// View derives the rendered projection of tasks: search filter, then status
// filter, then priority sort (high before medium before low). Ties between
// equal priorities keep no particular order. The input slice is not modified.
func View(tasks []domain.Task, q Query) []domain.Task {
	needle := strings.ToLower(q.Search)

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if needle != "" && !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}
		switch q.Status {
		case StatusActive:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

// Counts summarizes the list for the footer stats: total, active, completed.
func Counts(tasks []domain.Task) (total, active, completed int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return len(tasks), active, completed
}
