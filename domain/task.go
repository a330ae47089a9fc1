package domain

import "time"

// Priority is the three-level ordinal attribute used for display ordering.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// NormalizePriority maps any input onto the enumerated domain. Empty and
// out-of-domain values become medium, matching the store's default.
func NormalizePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Rank returns the sort weight of a priority: high=3, medium=2, low=1.
// Anything outside the enumerated domain counts as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// Task is the sole domain entity: a titled, prioritized, completable unit of
// work. ID and CreatedAt are assigned by the store and never change.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskPatch carries a partial update. Nil fields are left unchanged; non-nil
// fields overwrite, including explicit false for Completed.
type TaskPatch struct {
	Title     *string   `json:"title,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
	Priority  *Priority `json:"priority,omitempty"`
}

// IsZero reports whether the patch carries no changes.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Completed == nil && p.Priority == nil
}

// Apply returns a copy of t with the patch fields overwritten.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	return t
}
