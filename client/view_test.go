package client

import (
	"testing"

	"vazifa-api/domain"
)

func viewFixture() []domain.Task {
	return []domain.Task{
		{ID: 1, Title: "Buy milk", Completed: false, Priority: domain.PriorityLow},
		{ID: 2, Title: "Write report", Completed: true, Priority: domain.PriorityHigh},
		{ID: 3, Title: "buy stamps", Completed: false, Priority: domain.PriorityHigh},
		{ID: 4, Title: "Call mom", Completed: true},
		{ID: 5, Title: "Fix sink", Completed: false, Priority: domain.PriorityMedium},
	}
}

func ids(tasks []domain.Task) map[int64]bool {
	out := make(map[int64]bool, len(tasks))
	for _, t := range tasks {
		out[t.ID] = true
	}
	return out
}

func TestViewStatusPartition(t *testing.T) {
	tasks := viewFixture()

	active := View(tasks, Query{Status: StatusActive})
	completed := View(tasks, Query{Status: StatusCompleted})
	all := View(tasks, Query{Status: StatusAll})

	if len(active)+len(completed) != len(all) || len(all) != len(tasks) {
		t.Fatalf("partition sizes: active=%d completed=%d all=%d", len(active), len(completed), len(all))
	}
	activeIDs, completedIDs := ids(active), ids(completed)
	for id := range activeIDs {
		if completedIDs[id] {
			t.Fatalf("id %d in both partitions", id)
		}
	}
	union := ids(active)
	for id := range completedIDs {
		union[id] = true
	}
	for _, task := range tasks {
		if !union[task.ID] {
			t.Fatalf("id %d missing from union", task.ID)
		}
	}
	for _, task := range active {
		if task.Completed {
			t.Fatalf("completed task %d in active view", task.ID)
		}
	}
	for _, task := range completed {
		if !task.Completed {
			t.Fatalf("active task %d in completed view", task.ID)
		}
	}
}

func TestViewSearchCaseInsensitive(t *testing.T) {
	got := View(viewFixture(), Query{Search: "BUY"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %#v", len(got), got)
	}
	matched := ids(got)
	if !matched[1] || !matched[3] {
		t.Fatalf("unexpected matches: %#v", matched)
	}
}

func TestViewSortsByPriorityRank(t *testing.T) {
	got := View(viewFixture(), Query{})
	if len(got) != 5 {
		t.Fatalf("expected all tasks, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Priority.Rank() < got[i].Priority.Rank() {
			t.Fatalf("priority order violated at %d: %#v", i, got)
		}
	}
	if got[0].Priority != domain.PriorityHigh || got[1].Priority != domain.PriorityHigh {
		t.Fatalf("high priority tasks must come first: %#v", got)
	}
	if got[len(got)-1].Priority != domain.PriorityLow {
		t.Fatalf("low priority task must come last: %#v", got)
	}
}

func TestViewMissingPrioritySortsAsMedium(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Priority: domain.PriorityLow},
		{ID: 2}, // no priority
		{ID: 3, Priority: domain.PriorityHigh},
	}
	got := View(tasks, Query{})
	if got[0].ID != 3 || got[1].ID != 2 || got[2].ID != 1 {
		t.Fatalf("expected high, missing-as-medium, low; got %#v", got)
	}
}

func TestViewDoesNotMutateInput(t *testing.T) {
	tasks := viewFixture()
	first := tasks[0].ID
	_ = View(tasks, Query{})
	if tasks[0].ID != first {
		t.Fatalf("input slice reordered")
	}
}

func TestCounts(t *testing.T) {
	total, active, completed := Counts(viewFixture())
	if total != 5 || active != 3 || completed != 2 {
		t.Fatalf("unexpected counts: total=%d active=%d completed=%d", total, active, completed)
	}
}
