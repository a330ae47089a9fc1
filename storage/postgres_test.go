package storage

import (
	"reflect"
	"strings"
	"testing"

	"vazifa-api/domain"
)

func TestBuildUpdateQuerySingleField(t *testing.T) {
	completed := true
	query, args := buildUpdateQuery(7, domain.TaskPatch{Completed: &completed})

	if !strings.Contains(query, "SET completed = $2") {
		t.Fatalf("unexpected query: %s", query)
	}
	if !strings.Contains(query, "WHERE id = $1") {
		t.Fatalf("missing id predicate: %s", query)
	}
	if !strings.Contains(query, "RETURNING id, title, completed, priority, created_at") {
		t.Fatalf("missing returning clause: %s", query)
	}
	if !reflect.DeepEqual(args, []any{int64(7), true}) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestBuildUpdateQueryAllFields(t *testing.T) {
	title := "O'Brien's task"
	completed := false
	priority := domain.PriorityHigh
	query, args := buildUpdateQuery(3, domain.TaskPatch{
		Title:     &title,
		Completed: &completed,
		Priority:  &priority,
	})

	if !strings.Contains(query, "title = $2, completed = $3, priority = $4") {
		t.Fatalf("unexpected set clause: %s", query)
	}
	want := []any{int64(3), title, false, domain.PriorityHigh}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestBuildUpdateQueryExplicitFalse(t *testing.T) {
	completed := false
	_, args := buildUpdateQuery(1, domain.TaskPatch{Completed: &completed})

	if len(args) != 2 || args[1] != false {
		t.Fatalf("explicit false must be carried as an argument, got %#v", args)
	}
}
