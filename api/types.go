package api

import (
	"context"

	"vazifa-api/domain"
)

// Storage abstracts persistence for handlers.
type Storage interface {
	Tasks(ctx context.Context) ([]domain.Task, error)
	Task(ctx context.Context, id int64) (domain.Task, error)
	CreateTask(ctx context.Context, title string, priority domain.Priority) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// Pinger is implemented by stores that can verify their backing connection.
type Pinger interface {
	Ping(ctx context.Context) error
}
