package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vazifa-api/domain"
)

// ErrNotFound is returned when an operation targets a task id that does not
// exist. Delete of a missing id reports it too rather than succeeding.
var ErrNotFound = errors.New("task not found")

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	priority TEXT NOT NULL DEFAULT 'medium',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// Storage provides access to the task table in PostgreSQL.
type Storage struct {
	pool *pgxpool.Pool
}

// New connects to the database with the given connection string and makes
// sure the tasks table exists.
func New(ctx context.Context, connStr string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}
	return &Storage{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *Storage) Close() {
	s.pool.Close()
}

// Ping verifies database connectivity for health checks.
func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Tasks returns every task, newest first.
func (s *Storage) Tasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, completed, priority, created_at
		FROM tasks
		ORDER BY created_at DESC, id DESC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		err = rows.Scan(&t.ID, &t.Title, &t.Completed, &t.Priority, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Task returns the task with the given id, or ErrNotFound.
func (s *Storage) Task(ctx context.Context, id int64) (domain.Task, error) {
	var t domain.Task
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, completed, priority, created_at
		FROM tasks
		WHERE id = $1;
	`, id).Scan(&t.ID, &t.Title, &t.Completed, &t.Priority, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, ErrNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// CreateTask persists a new task and returns it with the assigned id and
// creation timestamp. Titles are stored as given; duplicates are allowed.
func (s *Storage) CreateTask(ctx context.Context, title string, priority domain.Priority) (domain.Task, error) {
	if priority == "" {
		priority = domain.PriorityMedium
	}
	var t domain.Task
	err := s.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, priority)
		VALUES ($1, $2)
		RETURNING id, title, completed, priority, created_at;
	`, title, priority).Scan(&t.ID, &t.Title, &t.Completed, &t.Priority, &t.CreatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// UpdateTask overwrites the fields present in the patch and returns the
// resulting row. An empty patch reads the current row instead of writing.
func (s *Storage) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (domain.Task, error) {
	if patch.IsZero() {
		return s.Task(ctx, id)
	}

	query, args := buildUpdateQuery(id, patch)

	var t domain.Task
	err := s.pool.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.Title, &t.Completed, &t.Priority, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, ErrNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// DeleteTask removes the task permanently.
func (s *Storage) DeleteTask(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM tasks
		WHERE id = $1;
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// buildUpdateQuery assembles the SET clause from the non-nil patch fields.
// Placeholder $1 is always the task id.
func buildUpdateQuery(id int64, patch domain.TaskPatch) (string, []any) {
	sets := make([]string, 0, 3)
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Completed != nil {
		add("completed", *patch.Completed)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") +
		" WHERE id = $1 RETURNING id, title, completed, priority, created_at;"
	return query, args
}
