// Package client mirrors the task store for display: it fetches and mutates
// tasks over the store's HTTP API, keeps a disposable local copy of the full
// list, and derives filtered and sorted views from it. Consistency comes from
// a full re-fetch after every successful mutation, never from local patching.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"vazifa-api/domain"
	"vazifa-api/export"
)

// ErrNotFound is returned when the store reports no task with the given id.
var ErrNotFound = errors.New("task not found")

// ErrEmptyTitle blocks a submission whose trimmed title is empty. The guard
// exists only here; the store accepts any title.
var ErrEmptyTitle = errors.New("title must not be empty")

// StatusError reports a non-2xx response the client does not branch on.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

// Client talks to the task store and caches the last fetched list. It is not
// safe for concurrent use: one logical operation runs at a time and the cache
// is replaced wholesale by the response-completing call.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger

	// Confirm, when set, is consulted before a delete is issued. Returning
	// false aborts the delete without any request.
	Confirm func(task domain.Task) bool

	tasks []domain.Task
}

// New creates a client for the store at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Refresh fetches the full list and replaces the entire local cache.
func (c *Client) Refresh(ctx context.Context) error {
	var tasks []domain.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return err
	}
	c.tasks = tasks
	return nil
}

// Tasks returns a copy of the cached list as of the last refresh.
func (c *Client) Tasks() []domain.Task {
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Get fetches a single task by id.
func (c *Client) Get(ctx context.Context, id int64) (domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Add creates a task and refreshes the cache. An empty trimmed title is
// rejected before any request is made.
func (c *Client) Add(ctx context.Context, title string, priority domain.Priority) (domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Task{}, ErrEmptyTitle
	}
	body := map[string]any{"title": title, "priority": priority}
	var task domain.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &task); err != nil {
		return domain.Task{}, err
	}
	c.logger.WithFields(log.Fields{"id": task.ID, "priority": task.Priority}).Debug("task added")
	return task, c.Refresh(ctx)
}

// Toggle flips the completed flag of the cached task with the given id and
// refreshes the cache.
func (c *Client) Toggle(ctx context.Context, id int64) error {
	cached, ok := c.cached(id)
	if !ok {
		return ErrNotFound
	}
	body := map[string]any{"completed": !cached.Completed}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), body, nil); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Edit submits a new title and priority for the task and refreshes the cache.
// Cancelling an edit is simply not calling Edit; no request is issued.
func (c *Client) Edit(ctx context.Context, id int64, title string, priority domain.Priority) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	body := map[string]any{"title": trimmed, "priority": priority}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), body, nil); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Delete removes the task after the optional Confirm callback approves it,
// then refreshes the cache. An aborted delete issues no request and is not an
// error.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if c.Confirm != nil {
		task, _ := c.cached(id)
		if !c.Confirm(task) {
			return nil
		}
	}
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Export serializes the current derived view into one of the downloadable
// formats ("json", "csv" or "sql") and names the file after the export date.
func (c *Client) Export(q Query, format string, now time.Time) (string, []byte, error) {
	view := View(c.tasks, q)
	name := export.Filename(format, now)
	switch format {
	case "json":
		data, err := export.JSON(view)
		return name, data, err
	case "csv":
		return name, export.CSV(view), nil
	case "sql":
		return name, export.SQL(view, now), nil
	default:
		return "", nil, fmt.Errorf("unknown export format %q", format)
	}
}

func (c *Client) cached(id int64) (domain.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if out == nil {
		return nil
	}
	return sonic.ConfigStd.NewDecoder(resp.Body).Decode(out)
}
