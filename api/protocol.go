package api

const taskBodyMaxSize = 64 * 1024 // 64 KiB

// POST /api/tasks request body.
type createTaskRequest struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

// PUT /api/tasks/:id request body. Pointer fields distinguish "absent" from
// explicit zero values such as completed=false.
type updateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority"`
}

// DELETE /api/tasks/:id response body.
type deleteTaskResponse struct {
	Success bool `json:"success"`
}
