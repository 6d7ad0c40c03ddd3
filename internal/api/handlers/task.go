package handlers

import (
	"net/http"

	"performance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for tasks, subtasks and attachments
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new task
// @Summary Create a new task
// @Description Create a task with its assigned members and initial subtasks.
// @Description
// @Description Optional Fields with Defaults:
// @Description - status: Defaults to 'not-started' (valid values: not-started, in-progress, review, completed)
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Assigned member not found"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks lists active tasks
// @Summary List tasks
// @Description List tasks that are not completed. status=completed lists the archive instead.
// @Tags tasks
// @Produce json
// @Param q query string false "Search text matched against title and description"
// @Param status query string false "Status filter (all, not-started, in-progress, review, completed)"
// @Success 200 {array} service.TaskResponse "Successfully retrieved tasks"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Query("q"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ListArchivedTasks lists completed tasks
// @Summary List archived tasks
// @Description List completed tasks, optionally filtered by title or description
// @Tags tasks
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} service.TaskResponse "Successfully retrieved archived tasks"
// @Router /tasks/archive [get]
func (h *TaskHandler) ListArchivedTasks(c *gin.Context) {
	tasks, err := h.taskService.ListArchivedTasks(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask retrieves a task by ID
// @Summary Get task by ID
// @Description Get a task with its assignments, subtasks and attachments
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Successfully retrieved task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTasksByMember lists the tasks assigned to a member
// @Summary List a member's tasks
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {array} service.TaskResponse "Successfully retrieved tasks"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /members/{id}/tasks [get]
func (h *TaskHandler) GetTasksByMember(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByMember(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask updates a task
// @Summary Update task
// @Description Partially update a task. When assigned_members is present it replaces the whole assignment list.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} service.TaskResponse "Successfully updated task"
// @Failure 400 {object} ErrorResponse "Invalid task ID or request body"
// @Failure 404 {object} ErrorResponse "Task or assigned member not found"
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus moves a task to another status
// @Summary Update task status
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param status body service.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} service.TaskResponse "Successfully updated status"
// @Failure 400 {object} ErrorResponse "Invalid task ID or status"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var req service.UpdateTaskStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTaskStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// @Summary Delete task
// @Description Delete a task together with its subtasks, attachments, assignments and ratings
// @Tags tasks
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Successfully deleted task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSubtask adds a subtask
// @Summary Add subtask
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param subtask body service.AddSubtaskRequest true "Subtask"
// @Success 201 {object} service.TaskResponse "Task with the new subtask"
// @Failure 400 {object} ErrorResponse "Invalid task ID or request body"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id}/subtasks [post]
func (h *TaskHandler) AddSubtask(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var req service.AddSubtaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.AddSubtask(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ToggleSubtask flips a subtask between pending and completed
// @Summary Toggle subtask
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param subtaskId path string true "Subtask ID (UUID)"
// @Success 200 {object} service.TaskResponse "Task with the toggled subtask"
// @Failure 400 {object} ErrorResponse "Invalid task or subtask ID"
// @Failure 404 {object} ErrorResponse "Subtask not found"
// @Router /tasks/{id}/subtasks/{subtaskId}/toggle [patch]
func (h *TaskHandler) ToggleSubtask(c *gin.Context) {
	taskID, ok := parseID(c, "id", "task")
	if !ok {
		return
	}
	subtaskID, ok := parseID(c, "subtaskId", "subtask")
	if !ok {
		return
	}

	task, err := h.taskService.ToggleSubtask(taskID, subtaskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// AddAttachment attaches a base64 encoded file to a task
// @Summary Add attachment
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param attachment body service.AddAttachmentRequest true "Attachment (plain base64 or data URL)"
// @Success 201 {object} service.TaskResponse "Task with the new attachment"
// @Failure 400 {object} ErrorResponse "Invalid task ID or attachment"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id}/attachments [post]
func (h *TaskHandler) AddAttachment(c *gin.Context) {
	id, ok := parseID(c, "id", "task")
	if !ok {
		return
	}

	var req service.AddAttachmentRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.AddAttachment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}
