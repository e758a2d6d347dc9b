package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations, all scoped to the
// authenticated employee.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /tasks with optional projectId, status, and date filters.
// The date filter selects tasks whose date falls on that calendar day in
// server-local time.
//
// @Summary      List own tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  query     string  false  "Filter by project"
// @Param        status     query     string  false  "Filter by status"  Enums(pending, working, done)
// @Param        date       query     string  false  "Filter by day (YYYY-MM-DD)"
// @Success      200        {object}  listResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	input := ports.ListTasksInput{
		ProjectID: c.QueryParam("projectId"),
		Status:    domain.TaskStatus(c.QueryParam("status")),
	}
	if raw := c.QueryParam("date"); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		}
		input.Date = &day
	}

	tasks, err := h.service.List(c.Request().Context(), principal, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listEnvelope(len(tasks), tasks))
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope(task))
}

// Create handles POST /tasks. The referenced project must belong to the
// caller, otherwise the request fails as not found.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), principal, ports.CreateTaskInput{
		Title:       req.TaskTitle,
		Description: req.TaskDescription,
		ProjectID:   req.ProjectID,
		DaysSpent:   req.DaysSpent,
		Date:        req.Date,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.Priority(req.Priority),
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope(task))
}

// Update handles PUT /tasks/:id with partial-update semantics.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  dataResponse
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Update(c.Request().Context(), principal, c.Param("id"), ports.UpdateTaskInput{
		Title:       req.TaskTitle,
		Description: req.TaskDescription,
		DaysSpent:   req.DaysSpent,
		Date:        req.Date,
		Status:      taskStatusPtr(req.Status),
		Priority:    priorityPtr(req.Priority),
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope(task))
}

// Delete handles DELETE /tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message("Task deleted successfully"))
}

// ListByProject handles GET /tasks/project/:projectId.
//
// @Summary      List tasks of a project
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project id"
// @Success      200        {object}  listResponse
// @Failure      404        {object}  map[string]string
// @Router       /tasks/project/{projectId} [get]
func (h *TaskHandler) ListByProject(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListByProject(c.Request().Context(), principal, c.Param("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listEnvelope(len(tasks), tasks))
}

// Stats handles GET /tasks/stats/overview.
//
// @Summary      Task count summary
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Router       /tasks/stats/overview [get]
func (h *TaskHandler) Stats(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope(stats))
}
