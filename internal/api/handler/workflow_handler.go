package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

// WorkflowHandler handles HTTP requests for workflow operations. Access is
// decided per record by the visibility policy, not by ownership alone.
type WorkflowHandler struct {
	service ports.WorkflowService
}

func NewWorkflowHandler(service ports.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{service: service}
}

// List handles GET /workflows with pagination and filters.
//
// @Summary      List visible workflows
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10, max 100)"
// @Param        status    query     string  false  "Filter by status"    Enums(draft, active, paused, completed, cancelled)
// @Param        priority  query     string  false  "Filter by priority"  Enums(low, medium, high, urgent)
// @Param        category  query     string  false  "Filter by category"
// @Param        search    query     string  false  "Substring match over title and description"
// @Success      200       {object}  workflowListData
// @Router       /workflows [get]
func (h *WorkflowHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	res, err := h.service.List(c.Request().Context(), principal, ports.ListWorkflowsInput{
		Status:   domain.WorkflowStatus(c.QueryParam("status")),
		Priority: domain.Priority(c.QueryParam("priority")),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWorkflowListData(res))
}

// Get handles GET /workflows/:id.
//
// @Summary      Get a workflow
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workflow id"
// @Success      200  {object}  dataResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workflows/{id} [get]
func (h *WorkflowHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	workflow, err := h.service.Get(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope(toWorkflowResponse(workflow)))
}

// Create handles POST /workflows.
//
// @Summary      Create a workflow
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkflowRequest  true  "Workflow details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /workflows [post]
func (h *WorkflowHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workflow, err := h.service.Create(c.Request().Context(), principal, ports.CreateWorkflowInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    domain.Priority(req.Priority),
		AssignedTo:  req.AssignedTo,
		Steps:       toCreateStepInputs(req.Steps),
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope(toWorkflowResponse(workflow)))
}

// Update handles PUT /workflows/:id. Only the creator or an admin may
// update; fields absent from the body keep their stored values.
//
// @Summary      Update a workflow
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Workflow id"
// @Param        body  body      updateWorkflowRequest  true  "Fields to update"
// @Success      200   {object}  dataResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /workflows/{id} [put]
func (h *WorkflowHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workflow, err := h.service.Update(c.Request().Context(), principal, c.Param("id"), ports.UpdateWorkflowInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      workflowStatusPtr(req.Status),
		Priority:    priorityPtr(req.Priority),
		Category:    req.Category,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope(toWorkflowResponse(workflow)))
}

// Delete handles DELETE /workflows/:id. Creator or admin only.
//
// @Summary      Delete a workflow
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workflow id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workflows/{id} [delete]
func (h *WorkflowHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message("Workflow deleted successfully"))
}

// UpdateStep handles PUT /workflows/:id/steps/:stepId.
//
// @Summary      Update a workflow step
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string             true  "Workflow id"
// @Param        stepId  path      string             true  "Step id"
// @Param        body    body      updateStepRequest  true  "Step status and notes"
// @Success      200     {object}  dataResponse
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /workflows/{id}/steps/{stepId} [put]
func (h *WorkflowHandler) UpdateStep(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateStepRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workflow, err := h.service.UpdateStep(c.Request().Context(), principal, c.Param("id"), c.Param("stepId"), ports.UpdateStepInput{
		Status: domain.StepStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope(toWorkflowResponse(workflow)))
}

// AddComment handles POST /workflows/:id/comments. Comments are append-only.
//
// @Summary      Comment on a workflow
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Workflow id"
// @Param        body  body      addCommentRequest  true  "Comment text"
// @Success      201   {object}  dataResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /workflows/{id}/comments [post]
func (h *WorkflowHandler) AddComment(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workflow, err := h.service.AddComment(c.Request().Context(), principal, c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope(toWorkflowResponse(workflow)))
}

// Stats handles GET /workflows/stats/overview.
//
// @Summary      Workflow count summary
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Router       /workflows/stats/overview [get]
func (h *WorkflowHandler) Stats(c echo.Context) error {
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
