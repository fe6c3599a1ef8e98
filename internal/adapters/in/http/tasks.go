package http

import (
	"errors"
	"net/http"

	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/application/usecases/queries"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/task"
	"installation/internal/generated/servers"
	"installation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetTasks handles GET /api/v1/tasks. Technicians only get their own tasks.
func (s *Server) GetTasks(ctx echo.Context, params servers.GetTasksParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	var orderID *kernel.UUID
	if params.OrderId != nil {
		id, err := kernel.UUIDFromGoogle(*params.OrderId)
		if err != nil {
			return s.fail(ctx, err)
		}
		orderID = &id
	}

	query, err := queries.NewGetTasksQuery(actor, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.GetTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Task, len(views))
	for i, v := range views {
		response[i] = toTask(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AssignTask handles POST /api/v1/tasks - assigns a technician to an order.
func (s *Server) AssignTask(ctx echo.Context, params servers.AssignTaskParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AssignTaskJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromGoogle(body.OrderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	technicianID, err := kernel.UUIDFromGoogle(body.TechnicianId)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsRequiredErrorWithCause("technician id", err))
	}

	cmd, err := commands.NewAssignTaskCommand(orderID, technicianID, deref(body.Notes), actor)
	if err != nil {
		return s.fail(ctx, err)
	}
	taskID, err := s.commands.AssignTask.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.TaskCreated{Id: taskID.Bytes()})
}

// UpdateTaskStatus handles POST /api/v1/tasks/{taskId}/status.
//
// A completion that committed but whose order cascade failed answers 202 with the
// cascade error; the order stays InProgress until the cascade is retried.
func (s *Server) UpdateTaskStatus(ctx echo.Context, taskId openapi_types.UUID, params servers.UpdateTaskStatusParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := kernel.UUIDFromGoogle(taskId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateTaskStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	status, err := task.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateTaskStatusCommand(id, status, deref(body.Notes), actor)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.TaskStatusUpdate{
		Status: servers.TaskStatus(status.String()),
		TaskId: id.Bytes(),
	}

	err = s.commands.UpdateTaskStatus.Handle(ctx.Request().Context(), cmd)
	var cascadeErr *errs.CascadeFailedError
	switch {
	case errors.As(err, &cascadeErr):
		s.logger.WarnContext(ctx.Request().Context(), "order cascade failed after task update",
			"task_id", id.String(),
			"order_id", cascadeErr.OrderID,
			"error", cascadeErr.Cause,
		)
		message := cascadeErr.Error()
		response.CascadeError = &message
		return ctx.JSON(http.StatusAccepted, response)
	case err != nil:
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
