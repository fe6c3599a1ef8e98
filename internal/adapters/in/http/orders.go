package http

import (
	"net/http"
	"strings"

	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/application/usecases/queries"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/generated/servers"
	"installation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - lists orders matching the filters.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	if _, err := actorFrom(params.XUserId, params.XUserRole); err != nil {
		return s.fail(ctx, err)
	}

	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(params.BranchId, params.DepartmentId, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens a Draft order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.Id != nil {
		if orderID, err = kernel.UUIDFromGoogle(*body.Id); err != nil {
			return s.fail(ctx, err)
		}
	}

	priority := order.Normal
	if body.Priority != nil {
		if priority, err = order.ParsePriority(string(*body.Priority)); err != nil {
			return s.fail(ctx, err)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actor,
		order.Scope{BranchID: body.BranchId, DepartmentID: body.DepartmentId},
		priority,
		order.Details{
			City:          body.City,
			Address:       body.Address,
			ScheduledDate: body.ScheduledDate,
			QuotationID:   deref(body.QuotationId),
			InvoiceID:     deref(body.InvoiceId),
			CustomerID:    body.CustomerId,
		},
		deref(body.Note),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

// VerifyQr handles POST /api/v1/orders/verify-qr - closes an order with its QR token.
func (s *Server) VerifyQr(ctx echo.Context, params servers.VerifyQrParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.VerifyQrJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var cmd commands.VerifyQRCommand
	switch {
	case body.Payload != nil && strings.TrimSpace(*body.Payload) != "":
		cmd, err = commands.NewVerifyQRCommandFromPayload(*body.Payload, actor)
	case body.OrderId != nil:
		var orderID kernel.UUID
		if orderID, err = kernel.UUIDFromGoogle(*body.OrderId); err == nil {
			cmd, err = commands.NewVerifyQRCommand(orderID, deref(body.Token), actor)
		}
	default:
		err = errs.NewValueIsRequiredError("payload")
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.commands.VerifyQR.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, cmd.OrderID())
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId, params servers.GetOrderParams) error {
	if _, err := actorFrom(params.XUserId, params.XUserRole); err != nil {
		return s.fail(ctx, err)
	}
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

// HandleOrder handles POST /api/v1/orders/{orderId}/handle - moves the order to nextStatus.
func (s *Server) HandleOrder(ctx echo.Context, orderId servers.OrderId, params servers.HandleOrderParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.HandleOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	to, err := order.ParseStatus(string(body.NextStatus))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(id, to, actor, deref(body.Note))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId servers.OrderId, params servers.GetOrderHistoryParams) error {
	if _, err := actorFrom(params.XUserId, params.XUserRole); err != nil {
		return s.fail(ctx, err)
	}
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	entries, err := s.queries.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, entry := range entries {
		response[i] = toHistoryEntry(entry)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderActions handles GET /api/v1/orders/{orderId}/actions.
func (s *Server) GetOrderActions(ctx echo.Context, orderId servers.OrderId, params servers.GetOrderActionsParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderActionsQuery(id, actor)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetOrderActions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderActions(view))
}

// GetOrderQr handles GET /api/v1/orders/{orderId}/qr - renders the live QR code as PNG.
func (s *Server) GetOrderQr(ctx echo.Context, orderId servers.OrderId, params servers.GetOrderQrParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	size := queries.DefaultQRSize
	if params.Size != nil {
		size = *params.Size
	}
	query, err := queries.NewGetOrderQRQuery(id, actor, size)
	if err != nil {
		return s.fail(ctx, err)
	}

	png, err := s.queries.GetOrderQR.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return ctx.Blob(http.StatusOK, "image/png", png)
}

// OverrideClose handles POST /api/v1/orders/{orderId}/override-close.
func (s *Server) OverrideClose(ctx echo.Context, orderId servers.OrderId, params servers.OverrideCloseParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.OverrideCloseJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdminOverrideCloseCommand(id, actor, deref(body.Note))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.AdminOverrideClose.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// ReissueQr handles POST /api/v1/orders/{orderId}/reissue-qr.
func (s *Server) ReissueQr(ctx echo.Context, orderId servers.OrderId, params servers.ReissueQrParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ReissueQrJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReissueQRCommand(id, actor, deref(body.Note))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.ReissueQR.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// RetryCascade handles POST /api/v1/orders/{orderId}/cascade.
func (s *Server) RetryCascade(ctx echo.Context, orderId servers.OrderId, params servers.RetryCascadeParams) error {
	actor, err := actorFrom(params.XUserId, params.XUserRole)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRetryCascadeCommand(id, actor)
	if err != nil {
		return s.fail(ctx, err)
	}
	applied, err := s.commands.RetryCascade.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getOrder(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.CascadeResult{
		Applied: applied,
		Order:   toOrder(view),
	})
}

// respondOrder re-reads the order after a command so clients get the committed state.
func (s *Server) respondOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	view, err := s.getOrder(ctx, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toOrder(view))
}

func (s *Server) getOrder(ctx echo.Context, orderID kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.queries.GetOrder.Handle(ctx.Request().Context(), query)
}
