package http_test

import (
	"net/http"
	"testing"

	httpin "installation/internal/adapters/in/http"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newValidatedEcho(t *testing.T, c httpin.Commands, q httpin.Queries) *echo.Echo {
	t.Helper()
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	validator, err := httpin.NewRequestValidator(swagger)
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "ok")
	})
	servers.RegisterHandlers(e, httpin.NewServer(c, q, quietLogger()))
	return e
}

func TestRequestValidator_RejectsUnknownStatus(t *testing.T) {
	transition := &MockTransitionOrderHandler{}
	e := newValidatedEcho(t, httpin.Commands{TransitionOrder: transition}, httpin.Queries{})

	rec := do(e, http.MethodPost, "/api/v1/orders/"+uuid.NewString()+"/handle",
		map[string]string{"nextStatus": "Teleported"}, uuid.New(), "Admin")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRequestValidator_RejectsMissingRequiredField(t *testing.T) {
	e := newValidatedEcho(t, httpin.Commands{CreateOrder: &MockCreateOrderHandler{}}, httpin.Queries{})

	rec := do(e, http.MethodPost, "/api/v1/orders",
		map[string]any{"branchId": 1, "departmentId": 1, "city": "Riyadh"}, uuid.New(), "SalesRepresentative")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestValidator_PassesValidRequests(t *testing.T) {
	orderID := kernel.NewUUID()
	transition := &MockTransitionOrderHandler{}
	transition.On("Handle", mock.Anything, mock.Anything).Return(nil)
	getOrder := getOrderReturns(orderID, orderView(orderID, order.PendingSalesManager))

	e := newValidatedEcho(t, httpin.Commands{TransitionOrder: transition}, httpin.Queries{GetOrder: getOrder})

	rec := do(e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/handle",
		servers.OrderAction{NextStatus: servers.OrderStatusPendingSalesManager}, uuid.New(), "SalesRepresentative")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	transition.AssertExpectations(t)
}

func TestRequestValidator_IgnoresUndocumentedRoutes(t *testing.T) {
	e := newValidatedEcho(t, httpin.Commands{}, httpin.Queries{})

	rec := do(e, http.MethodGet, "/health", nil, uuid.Nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
