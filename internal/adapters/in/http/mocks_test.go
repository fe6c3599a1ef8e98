package http_test

import (
	"context"

	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/application/usecases/queries"
	"installation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockTransitionOrderHandler struct{ mock.Mock }

func (m *MockTransitionOrderHandler) Handle(ctx context.Context, cmd commands.TransitionOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockVerifyQRHandler struct{ mock.Mock }

func (m *MockVerifyQRHandler) Handle(ctx context.Context, cmd commands.VerifyQRCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRetryCascadeHandler struct{ mock.Mock }

func (m *MockRetryCascadeHandler) Handle(ctx context.Context, cmd commands.RetryCascadeCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}

type MockAssignTaskHandler struct{ mock.Mock }

func (m *MockAssignTaskHandler) Handle(ctx context.Context, cmd commands.AssignTaskCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUpdateTaskStatusHandler struct{ mock.Mock }

func (m *MockUpdateTaskStatusHandler) Handle(ctx context.Context, cmd commands.UpdateTaskStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockGetOrderActionsHandler struct{ mock.Mock }

func (m *MockGetOrderActionsHandler) Handle(ctx context.Context, query queries.GetOrderActionsQuery) (queries.OrderActionsView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderActionsView), args.Error(1)
}

type MockGetOrderQRHandler struct{ mock.Mock }

func (m *MockGetOrderQRHandler) Handle(ctx context.Context, query queries.GetOrderQRQuery) ([]byte, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockGetTasksHandler struct{ mock.Mock }

func (m *MockGetTasksHandler) Handle(ctx context.Context, query queries.GetTasksQuery) ([]queries.TaskView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.TaskView), args.Error(1)
}
