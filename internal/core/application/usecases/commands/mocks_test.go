package commands_test

import (
	"context"
	"testing"
	"time"

	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/model/task"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingCascade(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*task.Task, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAll(ctx context.Context, filter ports.TaskFilter) ([]*task.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entries ...history.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]history.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]history.Entry), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWorkflowMetrics struct{ mock.Mock }

func (m *MockWorkflowMetrics) TransitionApplied(from, to, action string) {
	m.Called(from, to, action)
}

func (m *MockWorkflowMetrics) TransitionRejected(kind string) {
	m.Called(kind)
}

func (m *MockWorkflowMetrics) CascadeFailed() {
	m.Called()
}

// fixedTokens hands out the same token value every time.
type fixedTokens string

func (f fixedTokens) Generate() (string, error) {
	return string(f), nil
}

const testToken = "token-1"

var fixedNow = time.Date(2025, 4, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func newOrderWorkflow(t *testing.T) *services.OrderWorkflow {
	t.Helper()
	w, err := services.NewOrderWorkflow(fixedTokens(testToken), clock)
	require.NoError(t, err)
	return w
}

func newTaskWorkflow(t *testing.T) *services.TaskWorkflow {
	t.Helper()
	w, err := services.NewTaskWorkflow(clock)
	require.NoError(t, err)
	return w
}

func actorAs(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func testDetails() order.Details {
	return order.Details{City: "Riyadh", Address: "King Fahd Rd 12", CustomerID: "C-1001"}
}

// orderIn restores an order in status; PendingQR orders carry a live testToken.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	var token *order.QRToken
	if status == order.PendingQR {
		qr, err := order.NewQRToken(testToken)
		require.NoError(t, err)
		token = &qr
	}
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		status,
		order.Scope{BranchID: 1, DepartmentID: 2},
		order.Normal,
		testDetails(),
		kernel.NewUUID(),
		fixedNow.Add(-time.Hour),
		token,
		nil,
		3,
	)
	require.NoError(t, err)
	return o
}

func taskIn(t *testing.T, orderID, technicianID kernel.UUID, status task.Status, updatedAt time.Time) *task.Task {
	t.Helper()
	tk, err := task.RestoreTask(kernel.NewUUID(), orderID, technicianID, status, "", nil, fixedNow.Add(-2*time.Hour), &updatedAt)
	require.NoError(t, err)
	return tk
}

// orderWithStatus matches an *order.Order argument by status.
func orderWithStatus(status order.Status) any {
	return mock.MatchedBy(func(o *order.Order) bool {
		return o != nil && o.Status() == status
	})
}

// entriesWith matches a history Append call carrying one entry with action.
func entriesWith(action history.Action) any {
	return mock.MatchedBy(func(entries []history.Entry) bool {
		return len(entries) == 1 && entries[0].Action() == action
	})
}

func newClosure(tokens services.TokenGenerator) (*services.QRClosure, error) {
	return services.NewQRClosure(tokens, clock)
}
