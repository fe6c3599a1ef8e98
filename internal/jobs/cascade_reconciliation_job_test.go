package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/jobs"
	"installation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockFinder struct{ mock.Mock }

func (m *MockFinder) GetAllAwaitingCascade(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRetrier struct{ mock.Mock }

func (m *MockRetrier) Handle(ctx context.Context, cmd commands.RetryCascadeCommand) (bool, error) {
	args := m.Called(ctx, cmd.OrderID())
	return args.Bool(0), args.Error(1)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func inProgressOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.InProgress,
		order.Scope{BranchID: 1, DepartmentID: 1},
		order.Normal,
		order.Details{City: "Riyadh", Address: "Olaya 1", CustomerID: "C-1"},
		kernel.NewUUID(),
		time.Now(),
		nil,
		nil,
		1,
	)
	require.NoError(t, err)
	return o
}

func TestCascadeReconciliationJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	applied := inProgressOrder(t)
	raced := inProgressOrder(t)
	broken := inProgressOrder(t)
	already := inProgressOrder(t)

	finder := new(MockFinder)
	finder.On("GetAllAwaitingCascade", ctx).Return([]*order.Order{applied, raced, broken, already}, nil)
	retrier := new(MockRetrier)
	retrier.On("Handle", ctx, applied.ID()).Return(true, nil).Once()
	retrier.On("Handle", ctx, raced.ID()).Return(false, errs.NewVersionIsInvalidError("order", errors.New("stale"))).Once()
	retrier.On("Handle", ctx, broken.ID()).Return(false, errors.New("connection reset")).Once()
	retrier.On("Handle", ctx, already.ID()).Return(false, nil).Once()

	job := jobs.NewCascadeReconciliationJob(finder, retrier, "", quietLogger())
	count, err := job.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	retrier.AssertExpectations(t)
}

func TestCascadeReconciliationJob_RunOnce_ListingFails(t *testing.T) {
	ctx := t.Context()
	boom := errors.New("db down")
	finder := new(MockFinder)
	finder.On("GetAllAwaitingCascade", ctx).Return(nil, boom)
	retrier := new(MockRetrier)

	_, err := jobs.NewCascadeReconciliationJob(finder, retrier, "", quietLogger()).RunOnce(ctx)

	require.ErrorIs(t, err, boom)
	retrier.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCascadeReconciliationJob_StartStop(t *testing.T) {
	called := make(chan struct{}, 1)
	finder := new(MockFinder)
	finder.On("GetAllAwaitingCascade", mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case called <- struct{}{}:
			default:
			}
		}).
		Return([]*order.Order{}, nil)

	job := jobs.NewCascadeReconciliationJob(finder, new(MockRetrier), "* * * * * *", quietLogger())
	require.NoError(t, job.Start())

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}

	job.Stop()
}

func TestCascadeReconciliationJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewCascadeReconciliationJob(new(MockFinder), new(MockRetrier), "every now and then", quietLogger())
	require.Error(t, job.Start())
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	finder := new(MockFinder)
	finder.On("GetAllAwaitingCascade", mock.Anything).Return([]*order.Order{}, nil).Maybe()

	manager := jobs.NewJobManager(finder, new(MockRetrier), jobs.DefaultCascadeSchedule, quietLogger())
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
