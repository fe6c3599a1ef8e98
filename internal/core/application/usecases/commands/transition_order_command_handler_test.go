package commands_test

import (
	"errors"
	"testing"

	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_Validation(t *testing.T) {
	cmd, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.PendingSalesManager, actorAs(t, kernel.SalesRepresentative), "go")
	require.NoError(t, err)
	assert.Equal(t, order.PendingSalesManager, cmd.To())
	assert.Equal(t, "go", cmd.Note())

	_, err = commands.NewTransitionOrderCommand(kernel.UUID{}, order.Unknown, kernel.Actor{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)

	assert.ErrorIs(t, commands.TransitionOrderCommand{}.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	current := orderIn(t, order.PendingSalesManager)
	manager := actorAs(t, kernel.SalesManager)
	cmd, err := commands.NewTransitionOrderCommand(current.ID(), order.PendingSupervisor, manager, "approved")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockOrderUoW)
	metrics := new(MockWorkflowMetrics)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.PendingSupervisor && o.Version() == current.Version()
		})).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", ctx, mock.MatchedBy(func(entries []history.Entry) bool {
			return len(entries) == 1 &&
				entries[0].Action() == "Approve" &&
				entries[0].FromStatus() == "PendingSalesManager" &&
				entries[0].ToStatus() == "PendingSupervisor" &&
				entries[0].UserID().IsEqual(manager.ID()) &&
				entries[0].Notes() == "approved"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	metrics.On("TransitionApplied", "PendingSalesManager", "PendingSupervisor", "Approve").Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, newOrderWorkflow(t), metrics)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PendingSalesManager, current.Status(), "loaded snapshot must not be mutated")
	repo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_RejectionWritesNothing(t *testing.T) {
	testCases := []struct {
		name   string
		from   order.Status
		to     order.Status
		role   kernel.Role
		target error
		kind   string
	}{
		{
			name:   "illegal pair",
			from:   order.Draft,
			to:     order.InProgress,
			role:   kernel.Admin,
			target: errs.ErrInvalidTransition,
			kind:   commands.RejectedInvalidTransition,
		},
		{
			name:   "role without authority",
			from:   order.PendingSalesManager,
			to:     order.PendingSupervisor,
			role:   kernel.Technician,
			target: errs.ErrForbidden,
			kind:   commands.RejectedForbidden,
		},
		{
			name:   "closing without QR",
			from:   order.PendingQR,
			to:     order.Closed,
			role:   kernel.Supervisor,
			target: errs.ErrForbidden,
			kind:   commands.RejectedForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			current := orderIn(t, tc.from)
			cmd, err := commands.NewTransitionOrderCommand(current.ID(), tc.to, actorAs(t, tc.role), "")
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			metrics := new(MockWorkflowMetrics)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			metrics.On("TransitionRejected", tc.kind).Once()

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewTransitionOrderCommandHandler(factory, newOrderWorkflow(t), metrics)
			err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, tc.target)

			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			uow.AssertExpectations(t)
			metrics.AssertExpectations(t)
		})
	}
}

func TestTransitionOrderCommandHandler_Handle_EnteringPendingQRIssuesToken(t *testing.T) {
	ctx := t.Context()
	current := orderIn(t, order.InProgress)
	cmd, err := commands.NewTransitionOrderCommand(current.ID(), order.PendingQR, actorAs(t, kernel.Supervisor), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			live := o.LiveQRToken()
			return o.Status() == order.PendingQR && live != nil && live.Value() == testToken
		})).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", ctx, entriesWith("RequestQR")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, newOrderWorkflow(t), nil)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(id, order.Cancelled, actorAs(t, kernel.Admin), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	metrics := new(MockWorkflowMetrics)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	metrics.On("TransitionRejected", commands.RejectedNotFound).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, newOrderWorkflow(t), metrics)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	metrics.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	current := orderIn(t, order.Draft)
	cmd, err := commands.NewTransitionOrderCommand(current.ID(), order.PendingSalesManager, actorAs(t, kernel.SalesRepresentative), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	metrics := new(MockWorkflowMetrics)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		repo.On("Update", ctx, orderWithStatus(order.PendingSalesManager)).
			Return(errs.NewVersionIsInvalidError("order", errors.New("stale"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	metrics.On("TransitionRejected", commands.RejectedConflict).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, newOrderWorkflow(t), metrics)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "HistoryRepository")
	metrics.AssertExpectations(t)
}
