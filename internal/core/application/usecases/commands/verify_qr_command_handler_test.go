package commands_test

import (
	"strconv"
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

func TestNewVerifyQRCommandFromPayload(t *testing.T) {
	id := kernel.NewUUID()
	actor := actorAs(t, kernel.Technician)

	cmd, err := commands.NewVerifyQRCommandFromPayload(id.String()+":"+testToken, actor)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, testToken, cmd.Token())

	_, err = commands.NewVerifyQRCommandFromPayload("garbage", actor)
	require.Error(t, err)

	_, err = commands.NewVerifyQRCommand(id, "  ", actor)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestVerifyQRCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	current := orderIn(t, order.PendingQR)
	cmd, err := commands.NewVerifyQRCommand(current.ID(), testToken, actorAs(t, kernel.Technician))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			token := o.QRToken()
			return o.Status() == order.Closed && token != nil && token.IsConsumed()
		})).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", ctx, entriesWith(history.QRVerified)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyQRCommandHandler(factory, newOrderWorkflow(t).Closure(), nil)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
}

func TestVerifyQRCommandHandler_Handle_WrongTokenLeavesOrderPending(t *testing.T) {
	ctx := t.Context()
	current := orderIn(t, order.PendingQR)
	cmd, err := commands.NewVerifyQRCommand(current.ID(), "not-the-token", actorAs(t, kernel.Technician))
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
	metrics.On("TransitionRejected", commands.RejectedTokenMismatch).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyQRCommandHandler(factory, newOrderWorkflow(t).Closure(), metrics)
	err = h.Handle(ctx, cmd)

	var mismatch *errs.TokenMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, current.ID().String(), mismatch.OrderID)
	assert.Equal(t, order.PendingQR, current.Status())
	assert.NotNil(t, current.LiveQRToken())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	metrics.AssertExpectations(t)
}

func TestAdminOverrideCloseCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name   string
		role   kernel.Role
		target error
	}{
		{name: "admin closes", role: kernel.Admin},
		{name: "super admin closes", role: kernel.SuperAdmin},
		{name: "supervisor is refused", role: kernel.Supervisor, target: errs.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			current := orderIn(t, order.PendingQR)
			cmd, err := commands.NewAdminOverrideCloseCommand(current.ID(), actorAs(t, tc.role), "customer lost the sheet")
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			historyRepo := new(MockHistoryRepository)
			uow := new(MockOrderUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tc.target == nil {
				repo.On("Update", ctx, orderWithStatus(order.Closed)).Return(nil).Once()
				uow.On("HistoryRepository").Return(historyRepo).Once()
				historyRepo.On("Append", ctx, mock.MatchedBy(func(entries []history.Entry) bool {
					return len(entries) == 1 &&
						entries[0].Action() == history.AdminOverrideClose &&
						entries[0].Notes() == "administrative override: customer lost the sheet"
				})).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewAdminOverrideCloseCommandHandler(factory, newOrderWorkflow(t).Closure(), nil)
			err = h.Handle(ctx, cmd)
			if tc.target != nil {
				require.ErrorIs(t, err, tc.target)
				uow.AssertNotCalled(t, "Commit", mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
			historyRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

// rotatingTokens hands out a new value on every call.
type rotatingTokens struct{ n int }

func (r *rotatingTokens) Generate() (string, error) {
	r.n++
	return "reissued-" + strconv.Itoa(r.n), nil
}

func TestReissueQRCommandHandler_Handle_SupersedesToken(t *testing.T) {
	ctx := t.Context()
	current := orderIn(t, order.PendingQR)
	cmd, err := commands.NewReissueQRCommand(current.ID(), actorAs(t, kernel.Admin), "reprint")
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
			return o.Status() == order.PendingQR && live != nil && live.Value() == "reissued-1"
		})).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", ctx, entriesWith(history.QRReissued)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	closure, err := newClosure(&rotatingTokens{})
	require.NoError(t, err)

	h := commands.NewReissueQRCommandHandler(factory, closure, nil)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
}

func TestReissueQRCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	current := orderIn(t, order.PendingQR)
	cmd, err := commands.NewReissueQRCommand(current.ID(), actorAs(t, kernel.SalesManager), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReissueQRCommandHandler(factory, newOrderWorkflow(t).Closure(), nil)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
