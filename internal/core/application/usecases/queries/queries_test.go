package queries_test

import (
	"testing"

	"installation/internal/core/application/usecases/queries"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actorAs(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrdersQuery{}.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderHistoryQuery{}.Validate(), queries.ErrGetOrderHistoryQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetTasksQuery{}.Validate(), queries.ErrGetTasksQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderActionsQuery{}.Validate(), queries.ErrGetOrderActionsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderQRQuery{}.Validate(), queries.ErrGetOrderQRQueryIsNotConstructed)
}

func TestNewGetOrderQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	q, err := queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
}

func TestNewGetOrdersQuery_Filters(t *testing.T) {
	branch, department := 3, 0
	status := order.InProgress

	_, err := queries.NewGetOrdersQuery(&branch, &department, nil)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetOrdersQuery(nil, nil, new(order.Status))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	q, err := queries.NewGetOrdersQuery(&branch, nil, &status)
	require.NoError(t, err)
	assert.Equal(t, 3, *q.BranchID())
	assert.Nil(t, q.DepartmentID())
	assert.Equal(t, order.InProgress, *q.Status())
}

func TestNewGetOrderQRQuery_Size(t *testing.T) {
	admin := actorAs(t, kernel.Admin)

	q, err := queries.NewGetOrderQRQuery(kernel.NewUUID(), admin, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultQRSize, q.Size())

	_, err = queries.NewGetOrderQRQuery(kernel.NewUUID(), admin, queries.MaxQRSize+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetOrderQRQuery(kernel.NewUUID(), kernel.Actor{}, 0)
	require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestNewGetTasksQuery(t *testing.T) {
	_, err := queries.NewGetTasksQuery(kernel.Actor{}, nil)
	require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)

	orderID := kernel.NewUUID()
	q, err := queries.NewGetTasksQuery(actorAs(t, kernel.Supervisor), &orderID)
	require.NoError(t, err)
	assert.True(t, q.OrderID().IsEqual(orderID))
}
