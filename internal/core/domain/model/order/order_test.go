package order_test

import (
	"testing"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() order.Details {
	return order.Details{
		City:        "Riyadh",
		Address:     "King Fahd Rd 12",
		QuotationID: "Q-77",
		InvoiceID:   "INV-9",
		CustomerID:  "C-1001",
	}
}

func newDraft(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.Scope{BranchID: 1, DepartmentID: 2},
		order.Normal,
		validDetails(),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func restoreIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), status, order.Scope{BranchID: 1, DepartmentID: 2}, order.Urgent,
		validDetails(), kernel.NewUUID(), time.Now(), nil, nil, 3,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start in Draft without token", func(t *testing.T) {
		o := newDraft(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Draft, o.Status())
		assert.Nil(t, o.QRToken())
		assert.Nil(t, o.ReturnedFrom())
		assert.Zero(t, o.Version())
		assert.Empty(t, o.Events())
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{},
			kernel.NewUUID(),
			order.Scope{BranchID: 0, DepartmentID: -1},
			order.PriorityUnknown,
			order.Details{},
			time.Now(),
		)

		require.Error(t, err)
		for _, fragment := range []string{"UUID", "branch id", "department id", "priority", "city", "address", "customer id"} {
			assert.Contains(t, err.Error(), fragment)
		}
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reject a live token outside PendingQR", func(t *testing.T) {
		token, _ := order.NewQRToken("tok")

		_, err := order.RestoreOrder(
			kernel.NewUUID(), order.InProgress, order.Scope{BranchID: 1, DepartmentID: 1}, order.Normal,
			validDetails(), kernel.NewUUID(), time.Now(), &token, nil, 0,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept a consumed token on a Closed order", func(t *testing.T) {
		token, _ := order.RestoreQRToken("tok", true)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), order.Closed, order.Scope{BranchID: 1, DepartmentID: 1}, order.Normal,
			validDetails(), kernel.NewUUID(), time.Now(), &token, nil, 7,
		)

		require.NoError(t, err)
		assert.Nil(t, o.LiveQRToken())
		assert.True(t, o.QRToken().IsConsumed())
		assert.Equal(t, 7, o.Version())
	})

	t.Run("should reject returnedFrom outside Returned", func(t *testing.T) {
		from := order.PendingSupervisor

		_, err := order.RestoreOrder(
			kernel.NewUUID(), order.Draft, order.Scope{BranchID: 1, DepartmentID: 1}, order.Normal,
			validDetails(), kernel.NewUUID(), time.Now(), nil, &from, 0,
		)

		require.Error(t, err)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), order.Unknown, order.Scope{BranchID: 1, DepartmentID: 1}, order.Normal,
			validDetails(), kernel.NewUUID(), time.Now(), nil, nil, 0,
		)

		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should follow a legal pair and record an event", func(t *testing.T) {
		o := newDraft(t)

		require.NoError(t, o.TransitionTo(order.PendingSalesManager, now))

		assert.Equal(t, order.PendingSalesManager, o.Status())
		events := o.Events()
		require.Len(t, events, 1)
		assert.Equal(t, order.Draft, events[0].From)
		assert.Equal(t, order.PendingSalesManager, events[0].To)
		assert.Equal(t, now, events[0].OccurredAt)
	})

	t.Run("self-loop save does not record an event", func(t *testing.T) {
		o := newDraft(t)

		require.NoError(t, o.TransitionTo(order.Draft, now))

		assert.Empty(t, o.Events())
	})

	t.Run("should reject an illegal pair without mutation", func(t *testing.T) {
		o := newDraft(t)

		err := o.TransitionTo(order.Completed, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.Events())
	})

	t.Run("returning remembers the stage and re-submission forgets it", func(t *testing.T) {
		o := restoreIn(t, order.PendingSupervisor)

		require.NoError(t, o.TransitionTo(order.Returned, now))
		require.NotNil(t, o.ReturnedFrom())
		assert.Equal(t, order.PendingSupervisor, *o.ReturnedFrom())

		require.NoError(t, o.TransitionTo(order.PendingSupervisor, now))
		assert.Nil(t, o.ReturnedFrom())
	})

	t.Run("leaving PendingQR by return revokes the token", func(t *testing.T) {
		o := restoreIn(t, order.PendingQR)
		token, _ := order.NewQRToken("tok-1")
		require.NoError(t, o.AttachQRToken(token))

		require.NoError(t, o.TransitionTo(order.Returned, now))

		assert.Nil(t, o.LiveQRToken())
		assert.True(t, o.QRToken().IsConsumed())
	})
}

func TestOrder_QRToken(t *testing.T) {
	t.Run("attach requires PendingQR", func(t *testing.T) {
		o := restoreIn(t, order.InProgress)
		token, _ := order.NewQRToken("tok")

		require.ErrorIs(t, o.AttachQRToken(token), errs.ErrInvalidTransition)
	})

	t.Run("consume is single use", func(t *testing.T) {
		o := restoreIn(t, order.PendingQR)
		token, _ := order.NewQRToken("tok")
		require.NoError(t, o.AttachQRToken(token))

		require.NoError(t, o.ConsumeQRToken())
		require.Error(t, o.ConsumeQRToken())
	})

	t.Run("accessors return copies", func(t *testing.T) {
		o := restoreIn(t, order.PendingQR)
		token, _ := order.NewQRToken("tok")
		require.NoError(t, o.AttachQRToken(token))

		copied := o.QRToken()
		require.NoError(t, o.ConsumeQRToken())

		assert.False(t, copied.IsConsumed())
	})
}

func TestOrder_Clone(t *testing.T) {
	o := restoreIn(t, order.InProgress)

	clone := o.Clone()
	require.NoError(t, clone.TransitionTo(order.PendingQR, time.Now()))

	assert.Equal(t, order.InProgress, o.Status())
	assert.Empty(t, o.Events())
	assert.Equal(t, order.PendingQR, clone.Status())
	assert.True(t, o.IsEqual(clone))
}

func TestQRPayload(t *testing.T) {
	id := kernel.NewUUID()
	token, _ := order.NewQRToken("abc-123")

	t.Run("round trip", func(t *testing.T) {
		payload := order.EncodeQRPayload(id, token)

		parsedID, parsedToken, err := order.ParseQRPayload(payload)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsedID))
		assert.Equal(t, "abc-123", parsedToken)
	})

	t.Run("rejects raw tokens and bad ids", func(t *testing.T) {
		for _, payload := range []string{"abc-123", "42:abc", id.String() + ":"} {
			_, _, err := order.ParseQRPayload(payload)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, payload)
		}
	})

	t.Run("token equality", func(t *testing.T) {
		assert.True(t, token.Equals("abc-123"))
		assert.False(t, token.Equals("abc-124"))
		assert.False(t, order.QRToken{}.Equals(""))
	})
}
