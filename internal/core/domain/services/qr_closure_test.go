package services_test

import (
	"strings"
	"testing"

	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"
	"installation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClosure(t *testing.T) *services.QRClosure {
	t.Helper()
	q, err := services.NewQRClosure(&sequenceTokens{}, fixedNow)
	require.NoError(t, err)
	return q
}

func TestUUIDTokenGenerator(t *testing.T) {
	g := services.UUIDTokenGenerator{}

	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	_, err = uuid.Parse(a)
	assert.NoError(t, err)
}

func TestQRClosure_IssueToken(t *testing.T) {
	q := newClosure(t)

	t.Run("should supersede the previous token", func(t *testing.T) {
		o := orderIn(t, order.PendingQR, withToken("old", false))

		next, err := q.IssueToken(o)

		require.NoError(t, err)
		assert.Equal(t, "token-1", next.LiveQRToken().Value())
		assert.Equal(t, "old", o.LiveQRToken().Value())
	})

	t.Run("should require PendingQR", func(t *testing.T) {
		_, err := q.IssueToken(orderIn(t, order.InProgress))

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestQRClosure_Verify(t *testing.T) {
	q := newClosure(t)
	tech := actorAs(t, kernel.Technician)

	t.Run("should close and consume on match", func(t *testing.T) {
		o := orderIn(t, order.PendingQR, withToken("secret", false))

		result, err := q.Verify(o, "secret", tech)

		require.NoError(t, err)
		assert.Equal(t, order.Closed, result.Order.Status())
		assert.Nil(t, result.Order.LiveQRToken())
		require.NotNil(t, result.Order.QRToken())
		assert.True(t, result.Order.QRToken().IsConsumed())
		assert.Equal(t, history.QRVerified, result.History.Action())
		assert.Equal(t, "PendingQR", result.History.FromStatus())
		assert.Equal(t, "Closed", result.History.ToStatus())
	})

	t.Run("should reject a re-presented token as mismatch", func(t *testing.T) {
		o := orderIn(t, order.PendingQR, withToken("secret", false))
		result, err := q.Verify(o, "secret", tech)
		require.NoError(t, err)

		_, err = q.Verify(result.Order, "secret", tech)

		assert.ErrorIs(t, err, errs.ErrTokenMismatch)
	})

	t.Run("should reject a wrong token and keep the order", func(t *testing.T) {
		o := orderIn(t, order.PendingQR, withToken("secret", false))

		_, err := q.Verify(o, "guess", tech)

		assert.ErrorIs(t, err, errs.ErrTokenMismatch)
		assert.Equal(t, order.PendingQR, o.Status())
		assert.NotNil(t, o.LiveQRToken())
	})

	t.Run("should reject verification outside PendingQR", func(t *testing.T) {
		_, err := q.Verify(orderIn(t, order.InProgress), "anything", tech)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject a revoked token as mismatch", func(t *testing.T) {
		o := orderIn(t, order.Returned, withToken("secret", true), withReturnedFrom(order.PendingQR))

		_, err := q.Verify(o, "secret", tech)

		assert.ErrorIs(t, err, errs.ErrTokenMismatch)
	})

	t.Run("should forbid customers", func(t *testing.T) {
		o := orderIn(t, order.PendingQR, withToken("secret", false))

		_, err := q.Verify(o, "secret", actorAs(t, kernel.Customer))

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestQRClosure_AdminOverrideClose(t *testing.T) {
	q := newClosure(t)

	t.Run("should close without a token and mark the entry", func(t *testing.T) {
		o := orderIn(t, order.PendingQR, withToken("secret", false))

		result, err := q.AdminOverrideClose(o, actorAs(t, kernel.Admin), "")

		require.NoError(t, err)
		assert.Equal(t, order.Closed, result.Order.Status())
		assert.Nil(t, result.Order.LiveQRToken())
		assert.Equal(t, history.AdminOverrideClose, result.History.Action())
		assert.True(t, strings.HasPrefix(result.History.Notes(), services.OverrideNotePrefix))
		assert.NotEqual(t, history.QRVerified, result.History.Action())
	})

	t.Run("should never be reachable by other roles", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.Supervisor, kernel.SalesManager, kernel.Technician, kernel.SalesRepresentative, kernel.DepartmentManager, kernel.Customer} {
			o := orderIn(t, order.PendingQR, withToken("secret", false))

			_, err := q.AdminOverrideClose(o, actorAs(t, role), "")

			assert.ErrorIs(t, err, errs.ErrForbidden, role.String())
		}
	})

	t.Run("should require PendingQR", func(t *testing.T) {
		_, err := q.AdminOverrideClose(orderIn(t, order.InProgress), actorAs(t, kernel.Admin), "")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestQRClosure_ReissueToken(t *testing.T) {
	q := newClosure(t)

	t.Run("should replace the live token for admin", func(t *testing.T) {
		o := orderIn(t, order.PendingQR, withToken("lost", false))

		result, err := q.ReissueToken(o, actorAs(t, kernel.Admin), "")

		require.NoError(t, err)
		assert.Equal(t, order.PendingQR, result.Order.Status())
		assert.NotEqual(t, "lost", result.Order.LiveQRToken().Value())
		assert.Equal(t, history.QRReissued, result.History.Action())

		_, err = q.Verify(result.Order, "lost", actorAs(t, kernel.Technician))
		assert.ErrorIs(t, err, errs.ErrTokenMismatch)
	})

	t.Run("should forbid supervisors", func(t *testing.T) {
		_, err := q.ReissueToken(orderIn(t, order.PendingQR, withToken("lost", false)), actorAs(t, kernel.Supervisor), "")

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
