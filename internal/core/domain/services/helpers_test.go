package services_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 4, 14, 9, 30, 0, 0, time.UTC)

func fixedNow() time.Time {
	return fixedTime
}

type sequenceTokens struct {
	issued int
}

func (s *sequenceTokens) Generate() (string, error) {
	s.issued++
	return fmt.Sprintf("token-%d", s.issued), nil
}

type failingTokens struct{}

func (failingTokens) Generate() (string, error) {
	return "", errors.New("entropy exhausted")
}

func actorAs(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newOrderWorkflow(t *testing.T) (*services.OrderWorkflow, *sequenceTokens) {
	t.Helper()
	tokens := &sequenceTokens{}
	w, err := services.NewOrderWorkflow(tokens, fixedNow)
	require.NoError(t, err)
	return w, tokens
}

func details() order.Details {
	return order.Details{City: "Jeddah", Address: "Tahlia St 5", CustomerID: "C-7"}
}

type orderOption func(*orderState)

type orderState struct {
	token        *order.QRToken
	returnedFrom *order.Status
}

func withToken(value string, consumed bool) orderOption {
	return func(s *orderState) {
		tok, _ := order.RestoreQRToken(value, consumed)
		s.token = &tok
	}
}

func withReturnedFrom(from order.Status) orderOption {
	return func(s *orderState) {
		s.returnedFrom = &from
	}
}

func orderIn(t *testing.T, status order.Status, opts ...orderOption) *order.Order {
	t.Helper()
	var st orderState
	for _, opt := range opts {
		opt(&st)
	}
	o, err := order.RestoreOrder(
		kernel.NewUUID(), status, order.Scope{BranchID: 3, DepartmentID: 8}, order.Normal,
		details(), kernel.NewUUID(), fixedTime.Add(-time.Hour), st.token, st.returnedFrom, 1,
	)
	require.NoError(t, err)
	return o
}
