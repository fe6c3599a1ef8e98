package queries

import (
	"errors"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/errs"
	"installation/internal/pkg/guard"
)

const (
	DefaultQRSize = 256
	MinQRSize     = 128
	MaxQRSize     = 1024
)

var (
	ErrGetOrderQRQueryIsNotConstructed = errors.New(
		"GetOrderQRQuery must be created via NewGetOrderQRQuery constructor",
	)
)

// GetOrderQRQuery renders the live QR code of an order awaiting confirmation.
// A size of 0 selects DefaultQRSize.
type GetOrderQRQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	size    int

	guard guard.ConstructorGuard
}

func NewGetOrderQRQuery(orderID kernel.UUID, actor kernel.Actor, size int) (GetOrderQRQuery, error) {
	q := GetOrderQRQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		q.setSize(size),
	); err != nil {
		return GetOrderQRQuery{}, err
	}
	q.orderID = orderID
	q.actor = actor

	return q, nil
}

func (q GetOrderQRQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQRQueryIsNotConstructed)
}

func (q GetOrderQRQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQRQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderQRQuery) Size() int {
	return q.size
}

func (q *GetOrderQRQuery) setSize(size int) error {
	if size == 0 {
		size = DefaultQRSize
	}
	if size < MinQRSize || size > MaxQRSize {
		return errs.NewValueIsOutOfRangeError("qr size", size, MinQRSize, MaxQRSize)
	}
	q.size = size
	return nil
}
