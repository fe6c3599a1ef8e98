package commands

import (
	"errors"
	"strings"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"
	"installation/internal/pkg/guard"
)

var (
	ErrVerifyQRCommandIsNotConstructed = errors.New(
		"VerifyQRCommand must be created via NewVerifyQRCommand constructor",
	)
)

// VerifyQRCommand presents the token printed on an order's QR code to close the order.
type VerifyQRCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	token   string
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewVerifyQRCommand(orderID kernel.UUID, token string, actor kernel.Actor) (VerifyQRCommand, error) {
	cmd := VerifyQRCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setToken(token),
		cmd.setActor(actor),
	); err != nil {
		return VerifyQRCommand{}, err
	}

	return cmd, nil
}

// NewVerifyQRCommandFromPayload builds the command from the raw "<orderId>:<token>"
// text read by a scanner.
func NewVerifyQRCommandFromPayload(payload string, actor kernel.Actor) (VerifyQRCommand, error) {
	orderID, token, err := order.ParseQRPayload(payload)
	if err != nil {
		return VerifyQRCommand{}, err
	}
	return NewVerifyQRCommand(orderID, token, actor)
}

func (c VerifyQRCommand) Validate() error {
	return c.guard.Validate(ErrVerifyQRCommandIsNotConstructed)
}

func (c VerifyQRCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c VerifyQRCommand) Token() string {
	return c.token
}

func (c VerifyQRCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *VerifyQRCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyQRCommand) setToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.token = token
	return nil
}

func (c *VerifyQRCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
