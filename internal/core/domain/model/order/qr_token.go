package order

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/errs"
)

// QRToken is the single-use proof-of-presence token issued when an order enters
// PendingQR. A consumed token is kept for audit but never matches again.
type QRToken struct {
	value    string
	consumed bool
}

func NewQRToken(value string) (QRToken, error) {
	if strings.TrimSpace(value) == "" {
		return QRToken{}, errs.NewValueIsRequiredError("qr token")
	}
	return QRToken{value: value}, nil
}

// RestoreQRToken rebuilds a token read from persistence.
func RestoreQRToken(value string, consumed bool) (QRToken, error) {
	token, err := NewQRToken(value)
	if err != nil {
		return QRToken{}, err
	}
	token.consumed = consumed
	return token, nil
}

func (t QRToken) Value() string {
	return t.value
}

func (t QRToken) IsConsumed() bool {
	return t.consumed
}

// Equals compares the raw value in constant time, regardless of consumption.
func (t QRToken) Equals(presented string) bool {
	return t.value != "" && subtle.ConstantTimeCompare([]byte(t.value), []byte(presented)) == 1
}

func (t QRToken) consume() QRToken {
	t.consumed = true
	return t
}

// EncodeQRPayload renders the text embedded in the printed QR code: "<orderId>:<token>".
func EncodeQRPayload(orderID kernel.UUID, token QRToken) string {
	return orderID.String() + ":" + token.value
}

// ParseQRPayload splits a scanned "<orderId>:<token>" payload.
func ParseQRPayload(payload string) (kernel.UUID, string, error) {
	idPart, token, found := strings.Cut(strings.TrimSpace(payload), ":")
	if !found || token == "" {
		return kernel.UUID{}, "", errs.NewValueIsInvalidErrorWithCause(
			"qr payload",
			fmt.Errorf("expected <orderId>:<token>, got %q", payload),
		)
	}
	orderID, err := kernel.UUIDFromString(idPart)
	if err != nil {
		return kernel.UUID{}, "", errs.NewValueIsInvalidErrorWithCause("qr payload", err)
	}
	return orderID, token, nil
}
