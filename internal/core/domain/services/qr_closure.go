package services

import (
	"errors"
	"time"

	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"

	"github.com/google/uuid"
)

// OverrideNotePrefix starts the note of every administrative override close, so the
// audit trail tells it apart from a QR-verified closure even without the action name.
const OverrideNotePrefix = "administrative override"

// TokenGenerator produces opaque single-use QR token values.
type TokenGenerator interface {
	Generate() (string, error)
}

// UUIDTokenGenerator issues random (version 4) UUID strings as tokens.
type UUIDTokenGenerator struct{}

func (UUIDTokenGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// QRClosure gates PendingQR -> Closed behind a presented token, with an Admin-only
// override for lost tokens.
type QRClosure struct {
	tokens     TokenGenerator
	capability RoleCapability
	now        func() time.Time
}

func NewQRClosure(tokens TokenGenerator, now func() time.Time) (*QRClosure, error) {
	if tokens == nil {
		return nil, errs.NewValueIsRequiredError("tokens")
	}
	if now == nil {
		return nil, errs.NewValueIsRequiredError("now")
	}
	return &QRClosure{tokens: tokens, capability: NewRoleCapability(), now: now}, nil
}

// IssueToken returns a snapshot of o carrying a fresh token. o must be in PendingQR;
// any previous token is superseded.
func (q *QRClosure) IssueToken(o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	next := o.Clone()
	if err := q.issueOn(next); err != nil {
		return nil, err
	}
	return next, nil
}

// ReissueToken replaces a lost token. Only Admin may do this.
func (q *QRClosure) ReissueToken(o *order.Order, actor kernel.Actor, note string) (TransitionResult, error) {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return TransitionResult{}, err
	}
	if o.Status() != order.PendingQR {
		return TransitionResult{}, errs.NewInvalidTransitionError("order", o.Status().String(), order.PendingQR.String())
	}
	if !q.capability.CanPerform(actor.Role(), ActionReissueQR, o) {
		return TransitionResult{}, errs.NewForbiddenError(actor.Role().String(), string(ActionReissueQR))
	}

	next, err := q.IssueToken(o)
	if err != nil {
		return TransitionResult{}, err
	}
	entry, err := history.NewEntry(o.ID(), history.QRReissued, "", "", actor, q.now(), note)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Order: next, History: entry}, nil
}

// Verify closes o when presented equals its live token.
//
// Checks run in this order:
//   - presented equals an already consumed or revoked token: TokenMismatch
//   - o is not in PendingQR: InvalidTransition
//   - actor's role may not verify: Forbidden
//   - no live token or presented differs: TokenMismatch
//
// On success the token is consumed and the order moves to Closed.
func (q *QRClosure) Verify(o *order.Order, presented string, actor kernel.Actor) (TransitionResult, error) {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return TransitionResult{}, err
	}
	orderID := o.ID().String()

	if token := o.QRToken(); token != nil && token.IsConsumed() && token.Equals(presented) {
		return TransitionResult{}, errs.NewTokenMismatchError(orderID, "token already used")
	}
	if o.Status() != order.PendingQR {
		return TransitionResult{}, errs.NewInvalidTransitionError("order", o.Status().String(), order.Closed.String())
	}
	if !q.capability.CanPerform(actor.Role(), ActionVerifyQR, o) {
		return TransitionResult{}, errs.NewForbiddenError(actor.Role().String(), string(ActionVerifyQR))
	}
	live := o.LiveQRToken()
	if live == nil {
		return TransitionResult{}, errs.NewTokenMismatchError(orderID, "no token issued")
	}
	if !live.Equals(presented) {
		return TransitionResult{}, errs.NewTokenMismatchError(orderID, "token does not match")
	}

	return q.close(o, actor, history.QRVerified, "")
}

// AdminOverrideClose closes o without a token. Only Admin may do this, only from
// PendingQR; the live token is revoked.
func (q *QRClosure) AdminOverrideClose(o *order.Order, actor kernel.Actor, note string) (TransitionResult, error) {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return TransitionResult{}, err
	}
	if !actor.Role().IsAdmin() {
		return TransitionResult{}, errs.NewForbiddenErrorWithReason(
			actor.Role().String(), string(ActionOverrideClose), "administrative override is Admin only",
		)
	}
	if o.Status() != order.PendingQR {
		return TransitionResult{}, errs.NewInvalidTransitionError("order", o.Status().String(), order.Closed.String())
	}

	overrideNote := OverrideNotePrefix
	if note != "" {
		overrideNote += ": " + note
	}
	return q.close(o, actor, history.AdminOverrideClose, overrideNote)
}

func (q *QRClosure) close(o *order.Order, actor kernel.Actor, action history.Action, note string) (TransitionResult, error) {
	at := q.now()
	next := o.Clone()
	if next.LiveQRToken() != nil {
		if err := next.ConsumeQRToken(); err != nil {
			return TransitionResult{}, err
		}
	}
	if err := next.TransitionTo(order.Closed, at); err != nil {
		return TransitionResult{}, err
	}

	entry, err := history.NewEntry(o.ID(), action, o.Status().String(), order.Closed.String(), actor, at, note)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Order: next, History: entry}, nil
}

func (q *QRClosure) issueOn(o *order.Order) error {
	value, err := q.tokens.Generate()
	if err != nil {
		return err
	}
	token, err := order.NewQRToken(value)
	if err != nil {
		return err
	}
	return o.AttachQRToken(token)
}
