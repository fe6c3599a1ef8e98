package queries

import (
	"errors"

	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"
	"installation/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists orders, newest first. Each filter is optional.
//
// Example:
//
//	branch := 3
//	query, err := NewGetOrdersQuery(&branch, nil, nil)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	branchID     *int
	departmentID *int
	status       *order.Status

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(branchID, departmentID *int, status *order.Status) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setBranchID(branchID),
		q.setDepartmentID(departmentID),
		q.setStatus(status),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) BranchID() *int {
	return q.branchID
}

func (q GetOrdersQuery) DepartmentID() *int {
	return q.departmentID
}

func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetOrdersQuery) setBranchID(branchID *int) error {
	if branchID != nil && *branchID <= 0 {
		return errs.NewValueIsOutOfRangeError("branch id", *branchID, 1, "unbounded")
	}
	q.branchID = branchID
	return nil
}

func (q *GetOrdersQuery) setDepartmentID(departmentID *int) error {
	if departmentID != nil && *departmentID <= 0 {
		return errs.NewValueIsOutOfRangeError("department id", *departmentID, 1, "unbounded")
	}
	q.departmentID = departmentID
	return nil
}

func (q *GetOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	q.status = status
	return nil
}
