// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Statuses and priorities are stored as their wire literals so the table stays readable
// by the backend and by ad-hoc SQL.
package orderrepo

import (
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status       string    `gorm:"type:varchar(32);index;not null"`
	BranchID     int       `gorm:"index;not null"`
	DepartmentID int       `gorm:"index;not null"`
	Priority     string    `gorm:"type:varchar(16);not null"`

	City          string `gorm:"not null"`
	Address       string `gorm:"not null"`
	ScheduledDate *time.Time
	QuotationID   string
	InvoiceID     string
	CustomerID    string `gorm:"not null"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"index"`

	QRToken         *string `gorm:"type:varchar(64)"`
	QRTokenConsumed bool
	ReturnedFrom    *string `gorm:"type:varchar(32)"`

	Version int `gorm:"not null;default:0"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		Status:        o.Status().String(),
		BranchID:      o.Scope().BranchID,
		DepartmentID:  o.Scope().DepartmentID,
		Priority:      o.Priority().String(),
		City:          d.City,
		Address:       d.Address,
		ScheduledDate: d.ScheduledDate,
		QuotationID:   d.QuotationID,
		InvoiceID:     d.InvoiceID,
		CustomerID:    d.CustomerID,
		CreatedBy:     o.CreatedBy().Bytes(),
		CreatedAt:     o.CreatedAt(),
		Version:       o.Version(),
	}

	if token := o.QRToken(); token != nil {
		value := token.Value()
		dto.QRToken = &value
		dto.QRTokenConsumed = token.IsConsumed()
	}
	if from := o.ReturnedFrom(); from != nil {
		s := from.String()
		dto.ReturnedFrom = &s
	}
	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := order.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	var token *order.QRToken
	if dto.QRToken != nil {
		t, tokenErr := order.RestoreQRToken(*dto.QRToken, dto.QRTokenConsumed)
		if tokenErr != nil {
			return nil, tokenErr
		}
		token = &t
	}

	var returnedFrom *order.Status
	if dto.ReturnedFrom != nil {
		from, fromErr := order.ParseStatus(*dto.ReturnedFrom)
		if fromErr != nil {
			return nil, fromErr
		}
		returnedFrom = &from
	}

	return order.RestoreOrder(
		id,
		status,
		order.Scope{BranchID: dto.BranchID, DepartmentID: dto.DepartmentID},
		priority,
		order.Details{
			City:          dto.City,
			Address:       dto.Address,
			ScheduledDate: dto.ScheduledDate,
			QuotationID:   dto.QuotationID,
			InvoiceID:     dto.InvoiceID,
			CustomerID:    dto.CustomerID,
		},
		createdBy,
		dto.CreatedAt,
		token,
		returnedFrom,
		dto.Version,
	)
}
