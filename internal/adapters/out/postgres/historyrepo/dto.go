// Package historyrepo stores the append-only order audit trail.
package historyrepo

import (
	"time"

	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO is one row of order_history. Rows are only ever inserted.
type EntryDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Action     string    `gorm:"type:varchar(64);not null"`
	FromStatus *string   `gorm:"type:varchar(32)"`
	ToStatus   *string   `gorm:"type:varchar(32)"`
	UserID     uuid.UUID `gorm:"type:uuid;not null"`
	UserRole   string    `gorm:"type:varchar(32);not null"`
	Timestamp  time.Time `gorm:"not null"`
	Notes      string
}

func (EntryDTO) TableName() string {
	return "order_history"
}

func fromDomain(e history.Entry) EntryDTO {
	return EntryDTO{
		OrderID:    e.OrderID().Bytes(),
		Action:     string(e.Action()),
		FromStatus: optional(e.FromStatus()),
		ToStatus:   optional(e.ToStatus()),
		UserID:     e.UserID().Bytes(),
		UserRole:   e.UserRole().String(),
		Timestamp:  e.Timestamp(),
		Notes:      e.Notes(),
	}
}

func toDomain(dto EntryDTO) (history.Entry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return history.Entry{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return history.Entry{}, err
	}

	return history.RestoreEntry(
		orderID,
		history.Action(dto.Action),
		deref(dto.FromStatus),
		deref(dto.ToStatus),
		userID,
		kernel.Role(dto.UserRole),
		dto.Timestamp,
		dto.Notes,
	)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
