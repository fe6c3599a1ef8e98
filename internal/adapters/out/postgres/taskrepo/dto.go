// Package taskrepo persists technician tasks with GORM.
package taskrepo

import (
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting tasks.
type TaskDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	TechnicianID uuid.UUID `gorm:"type:uuid;index;not null"`
	Status       string    `gorm:"type:varchar(32);index;not null"`
	Notes        string
	HeldFrom     *string `gorm:"type:varchar(32)"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(t *task.Task) TaskDTO {
	dto := TaskDTO{
		ID:           t.ID().Bytes(),
		OrderID:      t.OrderID().Bytes(),
		TechnicianID: t.TechnicianID().Bytes(),
		Status:       t.Status().String(),
		Notes:        t.Notes(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
	if held := t.HeldFrom(); held != nil {
		s := held.String()
		dto.HeldFrom = &s
	}
	return dto
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	technicianID, err := kernel.UUIDFromBytes(dto.TechnicianID[:])
	if err != nil {
		return nil, err
	}
	status, err := task.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var heldFrom *task.Status
	if dto.HeldFrom != nil {
		held, heldErr := task.ParseStatus(*dto.HeldFrom)
		if heldErr != nil {
			return nil, heldErr
		}
		heldFrom = &held
	}

	return task.RestoreTask(id, orderID, technicianID, status, dto.Notes, heldFrom, dto.CreatedAt, dto.UpdatedAt)
}
