package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetTasksQueryHandler struct {
	db *gorm.DB
}

func NewGetTasksQueryHandler(db *gorm.DB) GetTasksQueryHandler {
	return GetTasksQueryHandler{db: db}
}

// Handle returns tasks newest first.
func (h GetTasksQueryHandler) Handle(ctx context.Context, query GetTasksQuery) ([]TaskView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if actor := query.Actor(); actor.Role().Effective() == kernel.Technician {
		conditions = append(conditions, "technician_id = ?")
		args = append(args, actor.ID().Bytes())
	}
	if orderID := query.OrderID(); orderID != nil {
		conditions = append(conditions, "order_id = ?")
		args = append(args, orderID.Bytes())
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	tasks := make([]TaskView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			technician_id,
			status,
			notes,
			created_at,
			updated_at
		FROM tasks
		`+where+`
		ORDER BY created_at DESC, id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view                      TaskView
			id, orderID, technicianID uuid.UUID
			status                    string
			notes                     sql.NullString
			createdAt                 time.Time
			updatedAt                 sql.NullTime
		)

		err = rows.Scan(&id, &orderID, &technicianID, &status, &notes, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if view.TechnicianID, err = kernel.UUIDFromBytes(technicianID[:]); err != nil {
			return nil, err
		}
		if view.Status, err = task.ParseStatus(status); err != nil {
			return nil, err
		}
		view.Notes = notes.String
		view.CreatedAt = createdAt.UTC()
		if updatedAt.Valid {
			updated := updatedAt.Time.UTC()
			view.UpdatedAt = &updated
		}
		tasks = append(tasks, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
