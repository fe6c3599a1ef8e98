package queries

import (
	"context"
	"database/sql"
	"time"

	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads order_history rows by insertion order.
// An unknown order is reported as not found rather than as an empty trail.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	entries := make([]HistoryEntryView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			action,
			from_status,
			to_status,
			user_id,
			user_role,
			timestamp,
			notes
		FROM order_history
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry        HistoryEntryView
			action, role string
			fromStatus   sql.NullString
			toStatus     sql.NullString
			userID       uuid.UUID
			timestamp    time.Time
			notes        sql.NullString
		)

		err = rows.Scan(&action, &fromStatus, &toStatus, &userID, &role, &timestamp, &notes)
		if err != nil {
			return nil, err
		}

		entry.UserID, err = kernel.UUIDFromBytes(userID[:])
		if err != nil {
			return nil, err
		}
		entry.Action = history.Action(action)
		entry.FromStatus = fromStatus.String
		entry.ToStatus = toStatus.String
		entry.UserRole = kernel.Role(role)
		entry.Timestamp = timestamp.UTC()
		entry.Notes = notes.String
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
