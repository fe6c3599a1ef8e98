package queries

import (
	"database/sql"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderViewColumns must stay in step with scanOrderView.
const orderViewColumns = `
	id,
	status,
	branch_id,
	department_id,
	priority,
	city,
	address,
	scheduled_date,
	quotation_id,
	invoice_id,
	customer_id,
	created_by,
	created_at,
	returned_from,
	(qr_token IS NOT NULL AND NOT qr_token_consumed) AS has_live_qr_token,
	version`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view          OrderView
		id, createdBy uuid.UUID
		status        string
		priority      string
		scheduledDate sql.NullTime
		returnedFrom  sql.NullString
		createdAt     time.Time
	)

	err := rows.Scan(
		&id,
		&status,
		&view.BranchID,
		&view.DepartmentID,
		&priority,
		&view.City,
		&view.Address,
		&scheduledDate,
		&view.QuotationID,
		&view.InvoiceID,
		&view.CustomerID,
		&createdBy,
		&createdAt,
		&returnedFrom,
		&view.HasLiveQRToken,
		&view.Version,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
		return OrderView{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}
	if view.Priority, err = order.ParsePriority(priority); err != nil {
		return OrderView{}, err
	}
	if returnedFrom.Valid {
		from, parseErr := order.ParseStatus(returnedFrom.String)
		if parseErr != nil {
			return OrderView{}, parseErr
		}
		view.ReturnedFrom = &from
	}
	if scheduledDate.Valid {
		scheduled := scheduledDate.Time.UTC()
		view.ScheduledDate = &scheduled
	}
	view.CreatedAt = createdAt.UTC()

	return view, nil
}
