package http

import (
	"installation/internal/core/application/usecases/queries"
	"installation/internal/core/domain/model/order"
	"installation/internal/generated/servers"
)

func toOrder(v queries.OrderView) servers.Order {
	response := servers.Order{
		Address:        v.Address,
		BranchId:       v.BranchID,
		City:           v.City,
		CreatedAt:      v.CreatedAt,
		CreatedBy:      v.CreatedBy.Bytes(),
		CustomerId:     v.CustomerID,
		DepartmentId:   v.DepartmentID,
		HasLiveQrToken: v.HasLiveQRToken,
		Id:             v.ID.Bytes(),
		InvoiceId:      optional(v.InvoiceID),
		Priority:       servers.Priority(v.Priority.String()),
		QuotationId:    optional(v.QuotationID),
		ScheduledDate:  v.ScheduledDate,
		Status:         servers.OrderStatus(v.Status.String()),
		StatusLabel:    v.Status.Label(),
		Version:        v.Version,
	}
	if v.ReturnedFrom != nil {
		from := servers.OrderStatus(v.ReturnedFrom.String())
		response.ReturnedFrom = &from
	}
	return response
}

func toHistoryEntry(v queries.HistoryEntryView) servers.HistoryEntry {
	return servers.HistoryEntry{
		Action:     string(v.Action),
		FromStatus: optional(v.FromStatus),
		Notes:      optional(v.Notes),
		Timestamp:  v.Timestamp,
		ToStatus:   optional(v.ToStatus),
		UserId:     v.UserID.Bytes(),
		UserRole:   v.UserRole.String(),
	}
}

func toOrderActions(v queries.OrderActionsView) servers.OrderActions {
	actions := make([]string, len(v.Actions))
	for i, action := range v.Actions {
		actions[i] = string(action)
	}
	return servers.OrderActions{
		Actions: actions,
		Status:  servers.OrderStatus(v.Status.String()),
		Targets: toOrderStatuses(v.Targets),
	}
}

func toOrderStatuses(statuses []order.Status) []servers.OrderStatus {
	response := make([]servers.OrderStatus, len(statuses))
	for i, s := range statuses {
		response[i] = servers.OrderStatus(s.String())
	}
	return response
}

func toTask(v queries.TaskView) servers.Task {
	return servers.Task{
		CreatedAt:    v.CreatedAt,
		Id:           v.ID.Bytes(),
		Notes:        optional(v.Notes),
		OrderId:      v.OrderID.Bytes(),
		Status:       servers.TaskStatus(v.Status.String()),
		StatusLabel:  v.Status.Label(),
		TechnicianId: v.TechnicianID.Bytes(),
		UpdatedAt:    v.UpdatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
