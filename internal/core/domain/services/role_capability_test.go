package services_test

import (
	"testing"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapability_AllowedActions(t *testing.T) {
	c := services.NewRoleCapability()

	tests := []struct {
		name   string
		role   kernel.Role
		status order.Status
		want   []services.Action
	}{
		{"sales rep on draft", kernel.SalesRepresentative, order.Draft,
			[]services.Action{services.ActionSave, services.ActionSubmit}},
		{"sales manager on pending sales manager", kernel.SalesManager, order.PendingSalesManager,
			[]services.Action{services.ActionApprove, services.ActionReject, services.ActionReturn}},
		{"supervisor on pending supervisor", kernel.Supervisor, order.PendingSupervisor,
			[]services.Action{services.ActionApprove, services.ActionReject, services.ActionReturn, services.ActionAssignTask}},
		{"technician in progress", kernel.Technician, order.InProgress,
			[]services.Action{services.ActionReturn, services.ActionRequestQR}},
		{"admin on pending qr", kernel.Admin, order.PendingQR,
			[]services.Action{services.ActionReturn, services.ActionVerifyQR, services.ActionReissueQR,
				services.ActionOverrideClose, services.ActionCancel}},
		{"admin on draft", kernel.Admin, order.Draft,
			[]services.Action{services.ActionCancel}},
		{"technician on pending qr", kernel.Technician, order.PendingQR,
			[]services.Action{services.ActionVerifyQR}},
		{"customer anywhere", kernel.Customer, order.InProgress, nil},
		{"admin on closed", kernel.Admin, order.Closed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.AllowedActions(tt.role, orderIn(t, tt.status)))
		})
	}
}

func TestRoleCapability_Aliases(t *testing.T) {
	c := services.NewRoleCapability()
	o := orderIn(t, order.PendingSupervisor)

	assert.Equal(t, c.AllowedActions(kernel.Admin, o), c.AllowedActions(kernel.SuperAdmin, o))
	assert.Equal(t, c.AllowedActions(kernel.Supervisor, o), c.AllowedActions(kernel.DepartmentManager, o))
}

func TestRoleCapability_OnlyAdminCancelsEverywhere(t *testing.T) {
	c := services.NewRoleCapability()

	for _, status := range order.AllStatuses() {
		o := orderIn(t, status)
		assert.Equal(t, !status.IsTerminal(), c.CanPerform(kernel.Admin, services.ActionCancel, o), status.String())

		for _, role := range []kernel.Role{kernel.SalesManager, kernel.Supervisor, kernel.Technician, kernel.SalesRepresentative} {
			assert.False(t, c.CanPerform(role, services.ActionCancel, o), "%s on %s", role, status)
		}
	}
}

func TestRoleCapability_ResubmitFollowsReturnedFrom(t *testing.T) {
	c := services.NewRoleCapability()

	tests := []struct {
		from    order.Status
		role    kernel.Role
		target  order.Status
		allowed bool
	}{
		{order.PendingSalesManager, kernel.SalesRepresentative, order.PendingSalesManager, true},
		{order.PendingSalesManager, kernel.SalesManager, order.PendingSupervisor, false},
		{order.PendingSupervisor, kernel.SalesManager, order.PendingSupervisor, true},
		{order.PendingSupervisor, kernel.SalesRepresentative, order.PendingSalesManager, false},
		{order.InProgress, kernel.Supervisor, order.PendingSupervisor, true},
		{order.PendingQR, kernel.Supervisor, order.PendingSupervisor, true},
		{order.InProgress, kernel.SalesManager, order.PendingSupervisor, false},
	}

	for _, tt := range tests {
		o := orderIn(t, order.Returned, withReturnedFrom(tt.from))
		targets := c.AllowedTargets(tt.role, o)
		assert.Equal(t, tt.allowed, contains(targets, tt.target), "%s returned from %s", tt.role, tt.from)
	}
}

func TestRoleCapability_AllowedTargetsHideClosedFromNonAdmin(t *testing.T) {
	c := services.NewRoleCapability()
	o := orderIn(t, order.PendingQR, withToken("t", false))

	assert.Equal(t, []order.Status{order.Returned}, c.AllowedTargets(kernel.Supervisor, o))
	assert.Equal(t, []order.Status{order.Closed, order.Returned, order.Cancelled}, c.AllowedTargets(kernel.Admin, o))
}

func TestRoleCapability_CanCreate(t *testing.T) {
	c := services.NewRoleCapability()

	assert.True(t, c.CanCreate(kernel.SalesRepresentative))
	assert.True(t, c.CanCreate(kernel.SuperAdmin))
	assert.False(t, c.CanCreate(kernel.Technician))
	assert.False(t, c.CanCreate(kernel.Customer))
}

func contains(statuses []order.Status, s order.Status) bool {
	for _, x := range statuses {
		if x == s {
			return true
		}
	}
	return false
}
