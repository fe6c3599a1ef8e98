package services

import (
	"slices"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"
)

// Action is a user-facing operation on an order. Transition actions double as the
// history action name.
type Action string

const (
	ActionSave          Action = "Save"
	ActionSubmit        Action = "Submit"
	ActionApprove       Action = "Approve"
	ActionReject        Action = "Reject"
	ActionReturn        Action = "Return"
	ActionResubmit      Action = "Resubmit"
	ActionRequestQR     Action = "RequestQR"
	ActionCancel        Action = "Cancel"
	ActionVerifyQR      Action = "VerifyQR"
	ActionOverrideClose Action = "OverrideClose"
	ActionReissueQR     Action = "ReissueQR"
	ActionAssignTask    Action = "AssignTask"
)

// AllActions lists actions in the order they are offered to clients.
func AllActions() []Action {
	return []Action{
		ActionSave,
		ActionSubmit,
		ActionApprove,
		ActionReject,
		ActionReturn,
		ActionResubmit,
		ActionRequestQR,
		ActionAssignTask,
		ActionVerifyQR,
		ActionReissueQR,
		ActionOverrideClose,
		ActionCancel,
	}
}

// TransitionRule grants roles one (From, To) pair of the order status table.
// When, if set, narrows the rule by order state beyond the status.
type TransitionRule struct {
	From   order.Status
	To     order.Status
	Action Action
	Roles  []kernel.Role
	When   func(o *order.Order) bool
}

func (r TransitionRule) allows(role kernel.Role, o *order.Order) bool {
	if o.Status() != r.From || !slices.Contains(r.Roles, role.Effective()) {
		return false
	}
	return r.When == nil || r.When(o)
}

// verifierRoles are the roles that may present a QR token.
func verifierRoles() []kernel.Role {
	return []kernel.Role{
		kernel.Admin,
		kernel.SalesManager,
		kernel.Supervisor,
		kernel.SalesRepresentative,
		kernel.Technician,
	}
}

func creatorRoles() []kernel.Role {
	return []kernel.Role{kernel.SalesRepresentative, kernel.SalesManager, kernel.Admin}
}

func assignerRoles() []kernel.Role {
	return []kernel.Role{kernel.Supervisor, kernel.Admin, kernel.SalesManager}
}

func returnedFrom(statuses ...order.Status) func(o *order.Order) bool {
	return func(o *order.Order) bool {
		from := o.ReturnedFrom()
		return from == nil || slices.Contains(statuses, *from)
	}
}

// TransitionRules is the role table for order transitions. The Admin cancel from any
// non-terminal state is not a row: it is the explicit override in RoleCapability.
func TransitionRules() []TransitionRule {
	return []TransitionRule{
		{From: order.Draft, To: order.Draft, Action: ActionSave,
			Roles: []kernel.Role{kernel.SalesRepresentative}},
		{From: order.Draft, To: order.PendingSalesManager, Action: ActionSubmit,
			Roles: []kernel.Role{kernel.SalesRepresentative}},

		{From: order.PendingSalesManager, To: order.PendingSupervisor, Action: ActionApprove,
			Roles: []kernel.Role{kernel.SalesManager}},
		{From: order.PendingSalesManager, To: order.Cancelled, Action: ActionReject,
			Roles: []kernel.Role{kernel.SalesManager, kernel.Admin}},
		{From: order.PendingSalesManager, To: order.Returned, Action: ActionReturn,
			Roles: []kernel.Role{kernel.SalesManager, kernel.Admin}},

		{From: order.PendingSupervisor, To: order.InProgress, Action: ActionApprove,
			Roles: []kernel.Role{kernel.Supervisor, kernel.Admin}},
		{From: order.PendingSupervisor, To: order.Returned, Action: ActionReturn,
			Roles: []kernel.Role{kernel.Supervisor, kernel.Admin}},
		{From: order.PendingSupervisor, To: order.Cancelled, Action: ActionReject,
			Roles: []kernel.Role{kernel.Supervisor, kernel.Admin}},

		{From: order.InProgress, To: order.PendingQR, Action: ActionRequestQR,
			Roles: []kernel.Role{kernel.Supervisor, kernel.Technician, kernel.Admin}},
		{From: order.InProgress, To: order.Returned, Action: ActionReturn,
			Roles: []kernel.Role{kernel.Supervisor, kernel.Technician, kernel.Admin}},

		{From: order.PendingQR, To: order.Closed, Action: ActionVerifyQR,
			Roles: verifierRoles()},
		{From: order.PendingQR, To: order.Closed, Action: ActionOverrideClose,
			Roles: []kernel.Role{kernel.Admin}},
		{From: order.PendingQR, To: order.Returned, Action: ActionReturn,
			Roles: []kernel.Role{kernel.Supervisor, kernel.Admin}},

		{From: order.Returned, To: order.PendingSalesManager, Action: ActionResubmit,
			Roles: []kernel.Role{kernel.SalesRepresentative},
			When:  returnedFrom(order.Draft, order.PendingSalesManager)},
		{From: order.Returned, To: order.PendingSupervisor, Action: ActionResubmit,
			Roles: []kernel.Role{kernel.SalesManager},
			When:  returnedFrom(order.PendingSupervisor)},
		{From: order.Returned, To: order.PendingSupervisor, Action: ActionResubmit,
			Roles: []kernel.Role{kernel.Supervisor},
			When:  returnedFrom(order.InProgress, order.PendingQR)},
	}
}

// RoleCapability answers who may do what to an order in its current state.
// It is stateless; the zero value is ready to use.
type RoleCapability struct{}

func NewRoleCapability() RoleCapability {
	return RoleCapability{}
}

// CanCreate reports whether role may open a new Draft order.
func (RoleCapability) CanCreate(role kernel.Role) bool {
	return slices.Contains(creatorRoles(), role.Effective())
}

// CanPerform reports whether role may perform action on o right now.
func (RoleCapability) CanPerform(role kernel.Role, action Action, o *order.Order) bool {
	if o == nil || o.Validate() != nil {
		return false
	}
	switch action {
	case ActionCancel:
		return isAdminCancel(role, o.Status(), order.Cancelled)
	case ActionAssignTask:
		return slices.Contains(assignerRoles(), role.Effective()) &&
			(o.Status() == order.PendingSupervisor || o.Status() == order.InProgress)
	case ActionReissueQR:
		return role.IsAdmin() && o.Status() == order.PendingQR
	}
	for _, rule := range TransitionRules() {
		if rule.Action == action && rule.allows(role, o) {
			return true
		}
	}
	return false
}

// AllowedActions lists every action role may perform on o, in AllActions order.
func (c RoleCapability) AllowedActions(role kernel.Role, o *order.Order) []Action {
	var actions []Action
	for _, action := range AllActions() {
		if c.CanPerform(role, action, o) {
			actions = append(actions, action)
		}
	}
	return actions
}

// AllowedTargets lists the statuses role may move o to through RequestTransition.
func (c RoleCapability) AllowedTargets(role kernel.Role, o *order.Order) []order.Status {
	var targets []order.Status
	if o == nil || o.Validate() != nil {
		return targets
	}
	for _, to := range o.Status().LegalTargets() {
		if to == order.Closed && !role.IsAdmin() {
			continue
		}
		if _, err := c.authorize(role, o, to); err == nil {
			targets = append(targets, to)
		}
	}
	return targets
}

// authorize finds the action that lets role move o to a legal target.
// Table rows win over the Admin cancel override so a row's own action name is kept.
func (RoleCapability) authorize(role kernel.Role, o *order.Order, to order.Status) (Action, error) {
	var matched *TransitionRule
	for _, rule := range TransitionRules() {
		if rule.From != o.Status() || rule.To != to {
			continue
		}
		if rule.allows(role, o) {
			return rule.Action, nil
		}
		if matched == nil || (rule.When != nil && slices.Contains(rule.Roles, role.Effective())) {
			r := rule
			matched = &r
		}
	}
	if isAdminCancel(role, o.Status(), to) {
		return ActionCancel, nil
	}

	if matched == nil {
		if to == order.Cancelled {
			return "", errs.NewForbiddenErrorWithReason(role.String(), string(ActionCancel), "only Admin may cancel at this stage")
		}
		return "", errs.NewForbiddenError(role.String(), "move order to "+to.String())
	}
	if matched.When != nil && slices.Contains(matched.Roles, role.Effective()) {
		return "", errs.NewForbiddenErrorWithReason(role.String(), string(matched.Action), returnedReason(o))
	}
	return "", errs.NewForbiddenError(role.String(), string(matched.Action))
}

func isAdminCancel(role kernel.Role, from, to order.Status) bool {
	return to == order.Cancelled && role.IsAdmin() && from.Validate() == nil && !from.IsTerminal()
}

func returnedReason(o *order.Order) string {
	if from := o.ReturnedFrom(); from != nil {
		return "order was returned from " + from.String()
	}
	return "order was not returned"
}
