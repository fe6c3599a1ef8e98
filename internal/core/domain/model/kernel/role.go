package kernel

import (
	"fmt"

	"installation/internal/pkg/errs"
)

// Role is the backend role literal carried by every workflow request.
// The values must match the backend enum spelling exactly.
type Role string

const (
	SuperAdmin          Role = "SuperAdmin"
	Admin               Role = "Admin"
	SalesManager        Role = "SalesManager"
	DepartmentManager   Role = "DepartmentManager"
	Supervisor          Role = "Supervisor"
	SalesRepresentative Role = "SalesRepresentative"
	Technician          Role = "Technician"
	Customer            Role = "Customer"

	// System marks transitions applied as a cascade of another transition.
	// It is never accepted from the wire.
	System Role = "System"
)

func wireRoles() []Role {
	return []Role{
		SuperAdmin,
		Admin,
		SalesManager,
		DepartmentManager,
		Supervisor,
		SalesRepresentative,
		Technician,
		Customer,
	}
}

// ParseRole converts a wire literal into a Role. Matching is case-sensitive.
func ParseRole(s string) (Role, error) {
	for _, r := range wireRoles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if r == System {
		return nil
	}
	_, err := ParseRole(string(r))
	return err
}

// Effective folds role aliases onto the role whose capabilities they share:
// SuperAdmin acts as Admin, DepartmentManager acts as Supervisor.
func (r Role) Effective() Role {
	switch r {
	case SuperAdmin:
		return Admin
	case DepartmentManager:
		return Supervisor
	default:
		return r
	}
}

func (r Role) IsAdmin() bool {
	return r.Effective() == Admin
}

func (r Role) String() string {
	return string(r)
}
