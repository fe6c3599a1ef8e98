package order

import (
	"fmt"

	"installation/internal/pkg/errs"
)

// Priority is informational and never affects transition legality.
type Priority int

const (
	PriorityUnknown Priority = iota
	Normal
	Urgent
)

func ParsePriority(s string) (Priority, error) {
	switch s {
	case "Normal":
		return Normal, nil
	case "Urgent":
		return Urgent, nil
	default:
		return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%q is not a valid priority", s))
	}
}

func (p Priority) Validate() error {
	if p != Normal && p != Urgent {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	switch p {
	case Normal:
		return "Normal"
	case Urgent:
		return "Urgent"
	default:
		return "Unknown"
	}
}
