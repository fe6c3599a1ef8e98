package task

import (
	"fmt"

	"installation/internal/pkg/errs"
)

// Status is the lifecycle state of a technician task.
//
// Progression is strictly sequential:
//
//	Assigned ──> Accepted ──> Enroute ──> Onsite ──> InProgress ──> Completed
//	    └───────────┴────────────┴──────────┴────────────┴──> OnHold ──> (resume)
//	                                                    InProgress/OnHold ──> Returned
//
// OnHold resumes only to the state it was entered from. Completed and Returned are terminal.
type Status int

const (
	Unknown Status = iota
	Assigned
	Accepted
	Enroute
	Onsite
	InProgress
	Completed
	Returned
	OnHold
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Assigned:   "Assigned",
		Accepted:   "Accepted",
		Enroute:    "Enroute",
		Onsite:     "Onsite",
		InProgress: "InProgress",
		Completed:  "Completed",
		Returned:   "Returned",
		OnHold:     "OnHold",
	}
}

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Assigned:   "Assigned",
		Accepted:   "Accepted",
		Enroute:    "On the way",
		Onsite:     "On site",
		InProgress: "In progress",
		Completed:  "Completed",
		Returned:   "Returned",
		OnHold:     "On hold",
	}
}

// getProgression maps each active state to the one step forward it may take.
func getProgression() map[Status]Status {
	return map[Status]Status{
		Assigned:   Accepted,
		Accepted:   Enroute,
		Enroute:    Onsite,
		Onsite:     InProgress,
		InProgress: Completed,
	}
}

func AllStatuses() []Status {
	return []Status{Assigned, Accepted, Enroute, Onsite, InProgress, Completed, Returned, OnHold}
}

func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("task status is invalid", fmt.Errorf("%q is not a valid task status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > OnHold {
		return errs.NewValueIsInvalidErrorWithCause("task status is invalid", fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return s.String()
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Returned
}

// IsActive reports the non-terminal states, OnHold included.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// Next returns the single forward step from s, if any.
func (s Status) Next() (Status, bool) {
	next, ok := getProgression()[s]
	return next, ok
}

// CanTransitionTo checks one step of the task lifecycle. heldFrom is the state an
// OnHold task resumes to and is ignored for every other source state.
func (s Status) CanTransitionTo(to Status, heldFrom Status) bool {
	if s.Validate() != nil || to.Validate() != nil || s.IsTerminal() {
		return false
	}
	switch {
	case s == OnHold:
		return to == Returned || (to == heldFrom && heldFrom != OnHold && heldFrom.IsActive())
	case to == OnHold:
		return true
	case to == Returned:
		return s == InProgress
	}
	next, ok := s.Next()
	return ok && next == to
}
