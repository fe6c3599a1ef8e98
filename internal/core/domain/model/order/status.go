package order

import (
	"fmt"

	"installation/internal/pkg/errs"
)

// Status is the lifecycle state of an installation order.
//
// State transitions:
//
//	Draft ──> PendingSalesManager ──> PendingSupervisor ──> InProgress ──> PendingQR ──> Closed
//	  ↺save          │    │                 │    │              │             │
//	                 │    └──> Returned <───┘    │   <──────────┘  <──────────┘
//	                 │            │              │
//	                 └──> Cancelled <────────────┘   (Admin: from any non-terminal state)
//
// Returned goes back to PendingSalesManager or PendingSupervisor on re-submission.
// Closed and Cancelled are terminal. Completed exists on the wire for orders the
// backend finished outside this workflow; no transition leads into it.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Draft
	PendingSalesManager
	PendingSupervisor
	InProgress
	PendingQR
	Completed
	Closed
	Returned
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		Draft:               "Draft",
		PendingSalesManager: "PendingSalesManager",
		PendingSupervisor:   "PendingSupervisor",
		InProgress:          "InProgress",
		PendingQR:           "PendingQR",
		Completed:           "Completed",
		Closed:              "Closed",
		Returned:            "Returned",
		Cancelled:           "Cancelled",
	}
}

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Draft:               "Draft",
		PendingSalesManager: "Awaiting sales manager",
		PendingSupervisor:   "Awaiting supervisor",
		InProgress:          "In progress",
		PendingQR:           "Awaiting QR confirmation",
		Completed:           "Completed",
		Closed:              "Closed",
		Returned:            "Returned",
		Cancelled:           "Cancelled",
	}
}

// getLegalTransitions is the order half of the status registry. Role gating for each
// pair lives with the workflow services; this table only answers "is the pair legal".
func getLegalTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:               {Draft, PendingSalesManager},
		PendingSalesManager: {PendingSupervisor, Cancelled, Returned},
		PendingSupervisor:   {InProgress, Returned, Cancelled},
		InProgress:          {PendingQR, Returned},
		PendingQR:           {Closed, Returned},
		Returned:            {PendingSalesManager, PendingSupervisor},
	}
}

// AllStatuses lists the nine valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Draft,
		PendingSalesManager,
		PendingSupervisor,
		InProgress,
		PendingQR,
		Completed,
		Closed,
		Returned,
		Cancelled,
	}
}

// ParseStatus converts a backend literal (exact spelling and casing) into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values coming from persistence or the wire.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label is the human-readable name shown next to the status.
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

// IsTerminal reports the formal end states. Completed is deliberately not terminal:
// Admin may still cancel it.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Cancelled
}

// CanTransitionTo reports whether (s, to) is a legal pair, including the
// administrative cancel from any non-terminal state.
func (s Status) CanTransitionTo(to Status) bool {
	if s.Validate() != nil || to.Validate() != nil {
		return false
	}
	if to == Cancelled && !s.IsTerminal() {
		return true
	}
	for _, target := range getLegalTransitions()[s] {
		if target == to {
			return true
		}
	}
	return false
}

// LegalTargets lists every status reachable from s in one step.
func (s Status) LegalTargets() []Status {
	targets := make([]Status, 0)
	for _, to := range AllStatuses() {
		if s.CanTransitionTo(to) {
			targets = append(targets, to)
		}
	}
	return targets
}
