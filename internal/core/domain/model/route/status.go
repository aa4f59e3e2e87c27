package route

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Draft
	Planned
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Draft:      "Draft",
		Planned:    "Planned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate rejects values outside the known statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
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

// Plan moves a Draft route to Planned.
func (s Status) Plan() (Status, error) {
	if s != Draft {
		return Unknown, errs.NewInvalidStateError("route", s.String(), "plan")
	}
	return Planned, nil
}

// Start requires Planned.
func (s Status) Start() (Status, error) {
	if s != Planned {
		return Unknown, errs.NewInvalidStateError("route", s.String(), "start")
	}
	return InProgress, nil
}

func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewInvalidStateError("route", s.String(), "complete")
	}
	return Completed, nil
}

func (s Status) Cancel() (Status, error) {
	switch s { //nolint:exhaustive // final statuses are rejected below
	case Draft, Planned, InProgress:
		return Cancelled, nil
	default:
		return Unknown, errs.NewInvalidStateError("route", s.String(), "cancel")
	}
}

// StopType tells whether a stop picks up or delivers its shipment.
type StopType int

const (
	UnknownStopType StopType = iota
	Pickup
	Delivery
)

// Validate rejects unknown stop types.
func (t StopType) Validate() error {
	if t != Pickup && t != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("stop type", fmt.Errorf("%d is not a valid stop type", t))
	}
	return nil
}

func (t StopType) String() string {
	switch t { //nolint:exhaustive // everything else is unknown
	case Pickup:
		return "Pickup"
	case Delivery:
		return "Delivery"
	default:
		return "Unknown"
	}
}
