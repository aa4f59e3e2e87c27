package shipment

import (
	"fmt"
	"slices"
	"strings"

	"logistics/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Pending
	Confirmed
	Dispatched
	InTransit
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Dispatched: "Dispatched",
		InTransit:  "InTransit",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Dispatched: "Dispatched",
		InTransit:  "InTransit",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // final and unknown statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:    {Confirmed, Dispatched, Cancelled},
		Confirmed:  {Dispatched, Cancelled},
		Dispatched: {InTransit, Delivered, Cancelled},
		InTransit:  {Delivered, Cancelled},
	}
}

// ParseStatus accepts status names case-insensitively, with or without
// underscores ("in_transit", "IN_TRANSIT" and "InTransit" are the same).
func ParseStatus(s string) (Status, error) {
	normalized := strings.ReplaceAll(s, "_", "")
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, normalized) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate rejects values outside the known statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
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

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// CanBeAssigned reports whether vehicle and driver may still be (re)bound.
func (s Status) CanBeAssigned() bool {
	return s == Pending || s == Confirmed
}

// TransitionTo validates target and returns it when the move is allowed.
// An unrecognised target is a validation error; a move outside the table is
// an invalid state error.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !slices.Contains(getAllowedTransitions()[s], target) {
		return Unknown, errs.NewInvalidStateError("shipment", s.String(), "move to "+target.String()+" a")
	}
	return target, nil
}
