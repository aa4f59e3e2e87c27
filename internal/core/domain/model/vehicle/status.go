package vehicle

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the operational state of a vehicle.
type Status int

const (
	Unknown Status = iota
	Idle
	Transit
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Idle:        "Idle",
		Transit:     "Transit",
		Maintenance: "Maintenance",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Idle:        "Idle",
		Transit:     "Transit",
		Maintenance: "Maintenance",
	}
}

// ParseStatus maps a case-insensitive status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid vehicle status", s))
}

// Validate rejects Unknown and out of range values.
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

// EnterTransit moves an idle vehicle into Transit. A vehicle already in
// Transit stays there.
func (s Status) EnterTransit() (Status, error) {
	switch s { //nolint:exhaustive // remaining statuses are rejected below
	case Idle, Transit:
		return Transit, nil
	default:
		return Unknown, errs.NewInvalidStateError("vehicle", s.String(), "dispatch")
	}
}

// StartRoute moves an idle vehicle into Transit. Unlike EnterTransit, a
// vehicle already in Transit is rejected: it is driving another route or shipment.
func (s Status) StartRoute() (Status, error) {
	if s != Idle {
		return Unknown, errs.NewInvalidStateError("vehicle", s.String(), "start a route with")
	}
	return Transit, nil
}

// Release returns a vehicle in Transit to Idle. Idle and Maintenance are kept as is.
func (s Status) Release() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Transit {
		return Idle, nil
	}
	return s, nil
}

// StartMaintenance takes an idle vehicle off the road. Repeating it is a no-op.
func (s Status) StartMaintenance() (Status, error) {
	if s != Idle && s != Maintenance {
		return Unknown, errs.NewInvalidStateError("vehicle", s.String(), "start maintenance of")
	}
	return Maintenance, nil
}

// EndMaintenance returns a vehicle in Maintenance to Idle.
func (s Status) EndMaintenance() (Status, error) {
	if s != Maintenance {
		return Unknown, errs.NewInvalidStateError("vehicle", s.String(), "end maintenance of")
	}
	return Idle, nil
}
