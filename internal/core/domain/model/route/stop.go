package route

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// DefaultServiceTimeMinutes is the time spent at a stop unless stated otherwise.
const DefaultServiceTimeMinutes = 15

var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// TimeWindow is an optional arrival window for a stop.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow requires start to be before end.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("start %s must not be after end %s", start, end))
	}
	return TimeWindow{start: start.UTC(), end: end.UTC()}, nil
}

func (w TimeWindow) Start() time.Time { return w.start }
func (w TimeWindow) End() time.Time   { return w.end }

// Stop is one shipment's visit within a route.
type Stop struct {
	id                 kernel.UUID
	shipmentID         kernel.UUID
	sequence           int
	stopType           StopType
	window             *TimeWindow
	estimatedArrival   *time.Time
	actualArrival      *time.Time
	serviceTimeMinutes int
	completed          bool
	completedAt        *time.Time

	isConstructed bool
}

// NewStop creates a Pending stop for shipmentID at the given sequence position.
func NewStop(
	id kernel.UUID,
	shipmentID kernel.UUID,
	sequence int,
	stopType StopType,
	window *TimeWindow,
	estimatedArrival *time.Time,
	serviceTimeMinutes int,
) (*Stop, error) {
	var seqErr error
	if sequence < 1 {
		seqErr = errs.NewValueIsOutOfRangeError("sequence", sequence, 1, "unbounded")
	}
	var serviceErr error
	if serviceTimeMinutes < 0 {
		serviceErr = errs.NewValueIsInvalidErrorWithCause("service time", fmt.Errorf("%d is negative", serviceTimeMinutes))
	}
	if err := errors.Join(id.Validate(), shipmentID.Validate(), seqErr, stopType.Validate(), serviceErr); err != nil {
		return nil, err
	}

	return &Stop{
		id:                 id,
		shipmentID:         shipmentID,
		sequence:           sequence,
		stopType:           stopType,
		window:             window,
		estimatedArrival:   estimatedArrival,
		serviceTimeMinutes: serviceTimeMinutes,
		isConstructed:      true,
	}, nil
}

// RestoreStop rebuilds a stop including its completion state.
func RestoreStop(
	id kernel.UUID,
	shipmentID kernel.UUID,
	sequence int,
	stopType StopType,
	window *TimeWindow,
	estimatedArrival *time.Time,
	actualArrival *time.Time,
	serviceTimeMinutes int,
	completed bool,
	completedAt *time.Time,
) (*Stop, error) {
	s, err := NewStop(id, shipmentID, sequence, stopType, window, estimatedArrival, serviceTimeMinutes)
	if err != nil {
		return nil, err
	}
	if completed && completedAt == nil {
		return nil, errs.NewValueIsRequiredError("completed at")
	}
	s.actualArrival = actualArrival
	s.completed = completed
	s.completedAt = completedAt
	return s, nil
}

// Validate reports a nil or zero stop.
func (s *Stop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

func (s *Stop) ID() kernel.UUID              { return s.id }
func (s *Stop) ShipmentID() kernel.UUID      { return s.shipmentID }
func (s *Stop) Sequence() int                { return s.sequence }
func (s *Stop) Type() StopType               { return s.stopType }
func (s *Stop) Window() *TimeWindow          { return s.window }
func (s *Stop) EstimatedArrival() *time.Time { return s.estimatedArrival }
func (s *Stop) ActualArrival() *time.Time    { return s.actualArrival }
func (s *Stop) ServiceTimeMinutes() int      { return s.serviceTimeMinutes }
func (s *Stop) IsCompleted() bool            { return s.completed }
func (s *Stop) CompletedAt() *time.Time      { return s.completedAt }

func (s *Stop) complete(now time.Time) error {
	if s.completed {
		return errs.NewInvalidStateError("stop", "Completed", "complete")
	}
	at := now.UTC()
	s.completed = true
	s.completedAt = &at
	s.actualArrival = &at
	return nil
}
