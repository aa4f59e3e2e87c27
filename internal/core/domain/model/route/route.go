package route

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Metrics are the aggregate figures computed when the route is planned.
type Metrics struct {
	TotalDistanceKm float64
	DurationMinutes int
}

// Route is the aggregate root for a vehicle's visiting plan. It owns its stops.
type Route struct {
	id            kernel.UUID
	name          string
	vehicleID     *kernel.UUID
	driverID      *kernel.UUID
	status        Status
	startLocation string
	startPoint    kernel.GeoPoint
	metrics       Metrics
	stops         []*Stop
	plannedStart  *time.Time
	plannedEnd    *time.Time
	actualStart   *time.Time
	actualEnd     *time.Time
	createdAt     time.Time
	version       int

	isConstructed bool
}

// NewRoute creates an empty Draft route starting at startPoint.
func NewRoute(
	id kernel.UUID,
	name string,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
	startLocation string,
	startPoint kernel.GeoPoint,
	createdAt time.Time,
) (*Route, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), nameErr, startPoint.Validate(), validateOptionalID(vehicleID), validateOptionalID(driverID)); err != nil {
		return nil, err
	}

	return &Route{
		id:            id,
		name:          strings.TrimSpace(name),
		vehicleID:     vehicleID,
		driverID:      driverID,
		status:        Draft,
		startLocation: strings.TrimSpace(startLocation),
		startPoint:    startPoint,
		stops:         make([]*Stop, 0),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// Snapshot carries persisted route state into RestoreRoute.
type Snapshot struct {
	ID            kernel.UUID
	Name          string
	VehicleID     *kernel.UUID
	DriverID      *kernel.UUID
	Status        Status
	StartLocation string
	StartPoint    kernel.GeoPoint
	Metrics       Metrics
	Stops         []*Stop
	PlannedStart  *time.Time
	PlannedEnd    *time.Time
	ActualStart   *time.Time
	ActualEnd     *time.Time
	CreatedAt     time.Time
	Version       int
}

// RestoreRoute rebuilds a route and its stops from a stored snapshot.
func RestoreRoute(s Snapshot) (*Route, error) {
	r, err := NewRoute(s.ID, s.Name, s.VehicleID, s.DriverID, s.StartLocation, s.StartPoint, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	for i, stop := range s.Stops {
		if err = stop.Validate(); err != nil {
			return nil, err
		}
		if stop.Sequence() != i+1 {
			return nil, errs.NewValueIsInvalidErrorWithCause("stops",
				fmt.Errorf("stop %s has sequence %d at position %d", stop.ID(), stop.Sequence(), i+1))
		}
	}
	r.status = s.Status
	r.metrics = s.Metrics
	r.stops = append(r.stops, s.Stops...)
	r.plannedStart = s.PlannedStart
	r.plannedEnd = s.PlannedEnd
	r.actualStart = s.ActualStart
	r.actualEnd = s.ActualEnd
	r.version = s.Version
	return r, nil
}

// Validate reports a nil or zero route.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID is the route identity.
func (r *Route) ID() kernel.UUID { return r.id }

// Name is the display name.
func (r *Route) Name() string { return r.name }

// VehicleID is the vehicle driving the route.
func (r *Route) VehicleID() *kernel.UUID { return r.vehicleID }

// DriverID is nil when no driver was chosen.
func (r *Route) DriverID() *kernel.UUID { return r.driverID }

// Status is the current lifecycle state.
func (r *Route) Status() Status { return r.status }

// StartLocation is the label of the depot.
func (r *Route) StartLocation() string { return r.startLocation }

// StartPoint is where sequencing started.
func (r *Route) StartPoint() kernel.GeoPoint { return r.startPoint }

// Metrics holds the distance and duration estimates.
func (r *Route) Metrics() Metrics { return r.metrics }

// StopCount is the number of stops.
func (r *Route) StopCount() int { return len(r.stops) }

// PlannedStart is nil when no start was planned.
func (r *Route) PlannedStart() *time.Time { return r.plannedStart }

// PlannedEnd is the planned start plus the estimated duration.
func (r *Route) PlannedEnd() *time.Time { return r.plannedEnd }

// ActualStart is set when the route starts.
func (r *Route) ActualStart() *time.Time { return r.actualStart }

// ActualEnd is set on completion, or on cancellation of a route in progress.
func (r *Route) ActualEnd() *time.Time { return r.actualEnd }

// CreatedAt is the creation time.
func (r *Route) CreatedAt() time.Time { return r.createdAt }

// Version is the optimistic lock counter of the stored row.
func (r *Route) Version() int { return r.version }

// IncrementVersion is called by the repository after a successful update.
func (r *Route) IncrementVersion() {
	r.version++
}

// Stops returns the stops ordered by sequence.
func (r *Route) Stops() []*Stop {
	out := make([]*Stop, len(r.stops))
	copy(out, r.stops)
	return out
}

// Stop looks up a stop of this route by id.
func (r *Route) Stop(stopID kernel.UUID) (*Stop, error) {
	for _, s := range r.stops {
		if s.ID().IsEqual(stopID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stop", stopID.String())
}

// AddStop appends the next stop of a Draft route. Its sequence must follow the last one.
func (r *Route) AddStop(stop *Stop) error {
	if r.status != Draft {
		return errs.NewInvalidStateError("route", r.status.String(), "add a stop to")
	}
	if err := stop.Validate(); err != nil {
		return err
	}
	if stop.Sequence() != len(r.stops)+1 {
		return errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("expected %d, got %d", len(r.stops)+1, stop.Sequence()))
	}
	for _, s := range r.stops {
		if s.ShipmentID().IsEqual(stop.ShipmentID()) {
			return errs.NewValueIsInvalidErrorWithCause("stop",
				fmt.Errorf("shipment %s is already on the route", stop.ShipmentID()))
		}
	}
	r.stops = append(r.stops, stop)
	return nil
}

// Plan fixes the metrics and moves the route to Planned. The distance is kept
// at two decimals. When plannedStart is given the planned end is derived from
// the duration.
func (r *Route) Plan(metrics Metrics, plannedStart *time.Time) error {
	if len(r.stops) == 0 {
		return errs.NewValueIsRequiredError("stops")
	}
	if metrics.TotalDistanceKm < 0 || metrics.DurationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("metrics", errors.New("distance and duration must not be negative"))
	}
	next, err := r.status.Plan()
	if err != nil {
		return err
	}

	r.status = next
	r.metrics = Metrics{
		TotalDistanceKm: math.Round(metrics.TotalDistanceKm*100) / 100,
		DurationMinutes: metrics.DurationMinutes,
	}
	if plannedStart != nil {
		start := plannedStart.UTC()
		end := start.Add(time.Duration(metrics.DurationMinutes) * time.Minute)
		r.plannedStart = &start
		r.plannedEnd = &end
	}
	return nil
}

// Start begins execution of a Planned route.
func (r *Route) Start(now time.Time) error {
	next, err := r.status.Start()
	if err != nil {
		return err
	}
	at := now.UTC()
	r.status = next
	r.actualStart = &at
	return nil
}

// CompleteStop marks one stop done. When it was the last open stop the route
// itself completes and finished is true.
func (r *Route) CompleteStop(stopID kernel.UUID, now time.Time) (finished bool, err error) {
	stop, err := r.Stop(stopID)
	if err != nil {
		return false, err
	}
	if r.status != InProgress {
		return false, errs.NewInvalidStateError("route", r.status.String(), "complete a stop of")
	}
	if err = stop.complete(now); err != nil {
		return false, err
	}

	for _, s := range r.stops {
		if !s.IsCompleted() {
			return false, nil
		}
	}

	next, err := r.status.Complete()
	if err != nil {
		return false, err
	}
	at := now.UTC()
	r.status = next
	r.actualEnd = &at
	return true, nil
}

// Cancel abandons the route. wasInProgress tells the caller whether vehicle
// and driver have to be released.
func (r *Route) Cancel(now time.Time) (wasInProgress bool, err error) {
	previous := r.status
	next, err := r.status.Cancel()
	if err != nil {
		return false, err
	}
	r.status = next
	if previous == InProgress {
		at := now.UTC()
		r.actualEnd = &at
	}
	return previous == InProgress, nil
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}
