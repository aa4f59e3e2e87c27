package services

import (
	"math"

	"logistics/internal/core/domain/model/kernel"
)

// AverageSpeedKmh is the assumed speed used to turn distance into duration.
const AverageSpeedKmh = 50.0

// StopInput is a shipment to visit. A nil Destination has no coordinates.
type StopInput struct {
	ShipmentID  kernel.UUID
	Destination *kernel.GeoPoint
}

// SequencedStop is a stop in visiting order with its leg distance.
type SequencedStop struct {
	ShipmentID           kernel.UUID
	Sequence             int
	LegDistanceKm        float64
	CumulativeDistanceKm float64
}

// SequencePlan is the outcome of RouteSequencer.Sequence.
type SequencePlan struct {
	Stops           []SequencedStop
	TotalDistanceKm float64
	DurationMinutes int
}

// RouteSequencer orders stops with the greedy nearest-neighbour heuristic.
// It is O(n²) in the number of stops.
type RouteSequencer struct{}

// NewRouteSequencer returns a stateless sequencer.
func NewRouteSequencer() RouteSequencer {
	return RouteSequencer{}
}

// Sequence starts at start and repeatedly visits the closest remaining stop.
// Ties go to the stop that came first in the input. A stop without
// coordinates is at distance 0 from the current position and does not move it.
// Empty input yields an empty plan.
func (s RouteSequencer) Sequence(stops []StopInput, start kernel.GeoPoint) (SequencePlan, error) {
	if err := start.Validate(); err != nil {
		return SequencePlan{}, err
	}
	for _, stop := range stops {
		if err := stop.ShipmentID.Validate(); err != nil {
			return SequencePlan{}, err
		}
		if stop.Destination != nil {
			if err := stop.Destination.Validate(); err != nil {
				return SequencePlan{}, err
			}
		}
	}

	plan := SequencePlan{Stops: make([]SequencedStop, 0, len(stops))}
	remaining := make([]StopInput, len(stops))
	copy(remaining, stops)
	current := start

	for len(remaining) > 0 {
		bestIdx, bestDistance, err := s.findNearest(current, remaining)
		if err != nil {
			return SequencePlan{}, err
		}

		next := remaining[bestIdx]
		plan.TotalDistanceKm += bestDistance
		plan.Stops = append(plan.Stops, SequencedStop{
			ShipmentID:           next.ShipmentID,
			Sequence:             len(plan.Stops) + 1,
			LegDistanceKm:        bestDistance,
			CumulativeDistanceKm: plan.TotalDistanceKm,
		})
		if next.Destination != nil {
			current = *next.Destination
		}
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	plan.DurationMinutes = EstimateDurationMinutes(plan.TotalDistanceKm)
	return plan, nil
}

func (s RouteSequencer) findNearest(current kernel.GeoPoint, remaining []StopInput) (int, float64, error) {
	var (
		bestIdx      = -1
		bestDistance = math.MaxFloat64
	)

	for i, stop := range remaining {
		distance := 0.0
		if stop.Destination != nil {
			d, err := kernel.HaversineKm(current, *stop.Destination)
			if err != nil {
				return 0, 0, err
			}
			distance = d
		}

		// strict comparison keeps the earliest stop on ties
		if distance < bestDistance {
			bestIdx = i
			bestDistance = distance
		}
	}

	return bestIdx, bestDistance, nil
}

// EstimateDurationMinutes converts distance at AverageSpeedKmh, rounded to the nearest minute.
func EstimateDurationMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / AverageSpeedKmh * 60))
}
