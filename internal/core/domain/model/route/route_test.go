package route_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)

func newPlannedRoute(t *testing.T, stopCount int) *route.Route {
	t.Helper()

	start, err := kernel.NewGeoPoint(41.0082, 28.9784)
	require.NoError(t, err)
	vehicleID := kernel.NewUUID()
	r, err := route.NewRoute(kernel.NewUUID(), "Route - 10.05.2025 08:00", &vehicleID, nil, "Depot", start, now)
	require.NoError(t, err)

	for i := 1; i <= stopCount; i++ {
		stop, stopErr := route.NewStop(kernel.NewUUID(), kernel.NewUUID(), i, route.Delivery, nil, nil,
			route.DefaultServiceTimeMinutes)
		require.NoError(t, stopErr)
		require.NoError(t, r.AddStop(stop))
	}
	require.NoError(t, r.Plan(route.Metrics{TotalDistanceKm: 12.3456, DurationMinutes: 15}, &now))
	return r
}

func TestNewRoute(t *testing.T) {
	t.Run("should create empty draft", func(t *testing.T) {
		start, _ := kernel.NewGeoPoint(0, 0)

		r, err := route.NewRoute(kernel.NewUUID(), "r", nil, nil, "", start, now)

		require.NoError(t, err)
		assert.Equal(t, route.Draft, r.Status())
		assert.Zero(t, r.StopCount())
	})

	t.Run("should reject missing start point and name", func(t *testing.T) {
		_, err := route.NewRoute(kernel.NewUUID(), " ", nil, nil, "", kernel.GeoPoint{}, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "geo point")
	})
}

func TestRoute_Plan(t *testing.T) {
	t.Run("should round distance and derive planned end", func(t *testing.T) {
		r := newPlannedRoute(t, 2)

		assert.Equal(t, route.Planned, r.Status())
		assert.InDelta(t, 12.35, r.Metrics().TotalDistanceKm, 1e-9)
		assert.Equal(t, 2, r.StopCount())
		require.NotNil(t, r.PlannedEnd())
		assert.Equal(t, now.Add(15*time.Minute), *r.PlannedEnd())
	})

	t.Run("should refuse route without stops", func(t *testing.T) {
		start, _ := kernel.NewGeoPoint(0, 0)
		r, _ := route.NewRoute(kernel.NewUUID(), "r", nil, nil, "", start, now)

		require.ErrorIs(t, r.Plan(route.Metrics{}, nil), errs.ErrValueIsRequired)
	})

	t.Run("should refuse stops out of sequence and duplicates", func(t *testing.T) {
		start, _ := kernel.NewGeoPoint(0, 0)
		r, _ := route.NewRoute(kernel.NewUUID(), "r", nil, nil, "", start, now)
		shipmentID := kernel.NewUUID()

		second, _ := route.NewStop(kernel.NewUUID(), shipmentID, 2, route.Delivery, nil, nil, 15)
		require.ErrorIs(t, r.AddStop(second), errs.ErrValueIsInvalid)

		first, _ := route.NewStop(kernel.NewUUID(), shipmentID, 1, route.Delivery, nil, nil, 15)
		require.NoError(t, r.AddStop(first))
		again, _ := route.NewStop(kernel.NewUUID(), shipmentID, 2, route.Delivery, nil, nil, 15)
		require.ErrorIs(t, r.AddStop(again), errs.ErrValueIsInvalid)
	})

	t.Run("planned route cannot take more stops", func(t *testing.T) {
		r := newPlannedRoute(t, 1)
		stop, _ := route.NewStop(kernel.NewUUID(), kernel.NewUUID(), 2, route.Delivery, nil, nil, 15)

		require.ErrorIs(t, r.AddStop(stop), errs.ErrInvalidState)
	})
}

func TestRoute_Start(t *testing.T) {
	t.Run("planned route starts", func(t *testing.T) {
		r := newPlannedRoute(t, 1)

		require.NoError(t, r.Start(now))

		assert.Equal(t, route.InProgress, r.Status())
		require.NotNil(t, r.ActualStart())
	})

	t.Run("route in progress cannot start again", func(t *testing.T) {
		r := newPlannedRoute(t, 1)
		require.NoError(t, r.Start(now))

		err := r.Start(now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "InProgress")
	})
}

func TestRoute_CompleteStop(t *testing.T) {
	t.Run("route completes with its last stop", func(t *testing.T) {
		r := newPlannedRoute(t, 3)
		require.NoError(t, r.Start(now))
		stops := r.Stops()

		finished, err := r.CompleteStop(stops[0].ID(), now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, finished)
		finished, err = r.CompleteStop(stops[1].ID(), now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.False(t, finished)
		assert.Equal(t, route.InProgress, r.Status())

		finished, err = r.CompleteStop(stops[2].ID(), now.Add(3*time.Hour))
		require.NoError(t, err)
		assert.True(t, finished)
		assert.Equal(t, route.Completed, r.Status())
		require.NotNil(t, r.ActualEnd())
		assert.Equal(t, now.Add(3*time.Hour), *r.ActualEnd())
		assert.Equal(t, now.Add(time.Hour), *stops[0].ActualArrival())
	})

	t.Run("completing a stop twice fails", func(t *testing.T) {
		r := newPlannedRoute(t, 2)
		require.NoError(t, r.Start(now))
		stop := r.Stops()[0]
		_, err := r.CompleteStop(stop.ID(), now)
		require.NoError(t, err)
		completedAt := *stop.CompletedAt()

		_, err = r.CompleteStop(stop.ID(), now.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, completedAt, *stop.CompletedAt())
	})

	t.Run("foreign stop is not found", func(t *testing.T) {
		r := newPlannedRoute(t, 1)
		require.NoError(t, r.Start(now))

		_, err := r.CompleteStop(kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("stop of a route not started is rejected", func(t *testing.T) {
		r := newPlannedRoute(t, 1)

		_, err := r.CompleteStop(r.Stops()[0].ID(), now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.False(t, r.Stops()[0].IsCompleted())
	})
}

func TestRoute_Cancel(t *testing.T) {
	t.Run("planned route cancels without release", func(t *testing.T) {
		r := newPlannedRoute(t, 1)

		wasInProgress, err := r.Cancel(now)

		require.NoError(t, err)
		assert.False(t, wasInProgress)
		assert.Equal(t, route.Cancelled, r.Status())
	})

	t.Run("route in progress reports release", func(t *testing.T) {
		r := newPlannedRoute(t, 1)
		require.NoError(t, r.Start(now))

		wasInProgress, err := r.Cancel(now)

		require.NoError(t, err)
		assert.True(t, wasInProgress)
		assert.NotNil(t, r.ActualEnd())
	})

	t.Run("completed route cannot be cancelled", func(t *testing.T) {
		r := newPlannedRoute(t, 1)
		require.NoError(t, r.Start(now))
		_, _ = r.CompleteStop(r.Stops()[0].ID(), now)

		_, err := r.Cancel(now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRestoreRoute_RejectsGapInSequence(t *testing.T) {
	start, _ := kernel.NewGeoPoint(0, 0)
	stop, _ := route.NewStop(kernel.NewUUID(), kernel.NewUUID(), 2, route.Delivery, nil, nil, 15)

	_, err := route.RestoreRoute(route.Snapshot{
		ID: kernel.NewUUID(), Name: "r", Status: route.Planned, StartPoint: start,
		Stops: []*route.Stop{stop}, CreatedAt: now,
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewTimeWindow(t *testing.T) {
	_, err := route.NewTimeWindow(now.Add(time.Hour), now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	w, err := route.NewTimeWindow(now, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, now, w.Start())
}
