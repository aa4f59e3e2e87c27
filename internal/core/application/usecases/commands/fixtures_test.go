package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const actor = "dispatcher@acme.test"

func point(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newVehicle(t *testing.T, status vehicle.Status) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "34 ABC 123", 1200, status, 1)
	require.NoError(t, err)
	return v
}

func newDriver(t *testing.T, available bool) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Deniz Kaya", "B-100200", available, 4, 3, 1)
	require.NoError(t, err)
	return d
}

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(kernel.NewUUID(), "Acme Ltd", "ops@acme.test", 2, money(t, "250.00"), 1)
	require.NoError(t, err)
	return c
}

type shipmentOpts struct {
	status    shipment.Status
	dest      kernel.GeoPoint
	vehicleID *kernel.UUID
	driverID  *kernel.UUID
}

func newShipment(t *testing.T, customerID kernel.UUID, opts shipmentOpts) *shipment.Shipment {
	t.Helper()

	ref, err := shipment.NewReference(2025, 7)
	require.NoError(t, err)
	token, err := shipment.NewTrackingToken()
	require.NoError(t, err)
	origin, err := shipment.NewAddress("Tuzla Depo, Istanbul", nil)
	require.NoError(t, err)
	dest := opts.dest
	if dest.Validate() != nil {
		dest = point(t, 41.05, 29.00)
	}
	destination, err := shipment.NewAddress("Levent, Istanbul", &dest)
	require.NoError(t, err)
	pricing, err := shipment.NewPricing(money(t, "100.00"), money(t, "20.00"), money(t, "10.00"))
	require.NoError(t, err)
	status := opts.status
	if status == shipment.Unknown {
		status = shipment.Pending
	}

	s, err := shipment.RestoreShipment(shipment.Snapshot{
		ID:            kernel.NewUUID(),
		Reference:     ref,
		TrackingToken: token,
		CustomerID:    customerID,
		Origin:        origin,
		Destination:   destination,
		Pricing:       pricing,
		Status:        status,
		VehicleID:     opts.vehicleID,
		DriverID:      opts.driverID,
		CreatedAt:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Version:       1,
	})
	require.NoError(t, err)
	return s
}

// newRoute restores a route with stopCount stops of which the first
// completedStops are done.
func newRoute(
	t *testing.T,
	status route.Status,
	vehicleID, driverID *kernel.UUID,
	stopCount, completedStops int,
) *route.Route {
	t.Helper()

	stops := make([]*route.Stop, 0, stopCount)
	doneAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	for i := range stopCount {
		var completedAt *time.Time
		if i < completedStops {
			completedAt = &doneAt
		}
		stop, err := route.RestoreStop(kernel.NewUUID(), kernel.NewUUID(), i+1, route.Delivery,
			nil, nil, completedAt, route.DefaultServiceTimeMinutes, i < completedStops, completedAt)
		require.NoError(t, err)
		stops = append(stops, stop)
	}

	r, err := route.RestoreRoute(route.Snapshot{
		ID:            kernel.NewUUID(),
		Name:          "Route - 02.03.2025 08:00",
		VehicleID:     vehicleID,
		DriverID:      driverID,
		Status:        status,
		StartLocation: "Tuzla Depo",
		StartPoint:    point(t, 40.99, 29.10),
		Metrics:       route.Metrics{TotalDistanceKm: 12.5, DurationMinutes: 19},
		Stops:         stops,
		CreatedAt:     time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
		Version:       1,
	})
	require.NoError(t, err)
	return r
}

func newInvoice(t *testing.T, status invoice.Status, dueDate time.Time) *invoice.Invoice {
	t.Helper()

	number, err := invoice.NewNumber(2025, 3)
	require.NoError(t, err)
	shipmentID := kernel.NewUUID()
	item, err := invoice.NewItem(kernel.NewUUID(), &shipmentID, "Shipment SHP-2025-00007", 1, money(t, "110.00"))
	require.NoError(t, err)

	inv, err := invoice.RestoreInvoice(invoice.Snapshot{
		ID:         kernel.NewUUID(),
		Number:     number,
		CustomerID: kernel.NewUUID(),
		Status:     status,
		IssueDate:  dueDate.AddDate(0, 0, -30),
		DueDate:    dueDate,
		Items:      []invoice.Item{item},
		TaxRate:    decimal.NewFromInt(20),
		Discount:   kernel.ZeroMoney(),
		Version:    1,
	})
	require.NoError(t, err)
	return inv
}

func ptr[T any](v T) *T {
	return &v
}
