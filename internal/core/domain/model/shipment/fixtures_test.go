package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	ref, err := shipment.NewReference(2025, 1)
	require.NoError(t, err)
	token, err := shipment.NewTrackingToken()
	require.NoError(t, err)
	dest, err := kernel.NewGeoPoint(41.05, 29.00)
	require.NoError(t, err)
	origin, err := shipment.NewAddress("Tuzla Depo, Istanbul", nil)
	require.NoError(t, err)
	destination, err := shipment.NewAddress("Levent, Istanbul", &dest)
	require.NoError(t, err)
	pricing, err := shipment.NewPricing(money(t, "100.00"), money(t, "15.00"), money(t, "5.00"))
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), ref, token, kernel.NewUUID(),
		origin, destination, pricing, nil, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return s
}

func restoreWithStatus(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s := newShipment(t)
	restored, err := shipment.RestoreShipment(shipment.Snapshot{
		ID:            s.ID(),
		Reference:     s.Reference(),
		TrackingToken: s.TrackingToken(),
		CustomerID:    s.CustomerID(),
		Origin:        s.Origin(),
		Destination:   s.Destination(),
		Pricing:       s.Pricing(),
		Status:        status,
		CreatedAt:     s.CreatedAt(),
		Version:       1,
	})
	require.NoError(t, err)
	return restored
}
