package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery looks a shipment up by its public tracking token.
//
// Example:
//
//	query, err := NewTrackShipmentQuery("9f2c4e1a0b7d4c3e8f6a5b4c3d2e1f00")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type TrackShipmentQuery struct {
	token shipment.TrackingToken

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery rejects tokens that are not 32 lowercase hex characters.
func NewTrackShipmentQuery(token string) (TrackShipmentQuery, error) {
	parsed, err := shipment.ParseTrackingToken(token)
	if err != nil {
		return TrackShipmentQuery{}, err
	}
	return TrackShipmentQuery{token: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackShipmentQuery) Token() shipment.TrackingToken {
	return q.token
}

// Validate fails for a zero value not built by NewTrackShipmentQuery.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackShipmentResponse is the public tracking view. It deliberately carries
// no vehicle, driver or customer identifiers and no prices.
type TrackShipmentResponse struct {
	Reference         string          `json:"reference"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	Status            string          `json:"status"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actualDelivery,omitempty"`
	RecipientName     string          `json:"recipientName,omitempty"`
	StatusHistory     []TrackingEvent `json:"statusHistory"`
}

// TrackingEvent is one history entry, oldest first.
type TrackingEvent struct {
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	Address    string    `json:"address,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lon        *float64  `json:"lon,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}
