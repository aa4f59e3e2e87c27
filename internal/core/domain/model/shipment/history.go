package shipment

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is one row of the append-only status log. It records the new
// status only, never the previous one.
type HistoryEntry struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	status     Status
	actor      string
	notes      string
	point      *kernel.GeoPoint
	address    string
	recordedAt time.Time

	isConstructed bool
}

// NewHistoryEntry records a status reached by a shipment at recordedAt.
func NewHistoryEntry(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status Status,
	actor string,
	notes string,
	point *kernel.GeoPoint,
	address string,
	recordedAt time.Time,
) (HistoryEntry, error) {
	actor = strings.TrimSpace(actor)

	var pointErr error
	if point != nil {
		pointErr = point.Validate()
	}
	var actorErr error
	if actor == "" {
		actorErr = errs.NewValueIsRequiredError("actor")
	}
	var timeErr error
	if recordedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("recorded at")
	}
	if err := errors.Join(id.Validate(), shipmentID.Validate(), status.Validate(), pointErr, actorErr, timeErr); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:            id,
		shipmentID:    shipmentID,
		status:        status,
		actor:         actor,
		notes:         strings.TrimSpace(notes),
		point:         point,
		address:       strings.TrimSpace(address),
		recordedAt:    recordedAt.UTC(),
		isConstructed: true,
	}, nil
}

// Validate reports a zero entry.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

func (h HistoryEntry) ID() kernel.UUID         { return h.id }
func (h HistoryEntry) ShipmentID() kernel.UUID { return h.shipmentID }
func (h HistoryEntry) Status() Status          { return h.status }
func (h HistoryEntry) Actor() string           { return h.actor }
func (h HistoryEntry) Notes() string           { return h.notes }
func (h HistoryEntry) Point() *kernel.GeoPoint { return h.point }
func (h HistoryEntry) Address() string         { return h.address }
func (h HistoryEntry) RecordedAt() time.Time   { return h.recordedAt }
