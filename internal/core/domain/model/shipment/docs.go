// Package shipment provides the Shipment aggregate, its status state machine,
// tracking identifiers and the append-only status history.
//
// Allowed status transitions:
//
//	Pending    -> Confirmed, Dispatched, Cancelled
//	Confirmed  -> Dispatched, Cancelled
//	Dispatched -> InTransit, Delivered, Cancelled
//	InTransit  -> Delivered, Cancelled
//
// Delivered and Cancelled are final. The total price is always derived from
// price, extra charges and discount and is never stored on its own.
package shipment
