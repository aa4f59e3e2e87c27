// Package vehicle models a fleet vehicle and its operational status.
//
// Status transitions:
//
//	Idle ──> Transit ──> Idle
//	Idle <──> Maintenance
//
// A vehicle is in Transit only while it is bound to a route in progress or a
// dispatched shipment. Maintenance blocks dispatch.
package vehicle
