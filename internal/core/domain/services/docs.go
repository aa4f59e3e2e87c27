// Package services provides domain services that span several aggregates.
//
// The package includes:
//   - RouteSequencer: greedy nearest-neighbour ordering of stops with distance and duration estimates
//   - ShipmentStatusAdvancer: the single table of side effects a shipment status change has on its
//     vehicle, driver and customer
package services
