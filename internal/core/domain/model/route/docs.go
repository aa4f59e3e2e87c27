// Package route provides the Route aggregate: an ordered plan of stops for
// one vehicle and optionally one driver.
//
// Route status transitions:
//
//	Draft ──> Planned ──> InProgress ──> Completed
//	  │          │            │
//	  └──────────┴────────────┴──> Cancelled
//
// Stops are created together with their route and are mutated only by
// CompleteStop. Sequence numbers are 1-based and unique within a route.
package route
