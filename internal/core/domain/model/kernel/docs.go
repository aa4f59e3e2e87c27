// Package kernel provides the shared value objects of the logistics domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - GeoPoint: a validated latitude/longitude pair with great-circle distance
//   - Money: a non-negative decimal amount rounded to cents
//
// All values are immutable and must be created through their constructors;
// the zero value of each type fails Validate.
package kernel
