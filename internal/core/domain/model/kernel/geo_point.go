package kernel

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	EarthRadiusKm = 6371.0

	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a WGS84 coordinate in decimal degrees.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint requires lat in [-90, 90] and lon in [-180, 180].
//
// Example:
//
//	p, err := kernel.NewGeoPoint(41.0082, 28.9784)
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// NewOptionalGeoPoint builds a point only when both coordinates are present.
// A half-specified pair is rejected.
func NewOptionalGeoPoint(lat, lon *float64) (*GeoPoint, error) {
	if lat == nil && lon == nil {
		return nil, nil //nolint:nilnil // absent location is a valid outcome
	}
	if lat == nil || lon == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("location",
			errors.New("latitude and longitude must be given together"))
	}
	p, err := NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the coordinate ranges.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Lat() float64 {
	return p.lat
}

func (p GeoPoint) Lon() float64 {
	return p.lon
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lon)
}

func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// DistanceKm returns the great-circle distance to other in kilometres.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	return HaversineKm(p, other)
}

// HaversineKm is the haversine great-circle distance on a sphere of radius
// EarthRadiusKm. It is symmetric and zero for identical points.
func HaversineKm(a, b GeoPoint) (float64, error) {
	if err := errors.Join(a.Validate(), b.Validate()); err != nil {
		return 0, err
	}
	if a.IsEqual(b) {
		return 0, nil
	}

	lat1 := toRadians(a.lat)
	lat2 := toRadians(b.lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.lon - a.lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push h slightly above 1 for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h)), nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if math.IsNaN(lon) || lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
