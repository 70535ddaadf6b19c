package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude = 180.0
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude = 90.0

	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// MetersPerKm converts kilometers to meters for radius comparisons.
	MetersPerKm = 1000.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created via the
// NewGeoPoint constructor to ensure coordinate validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic location as a longitude/latitude pair in
// decimal degrees. GeoPoint is an immutable value object: once attached to a
// persisted entity it changes only through an explicit location-update
// operation on that entity.
//
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(36.54, 31.99)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Pickup: %s", point) // Output: GeoPoint(36.540000,31.990000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	longitude float64
	latitude  float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Longitude must be within [MinLongitude..MaxLongitude] and latitude within
// [MinLatitude..MaxLatitude]. Returns an aggregated error if either
// coordinate is outside its valid bounds.
func NewGeoPoint(longitude, latitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLongitude(longitude), point.setLatitude(latitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// OriginGeoPoint returns the (0,0) point used as the placeholder location
// for couriers registered without an address. It is overwritten by the
// courier's first position update.
func OriginGeoPoint() GeoPoint {
	point, _ := NewGeoPoint(0, 0)
	return point
}

// Validate checks if the GeoPoint was properly constructed.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// String returns a human-readable representation in the format
// "GeoPoint(longitude,latitude)". Implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.longitude, p.latitude)
}

// IsEqual compares two geo points for equality of coordinates.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.longitude == other.longitude && p.latitude == other.latitude, nil
}

// DistanceKmTo calculates the great-circle distance to another point in
// kilometers using the haversine formula with EarthRadiusKm.
//
// The distance is symmetric (a.DistanceKmTo(b) == b.DistanceKmTo(a)), never
// negative, and zero (up to floating-point epsilon) for identical points.
// Both points must be properly constructed for the calculation to succeed.
func (p GeoPoint) DistanceKmTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	const degToRad = math.Pi / 180
	dLat := (other.latitude - p.latitude) * degToRad
	dLon := (other.longitude - p.longitude) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p.latitude*degToRad)*math.Cos(other.latitude*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// DistanceMetersTo calculates the great-circle distance to another point in
// meters. Radius limits throughout the system are expressed in meters.
func (p GeoPoint) DistanceMetersTo(other GeoPoint) (float64, error) {
	km, err := p.DistanceKmTo(other)
	if err != nil {
		return 0, err
	}
	return km * MetersPerKm, nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}

// setLatitude sets the latitude with validation.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}
