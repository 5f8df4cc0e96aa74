package kernel

import (
	"errors"
	"fmt"
	"math"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero-value GeoPoint is used.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is an immutable WGS84 coordinate expressed in decimal degrees.
//
// Example:
//
//	bogota, _ := kernel.NewGeoPoint(4.60, -74.08)
//	cartagena, _ := kernel.NewGeoPoint(10.40, -75.51)
//	km, _ := bogota.DistanceKm(cartagena) // ~664
type GeoPoint struct { //nolint:recvcheck // pointer receivers only on construction setters
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates latitude in [-90..90] and longitude in [-180..180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// NewOptionalGeoPoint builds a point only when both coordinates are present.
// A single missing coordinate yields nil, matching addresses that were captured
// without geocoding.
func NewOptionalGeoPoint(latitude, longitude *float64) (*GeoPoint, error) {
	if latitude == nil || longitude == nil {
		return nil, nil //nolint:nilnil // absent coordinates are allowed
	}
	p, err := NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// DistanceKm returns the great-circle distance to other using the haversine formula:
//
//	a = sin²(Δφ/2) + cos(φ1)·cos(φ2)·sin²(Δλ/2)
//	d = 2·R·atan2(√a, √(1−a))
//
// where φ is latitude and λ longitude in radians and R = EarthRadiusKm.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	phi1 := toRadians(p.latitude)
	phi2 := toRadians(other.latitude)
	dPhi := toRadians(other.latitude - p.latitude)
	dLambda := toRadians(other.longitude - p.longitude)

	sinDPhi := math.Sin(dPhi / 2)
	sinDLambda := math.Sin(dLambda / 2)
	a := sinDPhi*sinDPhi + math.Cos(phi1)*math.Cos(phi2)*sinDLambda*sinDLambda
	// rounding can push a just outside [0,1] for antipodal points
	a = math.Min(1, math.Max(0, a))

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)), nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}
	p.longitude = longitude
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
