// Package geolocation wraps the external maps provider behind small
// interfaces so services can be tested without network access.
package geolocation

import "context"

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address is a resolved street address.
type Address struct {
	FormattedAddress string `json:"formatted_address"`
	City             string `json:"city,omitempty"`
	County           string `json:"county,omitempty"`
	Country          string `json:"country,omitempty"`
	PlaceID          string `json:"place_id,omitempty"`
}

// Geocoder resolves between addresses and coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinate, *Address, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*Address, error)
}

// MatrixElement is one origin/destination cell of a travel-time matrix.
// OK is false when the provider could not route the pair.
type MatrixElement struct {
	OK              bool
	DistanceMeters  int
	DurationSeconds int
}

// DistanceProvider computes road distance and travel time between points.
type DistanceProvider interface {
	Matrix(ctx context.Context, origins, destinations []Coordinate, mode string) ([][]MatrixElement, error)
}
