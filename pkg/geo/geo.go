package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKM is the mean Earth radius used for great-circle math.
const EarthRadiusKM = 6371.0

// averageUrbanSpeedKMH is the assumed ambulance speed for ETA estimates.
const averageUrbanSpeedKMH = 40.0

// TrafficCondition scales an ETA estimate.
type TrafficCondition string

const (
	TrafficLight  TrafficCondition = "light"
	TrafficNormal TrafficCondition = "normal"
	TrafficHeavy  TrafficCondition = "heavy"
	TrafficSevere TrafficCondition = "severe"
)

var trafficMultipliers = map[TrafficCondition]float64{
	TrafficLight:  0.8,
	TrafficNormal: 1.0,
	TrafficHeavy:  1.5,
	TrafficSevere: 2.0,
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := radians(lat1)
	lon1Rad := radians(lon1)
	lat2Rad := radians(lat2)
	lon2Rad := radians(lon2)

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

// ValidCoordinates reports whether a pair is a plausible location.
// (0, 0) is rejected because it almost always means an unset value.
func ValidCoordinates(lat, lon float64) bool {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	if lat == 0 && lon == 0 {
		return false
	}
	return true
}

// BoundingBox is an axis-aligned latitude/longitude rectangle.
type BoundingBox struct {
	MinLat float64 `json:"min_latitude"`
	MaxLat float64 `json:"max_latitude"`
	MinLon float64 `json:"min_longitude"`
	MaxLon float64 `json:"max_longitude"`
}

// KenyaBounds is the approximate service area; used for advisory checks only.
var KenyaBounds = BoundingBox{MinLat: -4.9, MaxLat: 5.0, MinLon: 33.9, MaxLon: 41.9}

// Contains reports whether the point lies inside the box.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// BoundingBoxAround computes the bounding box covering radiusKM around a point.
func BoundingBoxAround(lat, lon, radiusKM float64) BoundingBox {
	latRad := radians(lat)
	lonRad := radians(lon)
	angular := radiusKM / EarthRadiusKM

	deltaLon := math.Asin(math.Sin(angular) / math.Cos(latRad))

	return BoundingBox{
		MinLat: degrees(latRad - angular),
		MaxLat: degrees(latRad + angular),
		MinLon: degrees(lonRad - deltaLon),
		MaxLon: degrees(lonRad + deltaLon),
	}
}

// Bearing returns the initial compass bearing from point 1 to point 2 in degrees.
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := radians(lat1)
	lat2Rad := radians(lat2)
	dLon := radians(lon2) - radians(lon1)

	x := math.Sin(dLon) * math.Cos(lat2Rad)
	y := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLon)

	bearing := degrees(math.Atan2(x, y))
	return math.Mod(bearing+360, 360)
}

// CardinalDirection converts a bearing in degrees to one of the eight compass points.
func CardinalDirection(bearing float64) string {
	directions := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	index := int(math.Round(bearing/45)) % 8
	return directions[index]
}

// Midpoint returns the geographic midpoint between two coordinates.
func Midpoint(lat1, lon1, lat2, lon2 float64) (float64, float64) {
	lat1Rad := radians(lat1)
	lon1Rad := radians(lon1)
	lat2Rad := radians(lat2)
	dLon := radians(lon2) - lon1Rad

	bx := math.Cos(lat2Rad) * math.Cos(dLon)
	by := math.Cos(lat2Rad) * math.Sin(dLon)

	midLat := math.Atan2(
		math.Sin(lat1Rad)+math.Sin(lat2Rad),
		math.Sqrt((math.Cos(lat1Rad)+bx)*(math.Cos(lat1Rad)+bx)+by*by),
	)
	midLon := lon1Rad + math.Atan2(by, math.Cos(lat1Rad)+bx)

	return degrees(midLat), degrees(midLon)
}

// DestinationPoint returns the point reached by travelling distanceKM from
// (lat, lon) along the given bearing.
func DestinationPoint(lat, lon, bearing, distanceKM float64) (float64, float64) {
	latRad := radians(lat)
	lonRad := radians(lon)
	bearingRad := radians(bearing)
	angular := distanceKM / EarthRadiusKM

	destLat := math.Asin(
		math.Sin(latRad)*math.Cos(angular) +
			math.Cos(latRad)*math.Sin(angular)*math.Cos(bearingRad),
	)
	destLon := lonRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(destLat),
	)

	return degrees(destLat), degrees(destLon)
}

// EstimateETAMinutes estimates travel time in minutes assuming urban driving.
// Never returns less than 5 minutes.
func EstimateETAMinutes(distanceKM float64) int {
	timeHours := distanceKM / averageUrbanSpeedKMH
	minutes := int(timeHours * 60)
	if minutes < 5 {
		return 5
	}
	return minutes
}

// AdjustETAForTraffic scales an ETA estimate by the current traffic condition.
func AdjustETAForTraffic(minutes int, condition TrafficCondition) int {
	multiplier, ok := trafficMultipliers[condition]
	if !ok {
		multiplier = 1.0
	}
	return int(float64(minutes) * multiplier)
}

// TravelTimeHours returns the time needed to cover distanceKM at speedKMH.
func TravelTimeHours(distanceKM, speedKMH float64) float64 {
	if speedKMH <= 0 {
		return math.Inf(1)
	}
	return distanceKM / speedKMH
}

// FormatDistance renders a distance in meters in a human-readable way.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(meters))
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

// FormatDuration renders a duration in seconds in a human-readable way.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", int(seconds))
	case seconds < 3600:
		return fmt.Sprintf("%dmin", int(seconds/60))
	default:
		return fmt.Sprintf("%.1fh", seconds/3600)
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
