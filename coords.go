package transportwatcher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Coordinates is a WGS84 point as received from the API.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// coordPattern accepts "(lat,lon)" with optional spaces inside the
// parentheses. Both parentheses are mandatory.
var coordPattern = regexp.MustCompile(`^\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*\)$`)

// ParseCoordinates parses the "(lat,lon)" query parameter format and
// range-checks both components.
func ParseCoordinates(raw string) (Coordinates, error) {
	m := coordPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q: expected \"(lat,lon)\"", raw)
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q", m[1])
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q", m[2])
	}
	if lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}
