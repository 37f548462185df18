package tool

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// parseCoordinate extracts a latitude/longitude pair from a tool input
// string. It accepts a JSON object ({"lat": 27.98, "lon": 86.92}, long key
// names included) or a bare "lat,lon" pair.
func parseCoordinate(input string) (lat, lon float64, err error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "{") {
		var obj struct {
			Lat       *float64 `json:"lat"`
			Lon       *float64 `json:"lon"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		}
		if err := json.Unmarshal([]byte(input), &obj); err != nil {
			return 0, 0, fmt.Errorf("invalid coordinate input: %w", err)
		}
		if obj.Lat == nil {
			obj.Lat = obj.Latitude
		}
		if obj.Lon == nil {
			obj.Lon = obj.Longitude
		}
		if obj.Lat == nil || obj.Lon == nil {
			return 0, 0, fmt.Errorf("coordinate input missing lat/lon: %q", input)
		}
		return *obj.Lat, *obj.Lon, nil
	}

	parts := splitNumbers(input)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected 'lat,lon', got %q", input)
	}
	lat, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return lat, lon, nil
}

// parseBoundingBox extracts west/south/east/north from a JSON object or a
// "west,south,east,north" list.
func parseBoundingBox(input string) (west, south, east, north float64, err error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "{") {
		var obj struct {
			West  *float64 `json:"west"`
			South *float64 `json:"south"`
			East  *float64 `json:"east"`
			North *float64 `json:"north"`
		}
		if err := json.Unmarshal([]byte(input), &obj); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("invalid bounding box input: %w", err)
		}
		if obj.West == nil || obj.South == nil || obj.East == nil || obj.North == nil {
			return 0, 0, 0, 0, fmt.Errorf("bounding box input missing a side: %q", input)
		}
		return *obj.West, *obj.South, *obj.East, *obj.North, nil
	}

	parts := splitNumbers(input)
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("expected 'west,south,east,north', got %q", input)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("invalid bound %q: %w", p, err)
		}
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

func splitNumbers(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
