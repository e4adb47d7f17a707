package shades

import (
	"fmt"
	"strconv"
	"strings"
)

// Stops is an ordered list of lightness percentages. Pairing relies on the
// list being strictly descending, which Validate enforces.
type Stops []int

// DefaultStops is the stock twelve-step ladder
func DefaultStops() Stops {
	return Stops{98, 95, 90, 80, 70, 60, 50, 40, 30, 20, 15, 10}
}

// ParseStops parses a comma-separated list such as "95,50,10"
func ParseStops(s string) (Stops, error) {
	var stops Stops
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidStops, part)
		}
		stops = append(stops, v)
	}
	if err := stops.Validate(); err != nil {
		return nil, err
	}
	return stops, nil
}

// Validate checks the list is non-empty, within [0,100] and strictly descending
func (s Stops) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no stops configured", ErrInvalidStops)
	}
	for i, v := range s {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: %d is outside 0..100", ErrInvalidStops, v)
		}
		if i > 0 && v >= s[i-1] {
			return fmt.Errorf("%w: stops must be strictly descending (%d follows %d)", ErrInvalidStops, v, s[i-1])
		}
	}
	return nil
}

// String renders the stops the way ParseStops reads them
func (s Stops) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
