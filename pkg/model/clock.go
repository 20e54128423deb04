package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrMalformedTime = errors.New("malformed time")

// ParseClock converts "HH:MM" into fractional hours.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return float64(h) + float64(m)/60, nil
}

// FormatClock converts fractional hours back to "HH:MM".
// Minutes are truncated, not rounded.
func FormatClock(dec float64) string {
	h := math.Floor(dec)
	m := int((dec - h) * 60)
	return fmt.Sprintf("%02d:%02d", int(h), m)
}
