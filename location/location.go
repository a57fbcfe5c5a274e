package location

import (
	"context"
	"errors"
	"strconv"
)

var (
	// ErrPermissionDenied is returned when no source of location is available to the app
	ErrPermissionDenied = errors.New("Location permission is required for emergency services")
	ErrNoFix            = errors.New("unable to determine current location")
)

type Fix struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	// Accuracy in meters, 0 if unknown
	Accuracy float64 `json:"accuracy,omitempty" validate:"min=0"`
}

// MapsURL returns a google maps link that drops a pin on the fix
func (fix Fix) MapsURL() string {
	return "https://www.google.com/maps?q=" + formatCoordinate(fix.Latitude) + "," + formatCoordinate(fix.Longitude)
}

type Locator interface {
	// Locate returns a single, current location fix
	Locate(ctx context.Context) (Fix, error)
}

// Static always reports the same fix. A nil Static behaves as if
// location permission was denied.
type Static struct {
	fix *Fix
}

func NewStatic(fix Fix) *Static {
	return &Static{fix: &fix}
}

func (s *Static) Locate(ctx context.Context) (Fix, error) {
	if s == nil || s.fix == nil {
		return Fix{}, ErrPermissionDenied
	}
	return *s.fix, nil
}

// Chain returns the fix from the first locator that succeeds. If all fail,
// the error from the first one is returned.
type Chain []Locator

func (chain Chain) Locate(ctx context.Context) (Fix, error) {
	var firstErr error

	for _, locator := range chain {
		if locator == nil {
			continue
		}

		fix, err := locator.Locate(ctx)
		if err == nil {
			return fix, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr == nil {
		firstErr = ErrPermissionDenied
	}
	return Fix{}, firstErr
}

// formatCoordinate renders 'v' with as few digits as needed i.e. 10.0 -> "10"
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
