package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingLocator struct{ err error }

func (f failingLocator) Locate(ctx context.Context) (Fix, error) {
	return Fix{}, f.err
}

func TestMapsURL(t *testing.T) {
	cases := []struct {
		fix      Fix
		expected string
	}{
		{Fix{Latitude: 10.0, Longitude: 20.0}, "https://www.google.com/maps?q=10,20"},
		{Fix{Latitude: 43.6532, Longitude: -79.3832}, "https://www.google.com/maps?q=43.6532,-79.3832"},
		{Fix{Latitude: -0.5, Longitude: 0}, "https://www.google.com/maps?q=-0.5,0"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.fix.MapsURL())
	}
}

func TestStatic(t *testing.T) {
	fix, err := NewStatic(Fix{Latitude: 1, Longitude: 2}).Locate(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, Fix{Latitude: 1, Longitude: 2}, fix)

	var denied *Static
	_, err = denied.Locate(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	fix, err := Chain{failingLocator{boom}, NewStatic(Fix{Latitude: 5})}.Locate(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 5.0, fix.Latitude)

	_, err = Chain{failingLocator{boom}, failingLocator{ErrNoFix}}.Locate(ctx)
	assert.ErrorIs(t, err, boom, "Should report the first error")

	_, err = Chain{}.Locate(ctx)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	var geoIP *GeoIP
	_, err = Chain{nil, geoIP.ForIP("127.0.0.1")}.Locate(ctx)
	assert.ErrorIs(t, err, ErrPermissionDenied, "A missing geoip db should read as no permission")
}
