package location

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// GeoIP looks up a coarse location for an IP address in a MaxMind
// GeoLite2/GeoIP2 City database.
type GeoIP struct {
	db *geoip2.Reader
}

func NewGeoIP(dbPath string) (*GeoIP, error) {
	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("NewGeoIP: %v", err)
	}
	return &GeoIP{db: db}, nil
}

func (g *GeoIP) Close() error {
	return g.db.Close()
}

// ForIP returns a Locator for the given IP address
func (g *GeoIP) ForIP(ip string) Locator {
	return geoIPLocator{geoIP: g, ip: ip}
}

func (g *GeoIP) lookup(ip string) (Fix, error) {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return Fix{}, fmt.Errorf("invalid IP address %q", ip)
	}

	record, err := g.db.City(parsedIP)
	if err != nil {
		return Fix{}, err
	}

	if record.Location.Latitude == 0 && record.Location.Longitude == 0 && record.Location.AccuracyRadius == 0 {
		return Fix{}, ErrNoFix
	}

	return Fix{
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
		Accuracy:  float64(record.Location.AccuracyRadius) * 1000,
	}, nil
}

type geoIPLocator struct {
	geoIP *GeoIP
	ip    string
}

func (l geoIPLocator) Locate(ctx context.Context) (Fix, error) {
	if l.geoIP == nil {
		return Fix{}, ErrPermissionDenied
	}
	return l.geoIP.lookup(l.ip)
}
