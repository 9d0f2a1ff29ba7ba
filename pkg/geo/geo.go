package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

// Unknown is reported as the country of addresses with no location data
const Unknown = "Unknown"

type (
	//Location is the result of a lookup. Latitude and Longitude are only
	//meaningful when Found is set.
	Location struct {
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Found     bool    `json:"found"`
	}

	//Resolver maps a source address to a location. A miss must not be an
	//error, the Unknown location is returned instead.
	Resolver interface {
		Resolve(ip string) Location
	}

	//DBResolver looks addresses up in a MaxMind GeoIP2 or GeoLite2 database
	DBResolver struct {
		db *geoip2.Reader
	}

	unknownResolver struct{}
)

//UnknownLocation is the location of every address a Resolver has no data for
func UnknownLocation() Location {
	return Location{Country: Unknown}
}

//NewUnknownResolver returns a Resolver placing every address in Unknown
func NewUnknownResolver() Resolver {
	return unknownResolver{}
}

func (unknownResolver) Resolve(string) Location {
	return UnknownLocation()
}

//Open loads a GeoIP2/GeoLite2 City or Country database from disk
func Open(path string) (*DBResolver, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &DBResolver{db: db}, nil
}

//Resolve looks the address up in the City data first, falling back to the
//Country data for country-only databases
func (r *DBResolver) Resolve(ip string) Location {
	addr := net.ParseIP(ip)
	if addr == nil {
		return UnknownLocation()
	}

	if record, err := r.db.City(addr); err == nil && record.Country.Names["en"] != "" {
		return Location{
			Country:   record.Country.Names["en"],
			Latitude:  record.Location.Latitude,
			Longitude: record.Location.Longitude,
			Found:     true,
		}
	}

	if record, err := r.db.Country(addr); err == nil && record.Country.Names["en"] != "" {
		return Location{Country: record.Country.Names["en"], Found: true}
	}

	return UnknownLocation()
}

//Close releases the database
func (r *DBResolver) Close() error {
	return r.db.Close()
}

//Cached memoizes the lookups of another Resolver. Reports resolve the same
//source address once per section, so this saves repeated database reads.
//Not safe for concurrent use.
type Cached struct {
	next  Resolver
	cache map[string]Location
}

//NewCached wraps a Resolver with a lookup cache
func NewCached(next Resolver) *Cached {
	return &Cached{next: next, cache: make(map[string]Location)}
}

//Resolve returns the cached location for an address, resolving it on first use
func (c *Cached) Resolve(ip string) Location {
	if loc, ok := c.cache[ip]; ok {
		return loc
	}
	loc := c.next.Resolve(ip)
	c.cache[ip] = loc
	return loc
}
