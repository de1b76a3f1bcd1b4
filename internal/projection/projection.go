// Package projection adapts the GeoTrans based UTM converter of
// github.com/tzneal/coordconv to the coord.Projector interface.
package projection

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"

	"github.com/geoconv/geoconv/coord"
)

var ErrZoneOutOfRange = errors.New("zone out of range")

// UTM is a projected position.
type UTM struct {
	Easting  float64 `json:"easting"`
	Northing float64 `json:"northing"`
	Zone     int     `json:"zone"`
	Southern bool    `json:"southern"`
}

func (u UTM) Fields() coord.UTMFields {
	h := coord.North
	if u.Southern {
		h = coord.South
	}
	return coord.UTMFields{Easting: u.Easting, Northing: u.Northing, Zone: u.Zone, Hemisphere: h}
}

// WGS84 projects between geodetic WGS84 positions and UTM.
type WGS84 struct{}

var _ coord.Projector = WGS84{}

func (WGS84) Inverse(easting, northing float64, zone int, southern bool) (lon, lat float64, err error) {
	if zone < coord.MinZone || zone > coord.MaxZone {
		return 0, 0, fmt.Errorf("%w: %d", ErrZoneOutOfRange, zone)
	}

	hemisphere := coordconv.HemisphereNorth
	if southern {
		hemisphere = coordconv.HemisphereSouth
	}
	ll, err := coordconv.DefaultUTMConverter.ConvertToGeodetic(coordconv.UTMCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("inverse projection (zone %d): %w", zone, err)
	}
	return ll.Lng.Degrees(), ll.Lat.Degrees(), nil
}

// Forward projects lat/lng into its natural UTM zone.
func (p WGS84) Forward(lat, lng float64) (UTM, error) { return p.ForwardInZone(lat, lng, 0) }

// ForwardInZone projects lat/lng into the given zone. Zone 0 selects the
// natural zone of the position.
func (WGS84) ForwardInZone(lat, lng float64, zone int) (UTM, error) {
	if zone != 0 && (zone < coord.MinZone || zone > coord.MaxZone) {
		return UTM{}, fmt.Errorf("%w: %d", ErrZoneOutOfRange, zone)
	}

	u, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lng), zone)
	if err != nil {
		return UTM{}, fmt.Errorf("forward projection: %w", err)
	}
	return UTM{
		Easting:  u.Easting,
		Northing: u.Northing,
		Zone:     u.Zone,
		Southern: u.Hemisphere == coordconv.HemisphereSouth,
	}, nil
}

// MaxMGRSPrecision is the 1 m MGRS precision.
const MaxMGRSPrecision = 5

// ToMGRS renders lat/lng as an MGRS reference with precision digits per
// axis (1 to MaxMGRSPrecision).
func (WGS84) ToMGRS(lat, lng float64, precision int) (string, error) {
	if precision < 1 || precision > MaxMGRSPrecision {
		return "", fmt.Errorf("invalid MGRS precision %d", precision)
	}
	return coordconv.DefaultMGRSConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lng), precision)
}

// FromMGRS parses an MGRS reference.
func (WGS84) FromMGRS(ref string) (coord.DecimalCoordinate, error) {
	ll, err := coordconv.DefaultMGRSConverter.ConvertToGeodetic(ref)
	if err != nil {
		return coord.DecimalCoordinate{}, fmt.Errorf("parse MGRS %q: %w", ref, err)
	}
	return coord.DecimalCoordinate{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}, nil
}
