// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package coord

import (
	"fmt"
	"math"
)

// Projector is the projection engine performing the inverse Transverse
// Mercator transform for WGS84 UTM zones.
type Projector interface {
	// Inverse projects a UTM easting/northing pair in the given zone and
	// hemisphere into geodetic longitude and latitude (degrees).
	Inverse(easting, northing float64, zone int, southern bool) (lon, lat float64, err error)
}

// ProjectorFunc adapts a function to the Projector interface.
type ProjectorFunc func(easting, northing float64, zone int, southern bool) (lon, lat float64, err error)

func (f ProjectorFunc) Inverse(easting, northing float64, zone int, southern bool) (float64, float64, error) {
	return f(easting, northing, zone, southern)
}

// GMSToDecimal converts degrees, minutes and seconds to signed decimal degrees.
//
// Each axis is converted independently as sign * (deg + min/60 + sec/3600)
// where sign is -1 for S and W.
func GMSToDecimal(g GMSFields) DecimalCoordinate {
	return DecimalCoordinate{
		Lat: dmsToDecimal(g.LatDeg, g.LatMin, g.LatSec, g.LatDir, 90),
		Lng: dmsToDecimal(g.LonDeg, g.LonMin, g.LonSec, g.LonDir, 180),
	}
}

// dmsToDecimal caps the magnitude at limit. Validated fields only exceed it
// by float rounding.
func dmsToDecimal(deg, min, sec float64, dir Direction, limit float64) float64 {
	return dir.Sign() * math.Min(math.Abs(deg)+min/60+sec/3600, limit)
}

// UTMToDecimal converts a UTM coordinate using the projection engine.
//
// Any failure reported by the engine is returned as a ConversionFailed
// *Diagnostic.
func UTMToDecimal(p Projector, u UTMFields) (c DecimalCoordinate, err error) {
	if p == nil {
		return c, conversionFailed(ModeUTM, fmt.Errorf("no projection engine"))
	}

	// Third-party engines may panic on input they don't expect.
	defer func() {
		if r := recover(); r != nil {
			c, err = DecimalCoordinate{}, conversionFailed(ModeUTM, fmt.Errorf("projection engine: %v", r))
		}
	}()

	lon, lat, err := p.Inverse(u.Easting, u.Northing, u.Zone, u.Hemisphere == South)
	if err != nil {
		return c, conversionFailed(ModeUTM, err)
	}

	c = DecimalCoordinate{Lat: lat, Lng: lon}
	if math.IsNaN(lat) || math.IsNaN(lon) || !c.Valid() {
		return DecimalCoordinate{}, conversionFailed(ModeUTM, fmt.Errorf("projected position %.6f,%.6f is out of bounds", lat, lon))
	}
	return c, nil
}

// Convert converts a validated coordinate to decimal degrees.
//
// The error, if any, is a *Diagnostic.
func Convert(p Projector, pc ParsedCoordinate) (DecimalCoordinate, error) {
	switch v := pc.(type) {
	case GMSFields:
		return GMSToDecimal(v), nil
	case UTMFields:
		return UTMToDecimal(p, v)
	default:
		return DecimalCoordinate{}, conversionFailed(ModeUTM, fmt.Errorf("unsupported coordinate type %T", pc))
	}
}

// Parse validates and converts the given text in one step.
func Parse(p Projector, m Mode, text string) (DecimalCoordinate, error) {
	pc, err := Validate(m, text)
	if err != nil {
		return DecimalCoordinate{}, err
	}
	return Convert(p, pc)
}
