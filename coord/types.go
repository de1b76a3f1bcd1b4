// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package coord

import "fmt"

// Hemisphere of a UTM coordinate.
type Hemisphere byte

const (
	North Hemisphere = 'N'
	South Hemisphere = 'S'
)

func (h Hemisphere) String() string { return string(h) }

func (h Hemisphere) MarshalText() ([]byte, error) { return []byte{byte(h)}, nil }

// Direction is the direction letter of a GMS axis (N, S, E or W).
type Direction byte

const (
	DirNorth Direction = 'N'
	DirSouth Direction = 'S'
	DirEast  Direction = 'E'
	DirWest  Direction = 'W'
)

func (d Direction) String() string { return string(d) }

func (d Direction) MarshalText() ([]byte, error) { return []byte{byte(d)}, nil }

// Sign returns -1 for S and W, otherwise 1.
func (d Direction) Sign() float64 {
	if d == DirSouth || d == DirWest {
		return -1
	}
	return 1
}

// ParsedCoordinate is a validated set of coordinate fields.
//
// Implementations are UTMFields and GMSFields. Values are only produced by
// Validate (or by callers that already hold typed values).
type ParsedCoordinate interface {
	Mode() Mode
}

// UTMFields holds a validated UTM coordinate.
type UTMFields struct {
	Easting    float64    `json:"easting"`
	Northing   float64    `json:"northing"`
	Zone       int        `json:"zone"`
	Hemisphere Hemisphere `json:"hemisphere"`
}

func (UTMFields) Mode() Mode { return ModeUTM }

func (u UTMFields) String() string {
	return fmt.Sprintf("%d%s %.0f %.0f", u.Zone, u.Hemisphere, u.Easting, u.Northing)
}

// GMSFields holds a validated degrees/minutes/seconds coordinate.
type GMSFields struct {
	LatDeg float64   `json:"lat_deg"`
	LatMin float64   `json:"lat_min"`
	LatSec float64   `json:"lat_sec"`
	LatDir Direction `json:"lat_dir"`
	LonDeg float64   `json:"lon_deg"`
	LonMin float64   `json:"lon_min"`
	LonSec float64   `json:"lon_sec"`
	LonDir Direction `json:"lon_dir"`
}

func (GMSFields) Mode() Mode { return ModeGMS }

// DecimalCoordinate is a signed decimal-degree position.
type DecimalCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c DecimalCoordinate) String() string {
	return fmt.Sprintf("Lat: %.6f\nLon: %.6f", c.Lat, c.Lng)
}

// Valid reports whether the coordinate is within [-90,90] and [-180,180].
func (c DecimalCoordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
