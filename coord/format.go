// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package coord

import (
	"fmt"
	"math"
	"strings"

	"github.com/pd0mz/go-maidenhead"
)

// Style is an output rendering of a DecimalCoordinate.
type Style int

const (
	StyleSigned  Style = iota // -15.500000 -47.922222
	StyleDecimal              // 15.5000S 47.9222W
	StyleDegMin               // 15-30.00S 047-55.33W
	StyleDMS                  // 15°30'00.0"S 047°55'20.0"W
	StyleGrid                 // GH64AM
)

var styleNames = []string{"signed", "decimal", "degmin", "dms", "grid"}

// Styles lists all output styles.
var Styles = []Style{StyleSigned, StyleDecimal, StyleDegMin, StyleDMS, StyleGrid}

func (s Style) String() string {
	if int(s) >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

func ParseStyle(str string) (Style, error) {
	for i, name := range styleNames {
		if strings.EqualFold(name, strings.TrimSpace(str)) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("unknown style %q (expected one of %s)", str, strings.Join(styleNames, ", "))
}

const notAvailable = "(not available)"

// Format renders the coordinate in the given style.
func Format(c DecimalCoordinate, style Style) string {
	northing, easting := "N", "E"
	if c.Lat < 0 {
		northing = "S"
	}
	if c.Lng < 0 {
		easting = "W"
	}
	lat, lng := math.Abs(c.Lat), math.Abs(c.Lng)

	switch style {
	case StyleSigned:
		return fmt.Sprintf("%.6f %.6f", c.Lat, c.Lng)
	case StyleDecimal:
		return fmt.Sprintf("%.4f%s %.4f%s", lat, northing, lng, easting)
	case StyleDegMin:
		latDeg, latMin := splitDegrees(lat, 2)
		lngDeg, lngMin := splitDegrees(lng, 2)
		return fmt.Sprintf("%02d-%05.2f%s %03d-%05.2f%s", latDeg, latMin, northing, lngDeg, lngMin, easting)
	case StyleDMS:
		return fmt.Sprintf("%s%s %s%s", formatDMS(lat, 2), northing, formatDMS(lng, 3), easting)
	case StyleGrid:
		str, err := maidenhead.NewPoint(c.Lat, c.Lng).GridSquare()
		if err != nil {
			return notAvailable
		}
		return str
	default:
		return notAvailable
	}
}

// splitDegrees splits decimal degrees into whole degrees and minutes,
// carrying minutes that would round up to 60 at the given precision.
func splitDegrees(v float64, prec int) (int, float64) {
	deg := math.Trunc(v)
	min := (v - deg) * 60
	scale := math.Pow(10, float64(prec))
	if math.Round(min*scale)/scale >= 60 {
		deg, min = deg+1, 0
	}
	return int(deg), min
}

func formatDMS(v float64, degWidth int) string {
	// Work in tenths of a second to keep the carry exact.
	tenths := int64(math.Round(v * 36000))
	deg := tenths / 36000
	min := tenths % 36000 / 600
	sec := float64(tenths%600) / 10
	return fmt.Sprintf("%0*d°%02d'%04.1f\"", degWidth, deg, min, sec)
}
