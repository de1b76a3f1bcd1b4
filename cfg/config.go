// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package cfg

import (
	"fmt"
	"strings"

	"github.com/geoconv/geoconv/coord"
)

// LatLng is a position in signed decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l LatLng) Coordinate() coord.DecimalCoordinate {
	return coord.DecimalCoordinate{Lat: l.Lat, Lng: l.Lng}
}

// Decode implements envconfig.Decoder ("lat,lng").
func (l *LatLng) Decode(value string) error {
	_, err := fmt.Sscanf(strings.ReplaceAll(value, " ", ""), "%g,%g", &l.Lat, &l.Lng)
	if err != nil {
		return fmt.Errorf("invalid position %q (expected lat,lng): %w", value, err)
	}
	return nil
}

type Config struct {
	// The coordinate notation selected at startup (utm or gms).
	DefaultMode coord.Mode `json:"default_mode" envconfig:"DEFAULT_MODE"`

	// Locale of diagnostics messages (e.g. en or pt-BR).
	Locale string `json:"locale" envconfig:"LOCALE"`

	// Default HTTP listen address (for web UI).
	//
	// Use ":8080" to listen on all interfaces.
	HTTPAddr string `json:"http_addr" envconfig:"HTTP_ADDR"`

	// Renderings printed for every converted coordinate.
	//
	// Any of signed, decimal, degmin, dms, grid.
	OutputStyles []string `json:"output_styles" envconfig:"OUTPUT_STYLES"`

	// Initial map position, reported until the first successful conversion.
	MapCenter LatLng `json:"map_center" envconfig:"MAP_CENTER"`

	// Endpoint queried by version --check.
	VersionCheckURL string `json:"version_check_url" envconfig:"VERSION_CHECK_URL"`
}

// Styles parses OutputStyles, skipping unknown names.
func (c Config) Styles() (styles []coord.Style, unknown []string) {
	for _, s := range c.OutputStyles {
		style, err := coord.ParseStyle(s)
		if err != nil {
			unknown = append(unknown, s)
			continue
		}
		styles = append(styles, style)
	}
	return styles, unknown
}

var DefaultConfig = Config{
	DefaultMode:  coord.ModeUTM,
	Locale:       "en",
	HTTPAddr:     "localhost:8080",
	OutputStyles: []string{"signed", "dms", "grid"},
	MapCenter:    LatLng{Lat: -15.793889, Lng: -47.882778}, // Brasília
}
