// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

// Package coord implements the coordinate text pipeline: input masking,
// validation and conversion of UTM and GMS (degrees, minutes, seconds)
// notations into decimal degrees.
package coord

import (
	"fmt"
	"strings"
)

// Mode is the notation the user is typing in.
type Mode int

const (
	ModeUTM Mode = iota
	ModeGMS
)

func (m Mode) String() string {
	switch m {
	case ModeUTM:
		return "utm"
	case ModeGMS:
		return "gms"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(p []byte) error {
	v, err := ParseMode(string(p))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Decode implements envconfig.Decoder.
func (m *Mode) Decode(value string) error { return m.UnmarshalText([]byte(value)) }

func ParseMode(str string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "utm":
		return ModeUTM, nil
	case "gms", "dms":
		return ModeGMS, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (expected utm or gms)", str)
	}
}

// Modes lists all supported modes.
var Modes = []Mode{ModeUTM, ModeGMS}

// Delimiter separates the fields of a masked coordinate string.
const Delimiter = ","

type FieldKind int

const (
	KindDigits FieldKind = iota
	KindLetter
)

// Field identifies one field of a coordinate notation.
type Field int

const (
	FieldNone Field = iota

	FieldEasting
	FieldNorthing
	FieldZone
	FieldHemisphere

	FieldLatDeg
	FieldLatMin
	FieldLatSec
	FieldLatDir
	FieldLonDeg
	FieldLonMin
	FieldLonSec
	FieldLonDir
)

var fieldNames = map[Field]string{
	FieldEasting:    "easting",
	FieldNorthing:   "northing",
	FieldZone:       "zone",
	FieldHemisphere: "hemisphere",
	FieldLatDeg:     "latitude degrees",
	FieldLatMin:     "latitude minutes",
	FieldLatSec:     "latitude seconds",
	FieldLatDir:     "latitude direction",
	FieldLonDeg:     "longitude degrees",
	FieldLonMin:     "longitude minutes",
	FieldLonSec:     "longitude seconds",
	FieldLonDir:     "longitude direction",
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// FieldSpec describes one block of the input mask.
type FieldSpec struct {
	Field    Field
	Kind     FieldKind
	MaxWidth int
	Letters  string // Allowed letters for KindLetter.
}

var (
	utmLayout = []FieldSpec{
		{FieldEasting, KindDigits, 6, ""},
		{FieldNorthing, KindDigits, 7, ""},
		{FieldZone, KindDigits, 2, ""},
		{FieldHemisphere, KindLetter, 1, "NS"},
	}
	gmsLayout = []FieldSpec{
		{FieldLatDeg, KindDigits, 2, ""},
		{FieldLatMin, KindDigits, 2, ""},
		{FieldLatSec, KindDigits, 2, ""},
		{FieldLatDir, KindLetter, 1, "NS"},
		{FieldLonDeg, KindDigits, 2, ""},
		{FieldLonMin, KindDigits, 2, ""},
		{FieldLonSec, KindDigits, 2, ""},
		{FieldLonDir, KindLetter, 1, "EW"},
	}
)

// Layout returns the ordered field layout of the given mode.
func Layout(m Mode) []FieldSpec {
	if m == ModeGMS {
		return gmsLayout
	}
	return utmLayout
}

// Alphabet returns the direction letters accepted by the mode's input mask.
func Alphabet(m Mode) string {
	if m == ModeGMS {
		return "NSEW"
	}
	return "NS"
}

// Example returns a placeholder showing the expected input for the mode.
func Example(m Mode) string {
	if m == ModeGMS {
		return `15,46,48,S,47,55,45,W`
	}
	return `500000,8250000,23,S`
}
