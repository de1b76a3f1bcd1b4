// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package coord

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Accepted UTM zone numbers.
const (
	MinZone = 1
	MaxZone = 60
)

var (
	reDecimal = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	reInteger = regexp.MustCompile(`^[0-9]+$`)

	errNotDecimal = errors.New("not a decimal number")
	errNotInteger = errors.New("not an integer")
)

// Validate parses masked (or hand typed) coordinate text into typed fields.
//
// Fields are separated by Delimiter. Text without any Delimiter is split on
// white space and the symbolic degree, minute and second marks instead, so
// the output of Symbolic is accepted too.
//
// All numeric fields are parsed before any range is checked. Range and
// direction checks run in field order and the first violation is reported.
// The returned error is always a *Diagnostic.
func Validate(m Mode, text string) (ParsedCoordinate, error) {
	fields := splitFields(text)
	if len(fields) != len(Layout(m)) {
		return nil, malformed(m, len(fields))
	}
	if m == ModeGMS {
		return validateGMS(fields)
	}
	return validateUTM(fields)
}

func splitFields(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.Contains(text, Delimiter) {
		parts := strings.Split(text, Delimiter)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`°'"`, r)
	})
}

func parseDecimal(str string) (float64, error) {
	if !reDecimal.MatchString(str) {
		return 0, errNotDecimal
	}
	return strconv.ParseFloat(str, 64)
}

func parseInteger(str string) (int, error) {
	if !reInteger.MatchString(str) {
		return 0, errNotInteger
	}
	return strconv.Atoi(str)
}

func parseLetter(str, allowed string) (byte, bool) {
	str = strings.ToUpper(str)
	if len(str) != 1 || !strings.Contains(allowed, str) {
		return 0, false
	}
	return str[0], true
}

func validateUTM(f []string) (ParsedCoordinate, error) {
	const m = ModeUTM

	easting, err := parseDecimal(f[0])
	if err != nil {
		return nil, invalidNumber(m, FieldEasting, f[0], err)
	}
	northing, err := parseDecimal(f[1])
	if err != nil {
		return nil, invalidNumber(m, FieldNorthing, f[1], err)
	}
	zone, err := parseInteger(f[2])
	if err != nil {
		return nil, invalidNumber(m, FieldZone, f[2], err)
	}

	if zone < MinZone || zone > MaxZone {
		return nil, outOfRange(m, FieldZone, f[2], MinZone, MaxZone, false)
	}
	hemisphere, ok := parseLetter(f[3], "NS")
	if !ok {
		return nil, invalidDirection(m, FieldHemisphere, f[3], "NS")
	}

	return UTMFields{
		Easting:    easting,
		Northing:   northing,
		Zone:       zone,
		Hemisphere: Hemisphere(hemisphere),
	}, nil
}

func validateGMS(f []string) (ParsedCoordinate, error) {
	const m = ModeGMS

	var v [8]float64
	for i, fs := range gmsLayout {
		if fs.Kind != KindDigits {
			continue
		}
		x, err := parseDecimal(f[i])
		if err != nil {
			return nil, invalidNumber(m, fs.Field, f[i], err)
		}
		v[i] = x
	}

	latDir, d := checkAxis(f, v[:], 0, 90)
	if d != nil {
		return nil, d
	}
	lonDir, d := checkAxis(f, v[:], 4, 180)
	if d != nil {
		return nil, d
	}

	return GMSFields{
		LatDeg: v[0], LatMin: v[1], LatSec: v[2], LatDir: latDir,
		LonDeg: v[4], LonMin: v[5], LonSec: v[6], LonDir: lonDir,
	}, nil
}

const axisEpsilon = 1e-9

// checkAxis validates the degrees, minutes, seconds and direction fields of
// one GMS axis starting at index base.
func checkAxis(f []string, v []float64, base int, maxDeg float64) (Direction, *Diagnostic) {
	const m = ModeGMS

	deg := gmsLayout[base]
	if v[base] > maxDeg {
		return 0, outOfRange(m, deg.Field, f[base], 0, maxDeg, false)
	}
	for i := base + 1; i <= base+2; i++ {
		if v[i] >= 60 {
			return 0, outOfRange(m, gmsLayout[i].Field, f[i], 0, 60, true)
		}
	}

	// The axis as a whole must stay within maxDeg. Report the first field
	// that pushes past it, bounded by what the earlier fields leave.
	total := v[base]
	for i, unit := base+1, 60.0; i <= base+2; i, unit = i+1, unit*60 {
		if total+v[i]/unit <= maxDeg+axisEpsilon {
			total += v[i] / unit
			continue
		}
		if v[base] == maxDeg {
			d := outOfRange(m, gmsLayout[i].Field, f[i], 0, 0, false)
			d.Related, d.RelatedValue = deg.Field, f[base]
			return 0, d
		}
		limit := math.Max(0, math.Round((maxDeg-total)*unit*1e6)/1e6)
		return 0, outOfRange(m, gmsLayout[i].Field, f[i], 0, limit, false)
	}

	dir := gmsLayout[base+3]
	letter, ok := parseLetter(f[base+3], dir.Letters)
	if !ok {
		return 0, invalidDirection(m, dir.Field, f[base+3], dir.Letters)
	}
	return Direction(letter), nil
}

// ValidateFields is a convenience for callers holding the individual field
// values (e.g. form inputs). The fields are joined with Delimiter and passed
// to Validate.
func ValidateFields(m Mode, fields ...string) (ParsedCoordinate, error) {
	for i, f := range fields {
		if strings.Contains(f, Delimiter) {
			return nil, invalidNumber(m, fieldAt(m, i), f, fmt.Errorf("unexpected %q", Delimiter))
		}
	}
	if len(fields) == 0 {
		return nil, malformed(m, 0)
	}
	return Validate(m, strings.Join(fields, Delimiter))
}

func fieldAt(m Mode, i int) Field {
	if layout := Layout(m); i < len(layout) {
		return layout[i].Field
	}
	return FieldNone
}
