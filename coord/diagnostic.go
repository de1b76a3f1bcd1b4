// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package coord

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Kind classifies a Diagnostic.
type Kind int

const (
	MalformedFormat Kind = iota + 1 // Wrong number of fields.
	InvalidNumber                   // A numeric field failed to parse.
	OutOfRange                      // A numeric field is outside its legal bound.
	InvalidDirection                // A direction letter is not allowed for its axis.
	ConversionFailed                // The projection engine rejected valid-looking input.
)

func (k Kind) String() string {
	switch k {
	case MalformedFormat:
		return "MalformedFormat"
	case InvalidNumber:
		return "InvalidNumber"
	case OutOfRange:
		return "OutOfRange"
	case InvalidDirection:
		return "InvalidDirection"
	case ConversionFailed:
		return "ConversionFailed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Diagnostic describes why a coordinate could not be converted.
//
// It carries enough context (field, value, bound) to render a specific message
// in any of the supported locales. Diagnostic implements error.
type Diagnostic struct {
	Kind  Kind
	Mode  Mode
	Field Field  // FieldNone for MalformedFormat and engine failures.
	Value string // Offending field text, as entered.

	// MalformedFormat
	Got, Want int

	// OutOfRange
	Min, Max     float64
	MaxExclusive bool
	Related      Field  // Field whose value constrains Field (FieldNone if unused).
	RelatedValue string // The constraining value.

	// InvalidDirection
	Allowed string

	Err error // Underlying cause, if any.
}

func (d *Diagnostic) Error() string { return d.Message(language.English) }

func (d *Diagnostic) Unwrap() error { return d.Err }

// Is reports whether target is a *Diagnostic of the same Kind.
func (d *Diagnostic) Is(target error) bool {
	t, ok := target.(*Diagnostic)
	return ok && t.Kind == d.Kind && t.Field == FieldNone
}

// Sentinel values usable with errors.Is.
var (
	ErrMalformedFormat  = &Diagnostic{Kind: MalformedFormat, Field: FieldNone}
	ErrInvalidNumber    = &Diagnostic{Kind: InvalidNumber, Field: FieldNone}
	ErrOutOfRange       = &Diagnostic{Kind: OutOfRange, Field: FieldNone}
	ErrInvalidDirection = &Diagnostic{Kind: InvalidDirection, Field: FieldNone}
	ErrConversionFailed = &Diagnostic{Kind: ConversionFailed, Field: FieldNone}
)

// AsDiagnostic returns err as a *Diagnostic.
//
// Errors that are not diagnostics are wrapped in a generic ConversionFailed
// diagnostic. A nil error yields nil.
func AsDiagnostic(err error) *Diagnostic {
	if err == nil {
		return nil
	}
	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}
	return &Diagnostic{Kind: ConversionFailed, Field: FieldNone, Err: err}
}

func malformed(m Mode, got int) *Diagnostic {
	return &Diagnostic{
		Kind: MalformedFormat, Mode: m, Field: FieldNone,
		Got: got, Want: len(Layout(m)),
	}
}

func invalidNumber(m Mode, f Field, value string, err error) *Diagnostic {
	return &Diagnostic{Kind: InvalidNumber, Mode: m, Field: f, Value: value, Err: err}
}

func outOfRange(m Mode, f Field, value string, min, max float64, maxExclusive bool) *Diagnostic {
	return &Diagnostic{
		Kind: OutOfRange, Mode: m, Field: f, Value: value,
		Min: min, Max: max, MaxExclusive: maxExclusive,
	}
}

func invalidDirection(m Mode, f Field, value, allowed string) *Diagnostic {
	return &Diagnostic{Kind: InvalidDirection, Mode: m, Field: f, Value: value, Allowed: allowed}
}

func conversionFailed(m Mode, err error) *Diagnostic {
	return &Diagnostic{Kind: ConversionFailed, Mode: m, Field: FieldNone, Err: err}
}
