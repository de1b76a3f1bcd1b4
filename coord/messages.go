// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package coord

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The key doubles as the English format string.
const (
	msgMalformed        = "Invalid %s format: expected %d fields, got %d (e.g. %s)."
	msgInvalidNumber    = "Invalid number %q for %s."
	msgOutOfRange       = "%s %s is out of range (%v–%v)."
	msgOutOfRangeExcl   = "%s %s is out of range (%v up to, but not including, %v)."
	msgOutOfRangeRel    = "%s must be 0 when %s is %s (got %s)."
	msgInvalidDirection = "Invalid %s %q. Use %s."
	msgConversionFailed = "Conversion failed: %v."
	msgConversionError  = "Conversion failed."
	msgOr               = "%s or %s"
)

// Locales supported by Diagnostic.Message.
var Locales = []language.Tag{language.English, language.BrazilianPortuguese}

func init() {
	pt := language.BrazilianPortuguese
	for key, msg := range map[string]string{
		msgMalformed:        "Formato %s inválido: esperados %d campos, recebidos %d (ex: %s).",
		msgInvalidNumber:    "Valor numérico inválido %q em %s.",
		msgOutOfRange:       "%s %s fora do intervalo (%v–%v).",
		msgOutOfRangeExcl:   "%s %s fora do intervalo (%v até, sem incluir, %v).",
		msgOutOfRangeRel:    "%s deve ser 0 quando %s é %s (recebido %s).",
		msgInvalidDirection: "Direção inválida em %s: %q. Use %s.",
		msgConversionFailed: "Erro na conversão: %v.",
		msgConversionError:  "Erro na conversão!",
		msgOr:               "%s ou %s",

		"easting":             "easting",
		"northing":            "northing",
		"zone":                "zona",
		"hemisphere":          "hemisfério",
		"latitude degrees":    "graus de latitude",
		"latitude minutes":    "minutos de latitude",
		"latitude seconds":    "segundos de latitude",
		"latitude direction":  "direção da latitude",
		"longitude degrees":   "graus de longitude",
		"longitude minutes":   "minutos de longitude",
		"longitude seconds":   "segundos de longitude",
		"longitude direction": "direção da longitude",
	} {
		message.SetString(pt, key, msg)
	}
}

// ParseLocale maps a user supplied locale (e.g. "pt", "pt_BR", "en-US") to
// one of Locales. Unknown or empty locales yield English.
func ParseLocale(str string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(str, "_", "-"))
	if err != nil {
		return language.English
	}
	if base, _ := tag.Base(); base.String() == "pt" {
		return language.BrazilianPortuguese
	}
	return language.English
}

// Message renders the diagnostic as a single line in the given locale.
func (d *Diagnostic) Message(tag language.Tag) string {
	p := message.NewPrinter(tag)
	field := func(f Field) string { return p.Sprintf(f.String()) }
	capitalize := func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}

	switch d.Kind {
	case MalformedFormat:
		return p.Sprintf(msgMalformed, strings.ToUpper(d.Mode.String()), d.Want, d.Got, Example(d.Mode))
	case InvalidNumber:
		return p.Sprintf(msgInvalidNumber, d.Value, field(d.Field))
	case OutOfRange:
		switch {
		case d.Related != FieldNone:
			return p.Sprintf(msgOutOfRangeRel, capitalize(field(d.Field)), field(d.Related), d.RelatedValue, d.Value)
		case d.MaxExclusive:
			return p.Sprintf(msgOutOfRangeExcl, capitalize(field(d.Field)), d.Value, d.Min, d.Max)
		default:
			return p.Sprintf(msgOutOfRange, capitalize(field(d.Field)), d.Value, d.Min, d.Max)
		}
	case InvalidDirection:
		allowed := d.Allowed
		if len(allowed) == 2 {
			allowed = p.Sprintf(msgOr, allowed[:1], allowed[1:])
		}
		return p.Sprintf(msgInvalidDirection, field(d.Field), d.Value, allowed)
	default:
		if d.Err != nil {
			return p.Sprintf(msgConversionFailed, d.Err)
		}
		return p.Sprintf(msgConversionError)
	}
}
