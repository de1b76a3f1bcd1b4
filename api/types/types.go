package types

import (
	"golang.org/x/text/language"

	"github.com/geoconv/geoconv/coord"
)

// Status represents a status report as sent to the Web GUI
type Status struct {
	Mode        string      `json:"mode"`
	Text        string      `json:"text"`
	Placeholder string      `json:"placeholder"`
	Result      *Coordinate `json:"result,omitempty"`
	Diagnostic  string      `json:"diagnostic,omitempty"` // Localized, single line.
	MapCenter   Coordinate  `json:"map_center"`
	HTTPClients []string    `json:"http_clients"`
	ConfigHash  string      `json:"config_hash"`
}

// Coordinate is a decimal degrees position with its configured renderings.
type Coordinate struct {
	Lat        float64           `json:"lat"`
	Lng        float64           `json:"lng"`
	Renderings map[string]string `json:"renderings,omitempty"`
}

func NewCoordinate(c coord.DecimalCoordinate, styles ...coord.Style) *Coordinate {
	v := &Coordinate{Lat: c.Lat, Lng: c.Lng}
	if len(styles) > 0 {
		v.Renderings = make(map[string]string, len(styles))
		for _, s := range styles {
			v.Renderings[s.String()] = coord.Format(c, s)
		}
	}
	return v
}

// DiagnosticMessage is the text sent to clients for a failed conversion.
// Only the message leaves the process, never the diagnostic's fields.
func DiagnosticMessage(d *coord.Diagnostic, tag language.Tag) string {
	if d == nil {
		return ""
	}
	return d.Message(tag)
}

// MapUpdate is broadcast to map clients on every successful conversion.
type MapUpdate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
