package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/geoconv/geoconv/coord"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestInverse(t *testing.T) {
	tests := []struct {
		easting, northing float64
		zone              int
		southern          bool
		lat, lng          float64
	}{
		{500000, 4649776, 23, true, -48.305210, -45},
		{500000, 8088362.595, 23, true, -17.290006, -45},
		{191141.085, 8251747.156, 23, true, -15.793889, -47.882778},
		{306130, 4726010, 19, false, 42.662139, -71.365553},
	}
	for _, tt := range tests {
		lon, lat, err := WGS84{}.Inverse(tt.easting, tt.northing, tt.zone, tt.southern)
		if err != nil {
			t.Errorf("Inverse(%v %v %d): %v", tt.easting, tt.northing, tt.zone, err)
			continue
		}
		if !near(lat, tt.lat, 1e-5) || !near(lon, tt.lng, 1e-5) {
			t.Errorf("Inverse(%v %v %d) = %.6f,%.6f; expected %.6f,%.6f",
				tt.easting, tt.northing, tt.zone, lat, lon, tt.lat, tt.lng)
		}
	}
}

func TestInverseZoneOutOfRange(t *testing.T) {
	for _, zone := range []int{0, 61, -1} {
		_, _, err := WGS84{}.Inverse(500000, 4649776, zone, true)
		if !errors.Is(err, ErrZoneOutOfRange) {
			t.Errorf("zone %d: expected ErrZoneOutOfRange, got %v", zone, err)
		}
	}
	if _, err := (WGS84{}).ForwardInZone(0, 0, 61); !errors.Is(err, ErrZoneOutOfRange) {
		t.Errorf("expected ErrZoneOutOfRange, got %v", err)
	}
}

func TestForward(t *testing.T) {
	u, err := WGS84{}.Forward(42.662139, -71.365553)
	if err != nil {
		t.Fatal(err)
	}
	if u.Zone != 19 || u.Southern {
		t.Errorf("got zone %d southern=%v", u.Zone, u.Southern)
	}
	if !near(u.Easting, 306130, 1) || !near(u.Northing, 4726010, 1) {
		t.Errorf("got %.1f %.1f", u.Easting, u.Northing)
	}
}

func TestRoundTrip(t *testing.T) {
	points := []coord.DecimalCoordinate{
		{Lat: -15.793889, Lng: -47.882778},
		{Lat: -48.305210, Lng: -45},
		{Lat: 59.9139, Lng: 10.7522},
		{Lat: 0.5, Lng: 179.5},
	}
	for _, p := range points {
		u, err := WGS84{}.Forward(p.Lat, p.Lng)
		if err != nil {
			t.Fatalf("Forward(%v): %v", p, err)
		}
		lon, lat, err := WGS84{}.Inverse(u.Easting, u.Northing, u.Zone, u.Southern)
		if err != nil {
			t.Fatalf("Inverse(%+v): %v", u, err)
		}
		if !near(lat, p.Lat, 1e-6) || !near(lon, p.Lng, 1e-6) {
			t.Errorf("round trip %v -> %+v -> %.7f,%.7f", p, u, lat, lon)
		}
	}
}

func TestForwardInZone(t *testing.T) {
	// Brasília lies in zone 23 but can be projected into the neighbouring zone.
	u, err := WGS84{}.ForwardInZone(-15.793889, -47.882778, 22)
	if err != nil {
		t.Fatal(err)
	}
	if u.Zone != 22 || !u.Southern {
		t.Errorf("got %+v", u)
	}
	lon, lat, err := WGS84{}.Inverse(u.Easting, u.Northing, 22, true)
	if err != nil {
		t.Fatal(err)
	}
	if !near(lat, -15.793889, 1e-6) || !near(lon, -47.882778, 1e-6) {
		t.Errorf("got %.7f,%.7f", lat, lon)
	}
}

func TestUTMFields(t *testing.T) {
	u := UTM{Easting: 500000, Northing: 4649776, Zone: 23, Southern: true}
	expect := coord.UTMFields{Easting: 500000, Northing: 4649776, Zone: 23, Hemisphere: coord.South}
	if got := u.Fields(); got != expect {
		t.Errorf("got %+v", got)
	}
}

func TestMGRS(t *testing.T) {
	ref, err := WGS84{}.ToMGRS(-15.793889, -47.882778, MaxMGRSPrecision)
	if err != nil {
		t.Fatal(err)
	}
	c, err := WGS84{}.FromMGRS(ref)
	if err != nil {
		t.Fatal(err)
	}
	// 1 m precision truncates, so allow a couple of metres.
	if !near(c.Lat, -15.793889, 1e-4) || !near(c.Lng, -47.882778, 1e-4) {
		t.Errorf("%s -> %v", ref, c)
	}

	if _, err := (WGS84{}).ToMGRS(0, 0, 9); err == nil {
		t.Error("expected precision error")
	}
}
