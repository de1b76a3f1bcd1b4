package coord

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-5

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestGMSToDecimal(t *testing.T) {
	tests := []struct {
		in       GMSFields
		lat, lng float64
	}{
		{GMSFields{15, 30, 0, DirSouth, 47, 55, 20, DirWest}, -15.5, -47.922222},
		{GMSFields{15, 30, 0, DirNorth, 47, 55, 20, DirEast}, 15.5, 47.922222},
		{GMSFields{15, 46, 48, DirSouth, 47, 55, 45, DirWest}, -15.78, -47.929167},
		{GMSFields{0, 0, 0, DirSouth, 0, 0, 0, DirWest}, 0, 0},
		{GMSFields{90, 0, 0, DirSouth, 180, 0, 0, DirWest}, -90, -180},
	}
	for _, tt := range tests {
		got := GMSToDecimal(tt.in)
		if !near(got.Lat, tt.lat, tolerance) || !near(got.Lng, tt.lng, tolerance) {
			t.Errorf("GMSToDecimal(%v) = %v,%v; expected %v,%v", tt.in, got.Lat, got.Lng, tt.lat, tt.lng)
		}
	}
}

func TestGMSAxesIndependent(t *testing.T) {
	lats := []GMSFields{
		{LatDeg: 0, LatMin: 0, LatSec: 0, LatDir: DirNorth},
		{LatDeg: 15, LatMin: 30, LatSec: 0, LatDir: DirSouth},
		{LatDeg: 89, LatMin: 59, LatSec: 59.99, LatDir: DirNorth},
		{LatDeg: 90, LatMin: 0, LatSec: 0, LatDir: DirSouth},
	}
	lons := []GMSFields{
		{LonDeg: 0, LonMin: 0, LonSec: 0, LonDir: DirEast},
		{LonDeg: 47, LonMin: 55, LonSec: 20, LonDir: DirWest},
		{LonDeg: 179, LonMin: 59, LonSec: 59.99, LonDir: DirEast},
		{LonDeg: 180, LonMin: 0, LonSec: 0, LonDir: DirWest},
	}

	for _, la := range lats {
		var ref *DecimalCoordinate
		for _, lo := range lons {
			g := la
			g.LonDeg, g.LonMin, g.LonSec, g.LonDir = lo.LonDeg, lo.LonMin, lo.LonSec, lo.LonDir
			got := GMSToDecimal(g)
			if !got.Valid() {
				t.Errorf("GMSToDecimal(%v) = %v out of bounds", g, got)
			}
			if ref == nil {
				ref = &got
			} else if got.Lat != ref.Lat {
				t.Errorf("latitude depends on longitude: %v != %v", got.Lat, ref.Lat)
			}
		}
	}
}

// Every coordinate accepted by Validate converts to an in-range pair.
func TestValidGMSInRange(t *testing.T) {
	var accepted, rejected int
	degrees := [][2]string{
		{"0", "0"}, {"45", "90"}, {"89", "179"}, {"89.5", "179.5"},
		{"89.9", "179.9"}, {"89.99", "179.99"}, {"90", "180"},
	}
	for _, deg := range degrees {
		for _, min := range []string{"0", "6", "30", "59", "59.9"} {
			for _, sec := range []string{"0", "1", "59.9"} {
				for _, dir := range []string{"N", "S"} {
					text := deg[0] + "," + min + "," + sec + "," + dir + "," + deg[1] + "," + min + "," + sec + ",W"
					pc, err := Validate(ModeGMS, text)
					if err != nil {
						rejected++
						continue
					}
					accepted++
					c, err := Convert(nil, pc)
					if err != nil {
						t.Fatalf("Convert(%q): %v", text, err)
					}
					if !c.Valid() {
						t.Errorf("Convert(%q) = %v out of bounds", text, c)
					}
				}
			}
		}
	}
	if accepted == 0 || rejected == 0 {
		t.Errorf("sweep is one-sided: %d accepted, %d rejected", accepted, rejected)
	}
}

func TestGMSToDecimalRounding(t *testing.T) {
	pc, err := Validate(ModeGMS, "89.9,6,0,S,179.9,6,0,E")
	if err != nil {
		t.Fatal(err)
	}
	c := GMSToDecimal(pc.(GMSFields))
	if c.Lat != -90 || c.Lng != 180 {
		t.Errorf("got %v; expected exactly -90, 180", c)
	}
}

func TestUTMToDecimal(t *testing.T) {
	var gotArgs []interface{}
	p := ProjectorFunc(func(e, n float64, zone int, southern bool) (float64, float64, error) {
		gotArgs = []interface{}{e, n, zone, southern}
		return -45, -17.290006, nil // (lon, lat)
	})

	c, err := UTMToDecimal(p, UTMFields{500000, 8088362.6, 23, South})
	if err != nil {
		t.Fatal(err)
	}
	if c.Lat != -17.290006 || c.Lng != -45 {
		t.Errorf("lon/lat mapped wrong: %v", c)
	}
	if gotArgs[2] != 23 || gotArgs[3] != true {
		t.Errorf("unexpected projection args: %v", gotArgs)
	}

	UTMToDecimal(p, UTMFields{500000, 4649776, 23, North})
	if gotArgs[3] != false {
		t.Errorf("expected northern hemisphere, got southern=%v", gotArgs[3])
	}
}

func TestUTMToDecimalFailures(t *testing.T) {
	engineErr := errors.New("zone not supported")
	tests := []struct {
		name string
		p    Projector
	}{
		{"nil engine", nil},
		{"engine error", ProjectorFunc(func(float64, float64, int, bool) (float64, float64, error) {
			return 0, 0, engineErr
		})},
		{"engine panic", ProjectorFunc(func(float64, float64, int, bool) (float64, float64, error) {
			panic("index out of range")
		})},
		{"out of bounds", ProjectorFunc(func(float64, float64, int, bool) (float64, float64, error) {
			return 200, 95, nil
		})},
		{"NaN", ProjectorFunc(func(float64, float64, int, bool) (float64, float64, error) {
			return math.NaN(), 0, nil
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := UTMToDecimal(tt.p, UTMFields{500000, 4649776, 23, South})
			if !errors.Is(err, ErrConversionFailed) {
				t.Fatalf("expected ConversionFailed, got %v", err)
			}
			if c != (DecimalCoordinate{}) {
				t.Errorf("expected zero coordinate, got %v", c)
			}
		})
	}

	_, err := UTMToDecimal(tests[1].p, UTMFields{500000, 4649776, 23, South})
	if !errors.Is(err, engineErr) {
		t.Errorf("expected engine error to be wrapped, got %v", err)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse(nil, ModeGMS, "15,30,0,S,47,55,20,W")
	if err != nil {
		t.Fatal(err)
	}
	if !near(c.Lat, -15.5, tolerance) || !near(c.Lng, -47.922222, tolerance) {
		t.Errorf("got %v", c)
	}

	_, err = Parse(nil, ModeGMS, "95,30,0,S,47,55,20,W")
	if d := AsDiagnostic(err); d == nil || d.Kind != OutOfRange || d.Field != FieldLatDeg {
		t.Errorf("expected OutOfRange on latitude degrees, got %v", err)
	}
}
