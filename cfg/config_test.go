package cfg

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/geoconv/geoconv/coord"
)

func TestConfigJSON(t *testing.T) {
	b, err := json.Marshal(DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	var got Config
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, DefaultConfig) {
		t.Errorf("got %#v expected %#v", got, DefaultConfig)
	}

	if err := json.Unmarshal([]byte(`{"default_mode":"dms"}`), &got); err != nil {
		t.Fatal(err)
	}
	if got.DefaultMode != coord.ModeGMS {
		t.Errorf("got mode %s", got.DefaultMode)
	}
	if err := json.Unmarshal([]byte(`{"default_mode":"mgrs"}`), &got); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestStyles(t *testing.T) {
	c := Config{OutputStyles: []string{"dms", "bogus", "GRID"}}
	styles, unknown := c.Styles()
	if !reflect.DeepEqual(styles, []coord.Style{coord.StyleDMS, coord.StyleGrid}) {
		t.Errorf("got styles %v", styles)
	}
	if !reflect.DeepEqual(unknown, []string{"bogus"}) {
		t.Errorf("got unknown %v", unknown)
	}
}

func TestLatLngDecode(t *testing.T) {
	var l LatLng
	if err := l.Decode("-15.5, -47.9"); err != nil {
		t.Fatal(err)
	}
	if l != (LatLng{-15.5, -47.9}) {
		t.Errorf("got %v", l)
	}
	if err := l.Decode("north"); err == nil {
		t.Error("expected error")
	}
}
