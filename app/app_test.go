package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/geoconv/geoconv/api/types"
	"github.com/geoconv/geoconv/cfg"
	"github.com/geoconv/geoconv/coord"
)

type fakeHub struct {
	noopWSHub

	mu      sync.Mutex
	coords  []coord.DecimalCoordinate
	updates int
}

func (f *fakeHub) SetCoordinate(lat, lng float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coords = append(f.coords, coord.DecimalCoordinate{Lat: lat, Lng: lng})
}

func (f *fakeHub) UpdateStatus() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
}

func TestAppDefaults(t *testing.T) {
	a := New(Options{})
	s := a.GetStatus()
	if s.Mode != "utm" || s.Placeholder != coord.Example(coord.ModeUTM) {
		t.Errorf("unexpected status %+v", s)
	}
	if s.MapCenter.Lat != cfg.DefaultConfig.MapCenter.Lat || s.MapCenter.Lng != cfg.DefaultConfig.MapCenter.Lng {
		t.Errorf("got map center %+v", s.MapCenter)
	}
	if s.Result != nil || s.Diagnostic != "" {
		t.Errorf("unexpected outcome %+v", s)
	}
}

func TestAppOverrides(t *testing.T) {
	a := New(Options{Mode: "gms", Locale: "pt_BR"})
	if a.State().Mode != coord.ModeGMS {
		t.Errorf("got mode %s", a.State().Mode)
	}
	if a.Locale() != language.BrazilianPortuguese {
		t.Errorf("got locale %s", a.Locale())
	}
}

func TestAppConvert(t *testing.T) {
	a := New(Options{})
	hub := &fakeHub{}
	a.EnableWebSocket(context.Background(), hub)

	a.SetMode(coord.ModeGMS)
	a.Type("15300s475520w")
	s, err := a.Convert()
	if err != nil {
		t.Fatal(err)
	}
	if s.Result == nil {
		t.Fatal("expected result")
	}

	hub.mu.Lock()
	if len(hub.coords) != 1 || hub.coords[0] != *s.Result {
		t.Errorf("hub got %v", hub.coords)
	}
	if hub.updates != 3 {
		t.Errorf("expected 3 status updates, got %d", hub.updates)
	}
	hub.mu.Unlock()

	if a.MapCenter() != *s.Result {
		t.Errorf("map center not moved: %v", a.MapCenter())
	}

	status := a.GetStatus()
	if status.Result == nil || len(status.Result.Renderings) != len(a.Styles()) {
		t.Errorf("unexpected result %+v", status.Result)
	}
	if got := status.Result.Renderings["dms"]; got != `15°30'00.0"S 047°55'20.0"W` {
		t.Errorf("got dms %q", got)
	}
}

// statusHub reads the app status back on every map update, as the
// websocket hub does when it broadcasts.
type statusHub struct {
	noopWSHub
	app    *App
	center chan types.Coordinate
}

func (h *statusHub) SetCoordinate(lat, lng float64) {
	h.center <- h.app.GetStatus().MapCenter
}

func TestAppConvertHubReadsStatus(t *testing.T) {
	a := New(Options{Mode: "gms"})
	hub := &statusHub{app: a, center: make(chan types.Coordinate, 1)}
	a.EnableWebSocket(context.Background(), hub)
	a.Input("15300S475520W")

	done := make(chan error, 1)
	go func() {
		_, err := a.Convert()
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Convert blocked while notifying the hub")
	}
	if c := <-hub.center; c.Lat != -15.5 {
		t.Errorf("hub saw map center %+v", c)
	}
}

func TestAppConvertFailure(t *testing.T) {
	a := New(Options{Locale: "pt-BR"})
	hub := &fakeHub{}
	a.EnableWebSocket(context.Background(), hub)

	a.Input("500000,4649776,99,S")
	_, err := a.Convert()
	if !errors.Is(err, coord.ErrOutOfRange) {
		t.Fatalf("expected OutOfRange, got %v", err)
	}
	if len(hub.coords) != 0 {
		t.Errorf("hub must not be updated on failure")
	}
	if a.MapCenter() != cfg.DefaultConfig.MapCenter.Coordinate() {
		t.Errorf("map center moved on failure")
	}

	if d := a.GetStatus().Diagnostic; d != a.Message(err) || strings.ContainsAny(d, "\n{") {
		t.Errorf("got %q expected %q", d, a.Message(err))
	}
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	a := New(Options{ConfigPath: path})
	a.SetMode(coord.ModeGMS)
	a.Input("15,30")

	c := cfg.DefaultConfig
	c.Locale = "pt"
	c.OutputStyles = []string{"grid"}
	if err := WriteConfig(c, path); err != nil {
		t.Fatal(err)
	}

	if err := a.Reload(); err != nil {
		t.Fatal(err)
	}
	if a.Locale() != language.BrazilianPortuguese {
		t.Errorf("locale not reloaded: %s", a.Locale())
	}
	if styles := a.Styles(); len(styles) != 1 || styles[0] != coord.StyleGrid {
		t.Errorf("styles not reloaded: %v", styles)
	}
	if s := a.State(); s.Mode != coord.ModeGMS || s.Text != "15,30" {
		t.Errorf("reload must keep the entry, got %+v", s)
	}
}

func TestWatchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := WriteConfig(cfg.DefaultConfig, path); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan struct{}, 1)
	a := New(Options{ConfigPath: path})
	a.OnReload = func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- a.WatchConfig(ctx) }()
	time.Sleep(100 * time.Millisecond)

	c := cfg.DefaultConfig
	c.Locale = "pt-BR"
	if err := WriteConfig(c, path); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
	case err := <-done:
		t.Fatalf("watcher stopped: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
	if a.Locale() != language.BrazilianPortuguese {
		t.Errorf("got locale %s", a.Locale())
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("WatchConfig: %v", err)
	}
	os.Remove(path)
}
