package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/geoconv/geoconv/cfg"
	"github.com/geoconv/geoconv/coord"
)

func TestLoadConfigWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	got, err := LoadConfig(path, cfg.DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg.DefaultConfig) {
		t.Errorf("got %#v", got)
	}
	written, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !reflect.DeepEqual(written, cfg.DefaultConfig) {
		t.Errorf("written config differs: %#v", written)
	}
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_mode":"gms","http_addr":":9090"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path, cfg.DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	if got.DefaultMode != coord.ModeGMS || got.HTTPAddr != ":9090" {
		t.Errorf("file values lost: %#v", got)
	}
	if got.MapCenter != cfg.DefaultConfig.MapCenter {
		t.Errorf("got map center %v", got.MapCenter)
	}
	if !reflect.DeepEqual(got.OutputStyles, cfg.DefaultConfig.OutputStyles) {
		t.Errorf("got output styles %v", got.OutputStyles)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"default_mode":"mgrs"}`), 0o600)
	if _, err := LoadConfig(path, cfg.DefaultConfig); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestReadEnv(t *testing.T) {
	t.Setenv("GEOCONV_DEFAULT_MODE", "dms")
	t.Setenv("GEOCONV_OUTPUT_STYLES", "decimal,grid")
	t.Setenv("GEOCONV_MAP_CENTER", "59.91,10.75")
	t.Setenv("GEOCONV_HTTP_ADDR", ":8081")

	config := cfg.DefaultConfig
	if err := readEnv(&config); err != nil {
		t.Fatal(err)
	}
	expect := cfg.DefaultConfig
	expect.DefaultMode = coord.ModeGMS
	expect.OutputStyles = []string{"decimal", "grid"}
	expect.MapCenter = cfg.LatLng{Lat: 59.91, Lng: 10.75}
	expect.HTTPAddr = ":8081"
	if !reflect.DeepEqual(config, expect) {
		t.Errorf("got %#v expected %#v", config, expect)
	}

	t.Setenv("GEOCONV_DEFAULT_MODE", "polar")
	if err := readEnv(&config); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "GEOCONV_LOCALE"
	if v, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, v) })
	}
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), "test.env")
	os.WriteFile(path, []byte(key+"=pt-BR\n"), 0o600)

	if err := loadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv(key); got != "pt-BR" {
		t.Errorf("got %q", got)
	}

	if err := loadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for explicit missing file")
	}
}
