package app

import (
	"os"
	"runtime"

	"github.com/geoconv/geoconv/internal/buildinfo"
	"github.com/geoconv/geoconv/internal/debug"
)

func (a *App) Env() []string {
	c := a.Config()
	return []string{
		`GEOCONV_VERSION="` + buildinfo.Version + `"`,
		`GEOCONV_ARCH="` + runtime.GOARCH + `"`,
		`GEOCONV_OS="` + runtime.GOOS + `"`,
		`GEOCONV_CONFIG_PATH="` + a.options.ConfigPath + `"`,
		`GEOCONV_LOG_PATH="` + a.options.LogPath + `"`,
		`GEOCONV_DEFAULT_MODE="` + c.DefaultMode.String() + `"`,
		`GEOCONV_LOCALE="` + a.Locale().String() + `"`,
		`GEOCONV_HTTP_ADDR="` + c.HTTPAddr + `"`,
		debug.EnvVar + `="` + os.Getenv(debug.EnvVar) + `"`,
	}
}
