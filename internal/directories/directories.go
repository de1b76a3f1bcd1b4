package directories

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/geoconv/geoconv/internal/buildinfo"

	"github.com/adrg/xdg"
)

var (
	lock       = &sync.Mutex{}
	configPath string
	statePath  string
)

func ConfigDir() string {
	return getDir(&configPath, xdg.ConfigHome, "ConfigDir")
}

func StateDir() string {
	return getDir(&statePath, xdg.StateHome, "StateDir")
}

func getDir(dir *string, basePath string, methodName string) string {
	lock.Lock()
	defer lock.Unlock()
	if *dir == "" {
		initDir(dir, basePath, methodName)
	}
	return *dir
}

func initDir(dir *string, basePath string, methodName string) {
	*dir = filepath.Join(basePath, strings.ToLower(buildinfo.AppName))
	if _, err := os.Stat(*dir); os.IsNotExist(err) {
		err := os.MkdirAll(*dir, os.ModeDir|0o755)
		if err != nil {
			log.Fatalf("unable to create or open %s %s: %v", methodName, *dir, err)
		}
	}
}

func PrintDirectories() {
	cfg := ConfigDir()
	state := StateDir()

	fmt.Printf("Config directory: \t%s\n", cfg)
	if state != cfg {
		fmt.Printf("Logs directory:   \t%s\n", state)
	}
}
