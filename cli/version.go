package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/pflag"

	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/internal/buildinfo"
	"github.com/geoconv/geoconv/internal/directories"
	"github.com/geoconv/geoconv/internal/releases"
)

func VersionHandle(ctx context.Context, a *app.App, args []string) {
	var check, verbose bool
	set := pflag.NewFlagSet("version", pflag.ExitOnError)
	set.BoolVarP(&check, "check", "c", false, "Check if new version is available")
	set.BoolVarP(&verbose, "verbose", "v", false, "Show detailed build information")
	set.Parse(args)

	fmt.Printf("%s %s\n", buildinfo.AppName, buildinfo.VersionString())
	if verbose {
		fmt.Println()
		directories.PrintDirectories()
		fmt.Println()
		for _, m := range buildinfo.Modules {
			fmt.Printf("  %-45s %s\n", m.Path, m.Version)
		}
	}
	if !check {
		return
	}

	fmt.Println()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	release, err := releases.GetLatestVersion(ctx, a.Config().VersionCheckURL)
	if err != nil {
		log.Printf("Error checking version: %v", err)
		return
	}

	current := buildinfo.Version
	fmt.Printf("Current version: %s\n", current)
	fmt.Printf("Latest version:  %s\n", release.Version)

	cmp, err := releases.Compare(current, release)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	switch cmp {
	case 0:
		fmt.Println("You are running the latest version!")
	case -1:
		fmt.Printf("A new version is available!\nRelease URL: %s\n", release.ReleaseURL)
	case 1:
		fmt.Println("You are running a development version!")
	}
}
