// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

// geoconv converts UTM and degrees/minutes/seconds coordinate text to
// decimal degrees.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/cli"
	"github.com/geoconv/geoconv/internal/buildinfo"
	"github.com/geoconv/geoconv/internal/directories"
)

var fOptions app.Options

func optionsSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("options", pflag.ExitOnError)

	set.StringVar(&fOptions.ConfigPath, "config", fOptions.ConfigPath, "Path to config file.")
	set.StringVar(&fOptions.LogPath, "log", fOptions.LogPath, "Path to log file.")
	set.StringVar(&fOptions.EnvFile, "env-file", "", "Path to a .env file (default ./.env if present).")
	set.StringVarP(&fOptions.Mode, "mode", "m", "", "Override the default input notation (utm or gms).")
	set.StringVarP(&fOptions.Locale, "locale", "l", "", "Override the language of error messages (en or pt-BR).")

	return set
}

func init() {
	fOptions.ConfigPath = filepath.Join(directories.ConfigDir(), "config.json")
	fOptions.LogPath = filepath.Join(directories.StateDir(), buildinfo.AppName+".log")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s converts UTM and GMS coordinates to decimal degrees.\n\n", buildinfo.AppName)
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [options] command [arguments]\n", os.Args[0])

		fmt.Fprintln(os.Stderr, "\nCommands:")
		for _, cmd := range cli.Commands {
			fmt.Fprintf(os.Stderr, "  %-15s %s\n", cmd.Str, cmd.Desc)
		}

		fmt.Fprintln(os.Stderr, "\nOptions:")
		optionsSet().PrintDefaults()
		fmt.Fprint(os.Stderr, "\n")
	}
}

func main() {
	cmd, args := parseFlags(os.Args)

	switch cmd.Str {
	case "help":
		cli.HelpHandle(args)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.New(fOptions)
	defer a.Close()

	go func() {
		for sig := range notifySignals() {
			if isSIGHUP(sig) {
				if err := a.Reload(); err != nil {
					log.Printf("Reload failed: %v", err)
				}
				continue
			}
			log.Printf("Got %s, shutting down...", sig)
			cancel()
		}
	}()

	a.Run(ctx, cmd, args)
}

func parseFlags(args []string) (cmd app.Command, arguments []string) {
	cmd, pre, post, err := cli.FindCommand(args)
	if err == app.ErrNoCmd {
		pflag.Usage()
		os.Exit(1)
	} else if err != nil {
		log.Fatal(err)
	}

	set := optionsSet()
	if err := set.Parse(pre); err != nil {
		log.Fatal(err)
	}

	if len(post) > 0 && (post[0] == "-h" || post[0] == "--help") {
		cmd.PrintUsage()
		os.Exit(1)
	}
	if cmd.Str == "help" && len(post) == 0 {
		pflag.Usage()
		os.Exit(0)
	}

	return cmd, post
}
