// Copyright 2016 Martin Hebnes Pedersen (LA5NTA). All rights reserved.
// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

// Package app implements the core functionality shared by cli and api.
package app

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/geoconv/geoconv/api/types"
	"github.com/geoconv/geoconv/cfg"
	"github.com/geoconv/geoconv/coord"
	"github.com/geoconv/geoconv/internal/buildinfo"
	"github.com/geoconv/geoconv/internal/debug"
	"github.com/geoconv/geoconv/internal/projection"
)

type Options struct {
	ConfigPath string
	LogPath    string
	EnvFile    string

	// Overrides for the corresponding config values.
	Mode   string
	Locale string
}

type App struct {
	options  Options
	config   cfg.Config
	OnReload func()

	projector projection.WGS84

	// mu guards everything below, including all access to ctrl.
	mu           sync.Mutex
	ctrl         *coord.Controller
	center       coord.DecimalCoordinate
	moved        bool // center changed since the last broadcast
	locale       language.Tag
	styles       []coord.Style
	websocketHub WSHub

	logWriter io.WriteCloser
}

func New(opts Options) *App {
	if opts.ConfigPath != "" {
		opts.ConfigPath = filepath.Clean(opts.ConfigPath)
	}
	if opts.LogPath != "" {
		opts.LogPath = filepath.Clean(opts.LogPath)
	}
	a := &App{options: opts, websocketHub: noopWSHub{}}
	a.setConfig(cfg.DefaultConfig, true)
	return a
}

func (a *App) Config() cfg.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.config
}

func (a *App) Options() Options { return a.options }

func (a *App) Projector() projection.WGS84 { return a.projector }

func (a *App) Locale() language.Tag {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.locale
}

// Styles returns the configured output renderings.
func (a *App) Styles() []coord.Style {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]coord.Style(nil), a.styles...)
}

// MapCenter returns the last successfully converted coordinate, or the
// configured initial map position.
func (a *App) MapCenter() coord.DecimalCoordinate {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.center
}

func (a *App) EnableWebSocket(ctx context.Context, wsHub WSHub) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.websocketHub = wsHub
	return nil
}

func (a *App) hub() WSHub {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.websocketHub
}

// setConfig applies c. With reset, the coordinate entry is recreated in
// the configured default mode and the map is moved to the configured center.
func (a *App) setConfig(c cfg.Config, reset bool) {
	styles, unknown := c.Styles()
	for _, s := range unknown {
		log.Printf("Ignoring unknown output style '%s'", s)
	}
	if len(styles) == 0 {
		styles = []coord.Style{coord.StyleSigned}
	}

	locale := c.Locale
	if a.options.Locale != "" {
		locale = a.options.Locale
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.config = c
	a.styles = styles
	a.locale = coord.ParseLocale(locale)
	if !reset && a.ctrl != nil {
		return
	}

	mode := c.DefaultMode
	if a.options.Mode != "" {
		m, err := coord.ParseMode(a.options.Mode)
		if err != nil {
			log.Printf("Ignoring mode override: %v", err)
		} else {
			mode = m
		}
	}
	a.ctrl = coord.NewController(a.projector,
		coord.WithMode(mode),
		coord.WithDisplay(coord.MapDisplayFunc(a.setCenter)),
	)
	a.center = c.MapCenter.Coordinate()
}

// setCenter is the controller's map display. It is called with a.mu held,
// so the hub is notified later by update.
func (a *App) setCenter(lat, lng float64) {
	debug.Printf("Map center: %.6f,%.6f", lat, lng)
	a.center = coord.DecimalCoordinate{Lat: lat, Lng: lng}
	a.moved = true
}

func (a *App) Run(ctx context.Context, cmd Command, args []string) {
	debug.Printf("Version: %s", buildinfo.VersionString())
	debug.Printf("Command: %s %v", cmd.Str, args)
	debug.Printf("Config file is\t'%s'", a.options.ConfigPath)
	debug.Printf("Log file is \t'%s'", a.options.LogPath)

	// Skip initialization for some commands
	switch cmd.Str {
	case "configure":
		cmd.HandleFunc(ctx, a, args)
		return
	}

	if err := loadEnvFile(a.options.EnvFile); err != nil {
		log.Fatalf("Unable to load env file: %s", err)
	}

	// Parse configuration file
	config, err := a.loadConfig()
	if err != nil {
		log.Fatalf("Unable to load/write config: %s", err)
	}

	// Initialize logger
	if a.options.LogPath != "" {
		a.logWriter = &lumberjack.Logger{
			Filename:   a.options.LogPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28,
		}
		log.SetOutput(io.MultiWriter(a.logWriter, os.Stderr))
	}

	a.setConfig(config, true)

	// Start command execution
	cmd.HandleFunc(ctx, a, args)
}

// Reload re-reads the configuration file and environment. The current
// coordinate entry is kept.
func (a *App) Reload() error {
	config, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.setConfig(config, false)
	log.Println("Configuration reloaded")
	a.hub().UpdateStatus()
	if a.OnReload != nil {
		a.OnReload()
	}
	return nil
}

func (a *App) loadConfig() (cfg.Config, error) {
	config, err := LoadConfig(a.options.ConfigPath, cfg.DefaultConfig)
	if err != nil {
		return config, err
	}
	if err := readEnv(&config); err != nil {
		return config, fmt.Errorf("environment: %w", err)
	}
	return config, nil
}

// update runs fn on the controller and broadcasts the new status, preceded
// by the new map center if fn moved it.
func (a *App) update(fn func(c *coord.Controller)) coord.State {
	a.mu.Lock()
	fn(a.ctrl)
	s := a.ctrl.State()
	hub, center, moved := a.websocketHub, a.center, a.moved
	a.moved = false
	a.mu.Unlock()

	if moved {
		hub.SetCoordinate(center.Lat, center.Lng)
	}
	hub.UpdateStatus()
	return s
}

func (a *App) State() coord.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ctrl.State()
}

func (a *App) SetMode(m coord.Mode) coord.State {
	return a.update(func(c *coord.Controller) { c.SetMode(m) })
}

// Input replaces the entry text with the masked form of text.
func (a *App) Input(text string) coord.State {
	return a.update(func(c *coord.Controller) { c.Input(text) })
}

// Type appends s to the entry text, one keystroke per rune.
func (a *App) Type(s string) coord.State {
	return a.update(func(c *coord.Controller) { c.Type(s) })
}

func (a *App) Backspace(n int) coord.State {
	return a.update(func(c *coord.Controller) { c.Backspace(n) })
}

func (a *App) Clear() coord.State {
	return a.update(func(c *coord.Controller) { c.Clear() })
}

// Convert converts the current entry. A failure is returned as a
// *coord.Diagnostic and is also part of the returned state.
func (a *App) Convert() (coord.State, error) {
	var err error
	s := a.update(func(c *coord.Controller) { _, err = c.Convert() })
	if err != nil {
		debug.Printf("Convert %s %q: %v", s.Mode, s.Text, err)
	}
	return s, err
}

// Parse validates and converts text without touching the coordinate entry.
func (a *App) Parse(m coord.Mode, text string) (coord.DecimalCoordinate, error) {
	return coord.Parse(a.projector, m, text)
}

// Message renders err in the configured locale.
func (a *App) Message(err error) string {
	if err == nil {
		return ""
	}
	return coord.AsDiagnostic(err).Message(a.Locale())
}

func (a *App) GetStatus() types.Status {
	configHash := func(c cfg.Config) string {
		h := sha1.New()
		if err := json.NewEncoder(h).Encode(c); err != nil {
			panic(err)
		}
		return fmt.Sprintf("%x", h.Sum(nil))
	}

	a.mu.Lock()
	s := a.ctrl.State()
	center, locale, styles := a.center, a.locale, a.styles
	config, hub := a.config, a.websocketHub
	a.mu.Unlock()

	status := types.Status{
		Mode:        s.Mode.String(),
		Text:        s.Text,
		Placeholder: coord.Example(s.Mode),
		Diagnostic:  types.DiagnosticMessage(s.Diagnostic, locale),
		MapCenter:   *types.NewCoordinate(center),
		HTTPClients: hub.ClientAddrs(),
		ConfigHash:  configHash(config),
	}
	if s.Result != nil {
		status.Result = types.NewCoordinate(*s.Result, styles...)
	}
	return status
}

func (a *App) Close() {
	debug.Printf("Starting cleanup")
	defer func() {
		debug.Printf("Cleanup done")
		if a.logWriter != nil {
			log.SetOutput(os.Stderr)
			a.logWriter.Close()
		}
	}()

	if err := a.hub().Close(); err != nil {
		log.Printf("Failure to close websocket hub: %s", err)
	}
}
