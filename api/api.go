// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/geoconv/geoconv/api/types"
	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/cfg"
	"github.com/geoconv/geoconv/coord"
	"github.com/geoconv/geoconv/internal/buildinfo"
	"github.com/geoconv/geoconv/internal/debug"
	"github.com/geoconv/geoconv/internal/projection"
	"github.com/geoconv/geoconv/internal/releases"
)

//go:embed web/index.html
var webContent embed.FS

var indexTmpl = template.Must(template.ParseFS(webContent, "web/index.html"))

func ListenAndServe(ctx context.Context, a *app.App, addr string) error {
	log.Printf("Starting HTTP service (http://%s)...", addr)

	handler := NewHandler(a)
	if err := a.EnableWebSocket(ctx, handler.wsHub); err != nil {
		return err
	}

	srv := http.Server{
		Addr:    addr,
		Handler: handler,
	}
	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down HTTP server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
		handler.wsHub.Close()
		return nil
	case err := <-errs:
		return err
	}
}

type Handler struct {
	*app.App
	wsHub *WSHub
	r     *mux.Router
}

func NewHandler(app *app.App) *Handler {
	r := mux.NewRouter()
	h := &Handler{app, NewWSHub(app), r}

	r.HandleFunc("/api/status", h.statusHandler).Methods("GET")
	r.HandleFunc("/api/mode", h.modeHandler).Methods("PUT")
	r.HandleFunc("/api/input", h.inputHandler).Methods("POST")
	r.HandleFunc("/api/convert", h.convertHandler).Methods("POST")
	r.HandleFunc("/api/mask", h.maskHandler).Methods("POST")
	r.HandleFunc("/api/parse", h.parseHandler).Methods("POST")
	r.HandleFunc("/api/format", h.formatHandler).Methods("GET")
	r.HandleFunc("/api/config", h.configHandler).Methods("GET", "PUT")
	r.HandleFunc("/api/new-release-check", h.newReleaseCheckHandler).Methods("GET")

	r.HandleFunc("/ws", h.wsHandler)
	r.HandleFunc("/", h.rootHandler).Methods("GET")

	return h
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) { h.r.ServeHTTP(w, r) }

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h Handler) rootHandler(w http.ResponseWriter, _ *http.Request) {
	data := struct {
		AppName, Version string
		Status           types.Status
	}{buildinfo.AppName, buildinfo.VersionString(), h.GetStatus()}
	if err := indexTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h Handler) wsHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	_ = conn.WriteJSON(struct{ Version string }{buildinfo.VersionString()})
	h.wsHub.Handle(conn)
}

func (h Handler) statusHandler(w http.ResponseWriter, _ *http.Request) {
	_ = json.NewEncoder(w).Encode(h.GetStatus())
}

func (h Handler) modeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m, err := coord.ParseMode(req.Mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.SetMode(m)
	writeJSON(w, http.StatusOK, h.GetStatus())
}

// inputHandler edits the entry. Text replaces the entry (masked), then Type
// is appended and Backspace characters are deleted.
func (h Handler) inputHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text      *string `json:"text"`
		Type      string  `json:"type"`
		Backspace int     `json:"backspace"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Backspace < 0 {
		http.Error(w, "backspace must not be negative", http.StatusBadRequest)
		return
	}
	if req.Text != nil {
		h.Input(*req.Text)
	}
	if req.Type != "" {
		h.Type(req.Type)
	}
	if req.Backspace > 0 {
		h.Backspace(req.Backspace)
	}
	writeJSON(w, http.StatusOK, h.GetStatus())
}

func (h Handler) convertHandler(w http.ResponseWriter, _ *http.Request) {
	code := http.StatusOK
	if _, err := h.Convert(); err != nil {
		code = http.StatusUnprocessableEntity
	}
	writeJSON(w, code, h.GetStatus())
}

func (h Handler) maskHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode     string `json:"mode"`
		Text     string `json:"text"`
		Symbolic bool   `json:"symbolic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m, err := h.modeOrCurrent(req.Mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp := struct {
		Mode string `json:"mode"`
		Text string `json:"text"`
	}{m.String(), coord.Mask(m, req.Text)}
	if req.Symbolic {
		resp.Text = coord.Symbolic(m, resp.Text)
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseHandler validates and converts text without touching the entry.
func (h Handler) parseHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode   string   `json:"mode"`
		Text   string   `json:"text"`
		Locale string   `json:"locale"`
		Styles []string `json:"styles"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m, err := h.modeOrCurrent(req.Mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	styles := h.Styles()
	if len(req.Styles) > 0 {
		c := cfg.Config{OutputStyles: req.Styles}
		var unknown []string
		if styles, unknown = c.Styles(); len(unknown) > 0 {
			http.Error(w, "unknown style(s): "+strings.Join(unknown, ", "), http.StatusBadRequest)
			return
		}
	}
	locale := h.Locale()
	if req.Locale != "" {
		locale = coord.ParseLocale(req.Locale)
	}

	res, err := h.Parse(m, req.Text)
	if err != nil {
		debug.Printf("parse %s %q: %v", m, req.Text, err)
		writeJSON(w, http.StatusUnprocessableEntity, struct {
			Diagnostic string `json:"diagnostic"`
		}{types.DiagnosticMessage(coord.AsDiagnostic(err), locale)})
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Result *types.Coordinate `json:"result"`
	}{types.NewCoordinate(res, styles...)})
}

func (h Handler) modeOrCurrent(str string) (coord.Mode, error) {
	if str == "" {
		return h.State().Mode, nil
	}
	return coord.ParseMode(str)
}

// formatHandler renders lat/lng in a single style. The "mgrs" style is
// resolved by the projection engine.
func (h Handler) formatHandler(w http.ResponseWriter, r *http.Request) {
	lat, err1 := strconv.ParseFloat(r.FormValue("lat"), 64)
	lng, err2 := strconv.ParseFloat(r.FormValue("lng"), 64)
	c := coord.DecimalCoordinate{Lat: lat, Lng: lng}
	if err := errors.Join(err1, err2); err != nil || !c.Valid() {
		http.Error(w, "invalid lat/lng", http.StatusBadRequest)
		return
	}

	style := strings.ToLower(r.FormValue("style"))
	resp := struct {
		Style string `json:"style"`
		Value string `json:"value"`
	}{Style: style}
	switch style {
	case "mgrs":
		precision := projection.MaxMGRSPrecision
		if str := r.FormValue("precision"); str != "" {
			if precision, err1 = strconv.Atoi(str); err1 != nil {
				http.Error(w, "invalid precision", http.StatusBadRequest)
				return
			}
		}
		ref, err := h.Projector().ToMGRS(lat, lng, precision)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp.Value = ref
	default:
		s, err := coord.ParseStyle(style)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp.Style, resp.Value = s.String(), coord.Format(c, s)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h Handler) configHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		currentConfig, err := app.LoadConfig(h.Options().ConfigPath, cfg.DefaultConfig)
		if err != nil {
			log.Println(err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(currentConfig)
		return
	}

	var newConfig cfg.Config
	if err := json.NewDecoder(r.Body).Decode(&newConfig); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, unknown := newConfig.Styles(); len(unknown) > 0 {
		http.Error(w, "unknown style(s): "+strings.Join(unknown, ", "), http.StatusBadRequest)
		return
	}
	if err := app.WriteConfig(newConfig, h.Options().ConfigPath); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := h.Reload(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode("OK")
}

func (h Handler) newReleaseCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	release, err := releases.GetLatestVersion(ctx, h.Config().VersionCheckURL)
	if err != nil {
		http.Error(w, "Error getting latest version: "+err.Error(), http.StatusInternalServerError)
		return
	}

	cmp, err := releases.Compare(buildinfo.Version, release)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if cmp >= 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, release)
}
