// Copyright 2016 Martin Hebnes Pedersen (LA5NTA). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package api

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/geoconv/geoconv/api/types"
	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/coord"
	"github.com/geoconv/geoconv/internal/debug"
)

const KeepaliveInterval = 4 * time.Minute

// WSConn represent one connection in the WSHub pool
type WSConn struct {
	conn *websocket.Conn
	out  chan interface{}
}

// WSHub is a hub for broadcasting data to several websocket connections.
//
// It is the app's map display: every successful conversion is broadcast
// as a Coordinate message.
type WSHub struct {
	*app.App

	mu   sync.Mutex
	pool map[*WSConn]struct{}
}

func NewWSHub(app *app.App) *WSHub {
	return &WSHub{App: app, pool: map[*WSConn]struct{}{}}
}

func (w *WSHub) UpdateStatus() {
	w.WriteJSON(struct{ Status types.Status }{w.GetStatus()})
}

func (w *WSHub) SetCoordinate(lat, lng float64) {
	w.WriteJSON(struct{ Coordinate types.MapUpdate }{types.MapUpdate{Lat: lat, Lng: lng}})
}

func (w *WSHub) WriteJSON(v interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for c := range w.pool {
		select {
		case c.out <- v:
		case <-time.After(3 * time.Second):
			debug.Printf("Closing one unresponsive web socket")
			c.conn.Close()
			delete(w.pool, c)
		}
	}
}

// Close closes all active WebSocket connections in the hub.
//
// The hub should not be used after calling Close.
func (w *WSHub) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pool == nil {
		return nil
	}
	for conn := range w.pool {
		// Triggers the deferred cleanup in Handle for that client.
		if err := conn.conn.Close(); err != nil {
			debug.Printf("Error closing WebSocket connection %s: %v", conn.conn.RemoteAddr(), err)
		}
	}
	w.pool = nil
	return nil
}

func (w *WSHub) NumClients() int { return len(w.ClientAddrs()) }

func (w *WSHub) ClientAddrs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	addrs := make([]string, 0, len(w.pool))
	for c := range w.pool {
		addrs = append(addrs, c.conn.RemoteAddr().String())
	}
	return addrs
}

// Handle adds a new websocket to the hub
//
// It will block until the client either stops responding or closes the connection.
func (w *WSHub) Handle(conn *websocket.Conn) {
	debug.Printf("ws[%s] subscribed", conn.RemoteAddr())
	c := &WSConn{
		conn: conn,
		out:  make(chan interface{}, 1),
	}

	w.mu.Lock()
	if w.pool == nil {
		w.mu.Unlock()
		conn.Close()
		return
	}
	w.pool[c] = struct{}{}
	w.mu.Unlock()

	// Initial status update
	// (broadcasted as it includes info to other clients about this new one)
	w.UpdateStatus()

	quit := w.wsReadLoop(conn)

	// Disconnect and remove client when this handler returns.
	defer func() {
		debug.Printf("ws[%s] unsubscribing...", conn.RemoteAddr())
		c.conn.Close()
		w.mu.Lock()
		delete(w.pool, c)
		w.mu.Unlock()
		w.UpdateStatus()
		debug.Printf("ws[%s] unsubscribed", conn.RemoteAddr())
	}()

	var lines <-chan []byte
	if path := w.Options().LogPath; path != "" {
		l, done, err := tailFile(path)
		if err != nil {
			debug.Printf("ws[%s] log lines unavailable: %v", conn.RemoteAddr(), err)
		} else {
			defer close(done)
			lines = l
		}
	}

	ticker := time.NewTicker(KeepaliveInterval)
	defer ticker.Stop()
	for {
		var err error
		c.conn.SetWriteDeadline(time.Time{})
		select {
		case <-ticker.C:
			debug.Printf("ws[%s] ping", conn.RemoteAddr())
			c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			err = c.conn.WriteJSON(struct {
				Ping bool
			}{true})
		case line := <-lines:
			c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			err = c.conn.WriteJSON(struct {
				LogLine string
			}{string(line)})
		case v := <-c.out:
			c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			err = c.conn.WriteJSON(v)
		case <-quit:
			// The read loop failed/disconnected. Abort.
			return
		}
		if err != nil {
			debug.Printf("ws[%s] write error: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// Expects the file to never get renamed/truncated or deleted
func tailFile(path string) (<-chan []byte, chan<- struct{}, error) {
	lines := make(chan []byte)
	done := make(chan struct{})
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		file.Close()
		return nil, nil, err
	}

	go func() {
		rd := bufio.NewReader(file)
		for {
			data, _, err := rd.ReadLine()
			if errors.Is(err, io.EOF) {
				select {
				case <-done:
					file.Close()
					return
				case <-time.After(100 * time.Millisecond):
				}
				continue
			}

			select {
			case <-done:
				file.Close()
				return
			case lines <- data:
			}
		}
	}()

	return lines, done, nil
}

// handleWSMessage applies an entry edit sent by a web client. The
// resulting status is broadcast by the app. Malformed values are logged
// and the message is dropped.
func (w *WSHub) handleWSMessage(v map[string]json.RawMessage) {
	var req struct {
		mode, input, keys *string
		backspace         int
	}
	for key, dst := range map[string]interface{}{
		"mode":      &req.mode,
		"input":     &req.input,
		"type":      &req.keys,
		"backspace": &req.backspace,
	} {
		raw, ok := v[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			log.Printf("ws: %s: %v", key, err)
			return
		}
	}

	if req.mode != nil {
		m, err := coord.ParseMode(*req.mode)
		if err != nil {
			log.Printf("ws: %v", err)
			return
		}
		w.SetMode(m)
	}
	if req.input != nil {
		w.Input(*req.input)
	}
	if req.keys != nil {
		w.Type(*req.keys)
	}
	if req.backspace > 0 {
		w.Backspace(req.backspace)
	}
	if _, ok := v["convert"]; ok {
		w.Convert()
	}
}

func (w *WSHub) wsReadLoop(c *websocket.Conn) <-chan struct{} {
	quit := make(chan struct{})
	go func() {
		for {
			v := map[string]json.RawMessage{}
			// We should at least get a ping response once per KeepaliveInterval.
			c.SetReadDeadline(time.Now().Add(KeepaliveInterval + 10*time.Second))
			err := c.ReadJSON(&v)
			if err != nil {
				debug.Printf("ws[%s] read error: %v", c.RemoteAddr(), err)
				close(quit)
				return
			}
			if _, ok := v["Pong"]; ok {
				// That's the Ping response.
				debug.Printf("ws[%s] pong", c.RemoteAddr())
				continue
			}
			w.handleWSMessage(v)
		}
	}()
	return quit
}
