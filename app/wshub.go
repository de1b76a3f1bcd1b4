package app

import "github.com/geoconv/geoconv/coord"

// WSHub broadcasts state to connected web clients. It is the map display
// of the app's coordinate entry.
type WSHub interface {
	coord.MapDisplay
	UpdateStatus()
	NumClients() int
	ClientAddrs() []string
	Close() error
}

type noopWSHub struct{}

func (noopWSHub) SetCoordinate(lat, lng float64) {}
func (noopWSHub) UpdateStatus()                  {}
func (noopWSHub) NumClients() int                { return 0 }
func (noopWSHub) ClientAddrs() []string          { return []string{} }
func (noopWSHub) Close() error                   { return nil }
