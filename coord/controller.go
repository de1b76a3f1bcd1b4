// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package coord

// MapDisplay receives successfully converted coordinates, typically to
// recenter a map view.
type MapDisplay interface {
	SetCoordinate(lat, lng float64)
}

// MapDisplayFunc adapts a function to the MapDisplay interface.
type MapDisplayFunc func(lat, lng float64)

func (f MapDisplayFunc) SetCoordinate(lat, lng float64) { f(lat, lng) }

// Controller holds the input state of one coordinate entry: the current
// mode, the masked text and the outcome of the last conversion.
//
// At most one of result and diagnostic is set at any time. Both are cleared
// by SetMode and by every keystroke.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	projector Projector
	displays  []MapDisplay

	mode   Mode
	text   string
	result *DecimalCoordinate
	diag   *Diagnostic
}

// State is a snapshot of a Controller.
type State struct {
	Mode       Mode               `json:"mode"`
	Text       string             `json:"text"`
	Result     *DecimalCoordinate `json:"result,omitempty"`
	Diagnostic *Diagnostic        `json:"-"`
}

type Option func(*Controller)

// WithMode sets the initial mode (default is ModeUTM).
func WithMode(m Mode) Option { return func(c *Controller) { c.mode = m } }

// WithDisplay registers a MapDisplay notified on every successful conversion.
func WithDisplay(d MapDisplay) Option { return func(c *Controller) { c.AddDisplay(d) } }

func NewController(p Projector, opts ...Option) *Controller {
	c := &Controller{projector: p, mode: ModeUTM}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) AddDisplay(d MapDisplay) {
	if d != nil {
		c.displays = append(c.displays, d)
	}
}

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Text() string { return c.text }

// Result returns the last converted coordinate, if any.
func (c *Controller) Result() (DecimalCoordinate, bool) {
	if c.result == nil {
		return DecimalCoordinate{}, false
	}
	return *c.result, true
}

// Diagnostic returns the diagnostic of the last failed conversion, if any.
func (c *Controller) Diagnostic() *Diagnostic { return c.diag }

func (c *Controller) State() State {
	s := State{Mode: c.mode, Text: c.text, Diagnostic: c.diag}
	if c.result != nil {
		r := *c.result
		s.Result = &r
	}
	return s
}

// SetMode switches notation and resets text, result and diagnostic.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
	c.Clear()
}

// Clear resets text, result and diagnostic.
func (c *Controller) Clear() {
	c.text = ""
	c.reset()
}

// Input handles a keystroke event carrying the attempted new text. The
// text is replaced by its masked form, which is returned.
func (c *Controller) Input(attempted string) string {
	c.text = Mask(c.mode, attempted)
	c.reset()
	return c.text
}

// Type feeds each rune of s as a separate keystroke appended to the
// current text.
func (c *Controller) Type(s string) string {
	for _, r := range s {
		c.Input(c.text + string(r))
	}
	if s == "" {
		c.Input(c.text)
	}
	return c.text
}

// Backspace removes the last n characters of the masked text, as n
// keystrokes.
func (c *Controller) Backspace(n int) string {
	for ; n > 0 && c.text != ""; n-- {
		runes := []rune(c.text)
		c.Input(string(runes[:len(runes)-1]))
	}
	return c.text
}

func (c *Controller) reset() {
	c.result, c.diag = nil, nil
}

// Convert validates and converts the current text.
//
// On success the result is stored, every MapDisplay is notified and the
// coordinate is returned. On failure the diagnostic is stored and returned
// as the error (always a *Diagnostic).
func (c *Controller) Convert() (DecimalCoordinate, error) {
	c.reset()

	pc, err := Validate(c.mode, c.text)
	var coord DecimalCoordinate
	if err == nil {
		coord, err = Convert(c.projector, pc)
	}
	if err != nil {
		c.diag = AsDiagnostic(err)
		return DecimalCoordinate{}, c.diag
	}

	c.result = &coord
	for _, d := range c.displays {
		d.SetCoordinate(coord.Lat, coord.Lng)
	}
	return coord, nil
}
