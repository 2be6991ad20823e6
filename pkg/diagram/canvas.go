package diagram

import (
	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/geo"
)

// Canvas is the fixed drawing surface of a diagram: a physical size in
// inches and the data coordinate ranges that element positions use.
type Canvas struct {
	Width  float64 `json:"width"`  // inches
	Height float64 `json:"height"` // inches

	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`

	// Background fills the full canvas before elements paint.
	// Zero value defaults to white.
	Background Color `json:"background,omitempty"`

	// ShowAxes draws a coordinate ruler and gridlines for authoring.
	// Finished diagrams leave it off.
	ShowAxes bool `json:"show_axes,omitempty"`
}

// Validate checks the canvas configuration.
// Returns an INVALID_CANVAS error describing the first problem found.
func (c *Canvas) Validate() error {
	if c.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas width must be positive, got %g", c.Width)
	}
	if c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas height must be positive, got %g", c.Height)
	}
	if c.XMax <= c.XMin {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas x range [%g, %g] is empty or inverted", c.XMin, c.XMax)
	}
	if c.YMax <= c.YMin {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas y range [%g, %g] is empty or inverted", c.YMin, c.YMax)
	}
	return nil
}

// SetDefaults fills unset optional fields.
func (c *Canvas) SetDefaults() {
	if c.Background.IsZero() {
		c.Background = defaultBackground
	}
}

// Rect returns the data coordinate range as a rectangle.
func (c *Canvas) Rect() geo.Rect {
	return geo.Rect{X: c.XMin, Y: c.YMin, W: c.XMax - c.XMin, H: c.YMax - c.YMin}
}

// Contains reports whether p lies within the data ranges (edges inclusive).
func (c *Canvas) Contains(p geo.Point) bool {
	return c.Rect().ContainsPoint(p)
}
