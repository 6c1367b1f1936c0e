package shapes

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Space maps a rectangular data coordinate system onto a canvas rectangle.
// Diagram figures lay out their boxes in the same abstract units the source
// artwork used and let Space place them on the page.
type Space struct {
	Canvas                 draw.Canvas
	XMin, XMax, YMin, YMax float64
}

// NewSpace builds a Space covering the full canvas rectangle.
func NewSpace(dc draw.Canvas, xmin, xmax, ymin, ymax float64) Space {
	return Space{Canvas: dc, XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// X converts a data x coordinate into a canvas x coordinate.
func (s Space) X(x float64) vg.Length {
	r := s.Canvas.Rectangle
	frac := (x - s.XMin) / (s.XMax - s.XMin)
	return r.Min.X + vg.Length(frac)*(r.Max.X-r.Min.X)
}

// Y converts a data y coordinate into a canvas y coordinate.
func (s Space) Y(y float64) vg.Length {
	r := s.Canvas.Rectangle
	frac := (y - s.YMin) / (s.YMax - s.YMin)
	return r.Min.Y + vg.Length(frac)*(r.Max.Y-r.Min.Y)
}

// Pt converts a data point into a canvas point.
func (s Space) Pt(x, y float64) vg.Point {
	return vg.Point{X: s.X(x), Y: s.Y(y)}
}

// DX converts a data-space width into a canvas length.
func (s Space) DX(dx float64) vg.Length {
	r := s.Canvas.Rectangle
	return vg.Length(dx/(s.XMax-s.XMin)) * (r.Max.X - r.Min.X)
}

// DY converts a data-space height into a canvas length.
func (s Space) DY(dy float64) vg.Length {
	r := s.Canvas.Rectangle
	return vg.Length(dy/(s.YMax-s.YMin)) * (r.Max.Y - r.Min.Y)
}

// Rect converts a data-space rectangle (origin plus extent) into canvas
// coordinates.
func (s Space) Rect(x, y, w, h float64) vg.Rectangle {
	return vg.Rectangle{
		Min: s.Pt(x, y),
		Max: s.Pt(x+w, y+h),
	}
}

// Polar returns the data point at the given radius and angle (radians,
// counter-clockwise from east) around a data-space center.
func Polar(cx, cy, r, angle float64) (x, y float64) {
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}

// PolarPt returns the canvas point at the given radius and angle (radians,
// counter-clockwise from east) around a canvas center.
func PolarPt(center vg.Point, radius vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + radius*vg.Length(math.Cos(angle)),
		Y: center.Y + radius*vg.Length(math.Sin(angle)),
	}
}
