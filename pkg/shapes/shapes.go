package shapes

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Rect fills and outlines an axis-aligned rectangle. A nil fill or edge skips
// that pass.
func Rect(dc draw.Canvas, rect vg.Rectangle, fill, edge color.Color, lineWidth vg.Length) {
	var p vg.Path
	p.Move(rect.Min)
	p.Line(vg.Point{X: rect.Max.X, Y: rect.Min.Y})
	p.Line(rect.Max)
	p.Line(vg.Point{X: rect.Min.X, Y: rect.Max.Y})
	p.Close()
	fillStroke(dc, p, fill, edge, lineWidth)
}

// RoundedBox fills and outlines a rectangle with rounded corners.
func RoundedBox(dc draw.Canvas, rect vg.Rectangle, radius vg.Length, fill, edge color.Color, lineWidth vg.Length) {
	w := rect.Max.X - rect.Min.X
	h := rect.Max.Y - rect.Min.Y
	r := radius
	if max := minLen(w, h) / 2; r > max {
		r = max
	}
	if r <= 0 {
		Rect(dc, rect, fill, edge, lineWidth)
		return
	}

	var p vg.Path
	p.Move(vg.Point{X: rect.Min.X + r, Y: rect.Min.Y})
	p.Line(vg.Point{X: rect.Max.X - r, Y: rect.Min.Y})
	p.Arc(vg.Point{X: rect.Max.X - r, Y: rect.Min.Y + r}, r, -math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: rect.Max.X, Y: rect.Max.Y - r})
	p.Arc(vg.Point{X: rect.Max.X - r, Y: rect.Max.Y - r}, r, 0, math.Pi/2)
	p.Line(vg.Point{X: rect.Min.X + r, Y: rect.Max.Y})
	p.Arc(vg.Point{X: rect.Min.X + r, Y: rect.Max.Y - r}, r, math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: rect.Min.X, Y: rect.Min.Y + r})
	p.Arc(vg.Point{X: rect.Min.X + r, Y: rect.Min.Y + r}, r, math.Pi, math.Pi/2)
	p.Close()
	fillStroke(dc, p, fill, edge, lineWidth)
}

// Circle fills and outlines a circle.
func Circle(dc draw.Canvas, center vg.Point, radius vg.Length, fill, edge color.Color, lineWidth vg.Length) {
	var p vg.Path
	p.Move(vg.Point{X: center.X + radius, Y: center.Y})
	p.Arc(center, radius, 0, 2*math.Pi)
	p.Close()
	fillStroke(dc, p, fill, edge, lineWidth)
}

// StrokeCircle outlines a circle with a full line style (dashes included).
func StrokeCircle(dc draw.Canvas, center vg.Point, radius vg.Length, sty draw.LineStyle) {
	var p vg.Path
	p.Move(vg.Point{X: center.X + radius, Y: center.Y})
	p.Arc(center, radius, 0, 2*math.Pi)
	p.Close()
	strokePath(dc, p, sty)
}

// Wedge fills and outlines a pie slice spanning [start, start+sweep] radians,
// counter-clockwise from east.
func Wedge(dc draw.Canvas, center vg.Point, radius vg.Length, start, sweep float64, fill, edge color.Color, lineWidth vg.Length) {
	var p vg.Path
	p.Move(center)
	p.Line(vg.Point{
		X: center.X + radius*vg.Length(math.Cos(start)),
		Y: center.Y + radius*vg.Length(math.Sin(start)),
	})
	p.Arc(center, radius, start, sweep)
	p.Close()
	fillStroke(dc, p, fill, edge, lineWidth)
}

// Diamond fills and outlines a rhombus centered at a point, the decision-node
// shape in the workflow diagrams.
func Diamond(dc draw.Canvas, center vg.Point, w, h vg.Length, fill, edge color.Color, lineWidth vg.Length) {
	pts := []vg.Point{
		{X: center.X, Y: center.Y + h/2},
		{X: center.X + w/2, Y: center.Y},
		{X: center.X, Y: center.Y - h/2},
		{X: center.X - w/2, Y: center.Y},
	}
	FillPolygon(dc, pts, fill, edge, lineWidth)
}

// FillPolygon fills and outlines a closed polygon.
func FillPolygon(dc draw.Canvas, pts []vg.Point, fill, edge color.Color, lineWidth vg.Length) {
	if len(pts) < 3 {
		return
	}
	var p vg.Path
	p.Move(pts[0])
	for _, pt := range pts[1:] {
		p.Line(pt)
	}
	p.Close()
	fillStroke(dc, p, fill, edge, lineWidth)
}

// StrokePolygon outlines a closed polygon with a full line style.
func StrokePolygon(dc draw.Canvas, pts []vg.Point, sty draw.LineStyle) {
	if len(pts) < 2 {
		return
	}
	var p vg.Path
	p.Move(pts[0])
	for _, pt := range pts[1:] {
		p.Line(pt)
	}
	p.Close()
	strokePath(dc, p, sty)
}

// Line strokes a straight segment.
func Line(dc draw.Canvas, from, to vg.Point, sty draw.LineStyle) {
	var p vg.Path
	p.Move(from)
	p.Line(to)
	strokePath(dc, p, sty)
}

// Polyline strokes an open point sequence.
func Polyline(dc draw.Canvas, pts []vg.Point, sty draw.LineStyle) {
	if len(pts) < 2 {
		return
	}
	var p vg.Path
	p.Move(pts[0])
	for _, pt := range pts[1:] {
		p.Line(pt)
	}
	strokePath(dc, p, sty)
}

// ArrowStyle configures arrow rendering.
type ArrowStyle struct {
	Line draw.LineStyle
	// HeadLength is the arrow head size; zero defaults to 8pt.
	HeadLength vg.Length
	// Curvature bends the shaft like a quadratic arc: the control point sits
	// perpendicular to the chord at Curvature x chord-length. Zero draws a
	// straight arrow.
	Curvature float64
	// DoubleHeaded adds a head at the origin as well.
	DoubleHeaded bool
}

// Arrow draws an arrow from one canvas point to another.
func Arrow(dc draw.Canvas, from, to vg.Point, sty ArrowStyle) {
	head := sty.HeadLength
	if head <= 0 {
		head = vg.Points(8)
	}

	if sty.Curvature == 0 {
		dir := math.Atan2(float64(to.Y-from.Y), float64(to.X-from.X))
		shaftEnd := backOff(to, dir, head)
		shaftStart := from
		if sty.DoubleHeaded {
			shaftStart = backOff(from, dir+math.Pi, head)
		}
		Line(dc, shaftStart, shaftEnd, sty.Line)
		arrowHead(dc, to, dir, head, sty.Line.Color)
		if sty.DoubleHeaded {
			arrowHead(dc, from, dir+math.Pi, head, sty.Line.Color)
		}
		return
	}

	pts := QuadPoints(from, quadControl(from, to, sty.Curvature), to, 24)
	last := pts[len(pts)-1]
	prev := pts[len(pts)-2]
	dir := math.Atan2(float64(last.Y-prev.Y), float64(last.X-prev.X))
	pts[len(pts)-1] = backOff(last, dir, head)
	Polyline(dc, pts, sty.Line)
	arrowHead(dc, to, dir, head, sty.Line.Color)
	if sty.DoubleHeaded {
		first, next := pts[0], pts[1]
		back := math.Atan2(float64(first.Y-next.Y), float64(first.X-next.X))
		arrowHead(dc, from, back, head, sty.Line.Color)
	}
}

// QuadPoints samples a quadratic bezier curve into n points, endpoints
// included.
func QuadPoints(from, ctrl, to vg.Point, n int) []vg.Point {
	if n < 2 {
		n = 2
	}
	pts := make([]vg.Point, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		mt := 1 - t
		pts[i] = vg.Point{
			X: vg.Length(mt*mt)*from.X + vg.Length(2*mt*t)*ctrl.X + vg.Length(t*t)*to.X,
			Y: vg.Length(mt*mt)*from.Y + vg.Length(2*mt*t)*ctrl.Y + vg.Length(t*t)*to.Y,
		}
	}
	return pts
}

func quadControl(from, to vg.Point, curvature float64) vg.Point {
	mid := vg.Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	return vg.Point{
		X: mid.X - vg.Length(dy*curvature),
		Y: mid.Y + vg.Length(dx*curvature),
	}
}

func backOff(pt vg.Point, dir float64, dist vg.Length) vg.Point {
	return vg.Point{
		X: pt.X - dist*vg.Length(math.Cos(dir)),
		Y: pt.Y - dist*vg.Length(math.Sin(dir)),
	}
}

func arrowHead(dc draw.Canvas, tip vg.Point, dir float64, length vg.Length, clr color.Color) {
	if clr == nil {
		clr = color.Black
	}
	base := backOff(tip, dir, length)
	perp := dir + math.Pi/2
	half := length * 0.4
	off := vg.Point{
		X: half * vg.Length(math.Cos(perp)),
		Y: half * vg.Length(math.Sin(perp)),
	}
	dc.FillPolygon(clr, []vg.Point{
		tip,
		{X: base.X + off.X, Y: base.Y + off.Y},
		{X: base.X - off.X, Y: base.Y - off.Y},
	})
}

// Dashed returns a line style with the standard short-dash pattern used for
// secondary connectors.
func Dashed(clr color.Color, width vg.Length) draw.LineStyle {
	return draw.LineStyle{
		Color:  clr,
		Width:  width,
		Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
	}
}

// Solid returns a plain solid line style.
func Solid(clr color.Color, width vg.Length) draw.LineStyle {
	return draw.LineStyle{Color: clr, Width: width}
}

func fillStroke(dc draw.Canvas, p vg.Path, fill, edge color.Color, lineWidth vg.Length) {
	if fill != nil {
		dc.SetColor(fill)
		dc.Fill(p)
	}
	if edge != nil && lineWidth > 0 {
		dc.SetColor(edge)
		dc.SetLineWidth(lineWidth)
		dc.SetLineDash(nil, 0)
		dc.Stroke(p)
	}
}

func strokePath(dc draw.Canvas, p vg.Path, sty draw.LineStyle) {
	clr := sty.Color
	if clr == nil {
		clr = color.Black
	}
	width := sty.Width
	if width <= 0 {
		width = vg.Points(1)
	}
	dc.SetColor(clr)
	dc.SetLineWidth(width)
	dc.SetLineDash(sty.Dashes, sty.DashOffs)
	dc.Stroke(p)
	dc.SetLineDash(nil, 0)
}

func minLen(a, b vg.Length) vg.Length {
	if a < b {
		return a
	}
	return b
}
