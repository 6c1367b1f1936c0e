package design

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// node draws a rounded box centered at a data point with centered text, the
// basic building block of the diagram figures. Returns the canvas center.
func node(s shapes.Space, x, y, w, h float64, txt string, fill color.Color, fnt vg.Length, bold bool) vg.Point {
	rect := s.Rect(x-w/2, y-h/2, w, h)
	shapes.RoundedBox(s.Canvas, rect, vg.Points(5), fill, color.Black, vg.Points(1.5))

	f := shapes.Serif(fnt)
	if bold {
		f = shapes.SerifBold(fnt)
	}
	center := s.Pt(x, y)
	shapes.Label(s.Canvas, center, txt, shapes.Text(f, color.Black))
	return center
}

// edge draws a straight arrow between two data points.
func edge(s shapes.Space, x1, y1, x2, y2 float64, sty draw.LineStyle) {
	shapes.Arrow(s.Canvas, s.Pt(x1, y1), s.Pt(x2, y2), shapes.ArrowStyle{
		Line:       sty,
		HeadLength: vg.Points(8),
	})
}

// suptitle centers a bold title near the top of the canvas.
func suptitle(dc draw.Canvas, txt string, size vg.Length) {
	pt := vg.Point{
		X: (dc.Rectangle.Min.X + dc.Rectangle.Max.X) / 2,
		Y: dc.Rectangle.Max.Y - vg.Points(20),
	}
	shapes.Label(dc, pt, txt, shapes.Text(shapes.SerifBold(size), color.Black))
}

// swatchEntry is one colored swatch with its caption in a legend box.
type swatchEntry struct {
	label string
	color color.Color
}

// legendBox draws a bordered legend anchored at its top-right corner.
func legendBox(dc draw.Canvas, topRight vg.Point, entries []swatchEntry) {
	pal := figure.MustStyles()
	fnt := shapes.Serif(pal.MustFontSize("small"))

	var maxW vg.Length
	for _, e := range entries {
		w, _ := shapes.Measure(e.label, fnt)
		if w > maxW {
			maxW = w
		}
	}
	swatch := vg.Points(12)
	pad := vg.Points(6)
	rowH := vg.Points(14)
	boxW := swatch + pad*3 + maxW
	boxH := rowH*vg.Length(len(entries)) + pad*2

	rect := vg.Rectangle{
		Min: vg.Point{X: topRight.X - boxW, Y: topRight.Y - boxH},
		Max: topRight,
	}
	shapes.Rect(dc, rect, color.White, color.Black, vg.Points(1))

	for i, e := range entries {
		y := topRight.Y - pad - rowH*vg.Length(i) - rowH/2
		swRect := vg.Rectangle{
			Min: vg.Point{X: rect.Min.X + pad, Y: y - swatch/2},
			Max: vg.Point{X: rect.Min.X + pad + swatch, Y: y + swatch/2},
		}
		shapes.Rect(dc, swRect, e.color, color.Black, vg.Points(0.5))
		shapes.Label(dc, vg.Point{X: swRect.Max.X + pad, Y: y}, e.label,
			shapes.AlignedText(fnt, color.Black, text.XLeft, text.YCenter))
	}
}

// footer draws an italic boxed note centered along the bottom of the canvas.
func footer(dc draw.Canvas, txt string, fill, edge color.Color) {
	pal := figure.MustStyles()
	pt := vg.Point{
		X: (dc.Rectangle.Min.X + dc.Rectangle.Max.X) / 2,
		Y: dc.Rectangle.Min.Y + vg.Points(16),
	}
	sty := shapes.Text(shapes.SerifItalic(pal.MustFontSize("small")), color.Black)
	shapes.BoxedLabel(dc, pt, txt, sty, fill, edge, vg.Points(1))
}
