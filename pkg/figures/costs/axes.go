package costs

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// axisTick pairs a data-space position with its printed label.
type axisTick struct {
	value float64
	label string
}

// chartArea crops the plotting region out of the full canvas, leaving room
// for the title, axis labels and tick labels drawn by hand.
func chartArea(dc draw.Canvas, left, right, bottom, top vg.Length) draw.Canvas {
	return draw.Crop(dc, left, -right, bottom, -top)
}

// drawFrame strokes the left and bottom spines of a hand-drawn chart.
func drawFrame(s shapes.Space) {
	black := shapes.Solid(color.Black, vg.Points(1))
	r := s.Canvas.Rectangle
	shapes.Line(s.Canvas, r.Min, vg.Point{X: r.Max.X, Y: r.Min.Y}, black)
	shapes.Line(s.Canvas, r.Min, vg.Point{X: r.Min.X, Y: r.Max.Y}, black)
}

// drawYTicks renders horizontal dashed gridlines with tick labels left of the
// axis.
func drawYTicks(s shapes.Space, ticks []axisTick, grid bool) {
	pal := figure.MustStyles()
	faint := color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0x4D}
	labelSty := shapes.AlignedText(shapes.Serif(pal.MustFontSize("small")), color.Black, text.XRight, text.YCenter)

	r := s.Canvas.Rectangle
	for _, tick := range ticks {
		y := s.Y(tick.value)
		if grid {
			shapes.Line(s.Canvas, vg.Point{X: r.Min.X, Y: y}, vg.Point{X: r.Max.X, Y: y},
				shapes.Dashed(faint, vg.Points(0.5)))
		}
		shapes.Line(s.Canvas, vg.Point{X: r.Min.X - vg.Points(3), Y: y}, vg.Point{X: r.Min.X, Y: y},
			shapes.Solid(color.Black, vg.Points(1)))
		shapes.Label(s.Canvas, vg.Point{X: r.Min.X - vg.Points(6), Y: y}, tick.label, labelSty)
	}
}

// drawXTicks renders category labels under the axis.
func drawXTicks(s shapes.Space, ticks []axisTick) {
	pal := figure.MustStyles()
	labelSty := shapes.AlignedText(shapes.Serif(pal.MustFontSize("small")), color.Black, text.XCenter, text.YTop)

	r := s.Canvas.Rectangle
	for _, tick := range ticks {
		x := s.X(tick.value)
		shapes.Line(s.Canvas, vg.Point{X: x, Y: r.Min.Y}, vg.Point{X: x, Y: r.Min.Y - vg.Points(3)},
			shapes.Solid(color.Black, vg.Points(1)))
		shapes.Label(s.Canvas, vg.Point{X: x, Y: r.Min.Y - vg.Points(6)}, tick.label, labelSty)
	}
}

// drawYAxisTitle writes a rotated axis caption left of the plotting region.
func drawYAxisTitle(s shapes.Space, caption string, offset vg.Length) {
	pal := figure.MustStyles()
	r := s.Canvas.Rectangle
	pt := vg.Point{X: r.Min.X - offset, Y: (r.Min.Y + r.Max.Y) / 2}
	sty := shapes.RotatedText(shapes.SerifBold(pal.MustFontSize("label")), color.Black, 1.5707963267948966)
	shapes.Label(s.Canvas, pt, caption, sty)
}

// drawChartTitle centers a bold title over the plotting region.
func drawChartTitle(s shapes.Space, title string, offset vg.Length) {
	pal := figure.MustStyles()
	r := s.Canvas.Rectangle
	pt := vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: r.Max.Y + offset}
	shapes.Label(s.Canvas, pt, title, shapes.Text(shapes.SerifBold(pal.MustFontSize("title")), color.Black))
}

// legendEntry is one swatch/label pair for a hand-drawn legend box.
type legendEntry struct {
	label string
	color color.Color
}

// drawLegend renders a bordered legend anchored at its top-right corner.
func drawLegend(dc draw.Canvas, topRight vg.Point, entries []legendEntry) {
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
