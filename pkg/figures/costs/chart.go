package costs

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// newChart builds a plot with the shared publication styling: serif faces,
// bold title and axis labels, dashed grid.
func newChart(title, xLabel, yLabel string) *plot.Plot {
	pal := figure.MustStyles()

	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = vg.Points(8)
	p.Title.TextStyle.Font = shapes.SerifBold(pal.MustFontSize("title"))

	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font = shapes.SerifBold(pal.MustFontSize("label"))
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font = shapes.SerifBold(pal.MustFontSize("label"))

	p.X.Tick.Label.Font = shapes.Serif(pal.MustFontSize("small"))
	p.Y.Tick.Label.Font = shapes.Serif(pal.MustFontSize("small"))

	p.Legend.TextStyle.Font = shapes.Serif(pal.MustFontSize("small"))
	return p
}

// dashedGrid matches the faint dashed grid of the source charts.
func dashedGrid() *plotter.Grid {
	g := plotter.NewGrid()
	faint := color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0x4D}
	g.Vertical.Color = faint
	g.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	g.Horizontal.Color = faint
	g.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	return g
}

// valueLabels annotates data points, one label per point.
func valueLabels(xys plotter.XYs, labels []string, sty text.Style) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i] = sty
	}
	return l, nil
}

// footerNote draws an italic note in a boxed strip under a figure, mirroring
// the fig.text(...) captions of the source artwork. The strip canvas must
// already be cropped to the note area.
func footerNote(dc draw.Canvas, txt string, fill, edge color.Color) {
	pal := figure.MustStyles()
	center := vg.Point{
		X: (dc.Rectangle.Min.X + dc.Rectangle.Max.X) / 2,
		Y: (dc.Rectangle.Min.Y + dc.Rectangle.Max.Y) / 2,
	}
	sty := shapes.Text(shapes.SerifItalic(pal.MustFontSize("small")), color.Black)
	shapes.BoxedLabel(dc, center, txt, sty, fill, edge, vg.Points(1))
}
