package costs

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// Monthly operating cost ranges in USD by user count. EVMAuth stays flat
// (stateless verification, one-time gas per user); OAuth infrastructure
// scales with database and cache load.
var (
	tcoUsers      = []float64{100, 1000, 10000, 100000}
	tcoUserLabels = []string{"100", "1K", "10K", "100K"}

	evmauthMin = []float64{5, 5, 5, 5}
	evmauthMax = []float64{30, 30, 30, 30}

	oauthMin = []float64{55, 60, 70, 90}
	oauthMax = []float64{160, 175, 200, 250}
)

type tcoCurve struct{}

// NewTCOCurve builds the total-cost-of-ownership chart: cost ranges and
// averages for both stacks across a logarithmic user scale.
func NewTCOCurve() figure.Figure { return tcoCurve{} }

func (tcoCurve) Name() string  { return "tco_line_chart" }
func (tcoCurve) Title() string { return "Total Cost of Ownership: EVMAuth vs OAuth" }

func (tcoCurve) Category() figure.Category { return figure.CategoryCost }

func (tcoCurve) Size() (vg.Length, vg.Length) { return 10 * vg.Inch, 6 * vg.Inch }

func (f tcoCurve) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}
	steel := pal.MustColor("steel")
	berry := pal.MustColor("berry")

	p := newChart(f.Title(), "Number of Users (log scale)", "Monthly Cost (USD)")
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = userTicks{}
	p.Y.Min, p.Y.Max = 0, 280
	p.Add(dashedGrid())

	if err := f.addSeries(p, evmauthMin, evmauthMax, steel, draw.CircleGlyph{}, "EVMAuth"); err != nil {
		return err
	}
	if err := f.addSeries(p, oauthMin, oauthMax, berry, draw.BoxGlyph{}, "OAuth"); err != nil {
		return err
	}

	if err := f.addAverageLabels(p, pal); err != nil {
		return err
	}

	green := pal.MustColor("emerald")
	note, err := valueLabels(
		plotter.XYs{{X: 20000, Y: 110}},
		[]string{"EVMAuth cheaper at all scales"},
		shapes.Text(shapes.SerifBold(pal.MustFontSize("base")), green),
	)
	if err != nil {
		return err
	}
	p.Add(note)

	p.Legend.Top = true
	p.Legend.Left = true

	height := dc.Rectangle.Max.Y - dc.Rectangle.Min.Y
	plotArea := draw.Crop(dc, 0, 0, vg.Points(30), 0)
	p.Draw(plotArea)

	strip := draw.Crop(dc, 0, 0, 0, -(height - vg.Points(28)))
	footerNote(strip,
		"Note: EVMAuth costs remain flat due to stateless architecture. Gas costs are one-time ($0.00037/user on L2).",
		pal.MustColor("light_yellow"), color.Black)
	return nil
}

func (tcoCurve) addSeries(p *plot.Plot, mins, maxs []float64, clr color.NRGBA, glyph draw.GlyphDrawer, name string) error {
	band := make(plotter.XYs, 0, len(mins)*2)
	for i, u := range tcoUsers {
		band = append(band, plotter.XY{X: u, Y: mins[i]})
	}
	for i := len(tcoUsers) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: tcoUsers[i], Y: maxs[i]})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return fmt.Errorf("tco band: %w", err)
	}
	faded := clr
	faded.A = 0x4D
	poly.Color = faded
	poly.LineStyle.Color = color.Transparent

	avg := make(plotter.XYs, len(mins))
	for i, u := range tcoUsers {
		avg[i] = plotter.XY{X: u, Y: (mins[i] + maxs[i]) / 2}
	}
	line, err := plotter.NewLine(avg)
	if err != nil {
		return fmt.Errorf("tco line: %w", err)
	}
	line.LineStyle.Color = clr
	line.LineStyle.Width = vg.Points(2.5)

	points, err := plotter.NewScatter(avg)
	if err != nil {
		return fmt.Errorf("tco points: %w", err)
	}
	points.GlyphStyle = draw.GlyphStyle{Color: clr, Radius: vg.Points(4), Shape: glyph}

	p.Add(poly, line, points)
	p.Legend.Add(name+" range", poly)
	p.Legend.Add(name+" (avg)", line, points)
	return nil
}

func (tcoCurve) addAverageLabels(p *plot.Plot, pal *figure.Palette) error {
	fnt := shapes.Serif(pal.MustFontSize("annotation"))

	for i, u := range tcoUsers {
		evm := (evmauthMin[i] + evmauthMax[i]) / 2
		oauth := (oauthMin[i] + oauthMax[i]) / 2

		above, err := valueLabels(
			plotter.XYs{{X: u, Y: evm + 8}},
			[]string{fmt.Sprintf("$%.0f", evm)},
			shapes.AlignedText(fnt, color.Black, text.XCenter, text.YBottom),
		)
		if err != nil {
			return err
		}
		below, err := valueLabels(
			plotter.XYs{{X: u, Y: oauth - 10}},
			[]string{fmt.Sprintf("$%.0f", oauth)},
			shapes.AlignedText(fnt, color.Black, text.XCenter, text.YTop),
		)
		if err != nil {
			return err
		}
		p.Add(above, below)
	}
	return nil
}

// userTicks marks the four measured user scales on the log axis.
type userTicks struct{}

func (userTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(tcoUsers))
	for i, u := range tcoUsers {
		if u < min || u > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: u, Label: tcoUserLabels[i]})
	}
	return ticks
}
