package costs

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// Deployment gas in thousands, from the Foundry gas reports. The proxy is an
// ERC1967Proxy and costs the same either way; token configuration covers the
// five access tiers.
var deploySegments = []struct {
	label string
	color string
	gas   []float64 // per implementation: ERC-1155, ERC-6909
}{
	{"Proxy Deployment", "moss", []float64{205, 205}},
	{"Implementation Contract", "steel", []float64{5355, 4864}},
	{"Token Configuration (5 tokens)", "amber", []float64{2653, 2503}},
}

var deployImpls = []string{"ERC-1155", "ERC-6909"}

type deploymentBreakdown struct{}

// NewDeploymentBreakdown builds the stacked bar chart of deployment gas by
// component for the two token implementations.
func NewDeploymentBreakdown() figure.Figure { return deploymentBreakdown{} }

func (deploymentBreakdown) Name() string  { return "deployment_stacked_bar" }
func (deploymentBreakdown) Title() string { return "EVMAuth Deployment Cost Breakdown" }

func (deploymentBreakdown) Category() figure.Category { return figure.CategoryCost }

func (deploymentBreakdown) Size() (vg.Length, vg.Length) { return 8 * vg.Inch, 6 * vg.Inch }

func (f deploymentBreakdown) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}

	p := newChart(f.Title(), "", "Gas Cost (thousands)")
	p.Y.Min, p.Y.Max = 0, 9600
	p.NominalX(deployImpls...)
	p.Add(dashedGrid())

	var prev *plotter.BarChart
	for _, seg := range deploySegments {
		bars, err := plotter.NewBarChart(plotter.Values(seg.gas), vg.Points(80))
		if err != nil {
			return fmt.Errorf("deployment bars: %w", err)
		}
		bars.Color = pal.MustColor(seg.color)
		bars.LineStyle.Width = vg.Points(1)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(seg.label, bars)
		prev = bars
	}

	if err := f.addSegmentLabels(p, pal); err != nil {
		return err
	}

	p.Legend.Top = true

	plotArea := draw.Crop(dc, 0, 0, vg.Points(30), 0)
	p.Draw(plotArea)

	f.drawTotals(p, plotArea, pal)

	const (
		gas1155  = 8212855
		gas6909  = 7571932
		ethPrice = 2500
		gweiL2   = 0.15
	)
	cost1155 := gas1155 * gweiL2 * 1e-9 * ethPrice
	cost6909 := gas6909 * gweiL2 * 1e-9 * ethPrice

	height := dc.Rectangle.Max.Y - dc.Rectangle.Min.Y
	strip := draw.Crop(dc, 0, 0, 0, -(height - vg.Points(28)))
	footerNote(strip,
		fmt.Sprintf("At Base L2 (0.15 Gwei, ETH=$2500): ERC-1155 = $%.2f, ERC-6909 = $%.2f | Savings: %.1f%%",
			cost1155, cost6909, (cost1155-cost6909)/cost1155*100),
		pal.Alpha("light_green", 0xB3), pal.MustColor("dark_green"))
	return nil
}

// addSegmentLabels places the per-segment gas amounts, white on the fill.
func (deploymentBreakdown) addSegmentLabels(p *plot.Plot, pal *figure.Palette) error {
	sty := shapes.Text(shapes.SerifBold(pal.MustFontSize("annotation")), color.White)
	for i := range deployImpls {
		var base float64
		for _, seg := range deploySegments {
			v := seg.gas[i]
			lbl, err := valueLabels(
				plotter.XYs{{X: float64(i), Y: base + v/2}},
				[]string{fmt.Sprintf("%.0fK", v)},
				sty,
			)
			if err != nil {
				return err
			}
			p.Add(lbl)
			base += v
		}
	}
	return nil
}

// drawTotals boxes the stack totals above each bar. It runs after the plot is
// drawn so the data-to-canvas transforms are available.
func (deploymentBreakdown) drawTotals(p *plot.Plot, plotArea draw.Canvas, pal *figure.Palette) {
	da := p.DataCanvas(plotArea)
	trX, trY := p.Transforms(&da)

	sty := shapes.Text(shapes.SerifBold(pal.MustFontSize("base")), color.Black)
	for i := range deployImpls {
		var total float64
		for _, seg := range deploySegments {
			total += seg.gas[i]
		}
		txt := fmt.Sprintf("Total:\n%.0fK gas", total)
		_, h := shapes.Measure(txt, sty.Font)
		pt := vg.Point{X: trX(float64(i)), Y: trY(total+200) + h/2 + sty.Font.Size*0.4}
		shapes.BoxedLabel(da, pt, txt, sty, pal.MustColor("light_yellow"), color.Black, vg.Points(1))
	}
}
