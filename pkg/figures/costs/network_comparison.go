package costs

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// Deployment and per-user purchase costs in USD. Ethereum mainnet at 30 Gwei;
// Base and Arbitrum L2 at 0.15 Gwei (Base averages the observed $2.84-$3.08
// range).
var networkCosts = []struct {
	network    string
	deployment float64
	perUser    float64
}{
	{"Ethereum\nMainnet", 61.60, 11.03},
	{"Base\nL2", 2.96, 0.00037},
	{"Arbitrum\nL2", 2.96, 0.00037},
}

type networkComparison struct{}

// NewNetworkComparison builds the grouped bar chart of deployment and
// per-user costs across networks, on a logarithmic cost axis.
func NewNetworkComparison() figure.Figure { return networkComparison{} }

func (networkComparison) Name() string  { return "network_cost_comparison" }
func (networkComparison) Title() string { return "EVMAuth Deployment Costs Across Networks" }

func (networkComparison) Category() figure.Category { return figure.CategoryCost }

func (networkComparison) Size() (vg.Length, vg.Length) { return 8 * vg.Inch, 5 * vg.Inch }

func (f networkComparison) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}
	steel := pal.MustColor("steel")
	berry := pal.MustColor("berry")

	area := chartArea(dc, vg.Points(70), vg.Points(20), vg.Points(45), vg.Points(35))
	// The y domain is log10(USD): $0.0001 up to ~$300.
	s := shapes.NewSpace(area, -0.5, 2.5, -4, 2.5)

	yTicks := make([]axisTick, 0, 7)
	for exp := -4; exp <= 2; exp++ {
		yTicks = append(yTicks, axisTick{float64(exp), logTickLabel(exp)})
	}
	drawYTicks(s, yTicks, true)

	xTicks := make([]axisTick, len(networkCosts))
	for i, row := range networkCosts {
		xTicks[i] = axisTick{float64(i), row.network}
	}
	drawXTicks(s, xTicks)
	drawFrame(s)

	const barWidth = 0.3
	valueSty := shapes.AlignedText(shapes.Serif(pal.MustFontSize("annotation")), color.Black, text.XCenter, text.YBottom)
	for i, row := range networkCosts {
		x := float64(i)
		f.drawBar(s, x-0.17, row.deployment, barWidth, steel)
		f.drawBar(s, x+0.17, row.perUser, barWidth, berry)

		shapes.Label(s.Canvas, vg.Point{X: s.X(x - 0.17), Y: s.Y(math.Log10(row.deployment)) + vg.Points(3)},
			fmt.Sprintf("$%.2f", row.deployment), valueSty)
		shapes.Label(s.Canvas, vg.Point{X: s.X(x + 0.17), Y: s.Y(math.Log10(row.perUser)) + vg.Points(3)},
			formatUSD(row.perUser), valueSty)
	}

	drawChartTitle(s, f.Title(), vg.Points(18))
	drawYAxisTitle(s, "Cost (USD, log scale)", vg.Points(52))

	drawLegend(area, vg.Point{X: area.Rectangle.Max.X - vg.Points(4), Y: area.Rectangle.Max.Y - vg.Points(4)},
		[]legendEntry{
			{"Deployment Cost", steel},
			{"Per-User Cost", berry},
		})

	// The L2 rows sit two to three orders of magnitude under mainnet.
	red := pal.MustColor("crimson")
	calloutAt := s.Pt(1.55, math.Log10(20))
	target := s.Pt(1.1, math.Log10(30))
	shapes.Arrow(s.Canvas, calloutAt, target, shapes.ArrowStyle{
		Line:       shapes.Solid(red, vg.Points(1.5)),
		HeadLength: vg.Points(7),
		Curvature:  0.2,
	})
	shapes.BoxedLabel(s.Canvas, vg.Point{X: calloutAt.X + vg.Points(30), Y: calloutAt.Y},
		"100-500× cost\nreduction",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("small")), red),
		pal.Alpha("light_yellow", 0xB0), nil, 0)

	return nil
}

func (networkComparison) drawBar(s shapes.Space, center, value, width float64, fill color.Color) {
	rect := vg.Rectangle{
		Min: s.Pt(center-width/2, s.YMin),
		Max: s.Pt(center+width/2, math.Log10(value)),
	}
	shapes.Rect(s.Canvas, rect, fill, color.Black, vg.Points(0.5))
}

func logTickLabel(exp int) string {
	if exp >= 0 {
		return fmt.Sprintf("$%.0f", math.Pow10(exp))
	}
	return fmt.Sprintf("$%.*f", -exp, math.Pow10(exp))
}

func formatUSD(v float64) string {
	if v < 0.01 {
		return fmt.Sprintf("$%.5f", v)
	}
	return fmt.Sprintf("$%.2f", v)
}
