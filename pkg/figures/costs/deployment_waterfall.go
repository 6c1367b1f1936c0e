package costs

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// Gas per setup step in thousands, ERC-1155 deployment. Each of the five
// access-tier tokens costs about the same to configure.
var waterfallSteps = []struct {
	label string
	gas   float64
}{
	{"Start", 0},
	{"Deploy\nProxy", 205},
	{"Deploy\nImplementation", 5355},
	{"Token 1:\nBasic", 530},
	{"Token 2:\nPremium", 530},
	{"Token 3:\nAI Agent", 530},
	{"Token 4:\nEnterprise", 530},
	{"Token 5:\nDev Credits", 530},
	{"First\nPurchase", 148},
}

type deploymentWaterfall struct{}

// NewDeploymentWaterfall builds the waterfall chart of cumulative gas across a
// complete system setup, ending in a total bar.
func NewDeploymentWaterfall() figure.Figure { return deploymentWaterfall{} }

func (deploymentWaterfall) Name() string { return "deployment_waterfall" }
func (deploymentWaterfall) Title() string {
	return "EVMAuth Deployment Waterfall: Complete System Setup"
}

func (deploymentWaterfall) Category() figure.Category { return figure.CategoryCost }

func (deploymentWaterfall) Size() (vg.Length, vg.Length) { return 12 * vg.Inch, 7 * vg.Inch }

func (f deploymentWaterfall) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}
	steel := pal.MustColor("steel")

	var total float64
	for _, step := range waterfallSteps {
		total += step.gas
	}
	nBars := len(waterfallSteps) + 1 // plus the total bar

	area := chartArea(dc, vg.Points(70), vg.Points(20), vg.Points(70), vg.Points(40))
	s := shapes.NewSpace(area, -0.6, float64(nBars)-0.4, 0, 8900)

	yTicks := make([]axisTick, 0, 9)
	for v := 0.0; v <= 8000; v += 1000 {
		yTicks = append(yTicks, axisTick{v, fmt.Sprintf("%.0f", v)})
	}
	drawYTicks(s, yTicks, true)

	xTicks := make([]axisTick, 0, nBars)
	for i, step := range waterfallSteps {
		xTicks = append(xTicks, axisTick{float64(i), step.label})
	}
	xTicks = append(xTicks, axisTick{float64(nBars - 1), "Total"})
	drawXTicks(s, xTicks)
	drawFrame(s)

	const barHalf = 0.4
	incrSty := shapes.Text(shapes.SerifBold(pal.MustFontSize("tiny")), color.White)
	cumulSty := shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), color.Black)
	cumulBox := pal.Alpha("light_yellow", 0xCC)

	connector := shapes.Dashed(color.NRGBA{A: 0x80}, vg.Points(1))

	var cumul float64
	for i, step := range waterfallSteps {
		x := float64(i)
		if i == 0 {
			shapes.Label(s.Canvas, s.Pt(x, 120), "Start",
				shapes.Text(shapes.SerifBold(pal.MustFontSize("annotation")), color.Black))
			continue
		}

		shapes.Rect(s.Canvas, s.Rect(x-barHalf, cumul, 2*barHalf, step.gas),
			steel, color.Black, vg.Points(1.5))
		shapes.Label(s.Canvas, s.Pt(x, cumul+step.gas/2),
			fmt.Sprintf("+%.0fK", step.gas), incrSty)

		cumul += step.gas
		if step.gas > 100 {
			shapes.BoxedLabel(s.Canvas, vg.Point{X: s.X(x), Y: s.Y(cumul) + vg.Points(10)},
				fmt.Sprintf("%.0fK", cumul), cumulSty, cumulBox, nil, 0)
		}

		// Running-total connector into the next bar.
		if i < len(waterfallSteps)-1 {
			shapes.Line(s.Canvas, s.Pt(x+barHalf, cumul), s.Pt(x+1+barHalf, cumul), connector)
		}
	}

	totalX := float64(nBars - 1)
	shapes.Rect(s.Canvas, s.Rect(totalX-barHalf, 0, 2*barHalf, total),
		pal.MustColor("moss"), color.Black, vg.Points(1.5))
	shapes.Label(s.Canvas, s.Pt(totalX, total/2),
		fmt.Sprintf("Total:\n%.0fK gas", total),
		shapes.Text(shapes.SerifBold(pal.MustFontSize("base")), color.White))

	f.drawPhases(s, pal)

	drawChartTitle(s, f.Title(), vg.Points(20))
	drawYAxisTitle(s, "Gas Cost (thousands)", vg.Points(52))

	const (
		ethPrice = 2500
		gweiL2   = 0.15
	)
	totalGas := total * 1000
	costUSD := totalGas * gweiL2 * 1e-9 * ethPrice

	strip := draw.Crop(dc, 0, 0, 0, -(dc.Rectangle.Max.Y - dc.Rectangle.Min.Y - vg.Points(28)))
	footerNote(strip,
		fmt.Sprintf("Total Deployment: %s gas = $%.2f at Base L2 (0.15 Gwei, ETH=$2500)",
			groupThousands(int(totalGas)), costUSD),
		pal.Alpha("light_green", 0xCC), pal.MustColor("dark_green"))
	return nil
}

// drawPhases marks the deployment and configuration spans with double-headed
// arrows above the bars.
func (deploymentWaterfall) drawPhases(s shapes.Space, pal *figure.Palette) {
	red := pal.MustColor("crimson")
	orange := pal.MustColor("tangerine")
	sty := func(clr color.Color) shapes.ArrowStyle {
		return shapes.ArrowStyle{
			Line:         shapes.Solid(clr, vg.Points(2)),
			HeadLength:   vg.Points(7),
			DoubleHeaded: true,
		}
	}

	shapes.Arrow(s.Canvas, s.Pt(0.6, 7000), s.Pt(1.4, 7000), sty(red))
	shapes.Label(s.Canvas, vg.Point{X: s.X(1), Y: s.Y(7200) + vg.Points(8)}, "Contract\nDeployment",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("annotation")), red))

	shapes.Arrow(s.Canvas, s.Pt(2.6, 7000), s.Pt(6.4, 7000), sty(orange))
	shapes.Label(s.Canvas, vg.Point{X: s.X(4.5), Y: s.Y(7200) + vg.Points(8)}, "Token Configuration\n(5 access tiers)",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("annotation")), orange))
}

// groupThousands formats an integer with comma separators.
func groupThousands(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return groupThousands(n/1000) + fmt.Sprintf(",%03d", n%1000)
}
