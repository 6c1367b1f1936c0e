package design

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// Feature completeness versus gas efficiency for each standard, with contract
// size as the bubble area. Scores follow the paper's 1-10 scales.
var tradeoffStandards = []struct {
	name       string
	features   float64
	efficiency float64
	sizeKB     float64
	color      color.NRGBA
	operations string
}{
	{"ERC-20", 3, 6, 2.5, color.NRGBA{R: 0x95, G: 0xA5, B: 0xA6, A: 0xFF}, "Transfer: 21K\nMint: 51K"},
	{"ERC-721", 5, 4, 8.2, color.NRGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}, "Transfer: 85K\nMint: 125K"},
	{"ERC-1155", 7, 5, 12.5, color.NRGBA{R: 0x9B, G: 0x59, B: 0xB6, A: 0xFF}, "Transfer: 54K\nMint: 111K\nBatch: 150K"},
	{"ERC-6909", 6, 7, 5.1, color.NRGBA{R: 0xE6, G: 0x7E, B: 0x22, A: 0xFF}, "Transfer: 30K\nMint: 107K"},
	{"EVMAuth-1155", 10, 4.5, 24.6, color.NRGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}, "Purchase: 147K\nTransfer: 54K\nBurn: 21.5K"},
	{"EVMAuth-6909", 10, 6.5, 22.3, color.NRGBA{R: 0x6A, G: 0x99, B: 0x4E, A: 0xFF}, "Purchase: 147K\nTransfer: 30K\nBurn: 17.8K"},
}

type gasTradeoffs struct{}

// NewGasTradeoffs builds the bubble chart of feature completeness against gas
// efficiency with Pareto frontiers and the optimal zone marked.
func NewGasTradeoffs() figure.Figure { return gasTradeoffs{} }

func (gasTradeoffs) Name() string  { return "gas_optimization_tradeoffs" }
func (gasTradeoffs) Title() string { return "Token Standard Trade-offs: Features vs Gas Efficiency" }

func (gasTradeoffs) Category() figure.Category { return figure.CategoryDesign }

func (gasTradeoffs) Size() (vg.Length, vg.Length) { return 12 * vg.Inch, 9 * vg.Inch }

// bubbleRadius converts a contract size to a glyph radius with the same
// area scaling the source chart used.
func bubbleRadius(sizeKB float64) vg.Length {
	return vg.Points(math.Sqrt(sizeKB * 30 / math.Pi))
}

func (f gasTradeoffs) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}

	p := newTradeoffChart(f.Title())

	if err := f.addRegions(p); err != nil {
		return err
	}
	if err := f.addFrontiers(p, pal); err != nil {
		return err
	}
	if err := f.addBubbles(p); err != nil {
		return err
	}

	height := dc.Rectangle.Max.Y - dc.Rectangle.Min.Y
	plotArea := draw.Crop(dc, 0, 0, vg.Points(48), 0)
	p.Draw(plotArea)

	da := p.DataCanvas(plotArea)
	trX, trY := p.Transforms(&da)
	f.drawAnnotations(da, pal, trX, trY)
	f.drawSizeLegend(da, pal, trX, trY)

	strip := draw.Crop(dc, 0, 0, 0, -(height - vg.Points(44)))
	note := "EVMAuth-6909 achieves optimal balance: maximum features (10/10) with high gas efficiency (6.5/10)\n" +
		"Trade-off: +7.9% contract size vs EVMAuth-1155, but -44% transfer costs"
	center := vg.Point{
		X: (strip.Rectangle.Min.X + strip.Rectangle.Max.X) / 2,
		Y: (strip.Rectangle.Min.Y + strip.Rectangle.Max.Y) / 2,
	}
	shapes.BoxedLabel(strip, center, note,
		shapes.Text(shapes.SerifItalic(pal.MustFontSize("small")), color.Black),
		pal.MustColor("light_blue"), pal.MustColor("dark_blue"), vg.Points(2))
	return nil
}

// newTradeoffChart mirrors the cost-chart styling; this figure keeps its own
// copy because the two packages stay independent.
func newTradeoffChart(title string) *plot.Plot {
	pal := figure.MustStyles()

	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = vg.Points(8)
	p.Title.TextStyle.Font = shapes.SerifBold(pal.MustFontSize("title"))

	p.X.Label.Text = "Feature Completeness Score\n(Higher = More Capabilities)"
	p.X.Label.TextStyle.Font = shapes.SerifBold(pal.MustFontSize("label"))
	p.Y.Label.Text = "Gas Efficiency Score\n(Higher = Lower Gas Costs)"
	p.Y.Label.TextStyle.Font = shapes.SerifBold(pal.MustFontSize("label"))

	p.X.Tick.Label.Font = shapes.Serif(pal.MustFontSize("small"))
	p.Y.Tick.Label.Font = shapes.Serif(pal.MustFontSize("small"))
	p.Legend.TextStyle.Font = shapes.Serif(pal.MustFontSize("annotation"))

	p.X.Min, p.X.Max = 2, 11
	p.Y.Min, p.Y.Max = 2, 10

	g := plotter.NewGrid()
	faint := color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0x4D}
	g.Vertical.Color = faint
	g.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	g.Horizontal.Color = faint
	g.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	p.Add(g)
	return p
}

// addRegions shades the limited/rich feature bands and the gas-heavy and
// gas-efficient bands.
func (gasTradeoffs) addRegions(p *plot.Plot) error {
	regions := []struct {
		xs, ys [2]float64
		clr    color.NRGBA
	}{
		{[2]float64{2, 5}, [2]float64{2, 10}, color.NRGBA{R: 0xFF, A: 0x1A}},
		{[2]float64{8, 11}, [2]float64{2, 10}, color.NRGBA{G: 0x80, A: 0x1A}},
		{[2]float64{2, 11}, [2]float64{2, 4}, color.NRGBA{R: 0xFF, G: 0xA5, A: 0x1A}},
		{[2]float64{2, 11}, [2]float64{6, 10}, color.NRGBA{B: 0xFF, A: 0x1A}},
	}
	for _, reg := range regions {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: reg.xs[0], Y: reg.ys[0]},
			{X: reg.xs[1], Y: reg.ys[0]},
			{X: reg.xs[1], Y: reg.ys[1]},
			{X: reg.xs[0], Y: reg.ys[1]},
		})
		if err != nil {
			return fmt.Errorf("tradeoff region: %w", err)
		}
		poly.Color = reg.clr
		poly.LineStyle.Color = color.Transparent
		p.Add(poly)
	}
	return nil
}

// addFrontiers draws the two Pareto paths, each through the baseline and a
// multi-token standard up to its EVMAuth extension.
func (gasTradeoffs) addFrontiers(p *plot.Plot, pal *figure.Palette) error {
	frontier := func(names []string, clr color.NRGBA, label string) error {
		xys := make(plotter.XYs, 0, len(names))
		for _, want := range names {
			for _, std := range tradeoffStandards {
				if std.name == want {
					xys = append(xys, plotter.XY{X: std.features, Y: std.efficiency})
				}
			}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("tradeoff frontier: %w", err)
		}
		faded := clr
		faded.A = 0x80
		line.LineStyle = shapes.Dashed(faded, vg.Points(2))
		p.Add(line)
		p.Legend.Add(label, line)
		return nil
	}

	if err := frontier([]string{"ERC-20", "ERC-6909", "EVMAuth-6909"},
		pal.MustColor("emerald"), "Pareto Frontier (6909-based)"); err != nil {
		return err
	}
	return frontier([]string{"ERC-20", "ERC-1155", "EVMAuth-1155"},
		pal.MustColor("azure"), "Alternative Path (1155-based)")
}

func (gasTradeoffs) addBubbles(p *plot.Plot) error {
	for _, std := range tradeoffStandards {
		sc, err := plotter.NewScatter(plotter.XYs{{X: std.features, Y: std.efficiency}})
		if err != nil {
			return fmt.Errorf("tradeoff bubble: %w", err)
		}
		faded := std.color
		faded.A = 0x99
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  faded,
			Radius: bubbleRadius(std.sizeKB),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(sc)
	}
	return nil
}

// drawAnnotations places the name and operation boxes by each bubble, the
// region captions, the optimal zone, and the scoring key. It runs post-draw
// against the data transforms.
func (f gasTradeoffs) drawAnnotations(da draw.Canvas, pal *figure.Palette, trX, trY func(float64) vg.Length) {
	nameFnt := shapes.SerifBold(pal.MustFontSize("small"))
	opsSty := shapes.Text(shapes.Serif(vg.Points(6)), color.Black)
	opsFill := pal.Alpha("light_yellow", 0xCC)

	for i, std := range tradeoffStandards {
		offX := -0.45
		if std.features >= 10 {
			offX = 0.45
		}
		offY := 0.45
		if i%2 == 1 {
			offY = -0.45
		}
		namePt := vg.Point{X: trX(std.features + offX), Y: trY(std.efficiency + offY)}
		shapes.BoxedLabel(da, namePt, std.name,
			shapes.Text(nameFnt, color.Black), color.White, std.color, vg.Points(2))

		opsPt := vg.Point{X: trX(std.features), Y: trY(std.efficiency - 0.9)}
		shapes.BoxedLabel(da, opsPt, std.operations, opsSty, opsFill, pal.MustColor("slate"), vg.Points(0.5))
	}

	italic := shapes.SerifItalic(pal.MustFontSize("small"))
	shapes.Label(da, vg.Point{X: trX(2.5), Y: trY(9.5)}, "Limited Features",
		shapes.Text(italic, pal.MustColor("crimson")))
	shapes.Label(da, vg.Point{X: trX(9.5), Y: trY(9.5)}, "Feature-Rich",
		shapes.Text(italic, pal.MustColor("emerald")))
	shapes.Label(da, vg.Point{X: trX(10.6), Y: trY(3)}, "Gas-Heavy",
		shapes.RotatedText(italic, pal.MustColor("tangerine"), math.Pi/2))
	shapes.Label(da, vg.Point{X: trX(10.6), Y: trY(8)}, "Gas-Efficient",
		shapes.RotatedText(italic, pal.MustColor("azure"), math.Pi/2))

	// Optimal zone.
	zone := vg.Rectangle{
		Min: vg.Point{X: trX(7.5), Y: trY(5.5)},
		Max: vg.Point{X: trX(10), Y: trY(9)},
	}
	shapes.StrokePolygon(da, []vg.Point{
		zone.Min,
		{X: zone.Max.X, Y: zone.Min.Y},
		zone.Max,
		{X: zone.Min.X, Y: zone.Max.Y},
	}, shapes.Dashed(pal.MustColor("dark_green"), vg.Points(3)))
	shapes.BoxedLabel(da, vg.Point{X: trX(8.75), Y: trY(8.5)},
		"Optimal Zone:\nRich Features +\nGas Efficient",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("annotation")), color.Black),
		pal.Alpha("light_green", 0xE6), pal.MustColor("dark_green"), vg.Points(2))

	key := "Feature Scoring:\n" +
		"• Basic (1-3): Transfer, Balance\n" +
		"• Standard (4-6): NFT, Multi-token, Metadata\n" +
		"• Advanced (7-10): + Ephemeral, RBAC,\n" +
		"  Multi-currency, Freezing, Pausable\n" +
		"\n" +
		"Gas Efficiency:\n" +
		"Inverse of average operation cost\n" +
		"(Transfer + Mint + Burn) / 3"
	keySty := shapes.AlignedText(shapes.Serif(pal.MustFontSize("tiny")), color.Black, text.XLeft, text.YTop)
	w, h := shapes.Measure(key, keySty.Font)
	pad := vg.Points(6)
	origin := vg.Point{X: trX(2.15), Y: trY(9.85)}
	shapes.RoundedBox(da, vg.Rectangle{
		Min: vg.Point{X: origin.X - pad, Y: origin.Y - h - pad},
		Max: vg.Point{X: origin.X + w + pad, Y: origin.Y + pad},
	}, pad, pal.Alpha("light_yellow", 0xE6), color.Black, vg.Points(1))
	shapes.Label(da, origin, key, keySty)
}

// drawSizeLegend explains the bubble area scale with reference circles.
func (gasTradeoffs) drawSizeLegend(da draw.Canvas, pal *figure.Palette, trX, trY func(float64) vg.Length) {
	shapes.Label(da, vg.Point{X: trX(10.6), Y: trY(4.7)}, "Contract Size",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("annotation")), color.Black))

	gray := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x4D}
	capSty := shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), color.Black)
	y := 4.1
	for _, kb := range []float64{5, 15, 25} {
		center := vg.Point{X: trX(10.6), Y: trY(y)}
		shapes.Circle(da, center, bubbleRadius(kb), gray, color.Black, vg.Points(1))
		shapes.Label(da, vg.Point{X: center.X, Y: center.Y - bubbleRadius(kb) - vg.Points(7)},
			fmt.Sprintf("%.0f KB", kb), capSty)
		y -= 0.75
	}
}
