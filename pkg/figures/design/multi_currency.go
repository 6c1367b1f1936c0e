package design

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// The eight payment options for one token type, arranged around the circle.
// Symbols stay within the Liberation glyph set, so the exotic currency marks
// become plain letters.
var pricingCurrencies = []struct {
	name   string
	symbol string
	price  string
	color  string
}{
	{"ETH", "Ξ", "0.005 ETH", "eth"},
	{"USDC", "$", "$5.00", "usdc"},
	{"DAI", "D", "$5.00", "dai"},
	{"WETH", "W", "0.005 WETH", "weth"},
	{"USDT", "T", "$5.00", "usdt"},
	{"WBTC", "B", "0.00013 WBTC", "wbtc"},
	{"ARB", "A", "5.5 ARB", "arb"},
	{"OP", "O", "2.8 OP", "op"},
}

type multiCurrency struct{}

// NewMultiCurrency builds the hub-and-spoke diagram of one token type priced
// independently in eight currencies.
func NewMultiCurrency() figure.Figure { return multiCurrency{} }

func (multiCurrency) Name() string  { return "multi_currency_pricing" }
func (multiCurrency) Title() string { return "Multi-Currency Pricing Model" }

func (multiCurrency) Category() figure.Category { return figure.CategoryDesign }

func (multiCurrency) Size() (vg.Length, vg.Length) { return 12 * vg.Inch, 10 * vg.Inch }

func (f multiCurrency) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}

	s := shapes.NewSpace(dc, -1.5, 1.5, -1.5, 1.8)
	center := s.Pt(0, 0)
	centerR := s.DY(0.25)
	spokeR := s.DY(0.9)
	currR := s.DY(0.15)

	// Spokes first so the hub and coins draw over them.
	for i, curr := range pricingCurrencies {
		angle := math.Pi / 4 * float64(i)
		clr := pal.Alpha(curr.color, 0x99)
		coin := shapes.PolarPt(center, spokeR, angle)

		shapes.Arrow(s.Canvas,
			shapes.PolarPt(coin, -currR*0.7, angle),
			shapes.PolarPt(center, centerR, angle),
			shapes.ArrowStyle{Line: shapes.Solid(clr, vg.Points(2.5)), HeadLength: vg.Points(9)})

		mid := shapes.PolarPt(center, spokeR/2, angle)
		shapes.BoxedLabel(s.Canvas, mid, curr.price,
			shapes.Text(shapes.Serif(pal.MustFontSize("annotation")), color.Black),
			color.White, pal.MustColor(curr.color), vg.Points(1.5))
	}

	shapes.Circle(s.Canvas, center, centerR, pal.MustColor("steel"), color.Black, vg.Points(3))
	shapes.Label(s.Canvas, center, "Premium\nToken\n(ID: 1)",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("label")), color.White))

	symFnt := shapes.SerifBold(vg.Points(20))
	nameFnt := shapes.SerifBold(pal.MustFontSize("annotation"))
	for i, curr := range pricingCurrencies {
		angle := math.Pi / 4 * float64(i)
		coin := shapes.PolarPt(center, spokeR, angle)
		shapes.Circle(s.Canvas, coin, currR, pal.Alpha(curr.color, 0xCC), color.Black, vg.Points(2))
		shapes.Label(s.Canvas, vg.Point{X: coin.X, Y: coin.Y + currR*0.2}, curr.symbol,
			shapes.Text(symFnt, color.White))
		shapes.Label(s.Canvas, vg.Point{X: coin.X, Y: coin.Y - currR*0.45}, curr.name,
			shapes.Text(nameFnt, color.White))
	}

	shapes.Label(s.Canvas, s.Pt(0, 1.5), f.Title(),
		shapes.Text(shapes.SerifBold(pal.MustFontSize("heading")), color.Black))
	shapes.Label(s.Canvas, s.Pt(0, 1.35), "One Token Type, Multiple Payment Options",
		shapes.Text(shapes.SerifItalic(pal.MustFontSize("label")), pal.MustColor("dim_gray")))

	f.drawNotes(s, pal)
	return nil
}

func (multiCurrency) drawNotes(s shapes.Space, pal *figure.Palette) {
	headSty := shapes.AlignedText(shapes.SerifBold(pal.MustFontSize("base")), color.Black, text.XLeft, text.YCenter)
	itemSty := shapes.AlignedText(shapes.Serif(pal.MustFontSize("small")), color.Black, text.XLeft, text.YCenter)

	const legendY = -1.2
	shapes.Label(s.Canvas, s.Pt(-1.4, legendY), "Key Features:", headSty)
	features := []string{
		"• Independent pricing per currency",
		"• User chooses payment method",
		"• Treasury receives exact amount",
	}
	for i, item := range features {
		shapes.Label(s.Canvas, s.Pt(-1.4, legendY-0.15*float64(i+1)), item, itemSty)
	}

	shapes.Label(s.Canvas, s.Pt(0.3, legendY), "Benefits:", headSty)
	benefits := []string{
		"• No price oracles needed",
		"• Eliminates slippage risk",
		"• Flexible for global users",
	}
	for i, item := range benefits {
		shapes.Label(s.Canvas, s.Pt(0.3, legendY-0.15*float64(i+1)), item, itemSty)
	}

	shapes.RoundedBox(s.Canvas, s.Rect(-0.55, -1.0, 1.1, 0.35), vg.Points(6),
		color.NRGBA{R: 0xE8, G: 0xF5, B: 0xE9, A: 0xFF}, pal.MustColor("moss"), vg.Points(2))
	shapes.Label(s.Canvas, s.Pt(0, -0.7), "Example Purchase:",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("small")), color.Black))
	shapes.BoxedLabel(s.Canvas, s.Pt(0, -0.85),
		"user.purchase{value: 0.005 ETH}(tokenId: 1, quantity: 1)",
		shapes.Text(shapes.Mono(pal.MustFontSize("annotation")), color.Black),
		color.White, color.Black, vg.Points(1))

	const storageY = -1.35
	shapes.Label(s.Canvas, s.Pt(0, storageY-0.05), "Contract Storage (per token type):",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("small")), color.Black))
	storage := []string{
		"tokenPrice[1] = 5000000000000000 // 0.005 ETH",
		"erc20Prices[1][USDC] = 5000000 // $5.00 (6 decimals)",
		"erc20Prices[1][DAI] = 5000000000000000000 // $5.00 (18 decimals)",
	}
	gray := color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	monoSty := shapes.Text(shapes.Mono(pal.MustFontSize("tiny")), gray)
	for i, item := range storage {
		shapes.Label(s.Canvas, s.Pt(0, storageY-0.20-0.12*float64(i)), item, monoSty)
	}
}
