package design

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// The seven orthogonal primitives with the metric each contributes.
var wheelPrimitives = []struct {
	name   string
	metric string
	color  string
}{
	{"Ephemeral\nTokens", "148K gas\nconstant", "steel"},
	{"Role-Based\nTypes", "Unlimited\ntiers", "berry"},
	{"Multi-\nCurrency", "ETH +\nERC-20", "amber"},
	{"Transferable/\nSoulbound", "Per-token\nconfig", "moss"},
	{"Account\nFreezing", "Instant\nrevoke", "brick"},
	{"Pausable\nOps", "Circuit\nbreaker", "violet"},
	{"Upgradeable\n(UUPS)", "EIP-7201\nstorage", "lagoon"},
}

type primitivesWheel struct{}

// NewPrimitivesWheel builds the radial wheel of the seven authorization
// primitives around the shared core.
func NewPrimitivesWheel() figure.Figure { return primitivesWheel{} }

func (primitivesWheel) Name() string { return "seven_primitives_wheel" }
func (primitivesWheel) Title() string {
	return "EVMAuth: Seven Orthogonal Authorization Primitives"
}

func (primitivesWheel) Category() figure.Category { return figure.CategoryDesign }

func (primitivesWheel) Size() (vg.Length, vg.Length) { return 10 * vg.Inch, 10 * vg.Inch }

func (f primitivesWheel) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}

	center := vg.Point{
		X: (dc.Rectangle.Min.X + dc.Rectangle.Max.X) / 2,
		Y: (dc.Rectangle.Min.Y+dc.Rectangle.Max.Y)/2 - vg.Points(10),
	}
	// The wheel body takes two thirds of the available radius; the outer
	// third holds the primitive labels.
	avail := (dc.Rectangle.Max.Y - dc.Rectangle.Min.Y) / 2
	wheelR := avail * 0.55

	n := len(wheelPrimitives)
	sector := 2 * math.Pi / float64(n)

	for i, prim := range wheelPrimitives {
		start := sector * float64(i)
		shapes.Wedge(dc, center, wheelR, start, sector,
			pal.Alpha(prim.color, 0x4D), nil, 0)
		shapes.Line(dc, center, shapes.PolarPt(center, wheelR, start),
			shapes.Solid(color.Black, vg.Points(2)))
	}

	shapes.Circle(dc, center, wheelR*0.3, color.White, color.Black, vg.Points(2))
	shapes.Label(dc, center, "EVMAuth\nCore",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("heading")), color.Black))

	nameFnt := shapes.SerifBold(pal.MustFontSize("base"))
	metricFnt := shapes.SerifItalic(pal.MustFontSize("annotation"))
	for i, prim := range wheelPrimitives {
		angle := sector * float64(i)
		clr := pal.MustColor(prim.color)

		namePt := shapes.PolarPt(center, wheelR*1.35, angle)
		shapes.BoxedLabel(dc, namePt, prim.name,
			shapes.Text(nameFnt, clr), color.White, clr, vg.Points(2))

		metricPt := shapes.PolarPt(center, wheelR*0.65, angle)
		shapes.BoxedLabel(dc, metricPt, prim.metric,
			shapes.Text(metricFnt, color.Black), pal.Alpha(prim.color, 0x4D), color.Black, vg.Points(0.8))
	}

	suptitle(dc, f.Title(), pal.MustFontSize("heading"))
	footer(dc, "All primitives work together within standard ERC-1155/6909 interfaces",
		pal.MustColor("light_yellow"), color.Black)
	return nil
}
