package costs

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// Monthly infrastructure component costs at 100K API requests, mid-range
// values in USD.
type pieSlice struct {
	label string
	value float64
	color string
}

var evmauthInfra = []pieSlice{
	{"RPC\n$0-25", 12.5, "steel"},
	{"API Server\n$5", 5, "powder"},
}

var oauthInfra = []pieSlice{
	{"Auth Service\n$25-100", 62.5, "berry"},
	{"PostgreSQL\n$15-30", 22.5, "amber"},
	{"Redis Cache\n$10-25", 17.5, "brick"},
	{"API Server\n$5", 5, "moss"},
}

type infrastructurePie struct{}

// NewInfrastructurePie builds the dual pie chart comparing EVMAuth and OAuth
// monthly infrastructure component costs.
func NewInfrastructurePie() figure.Figure { return infrastructurePie{} }

func (infrastructurePie) Name() string { return "infrastructure_cost_pie" }
func (infrastructurePie) Title() string {
	return "Monthly Infrastructure Costs Comparison (100K API requests)"
}

func (infrastructurePie) Category() figure.Category { return figure.CategoryCost }

func (infrastructurePie) Size() (vg.Length, vg.Length) { return 12 * vg.Inch, 5 * vg.Inch }

func (f infrastructurePie) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}

	width := dc.Rectangle.Max.X - dc.Rectangle.Min.X
	left := draw.Crop(dc, 0, -width/2, vg.Points(40), -vg.Points(30))
	right := draw.Crop(dc, width/2, 0, vg.Points(40), -vg.Points(30))

	f.drawPie(left, evmauthInfra, "EVMAuth Infrastructure\nTotal: $5-30/month")
	f.drawPie(right, oauthInfra, "OAuth Infrastructure\nTotal: $55-160/month")

	top := vg.Point{
		X: (dc.Rectangle.Min.X + dc.Rectangle.Max.X) / 2,
		Y: dc.Rectangle.Max.Y - vg.Points(14),
	}
	shapes.Label(dc, top, f.Title(), shapes.Text(shapes.SerifBold(pal.MustFontSize("heading")), color.Black))

	strip := draw.Crop(dc, 0, 0, 0, -(dc.Rectangle.Max.Y - dc.Rectangle.Min.Y - vg.Points(34)))
	footerNote(strip, "EVMAuth: 2 services vs OAuth: 4 services | Cost reduction: up to 87%",
		pal.MustColor("light_yellow"), color.Black)
	return nil
}

func (infrastructurePie) drawPie(dc draw.Canvas, slices []pieSlice, caption string) {
	pal := figure.MustStyles()

	center := vg.Point{
		X: (dc.Rectangle.Min.X + dc.Rectangle.Max.X) / 2,
		Y: (dc.Rectangle.Min.Y+dc.Rectangle.Max.Y)/2 - vg.Points(10),
	}
	h := dc.Rectangle.Max.Y - dc.Rectangle.Min.Y
	radius := h * 0.3

	var total float64
	for _, sl := range slices {
		total += sl.value
	}

	// Slices start at twelve o'clock and sweep counter-clockwise, matching
	// the source chart's startangle=90.
	start := math.Pi / 2
	pctSty := shapes.Text(shapes.SerifBold(pal.MustFontSize("base")), color.White)
	nameSty := shapes.Text(shapes.Serif(pal.MustFontSize("small")), color.Black)
	for _, sl := range slices {
		sweep := 2 * math.Pi * sl.value / total
		shapes.Wedge(dc, center, radius, start, sweep,
			pal.MustColor(sl.color), color.Black, vg.Points(1.5))

		mid := start + sweep/2
		pctPt := vg.Point{
			X: center.X + radius*0.6*vg.Length(math.Cos(mid)),
			Y: center.Y + radius*0.6*vg.Length(math.Sin(mid)),
		}
		shapes.Label(dc, pctPt, fmt.Sprintf("%.1f%%", 100*sl.value/total), pctSty)

		labelPt := vg.Point{
			X: center.X + radius*1.3*vg.Length(math.Cos(mid)),
			Y: center.Y + radius*1.3*vg.Length(math.Sin(mid)),
		}
		shapes.Label(dc, labelPt, sl.label, nameSty)

		start += sweep
	}

	captionPt := vg.Point{X: center.X, Y: center.Y + radius + vg.Points(32)}
	shapes.Label(dc, captionPt, caption, shapes.Text(shapes.SerifBold(pal.MustFontSize("subtitle")), color.Black))
}
