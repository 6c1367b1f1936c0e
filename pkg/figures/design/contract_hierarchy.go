package design

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

type contractHierarchy struct{}

// NewContractHierarchy builds the inheritance tree from the OpenZeppelin base
// contracts down to the two final implementations.
func NewContractHierarchy() figure.Figure { return contractHierarchy{} }

func (contractHierarchy) Name() string  { return "contract_hierarchy" }
func (contractHierarchy) Title() string { return "EVMAuth Smart Contract Inheritance Hierarchy" }

func (contractHierarchy) Category() figure.Category { return figure.CategoryDesign }

func (contractHierarchy) Size() (vg.Length, vg.Length) { return 14 * vg.Inch, 10 * vg.Inch }

func (f contractHierarchy) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}
	oz := pal.MustColor("mist")
	base := pal.MustColor("peach")
	core := pal.MustColor("mint")
	impl := pal.MustColor("cream")

	s := shapes.NewSpace(dc, 0, 14, 0, 10)
	small := pal.MustFontSize("small")
	tiny := pal.MustFontSize("tiny")
	inherit := shapes.Solid(color.Black, vg.Points(2))
	implements := shapes.Dashed(color.Black, vg.Points(1.5))

	// OpenZeppelin layer.
	node(s, 2, 9.3, 2, 0.6, "UUPS\nUpgradeable", oz, pal.MustFontSize("annotation"), false)
	node(s, 5, 9.3, 2, 0.6, "Access\nControl", oz, pal.MustFontSize("annotation"), false)
	node(s, 8, 9.3, 2, 0.6, "Pausable", oz, pal.MustFontSize("annotation"), false)
	node(s, 11, 9.3, 2, 0.6, "ERC1155\nUpgradeable", oz, pal.MustFontSize("annotation"), false)
	node(s, 13.1, 9.3, 1.2, 0.6, "Initializable", oz, tiny, false)

	// Custom base modules.
	modules := []struct {
		x    float64
		name string
		desc string
	}{
		{1.6, "TokenEphemeral", "Time-bounded\nexpiration"},
		{4.1, "TokenPurchasable", "Token\npurchasing"},
		{6.6, "AccountFreezable", "Account\nfreezing"},
		{9.1, "TokenTransferable", "Transfer\ncontrol"},
		{11.6, "TokenEnumerable", "Token\nenumeration"},
	}
	descSty := shapes.AlignedText(shapes.SerifItalic(tiny), pal.MustColor("dim_gray"), text.XCenter, text.YTop)
	for _, m := range modules {
		node(s, m.x, 7.3, 2.2, 0.6, m.name, base, small, true)
		shapes.Label(s.Canvas, s.Pt(m.x, 6.9), m.desc, descSty)
	}

	edge(s, 2, 9, 1.6, 7.6, inherit)
	edge(s, 5, 9, 6.6, 7.6, inherit)
	edge(s, 8, 9, 4.1, 7.6, inherit)
	edge(s, 13.1, 9, 11.6, 7.6, inherit)

	// Core layer.
	node(s, 3.25, 5.3, 2.5, 0.6, "TokenAccessControl", core, small, true)
	node(s, 6.5, 5.35, 2, 0.7, "EVMAuth\n(Base)", core, pal.MustFontSize("base"), true)

	edge(s, 1.6, 7, 6.0, 5.7, inherit)
	edge(s, 4.1, 7, 6.5, 5.7, inherit)
	edge(s, 6.6, 7, 3.25, 5.6, inherit)
	edge(s, 9.1, 7, 7.0, 5.7, inherit)
	edge(s, 11.6, 7, 7.3, 5.7, inherit)
	edge(s, 4.25, 5.15, 5.55, 5.35, inherit)

	// Implementations.
	node(s, 4.25, 2.9, 2.5, 0.8, "EVMAuth1155\n(24.6 KB)", impl, pal.MustFontSize("base"), true)
	node(s, 8.25, 2.9, 2.5, 0.8, "EVMAuth6909\n(22.3 KB)", impl, pal.MustFontSize("base"), true)

	edge(s, 6.0, 5.0, 4.25, 3.3, inherit)
	edge(s, 7.0, 5.0, 8.25, 3.3, inherit)
	edge(s, 11, 9, 5.25, 3.3, implements)

	f.drawFeatureLists(s, pal)
	f.drawLayerCaptions(s, pal)

	legendBox(dc, s.Pt(13.7, 1.9), []swatchEntry{
		{"OpenZeppelin (Audited)", oz},
		{"Custom Modules", base},
		{"EVMAuth Core", core},
		{"Final Implementations", impl},
	})

	shapes.Label(s.Canvas, s.Pt(7, 9.8), f.Title(),
		shapes.Text(shapes.SerifBold(pal.MustFontSize("heading")), color.Black))

	shapes.BoxedLabel(s.Canvas, s.Pt(7, 0.25),
		"Solid arrows: Inheritance | Dashed arrows: Interface implementation",
		shapes.Text(shapes.SerifItalic(pal.MustFontSize("annotation")), color.Black),
		pal.MustColor("light_yellow"), color.Black, vg.Points(1))
	return nil
}

func (contractHierarchy) drawFeatureLists(s shapes.Space, pal *figure.Palette) {
	gray := color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
	sty := shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), gray)

	features1155 := []string{"Batch ops", "Marketplace ready", "ERC1155Receiver"}
	features6909 := []string{"Minimal gas", "Granular allowances", "7.9% cheaper"}
	for i, feat := range features1155 {
		shapes.Label(s.Canvas, s.Pt(4.25, 2.0-float64(i)*0.25), "• "+feat, sty)
	}
	for i, feat := range features6909 {
		shapes.Label(s.Canvas, s.Pt(8.25, 2.0-float64(i)*0.25), "• "+feat, sty)
	}
}

func (contractHierarchy) drawLayerCaptions(s shapes.Space, pal *figure.Palette) {
	fnt := shapes.SerifBold(pal.MustFontSize("base"))
	captions := []struct {
		y   float64
		txt string
		clr color.NRGBA
	}{
		{8.2, "OpenZeppelin", color.NRGBA{R: 0x00, G: 0x66, B: 0xCC, A: 0xFF}},
		{6.2, "Base Modules", color.NRGBA{R: 0xFF, G: 0x88, B: 0x00, A: 0xFF}},
		{4.3, "Core Logic", color.NRGBA{R: 0x00, G: 0xAA, B: 0x00, A: 0xFF}},
		{1.7, "Implementations", color.NRGBA{R: 0xCC, G: 0xAA, B: 0x00, A: 0xFF}},
	}
	for _, c := range captions {
		shapes.Label(s.Canvas, s.Pt(0.3, c.y), c.txt,
			shapes.AlignedText(fnt, c.clr, text.XLeft, text.YCenter))
	}
}
