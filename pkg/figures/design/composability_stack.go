package design

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// stackLayer is one tier of the layer cake, bottom up.
type stackLayer struct {
	y, height   float64
	color       color.NRGBA
	title       string
	description string
	components  []string
}

// useCase is one application cell in the top layer's grid.
type useCase struct {
	title string
	desc  string
}

var stackUseCases = []useCase{
	{"SaaS Gating", "Pay-per-use APIs with token ownership"},
	{"AI Agent Auth", "Autonomous agents own access credentials"},
	{"DeFi Access Control", "Token-gated vaults and strategies"},
	{"Gaming/NFT Utilities", "Transferable in-game subscriptions"},
	{"DAO Governance", "Role-based proposal/voting rights"},
	{"Enterprise RBAC", "Compliant access with freezing"},
	{"Education Platforms", "Student licenses with expiration"},
	{"Content Platforms", "Creator subscriptions on-chain"},
	{"IoT/Edge Devices", "Device credentials as tokens"},
	{"Healthcare Systems", "HIPAA-compliant role tokens"},
	{"Supply Chain", "Verifiable access credentials"},
	{"Identity Systems", "Composable identity attributes"},
}

type composabilityStack struct{}

// NewComposabilityStack builds the layer cake from consensus networks up to
// the application grid, with the authorization layer highlighted.
func NewComposabilityStack() figure.Figure { return composabilityStack{} }

func (composabilityStack) Name() string  { return "composability_stack" }
func (composabilityStack) Title() string { return "EVMAuth Composability Stack" }

func (composabilityStack) Category() figure.Category { return figure.CategoryDesign }

func (composabilityStack) Size() (vg.Length, vg.Length) { return 14 * vg.Inch, 10 * vg.Inch }

func (f composabilityStack) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}

	layers := []stackLayer{
		{1, 1.5, color.NRGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF},
			"Layer 1: Consensus & Network",
			"EVMAuth is chain-agnostic: deploy on any EVM-compatible network",
			[]string{"Ethereum Mainnet", "Base L2", "Arbitrum L2", "Optimism L2", "Any EVM Chain"}},
		{2.5, 1.5, pal.MustColor("pale_blue"),
			"Layer 2: Blockchain Primitives",
			"Core blockchain capabilities: immutable state, cryptographic verification",
			[]string{"EVM Runtime", "State Storage", "Transaction Processing", "Event Logs", "EIP-7201 Namespaced Storage"}},
		{4, 1.5, pal.MustColor("butter"),
			"Layer 3: Token Standards",
			"Standard interfaces enabling interoperability with wallets, explorers, DEXs",
			[]string{"ERC-1155", "ERC-6909", "ERC-20 (Payment)", "ERC-165 (Interfaces)", "AccessControl"}},
		{5.5, 2, pal.MustColor("pale_green"),
			"Layer 4: EVMAuth Authorization Layer",
			"Authorization-as-asset primitives: composable, interoperable, self-sovereign",
			[]string{"Ephemeral Tokens", "Role-Based Types", "Multi-Currency Pricing", "Transferable/Soulbound",
				"Account Freezing", "Pausable Operations", "UUPS Upgradeable"}},
		{7.5, 3.5, pal.MustColor("sand"),
			"Layer 5: Applications & Integrations",
			"EVMAuth enables diverse use cases through composable authorization",
			nil},
	}

	s := shapes.NewSpace(dc, 0, 14, 0, 12)
	for i, layer := range layers {
		rect := s.Rect(1, layer.y, 12, layer.height)
		if i == 3 {
			shapes.RoundedBox(s.Canvas, rect, vg.Points(8), layer.color,
				pal.MustColor("dark_green"), vg.Points(4))
		} else {
			shapes.Rect(s.Canvas, rect, layer.color, color.Black, vg.Points(2))
		}

		shapes.Label(s.Canvas, vg.Point{X: s.X(7), Y: s.Y(layer.y + layer.height - 0.2)},
			layer.title,
			shapes.AlignedText(shapes.SerifBold(pal.MustFontSize("label")), color.Black, text.XCenter, text.YTop))
		shapes.Label(s.Canvas, vg.Point{X: s.X(7), Y: s.Y(layer.y + layer.height - 0.5)},
			layer.description,
			shapes.AlignedText(shapes.SerifItalic(pal.MustFontSize("annotation")), color.Black, text.XCenter, text.YTop))

		if layer.components != nil {
			f.drawComponents(s, pal, layer)
		} else {
			f.drawUseCaseGrid(s, pal, layer)
		}
	}

	f.drawFlowArrows(s, pal)

	shapes.Label(s.Canvas, s.Pt(0.5, 6.5), "Builds\nOn",
		shapes.RotatedText(shapes.SerifBold(pal.MustFontSize("base")), pal.MustColor("steel"), 1.5707963267948966))
	shapes.Label(s.Canvas, s.Pt(13.5, 6.5), "Enables\nComposability",
		shapes.RotatedText(shapes.SerifBold(pal.MustFontSize("base")), pal.MustColor("moss"), 1.5707963267948966))

	shapes.Label(s.Canvas, s.Pt(7, 11.5), f.Title(),
		shapes.Text(shapes.SerifBold(pal.MustFontSize("heading")), color.Black))

	shapes.BoxedLabel(s.Canvas, s.Pt(7, 0.35),
		"EVMAuth Layer (Green): Seven composable primitives enable diverse applications",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("small")), color.Black),
		pal.MustColor("light_green"), pal.MustColor("dark_green"), vg.Points(2))
	return nil
}

func (composabilityStack) drawComponents(s shapes.Space, pal *figure.Palette, layer stackLayer) {
	sty := shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), color.Black)
	gray := pal.MustColor("slate")

	span := 10.0 / float64(len(layer.components))
	for j, comp := range layer.components {
		pt := s.Pt(2+span*float64(j)+span/2, layer.y+0.35)
		shapes.BoxedLabel(s.Canvas, pt, comp, sty, color.White, gray, vg.Points(1))
	}
}

func (composabilityStack) drawUseCaseGrid(s shapes.Space, pal *figure.Palette, layer stackLayer) {
	const (
		cols     = 4
		boxW     = 2.6
		boxH     = 0.75
		gapX     = 0.2
		gapY     = 0.25
		startX   = 1.8
		titlePad = 0.16
	)
	rows := (len(stackUseCases) + cols - 1) / cols
	startY := layer.y + 0.2

	orange := color.NRGBA{R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF}
	titleSty := shapes.AlignedText(shapes.SerifBold(pal.MustFontSize("tiny")), color.Black, text.XCenter, text.YTop)
	descSty := shapes.AlignedText(shapes.Serif(vg.Points(6)), color.Black, text.XCenter, text.YBottom)

	for idx, uc := range stackUseCases {
		row := idx / cols
		col := idx % cols
		x := startX + float64(col)*(boxW+gapX)
		y := startY + float64(rows-1-row)*(boxH+gapY)

		shapes.RoundedBox(s.Canvas, s.Rect(x, y, boxW, boxH), vg.Points(4),
			pal.MustColor("parchment"), orange, vg.Points(1.5))
		shapes.Label(s.Canvas, vg.Point{X: s.X(x + boxW/2), Y: s.Y(y + boxH - titlePad)},
			uc.title, titleSty)
		shapes.Label(s.Canvas, vg.Point{X: s.X(x + boxW/2), Y: s.Y(y + titlePad)},
			uc.desc, descSty)
	}
}

func (composabilityStack) drawFlowArrows(s shapes.Space, pal *figure.Palette) {
	sty := shapes.Solid(pal.MustColor("steel"), vg.Points(3))
	hops := [][2]float64{{2.5, 4}, {4, 5.5}, {5.5, 7.5}, {7.5, 11}}
	for _, hop := range hops {
		edge(s, 7, hop[0], 7, hop[1], sty)
	}
}
