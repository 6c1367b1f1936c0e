package design

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

type paradigmShift struct{}

// NewParadigmShift builds the side-by-side comparison of centralized
// credential storage against on-chain token ownership.
func NewParadigmShift() figure.Figure { return paradigmShift{} }

func (paradigmShift) Name() string { return "paradigm_shift" }
func (paradigmShift) Title() string {
	return "Authorization Paradigm Shift: From Credentials to Assets"
}

func (paradigmShift) Category() figure.Category { return figure.CategoryDesign }

func (paradigmShift) Size() (vg.Length, vg.Length) { return 16 * vg.Inch, 10 * vg.Inch }

func (f paradigmShift) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}

	width := dc.Rectangle.Max.X - dc.Rectangle.Min.X
	left := draw.Crop(dc, vg.Points(10), -width/2, vg.Points(56), -vg.Points(40))
	right := draw.Crop(dc, width/2, -vg.Points(10), vg.Points(56), -vg.Points(40))

	f.drawOAuthSide(left, pal)
	f.drawEVMAuthSide(right, pal)

	suptitle(dc, f.Title(), pal.MustFontSize("heading"))
	footer(dc,
		"Traditional OAuth: Authorization = Database Records (centralized, mutable, vendor-controlled)\n"+
			"EVMAuth: Authorization = Blockchain Tokens (decentralized, immutable, user-owned)",
		pal.MustColor("light_yellow"), color.Black)
	return nil
}

// actor draws a circular participant with a caption underneath.
func (paradigmShift) actor(s shapes.Space, x, y float64, label, sublabel string, fill color.NRGBA, pal *figure.Palette) {
	center := s.Pt(x, y)
	r := s.DY(0.6)
	shapes.Circle(s.Canvas, center, r, fill, color.Black, vg.Points(2))
	shapes.Label(s.Canvas, center, label,
		shapes.Text(shapes.SerifBold(pal.MustFontSize("base")), color.White))
	shapes.Label(s.Canvas, vg.Point{X: center.X, Y: center.Y - r - vg.Points(4)}, sublabel,
		shapes.AlignedText(shapes.SerifItalic(pal.MustFontSize("tiny")), color.Black, text.XCenter, text.YTop))
}

// service draws a labeled box with an italic caption underneath.
func (paradigmShift) service(s shapes.Space, x, y, w, h float64, label, sublabel string, fill color.NRGBA, pal *figure.Palette) {
	node(s, x+w/2, y+h/2, w, h, label, fill, pal.MustFontSize("base"), true)
	if sublabel != "" {
		shapes.Label(s.Canvas, vg.Point{X: s.X(x + w/2), Y: s.Y(y) - vg.Points(4)}, sublabel,
			shapes.AlignedText(shapes.SerifItalic(pal.MustFontSize("tiny")), color.Black, text.XCenter, text.YTop))
	}
}

func (paradigmShift) flow(s shapes.Space, pal *figure.Palette, x1, y1, x2, y2 float64, label string, clr color.Color, dashed bool, width vg.Length) {
	line := shapes.Solid(clr, width)
	if dashed {
		line = shapes.Dashed(clr, width)
	}
	shapes.Arrow(s.Canvas, s.Pt(x1, y1), s.Pt(x2, y2), shapes.ArrowStyle{
		Line:       line,
		HeadLength: vg.Points(8),
	})
	if label != "" {
		mid := s.Pt((x1+x2)/2, (y1+y2)/2+0.2)
		shapes.BoxedLabel(s.Canvas, mid, label,
			shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), color.Black),
			color.White, pal.MustColor("slate"), vg.Points(1))
	}
}

func (f paradigmShift) drawOAuthSide(dc draw.Canvas, pal *figure.Palette) {
	s := shapes.NewSpace(dc, 0, 10, 0, 10)
	azure := pal.MustColor("azure")
	red := pal.MustColor("crimson")
	gray := pal.MustColor("slate")
	orange := pal.MustColor("tangerine")

	shapes.Label(s.Canvas, s.Pt(5, 9.8), "Traditional: Centralized Credential Storage",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("subtitle")), color.Black))

	f.service(s, 3, 7.6, 4, 1.2, "Auth Server\n(OAuth Provider)", "Auth0, Cognito, Keycloak", red, pal)
	f.service(s, 1.5, 5.5, 2, 1, "User DB\n(PostgreSQL)", "Users, emails, passwords", gray, pal)
	f.service(s, 4, 5.5, 2, 1, "Session DB\n(Redis)", "Active sessions, tokens", gray, pal)
	f.service(s, 6.5, 5.5, 2, 1, "Permissions\n(MongoDB)", "Roles, scopes, ACLs", gray, pal)
	f.service(s, 3, 3.5, 4, 1, "Application Server\n(API Gateway)", "Validates bearer tokens", orange, pal)

	f.actor(s, 1.5, 1.5, "User A", "Web app", azure, pal)
	f.actor(s, 5, 1.5, "User B", "Mobile app", azure, pal)
	f.actor(s, 8.5, 1.5, "User C", "AI agent", azure, pal)

	f.flow(s, pal, 4.5, 7.6, 3, 6.5, "Query", red, true, vg.Points(1.5))
	f.flow(s, pal, 5.5, 7.6, 5.5, 6.5, "Read/Write", red, true, vg.Points(1.5))
	f.flow(s, pal, 6, 7.6, 7, 6.5, "Check ACL", red, true, vg.Points(1.5))

	f.flow(s, pal, 1.5, 2.1, 4, 3.5, "1. Login", azure, false, vg.Points(2))
	f.flow(s, pal, 5, 2.1, 5, 3.5, "2. Request", azure, false, vg.Points(2))
	f.flow(s, pal, 5, 4.5, 5, 7.6, "3. Validate", orange, false, vg.Points(2))

	problems := []string{
		"• Single Point of Failure",
		"• Vendor Lock-in",
		"• Data Breaches (honeypot)",
		"• Service Downtime",
		"• High Infrastructure Costs",
		"• No User Ownership",
	}
	probSty := shapes.AlignedText(shapes.Serif(pal.MustFontSize("tiny")), red, text.XLeft, text.YTop)
	for i, p := range problems {
		shapes.Label(s.Canvas, s.Pt(0.2, 9.5-0.3*float64(i)), p, probSty)
	}

	shapes.Arrow(s.Canvas, s.Pt(9, 8), s.Pt(9, 5), shapes.ArrowStyle{
		Line:         shapes.Solid(red, vg.Points(2)),
		HeadLength:   vg.Points(7),
		DoubleHeaded: true,
	})
	shapes.Label(s.Canvas, s.Pt(9.3, 6.5), "Constant\nServer\nQueries",
		shapes.AlignedText(shapes.SerifBold(pal.MustFontSize("tiny")), red, text.XLeft, text.YCenter))
}

func (f paradigmShift) drawEVMAuthSide(dc draw.Canvas, pal *figure.Palette) {
	s := shapes.NewSpace(dc, 0, 10, 0, 10)
	azure := pal.MustColor("azure")
	steel := pal.MustColor("steel")
	moss := pal.MustColor("moss")
	emerald := pal.MustColor("emerald")
	green := pal.MustColor("dark_green")

	shapes.Label(s.Canvas, s.Pt(5, 9.8), "EVMAuth: Decentralized Token Ownership",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("subtitle")), color.Black))

	f.service(s, 1.5, 7.5, 7, 1.5, "Blockchain (Immutable State)", "Ethereum, Base L2, Arbitrum, etc.", steel, pal)
	f.service(s, 3, 8.2, 4, 0.8, "EVMAuth Contract\n(ERC-1155/6909)", "", moss, pal)
	f.service(s, 3, 5, 4, 1, "Application Server\n(Stateless)", "Calls balanceOf() on-chain", emerald, pal)

	f.actor(s, 1.5, 2.5, "User A", "MetaMask", azure, pal)
	f.service(s, 0.7, 1.3, 1.6, 0.5, "Token: Premium\nBalance: 1", "", moss, pal)
	f.actor(s, 5, 2.5, "User B", "WalletConnect", azure, pal)
	f.service(s, 4.2, 1.3, 1.6, 0.5, "Token: Basic\nBalance: 2", "", moss, pal)
	f.actor(s, 8.5, 2.5, "User C", "EOA (AI)", azure, pal)
	f.service(s, 7.7, 1.3, 1.6, 0.5, "Token: AI Agent\nBalance: 1", "", moss, pal)

	f.flow(s, pal, 1.5, 3.1, 4, 5, "1. Sign Challenge", azure, false, vg.Points(2))
	f.flow(s, pal, 5, 3.1, 5.5, 5, "2. API Request", azure, false, vg.Points(2))
	f.flow(s, pal, 5, 6, 5, 7.5, "3. balanceOf(address)", emerald, false, vg.Points(2.5))
	f.flow(s, pal, 5.5, 7.5, 5.5, 6, "4. Return balance", steel, true, vg.Points(1.5))

	f.flow(s, pal, 2.1, 2.5, 4.4, 2.5, "", moss, true, vg.Points(1.5))
	shapes.BoxedLabel(s.Canvas, s.Pt(3.25, 3.2), "P2P Transfer\n(No intermediary)",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("tiny")), moss),
		pal.MustColor("light_green"), green, vg.Points(1))

	benefits := []string{
		"• Self-Sovereign Assets",
		"• No Single Point of Failure",
		"• Peer-to-Peer Transfers",
		"• Immutable Verification",
		"• Low Infrastructure Cost",
		"• Always Available (24/7)",
	}
	benSty := shapes.AlignedText(shapes.Serif(pal.MustFontSize("tiny")), green, text.XRight, text.YTop)
	for i, b := range benefits {
		shapes.Label(s.Canvas, s.Pt(9.8, 9.5-0.3*float64(i)), b, benSty)
	}

	// Everything inside this outline lives in user wallets.
	zone := []vg.Point{
		s.Pt(0.5, 2.5), s.Pt(1.5, 3.7), s.Pt(5, 3.7), s.Pt(8.5, 3.7),
		s.Pt(9.5, 2.5), s.Pt(9.5, 0.8), s.Pt(0.5, 0.8),
	}
	shapes.StrokePolygon(s.Canvas, zone, shapes.Dashed(emerald, vg.Points(3)))
	shapes.BoxedLabel(s.Canvas, s.Pt(5, 0.3),
		"User Ownership Zone: Credentials stored in user wallets, not servers",
		shapes.Text(shapes.SerifBold(pal.MustFontSize("annotation")), green),
		pal.MustColor("light_green"), green, vg.Points(2))
}
