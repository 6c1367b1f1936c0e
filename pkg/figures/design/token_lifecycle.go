package design

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

type tokenLifecycle struct{}

// NewTokenLifecycle builds the finite state machine of a token from creation
// through ownership to its final states.
func NewTokenLifecycle() figure.Figure { return tokenLifecycle{} }

func (tokenLifecycle) Name() string  { return "token_lifecycle" }
func (tokenLifecycle) Title() string { return "Token Lifecycle State Machine" }

func (tokenLifecycle) Category() figure.Category { return figure.CategoryDesign }

func (tokenLifecycle) Size() (vg.Length, vg.Length) { return 14 * vg.Inch, 10 * vg.Inch }

func (f tokenLifecycle) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}
	initial := pal.MustColor("mist")
	active := pal.MustColor("mint")
	transitional := pal.MustColor("cream")
	final := pal.MustColor("blush")

	s := shapes.NewSpace(dc, 0, 14, 0, 10)
	base := pal.MustFontSize("base")

	f.state(s, 2, 8.35, "Created", initial, base, false)
	// Initial-state marker.
	edge(s, 0.3, 8.35, 0.85, 8.35, shapes.Solid(color.Black, vg.Points(2)))

	f.state(s, 6.5, 8.35, "Configured\n(Type & Price)", active, base, false)
	f.state(s, 3, 6.35, "Owned\n(User Balance)", active, base, false)
	f.state(s, 11.5, 6.35, "Frozen\n(Account)", transitional, base, false)
	f.state(s, 3, 4.35, "Transferring", transitional, base, false)
	f.state(s, 7, 4.35, "Active\n(Not Expired)", active, base, false)
	f.state(s, 11, 4.35, "Expired\n(TTL passed)", transitional, base, false)
	f.state(s, 5, 1.85, "Burned", final, base, true)
	f.state(s, 9, 1.85, "Transferred\nOut", final, base, true)

	f.transition(s, pal, 3, 8.35, 5.5, 8.35, "createToken()", 0)
	f.transition(s, pal, 6.0, 8.0, 3.5, 6.7, "purchase()", -0.3)
	f.transition(s, pal, 4, 6.55, 10.3, 6.55, "freezeAccount()", 0.2)
	f.transition(s, pal, 10.3, 6.15, 4, 6.15, "unfreezeAccount()", -0.2)
	f.transition(s, pal, 3, 6.0, 3, 4.7, "transfer() /\nsafeTransferFrom()", 0)
	f.transition(s, pal, 3.7, 4.05, 8.3, 2.05, "Complete", -0.2)
	f.transition(s, pal, 4.5, 6.0, 6.5, 4.7, "balanceOf()\n[check TTL]", -0.15)
	f.transition(s, pal, 8, 4.35, 10, 4.35, "time > TTL", 0)
	f.transition(s, pal, 10, 4.55, 8, 4.55, "purchase()\n[extend]", 0.2)
	f.transition(s, pal, 10.5, 4.0, 6, 2.2, "pruneBalanceRecords()", -0.3)
	f.transition(s, pal, 2.5, 6.0, 4.5, 2.2, "burn()", -0.4)

	f.drawFailLoop(s, pal)
	f.drawLegend(s, pal)
	f.drawConditions(s, pal)

	shapes.Label(s.Canvas, s.Pt(7, 9.7), f.Title(),
		shapes.Text(shapes.SerifBold(pal.MustFontSize("heading")), color.Black))
	shapes.BoxedLabel(s.Canvas, s.Pt(7, 0.5),
		"Solid arrows: User/Admin actions | Dashed: Automatic state checks",
		shapes.Text(shapes.SerifItalic(pal.MustFontSize("annotation")), color.Black),
		pal.MustColor("light_yellow"), color.Black, vg.Points(1))
	return nil
}

// state draws a state box centered at a data point. Final states get a
// second, heavier border.
func (tokenLifecycle) state(s shapes.Space, x, y float64, txt string, fill color.Color, fnt vg.Length, isFinal bool) {
	const w, h = 2.0, 0.7
	if isFinal {
		outer := s.Rect(x-w/2-0.08, y-h/2-0.08, w+0.16, h+0.16)
		shapes.RoundedBox(s.Canvas, outer, vg.Points(7), nil, color.Black, vg.Points(3))
	}
	node(s, x, y, w, h, txt, fill, fnt, true)
}

func (tokenLifecycle) transition(s shapes.Space, pal *figure.Palette, x1, y1, x2, y2 float64, label string, curve float64) {
	shapes.Arrow(s.Canvas, s.Pt(x1, y1), s.Pt(x2, y2), shapes.ArrowStyle{
		Line:       shapes.Solid(color.Black, vg.Points(2)),
		HeadLength: vg.Points(8),
		Curvature:  curve,
	})
	mid := s.Pt((x1+x2)/2, (y1+y2)/2+curve*0.5)
	shapes.BoxedLabel(s.Canvas, vg.Point{X: mid.X, Y: mid.Y + vg.Points(6)}, label,
		shapes.Text(shapes.Serif(pal.MustFontSize("annotation")), color.Black),
		color.White, color.Black, vg.Points(1))
}

// drawFailLoop marks the failed-transfer self loop on the Transferring state.
func (tokenLifecycle) drawFailLoop(s shapes.Space, pal *figure.Palette) {
	red := pal.MustColor("crimson")
	shapes.Arrow(s.Canvas, s.Pt(1.8, 4.65), s.Pt(1.8, 4.05), shapes.ArrowStyle{
		Line:       shapes.Solid(red, vg.Points(1.5)),
		HeadLength: vg.Points(6),
		Curvature:  -1.2,
	})
	shapes.BoxedLabel(s.Canvas, s.Pt(1.1, 4.35), "Fail:\n!transferable",
		shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), red),
		pal.MustColor("rose"), red, vg.Points(1))
}

func (tokenLifecycle) drawLegend(s shapes.Space, pal *figure.Palette) {
	shapes.Label(s.Canvas, s.Pt(7, 9.5), "State Types:",
		shapes.AlignedText(shapes.SerifBold(pal.MustFontSize("base")), color.Black, text.XLeft, text.YCenter))

	entries := []struct {
		color string
		label string
	}{
		{"mist", "Initial State"},
		{"mint", "Active State"},
		{"cream", "Transitional"},
		{"blush", "Final State (Double border)"},
	}
	sty := shapes.AlignedText(shapes.Serif(pal.MustFontSize("annotation")), color.Black, text.XLeft, text.YCenter)
	for i, e := range entries {
		y := 9.2 - 0.3*float64(i)
		shapes.RoundedBox(s.Canvas, s.Rect(8.5, y-0.1, 0.3, 0.2), vg.Points(2),
			pal.MustColor(e.color), color.Black, vg.Points(1))
		shapes.Label(s.Canvas, s.Pt(8.9, y), e.label, sty)
	}
}

func (tokenLifecycle) drawConditions(s shapes.Space, pal *figure.Palette) {
	left := shapes.AlignedText(shapes.Serif(pal.MustFontSize("annotation")), color.Black, text.XLeft, text.YCenter)
	shapes.Label(s.Canvas, s.Pt(7, 2.5), "Conditional Transitions:",
		shapes.AlignedText(shapes.SerifBold(pal.MustFontSize("small")), color.Black, text.XLeft, text.YCenter))

	conditions := []string{
		"• transfer() only if token.transferable == true",
		"• freezeAccount() only by ACCOUNT_MANAGER role",
		"• Expiration only for ephemeral tokens (TTL > 0)",
	}
	for i, cond := range conditions {
		shapes.Label(s.Canvas, s.Pt(7, 2.3-0.2*float64(i)), cond, left)
	}
}
