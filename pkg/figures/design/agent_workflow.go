package design

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

// flowStep is one box in a vertical flowchart column. Kind selects the fill
// and whether the box renders as a decision diamond.
type flowStep struct {
	text    string
	kind    string // "action", "problem", "check", "success"
	diamond bool
}

// flowColumn is one of the three authentication approaches.
type flowColumn struct {
	title string
	steps []flowStep
	// notes render under the flow, first line as the colored heading.
	notesHead  string
	notesColor string
	notes      []string
}

var workflowColumns = []flowColumn{
	{
		title: "Traditional: Static API Keys",
		steps: []flowStep{
			{"AI Agent\nNeeds Access", "action", false},
			{"Admin Generates\nAPI Key", "action", false},
			{"Manual Key\nInjection", "problem", false},
			{"Key Stored\nin Memory", "problem", false},
			{"Agent Makes\nAPI Request", "action", false},
			{"Server Validates\nKey", "check", false},
			{"Access Granted", "success", false},
		},
		notesHead:  "Problems:",
		notesColor: "crimson",
		notes: []string{
			"• Requires human intervention",
			"• Keys can leak or expire",
			"• No autonomous rotation",
			"• Centralized control point",
		},
	},
	{
		title: "OAuth: Human Consent Required",
		steps: []flowStep{
			{"AI Agent\nNeeds Access", "action", false},
			{"Redirect to\nAuth Server", "action", false},
			{"Human Login\nRequired", "problem", true},
			{"User Grants\nPermission", "problem", false},
			{"Receive Access\nToken (TTL)", "action", false},
			{"Agent Makes\nAPI Request", "action", false},
			{"Token Expired?", "check", true},
		},
		notesHead:  "Problems:",
		notesColor: "crimson",
		notes: []string{
			"• Requires human in the loop",
			"• Not truly autonomous",
			"• Refresh tokens still expire",
			"• Complex flow for agents",
		},
	},
	{
		title: "EVMAuth: Autonomous Ownership",
		steps: []flowStep{
			{"AI Agent\nNeeds Access", "action", false},
			{"Agent Has\nEOA Wallet", "success", false},
			{"Purchase Token\nOn-Chain", "action", false},
			{"Token Owned\nin Wallet", "success", false},
			{"Sign Challenge\nwith Private Key", "action", false},
			{"Server Verifies\nbalanceOf()", "check", false},
			{"Access Granted", "success", false},
		},
		notesHead:  "Benefits:",
		notesColor: "emerald",
		notes: []string{
			"• Fully autonomous",
			"• No human intervention",
			"• Transferable credentials",
			"• Decentralized verification",
		},
	},
}

type agentWorkflow struct{}

// NewAgentWorkflow builds the three-column flowchart comparing static keys,
// OAuth, and on-chain token ownership for AI agent authentication.
func NewAgentWorkflow() figure.Figure { return agentWorkflow{} }

func (agentWorkflow) Name() string  { return "ai_agent_workflow" }
func (agentWorkflow) Title() string { return "AI Agent Authentication: Workflow Comparison" }

func (agentWorkflow) Category() figure.Category { return figure.CategoryDesign }

func (agentWorkflow) Size() (vg.Length, vg.Length) { return 16 * vg.Inch, 10 * vg.Inch }

func (f agentWorkflow) Draw(dc draw.Canvas) error {
	pal, err := figure.Styles()
	if err != nil {
		return err
	}

	width := dc.Rectangle.Max.X - dc.Rectangle.Min.X
	colW := width / 3
	for i, col := range workflowColumns {
		left := vg.Length(i) * colW
		right := width - vg.Length(i+1)*colW
		colCanvas := draw.Crop(dc, left, -right, vg.Points(42), -vg.Points(36))
		f.drawColumn(colCanvas, pal, i, col)
	}

	suptitle(dc, f.Title(), pal.MustFontSize("heading"))
	footer(dc,
		"EVMAuth enables true autonomous operation: agents own tokens directly without human-in-the-loop consent flows",
		pal.Alpha("light_green", 0xCC), pal.MustColor("dark_green"))
	return nil
}

func (f agentWorkflow) drawColumn(dc draw.Canvas, pal *figure.Palette, idx int, col flowColumn) {
	s := shapes.NewSpace(dc, 0, 3, 0, 10)

	shapes.Label(s.Canvas, s.Pt(1.5, 9.8), col.title,
		shapes.Text(shapes.SerifBold(pal.MustFontSize("subtitle")), color.Black))

	arrow := shapes.Solid(color.Black, vg.Points(2))
	fnt := pal.MustFontSize("annotation")
	for i, step := range col.steps {
		y := 9.25 - float64(i)
		fill := f.stepFill(pal, step.kind)
		if step.diamond {
			shapes.Diamond(s.Canvas, s.Pt(1.5, y), s.DX(2.2), s.DY(0.8), fill, color.Black, vg.Points(2))
			shapes.Label(s.Canvas, s.Pt(1.5, y), step.text,
				shapes.Text(shapes.SerifBold(fnt), color.Black))
		} else {
			node(s, 1.5, y, 2, 0.5, step.text, fill, fnt, true)
		}
		if i < len(col.steps)-1 {
			edge(s, 1.5, y-0.27, 1.5, y-0.72, arrow)
		}
	}

	switch idx {
	case 1:
		// Expired tokens loop back through the consent flow.
		red := pal.MustColor("crimson")
		shapes.Arrow(s.Canvas, s.Pt(0.45, 3.4), s.Pt(0.3, 7.25), shapes.ArrowStyle{
			Line:       shapes.Dashed(red, vg.Points(1.5)),
			HeadLength: vg.Points(6),
			Curvature:  0.15,
		})
		shapes.BoxedLabel(s.Canvas, s.Pt(0.42, 5.3), "Yes:\nRefresh",
			shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), red),
			color.White, pal.MustColor("slate"), vg.Points(0.5))
	case 2:
		// Optional renewal keeps the token alive without re-authorization.
		green := pal.MustColor("moss")
		shapes.Arrow(s.Canvas, s.Pt(2.55, 6.5), s.Pt(2.55, 7.0), shapes.ArrowStyle{
			Line:         shapes.Dashed(green, vg.Points(1.5)),
			HeadLength:   vg.Points(6),
			Curvature:    -0.5,
			DoubleHeaded: true,
		})
		shapes.BoxedLabel(s.Canvas, s.Pt(2.55, 6.75), "Extend\n(Optional)",
			shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), green),
			color.White, pal.MustColor("slate"), vg.Points(0.5))
	}

	headClr := pal.MustColor(col.notesColor)
	shapes.Label(s.Canvas, s.Pt(1.5, 2), col.notesHead,
		shapes.Text(shapes.SerifBold(pal.MustFontSize("small")), headClr))
	noteSty := shapes.Text(shapes.Serif(pal.MustFontSize("tiny")), color.Black)
	for i, n := range col.notes {
		y := 1.55 - 0.3*float64(i)
		shapes.Label(s.Canvas, s.Pt(1.5, y), n, noteSty)
	}
}

func (agentWorkflow) stepFill(pal *figure.Palette, kind string) color.NRGBA {
	switch kind {
	case "problem":
		return pal.MustColor("blush")
	case "check":
		return pal.MustColor("cream")
	case "success":
		return pal.MustColor("ice")
	default:
		return pal.MustColor("mint")
	}
}
