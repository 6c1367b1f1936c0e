package shapes

import (
	"image/color"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The paper artwork uses a serif face throughout; Liberation Serif is the
// metric-compatible substitute shipped with gonum/plot.
const typeface = "Liberation"

var handler = text.Plain{Fonts: font.DefaultCache}

func init() {
	coll := liberation.Collection()
	font.DefaultCache.Add(coll)
	font.DefaultCache.Add(styledFaces(coll))
}

// styledFaces re-registers the bold and italic faces under variants of their
// own ("SerifBold", "SerifItalic") with neutral weight and slant. The PDF
// backend registers each face under its fully qualified family name with an
// empty style string but asks for a "B"/"I" style whenever the descriptor
// carries a bold weight or italic slant, so a styled descriptor never matches
// its own registration; a neutral descriptor on a distinct variant keeps the
// family name and the style string in agreement.
func styledFaces(coll font.Collection) font.Collection {
	var styled font.Collection
	for _, face := range coll {
		fnt := face.Font
		if fnt.Weight == xfont.WeightNormal && fnt.Style == xfont.StyleNormal {
			continue
		}
		if fnt.Weight == xfont.WeightBold {
			fnt.Variant += "Bold"
		}
		if fnt.Style == xfont.StyleItalic {
			fnt.Variant += "Italic"
		}
		fnt.Weight = xfont.WeightNormal
		fnt.Style = xfont.StyleNormal
		styled = append(styled, font.Face{Font: fnt, Face: face.Face})
	}
	return styled
}

// Serif returns a regular serif font at the given size.
func Serif(size vg.Length) font.Font {
	return font.Font{Typeface: typeface, Variant: "Serif", Size: size}
}

// SerifBold returns a bold serif font at the given size.
func SerifBold(size vg.Length) font.Font {
	f := Serif(size)
	f.Variant = "SerifBold"
	return f
}

// SerifItalic returns an italic serif font at the given size.
func SerifItalic(size vg.Length) font.Font {
	f := Serif(size)
	f.Variant = "SerifItalic"
	return f
}

// Mono returns a monospace font for code-like annotations.
func Mono(size vg.Length) font.Font {
	return font.Font{Typeface: typeface, Variant: "Mono", Size: size}
}

// Text builds a centered text style in the given font and color.
func Text(fnt font.Font, clr color.Color) text.Style {
	return text.Style{
		Color:   clr,
		Font:    fnt,
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: handler,
	}
}

// AlignedText builds a text style with explicit alignment.
func AlignedText(fnt font.Font, clr color.Color, xa text.XAlignment, ya text.YAlignment) text.Style {
	sty := Text(fnt, clr)
	sty.XAlign = xa
	sty.YAlign = ya
	return sty
}

// RotatedText builds a centered text style rotated by the given angle in
// radians.
func RotatedText(fnt font.Font, clr color.Color, rotation float64) text.Style {
	sty := Text(fnt, clr)
	sty.Rotation = rotation
	return sty
}

// Measure returns the width and height of a possibly multi-line string in the
// given font, including inter-line spacing.
func Measure(txt string, fnt font.Font) (w, h vg.Length) {
	lines := strings.Split(txt, "\n")
	ext := handler.Extents(fnt)
	lineHeight := ext.Height
	for _, line := range lines {
		lw, _, _ := handler.Box(line, fnt)
		if lw > w {
			w = lw
		}
	}
	return w, lineHeight * vg.Length(len(lines))
}

// Label draws centered text at a canvas point.
func Label(dc draw.Canvas, pt vg.Point, txt string, sty text.Style) {
	dc.FillText(sty, pt, txt)
}

// BoxedLabel draws centered text over a rounded backing box sized to the
// text, mirroring the "round,pad" annotation boxes in the source artwork.
func BoxedLabel(dc draw.Canvas, pt vg.Point, txt string, sty text.Style, fill, edge color.Color, lineWidth vg.Length) {
	w, h := Measure(txt, sty.Font)
	pad := sty.Font.Size * 0.4
	rect := vg.Rectangle{
		Min: vg.Point{X: pt.X - w/2 - pad, Y: pt.Y - h/2 - pad},
		Max: vg.Point{X: pt.X + w/2 + pad, Y: pt.Y + h/2 + pad},
	}
	RoundedBox(dc, rect, pad, fill, edge, lineWidth)

	centered := sty
	centered.XAlign = text.XCenter
	centered.YAlign = text.YCenter
	dc.FillText(centered, pt, txt)
}
