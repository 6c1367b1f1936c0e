package shapes

import (
	"image/color"
	"math"
	"testing"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

func TestMeasure(t *testing.T) {
	fnt := Serif(vg.Points(10))

	w, h := Measure("EVMAuth", fnt)
	if w <= 0 || h <= 0 {
		t.Fatalf("measure = (%v, %v), want positive dimensions", w, h)
	}

	_, h2 := Measure("EVMAuth\ntwo lines", fnt)
	if h2 <= h {
		t.Fatalf("two-line height %v not taller than one-line %v", h2, h)
	}

	wShort, _ := Measure("gas", fnt)
	wLong, _ := Measure("gas consumption per operation", fnt)
	if wLong <= wShort {
		t.Fatalf("longer string measured narrower: %v <= %v", wLong, wShort)
	}
}

func TestMeasureMultilineWidthIsWidestLine(t *testing.T) {
	fnt := Serif(vg.Points(10))

	wWide, _ := Measure("a much wider line of text", fnt)
	wBoth, _ := Measure("a much wider line of text\nnarrow", fnt)
	if !approxLen(wWide, wBoth) {
		t.Fatalf("multiline width %v, want widest line %v", wBoth, wWide)
	}
}

func TestFontVariants(t *testing.T) {
	size := vg.Points(12)

	if got := Serif(size).Size; got != size {
		t.Fatalf("serif size = %v", got)
	}
	if SerifBold(size).Variant == Serif(size).Variant {
		t.Fatal("bold variant must change the variant")
	}
	if SerifItalic(size).Variant == Serif(size).Variant {
		t.Fatal("italic variant must change the variant")
	}
	if f := Mono(size); f.Variant != "Mono" {
		t.Fatalf("mono variant = %q", f.Variant)
	}
}

func TestStyledFontsResolveDistinctFaces(t *testing.T) {
	size := vg.Points(12)
	regular := font.DefaultCache.Lookup(Serif(size), size)

	for _, fnt := range []font.Font{SerifBold(size), SerifItalic(size)} {
		if !font.DefaultCache.Has(fnt) {
			t.Fatalf("cache has no face for variant %q", fnt.Variant)
		}
		face := font.DefaultCache.Lookup(fnt, size)
		if face.Face == regular.Face {
			t.Fatalf("variant %q fell back to the regular face", fnt.Variant)
		}
	}
}

func TestStyledFontsCarryNoStyleFlags(t *testing.T) {
	size := vg.Points(12)

	// The PDF backend derives a style suffix from the weight and slant; the
	// styled variants must stay neutral so the suffix stays empty.
	for _, fnt := range []font.Font{SerifBold(size), SerifItalic(size)} {
		if fnt.Weight != xfont.WeightNormal {
			t.Fatalf("variant %q carries weight %v", fnt.Variant, fnt.Weight)
		}
		if fnt.Style != xfont.StyleNormal {
			t.Fatalf("variant %q carries style %v", fnt.Variant, fnt.Style)
		}
	}
}

func TestTextStyles(t *testing.T) {
	fnt := Serif(vg.Points(10))

	sty := Text(fnt, color.Black)
	if sty.XAlign != text.XCenter || sty.YAlign != text.YCenter {
		t.Fatal("Text must center by default")
	}

	left := AlignedText(fnt, color.Black, text.XLeft, text.YTop)
	if left.XAlign != text.XLeft || left.YAlign != text.YTop {
		t.Fatal("AlignedText must honor explicit alignment")
	}

	rot := RotatedText(fnt, color.Black, math.Pi/2)
	if rot.Rotation != math.Pi/2 {
		t.Fatalf("rotation = %v", rot.Rotation)
	}
}

func TestQuadPoints(t *testing.T) {
	from := vg.Point{X: 0, Y: 0}
	ctrl := vg.Point{X: 50, Y: 100}
	to := vg.Point{X: 100, Y: 0}

	pts := QuadPoints(from, ctrl, to, 17)
	if len(pts) != 17 {
		t.Fatalf("got %d points, want 17", len(pts))
	}
	if pts[0] != from {
		t.Fatalf("curve starts at %v, want %v", pts[0], from)
	}
	if pts[len(pts)-1] != to {
		t.Fatalf("curve ends at %v, want %v", pts[len(pts)-1], to)
	}

	// The quadratic midpoint sits halfway between the chord and the control
	// point.
	mid := pts[8]
	if !approxLen(mid.X, 50) || !approxLen(mid.Y, 50) {
		t.Fatalf("curve midpoint = %v", mid)
	}
}

func TestLineStyles(t *testing.T) {
	if sty := Dashed(color.Black, vg.Points(1)); len(sty.Dashes) == 0 {
		t.Fatal("dashed style has no dash pattern")
	}
	if sty := Solid(color.Black, vg.Points(2)); len(sty.Dashes) != 0 {
		t.Fatal("solid style must have no dash pattern")
	} else if sty.Width != vg.Points(2) {
		t.Fatalf("solid width = %v", sty.Width)
	}
}
