package figure

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStylesLoads(t *testing.T) {
	p, err := Styles()
	if err != nil {
		t.Fatalf("styles: %v", err)
	}
	if p.ColorCount() == 0 {
		t.Fatal("palette has no colors")
	}
}

func TestPaletteKnownEntries(t *testing.T) {
	p := MustStyles()

	// Every color the figures reference by literal name.
	names := []string{
		"steel", "berry", "amber", "moss", "brick", "violet", "lagoon",
		"slate", "azure", "crimson", "tangerine", "emerald", "powder",
		"mist", "peach", "mint", "cream", "blush", "ice", "sand",
		"butter", "pale_blue", "pale_green", "parchment", "rose",
		"light_yellow", "light_green", "light_blue", "light_pink",
		"light_gray", "dark_green", "dark_blue", "dim_gray",
		"eth", "usdc", "dai", "weth", "usdt", "wbtc", "arb", "op",
	}
	for _, name := range names {
		if _, err := p.Color(name); err != nil {
			t.Errorf("color %q missing: %v", name, err)
		}
	}

	for _, name := range []string{"tiny", "annotation", "small", "base", "label", "subtitle", "title", "heading"} {
		if _, err := p.FontSize(name); err != nil {
			t.Errorf("font size %q missing: %v", name, err)
		}
	}
}

func TestPaletteColorValues(t *testing.T) {
	p := MustStyles()

	want := color.NRGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	if diff := cmp.Diff(want, p.MustColor("steel")); diff != "" {
		t.Fatalf("steel mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteAlpha(t *testing.T) {
	p := MustStyles()

	c := p.Alpha("steel", 0x40)
	if c.A != 0x40 {
		t.Fatalf("alpha = %#x, want 0x40", c.A)
	}
	base := p.MustColor("steel")
	if c.R != base.R || c.G != base.G || c.B != base.B {
		t.Fatal("Alpha must not change the color channels")
	}
}

func TestPaletteUnknownName(t *testing.T) {
	p := MustStyles()

	if _, err := p.Color("no_such_color"); err == nil {
		t.Fatal("expected error for unknown color")
	}
	if _, err := p.FontSize("no_such_size"); err == nil {
		t.Fatal("expected error for unknown font size")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#2E86AB", color.NRGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}},
		{"#FFFFFF", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"#00000080", color.NRGBA{A: 0x80}},
		{" #1ABC9C ", color.NRGBA{R: 0x1A, G: 0xBC, B: 0x9C, A: 0xFF}},
	}
	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("parse %q mismatch (-want +got):\n%s", tc.in, diff)
		}
	}

	for _, in := range []string{"", "#FFF", "#GGGGGG", "2E86ABCD00"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
