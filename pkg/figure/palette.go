package figure

import (
	_ "embed"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// Palette resolves the shared color scheme and font scale used across every
// figure. It is loaded once from the embedded styles document; there is no
// runtime configuration surface.
type Palette struct {
	colors map[string]color.NRGBA
	fonts  map[string]vg.Length
}

type paletteDoc struct {
	Colors map[string]string  `yaml:"colors"`
	Fonts  map[string]float64 `yaml:"fonts"`
}

var (
	paletteOnce sync.Once
	palette     *Palette
	paletteErr  error
)

// Styles returns the process-wide palette, parsing the embedded document on
// first use.
func Styles() (*Palette, error) {
	paletteOnce.Do(func() {
		palette, paletteErr = parsePalette(stylesYAML)
	})
	return palette, paletteErr
}

// MustStyles panics when the embedded style document is malformed. The
// document ships inside the binary, so a failure here is a build defect.
func MustStyles() *Palette {
	p, err := Styles()
	if err != nil {
		panic(err)
	}
	return p
}

func parsePalette(data []byte) (*Palette, error) {
	var doc paletteDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("figure: parse styles: %w", err)
	}
	if len(doc.Colors) == 0 {
		return nil, fmt.Errorf("figure: styles document declares no colors")
	}

	p := &Palette{
		colors: make(map[string]color.NRGBA, len(doc.Colors)),
		fonts:  make(map[string]vg.Length, len(doc.Fonts)),
	}
	for name, hex := range doc.Colors {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("figure: color %q: %w", name, err)
		}
		p.colors[name] = c
	}
	for name, pts := range doc.Fonts {
		if pts <= 0 {
			return nil, fmt.Errorf("figure: font size %q must be positive, got %v", name, pts)
		}
		p.fonts[name] = vg.Points(pts)
	}
	return p, nil
}

// Color returns a named palette color.
func (p *Palette) Color(name string) (color.NRGBA, error) {
	c, ok := p.colors[name]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("figure: color %q not in palette", name)
	}
	return c, nil
}

// MustColor panics on unknown names. Figures reference palette entries by
// literal name, so a miss is a programming error caught by the package tests.
func (p *Palette) MustColor(name string) color.NRGBA {
	c, err := p.Color(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns a named palette color with its alpha channel replaced.
func (p *Palette) Alpha(name string, alpha uint8) color.NRGBA {
	c := p.MustColor(name)
	c.A = alpha
	return c
}

// FontSize returns a named font size from the embedded scale.
func (p *Palette) FontSize(name string) (vg.Length, error) {
	s, ok := p.fonts[name]
	if !ok {
		return 0, fmt.Errorf("figure: font size %q not in palette", name)
	}
	return s, nil
}

// MustFontSize panics on unknown font scale names.
func (p *Palette) MustFontSize(name string) vg.Length {
	s, err := p.FontSize(name)
	if err != nil {
		panic(err)
	}
	return s
}

// ColorCount reports how many colors the palette defines.
func (p *Palette) ColorCount() int { return len(p.colors) }

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into an NRGBA value.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	c := color.NRGBA{A: 0xFF}
	if len(hex) == 8 {
		c.A = uint8(v & 0xFF)
		v >>= 8
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8 & 0xFF)
	c.B = uint8(v & 0xFF)
	return c, nil
}
