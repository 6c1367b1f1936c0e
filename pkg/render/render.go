package render

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/evmauth/figgen/pkg/figure"
)

// Formats supported by the renderer. PDF renders first so a raster failure
// never masks a vector failure.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

const defaultDPI = 300

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithDPI overrides the raster resolution. Values below 72 are rejected at
// render time.
func WithDPI(dpi int) Option {
	return func(r *Renderer) {
		r.dpi = dpi
	}
}

// WithFormats restricts the output formats. The default is the PDF/PNG pair.
func WithFormats(formats ...string) Option {
	return func(r *Renderer) {
		r.formats = formats
	}
}

// Renderer draws figures onto vg canvases and writes the resulting artifact
// files. A Renderer is safe for reuse across figures.
type Renderer struct {
	dpi     int
	formats []string
}

// New constructs a Renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{
		dpi:     defaultDPI,
		formats: []string{FormatPDF, FormatPNG},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Render draws the figure once per configured format and writes the artifacts
// into dir, creating it if needed. It returns the written paths in render
// order. Output files from previous runs are overwritten.
func (r *Renderer) Render(ctx context.Context, fig figure.Figure, dir string) ([]string, error) {
	if fig == nil {
		return nil, fmt.Errorf("render: figure is required")
	}
	if r.dpi < 72 {
		return nil, fmt.Errorf("render: dpi %d below minimum 72", r.dpi)
	}
	if len(r.formats) == 0 {
		return nil, fmt.Errorf("render: no output formats configured")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create output dir %s: %w", dir, err)
	}

	paths := make([]string, 0, len(r.formats))
	for _, format := range r.formats {
		if err := ctx.Err(); err != nil {
			return paths, fmt.Errorf("render: %s: %w", fig.Name(), err)
		}
		path := filepath.Join(dir, fig.Name()+"."+format)
		var err error
		switch format {
		case FormatPDF:
			err = r.writePDF(fig, path)
		case FormatPNG:
			err = r.writePNG(fig, path)
		default:
			return paths, fmt.Errorf("render: unsupported format %q", format)
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (r *Renderer) writePDF(fig figure.Figure, path string) error {
	w, h := fig.Size()
	c := vgpdf.New(w, h)
	dc := draw.New(c)
	fillBackground(dc)
	if err := fig.Draw(dc); err != nil {
		return fmt.Errorf("render: draw %s: %w", fig.Name(), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := c.WriteTo(f); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) writePNG(fig figure.Figure, path string) error {
	w, h := fig.Size()
	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(r.dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(c)
	if err := fig.Draw(dc); err != nil {
		return fmt.Errorf("render: draw %s: %w", fig.Name(), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}

func fillBackground(dc draw.Canvas) {
	var p vg.Path
	r := dc.Rectangle
	p.Move(r.Min)
	p.Line(vg.Point{X: r.Max.X, Y: r.Min.Y})
	p.Line(r.Max)
	p.Line(vg.Point{X: r.Min.X, Y: r.Max.Y})
	p.Close()
	dc.SetColor(color.White)
	dc.Fill(p)
}
