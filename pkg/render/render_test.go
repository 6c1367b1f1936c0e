package render

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/shapes"
)

type stubFigure struct {
	name string
	err  error
}

func (s stubFigure) Name() string                 { return s.name }
func (s stubFigure) Title() string                { return "Stub" }
func (s stubFigure) Category() figure.Category    { return figure.CategoryCost }
func (s stubFigure) Size() (vg.Length, vg.Length) { return 2 * vg.Inch, vg.Inch }
func (s stubFigure) Draw(dc draw.Canvas) error    { return s.err }

func TestRenderWritesPair(t *testing.T) {
	dir := t.TempDir()
	fig := stubFigure{name: "stub"}

	paths, err := New(WithDPI(72)).Render(context.Background(), fig, dir)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{
		filepath.Join(dir, "stub.pdf"),
		filepath.Join(dir, "stub.png"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("artifact %s is empty", path)
		}
	}
}

func TestRenderCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if _, err := New(WithDPI(72)).Render(context.Background(), stubFigure{name: "stub"}, dir); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("output dir missing: %v", err)
	}
}

func TestRenderNilFigure(t *testing.T) {
	if _, err := New().Render(context.Background(), nil, t.TempDir()); err == nil {
		t.Fatal("expected error for nil figure")
	}
}

func TestRenderLowDPI(t *testing.T) {
	if _, err := New(WithDPI(30)).Render(context.Background(), stubFigure{name: "stub"}, t.TempDir()); err == nil {
		t.Fatal("expected error for dpi below 72")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	r := New(WithFormats("svg"))
	if _, err := r.Render(context.Background(), stubFigure{name: "stub"}, t.TempDir()); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestRenderNoFormats(t *testing.T) {
	r := New(WithFormats())
	if _, err := r.Render(context.Background(), stubFigure{name: "stub"}, t.TempDir()); err == nil {
		t.Fatal("expected error with no formats configured")
	}
}

func TestRenderDrawError(t *testing.T) {
	drawErr := errors.New("boom")
	_, err := New(WithDPI(72)).Render(context.Background(), stubFigure{name: "stub", err: drawErr}, t.TempDir())
	if !errors.Is(err, drawErr) {
		t.Fatalf("err = %v, want wrapped draw error", err)
	}
}

func TestRenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithDPI(72)).Render(ctx, stubFigure{name: "stub"}, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

type styledTextFigure struct{}

func (styledTextFigure) Name() string                 { return "styled_text" }
func (styledTextFigure) Title() string                { return "Styled text" }
func (styledTextFigure) Category() figure.Category    { return figure.CategoryDesign }
func (styledTextFigure) Size() (vg.Length, vg.Length) { return 3 * vg.Inch, vg.Inch }

func (styledTextFigure) Draw(dc draw.Canvas) error {
	r := dc.Rectangle
	mid := vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
	shapes.Label(dc, vg.Point{X: mid.X, Y: mid.Y + vg.Points(14)},
		"Total Deployment Cost", shapes.Text(shapes.SerifBold(vg.Points(12)), color.Black))
	shapes.Label(dc, mid,
		"at Base L2 gas prices", shapes.Text(shapes.SerifItalic(vg.Points(10)), color.Black))
	shapes.Label(dc, vg.Point{X: mid.X, Y: mid.Y - vg.Points(14)},
		"purchase(1, 30 days)", shapes.Text(shapes.Mono(vg.Points(9)), color.Black))
	return nil
}

// Bold and italic text must survive the PDF backend, whose font lookup keys
// on the face family name plus a weight/slant style suffix.
func TestRenderStyledTextPDF(t *testing.T) {
	dir := t.TempDir()

	paths, err := New(WithDPI(72)).Render(context.Background(), styledTextFigure{}, dir)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("artifact %s is empty", path)
		}
	}
}

func TestRenderSingleFormat(t *testing.T) {
	dir := t.TempDir()

	paths, err := New(WithFormats(FormatPDF)).Render(context.Background(), stubFigure{name: "stub"}, dir)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(paths) != 1 || filepath.Ext(paths[0]) != ".pdf" {
		t.Fatalf("paths = %v, want single pdf", paths)
	}
	if _, err := os.Stat(filepath.Join(dir, "stub.png")); !os.IsNotExist(err) {
		t.Fatal("png must not be written when only pdf is requested")
	}
}
