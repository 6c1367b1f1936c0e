// Package testsupport holds shared helpers for figure tests. Testing helpers
// fail the test on error to keep figure smoke tests concise.
package testsupport

import (
	"context"
	"testing"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/render"
)

// Canvas returns a raster draw canvas sized to the figure. Smoke tests draw
// onto it to exercise the full drawing path without touching the filesystem.
func Canvas(t *testing.T, fig figure.Figure) draw.Canvas {
	t.Helper()

	w, h := fig.Size()
	if w <= 0 || h <= 0 {
		t.Fatalf("figure %s reports non-positive size %v x %v", fig.Name(), w, h)
	}
	return draw.New(vgimg.NewWith(vgimg.UseWH(w, h)))
}

// MustDraw draws the figure onto a canvas sized for it and fails the test on
// any drawing error.
func MustDraw(t *testing.T, fig figure.Figure) {
	t.Helper()

	if err := fig.Draw(Canvas(t, fig)); err != nil {
		t.Fatalf("draw %s: %v", fig.Name(), err)
	}
}

// RenderPair renders the figure into a temporary directory and returns the
// written artifact paths. A low DPI keeps the raster pass fast.
func RenderPair(t *testing.T, fig figure.Figure) []string {
	t.Helper()

	paths, err := render.New(render.WithDPI(72)).Render(context.Background(), fig, t.TempDir())
	if err != nil {
		t.Fatalf("render %s: %v", fig.Name(), err)
	}
	return paths
}
