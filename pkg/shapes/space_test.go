package shapes

import (
	"math"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func testCanvas(w, h vg.Length) draw.Canvas {
	return draw.New(vgimg.NewWith(vgimg.UseWH(w, h)))
}

func approxLen(a, b vg.Length) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestSpaceMapsCorners(t *testing.T) {
	dc := testCanvas(10*vg.Inch, 5*vg.Inch)
	s := NewSpace(dc, 0, 10, 0, 5)

	r := dc.Rectangle
	if got := s.Pt(0, 0); !approxLen(got.X, r.Min.X) || !approxLen(got.Y, r.Min.Y) {
		t.Fatalf("origin maps to %v, want %v", got, r.Min)
	}
	if got := s.Pt(10, 5); !approxLen(got.X, r.Max.X) || !approxLen(got.Y, r.Max.Y) {
		t.Fatalf("max corner maps to %v, want %v", got, r.Max)
	}

	mid := s.Pt(5, 2.5)
	if !approxLen(mid.X, (r.Min.X+r.Max.X)/2) || !approxLen(mid.Y, (r.Min.Y+r.Max.Y)/2) {
		t.Fatalf("midpoint maps to %v", mid)
	}
}

func TestSpaceExtents(t *testing.T) {
	dc := testCanvas(10*vg.Inch, 5*vg.Inch)
	s := NewSpace(dc, 0, 10, 0, 5)

	r := dc.Rectangle
	if got := s.DX(10); !approxLen(got, r.Max.X-r.Min.X) {
		t.Fatalf("DX(full) = %v, want %v", got, r.Max.X-r.Min.X)
	}
	if got := s.DY(2.5); !approxLen(got, (r.Max.Y-r.Min.Y)/2) {
		t.Fatalf("DY(half) = %v", got)
	}

	rect := s.Rect(0, 0, 10, 5)
	if !approxLen(rect.Min.X, r.Min.X) || !approxLen(rect.Min.Y, r.Min.Y) ||
		!approxLen(rect.Max.X, r.Max.X) || !approxLen(rect.Max.Y, r.Max.Y) {
		t.Fatalf("Rect(full) = %v, want %v", rect, r)
	}
}

func TestSpaceNegativeRange(t *testing.T) {
	dc := testCanvas(4*vg.Inch, 4*vg.Inch)
	s := NewSpace(dc, -1.5, 1.5, -1.5, 1.5)

	r := dc.Rectangle
	center := s.Pt(0, 0)
	if !approxLen(center.X, (r.Min.X+r.Max.X)/2) || !approxLen(center.Y, (r.Min.Y+r.Max.Y)/2) {
		t.Fatalf("center maps to %v", center)
	}
}

func TestPolar(t *testing.T) {
	x, y := Polar(1, 2, 3, 0)
	if math.Abs(x-4) > 1e-9 || math.Abs(y-2) > 1e-9 {
		t.Fatalf("east point = (%v, %v)", x, y)
	}

	x, y = Polar(0, 0, 2, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y-2) > 1e-9 {
		t.Fatalf("north point = (%v, %v)", x, y)
	}
}

func TestPolarPt(t *testing.T) {
	center := vg.Point{X: 100, Y: 100}

	got := PolarPt(center, 50, 0)
	if !approxLen(got.X, 150) || !approxLen(got.Y, 100) {
		t.Fatalf("east point = %v", got)
	}

	got = PolarPt(center, 50, math.Pi)
	if !approxLen(got.X, 50) || !approxLen(got.Y, 100) {
		t.Fatalf("west point = %v", got)
	}

	got = PolarPt(center, 50, math.Pi/2)
	if !approxLen(got.X, 100) || !approxLen(got.Y, 150) {
		t.Fatalf("north point = %v", got)
	}
}
