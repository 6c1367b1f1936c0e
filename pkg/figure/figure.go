package figure

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Category groups figures for catalog listings and reports.
type Category string

const (
	// CategoryCost marks cost and performance analysis charts.
	CategoryCost Category = "cost"
	// CategoryDesign marks architecture and design diagrams.
	CategoryDesign Category = "design"
)

// Figure is one static visualization. A figure owns its dataset (hard-coded
// literals), its canvas dimensions, and its drawing routine. Draw must be a
// pure function of those literals: same version in, same picture out.
type Figure interface {
	// Name is the artifact base name, e.g. "network_cost_comparison" for the
	// network_cost_comparison.pdf/png pair.
	Name() string

	// Title is the human-readable caption used in listings.
	Title() string

	// Category reports which catalog section the figure belongs to.
	Category() Category

	// Size returns the canvas width and height.
	Size() (w, h vg.Length)

	// Draw renders the figure onto the canvas.
	Draw(dc draw.Canvas) error
}
