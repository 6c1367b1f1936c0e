// Package shapes provides the 2D drawing helpers shared by the diagram
// figures: a data-space to canvas-space mapping, rounded boxes, straight and
// curved arrows, pie wedges, polar placement, and measured text labels with
// optional backing boxes. Chart figures lean on gonum/plot plotters instead;
// this package covers everything the free-form diagrams need on a raw vg
// canvas.
package shapes
