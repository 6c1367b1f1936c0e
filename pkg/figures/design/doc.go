// Package design contains the architecture and design figures: the primitive
// wheel, contract hierarchy, pricing and lifecycle diagrams, workflow and
// stack views, the gas/feature trade-off chart, and the paradigm comparison.
// These are drawn directly on the vg canvas in an abstract layout space
// rather than through plot axes.
package design
