// Package render writes figure artifacts. Every figure produces a paired
// vector and raster output (<name>.pdf and <name>.png); the renderer draws
// the figure once per backend onto a vg canvas sized by the figure itself.
package render
