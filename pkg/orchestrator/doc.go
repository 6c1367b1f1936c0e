// Package orchestrator drives batch figure generation: it runs every catalog
// figure in order, keeps going when individual figures fail, and produces a
// report of what was written and what broke.
package orchestrator
