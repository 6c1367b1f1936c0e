// Package figgen regenerates the EVMAuth paper's figure set. Each figure
// embeds its dataset and draws itself onto a vector canvas; rendering writes
// a paired PDF and PNG per figure. The root package re-exports the common
// types and offers one-call helpers over the figure registry, the renderer,
// and the batch orchestrator.
package figgen

import (
	"context"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/figures"
	"github.com/evmauth/figgen/pkg/orchestrator"
	"github.com/evmauth/figgen/pkg/render"
)

// Figure aliases the figure contract exported via the root package for
// convenience.
type Figure = figure.Figure

// Registry stores figures by name.
type Registry = figure.Registry

// Report aggregates a batch generation run.
type Report = orchestrator.Report

// Result captures one figure's generation outcome.
type Result = orchestrator.Result

// DefaultRegistry returns a registry pre-loaded with the complete figure
// catalog.
func DefaultRegistry() (*figure.Registry, error) {
	reg := figure.NewRegistry()
	if err := figures.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Generate renders one catalog figure into dir and returns the artifact
// paths. It is the simplest entry point for callers that want a single
// PDF/PNG pair.
func Generate(ctx context.Context, name, dir string, options ...render.Option) ([]string, error) {
	reg, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	fig, err := reg.Get(name)
	if err != nil {
		return nil, err
	}
	return render.New(options...).Render(ctx, fig, dir)
}

// GenerateAll runs the full catalog in order, continuing past individual
// failures, and returns the batch report.
func GenerateAll(ctx context.Context, dir string, options ...orchestrator.Option) (Report, error) {
	orch, err := orchestrator.New(options...)
	if err != nil {
		return Report{}, err
	}
	return orch.Run(ctx, dir), nil
}
