package orchestrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/figures"
	"github.com/evmauth/figgen/pkg/render"
)

// Result captures one figure's generation outcome.
type Result struct {
	// Name is the figure's artifact base name.
	Name string
	// Title is the figure's caption, empty for subprocess runs of unknown
	// figures.
	Title string
	// Paths lists the artifact files written, in render order.
	Paths []string
	// Output holds captured subprocess output; empty for in-process runs.
	Output string
	// Duration is the wall time this figure took.
	Duration time.Duration
	// Err is nil on success.
	Err error
}

// OK reports whether the figure generated successfully.
func (r Result) OK() bool { return r.Err == nil }

// Report aggregates a full batch run.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// OK reports whether every figure succeeded.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Failed returns the results that ended in error, in run order.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Runner generates a single figure into dir. Implementations must not panic
// on unknown names; they report the problem through Result.Err.
type Runner interface {
	Run(ctx context.Context, name, dir string) Result
}

// InProcessRunner renders figures directly inside the current process.
type InProcessRunner struct {
	Registry *figure.Registry
	Renderer *render.Renderer
}

// Run implements Runner.
func (r InProcessRunner) Run(ctx context.Context, name, dir string) Result {
	start := time.Now()
	res := Result{Name: name}

	fig, err := r.Registry.Get(name)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	res.Title = fig.Title()

	paths, err := r.Renderer.Render(ctx, fig, dir)
	res.Paths = paths
	res.Err = err
	res.Duration = time.Since(start)
	return res
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRunner injects the per-figure runner. The default renders in-process
// from the full catalog.
func WithRunner(runner Runner) Option {
	return func(o *Orchestrator) {
		if runner != nil {
			o.runner = runner
		}
	}
}

// WithOrder overrides the generation sequence. The default is the catalog
// order.
func WithOrder(names ...string) Option {
	return func(o *Orchestrator) {
		if len(names) > 0 {
			o.order = names
		}
	}
}

// WithLogger attaches a logger for per-figure progress. The default logger
// is a no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator runs the catalog in sequence. Construct with New.
type Orchestrator struct {
	runner Runner
	order  []string
	logger *zap.Logger
}

// New builds an orchestrator, defaulting to an in-process run of the full
// catalog.
func New(options ...Option) (*Orchestrator, error) {
	reg := figure.NewRegistry()
	if err := figures.Register(reg); err != nil {
		return nil, err
	}
	o := &Orchestrator{
		runner: InProcessRunner{Registry: reg, Renderer: render.New()},
		order:  figures.Order,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	return o, nil
}

// Run generates every figure in order into dir. A failing figure is recorded
// and the run continues with the next one; ctx cancellation stops the batch
// after the figure in flight.
func (o *Orchestrator) Run(ctx context.Context, dir string) Report {
	start := time.Now()
	report := Report{Results: make([]Result, 0, len(o.order))}

	for _, name := range o.order {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, Result{Name: name, Err: err})
			continue
		}

		o.logger.Debug("generating figure", zap.String("figure", name), zap.String("dir", dir))
		res := o.runner.Run(ctx, name, dir)
		report.Results = append(report.Results, res)

		if res.OK() {
			o.logger.Info("figure generated",
				zap.String("figure", name),
				zap.Strings("paths", res.Paths),
				zap.Duration("took", res.Duration))
		} else {
			o.logger.Error("figure failed",
				zap.String("figure", name),
				zap.Error(res.Err),
				zap.Duration("took", res.Duration))
		}
	}

	report.Elapsed = time.Since(start)
	return report
}
