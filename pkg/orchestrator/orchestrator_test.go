package orchestrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type fakeRunner struct {
	calls []string
	fail  map[string]error
}

func (f *fakeRunner) Run(ctx context.Context, name, dir string) Result {
	f.calls = append(f.calls, name)
	res := Result{Name: name, Duration: time.Millisecond}
	if err, ok := f.fail[name]; ok {
		res.Err = err
		return res
	}
	res.Paths = artifactPaths(dir, name)
	return res
}

func TestRunAllSucceed(t *testing.T) {
	runner := &fakeRunner{}
	orch, err := New(
		WithRunner(runner),
		WithOrder("alpha", "beta", "gamma"),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	report := orch.Run(context.Background(), t.TempDir())
	if !report.OK() {
		t.Fatalf("report not OK: %+v", report.Failed())
	}
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, runner.calls); diff != "" {
		t.Fatalf("run order mismatch (-want +got):\n%s", diff)
	}
	if len(report.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(report.Results))
	}
}

func TestRunContinuesPastFailure(t *testing.T) {
	boom := errors.New("boom")
	runner := &fakeRunner{fail: map[string]error{"beta": boom}}
	orch, err := New(
		WithRunner(runner),
		WithOrder("alpha", "beta", "gamma"),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	report := orch.Run(context.Background(), t.TempDir())

	// The failure must not stop the batch.
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, runner.calls); diff != "" {
		t.Fatalf("run order mismatch (-want +got):\n%s", diff)
	}
	if report.OK() {
		t.Fatal("report must not be OK after a failure")
	}

	failed := report.Failed()
	if len(failed) != 1 {
		t.Fatalf("got %d failures, want 1", len(failed))
	}
	if failed[0].Name != "beta" || !errors.Is(failed[0].Err, boom) {
		t.Fatalf("unexpected failure: %+v", failed[0])
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &fakeRunner{}
	orch, err := New(WithRunner(runner), WithOrder("alpha", "beta"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	report := orch.Run(ctx, t.TempDir())
	if len(runner.calls) != 0 {
		t.Fatalf("runner invoked %d times after cancellation", len(runner.calls))
	}
	if len(report.Results) != 2 {
		t.Fatalf("got %d results, want one per ordered figure", len(report.Results))
	}
	for _, res := range report.Results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Fatalf("result %s err = %v, want context.Canceled", res.Name, res.Err)
		}
	}
}

func TestDefaultOrchestratorCoversCatalog(t *testing.T) {
	orch, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(orch.order) != 14 {
		t.Fatalf("default order has %d figures, want 14", len(orch.order))
	}
	if _, ok := orch.runner.(InProcessRunner); !ok {
		t.Fatalf("default runner is %T, want InProcessRunner", orch.runner)
	}
}

func TestReportSummary(t *testing.T) {
	report := Report{
		Results: []Result{
			{Name: "alpha", Paths: []string{"a.pdf", "a.png"}, Duration: 12 * time.Millisecond},
			{Name: "beta", Err: errors.New("draw failed"), Output: "stack trace"},
		},
		Elapsed: 30 * time.Millisecond,
	}

	out := report.Summary()
	for _, want := range []string{"alpha", "beta", "1/2 figures", "draw failed", "stack trace"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

// stubBinary writes an executable shell script standing in for the CLI
// binary a child process run would invoke.
func stubBinary(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "figgen-stub")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write stub binary: %v", err)
	}
	return path
}

func TestExecRunnerCollectsArtifacts(t *testing.T) {
	// The stub receives "generate <name> --dir <dir>" and writes the pair
	// the way the real generate subcommand would.
	runner := ExecRunner{Binary: stubBinary(t, `: > "$4/$2.pdf" && : > "$4/$2.png"`)}
	dir := t.TempDir()

	res := runner.Run(context.Background(), "alpha", dir)
	if !res.OK() {
		t.Fatalf("run failed: %v", res.Err)
	}

	want := []string{
		filepath.Join(dir, "alpha.pdf"),
		filepath.Join(dir, "alpha.png"),
	}
	if diff := cmp.Diff(want, res.Paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestExecRunnerMissingArtifact(t *testing.T) {
	// Zero exit status but no files written: the runner must not report the
	// pair as generated.
	runner := ExecRunner{Binary: stubBinary(t, "exit 0")}

	res := runner.Run(context.Background(), "alpha", t.TempDir())
	if res.OK() {
		t.Fatal("expected failure when the child wrote no artifacts")
	}
	if !strings.Contains(res.Err.Error(), "missing artifact") {
		t.Fatalf("err = %v, want missing artifact", res.Err)
	}
	if len(res.Paths) != 0 {
		t.Fatalf("paths = %v, want none", res.Paths)
	}
}

func TestExecRunnerUnknownBinary(t *testing.T) {
	runner := ExecRunner{Binary: "/nonexistent/figgen-test-binary"}
	res := runner.Run(context.Background(), "alpha", t.TempDir())
	if res.OK() {
		t.Fatal("expected failure for missing binary")
	}
	if res.Name != "alpha" {
		t.Fatalf("result name = %q", res.Name)
	}
}
