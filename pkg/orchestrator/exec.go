package orchestrator

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ExecRunner generates each figure in a fresh child process by re-invoking
// the CLI binary's generate subcommand. A crash in one figure (a panic, an
// OOM kill) then cannot take the rest of the batch down with it.
type ExecRunner struct {
	// Binary is the executable to invoke; empty means the current binary.
	Binary string
	// ExtraArgs are appended after "generate <name> --dir <dir>".
	ExtraArgs []string
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, name, dir string) Result {
	start := time.Now()
	res := Result{Name: name}

	binary := r.Binary
	if binary == "" {
		exe, err := os.Executable()
		if err != nil {
			res.Err = fmt.Errorf("orchestrator: resolve executable: %w", err)
			res.Duration = time.Since(start)
			return res
		}
		binary = exe
	}

	args := append([]string{"generate", name, "--dir", dir}, r.ExtraArgs...)
	cmd := exec.CommandContext(ctx, binary, args...)

	out, err := cmd.CombinedOutput()
	res.Output = strings.TrimSpace(string(out))
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("orchestrator: %s: %w", name, err)
		return res
	}

	// A zero exit with a missing artifact still counts as a failure; the
	// report only lists files that exist.
	paths := artifactPaths(dir, name)
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			res.Err = fmt.Errorf("orchestrator: %s: missing artifact: %w", name, err)
			return res
		}
	}
	res.Paths = paths
	return res
}

// artifactPaths mirrors the renderer's default output naming.
func artifactPaths(dir, name string) []string {
	return []string{
		filepath.Join(dir, name+".pdf"),
		filepath.Join(dir, name+".png"),
	}
}
