package figgen_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evmauth/figgen"
	"github.com/evmauth/figgen/pkg/figures"
	"github.com/evmauth/figgen/pkg/orchestrator"
	"github.com/evmauth/figgen/pkg/render"
)

func TestDefaultRegistry(t *testing.T) {
	reg, err := figgen.DefaultRegistry()
	require.NoError(t, err)
	require.Equal(t, len(figures.Order), reg.Len())
}

func TestGenerateUnknownFigure(t *testing.T) {
	_, err := figgen.Generate(context.Background(), "no_such_figure", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestGenerateWritesPair(t *testing.T) {
	dir := t.TempDir()

	paths, err := figgen.Generate(context.Background(), "network_cost_comparison", dir,
		render.WithDPI(72))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.NotZero(t, info.Size(), "artifact %s is empty", path)
	}
}

func TestGenerateAll(t *testing.T) {
	if testing.Short() {
		t.Skip("rendering the full catalog is slow")
	}

	dir := t.TempDir()
	reg, err := figgen.DefaultRegistry()
	require.NoError(t, err)

	report, err := figgen.GenerateAll(context.Background(), dir,
		orchestrator.WithRunner(orchestrator.InProcessRunner{
			Registry: reg,
			Renderer: render.New(render.WithDPI(72)),
		}))
	require.NoError(t, err)
	require.True(t, report.OK(), "failures: %+v", report.Failed())
	require.Len(t, report.Results, len(figures.Order))

	for _, name := range figures.Order {
		for _, ext := range []string{".pdf", ".png"} {
			_, err := os.Stat(filepath.Join(dir, name+ext))
			require.NoError(t, err, "missing artifact for %s%s", name, ext)
		}
	}
}
