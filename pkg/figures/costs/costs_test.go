package costs_test

import (
	"testing"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/figures/costs"
	"github.com/evmauth/figgen/pkg/testsupport"
)

func TestCostFiguresDraw(t *testing.T) {
	cases := []struct {
		name string
		fig  figure.Figure
	}{
		{"network_cost_comparison", costs.NewNetworkComparison()},
		{"infrastructure_cost_pie", costs.NewInfrastructurePie()},
		{"tco_line_chart", costs.NewTCOCurve()},
		{"deployment_stacked_bar", costs.NewDeploymentBreakdown()},
		{"operation_costs_radar", costs.NewOperationRadar()},
		{"deployment_waterfall", costs.NewDeploymentWaterfall()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fig.Name(); got != tc.name {
				t.Fatalf("name = %q, want %q", got, tc.name)
			}
			if got := tc.fig.Category(); got != figure.CategoryCost {
				t.Fatalf("category = %q, want %q", got, figure.CategoryCost)
			}
			testsupport.MustDraw(t, tc.fig)
		})
	}
}

func TestDeploymentWaterfallRenders(t *testing.T) {
	paths := testsupport.RenderPair(t, costs.NewDeploymentWaterfall())
	if len(paths) != 2 {
		t.Fatalf("got %d artifacts, want pdf and png", len(paths))
	}
}
