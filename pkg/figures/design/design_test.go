package design_test

import (
	"testing"

	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/figures/design"
	"github.com/evmauth/figgen/pkg/testsupport"
)

func TestDesignFiguresDraw(t *testing.T) {
	cases := []struct {
		name string
		fig  figure.Figure
	}{
		{"seven_primitives_wheel", design.NewPrimitivesWheel()},
		{"contract_hierarchy", design.NewContractHierarchy()},
		{"multi_currency_pricing", design.NewMultiCurrency()},
		{"token_lifecycle", design.NewTokenLifecycle()},
		{"ai_agent_workflow", design.NewAgentWorkflow()},
		{"composability_stack", design.NewComposabilityStack()},
		{"gas_optimization_tradeoffs", design.NewGasTradeoffs()},
		{"paradigm_shift", design.NewParadigmShift()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fig.Name(); got != tc.name {
				t.Fatalf("name = %q, want %q", got, tc.name)
			}
			if got := tc.fig.Category(); got != figure.CategoryDesign {
				t.Fatalf("category = %q, want %q", got, figure.CategoryDesign)
			}
			testsupport.MustDraw(t, tc.fig)
		})
	}
}

func TestParadigmShiftRenders(t *testing.T) {
	paths := testsupport.RenderPair(t, design.NewParadigmShift())
	if len(paths) != 2 {
		t.Fatalf("got %d artifacts, want pdf and png", len(paths))
	}
}
