// Package figures assembles the complete catalog of paper figures and the
// canonical generation order.
package figures

import (
	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/figures/costs"
	"github.com/evmauth/figgen/pkg/figures/design"
)

// Order is the canonical generation sequence: the six cost figures first,
// then the eight design figures. Reports and batch runs follow this order.
var Order = []string{
	"network_cost_comparison",
	"infrastructure_cost_pie",
	"tco_line_chart",
	"deployment_stacked_bar",
	"operation_costs_radar",
	"deployment_waterfall",
	"seven_primitives_wheel",
	"contract_hierarchy",
	"multi_currency_pricing",
	"token_lifecycle",
	"ai_agent_workflow",
	"composability_stack",
	"gas_optimization_tradeoffs",
	"paradigm_shift",
}

// All returns every catalog figure in generation order.
func All() []figure.Figure {
	return []figure.Figure{
		costs.NewNetworkComparison(),
		costs.NewInfrastructurePie(),
		costs.NewTCOCurve(),
		costs.NewDeploymentBreakdown(),
		costs.NewOperationRadar(),
		costs.NewDeploymentWaterfall(),
		design.NewPrimitivesWheel(),
		design.NewContractHierarchy(),
		design.NewMultiCurrency(),
		design.NewTokenLifecycle(),
		design.NewAgentWorkflow(),
		design.NewComposabilityStack(),
		design.NewGasTradeoffs(),
		design.NewParadigmShift(),
	}
}

// Register adds the full catalog to a registry.
func Register(reg *figure.Registry) error {
	for _, fig := range All() {
		if err := reg.Register(fig); err != nil {
			return err
		}
	}
	return nil
}
