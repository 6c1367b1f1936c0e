package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/evmauth/figgen"
	"github.com/evmauth/figgen/internal/logging"
	"github.com/evmauth/figgen/pkg/figure"
	"github.com/evmauth/figgen/pkg/figures"
	"github.com/evmauth/figgen/pkg/orchestrator"
	"github.com/evmauth/figgen/pkg/render"
)

var (
	// Global flags
	outputDir string
	verbose   bool
	dpi       int
	inProcess bool

	// Logger
	logger *zap.Logger
)

// rootCmd generates the full figure set when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "figgen",
	Short: "figgen - EVMAuth paper figure generator",
	Long: `figgen regenerates the figure set for the EVMAuth paper: cost and
performance charts plus architecture and design diagrams, each written as a
PDF/PNG pair.

Every figure embeds its own dataset, so generation needs no inputs and the
same binary always produces the same artwork.

Run without arguments to generate all figures.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAll(cmd)
	},
}

// listCmd prints the catalog.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the figure catalog in generation order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, fig := range figures.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-7s %s\n", fig.Name(), fig.Category(), fig.Title())
		}
		return nil
	},
}

// generateCmd renders a single figure.
var generateCmd = &cobra.Command{
	Use:   "generate <figure>...",
	Short: "Generate the named figures as PDF/PNG pairs",
	Long: `Renders the named figure into the output directory. Figure names are
listed by "figgen list".

Example:
  figgen generate network_cost_comparison --dir figures`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			paths, err := figgen.Generate(cmd.Context(), name, outputDir,
				render.WithDPI(dpi))
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), "generated:", path)
			}
		}
		return nil
	},
}

// allCmd generates the complete catalog.
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every figure, continuing past failures",
	Long: `Generates the full catalog in order. Each figure runs in its own child
process so one crash cannot stop the batch; failures are collected and the
command exits non-zero if any figure failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAll(cmd)
	},
}

func runAll(cmd *cobra.Command) error {
	options := []orchestrator.Option{orchestrator.WithLogger(logger)}
	if inProcess {
		reg := figure.NewRegistry()
		if err := figures.Register(reg); err != nil {
			return err
		}
		options = append(options, orchestrator.WithRunner(orchestrator.InProcessRunner{
			Registry: reg,
			Renderer: render.New(render.WithDPI(dpi)),
		}))
	} else {
		runner := orchestrator.ExecRunner{}
		if verbose {
			runner.ExtraArgs = append(runner.ExtraArgs, "--verbose")
		}
		if dpi != 0 {
			runner.ExtraArgs = append(runner.ExtraArgs, "--dpi", fmt.Sprint(dpi))
		}
		options = append(options, orchestrator.WithRunner(runner))
	}

	orch, err := orchestrator.New(options...)
	if err != nil {
		return err
	}

	report := orch.Run(cmd.Context(), outputDir)
	fmt.Fprint(cmd.OutOrStdout(), report.Summary())

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d figures failed", len(failed), len(report.Results))
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputDir, "dir", ".", "output directory for generated artifacts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&dpi, "dpi", 300, "raster resolution for PNG output")
	rootCmd.PersistentFlags().BoolVar(&inProcess, "in-process", false, "render all figures inside this process instead of forking")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(allCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
