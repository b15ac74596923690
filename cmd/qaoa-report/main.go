// Command qaoa-report aggregates raw QAOA sampling output into a report:
// the best candidate under the energy/occurrence tie-break rule, the full
// frequency distribution, and optionally the full-domain shot histogram.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/qubolab/qaoa-result/infrastructure/plot"
	"github.com/qubolab/qaoa-result/internal/application"
)

func main() {
	var (
		configPath    = flag.String("config", "", "Path to the YAML run configuration")
		showHistogram = flag.Bool("histogram", false, "Print the full-domain shot histogram")
		showTrace     = flag.Bool("trace", false, "Print the optimizer trace summary")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatal("missing required -config flag")
	}

	config, err := application.LoadRunConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load run config: %v", err)
	}

	result, err := application.BuildResult(context.Background(), config)
	if err != nil {
		log.Fatalf("Failed to aggregate result: %v", err)
	}

	fmt.Printf("Best solution: %s\n", result.BestBitVector())
	fmt.Printf("Best energy:   %g\n", result.BestEnergy())
	fmt.Printf("Total shots:   %d\n", result.Freq().TotalShots())
	fmt.Printf("\nFrequency distribution (%d distinct candidates):\n", result.Freq().Len())
	for entry := range result.Freq().All() {
		fmt.Printf("  %s  energy=%-10g shots=%d\n", entry.BitVector, entry.Energy, entry.Occurrences)
	}

	if *showHistogram {
		ax, err := plot.ShotsHistogram(result, nil)
		if err != nil {
			log.Fatalf("Failed to build histogram: %v", err)
		}
		mem := ax.(*plot.MemAxes)
		bars := mem.Bars[0]

		fmt.Printf("\nShot histogram:\n")
		max := 1.0
		for _, h := range bars.Heights {
			if h > max {
				max = h
			}
		}
		for i, label := range bars.Labels {
			width := int(bars.Heights[i] / max * 40)
			fmt.Printf("  %s |%s %d\n", label, strings.Repeat("#", width), int(bars.Heights[i]))
		}
	}

	if *showTrace {
		beta, gamma := result.Parameters()
		fmt.Printf("\nOptimizer: %s (training on %s, evaluation on %s)\n",
			result.Optimizer().Name,
			result.TrainingBackend().Name,
			result.EvaluationBackend().Name)
		fmt.Printf("Circuit depth: %d\n", result.Depth())
		for i := range beta {
			fmt.Printf("  layer %d: beta=%-10g gamma=%g\n", i, beta[i], gamma[i])
		}
		history := result.ExpvalHistory()
		if len(history) > 0 {
			fmt.Printf("Expectation value: %g -> %g over %d iterations\n",
				history[0], history[len(history)-1], len(history))
		}
	}
}
