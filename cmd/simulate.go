package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/routesim/vrptw/config"
	"github.com/routesim/vrptw/core/instance"
	"github.com/routesim/vrptw/infra/logger"
	"github.com/routesim/vrptw/infra/metrics"
	"github.com/routesim/vrptw/simulator"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Roll out the greedy baseline over a generated batch",
	RunE:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New("simulate")

	gen, err := instance.New(cfg.Generator)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	sink, err := metrics.NewSink(cfg.Metrics)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if cfg.Metrics.PromAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.Metrics.PromAddr); err != nil {
				log.Errorf("prom server: %v", err)
			}
		}()
	}

	batch := gen.Batch()
	log.Infof("rolling out %d samples of %d customers", len(batch), cfg.Generator.NumNodes)

	runner := simulator.NewRunner(cfg.Simulation, nil, gen.ServiceTime(), log, sink)
	results := runner.Run(batch)

	costs := make([]float64, 0, len(results))
	feasible := 0
	for _, res := range results {
		costs = append(costs, res.Cost)
		if res.Feasible {
			feasible++
		}
	}
	log.Infof("done: %d/%d feasible, mean tour cost %.4f", feasible, len(results), stat.Mean(costs, nil))
	return nil
}
