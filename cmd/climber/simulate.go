package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/sim"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagRuns  int
	flagTicks int
	flagSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless climbs and report statistics",
	Long: `Run one independent engine per seed in parallel. A synthetic agent
climbs at climb_speed per tick; every tick generates ahead and retires
behind. Each row is checked for a jumpable gap.

Seeds are consecutive, starting from --seed.

Examples:
  climber simulate
  climber simulate --runs 16 --ticks 10000 --seed 1
  climber simulate --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 4, "Number of seeds to simulate")
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks per run (0 = use config)")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Store run summaries in the history database")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagTicks > 0 {
		cfg.Simulation.Ticks = flagTicks
	}
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}

	base := runtimeConfig().ResolveSeed()
	seeds := make([]int64, flagRuns)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "runs", flagRuns, "ticks", cfg.Simulation.Ticks, "seed", base)
	results, err := sim.RunBatch(ctx, cfg, seeds, logger)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	printStats(out, results)

	if flagSave {
		store, err := storage.Open(flagDBPath, storage.WithLogger(logger))
		if err != nil {
			return err
		}
		defer store.Close()

		for _, s := range results {
			id, err := store.SaveRun(s.Record())
			if err != nil {
				return err
			}
			logger.Debug("run saved", "id", id, "seed", s.Seed)
		}
		fmt.Fprintf(out, "\nSaved %d runs to %s\n", len(results), flagDBPath)
	}

	for _, s := range results {
		if s.GapViolations > 0 {
			return fmt.Errorf("seed %d produced %d rows without a jumpable gap", s.Seed, s.GapViolations)
		}
	}
	return nil
}

func printStats(dst io.Writer, results []sim.Stats) {
	w := tabwriter.NewWriter(dst, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tHEIGHT\tROWS\tRETIRED\tHAZARDS\tFALLBACKS\tPEAK LIVE\tMAX DIFF\tVIOLATIONS")
	for _, s := range results {
		fmt.Fprintf(w, "%d\t%.1f\t%d\t%d\t%d\t%d\t%d\t%.2f\t%d\n",
			s.Seed, s.FinalFrontier, s.RowsGenerated, s.RowsRetired, s.Hazards,
			s.Fallbacks, s.PeakLiveObstacles, s.MaxDifficulty, s.GapViolations)
	}
	w.Flush()
}
