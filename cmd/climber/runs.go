package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/generator"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "Show stored simulation runs",
	Long: `Display the most recent simulation runs saved with 'climber simulate --save',
or the details of a single run.

Examples:
  climber runs
  climber runs --limit 50
  climber runs 12
  climber runs --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every stored run")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	if len(args) == 1 {
		var id int64
		if _, err := fmt.Sscan(args[0], &id); err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}
		return showRun(out, store, id)
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Simulation Runs")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'climber simulate --save' to record some!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-5s  %-20s  %-8s  %-8s  %-8s  %s\n", "ID", "Seed", "Rows", "Hazards", "MaxDiff", "Date")
	fmt.Fprintf(out, "  %-5s  %-20s  %-8s  %-8s  %-8s  %s\n", "--", "----", "----", "-------", "-------", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-5d  %-20d  %-8d  %-8d  %-8.2f  %s\n",
			r.ID, r.Seed, r.RowsGenerated, r.Hazards, r.MaxDifficulty, dateStr)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Total: %d runs, %d rows, %.1f rows/run, %d gap violations\n",
			stats.Runs, stats.TotalRows, stats.AvgRows, stats.GapViolations)
	}

	totals, err := store.PatternTotals()
	if err == nil && len(totals) > 0 {
		parts := make([]string, len(totals))
		for i, t := range totals {
			parts[i] = fmt.Sprintf("%s %d", t.Pattern, t.Rows)
		}
		fmt.Fprintf(out, "Patterns: %s\n", strings.Join(parts, ", "))
	}
	return nil
}

func showRun(out io.Writer, store *storage.Store, id int64) error {
	run, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with id %d", id)
	}

	fmt.Fprintf(out, "Run %d  (%s)\n\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "  Seed:               %d\n", run.Seed)
	fmt.Fprintf(out, "  Ticks:              %d\n", run.Ticks)
	fmt.Fprintf(out, "  Final height:       %.2f\n", run.FinalFrontier)
	fmt.Fprintf(out, "  Rows generated:     %d\n", run.RowsGenerated)
	fmt.Fprintf(out, "  Rows retired:       %d\n", run.RowsRetired)
	fmt.Fprintf(out, "  Obstacles retired:  %d\n", run.ObstaclesRetired)
	fmt.Fprintf(out, "  Hazards:            %d\n", run.Hazards)
	fmt.Fprintf(out, "  Gap fallbacks:      %d\n", run.Fallbacks)
	fmt.Fprintf(out, "  Peak live:          %d\n", run.PeakLiveObstacles)
	fmt.Fprintf(out, "  Max difficulty:     %.2f\n", run.MaxDifficulty)
	fmt.Fprintf(out, "  Gap violations:     %d\n", run.GapViolations)

	fmt.Fprintln(out, "\n  Patterns:")
	for _, name := range patternOrder(run.Patterns) {
		label := name
		if _, ok := generator.ParsePattern(name); !ok {
			label += " (unknown)"
		}
		fmt.Fprintf(out, "    %-22s %d\n", label, run.Patterns[name])
	}
	return nil
}

// patternOrder lists stored pattern names in selector order. Names this
// build does not know sort last, alphabetically.
func patternOrder(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ki, okI := generator.ParsePattern(names[i])
		kj, okJ := generator.ParsePattern(names[j])
		switch {
		case okI && okJ:
			return ki < kj
		case okI != okJ:
			return okI
		default:
			return names[i] < names[j]
		}
	})
	return names
}
