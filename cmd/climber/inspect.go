package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/generator"
	"github.com/vovakirdan/tui-climber/internal/render"
	"github.com/vovakirdan/tui-climber/internal/sim"
)

var (
	flagInspectAt    float64
	flagInspectPlain bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Draw a window of generated rows",
	Long: `Climb headlessly up to the given height, then draw the live rows as
they stand at that tick: one line per row, highest on top.

Examples:
  climber inspect
  climber inspect --at 250 --seed 42
  climber inspect --plain > rows.txt`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Float64Var(&flagInspectAt, "at", 0, "Height the agent climbs to before drawing")
	inspectCmd.Flags().BoolVar(&flagInspectPlain, "plain", false, "Print without colors")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagInspectAt < 0 {
		return fmt.Errorf("--at must not be negative, got %v", flagInspectAt)
	}
	if cfg.Simulation.ClimbSpeed <= 0 {
		return fmt.Errorf("inspect needs a positive climb_speed")
	}

	rc := runtimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	seed := rc.ResolveSeed()

	s := sim.New(cfg, seed, logger)
	s.Step()
	for s.Frontier() < flagInspectAt {
		s.Step()
	}

	engine := s.Engine()
	// Leave room for the header lines and legend
	screen := core.NewScreen(rc.ScreenW, max(rc.ScreenH-4, 1))
	render.Rasterize(screen, cfg.Generator, engine.Rows(), engine.Snapshot())

	out := cmd.OutOrStdout()
	state := engine.State()
	fmt.Fprintf(out, "seed %d  agent at %.2f  %d rows  %d obstacles (%d hazards)\n",
		seed, s.Frontier(), engine.RowCount(), engine.ObstacleCount(), engine.HazardCount())
	fmt.Fprintf(out, "generated to %.2f  difficulty %.2f  top %s\n",
		state.LastGeneratedY, state.CurrentDifficulty, formatHighest(engine))
	if flagInspectPlain {
		fmt.Fprintln(out, screen.String())
		return nil
	}
	fmt.Fprintln(out, render.RenderScreen(screen))
	fmt.Fprintln(out, render.Legend())
	return nil
}

// formatHighest reports the top edge of the highest live obstacle, which is
// where side walls would have to reach.
func formatHighest(engine *generator.Engine) string {
	top, ok := engine.Highest()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f", top)
}
