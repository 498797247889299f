package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/void-sectors/internal/config"
	"github.com/vovakirdan/void-sectors/internal/core"
	"github.com/vovakirdan/void-sectors/internal/games/sectors"
)

var (
	flagFrames int
	flagEvery  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot and print snapshots",
	Long: `Run the simulation without a terminal UI. An autopilot starts a run,
flies toward random points, fires whenever it can afford to, heals when
low and harvests every planet it touches.

Snapshots are printed as YAML every --every frames and once at the end.
The same seed always produces the same output.

Examples:
  sectors simulate --seed 42
  sectors simulate --seed 7 --frames 18000 --every 600
  sectors simulate --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 0, "Print a snapshot every N frames (0 = only at the end)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, cat, err := loadAssets()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = seed

	game := sectors.New(cfg, cat, sectors.WithLogger(logger))
	game.Reset(rt)
	pilot := newAutopilot(seed, cfg)

	logger.Info("simulating", "seed", seed, "frames", flagFrames)
	out := cmd.OutOrStdout()
	enc := yaml.NewEncoder(out)
	defer enc.Close() //nolint:errcheck // Encoder only buffers document markers

	for frame := 1; frame <= flagFrames; frame++ {
		game.Step(pilot.next(game))
		if flagEvery > 0 && frame%flagEvery == 0 && frame != flagFrames {
			if err := enc.Encode(game.Snapshot()); err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}
		}
	}
	if err := enc.Encode(game.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// autopilot produces input frames from the game snapshot.
type autopilot struct {
	rng    *rand.Rand
	cfg    config.SectorsConfig
	frames int
}

func newAutopilot(seed int64, cfg config.SectorsConfig) *autopilot {
	// Offset the seed so the pilot does not mirror the sector generator.
	return &autopilot{rng: rand.New(rand.NewSource(seed + 1)), cfg: cfg}
}

func (a *autopilot) next(g *sectors.Game) core.InputFrame {
	a.frames++
	in := core.NewInputFrame()
	snap := g.Snapshot()
	pf := a.cfg.Playfield

	switch g.Scene() {
	case sectors.SceneStart, sectors.SceneGameOver:
		in.Set(core.ActionConfirm)
		return in

	case sectors.SceneDiscovery:
		// Energy, then science, then leave. One choice per frame.
		switch a.frames % 3 {
		case 0:
			in.Set(core.ActionAbility1)
		case 1:
			in.Set(core.ActionAbility2)
		default:
			in.Set(core.ActionAbility3)
		}
		return in
	}

	if snap.NearPlanet {
		in.Set(core.ActionInteract)
	}
	if snap.Energy < a.cfg.Player.StartEnergy {
		in.Set(core.ActionHeal)
	}
	if a.frames%20 == 0 && snap.Enemies > 0 {
		in.Set([...]core.Action{core.ActionAbility1, core.ActionAbility2, core.ActionAbility3}[a.rng.Intn(3)])
	}

	if a.frames%90 == 1 {
		x := a.rng.Float64() * pf.Width
		if snap.Enemies == 0 {
			// Head for the exit once the sector is clear.
			x = pf.Width
		}
		in.Click(x, a.rng.Float64()*pf.Height)
	}
	return in
}
