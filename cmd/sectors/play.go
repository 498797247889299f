package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/void-sectors/internal/audio"
	"github.com/vovakirdan/void-sectors/internal/core"
	"github.com/vovakirdan/void-sectors/internal/games/sectors"
	"github.com/vovakirdan/void-sectors/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Mouse click  - Fly to the clicked point
  1 / 2 / 3    - Fire missile, torpedo, nova (costs science)
  4 / H        - Heal: trade 500 science for 500 energy
  E            - Warp to a nearby planet
  Enter        - Start, confirm, leave a planet
  P / Esc      - Pause
  Ctrl+S       - Save a screenshot to ~/.sectors/screenshots
  ?            - Toggle full help
  Q / Ctrl+C   - Quit

On a planet:
  1 - Gather energy
  2 - Gather science
  3 - Continue

Examples:
  sectors play
  sectors play --difficulty easy
  sectors play --mute --seed 42
  sectors play --config ./my-sectors.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to Bubble Tea, so logs go to a file.
	if flagLogFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			flagLogFile = filepath.Join(home, ".sectors", "sectors.log")
		}
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sheet, cat, err := loadAssets()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sound, closeAudio := audio.Open(sheet, flagMute, logger)
	defer closeAudio()

	game := sectors.New(cfg, cat,
		sectors.WithAudio(sound),
		sectors.WithLogger(logger),
	)
	surface := tui.NewSurface(sheet, cfg.Playfield.Width, cfg.Playfield.Height, cfg.Planets.Scale)

	logger.Info("starting", "fps", rt.TickRate, "seed", rt.Seed, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, surface, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
