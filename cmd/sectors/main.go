// sectors is a terminal space shooter: fly through procedurally generated
// sectors, gather energy and science from planets and fight your way past
// enemy ships and bosses.
//
// Usage:
//
//	sectors play              - Play in the terminal
//	sectors simulate          - Run a headless autopilot and print snapshots
//	sectors roster [from] [to] - Show the enemy line-up of a sector range
//	sectors config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible sectors
//	--config <path>      - Load a custom sectors.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-sectors/internal/assets"
	"github.com/vovakirdan/void-sectors/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Void Sectors - a space shooter in your terminal",
	Long: `Void Sectors is a terminal space shooter. Every sector holds planets to
harvest and enemies to clear before you can warp on. Every tenth sector
is guarded by a boss.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless autopilot and print snapshots
  roster    - Show the enemy line-up of a sector range
  config    - Print the effective configuration

Examples:
  sectors play
  sectors play --difficulty hard --mute
  sectors simulate --seed 42 --frames 3600
  sectors roster 1 30
  sectors config --config ./my-sectors.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sectors.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (play defaults to ~/.sectors/sectors.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the process logger. It writes to --log-file when set,
// otherwise to fallback. The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, func() { f.Close() } //nolint:errcheck // Best-effort close on exit
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sectors",
		Level:           level,
	})
	return logger, closeFn, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// loadConfig resolves the configuration and applies the difficulty preset.
func loadConfig() (config.SectorsConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.SectorsConfig{}, fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", flagDifficulty)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SectorsConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// loadAssets resolves the embedded sprite sheet and the asset catalog.
func loadAssets() (*assets.Sheet, *assets.Catalog, error) {
	m, err := assets.DefaultManifest()
	if err != nil {
		return nil, nil, err
	}
	sheet := assets.NewSheet(m)
	cat, err := assets.LoadCatalog(sheet)
	if err != nil {
		return nil, nil, err
	}
	return sheet, cat, nil
}
