package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-sectors/internal/games/sectors"
)

var rosterCmd = &cobra.Command{
	Use:   "roster [from] [to]",
	Short: "Show the enemy line-up of a sector range",
	Long: `Shows the ships every sector in a range spawns, with their speed,
energy and abilities. Line-ups do not depend on the seed.

Examples:
  sectors roster          # sectors 1 to 20
  sectors roster 10       # sector 10 only
  sectors roster 1 50 --difficulty hard`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRoster,
}

func runRoster(cmd *cobra.Command, args []string) error {
	from, to := 1, 20
	if len(args) > 0 {
		n, err := parseSector(args[0])
		if err != nil {
			return err
		}
		from, to = n, n
	}
	if len(args) > 1 {
		n, err := parseSector(args[1])
		if err != nil {
			return err
		}
		to = n
	}
	if to < from {
		return fmt.Errorf("empty range %d..%d", from, to)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, cat, err := loadAssets()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-6s  %-6s  %6s  %6s  %s\n", "Sector", "Kind", "Speed", "Energy", "Abilities")
	fmt.Fprintf(out, "  %-6s  %-6s  %6s  %6s  %s\n", "------", "----", "-----", "------", "---------")

	for sector := from; sector <= to; sector++ {
		label := strconv.Itoa(sector)
		if sectors.IsBossSector(sector, cfg) {
			label += "*"
		}
		for _, s := range sectors.Roster(sector, cfg, cat, 0) {
			names := make([]string, 0, sectors.NumSlots)
			for _, a := range s.Abilities {
				names = append(names, a.Name)
			}
			fmt.Fprintf(out, "  %-6s  %-6s  %6.1f  %6d  %s\n", label, s.Kind, s.MaxSpeed, s.MaxEnergy, strings.Join(names, ", "))
			label = ""
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "* boss sector")
	return nil
}

func parseSector(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid sector %q: expected a positive number", s)
	}
	return n, nil
}
