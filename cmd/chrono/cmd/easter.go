package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var easterLocalized bool

var easterCmd = &cobra.Command{
	Use:   "easter [YEAR]",
	Short: "Print the date of Easter Sunday for a year (default: current year)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEaster,
}

func init() {
	easterCmd.Flags().BoolVar(&easterLocalized, "localized", false, "print day and month names in the configured locale")
	rootCmd.AddCommand(easterCmd)
}

func runEaster(cmd *cobra.Command, args []string) error {
	year := 0
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", args[0], err)
		}
		year = y
	}

	easter := cal.Easter(year)
	if easterLocalized {
		cmd.Println(cal.Lstrftime(easter, "%A, %d %B %Y"))
		return nil
	}
	cmd.Println(cal.Strftime(easter, "%F"))
	return nil
}
