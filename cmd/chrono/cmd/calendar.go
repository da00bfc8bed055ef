package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chronokit/chronokit/pkg/calendar"
)

var (
	shortNames bool
	yearsSpan  int
	alsoFuture bool
)

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List month choices in the configured locale",
	RunE:  runMonths,
}

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List day choices in the configured locale, Monday first",
	RunE:  runDays,
}

var yearsCmd = &cobra.Command{
	Use:   "years [REFERENCE]",
	Short: "List a span of years around a reference year (default: current year)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runYears,
}

func init() {
	monthsCmd.Flags().BoolVar(&shortNames, "short", false, "use abbreviated names")
	daysCmd.Flags().BoolVar(&shortNames, "short", false, "use abbreviated names")
	yearsCmd.Flags().IntVar(&yearsSpan, "span", 10, "how many years back from the reference")
	yearsCmd.Flags().BoolVar(&alsoFuture, "future", false, "mirror the span forward as well")

	rootCmd.AddCommand(monthsCmd, daysCmd, yearsCmd)
}

func runMonths(cmd *cobra.Command, args []string) error {
	printChoices(cmd, cal.Months(shortNames))
	return nil
}

func runDays(cmd *cobra.Command, args []string) error {
	printChoices(cmd, cal.Days(shortNames))
	return nil
}

func runYears(cmd *cobra.Command, args []string) error {
	ref := calendar.Now
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		ref = calendar.ReferenceYear(y)
	}
	for _, y := range cal.Years(yearsSpan, alsoFuture, ref) {
		cmd.Println(y)
	}
	return nil
}

func printChoices(cmd *cobra.Command, choices []calendar.Choice) {
	for _, c := range choices {
		cmd.Printf("%s\t%s\n", c.Value, c.Label)
	}
}
