package cmd

import (
	"github.com/spf13/cobra"
)

var parseQuiet bool

var parseCmd = &cobra.Command{
	Use:   "parse VALUE FORMAT",
	Short: "Validate a date string against a strftime format or a named format key",
	Long: `Parse a date string with a strftime format. FORMAT is resolved through the
format table loaded from CHRONO_FORMATS_FILE first, so named keys like
"date_only" work alongside literal formats like "%F".`,
	Args: cobra.ExactArgs(2),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseQuiet, "quiet", "q", false, "no output, just the exit code")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	parsed, err := formats.Parse(args[0], args[1])
	if err != nil {
		return err
	}
	if !parseQuiet {
		cmd.Println(parsed.Format("2006-01-02T15:04:05Z07:00"))
	}
	return nil
}
