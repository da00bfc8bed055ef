package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronokit/chronokit/pkg/timezone"
)

var (
	zonesWithDST   bool
	zonesNoOffset  bool
	zonesReference bool
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Inspect the friendly timezone catalog",
}

var zonesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all friendly zone names, sorted by location",
	RunE:  runZonesList,
}

var zonesFindCmd = &cobra.Command{
	Use:   "find NAME",
	Short: "Look up a zone by its friendly name",
	Args:  cobra.ExactArgs(1),
	RunE:  runZonesFind,
}

var zonesParamCmd = &cobra.Command{
	Use:   "param DISPLAY",
	Short: "Turn a display name into a URL-safe slug",
	Args:  cobra.ExactArgs(1),
	RunE:  runZonesParam,
}

var zonesUnparamCmd = &cobra.Command{
	Use:   "unparam SLUG",
	Short: "Resolve a slug back to its zone",
	Args:  cobra.ExactArgs(1),
	RunE:  runZonesUnparam,
}

func init() {
	zonesListCmd.Flags().BoolVar(&zonesWithDST, "dst", false, "include DST-qualified variants")
	zonesParamCmd.Flags().BoolVar(&zonesNoOffset, "no-offset", false, "omit the UTC offset prefix")
	zonesFindCmd.Flags().BoolVar(&zonesReference, "reference", false, "print the IANA reference instead of the display name")

	zonesCmd.AddCommand(zonesListCmd, zonesFindCmd, zonesParamCmd, zonesUnparamCmd)
	rootCmd.AddCommand(zonesCmd)
}

func runZonesList(cmd *cobra.Command, args []string) error {
	names := resolver.ListAll(zonesWithDST, cfg.DSTLabel)
	log.Debug("Listing zones", "count", len(names), "dst", zonesWithDST)
	cmd.Println(strings.Join(names, "\n"))
	return nil
}

func runZonesFind(cmd *cobra.Command, args []string) error {
	zone, ok := resolver.Find(args[0], cfg.DSTLabel)
	if !ok {
		return fmt.Errorf("no zone matches %q", args[0])
	}
	if zonesReference {
		cmd.Println(zone.Reference())
		return nil
	}
	cmd.Println(zone.String())
	return nil
}

func runZonesParam(cmd *cobra.Command, args []string) error {
	cmd.Println(timezone.ParameterizeZone(args[0], !zonesNoOffset))
	return nil
}

func runZonesUnparam(cmd *cobra.Command, args []string) error {
	zone, name, ok := resolver.Unparameterize(args[0], cfg.DSTLabel)
	if !ok {
		return fmt.Errorf("no zone matches slug %q", args[0])
	}
	cmd.Printf("%s\t%s\n", zone.Reference(), name)
	return nil
}
