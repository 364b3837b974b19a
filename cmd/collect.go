package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/CristiGvl/picoTherm/internal/config"
	"github.com/CristiGvl/picoTherm/internal/sensors"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run one harvest and print the readings",
	Long: "collect runs a single harvest through the compiled-in acquisition\n" +
		"strategy and prints the readings to stdout. A host without any readable\n" +
		"sensors prints an empty report rather than failing.",
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringP("output", "o", "table", "output format (table/json/yaml)")
	collectCmd.Flags().Bool("fans", false, "include fan readings")
	rootCmd.AddCommand(collectCmd)
}

type harvestReport struct {
	Unit    string                `json:"unit" yaml:"unit"`
	Sensors []sensors.TempHarvest `json:"sensors" yaml:"sensors"`
	Fans    []sensors.FanHarvest  `json:"fans,omitempty" yaml:"fans,omitempty"`
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	unit, err := cfg.Sensors.TemperatureType()
	if err != nil {
		return err
	}

	f, err := newFilter(cfg.Sensors)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Sensors.Timeout)
	defer cancel()

	report := harvestReport{Unit: unit.String()}
	report.Sensors, err = sensors.Collect(ctx, unit, f)
	if err != nil {
		return err
	}

	if withFans, _ := cmd.Flags().GetBool("fans"); withFans {
		report.Fans, err = sensors.CollectFans(ctx, f)
		if err != nil {
			return err
		}
	}

	format, _ := cmd.Flags().GetString("output")
	return writeReport(os.Stdout, format, report)
}

// writeReport serializes one harvest report to w in the requested format.
func writeReport(w io.Writer, format string, report harvestReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "SENSOR\tTEMPERATURE (%s)\n", report.Unit)
		for _, h := range report.Sensors {
			if h.Temperature == nil {
				fmt.Fprintf(tw, "%s\t-\n", h.Name)
				continue
			}
			fmt.Fprintf(tw, "%s\t%.2f\n", h.Name, *h.Temperature)
		}
		if len(report.Fans) > 0 {
			fmt.Fprintf(tw, "\nFAN\tRPM\n")
			for _, h := range report.Fans {
				fmt.Fprintf(tw, "%s\t%.0f\n", h.Name, h.RPM)
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q, use one of: [table, json, yaml]", format)
	}
}
