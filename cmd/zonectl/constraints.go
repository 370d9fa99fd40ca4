package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mocap-zone-configurator/internal/zone"
)

var constraintsStep float64

var constraintsCmd = &cobra.Command{
	Use:   "constraints",
	Short: "Print the zone limits and the length cap per distance",
	RunE: func(cmd *cobra.Command, args []string) error {
		if constraintsStep <= 0 {
			return fmt.Errorf("--step must be positive")
		}
		fmt.Printf("Width:    %.1f – %.1f m\n", zone.WidthMin, zone.WidthMax)
		fmt.Printf("Height:   %.1f – %.1f m\n", zone.HeightMin, zone.HeightMax)
		fmt.Printf("Distance: %.1f – %.1f m\n", zone.DistanceMin, zone.DistanceMax)
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "distance\tmax length\t")
		// Step by index so rounding never skips the last distance.
		n := int((zone.DistanceMax-zone.DistanceMin)/constraintsStep + 1e-9)
		for i := 0; i <= n; i++ {
			d := zone.DistanceMin + float64(i)*constraintsStep
			fmt.Fprintf(w, "%.2f\t%.2f\t\n", d, zone.MaxLength(d))
		}
		return w.Flush()
	},
}

func init() {
	constraintsCmd.Flags().Float64Var(&constraintsStep, "step", 0.25, "Distance step in meters")
}
