package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amiavia/ostermayer-jagd/internal/ballistics"
)

func newPressureCmd() *cobra.Command {
	var altitudeM float64
	var seaLevelHPA float64

	cmd := &cobra.Command{
		Use:   "pressure",
		Short: "Compute ISA-standard pressure at an altitude",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ballistics.PressureFromAltitude(altitudeM, seaLevelHPA)
			fmt.Printf("%.2f hPa\n", p)
			return nil
		},
	}
	cmd.Flags().Float64Var(&altitudeM, "altitude", 0, "altitude in meters")
	cmd.Flags().Float64Var(&seaLevelHPA, "sea-level-hpa", 1013.25, "sea-level pressure in hPa")
	return cmd
}
