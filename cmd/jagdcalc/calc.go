package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amiavia/ostermayer-jagd/internal/ballistics"
	"github.com/amiavia/ostermayer-jagd/internal/config"
	"github.com/amiavia/ostermayer-jagd/internal/logging"
)

func newCalcCmd(logLevel *string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a drop/drift table for a rifle profile session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(configPath, *logLevel)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to session TOML file")
	cmd.MarkFlagRequired("config")
	return cmd
}

func runCalc(configPath, logLevel string) error {
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	session, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Info("session loaded",
		zap.String("session_id", session.ID.String()),
		zap.String("name", session.Name),
		zap.Int("targets", len(session.TargetDistancesM)))

	profile, err := session.Profile.ToProfile()
	if err != nil {
		return err
	}
	env := session.Environment.ToEnvironment()

	logger.Info("resolved drag model", zap.String("model", profile.ResolvedDragModel().String()))

	fmt.Printf("drag model: %s\n", profile.ResolvedDragModel())
	fmt.Printf("%-10s %10s %10s %10s %10s %8s\n", "range_m", "drop_cm", "drift_cm", "time_s", "vel_ms", "mach")
	for _, d := range session.TargetDistancesM {
		res, err := ballistics.CalculateTrajectory(profile, d, env)
		if err != nil {
			logger.Error("calculation failed", zap.Float64("range_m", d), zap.Error(err))
			return err
		}
		fmt.Printf("%-10.0f %10.1f %10.1f %10.3f %10.0f %8.2f\n",
			d, res.DropCM, res.DriftCM, res.TimeS, res.VelocityMS, res.MachAtTarget)
	}
	return nil
}
