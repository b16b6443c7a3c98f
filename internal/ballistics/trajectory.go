package ballistics

import "fmt"

// ISA default environment constants used by NewStandardEnvironment.
const (
	isaDefaultTempC     = 15.0
	isaDefaultHumidity  = 0.5
	isaDefaultAltitude  = 0.0
)

// EnvironmentOption overrides a scalar field of a standard ISA environment.
type EnvironmentOption func(*Environment)

// WithTemperatureC overrides the temperature.
func WithTemperatureC(c float64) EnvironmentOption { return func(e *Environment) { e.TemperatureC = c } }

// WithPressureHPA overrides the pressure.
func WithPressureHPA(p float64) EnvironmentOption { return func(e *Environment) { e.PressureHPA = p } }

// WithRelHumidity overrides the relative humidity fraction.
func WithRelHumidity(rh float64) EnvironmentOption { return func(e *Environment) { e.RelHumidity = rh } }

// WithAltitudeM overrides the altitude.
func WithAltitudeM(m float64) EnvironmentOption { return func(e *Environment) { e.AltitudeM = m } }

// NewStandardEnvironment constructs an Environment from ISA defaults (15
// degC, 1013.25 hPa, 0.5 relative humidity, 0 m altitude) plus the given
// wind, with any scalar field overridable via opts, per spec.md §6 op 3.
func NewStandardEnvironment(windSpeedMS, windAngleDeg float64, opts ...EnvironmentOption) Environment {
	env := Environment{
		TemperatureC: isaDefaultTempC,
		PressureHPA:  isaSeaLevelPressure,
		RelHumidity:  isaDefaultHumidity,
		AltitudeM:    isaDefaultAltitude,
		WindSpeedMS:  windSpeedMS,
		WindAngleDeg: windAngleDeg,
	}
	for _, opt := range opts {
		opt(&env)
	}
	return env
}

// CalculateTrajectory is the primary entry point: given a rifle profile, a
// downrange target distance and atmospheric conditions, it returns the
// bullet's drop, drift, time of flight, remaining velocity, kinetic energy
// and Mach number at the target, per spec.md §6 op 1.
//
// Precondition: targetDistanceM > 0. The core does not validate physical
// plausibility of env beyond that; see spec.md §7.
func CalculateTrajectory(profile RifleProfile, targetDistanceM float64, env Environment) (Result, error) {
	raw, err := CalculateTrajectoryRaw(profile, targetDistanceM, env)
	if err != nil {
		return Result{}, err
	}
	return raw.round(), nil
}

// CalculateTrajectoryRaw is CalculateTrajectory without the boundary
// rounding, for collaborators that need to chain further computation. Per
// spec.md §9 Open Questions, this is offered but not contractually
// required by the public interface.
func CalculateTrajectoryRaw(profile RifleProfile, targetDistanceM float64, env Environment) (RawResult, error) {
	if targetDistanceM <= 0 {
		return RawResult{}, fmt.Errorf("ballistics: target distance must be positive, got %g", targetDistanceM)
	}

	atm := resolveAtmosphere(env)
	theta := solveZeroAngle(profile, atm)
	model := profile.dragModel()
	sightHeightM := profile.SightHeightCM / 100.0

	raw := integrate3D(profile.Ammo, model, profile.Ammo.MuzzleVelocity, theta, sightHeightM, targetDistanceM, atm, env)
	return raw, nil
}
