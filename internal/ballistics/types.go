// Package ballistics is the exterior-ballistics computation core of a rifle
// trajectory calculator for hunting. It integrates a point-mass model over
// the standard G1/G7 drag tables, solves for the zero-angle that satisfies a
// sight-in condition, and couples wind via relative air velocity.
//
// The package is a pure, single-threaded, synchronous computation: no I/O,
// no logging, no shared mutable state, and no recoverable errors beyond the
// preconditions documented on CalculateTrajectory and the band validation of
// NewVelocityBands. Multiple callers may
// invoke it concurrently with no coordination required.
package ballistics

import "fmt"

// ZeroType selects the sight-in convention used by the zero-angle solver.
type ZeroType int

const (
	// ZeroStandard sights the rifle so the bullet crosses the sight line
	// exactly at the zero distance.
	ZeroStandard ZeroType = iota
	// ZeroGEE (Günstigste Einschussentfernung) sights the rifle so the
	// bullet impacts 4 cm above the point of aim at the zero distance.
	ZeroGEE
)

// VelocityBand is one entry of a stepwise velocity-banded ballistic
// coefficient: above VelocityThresholdMS, BC applies.
type VelocityBand struct {
	VelocityThresholdMS float64
	BC                  float64
}

// NewVelocityBands validates that bands is non-empty and sorted by
// threshold descending, per the invariant in spec.md §3/§9, and returns it
// unchanged if valid. Construction-time validation avoids a malformed band
// list silently producing nonsense deep inside the integrator.
func NewVelocityBands(bands []VelocityBand) ([]VelocityBand, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("ballistics: velocity band list must not be empty")
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].VelocityThresholdMS > bands[i-1].VelocityThresholdMS {
			return nil, fmt.Errorf("ballistics: velocity bands must be sorted by threshold descending (band %d)", i)
		}
	}
	return bands, nil
}

// Ammunition describes a cartridge load.
type Ammunition struct {
	Name            string
	BulletMassGrain float64
	BCG1            float64
	BCG7            float64 // used only when HasG7 is true
	HasG7           bool    // reports whether BCG7 was provided
	VelocityBands   []VelocityBand // optional, validated via NewVelocityBands
	PreferredModel  *DragModel     // optional preference, nil means "none"
	MuzzleVelocity  float64        // m/s
}

// RifleProfile references an Ammunition load and the rifle's sight-in.
type RifleProfile struct {
	Ammo            Ammunition
	ZeroDistanceM   float64
	ZeroType        ZeroType
	SightHeightCM   float64
	DragModelChoice *DragModel // nil defers to Ammo.PreferredModel, then G1
}

// dragModel resolves the effective drag model for this profile.
func (p RifleProfile) dragModel() DragModel {
	if p.DragModelChoice != nil {
		return *p.DragModelChoice
	}
	if p.Ammo.PreferredModel != nil {
		return *p.Ammo.PreferredModel
	}
	return G1
}

// ResolvedDragModel exposes the effective drag model for this profile, the
// same resolution CalculateTrajectory uses internally, so collaborators
// (logging, reporting) can display which curve a given profile actually
// integrates against.
func (p RifleProfile) ResolvedDragModel() DragModel {
	return p.dragModel()
}

// Environment describes the atmospheric and wind conditions at the time of
// the shot. WindAngleDeg follows 0 = headwind, 90 = crosswind from the
// right, 180 = tailwind; values outside [0, 360) are tolerated and taken
// modulo 360 by the trig functions that consume them.
type Environment struct {
	TemperatureC    float64
	PressureHPA     float64
	RelHumidity     float64 // fraction, 0..1
	AltitudeM       float64 // informational only
	WindSpeedMS     float64
	WindAngleDeg    float64
}

// Result is the outcome of a single CalculateTrajectory call, with fields
// rounded per spec.md §4.7 at the boundary.
type Result struct {
	DropCM        float64 // positive = below line of sight
	DriftCM       float64 // positive = right
	TimeS         float64
	VelocityMS    float64
	EnergyJ       float64
	MachAtTarget  float64
}

// RawResult is Result before the boundary rounding is applied, for
// collaborators that need to chain further computation. Per spec.md §9
// Open Questions, this is offered but not contractually required.
type RawResult struct {
	DropCM       float64
	DriftCM      float64
	TimeS        float64
	VelocityMS   float64
	EnergyJ      float64
	MachAtTarget float64
}

func (r RawResult) round() Result {
	return Result{
		DropCM:       roundTo(r.DropCM, 1),
		DriftCM:      roundTo(r.DriftCM, 1),
		TimeS:        roundTo(r.TimeS, 3),
		VelocityMS:   roundTo(r.VelocityMS, 0),
		EnergyJ:      roundTo(r.EnergyJ, 0),
		MachAtTarget: roundTo(r.MachAtTarget, 2),
	}
}
